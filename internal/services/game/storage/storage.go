package storage

import (
	"context"
	"time"

	apperrors "github.com/louisbranch/npc-arena/internal/platform/errors"
	"github.com/louisbranch/npc-arena/internal/services/game/domain/catalog"
)

// ErrNotFound indicates a requested persistence record is missing.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// NPCQuery selects NPC templates for listing.
type NPCQuery struct {
	// Filter is an AIP-160 expression over NPC fields.
	Filter string
	// Limit caps the number of rows; zero means no limit.
	Limit int
}

// ImportRecord describes one content import.
type ImportRecord struct {
	CatalogID  string
	Version    string
	Source     string
	NPCCount   int
	MoveCount  int
	ImportedAt time.Time
}

// ContentReader reads reference content.
type ContentReader interface {
	GetNPC(ctx context.Context, key string) (catalog.NPCTemplate, error)
	ListNPCs(ctx context.Context, query NPCQuery) ([]catalog.NPCTemplate, error)
	ListMoves(ctx context.Context) ([]catalog.MoveDefinition, error)
	LastImport(ctx context.Context) (ImportRecord, error)
}

// ContentStore reads and writes reference content.
type ContentStore interface {
	ContentReader
	PutNPC(ctx context.Context, npc catalog.NPCTemplate) error
	PutMove(ctx context.Context, move catalog.MoveDefinition) error
	ImportContent(ctx context.Context, content catalog.Content) (ImportRecord, error)
}
