package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"strings"
)

// ContentVersion is the payload version this package reads.
const ContentVersion = "v1"

// File names of the content payloads inside a content directory.
const (
	NPCsFile  = "npcs.json"
	MovesFile = "moves.json"
)

//go:embed data/*.json
var defaultContent embed.FS

// Payload is the versioned envelope around content items.
type Payload[T any] struct {
	CatalogID string `json:"catalog_id"`
	Version   string `json:"version"`
	Source    string `json:"source"`
	Items     []T    `json:"items"`
}

// NPCPayload is the envelope of npcs.json.
type NPCPayload = Payload[NPCTemplate]

// MovePayload is the envelope of moves.json.
type MovePayload = Payload[MoveDefinition]

// Validate checks the envelope header.
func (p Payload[T]) Validate(name string) error {
	if strings.TrimSpace(p.CatalogID) == "" {
		return fmt.Errorf("%s: catalog_id is required", name)
	}
	if p.Version != ContentVersion {
		return fmt.Errorf("%s: unsupported version %q", name, p.Version)
	}
	return nil
}

// DecodePayload reads one JSON envelope, rejecting unknown fields.
func DecodePayload[T any](r io.Reader) (Payload[T], error) {
	var payload Payload[T]
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&payload); err != nil {
		return Payload[T]{}, err
	}
	return payload, nil
}

// Content is a decoded pair of payloads.
type Content struct {
	NPCs  NPCPayload
	Moves MovePayload
}

// ReadContent decodes npcs.json and moves.json from dir within fsys.
func ReadContent(fsys fs.FS, dir string) (Content, error) {
	npcs, err := readPayload[NPCTemplate](fsys, dir, NPCsFile)
	if err != nil {
		return Content{}, err
	}
	moves, err := readPayload[MoveDefinition](fsys, dir, MovesFile)
	if err != nil {
		return Content{}, err
	}
	if npcs.CatalogID != moves.CatalogID {
		return Content{}, fmt.Errorf("catalog_id mismatch: %s has %q, %s has %q", NPCsFile, npcs.CatalogID, MovesFile, moves.CatalogID)
	}
	return Content{NPCs: npcs, Moves: moves}, nil
}

// Build validates the content and constructs a catalog.
func (c Content) Build() (*Catalog, error) {
	return New(c.NPCs.Items, c.Moves.Items)
}

// DefaultContent returns the content bundled with the binary.
func DefaultContent() (Content, error) {
	return ReadContent(defaultContent, "data")
}

// Default builds the catalog bundled with the binary.
func Default() (*Catalog, error) {
	content, err := DefaultContent()
	if err != nil {
		return nil, fmt.Errorf("read default content: %w", err)
	}
	return content.Build()
}

func readPayload[T any](fsys fs.FS, dir, name string) (Payload[T], error) {
	path := name
	if dir != "" && dir != "." {
		path = dir + "/" + name
	}
	f, err := fsys.Open(path)
	if err != nil {
		return Payload[T]{}, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	payload, err := DecodePayload[T](f)
	if err != nil {
		return Payload[T]{}, fmt.Errorf("decode %s: %w", name, err)
	}
	if err := payload.Validate(name); err != nil {
		return Payload[T]{}, err
	}
	return payload, nil
}
