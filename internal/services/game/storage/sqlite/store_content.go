package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/npc-arena/internal/services/game/core/filter"
	"github.com/louisbranch/npc-arena/internal/services/game/domain/catalog"
	"github.com/louisbranch/npc-arena/internal/services/game/storage"
)

const npcColumns = "npc_key, name, level, hp, attack, defense, sp_attack, sp_defense, speed, moves_json"

// PutNPC inserts or replaces an NPC template.
func (s *Store) PutNPC(ctx context.Context, npc catalog.NPCTemplate) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	return s.putNPC(ctx, s.sqlDB, npc)
}

// PutMove inserts or replaces a move definition.
func (s *Store) PutMove(ctx context.Context, move catalog.MoveDefinition) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	return s.putMove(ctx, s.sqlDB, move)
}

// GetNPC retrieves one NPC template by key.
func (s *Store) GetNPC(ctx context.Context, key string) (catalog.NPCTemplate, error) {
	if err := s.ready(ctx); err != nil {
		return catalog.NPCTemplate{}, err
	}
	key = catalog.NormalizeKey(key)
	if key == "" {
		return catalog.NPCTemplate{}, fmt.Errorf("npc key is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, "SELECT "+npcColumns+" FROM npcs WHERE npc_key = ?", key)
	npc, err := scanNPC(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return catalog.NPCTemplate{}, storage.ErrNotFound
		}
		return catalog.NPCTemplate{}, fmt.Errorf("get npc: %w", err)
	}
	return npc, nil
}

// ListNPCs returns NPC templates matching query, ordered by key.
func (s *Store) ListNPCs(ctx context.Context, query storage.NPCQuery) ([]catalog.NPCTemplate, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	cond, err := filter.ParseNPCFilter(query.Filter)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString("SELECT " + npcColumns + " FROM npcs")
	args := cond.Params
	if !cond.Empty() {
		sb.WriteString(" WHERE " + cond.Clause)
	}
	sb.WriteString(" ORDER BY npc_key")
	if query.Limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, query.Limit)
	}

	rows, err := s.sqlDB.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list npcs: %w", err)
	}
	defer rows.Close()

	npcs := []catalog.NPCTemplate{}
	for rows.Next() {
		npc, err := scanNPC(rows)
		if err != nil {
			return nil, fmt.Errorf("scan npc: %w", err)
		}
		npcs = append(npcs, npc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list npcs: %w", err)
	}
	return npcs, nil
}

// ListMoves returns every move ordered by id.
func (s *Store) ListMoves(ctx context.Context) ([]catalog.MoveDefinition, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT move_id, name, category, power, burn_chance, poison_chance, stun_chance
FROM moves ORDER BY move_id`)
	if err != nil {
		return nil, fmt.Errorf("list moves: %w", err)
	}
	defer rows.Close()

	moves := []catalog.MoveDefinition{}
	for rows.Next() {
		var move catalog.MoveDefinition
		var category string
		if err := rows.Scan(&move.ID, &move.Name, &category, &move.Power, &move.BurnChance, &move.PoisonChance, &move.StunChance); err != nil {
			return nil, fmt.Errorf("scan move: %w", err)
		}
		move.Category = catalog.Category(category)
		moves = append(moves, move)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list moves: %w", err)
	}
	return moves, nil
}

// ImportContent validates content and upserts it in one transaction,
// recording the import.
func (s *Store) ImportContent(ctx context.Context, content catalog.Content) (storage.ImportRecord, error) {
	if err := s.ready(ctx); err != nil {
		return storage.ImportRecord{}, err
	}
	built, err := content.Build()
	if err != nil {
		return storage.ImportRecord{}, err
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return storage.ImportRecord{}, fmt.Errorf("begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, move := range built.Moves() {
		if err := s.putMove(ctx, tx, move); err != nil {
			return storage.ImportRecord{}, err
		}
	}
	for _, npc := range built.NPCs() {
		if err := s.putNPC(ctx, tx, npc); err != nil {
			return storage.ImportRecord{}, err
		}
	}

	record := storage.ImportRecord{
		CatalogID:  content.NPCs.CatalogID,
		Version:    content.NPCs.Version,
		Source:     content.NPCs.Source,
		NPCCount:   len(content.NPCs.Items),
		MoveCount:  len(content.Moves.Items),
		ImportedAt: fromMillis(toMillis(s.now())),
	}
	if _, err := tx.ExecContext(ctx, `
INSERT INTO content_imports (catalog_id, version, source, npc_count, move_count, imported_at)
VALUES (?, ?, ?, ?, ?, ?)`,
		record.CatalogID, record.Version, record.Source, record.NPCCount, record.MoveCount, toMillis(record.ImportedAt),
	); err != nil {
		return storage.ImportRecord{}, fmt.Errorf("record import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return storage.ImportRecord{}, fmt.Errorf("commit import: %w", err)
	}
	return record, nil
}

// LastImport returns the most recent import record.
func (s *Store) LastImport(ctx context.Context) (storage.ImportRecord, error) {
	if err := s.ready(ctx); err != nil {
		return storage.ImportRecord{}, err
	}

	var record storage.ImportRecord
	var importedAt int64
	err := s.sqlDB.QueryRowContext(ctx, `
SELECT catalog_id, version, source, npc_count, move_count, imported_at
FROM content_imports ORDER BY id DESC LIMIT 1`).Scan(
		&record.CatalogID, &record.Version, &record.Source, &record.NPCCount, &record.MoveCount, &importedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.ImportRecord{}, storage.ErrNotFound
		}
		return storage.ImportRecord{}, fmt.Errorf("get last import: %w", err)
	}
	record.ImportedAt = fromMillis(importedAt)
	return record, nil
}

func (s *Store) putNPC(ctx context.Context, exec execer, npc catalog.NPCTemplate) error {
	key := catalog.NormalizeKey(npc.Key)
	if key == "" {
		return fmt.Errorf("npc key is required")
	}
	moves := make([]string, len(npc.Moves))
	for i, id := range npc.Moves {
		moves[i] = catalog.NormalizeKey(id)
	}
	movesJSON, err := json.Marshal(moves)
	if err != nil {
		return fmt.Errorf("marshal npc moves: %w", err)
	}

	_, err = exec.ExecContext(ctx, `
INSERT INTO npcs (`+npcColumns+`, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(npc_key) DO UPDATE SET
    name = excluded.name,
    level = excluded.level,
    hp = excluded.hp,
    attack = excluded.attack,
    defense = excluded.defense,
    sp_attack = excluded.sp_attack,
    sp_defense = excluded.sp_defense,
    speed = excluded.speed,
    moves_json = excluded.moves_json,
    updated_at = excluded.updated_at`,
		key, strings.TrimSpace(npc.Name), npc.Level,
		npc.Stats.HP, npc.Stats.Attack, npc.Stats.Defense, npc.Stats.SpAttack, npc.Stats.SpDefense, npc.Stats.Speed,
		string(movesJSON), toMillis(s.now()),
	)
	if err != nil {
		return fmt.Errorf("put npc %s: %w", key, err)
	}
	return nil
}

func (s *Store) putMove(ctx context.Context, exec execer, move catalog.MoveDefinition) error {
	id := catalog.NormalizeKey(move.ID)
	if id == "" {
		return fmt.Errorf("move id is required")
	}

	_, err := exec.ExecContext(ctx, `
INSERT INTO moves (move_id, name, category, power, burn_chance, poison_chance, stun_chance, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(move_id) DO UPDATE SET
    name = excluded.name,
    category = excluded.category,
    power = excluded.power,
    burn_chance = excluded.burn_chance,
    poison_chance = excluded.poison_chance,
    stun_chance = excluded.stun_chance,
    updated_at = excluded.updated_at`,
		id, move.Name, string(move.Category), move.Power, move.BurnChance, move.PoisonChance, move.StunChance, toMillis(s.now()),
	)
	if err != nil {
		return fmt.Errorf("put move %s: %w", id, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNPC(row rowScanner) (catalog.NPCTemplate, error) {
	var npc catalog.NPCTemplate
	var movesJSON string
	if err := row.Scan(
		&npc.Key, &npc.Name, &npc.Level,
		&npc.Stats.HP, &npc.Stats.Attack, &npc.Stats.Defense, &npc.Stats.SpAttack, &npc.Stats.SpDefense, &npc.Stats.Speed,
		&movesJSON,
	); err != nil {
		return catalog.NPCTemplate{}, err
	}
	if err := json.Unmarshal([]byte(movesJSON), &npc.Moves); err != nil {
		return catalog.NPCTemplate{}, fmt.Errorf("decode moves of %s: %w", npc.Key, err)
	}
	return npc, nil
}
