/*
Package sqlite provides a SQLite-backed implementation of garrison.Archive.

PURPOSE:
  Journals squad creations and room-assignment changes so an operator can
  audit how the garrison evolved. The journal is downstream of the in-memory
  world: the engine commits first and journals after, so a journal failure
  never affects engine state.

APPEND-ONLY ENFORCEMENT:
  - No UPDATE statements on either table
  - No DELETE statements on either table
  History is never rewritten.

KEY TABLES:
  squad_records: one row per committed squad
  room_events:   one row per room-assignment change, clears included

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging): readers don't block the
  single writer and crash recovery is cleaner.

USAGE:
  archive, err := sqlite.New("./data/garrison.db")
  if err != nil {
      log.Fatal(err)
  }
  defer archive.Close()
  svc := military.NewService(world, namer, archive)

SEE ALSO:
  - garrison/archive.go: the interface and record types
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/garrison-engine/garrison"
)

// Archive implements garrison.Archive on SQLite.
type Archive struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates an archive at the given database path. Use ":memory:" for an
// in-memory database.
func New(dbPath string) (*Archive, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	a := &Archive{db: db}
	if err := a.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return a, nil
}

// Close closes the database connection.
func (a *Archive) Close() error {
	return a.db.Close()
}

// migrate creates the journal schema.
func (a *Archive) migrate() error {
	schema := `
	-- Squad creations (append-only)
	CREATE TABLE IF NOT EXISTS squad_records (
		squad_id INTEGER PRIMARY KEY,
		org_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		member_slots INTEGER NOT NULL,
		routine_count INTEGER NOT NULL,
		created_year INTEGER NOT NULL,
		created_tick INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_squad_records_org
		ON squad_records(org_id);

	-- Room-assignment changes (append-only, clears included)
	CREATE TABLE IF NOT EXISTS room_events (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		squad_id INTEGER NOT NULL,
		zone_id INTEGER NOT NULL,
		mode INTEGER NOT NULL,
		year INTEGER NOT NULL,
		tick INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_room_events_squad
		ON room_events(squad_id);
	CREATE INDEX IF NOT EXISTS idx_room_events_zone
		ON room_events(zone_id);
	`
	_, err := a.db.Exec(schema)
	return err
}

// RecordSquad journals a squad creation.
func (a *Archive) RecordSquad(ctx context.Context, rec garrison.SquadRecord) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, err := a.db.ExecContext(ctx, `
		INSERT INTO squad_records
			(squad_id, org_id, name, member_slots, routine_count, created_year, created_tick)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.SquadID, rec.OrgID, rec.Name, rec.MemberSlots, rec.RoutineCount,
		rec.CreatedYear, rec.CreatedTick)
	if err != nil {
		return fmt.Errorf("failed to record squad %d: %w", rec.SquadID, err)
	}
	return nil
}

// RecordRoomChange journals a room-assignment change.
func (a *Archive) RecordRoomChange(ctx context.Context, ch garrison.RoomChange) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, err := a.db.ExecContext(ctx, `
		INSERT INTO room_events (squad_id, zone_id, mode, year, tick)
		VALUES (?, ?, ?, ?, ?)`,
		ch.SquadID, ch.ZoneID, uint32(ch.Mode), ch.Year, ch.Tick)
	if err != nil {
		return fmt.Errorf("failed to record room change for squad %d: %w", ch.SquadID, err)
	}
	return nil
}

// Squads returns all squad records in creation order.
func (a *Archive) Squads(ctx context.Context) ([]garrison.SquadRecord, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	rows, err := a.db.QueryContext(ctx, `
		SELECT squad_id, org_id, name, member_slots, routine_count, created_year, created_tick
		FROM squad_records ORDER BY squad_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load squad records: %w", err)
	}
	defer rows.Close()

	var out []garrison.SquadRecord
	for rows.Next() {
		var rec garrison.SquadRecord
		if err := rows.Scan(&rec.SquadID, &rec.OrgID, &rec.Name, &rec.MemberSlots,
			&rec.RoutineCount, &rec.CreatedYear, &rec.CreatedTick); err != nil {
			return nil, fmt.Errorf("failed to scan squad record: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// RoomHistory returns all room changes for a squad in recorded order.
func (a *Archive) RoomHistory(ctx context.Context, id garrison.SquadID) ([]garrison.RoomChange, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	rows, err := a.db.QueryContext(ctx, `
		SELECT squad_id, zone_id, mode, year, tick
		FROM room_events WHERE squad_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load room history: %w", err)
	}
	defer rows.Close()

	var out []garrison.RoomChange
	for rows.Next() {
		var ch garrison.RoomChange
		var mode uint32
		if err := rows.Scan(&ch.SquadID, &ch.ZoneID, &mode, &ch.Year, &ch.Tick); err != nil {
			return nil, fmt.Errorf("failed to scan room change: %w", err)
		}
		ch.Mode = garrison.UseFlags(mode)
		out = append(out, ch)
	}
	return out, rows.Err()
}
