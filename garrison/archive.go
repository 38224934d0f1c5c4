package garrison

import "context"

// =============================================================================
// ARCHIVE - Append-only journal of lifecycle events
// =============================================================================

// SquadRecord is the archived form of a committed squad.
type SquadRecord struct {
	SquadID      SquadID
	OrgID        OrgID
	Name         string
	MemberSlots  int
	RoutineCount int
	CreatedYear  int32
	CreatedTick  int32
}

// RoomChange is one recorded room-assignment mutation.
type RoomChange struct {
	SquadID SquadID
	ZoneID  ZoneID
	Mode    UseFlags
	Year    int32
	Tick    int32
}

// Archive journals lifecycle events after they commit. Writes are
// best-effort: a journaling error is surfaced to the caller but never rolls
// back the in-memory commit. Archive is APPEND-ONLY; history is never
// rewritten.
type Archive interface {
	// RecordSquad journals a squad creation.
	RecordSquad(ctx context.Context, rec SquadRecord) error

	// RecordRoomChange journals a room-assignment change, including clears.
	RecordRoomChange(ctx context.Context, ch RoomChange) error

	// Squads returns all squad records in creation order.
	Squads(ctx context.Context) ([]SquadRecord, error)

	// RoomHistory returns all room changes for a squad in recorded order.
	RoomHistory(ctx context.Context, id SquadID) ([]RoomChange, error)
}

// NopArchive discards every event. Used when no journal is configured.
type NopArchive struct{}

func (NopArchive) RecordSquad(context.Context, SquadRecord) error      { return nil }
func (NopArchive) RecordRoomChange(context.Context, RoomChange) error { return nil }
func (NopArchive) Squads(context.Context) ([]SquadRecord, error)      { return nil, nil }
func (NopArchive) RoomHistory(context.Context, SquadID) ([]RoomChange, error) {
	return nil, nil
}
