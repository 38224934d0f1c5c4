/*
directory.go - Entity lookup and shared-state contracts

PURPOSE:
  Defines the interface between the squad-lifecycle logic and the engine's
  global stores. The Directory resolves opaque integer identifiers to live
  entity records and owns the two pieces of shared mutable state the
  lifecycle needs: the monotonic squad-id counter and the in-game clock.

LOOKUP SEMANTICS:
  Lookups return nil for unknown identifiers; they never allocate. Returned
  pointers refer to live engine state - mutating through them is how the
  factory and the room synchronizer commit their changes. All mutation is
  assumed to happen on the engine's single logic thread.

COMMIT DISCIPLINE:
  CreateSquad builds its squad as a local, unshared value and only touches
  shared state through PeekNextSquadID (read) and CommitSquad (the single
  commit point: increments the counter and appends to the roster). A failed
  creation therefore needs no cleanup.

IMPLEMENTATIONS:
  - garrison/store: in-memory world state (production and tests)

SEE ALSO:
  - store/memory.go: the in-memory implementation
  - military/factory.go: the only caller of CommitSquad
*/
package garrison

// =============================================================================
// GAME TIME
// =============================================================================

// GameTime is a point of in-game time: a year and a tick within that year.
type GameTime struct {
	Year     int32
	YearTick int32
}

// Clock reports the current in-game time.
type Clock interface {
	Now() GameTime
}

// =============================================================================
// DIRECTORY - Entity lookup layer
// =============================================================================

// Directory resolves identifiers to live entity records and exposes the
// shared squad-id counter, controlling organization, and clock.
type Directory interface {
	// Organization returns the organization with the given id, or nil.
	Organization(id OrgID) *Organization

	// Squad returns the squad with the given id, or nil.
	Squad(id SquadID) *Squad

	// Zone returns the zone with the given id, or nil.
	Zone(id ZoneID) *Zone

	// Squads returns the global squad roster in commit order.
	Squads() []*Squad

	// ControllingOrg returns the id of the player-controlled organization.
	// ok is false when no controlling organization is set.
	ControllingOrg() (OrgID, bool)

	// PeekNextSquadID returns the value the counter will hand out next
	// without advancing it. ok is false when the counter is uninitialized.
	PeekNextSquadID() (SquadID, bool)

	// CommitSquad atomically advances the squad-id counter and appends the
	// squad to the global roster. The squad's ID must equal the counter
	// value returned by PeekNextSquadID for the same logical operation.
	CommitSquad(sq *Squad)

	// Clock returns the in-game clock. Never nil.
	Clock() Clock
}
