/*
Package garrison provides the core squad-management domain model.

PURPOSE:
  This package contains the entity types and contracts shared by the whole
  engine: organizations, staffing positions and their slot assignments,
  squads, quarters zones, and the mirrored room-linkage records that tie
  squads to zones. Algorithms live in the schedule and military packages;
  this package owns the shapes and the invariants they must keep.

KEY CONCEPTS IN THIS FILE (types.go):
  - Typed IDs: SquadID, OrgID, PositionID, AssignmentID, ZoneID
  - Organization: roster owner (positions, assignments, squad list, alerts)
  - StaffingSlotAssignment: a filled slot a squad is created against
  - Squad: the organizational unit, with member slots, rooms, and schedules
  - RoomLink / RoomOccupancy: the mirrored squad<->zone linkage pair
  - UseFlags: the permission bitset shared by both sides of a room pair

DESIGN PRINCIPLES:
  1. Strong typing for IDs prevents mixing squad/zone/assignment identifiers
  2. NoID (-1) is the universal "unset" value, matching the engine's stores
  3. Mirrored room lists stay sorted ascending by counterpart id, always
  4. This package owns no storage; the Directory interface abstracts lookup

SEE ALSO:
  - schedule.go: schedule grids, month slots, and duty orders
  - directory.go: entity lookup and shared-counter contracts
  - errors.go: the error taxonomy for all operations
*/
package garrison

// =============================================================================
// IDENTIFIERS
// =============================================================================

// NoID marks an unset identifier in every ID space below.
const NoID = -1

type SquadID int32
type OrgID int32
type PositionID int32
type AssignmentID int32
type ZoneID int32

// =============================================================================
// USE FLAGS - Room permission bitset
// =============================================================================

// UseFlags is the permission bitset written to both sides of a room pair.
// The zero value means the squad makes no use of the room.
type UseFlags uint32

const (
	// UseSleep permits squad members to sleep in the room.
	UseSleep UseFlags = 1 << iota
	// UseTrain permits the room to host the squad's training orders.
	UseTrain
	// UseIndivEquipment permits storage of members' individual equipment.
	UseIndivEquipment
	// UseSquadEquipment permits storage of squad-level equipment.
	UseSquadEquipment
)

// IsZero reports whether no use is granted at all.
func (f UseFlags) IsZero() bool { return f == 0 }

// Has reports whether every bit of mask is set.
func (f UseFlags) Has(mask UseFlags) bool { return f&mask == mask }

// =============================================================================
// NAME RECORD - Identity record rendered by the naming service
// =============================================================================

// NameWordSlots is the fixed number of word slots in a name record.
const NameWordSlots = 7

type NameKind int

const (
	NameKindSquad NameKind = iota
)

type PartOfSpeech int

const (
	PartNoun PartOfSpeech = iota
	PartAdjective
	PartVerb
)

// NameRecord is an identity record. Word slots hold indices into the naming
// service's word table, or NoID for an empty slot.
type NameRecord struct {
	Kind          NameKind
	Words         [NameWordSlots]int32
	PartsOfSpeech [NameWordSlots]PartOfSpeech
}

// BlankSquadName returns a squad-kind record with every word slot empty and
// every part of speech defaulted to noun.
func BlankSquadName() NameRecord {
	rec := NameRecord{Kind: NameKindSquad}
	for i := 0; i < NameWordSlots; i++ {
		rec.Words[i] = NoID
		rec.PartsOfSpeech[i] = PartNoun
	}
	return rec
}

// IsEmpty reports whether no word slot is filled.
func (r NameRecord) IsEmpty() bool {
	for _, w := range r.Words {
		if w != NoID {
			return false
		}
	}
	return true
}

// =============================================================================
// ORGANIZATION AND STAFFING
// =============================================================================

// AlertConfig is an organization's ordered list of duty routines. A squad
// created under the organization receives one schedule grid per routine,
// in this order.
type AlertConfig struct {
	Routines []string
}

// The built-in duty routines. Routine matching is by exact name; anything
// else falls through to the off-duty default policy.
const (
	RoutineOffDuty           = "Off duty"
	RoutineStaggeredTraining = "Staggered training"
	RoutineConstantTraining  = "Constant training"
	RoutineReady             = "Ready"
)

// DefaultAlertConfig returns the standard four-routine configuration.
func DefaultAlertConfig() AlertConfig {
	return AlertConfig{Routines: []string{
		RoutineOffDuty,
		RoutineStaggeredTraining,
		RoutineConstantTraining,
		RoutineReady,
	}}
}

// Organization owns staffing positions, their slot assignments, and the
// squads created against them.
type Organization struct {
	ID          OrgID
	Positions   []*StaffingPosition
	Assignments []*StaffingSlotAssignment
	Squads      []SquadID
	Alerts      AlertConfig
}

// Position returns the staffing position with the given id, or nil.
func (o *Organization) Position(id PositionID) *StaffingPosition {
	for _, p := range o.Positions {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Assignment returns the staffing-slot assignment with the given id, or nil.
func (o *Organization) Assignment(id AssignmentID) *StaffingSlotAssignment {
	for _, a := range o.Assignments {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// StaffingPosition describes one position in an organization's roster,
// including how many members a squad created for it should hold.
type StaffingPosition struct {
	ID        PositionID
	SquadSize int
}

// StaffingSlotAssignment is a filled staffing slot. SquadID stays NoID until
// a squad is bound to it; at most one squad is ever bound, and the binding
// is never overwritten or cleared by this subsystem.
type StaffingSlotAssignment struct {
	ID         AssignmentID
	PositionID PositionID
	SquadID    SquadID
}

// =============================================================================
// SQUAD
// =============================================================================

// Default resource-carry quantities for a freshly created squad.
const (
	DefaultCarryFood  = 2
	DefaultCarryWater = 1
)

// Squad is the organizational unit created for a staffing-slot assignment.
type Squad struct {
	ID       SquadID
	EntityID OrgID

	LeaderPosition   PositionID
	LeaderAssignment AssignmentID

	Name  NameRecord
	Alias string

	// CurRoutineIndex selects the active entry of Schedule.
	CurRoutineIndex int
	// UniformPriority is ID+1 at creation; the engine resolves uniform
	// contention between squads by this value.
	UniformPriority int32
	// Activity is NoID while the squad has no active engine activity.
	Activity   int32
	CarryFood  int
	CarryWater int
	AmmoUpdate bool

	// Positions are the member slots; len(Positions) equals the staffing
	// position's SquadSize for the life of the squad.
	Positions []MemberSlot

	// Rooms is kept sorted ascending by ZoneID. Mutated only by the room
	// assignment synchronizer.
	Rooms []*RoomLink

	// Schedule holds one grid per routine of the owning organization's
	// alert configuration, in configuration order.
	Schedule []ScheduleGrid
}

// MemberSlot is one member position within a squad. Occupant is NoID while
// the slot is unfilled.
type MemberSlot struct {
	Occupant int32
	Flags    uint32
}

// Room returns the squad-side room link for the given zone, or nil.
func (s *Squad) Room(id ZoneID) *RoomLink {
	for _, r := range s.Rooms {
		if r.ZoneID == id {
			return r
		}
	}
	return nil
}

// =============================================================================
// ZONES AND ROOM LINKAGE
// =============================================================================

// Zone is a quarters entity that squads can be assigned rooms in.
type Zone struct {
	ID ZoneID

	// Occupancy is kept sorted ascending by SquadID. Mutated only by the
	// room assignment synchronizer.
	Occupancy []*RoomOccupancy
}

// Occupant returns the zone-side occupancy record for the given squad, or nil.
func (z *Zone) Occupant(id SquadID) *RoomOccupancy {
	for _, o := range z.Occupancy {
		if o.SquadID == id {
			return o
		}
	}
	return nil
}

// RoomLink is the squad-side half of a room pair: this squad uses the zone
// identified by ZoneID under the permissions in Mode.
type RoomLink struct {
	ZoneID ZoneID
	Mode   UseFlags
}

// RoomOccupancy is the zone-side half of a room pair: the squad identified
// by SquadID uses this zone under the permissions in Mode.
type RoomOccupancy struct {
	SquadID SquadID
	Mode    UseFlags
}
