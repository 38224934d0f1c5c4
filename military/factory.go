/*
Package military implements the squad lifecycle: creation, naming, room
assignment synchronization, and readiness reporting.

PURPOSE:
  Ties the garrison entity model to the schedule generator. The Service is
  the only writer of squad-related shared state: it creates squads for
  staffing-slot assignments and keeps the mirrored squad<->zone room lists
  consistent. Everything else in the engine reads.

KEY OPERATIONS:
  CreateSquad:  validate an assignment, build a squad with one schedule grid
                per configured routine, commit it to the world
  SquadName:    alias if set, else the rendered name record
  SetRoom:      create/update/clear the mirrored room pair for a squad+zone
  TrainingCoverage (readiness.go): per-routine training summary

COMMIT DISCIPLINE:
  CreateSquad accumulates the new squad in a local, unshared value. Until
  the commit step nothing shared is touched, so any validation failure needs
  no cleanup. The commit itself - counter increment, roster append, org
  squad-list append, assignment binding - is the last thing that happens and
  runs on the engine's single logic thread, so no other logic ever observes
  a half-created squad. There is no transactional rollback: the journal
  write after commit is best-effort by design.

OUT OF SCOPE:
  Deleting or replacing the squad of a vacated assignment. An assignment
  binds at most one squad, ever.

SEE ALSO:
  - garrison/directory.go: the lookup and commit contracts
  - schedule/generator.go: per-routine grid generation
  - rooms.go: the room assignment synchronizer
*/
package military

import (
	"context"
	"fmt"

	"github.com/warp/garrison-engine/garrison"
	"github.com/warp/garrison-engine/schedule"
)

// Namer renders a name record to display text. The engine's translation
// layer provides the production implementation.
type Namer interface {
	Render(rec garrison.NameRecord, preferAlias bool) string
}

// Service owns all squad-lifecycle mutations.
type Service struct {
	dir     garrison.Directory
	namer   Namer
	archive garrison.Archive
}

// NewService wires a Service. archive may be nil to disable journaling.
func NewService(dir garrison.Directory, namer Namer, archive garrison.Archive) *Service {
	if archive == nil {
		archive = garrison.NopArchive{}
	}
	return &Service{dir: dir, namer: namer, archive: archive}
}

// CreateSquad creates a squad for a staffing-slot assignment of the
// controlling organization.
//
// On success the squad is fully committed: the shared counter has advanced,
// the organization and global roster list it, and the assignment is bound
// to it. On any error nothing shared has changed. If the commit succeeds
// but the journal write fails, the committed squad is returned together
// with the journaling error.
func (s *Service) CreateSquad(ctx context.Context, assignmentID garrison.AssignmentID) (*garrison.Squad, error) {
	nextID, counterLive := s.dir.PeekNextSquadID()
	orgID, orgLive := s.dir.ControllingOrg()
	if !counterLive || !orgLive {
		return nil, garrison.ErrUnavailable
	}

	org := s.dir.Organization(orgID)
	if org == nil {
		return nil, fmt.Errorf("controlling organization %d: %w", orgID, garrison.ErrOrganizationNotFound)
	}

	assignment := org.Assignment(assignmentID)
	if assignment == nil {
		return nil, fmt.Errorf("assignment %d: %w", assignmentID, garrison.ErrAssignmentNotFound)
	}

	// This service does not delete or replace squads for assignments.
	if assignment.SquadID != garrison.NoID {
		return nil, &garrison.AlreadyAssignedError{AssignmentID: assignment.ID, SquadID: assignment.SquadID}
	}

	position := org.Position(assignment.PositionID)
	if position == nil {
		return nil, fmt.Errorf("position %d: %w", assignment.PositionID, garrison.ErrPositionNotFound)
	}

	sq := buildSquad(nextID, org, position, assignment, s.dir.Clock().Now())

	if len(sq.Positions) != position.SquadSize {
		return nil, &garrison.InvariantError{
			Check:   "member-slot count",
			Detail:  fmt.Sprintf("have %d slots, position wants %d", len(sq.Positions), position.SquadSize),
			SquadID: sq.ID,
		}
	}

	// Commit point. Everything above touched only the local squad value.
	s.dir.CommitSquad(sq)
	org.Squads = append(org.Squads, sq.ID)
	assignment.SquadID = sq.ID

	if err := s.archive.RecordSquad(ctx, garrison.SquadRecord{
		SquadID:      sq.ID,
		OrgID:        sq.EntityID,
		Name:         s.SquadName(sq.ID),
		MemberSlots:  len(sq.Positions),
		RoutineCount: len(sq.Schedule),
		CreatedYear:  s.dir.Clock().Now().Year,
		CreatedTick:  s.dir.Clock().Now().YearTick,
	}); err != nil {
		return sq, fmt.Errorf("squad %d committed but not journaled: %w", sq.ID, err)
	}
	return sq, nil
}

// buildSquad assembles the squad as a local value. It reads the shared
// counter value and clock passed in by the caller but mutates nothing.
func buildSquad(id garrison.SquadID, org *garrison.Organization, position *garrison.StaffingPosition, assignment *garrison.StaffingSlotAssignment, now garrison.GameTime) *garrison.Squad {
	sq := &garrison.Squad{
		ID:               id,
		EntityID:         org.ID,
		LeaderPosition:   position.ID,
		LeaderAssignment: assignment.ID,
		Name:             garrison.BlankSquadName(),
		CurRoutineIndex:  0,
		UniformPriority:  int32(id) + 1,
		Activity:         garrison.NoID,
		CarryFood:        garrison.DefaultCarryFood,
		CarryWater:       garrison.DefaultCarryWater,
		Positions:        make([]garrison.MemberSlot, position.SquadSize),
	}
	for i := range sq.Positions {
		sq.Positions[i].Occupant = garrison.NoID
	}

	for _, routine := range org.Alerts.Routines {
		sq.Schedule = append(sq.Schedule, schedule.Generate(routine, position.SquadSize, id, now))
	}
	return sq
}

// SquadName returns the squad's display name: the custom alias when set,
// otherwise the rendered name record. Returns "" for an unknown squad id.
func (s *Service) SquadName(id garrison.SquadID) string {
	sq := s.dir.Squad(id)
	if sq == nil {
		return ""
	}
	if sq.Alias != "" {
		return sq.Alias
	}
	return s.namer.Render(sq.Name, true)
}
