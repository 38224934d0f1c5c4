/*
errors.go - Centralized error taxonomy for the garrison engine

PURPOSE:
  All error conditions of the squad lifecycle in one place. Operations return
  these to the caller; nothing here is fatal to the host process, and nothing
  is retried - every condition means the caller passed a stale or invalid
  identifier or violated a precondition.

ERROR CATEGORIES:
  1. Availability  - required shared state (counter, controlling org) missing
  2. Lookup        - an identifier resolved to nothing
  3. Precondition  - assignment already bound to a squad
  4. Invariant     - internal consistency checks (member-slot counts etc.)

USAGE:
  Callers match with errors.Is():

    if errors.Is(err, garrison.ErrAlreadyAssigned) {
        // surface as a conflict, do not retry
    }

SEE ALSO:
  - military/factory.go: returns the availability/lookup/precondition errors
  - military/rooms.go: returns the squad/zone lookup errors
*/
package garrison

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrUnavailable is returned when required shared state - the squad-id
	// counter or the controlling organization - is not initialized.
	ErrUnavailable = errors.New("shared engine state unavailable")

	// ErrOrganizationNotFound is returned when an organization id resolves
	// to nothing.
	ErrOrganizationNotFound = errors.New("organization not found")

	// ErrAssignmentNotFound is returned when a staffing-slot assignment id
	// does not match any assignment of the controlling organization.
	ErrAssignmentNotFound = errors.New("staffing-slot assignment not found")

	// ErrPositionNotFound is returned when an assignment references a
	// staffing position the organization does not have.
	ErrPositionNotFound = errors.New("staffing position not found")

	// ErrSquadNotFound is returned when a squad id resolves to nothing.
	ErrSquadNotFound = errors.New("squad not found")

	// ErrZoneNotFound is returned when a zone id resolves to nothing.
	ErrZoneNotFound = errors.New("zone not found")

	// ErrAlreadyAssigned is returned when the assignment is already bound to
	// a squad. The factory never replaces or deletes an existing binding.
	ErrAlreadyAssigned = errors.New("assignment already bound to a squad")

	// ErrInvariantViolation is returned when an internal consistency check
	// fails, e.g. a member-slot count that disagrees with the position.
	ErrInvariantViolation = errors.New("invariant violation")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// AlreadyAssignedError reports which squad currently holds the assignment.
type AlreadyAssignedError struct {
	AssignmentID AssignmentID
	SquadID      SquadID
}

func (e *AlreadyAssignedError) Error() string {
	return fmt.Sprintf("assignment %d already bound to squad %d", e.AssignmentID, e.SquadID)
}

func (e *AlreadyAssignedError) Unwrap() error {
	return ErrAlreadyAssigned
}

// InvariantError reports a failed consistency check.
type InvariantError struct {
	Check   string
	Detail  string
	SquadID SquadID
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant %q violated for squad %d: %s", e.Check, e.SquadID, e.Detail)
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariantViolation
}
