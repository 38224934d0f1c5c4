/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  JSON structures for the API surface. These decouple the internal entity
  model from the external contract: schedule grids are summarized rather
  than dumped raw, and bitsets travel as plain integers.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// CreateSquadRequest binds a new squad to a staffing-slot assignment.
type CreateSquadRequest struct {
	AssignmentID int32 `json:"assignment_id"`
}

// SetRoomRequest writes a permission bitset for a squad+zone pair.
// Zero clears the squad's use of the zone.
type SetRoomRequest struct {
	Flags uint32 `json:"flags"`
}

// SquadDTO is the roster-list view of a squad.
type SquadDTO struct {
	ID              int32     `json:"id"`
	OrgID           int32     `json:"org_id"`
	Name            string    `json:"name"`
	Alias           string    `json:"alias,omitempty"`
	MemberSlots     int       `json:"member_slots"`
	UniformPriority int32     `json:"uniform_priority"`
	CarryFood       int       `json:"carry_food"`
	CarryWater      int       `json:"carry_water"`
	Routines        []string  `json:"routines"`
	Rooms           []RoomDTO `json:"rooms"`
}

// SquadDetailDTO adds the full schedule to the roster view.
type SquadDetailDTO struct {
	SquadDTO
	Schedule []ScheduleGridDTO `json:"schedule"`
}

// RoomDTO is one squad-side room link.
type RoomDTO struct {
	ZoneID int32  `json:"zone_id"`
	Flags  uint32 `json:"flags"`
}

// ScheduleGridDTO summarizes one routine's 12-month grid.
type ScheduleGridDTO struct {
	Routine string     `json:"routine"`
	Months  []MonthDTO `json:"months"`
}

// MonthDTO summarizes one month slot.
type MonthDTO struct {
	SleepMode      int `json:"sleep_mode"`
	UniformMode    int `json:"uniform_mode"`
	TrainingOrders int `json:"training_orders"`
}

// SquadNameDTO carries a squad's display name.
type SquadNameDTO struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

// ReadinessDTO is one routine's training-coverage summary.
type ReadinessDTO struct {
	Routine       string `json:"routine"`
	TrainedMonths int    `json:"trained_months"`
	Coverage      string `json:"coverage"`
	MinHeadcount  int    `json:"min_headcount"`
}

// RoomEventDTO is one journaled room-assignment change.
type RoomEventDTO struct {
	SquadID int32  `json:"squad_id"`
	ZoneID  int32  `json:"zone_id"`
	Flags   uint32 `json:"flags"`
	Year    int32  `json:"year"`
	Tick    int32  `json:"tick"`
}

// ScenarioDTO describes a loadable demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LoadScenarioRequest selects a scenario to load.
type LoadScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
