/*
scenarios.go - Demo scenario loaders for testing and demonstrations

PURPOSE:

	Pre-built worlds that populate the in-memory state with realistic data.
	Each scenario builds an organization with staffing positions and slot
	assignments, quarters zones, and optionally some already-created squads
	with room assignments.

AVAILABLE SCENARIOS:

	fresh-garrison:    org with open assignments, no squads yet
	staffed-garrison:  three squads created in order (exercises the
	                   staggered-training parity), rooms assigned

HOW SCENARIOS WORK:
 1. Replace the world with a fresh one (the journal, if any, is kept)
 2. Seed organization, positions, assignments, zones, counter, clock
 3. Optionally create squads and set rooms through the service

NOTE:

	Loading a scenario discards the current world. Development/demo only.

SEE ALSO:
  - handlers.go: LoadScenario, ListScenarios handlers
*/
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/warp/garrison-engine/garrison"
	"github.com/warp/garrison-engine/garrison/store"
	"github.com/warp/garrison-engine/military"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

var scenarios = []ScenarioDTO{
	{
		ID:          "fresh-garrison",
		Name:        "Fresh Garrison",
		Description: "One organization with three open staffing assignments and two quarters zones",
	},
	{
		ID:          "staffed-garrison",
		Name:        "Staffed Garrison",
		Description: "Three squads created in order with rooms assigned; shows the staggered-training alternation",
	},
}

// ListScenarios returns the scenario catalog.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// LoadScenario replaces the world with the selected scenario.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	switch req.ScenarioID {
	case "fresh-garrison", "staffed-garrison":
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Unknown scenario %q", req.ScenarioID), nil)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	world := SeedFreshGarrison()
	h.World = world
	h.Service = military.NewService(world, h.namer, h.Archive)

	if req.ScenarioID == "staffed-garrison" {
		if err := h.loadStaffedGarrison(r.Context()); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to load scenario", err)
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"loaded": req.ScenarioID})
}

// =============================================================================
// SCENARIO BUILDERS
// =============================================================================

// SeedFreshGarrison builds the base world every scenario starts from: one
// controlling organization with the default routines, three staffing
// positions with open slot assignments, and two quarters zones.
func SeedFreshGarrison() *store.Memory {
	world := store.NewMemory()

	org := &garrison.Organization{
		ID: 1,
		Positions: []*garrison.StaffingPosition{
			{ID: 10, SquadSize: 10},
			{ID: 11, SquadSize: 10},
			{ID: 12, SquadSize: 7},
		},
		Assignments: []*garrison.StaffingSlotAssignment{
			{ID: 20, PositionID: 10, SquadID: garrison.NoID},
			{ID: 21, PositionID: 11, SquadID: garrison.NoID},
			{ID: 22, PositionID: 12, SquadID: garrison.NoID},
		},
		Alerts: garrison.DefaultAlertConfig(),
	}
	world.AddOrganization(org)
	world.SetControllingOrg(org.ID)

	world.AddZone(&garrison.Zone{ID: 100})
	world.AddZone(&garrison.Zone{ID: 101})

	world.InitSquadCounter(1)
	world.SetTime(garrison.GameTime{Year: 125, YearTick: 3600})

	return world
}

func (h *Handler) loadStaffedGarrison(ctx context.Context) error {
	for _, assignmentID := range []garrison.AssignmentID{20, 21, 22} {
		sq, err := h.Service.CreateSquad(ctx, assignmentID)
		if err != nil {
			return fmt.Errorf("assignment %d: %w", assignmentID, err)
		}
		if err := h.Service.SetRoom(ctx, sq.ID, 100, garrison.UseSleep|garrison.UseTrain); err != nil {
			return fmt.Errorf("squad %d rooms: %w", sq.ID, err)
		}
	}
	return nil
}
