/*
handlers_test.go - HTTP-level tests for the squad lifecycle endpoints

Tests for:
- Squad creation (success, conflict, bad input)
- Room assignment round trips
- Name and readiness lookups
- Scenario loading
*/
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/warp/garrison-engine/garrison"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func newTestServer(t *testing.T) (*httptest.Server, *Handler) {
	t.Helper()
	h := NewHandler(SeedFreshGarrison(), nil)
	srv := httptest.NewServer(NewRouter(h))
	t.Cleanup(srv.Close)
	return srv, h
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return v
}

// =============================================================================
// SQUAD ENDPOINTS
// =============================================================================

func TestCreateSquad_Created(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/squads", CreateSquadRequest{AssignmentID: 20})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	dto := decode[SquadDetailDTO](t, resp)
	if dto.ID != 1 {
		t.Errorf("squad id = %d, want 1", dto.ID)
	}
	if dto.MemberSlots != 10 {
		t.Errorf("member slots = %d, want 10", dto.MemberSlots)
	}
	if len(dto.Schedule) != 4 {
		t.Fatalf("schedule grids = %d, want one per default routine", len(dto.Schedule))
	}
	if dto.Schedule[0].Routine != garrison.RoutineOffDuty {
		t.Errorf("first routine = %q, want %q", dto.Schedule[0].Routine, garrison.RoutineOffDuty)
	}
	for _, grid := range dto.Schedule {
		if len(grid.Months) != garrison.MonthsPerYear {
			t.Errorf("routine %q has %d months, want 12", grid.Routine, len(grid.Months))
		}
	}
}

func TestCreateSquad_Conflict(t *testing.T) {
	srv, _ := newTestServer(t)

	if resp := doJSON(t, http.MethodPost, srv.URL+"/api/squads", CreateSquadRequest{AssignmentID: 20}); resp.StatusCode != http.StatusCreated {
		t.Fatalf("first create status = %d, want 201", resp.StatusCode)
	}
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/squads", CreateSquadRequest{AssignmentID: 20})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("second create status = %d, want 409", resp.StatusCode)
	}
}

func TestCreateSquad_UnknownAssignment(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/squads", CreateSquadRequest{AssignmentID: 999})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestGetSquadName(t *testing.T) {
	srv, h := newTestServer(t)

	doJSON(t, http.MethodPost, srv.URL+"/api/squads", CreateSquadRequest{AssignmentID: 20})
	h.World.Squad(1).Alias = "The Granite Watch"

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/squads/1/name", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	dto := decode[SquadNameDTO](t, resp)
	if dto.Name != "The Granite Watch" {
		t.Errorf("name = %q, want the alias", dto.Name)
	}
}

func TestGetReadiness(t *testing.T) {
	srv, _ := newTestServer(t)

	doJSON(t, http.MethodPost, srv.URL+"/api/squads", CreateSquadRequest{AssignmentID: 20})

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/squads/1/readiness", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	dtos := decode[[]ReadinessDTO](t, resp)
	if len(dtos) != 4 {
		t.Fatalf("readiness entries = %d, want 4", len(dtos))
	}
	for _, dto := range dtos {
		if dto.Routine == garrison.RoutineConstantTraining && dto.TrainedMonths != 12 {
			t.Errorf("constant training trained months = %d, want 12", dto.TrainedMonths)
		}
	}
}

// =============================================================================
// ROOM ENDPOINTS
// =============================================================================

func TestSetRoom_RoundTrip(t *testing.T) {
	srv, h := newTestServer(t)

	doJSON(t, http.MethodPost, srv.URL+"/api/squads", CreateSquadRequest{AssignmentID: 20})

	url := fmt.Sprintf("%s/api/squads/1/rooms/100", srv.URL)
	resp := doJSON(t, http.MethodPut, url, SetRoomRequest{Flags: uint32(garrison.UseSleep | garrison.UseTrain)})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	rooms := decode[[]RoomDTO](t, resp)
	if len(rooms) != 1 || rooms[0].ZoneID != 100 {
		t.Fatalf("rooms = %v, want one link to zone 100", rooms)
	}

	// Clear: squad side empties, zone side remembers.
	resp = doJSON(t, http.MethodPut, url, SetRoomRequest{Flags: 0})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("clear status = %d, want 200", resp.StatusCode)
	}
	rooms = decode[[]RoomDTO](t, resp)
	if len(rooms) != 0 {
		t.Fatalf("rooms after clear = %v, want none", rooms)
	}
	if h.World.Zone(100).Occupant(1) == nil {
		t.Error("zone should retain the occupancy record after clear")
	}
}

func TestSetRoom_UnknownZone(t *testing.T) {
	srv, _ := newTestServer(t)

	doJSON(t, http.MethodPost, srv.URL+"/api/squads", CreateSquadRequest{AssignmentID: 20})

	resp := doJSON(t, http.MethodPut, srv.URL+"/api/squads/1/rooms/999", SetRoomRequest{Flags: 1})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestSetRoom_BadPathParam(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPut, srv.URL+"/api/squads/not-a-number/rooms/100", SetRoomRequest{Flags: 1})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

// =============================================================================
// SCENARIOS
// =============================================================================

func TestLoadScenario_StaffedGarrison(t *testing.T) {
	srv, h := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/scenarios/load", LoadScenarioRequest{ScenarioID: "staffed-garrison"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	squads := h.World.Squads()
	if len(squads) != 3 {
		t.Fatalf("roster = %d squads, want 3", len(squads))
	}
	for _, sq := range squads {
		if sq.Room(100) == nil {
			t.Errorf("squad %d should have a room in zone 100", sq.ID)
		}
	}
}

func TestLoadScenario_Unknown(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/scenarios/load", LoadScenarioRequest{ScenarioID: "volcano"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

// =============================================================================
// CONCURRENT ACCESS
// =============================================================================

// Reads traverse live entity state (rooms, schedules, the roster), so they
// must hold the handler lock against concurrent room writes and scenario
// swaps. Run with -race.
func TestHandlers_ConcurrentReadsAndWrites(t *testing.T) {
	srv, _ := newTestServer(t)

	doJSON(t, http.MethodPost, srv.URL+"/api/squads", CreateSquadRequest{AssignmentID: 20})

	// get issues a request from a worker goroutine; doJSON is test-goroutine
	// only, so drain and close inline.
	do := func(method, url string, body any) {
		var buf bytes.Buffer
		if body != nil {
			if err := json.NewEncoder(&buf).Encode(body); err != nil {
				t.Errorf("encoding request: %v", err)
				return
			}
		}
		req, err := http.NewRequest(method, url, &buf)
		if err != nil {
			t.Errorf("building request: %v", err)
			return
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Errorf("%s %s: %v", method, url, err)
			return
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}

	const iterations = 50
	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			do(http.MethodGet, srv.URL+"/api/squads", nil)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			do(http.MethodGet, srv.URL+"/api/squads/1", nil)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			flags := uint32(garrison.UseSleep)
			if i%2 == 1 {
				flags = 0
			}
			do(http.MethodPut, srv.URL+"/api/squads/1/rooms/100", SetRoomRequest{Flags: flags})
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			do(http.MethodPost, srv.URL+"/api/scenarios/load", LoadScenarioRequest{ScenarioID: "fresh-garrison"})
		}
	}()

	wg.Wait()
}
