/*
handlers.go - HTTP API handlers for the garrison engine

PURPOSE:
  Exposes the squad lifecycle via REST. Handles HTTP request/response, JSON
  serialization, and delegates to the military service.

ENDPOINTS:
  Squads:
    GET    /api/squads                      Roster list
    POST   /api/squads                      Create squad for an assignment
    GET    /api/squads/{id}                 Squad detail incl. schedule
    GET    /api/squads/{id}/name            Display name
    GET    /api/squads/{id}/readiness       Training-coverage report
    GET    /api/squads/{id}/rooms/history   Journaled room changes
    PUT    /api/squads/{id}/rooms/{zoneID}  Set/clear room flags

  Scenarios:
    GET    /api/scenarios                   List demo scenarios
    POST   /api/scenarios/load              Load a demo scenario

ERROR HANDLING:
  Domain errors map to HTTP status by sentinel:
  - 400: malformed body or path parameter
  - 404: squad/zone/assignment/position/organization not found
  - 409: assignment already bound to a squad
  - 503: shared engine state uninitialized
  - 500: everything else (journal failures included)

CONCURRENCY:
  The engine core assumes a single logic thread. The handler enforces that
  here: an RWMutex serializes mutating requests onto the world and holds a
  read lock while read handlers traverse entity state, so a GET never races
  a concurrent PUT or a scenario swap.

SEE ALSO:
  - dto.go: request/response shapes
  - scenarios.go: demo world seeding
  - server.go: router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/warp/garrison-engine/garrison"
	"github.com/warp/garrison-engine/garrison/store"
	"github.com/warp/garrison-engine/military"
	"github.com/warp/garrison-engine/naming"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	mu      sync.RWMutex // write-locks mutations, read-locks entity traversal
	World   *store.Memory
	Service *military.Service
	Archive garrison.Archive

	namer military.Namer
}

// NewHandler creates a handler around a world and an optional archive.
func NewHandler(world *store.Memory, archive garrison.Archive) *Handler {
	if archive == nil {
		archive = garrison.NopArchive{}
	}
	namer := naming.NewTranslator(nil)
	return &Handler{
		World:   world,
		Service: military.NewService(world, namer, archive),
		Archive: archive,
		namer:   namer,
	}
}

// =============================================================================
// SQUAD HANDLERS
// =============================================================================

// ListSquads returns the global roster.
func (h *Handler) ListSquads(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	squads := h.World.Squads()
	dtos := make([]SquadDTO, len(squads))
	for i, sq := range squads {
		dtos[i] = h.toSquadDTO(sq)
	}
	h.mu.RUnlock()
	writeJSON(w, http.StatusOK, dtos)
}

// CreateSquad creates a squad for a staffing-slot assignment.
func (h *Handler) CreateSquad(w http.ResponseWriter, r *http.Request) {
	var req CreateSquadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	h.mu.Lock()
	sq, err := h.Service.CreateSquad(r.Context(), garrison.AssignmentID(req.AssignmentID))
	if err != nil {
		h.mu.Unlock()
		writeError(w, statusFor(err), "Failed to create squad", err)
		return
	}
	dto := h.toSquadDetailDTO(sq)
	h.mu.Unlock()
	writeJSON(w, http.StatusCreated, dto)
}

// GetSquad returns one squad with its full schedule.
func (h *Handler) GetSquad(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	h.mu.RLock()
	sq := h.World.Squad(garrison.SquadID(id))
	if sq == nil {
		h.mu.RUnlock()
		writeError(w, http.StatusNotFound, "Squad not found", nil)
		return
	}
	dto := h.toSquadDetailDTO(sq)
	h.mu.RUnlock()
	writeJSON(w, http.StatusOK, dto)
}

// GetSquadName returns a squad's display name.
func (h *Handler) GetSquadName(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	h.mu.RLock()
	if h.World.Squad(garrison.SquadID(id)) == nil {
		h.mu.RUnlock()
		writeError(w, http.StatusNotFound, "Squad not found", nil)
		return
	}
	dto := SquadNameDTO{
		ID:   id,
		Name: h.Service.SquadName(garrison.SquadID(id)),
	}
	h.mu.RUnlock()
	writeJSON(w, http.StatusOK, dto)
}

// GetReadiness returns the per-routine training-coverage report.
func (h *Handler) GetReadiness(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	h.mu.RLock()
	sq := h.World.Squad(garrison.SquadID(id))
	if sq == nil {
		h.mu.RUnlock()
		writeError(w, http.StatusNotFound, "Squad not found", nil)
		return
	}

	coverage := military.TrainingCoverage(sq)
	h.mu.RUnlock()
	dtos := make([]ReadinessDTO, len(coverage))
	for i, c := range coverage {
		dtos[i] = ReadinessDTO{
			Routine:       c.Routine,
			TrainedMonths: c.TrainedMonths,
			Coverage:      c.Coverage.StringFixed(4),
			MinHeadcount:  c.MinHeadcount,
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// ROOM HANDLERS
// =============================================================================

// SetRoom writes room flags for a squad+zone pair.
func (h *Handler) SetRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	zoneID, ok := pathID(w, r, "zoneID")
	if !ok {
		return
	}

	var req SetRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	h.mu.Lock()
	err := h.Service.SetRoom(r.Context(), garrison.SquadID(id), garrison.ZoneID(zoneID), garrison.UseFlags(req.Flags))
	if err != nil {
		h.mu.Unlock()
		writeError(w, statusFor(err), "Failed to set room", err)
		return
	}
	rooms := h.toSquadDTO(h.World.Squad(garrison.SquadID(id))).Rooms
	h.mu.Unlock()
	writeJSON(w, http.StatusOK, rooms)
}

// GetRoomHistory returns a squad's journaled room changes.
func (h *Handler) GetRoomHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	history, err := h.Archive.RoomHistory(r.Context(), garrison.SquadID(id))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load room history", err)
		return
	}

	dtos := make([]RoomEventDTO, len(history))
	for i, ch := range history {
		dtos[i] = RoomEventDTO{
			SquadID: int32(ch.SquadID),
			ZoneID:  int32(ch.ZoneID),
			Flags:   uint32(ch.Mode),
			Year:    ch.Year,
			Tick:    ch.Tick,
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// DTO CONVERSION
// =============================================================================

func (h *Handler) toSquadDTO(sq *garrison.Squad) SquadDTO {
	dto := SquadDTO{
		ID:              int32(sq.ID),
		OrgID:           int32(sq.EntityID),
		Name:            h.Service.SquadName(sq.ID),
		Alias:           sq.Alias,
		MemberSlots:     len(sq.Positions),
		UniformPriority: sq.UniformPriority,
		CarryFood:       sq.CarryFood,
		CarryWater:      sq.CarryWater,
		Routines:        make([]string, len(sq.Schedule)),
		Rooms:           make([]RoomDTO, len(sq.Rooms)),
	}
	for i, grid := range sq.Schedule {
		dto.Routines[i] = grid.Routine
	}
	for i, room := range sq.Rooms {
		dto.Rooms[i] = RoomDTO{ZoneID: int32(room.ZoneID), Flags: uint32(room.Mode)}
	}
	return dto
}

func (h *Handler) toSquadDetailDTO(sq *garrison.Squad) SquadDetailDTO {
	dto := SquadDetailDTO{SquadDTO: h.toSquadDTO(sq)}
	dto.Schedule = make([]ScheduleGridDTO, len(sq.Schedule))
	for i, grid := range sq.Schedule {
		g := ScheduleGridDTO{Routine: grid.Routine, Months: make([]MonthDTO, garrison.MonthsPerYear)}
		for m, slot := range grid.Months {
			g.Months[m] = MonthDTO{
				SleepMode:      int(slot.SleepMode),
				UniformMode:    int(slot.UniformMode),
				TrainingOrders: slot.TrainingOrders(),
			}
		}
		dto.Schedule[i] = g
	}
	return dto
}

// =============================================================================
// HELPERS
// =============================================================================

// statusFor maps domain sentinels to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, garrison.ErrAlreadyAssigned):
		return http.StatusConflict
	case errors.Is(err, garrison.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, garrison.ErrSquadNotFound),
		errors.Is(err, garrison.ErrZoneNotFound),
		errors.Is(err, garrison.ErrAssignmentNotFound),
		errors.Is(err, garrison.ErrPositionNotFound),
		errors.Is(err, garrison.ErrOrganizationNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// pathID parses an int32 path parameter, writing a 400 on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int32, bool) {
	raw := chi.URLParam(r, name)
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid "+name+" path parameter", err)
		return 0, false
	}
	return int32(v), true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
