// Package store provides the in-memory Directory implementation.
package store

import (
	"sync"

	"github.com/warp/garrison-engine/garrison"
)

// =============================================================================
// MEMORY - In-memory world state
// =============================================================================

// Memory holds the engine's entity stores and shared counters in memory.
// It implements garrison.Directory.
//
// The RWMutex guards the maps, the roster, and the counter. Entity records
// themselves are mutated through the pointers lookups return; the engine
// runs all such mutation on a single logic thread.
type Memory struct {
	mu sync.RWMutex

	orgs   map[garrison.OrgID]*garrison.Organization
	squads map[garrison.SquadID]*garrison.Squad
	zones  map[garrison.ZoneID]*garrison.Zone
	roster []*garrison.Squad

	controlling    garrison.OrgID
	hasControlling bool

	nextSquadID garrison.SquadID
	counterLive bool

	now garrison.GameTime
}

// NewMemory returns an empty world with no controlling organization and an
// uninitialized squad-id counter.
func NewMemory() *Memory {
	return &Memory{
		orgs:        make(map[garrison.OrgID]*garrison.Organization),
		squads:      make(map[garrison.SquadID]*garrison.Squad),
		zones:       make(map[garrison.ZoneID]*garrison.Zone),
		controlling: garrison.NoID,
	}
}

// =============================================================================
// SEEDING
// =============================================================================

// AddOrganization registers an organization.
func (m *Memory) AddOrganization(org *garrison.Organization) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orgs[org.ID] = org
}

// AddZone registers a quarters zone.
func (m *Memory) AddZone(z *garrison.Zone) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.zones[z.ID] = z
}

// SetControllingOrg marks the player-controlled organization.
func (m *Memory) SetControllingOrg(id garrison.OrgID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.controlling = id
	m.hasControlling = true
}

// InitSquadCounter initializes the shared squad-id counter. The factory
// refuses to run until this has been called.
func (m *Memory) InitSquadCounter(next garrison.SquadID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextSquadID = next
	m.counterLive = true
}

// SetTime sets the in-game clock.
func (m *Memory) SetTime(t garrison.GameTime) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// =============================================================================
// DIRECTORY IMPLEMENTATION
// =============================================================================

func (m *Memory) Organization(id garrison.OrgID) *garrison.Organization {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.orgs[id]
}

func (m *Memory) Squad(id garrison.SquadID) *garrison.Squad {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.squads[id]
}

func (m *Memory) Zone(id garrison.ZoneID) *garrison.Zone {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.zones[id]
}

// Squads returns a copy of the roster slice; the squads themselves are the
// live records.
func (m *Memory) Squads() []*garrison.Squad {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*garrison.Squad, len(m.roster))
	copy(out, m.roster)
	return out
}

func (m *Memory) ControllingOrg() (garrison.OrgID, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.controlling, m.hasControlling
}

func (m *Memory) PeekNextSquadID() (garrison.SquadID, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.nextSquadID, m.counterLive
}

// CommitSquad advances the counter and links the squad into the roster.
// This is the single commit point of squad creation.
func (m *Memory) CommitSquad(sq *garrison.Squad) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextSquadID++
	m.squads[sq.ID] = sq
	m.roster = append(m.roster, sq)
}

func (m *Memory) Clock() garrison.Clock { return memoryClock{m} }

type memoryClock struct{ m *Memory }

func (c memoryClock) Now() garrison.GameTime {
	c.m.mu.RLock()
	defer c.m.mu.RUnlock()
	return c.m.now
}
