package store_test

import (
	"testing"

	"github.com/warp/garrison-engine/garrison"
	"github.com/warp/garrison-engine/garrison/store"
)

func TestMemory_UninitializedSharedState(t *testing.T) {
	world := store.NewMemory()

	if _, ok := world.PeekNextSquadID(); ok {
		t.Error("counter should report uninitialized")
	}
	if _, ok := world.ControllingOrg(); ok {
		t.Error("controlling org should report unset")
	}
	if world.Organization(1) != nil || world.Squad(1) != nil || world.Zone(1) != nil {
		t.Error("empty world should resolve nothing")
	}
}

func TestMemory_CommitSquadAdvancesCounter(t *testing.T) {
	world := store.NewMemory()
	world.InitSquadCounter(7)

	id, ok := world.PeekNextSquadID()
	if !ok || id != 7 {
		t.Fatalf("peek = (%d,%v), want (7,true)", id, ok)
	}

	sq := &garrison.Squad{ID: id}
	world.CommitSquad(sq)

	if next, _ := world.PeekNextSquadID(); next != 8 {
		t.Errorf("counter after commit = %d, want 8", next)
	}
	if world.Squad(7) != sq {
		t.Error("committed squad not resolvable by id")
	}
	roster := world.Squads()
	if len(roster) != 1 || roster[0] != sq {
		t.Errorf("roster = %v, want the committed squad", roster)
	}
}

func TestMemory_ClockReflectsSetTime(t *testing.T) {
	world := store.NewMemory()
	world.SetTime(garrison.GameTime{Year: 125, YearTick: 3600})

	now := world.Clock().Now()
	if now.Year != 125 || now.YearTick != 3600 {
		t.Fatalf("clock = %+v, want year 125 tick 3600", now)
	}
}
