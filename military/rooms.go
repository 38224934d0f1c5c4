/*
rooms.go - Room assignment synchronizer

PURPOSE:
  Keeps the two independently owned halves of a squad<->zone room link
  consistent: the squad's Rooms list and the zone's Occupancy list. Both
  lists stay sorted ascending by counterpart id so lookups and diffs are
  deterministic. Every room-occupancy mutation in the engine must go through
  SetRoom - this routine is the sole integrity guardian of the pair.

ALGORITHM (SetRoom):
  1. Find the existing record on each side (linear scan; lists are small).
  2. Zero flags with no record on either side: nothing to clear, no-op.
  3. Create whichever mirror record is missing, inserting at its sorted
     position. The squad-side record is not created when zero flags are
     being written (avoids a create-then-delete round trip).
  4. Write the flags into both records.
  5. Zero flags: remove the squad-side record for the zone.

ZONE-SIDE RETENTION:
  Clearing flags prunes only the squad side. The zone keeps its occupancy
  record with a zero mode - the zone remembers former occupants. This
  matches the engine's observed behavior; see DESIGN.md for the decision.

SEE ALSO:
  - garrison/types.go: RoomLink, RoomOccupancy, UseFlags
*/
package military

import (
	"context"
	"fmt"
	"sort"

	"github.com/warp/garrison-engine/garrison"
)

// SetRoom creates, updates, or clears the room link between a squad and a
// quarters zone. Writing zero flags clears the squad's use of the zone.
func (s *Service) SetRoom(ctx context.Context, squadID garrison.SquadID, zoneID garrison.ZoneID, flags garrison.UseFlags) error {
	sq := s.dir.Squad(squadID)
	if sq == nil {
		return fmt.Errorf("squad %d: %w", squadID, garrison.ErrSquadNotFound)
	}
	zone := s.dir.Zone(zoneID)
	if zone == nil {
		return fmt.Errorf("zone %d: %w", zoneID, garrison.ErrZoneNotFound)
	}

	link := sq.Room(zoneID)
	occupancy := zone.Occupant(squadID)

	// Clearing a link that exists on neither side: nothing to do. Creating
	// empty records just to delete them again would churn both lists.
	if flags.IsZero() && link == nil && occupancy == nil {
		return nil
	}

	// When zero flags are written and the squad side has no record, skip
	// creating one: it would be removed again in the prune step below.
	skipSquadSide := flags.IsZero() && link == nil

	if !skipSquadSide && link == nil {
		link = &garrison.RoomLink{ZoneID: zoneID}
		insertRoomLink(&sq.Rooms, link)
	}
	if occupancy == nil {
		occupancy = &garrison.RoomOccupancy{SquadID: squadID}
		insertOccupancy(&zone.Occupancy, occupancy)
	}

	if link != nil {
		link.Mode = flags
	}
	occupancy.Mode = flags

	if flags.IsZero() && !skipSquadSide {
		removeRoomLink(&sq.Rooms, zoneID)
	}

	if err := s.archive.RecordRoomChange(ctx, garrison.RoomChange{
		SquadID: squadID,
		ZoneID:  zoneID,
		Mode:    flags,
		Year:    s.dir.Clock().Now().Year,
		Tick:    s.dir.Clock().Now().YearTick,
	}); err != nil {
		return fmt.Errorf("room change for squad %d committed but not journaled: %w", squadID, err)
	}
	return nil
}

// insertRoomLink inserts at the sorted position, keeping the list ascending
// by zone id.
func insertRoomLink(rooms *[]*garrison.RoomLink, link *garrison.RoomLink) {
	i := sort.Search(len(*rooms), func(i int) bool {
		return (*rooms)[i].ZoneID >= link.ZoneID
	})
	*rooms = append(*rooms, nil)
	copy((*rooms)[i+1:], (*rooms)[i:])
	(*rooms)[i] = link
}

// insertOccupancy inserts at the sorted position, keeping the list ascending
// by squad id.
func insertOccupancy(occ *[]*garrison.RoomOccupancy, rec *garrison.RoomOccupancy) {
	i := sort.Search(len(*occ), func(i int) bool {
		return (*occ)[i].SquadID >= rec.SquadID
	})
	*occ = append(*occ, nil)
	copy((*occ)[i+1:], (*occ)[i:])
	(*occ)[i] = rec
}

func removeRoomLink(rooms *[]*garrison.RoomLink, zoneID garrison.ZoneID) {
	for i := 0; i < len(*rooms); i++ {
		if (*rooms)[i].ZoneID == zoneID {
			*rooms = append((*rooms)[:i], (*rooms)[i+1:]...)
			i--
		}
	}
}
