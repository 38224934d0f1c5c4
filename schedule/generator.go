/*
Package schedule generates 12-month duty schedule grids from named routines.

PURPOSE:
  Pure mapping from a duty routine name to a garrison.ScheduleGrid: sleep
  mode, uniform mode, and training orders for each of the twelve months.
  One grid is generated per routine configured on the owning organization;
  the factory calls Generate once per routine at squad creation.

ROUTINE POLICIES:
  "Off duty"            sleep at will, uniform equip-only, no training
  "Staggered training"  six training months chosen by counter parity,
                        sleep at will on those months
  "Constant training"   training every month, sleep at will every month
  "Ready"               sleep ready, uniform worn full-time, no training
  anything else         sleep at will, uniform worn, no training

STAGGER PARITY:
  The staggered routine keys off the parity of the shared next-squad-id
  counter as read at generation time, not off the squad's own id: an odd
  counter trains months {3,4,5,9,10,11}, an even one {0,1,2,6,7,8}. The
  stagger therefore alternates with squad creation order system-wide.
  Deleting a squad and creating another can leave two squads on the same
  phase. This coupling is engine behavior and is preserved as-is.

PURITY:
  Generate is a pure function of its arguments. The caller supplies the
  counter value and the current in-game time; nothing here reads or mutates
  shared state.

SEE ALSO:
  - garrison/schedule.go: the grid, month-slot, and order types
  - military/factory.go: the caller
*/
package schedule

import (
	"github.com/warp/garrison-engine/garrison"
)

// Training-month sets for the staggered routine, selected by counter parity.
var (
	staggerOddMonths  = [6]int{3, 4, 5, 9, 10, 11}
	staggerEvenMonths = [6]int{0, 1, 2, 6, 7, 8}
)

// Generate builds the schedule grid for one duty routine.
//
// squadSize fixes the length of every month's order-assignment marker list
// and of every training order's per-member list. nextSquadID is the shared
// counter value at generation time; it decides the staggered routine's
// training months and nothing else. now timestamps training orders.
func Generate(routine string, squadSize int, nextSquadID garrison.SquadID, now garrison.GameTime) garrison.ScheduleGrid {
	grid := garrison.ScheduleGrid{Routine: routine}

	for i := range grid.Months {
		markers := make([]int32, squadSize)
		for j := range markers {
			markers[j] = garrison.NoID
		}
		grid.Months[i].OrderAssignments = markers
	}

	switch routine {
	case garrison.RoutineOffDuty:
		for i := range grid.Months {
			grid.Months[i].SleepMode = garrison.SleepAtWill
			grid.Months[i].UniformMode = garrison.UniformEquipOnly
		}

	case garrison.RoutineStaggeredTraining:
		months := staggerEvenMonths
		if nextSquadID&1 == 1 {
			months = staggerOddMonths
		}
		for _, month := range months {
			insertTrainingOrder(&grid.Months[month], squadSize, now)
			// Members still sleep at will on training months.
			grid.Months[month].SleepMode = garrison.SleepAtWill
		}

	case garrison.RoutineConstantTraining:
		for i := range grid.Months {
			insertTrainingOrder(&grid.Months[i], squadSize, now)
			grid.Months[i].SleepMode = garrison.SleepAtWill
		}

	case garrison.RoutineReady:
		for i := range grid.Months {
			grid.Months[i].SleepMode = garrison.SleepReady
			grid.Months[i].UniformMode = garrison.UniformWorn
		}

	default:
		for i := range grid.Months {
			grid.Months[i].SleepMode = garrison.SleepAtWill
			grid.Months[i].UniformMode = garrison.UniformWorn
		}
	}

	return grid
}

// insertTrainingOrder appends one training order to the month and forces the
// uniform on while training.
func insertTrainingOrder(m *garrison.MonthSlot, squadSize int, now garrison.GameTime) {
	order := garrison.ScheduleOrder{
		MinCount:  squadSize,
		Positions: make([]int32, squadSize),
		Order: garrison.Order{
			Kind: garrison.OrderKindTrain,
			Train: &garrison.TrainOrder{
				Year:     now.Year,
				YearTick: now.YearTick,
			},
		},
	}
	m.Orders = append(m.Orders, order)
	m.UniformMode = garrison.UniformWorn
}
