package garrison

// =============================================================================
// SCHEDULE GRID - 12-month behavior table for one duty routine
// =============================================================================

// MonthsPerYear is the fixed number of slots in every schedule grid.
const MonthsPerYear = 12

// SleepMode controls where squad members sleep during a month.
type SleepMode int

const (
	// SleepAtWill lets members sleep wherever they like.
	SleepAtWill SleepMode = 0
	// SleepInRoom confines sleep to the squad's assigned rooms.
	SleepInRoom SleepMode = 1
	// SleepReady keeps members equipped and ready at all times.
	SleepReady SleepMode = 2
)

// UniformMode controls when squad members wear their uniform.
type UniformMode int

const (
	// UniformWorn keeps the uniform on full-time.
	UniformWorn UniformMode = 0
	// UniformEquipOnly equips the uniform only when orders require it.
	UniformEquipOnly UniformMode = 1
)

// ScheduleGrid is the 12-month behavior table generated for one duty routine.
type ScheduleGrid struct {
	Routine string
	Months  [MonthsPerYear]MonthSlot
}

// MonthSlot is one month of a schedule grid.
//
// OrderAssignments has one marker per squad member slot; a marker is the
// index of the order the member is assigned to, or NoID when unassigned.
// Its length equals the squad's member count for every month.
type MonthSlot struct {
	SleepMode        SleepMode
	UniformMode      UniformMode
	Orders           []ScheduleOrder
	OrderAssignments []int32
}

// TrainingOrders counts the training orders scheduled in this month.
func (m MonthSlot) TrainingOrders() int {
	n := 0
	for _, o := range m.Orders {
		if o.Order.Kind == OrderKindTrain {
			n++
		}
	}
	return n
}

// =============================================================================
// ORDERS - Tagged variant, closed set of duty order kinds
// =============================================================================

// OrderKind discriminates the Order variant. The set is closed: adding a
// kind means adding a payload field to Order alongside it.
type OrderKind int

const (
	// OrderKindTrain is a training order.
	OrderKindTrain OrderKind = iota
)

// Order is the tagged payload of a schedule order. Exactly the field matching
// Kind is set.
type Order struct {
	Kind  OrderKind
	Train *TrainOrder
}

// TrainOrder carries the in-game time at which the order was created.
type TrainOrder struct {
	Year     int32
	YearTick int32
}

// ScheduleOrder is one order within a month slot. Positions has one entry
// per squad member slot, mirroring the order's per-member bookkeeping.
type ScheduleOrder struct {
	MinCount  int
	Positions []int32
	Order     Order
}
