package military

import (
	"github.com/shopspring/decimal"

	"github.com/warp/garrison-engine/garrison"
)

// =============================================================================
// READINESS - Training coverage summary per routine
// =============================================================================

// RoutineCoverage summarizes how much of a year one schedule grid spends
// training.
type RoutineCoverage struct {
	Routine string
	// TrainedMonths counts months with at least one training order.
	TrainedMonths int
	// Coverage is TrainedMonths over twelve, as an exact fraction.
	Coverage decimal.Decimal
	// MinHeadcount is the largest minimum headcount any training order in
	// the grid demands, 0 when the grid never trains.
	MinHeadcount int
}

var monthsPerYear = decimal.NewFromInt(garrison.MonthsPerYear)

// TrainingCoverage reports one coverage entry per schedule grid, in routine
// order. Read-only.
func TrainingCoverage(sq *garrison.Squad) []RoutineCoverage {
	out := make([]RoutineCoverage, 0, len(sq.Schedule))
	for _, grid := range sq.Schedule {
		cov := RoutineCoverage{Routine: grid.Routine}
		for _, month := range grid.Months {
			trained := false
			for _, order := range month.Orders {
				if order.Order.Kind != garrison.OrderKindTrain {
					continue
				}
				trained = true
				if order.MinCount > cov.MinHeadcount {
					cov.MinHeadcount = order.MinCount
				}
			}
			if trained {
				cov.TrainedMonths++
			}
		}
		cov.Coverage = decimal.NewFromInt(int64(cov.TrainedMonths)).Div(monthsPerYear)
		out = append(out, cov)
	}
	return out
}
