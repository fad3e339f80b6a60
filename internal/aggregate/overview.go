package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/luisabarca/multivend-backend/internal/attribution"
)

// Overview reduces the current and previous windows' pure orders to the
// headline revenue read-model.
func Overview(current, previous []attribution.AttributedOrder) RevenueOverview {
	currentCents := sumShares(current)
	previousCents := sumShares(previous)

	overview := RevenueOverview{
		TotalRevenueCents: currentCents,
		TotalOrders:       len(current),
		GrowthPercentage:  GrowthPercent(currentCents, previousCents),
	}
	if overview.TotalOrders > 0 {
		overview.AverageOrderCents = decimal.NewFromInt(currentCents).
			Div(decimal.NewFromInt(int64(overview.TotalOrders))).
			Round(0).
			IntPart()
	}
	return overview
}

// GrowthPercent compares a window against the immediately preceding window of
// equal length. A zero previous window yields 100 when the current one has
// revenue and 0 when both are empty, so the chart still signals growth
// without dividing by zero.
func GrowthPercent(currentCents, previousCents int64) float64 {
	if previousCents == 0 {
		if currentCents > 0 {
			return 100
		}
		return 0
	}
	current := decimal.NewFromInt(currentCents)
	previous := decimal.NewFromInt(previousCents)
	return current.Sub(previous).
		Div(previous).
		Mul(decimal.NewFromInt(100)).
		Round(1).
		InexactFloat64()
}

func sumShares(orders []attribution.AttributedOrder) int64 {
	var total int64
	for _, o := range orders {
		total += o.ShareCents
	}
	return total
}
