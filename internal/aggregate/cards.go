package aggregate

import (
	"strconv"

	"github.com/luisabarca/multivend-backend/pkg/types"
)

// Trend direction hints for summary cards.
const (
	TrendUp   = "up"
	TrendDown = "down"
	TrendFlat = "flat"
)

// SummaryCard is the uniform headline-metric tuple every dashboard renders.
type SummaryCard struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Value       string `json:"value"`
	ChangeLabel string `json:"change_label,omitempty"`
	Trend       string `json:"trend,omitempty"`
}

// SellerCards builds the seller headline row. The revenue card deliberately
// uses the operational (partial-inclusive) total so in-flight shared orders
// show up in the headline; the orders and average cards reflect the pure-only
// overview that feeds the charts.
func SellerCards(overview RevenueOverview, operationalRevenueCents int64, lowStockCount int) []SummaryCard {
	change, trend := growthLabel(overview.GrowthPercentage)
	return []SummaryCard{
		{
			ID:          "revenue",
			Title:       "Revenue",
			Value:       types.FormatCents(operationalRevenueCents),
			ChangeLabel: change,
			Trend:       trend,
		},
		{
			ID:    "orders",
			Title: "Orders",
			Value: strconv.Itoa(overview.TotalOrders),
		},
		{
			ID:    "average_order",
			Title: "Average Order Value",
			Value: types.FormatCents(overview.AverageOrderCents),
		},
		{
			ID:    "low_stock",
			Title: "Low Stock Products",
			Value: strconv.Itoa(lowStockCount),
		},
	}
}

// BuyerCards builds the buyer headline row from the buyer's own orders.
func BuyerCards(totalSpentCents int64, orderCount int, averageCents int64) []SummaryCard {
	return []SummaryCard{
		{ID: "total_spent", Title: "Total Spent", Value: types.FormatCents(totalSpentCents)},
		{ID: "orders", Title: "Orders", Value: strconv.Itoa(orderCount)},
		{ID: "average_order", Title: "Average Order", Value: types.FormatCents(averageCents)},
	}
}

// AdminCards builds the platform headline row.
func AdminCards(grossRevenueCents int64, growth float64, orderCount, productCount, activeStores int64) []SummaryCard {
	change, trend := growthLabel(growth)
	return []SummaryCard{
		{
			ID:          "gross_revenue",
			Title:       "Gross Revenue",
			Value:       types.FormatCents(grossRevenueCents),
			ChangeLabel: change,
			Trend:       trend,
		},
		{ID: "orders", Title: "Total Orders", Value: strconv.FormatInt(orderCount, 10)},
		{ID: "products", Title: "Products Listed", Value: strconv.FormatInt(productCount, 10)},
		{ID: "active_stores", Title: "Active Stores", Value: strconv.FormatInt(activeStores, 10)},
	}
}

func growthLabel(growth float64) (string, string) {
	label := strconv.FormatFloat(growth, 'f', -1, 64) + "% vs previous period"
	switch {
	case growth > 0:
		return "+" + label, TrendUp
	case growth < 0:
		return label, TrendDown
	default:
		return label, TrendFlat
	}
}
