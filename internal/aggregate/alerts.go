package aggregate

import (
	"sort"

	"github.com/luisabarca/multivend-backend/internal/attribution"
	"github.com/luisabarca/multivend-backend/pkg/db/models"
	"github.com/luisabarca/multivend-backend/pkg/enums"
)

// Severity tiers for stock levels, tightest first.
const (
	SeverityOutOfStock = "Out of Stock"
	SeverityCritical   = "Critical"
	SeverityLow        = "Low"
	SeverityRunningLow = "Running Low"
)

// StockSeverity maps a stock level to its seller-facing tier.
func StockSeverity(stock int) string {
	switch {
	case stock == 0:
		return SeverityOutOfStock
	case stock < 3:
		return SeverityCritical
	case stock < 5:
		return SeverityLow
	default:
		return SeverityRunningLow
	}
}

// LowStockAlerts projects already-filtered low stock products into alerts.
// The repository delivers them sorted ascending by stock; the projection
// keeps that order.
func LowStockAlerts(products []models.Product) []LowStockAlert {
	alerts := make([]LowStockAlert, 0, len(products))
	for _, p := range products {
		alerts = append(alerts, LowStockAlert{
			ProductID: p.ID,
			Name:      p.Name,
			Stock:     p.Stock,
			Category:  p.CategoryOrOther(),
			Severity:  StockSeverity(p.Stock),
		})
	}
	return alerts
}

// PendingOrders projects in-flight orders for the operational view. Partial
// orders are included deliberately with the seller's own share alongside the
// order total; hiding them would blind a seller to shared orders awaiting
// action. Newest orders come first.
func PendingOrders(attributed []attribution.AttributedOrder, limit int) []PendingOrderSummary {
	summaries := make([]PendingOrderSummary, 0, len(attributed))
	for _, a := range attributed {
		switch a.Order.Status {
		case enums.OrderStatusPending, enums.OrderStatusProcessing:
		default:
			continue
		}
		summaries = append(summaries, PendingOrderSummary{
			ID:          a.Order.ID,
			Status:      a.Order.Status,
			Label:       a.Order.Status.DisplayLabel(),
			SellerCents: a.ShareCents,
			TotalCents:  a.Order.TotalCents,
			Partial:     a.Partial(),
			CreatedAt:   a.Order.CreatedAt,
		})
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})
	if limit > 0 && len(summaries) > limit {
		return summaries[:limit]
	}
	return summaries
}
