package dashboard

import (
	"time"

	"github.com/google/uuid"

	"github.com/luisabarca/multivend-backend/internal/aggregate"
	"github.com/luisabarca/multivend-backend/internal/stores"
	"github.com/luisabarca/multivend-backend/pkg/enums"
)

// Dashboard kind labels used for cache keys, metrics, and log fields.
const (
	KindSeller = "seller"
	KindBuyer  = "buyer"
	KindAdmin  = "admin"
)

// SellerDashboard is the seller read-model. Charts are pure-only; the card
// row and pending orders include the seller's share of partial orders. Every
// panel, pending orders included, covers the current and previous windows;
// the standalone pending endpoint serves the unbounded list.
type SellerDashboard struct {
	Period     string                          `json:"period"`
	Cards      []aggregate.SummaryCard         `json:"cards"`
	Overview   aggregate.RevenueOverview       `json:"overview"`
	Trend      []aggregate.TrendPoint          `json:"trend"`
	Categories []aggregate.CategoryEntry       `json:"categories"`
	Statuses   []aggregate.StatusEntry         `json:"statuses"`
	Top        []aggregate.TopEntity           `json:"top_products"`
	LowStock   []aggregate.LowStockAlert       `json:"low_stock"`
	Pending    []aggregate.PendingOrderSummary `json:"pending_orders"`
}

// BuyerOrder is one row of the buyer's recent order list.
type BuyerOrder struct {
	ID         uuid.UUID         `json:"id"`
	Status     enums.OrderStatus `json:"status"`
	Label      string            `json:"label"`
	TotalCents int64             `json:"total_cents"`
	CreatedAt  time.Time         `json:"created_at"`
}

// BuyerDashboard is the buyer read-model, built from the buyer's own orders.
type BuyerDashboard struct {
	Period   string                  `json:"period"`
	Cards    []aggregate.SummaryCard `json:"cards"`
	Trend    []aggregate.TrendPoint  `json:"trend"`
	Statuses []aggregate.StatusEntry `json:"statuses"`
	Recent   []BuyerOrder            `json:"recent_orders"`
}

// AdminDashboard is the platform read-model.
type AdminDashboard struct {
	Period     string                    `json:"period"`
	Cards      []aggregate.SummaryCard   `json:"cards"`
	Trend      []aggregate.TrendPoint    `json:"trend"`
	Categories []aggregate.CategoryEntry `json:"categories"`
	Statuses   []aggregate.StatusEntry   `json:"statuses"`
	TopStores  []aggregate.TopEntity     `json:"top_stores"`
	Locations  []stores.Location         `json:"locations"`
}

// emptySeller is the zero-value seller dashboard with all sections present.
func emptySeller(period Period) SellerDashboard {
	return SellerDashboard{
		Period:     period.String(),
		Cards:      aggregate.SellerCards(aggregate.RevenueOverview{}, 0, 0),
		Trend:      []aggregate.TrendPoint{},
		Categories: []aggregate.CategoryEntry{},
		Statuses:   []aggregate.StatusEntry{},
		Top:        []aggregate.TopEntity{},
		LowStock:   []aggregate.LowStockAlert{},
		Pending:    []aggregate.PendingOrderSummary{},
	}
}

func emptyBuyer(period Period) BuyerDashboard {
	return BuyerDashboard{
		Period:   period.String(),
		Cards:    aggregate.BuyerCards(0, 0, 0),
		Trend:    []aggregate.TrendPoint{},
		Statuses: []aggregate.StatusEntry{},
		Recent:   []BuyerOrder{},
	}
}

func emptyAdmin(period Period) AdminDashboard {
	return AdminDashboard{
		Period:     period.String(),
		Cards:      aggregate.AdminCards(0, 0, 0, 0, 0),
		Trend:      []aggregate.TrendPoint{},
		Categories: []aggregate.CategoryEntry{},
		Statuses:   []aggregate.StatusEntry{},
		TopStores:  []aggregate.TopEntity{},
		Locations:  []stores.Location{},
	}
}
