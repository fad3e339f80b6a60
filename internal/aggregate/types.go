package aggregate

import (
	"time"

	"github.com/google/uuid"

	"github.com/luisabarca/multivend-backend/pkg/enums"
)

// RevenueOverview is the headline revenue read-model for a seller window.
// Inputs are pure-only attributed orders; partial orders never feed it.
type RevenueOverview struct {
	TotalRevenueCents int64   `json:"total_revenue_cents"`
	TotalOrders       int     `json:"total_orders"`
	AverageOrderCents int64   `json:"average_order_cents"`
	GrowthPercentage  float64 `json:"growth_percentage"`
}

// TrendPoint is one bucket of the revenue trend chart.
type TrendPoint struct {
	Bucket       string `json:"bucket"`
	RevenueCents int64  `json:"revenue_cents"`
}

// CategoryEntry is one slice of a category breakdown. Count is populated by
// the product-count variant, RevenueCents by the revenue variant.
type CategoryEntry struct {
	Name         string `json:"name"`
	Count        int64  `json:"count,omitempty"`
	RevenueCents int64  `json:"revenue_cents,omitempty"`
}

// StatusEntry is one bar of the order status breakdown.
type StatusEntry struct {
	Status enums.OrderStatus `json:"status"`
	Label  string            `json:"label"`
	Count  int64             `json:"count"`
}

// TopEntity is one row of a top-N ranking. Units is populated for products,
// Orders for stores; Growth is only computed where a previous window exists.
type TopEntity struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	RevenueCents int64     `json:"revenue_cents"`
	Orders       int       `json:"orders,omitempty"`
	Units        int64     `json:"units,omitempty"`
	Growth       *float64  `json:"growth,omitempty"`
}

// LowStockAlert is a seller-facing stock warning.
type LowStockAlert struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Stock     int       `json:"stock"`
	Category  string    `json:"category"`
	Severity  string    `json:"severity"`
}

// PendingOrderSummary is an operational order row. SellerCents is the
// seller's own share only; the order total is disclosed so a seller can see
// an order is shared, but never how the remainder splits.
type PendingOrderSummary struct {
	ID          uuid.UUID         `json:"id"`
	Status      enums.OrderStatus `json:"status"`
	Label       string            `json:"label"`
	SellerCents int64             `json:"seller_cents"`
	TotalCents  int64             `json:"total_cents"`
	Partial     bool              `json:"partial"`
	CreatedAt   time.Time         `json:"created_at"`
}
