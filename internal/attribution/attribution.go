// Package attribution decides which slice of an order's revenue belongs to a
// seller, and whether the order is wholly theirs. Orders in this marketplace
// can mix several sellers' products, so nothing downstream may assume an
// order's total belongs to the seller who fetched it.
package attribution

import (
	"github.com/google/uuid"

	"github.com/luisabarca/multivend-backend/pkg/db/models"
)

// AttributedOrder pairs an order with the seller's computed share of it.
// Pure means the entire order total is attributable to this seller; money is
// integer cents throughout, so purity is exact equality rather than an
// epsilon comparison.
type AttributedOrder struct {
	Order      models.Order
	ShareCents int64
	Pure       bool
}

// Partial reports whether the order is shared with other sellers.
func (a AttributedOrder) Partial() bool {
	return !a.Pure
}

// AnomalyKind classifies data integrity findings during attribution.
type AnomalyKind string

const (
	// AnomalyExcessShare means the seller's item sum exceeds the order
	// total. The order is treated as non-pure, never clamped.
	AnomalyExcessShare AnomalyKind = "excess_share"
	// AnomalyNoItems means an order was fetched for a seller who has no
	// items in it. The upstream join should make this impossible.
	AnomalyNoItems AnomalyKind = "no_items"
)

// Anomaly describes one suspect order for diagnostic logging.
type Anomaly struct {
	OrderID    uuid.UUID
	Kind       AnomalyKind
	ShareCents int64
	TotalCents int64
}

// Result holds the attributed orders for one seller scope.
type Result struct {
	all       []AttributedOrder
	anomalies []Anomaly
}

// Attribute computes, for each fetched order, the seller's revenue share from
// the seller's order items and classifies the order as pure or partial.
// Orders the seller has no items in are excluded from every view and reported
// as anomalies. The input item slice must already be scoped to the seller's
// products; Attribute itself performs no I/O.
func Attribute(orders []models.Order, items []models.OrderItem) Result {
	shareByOrder := make(map[uuid.UUID]int64, len(orders))
	for _, item := range items {
		shareByOrder[item.OrderID] += item.LineCents()
	}

	result := Result{all: make([]AttributedOrder, 0, len(orders))}
	for _, order := range orders {
		share := shareByOrder[order.ID]
		if share == 0 {
			result.anomalies = append(result.anomalies, Anomaly{
				OrderID:    order.ID,
				Kind:       AnomalyNoItems,
				TotalCents: order.TotalCents,
			})
			continue
		}
		if share > order.TotalCents {
			result.anomalies = append(result.anomalies, Anomaly{
				OrderID:    order.ID,
				Kind:       AnomalyExcessShare,
				ShareCents: share,
				TotalCents: order.TotalCents,
			})
		}
		result.all = append(result.all, AttributedOrder{
			Order:      order,
			ShareCents: share,
			Pure:       share == order.TotalCents,
		})
	}
	return result
}

// All returns every attributed order, partial ones included. Operational
// views (order lists, pending orders, the 7-day revenue headline) use this
// set so a seller is never blind to in-flight shared orders; only the
// seller's own share is ever disclosed.
func (r Result) All() []AttributedOrder {
	return r.all
}

// PureOnly returns just the orders wholly attributable to the seller.
// Analytics (trend, category, status breakdowns) consume this subset: counting
// a shared order's activity against one seller's charts would double-count it
// across every seller involved.
func (r Result) PureOnly() []AttributedOrder {
	pure := make([]AttributedOrder, 0, len(r.all))
	for _, a := range r.all {
		if a.Pure {
			pure = append(pure, a)
		}
	}
	return pure
}

// Anomalies lists data integrity findings for the caller to log.
func (r Result) Anomalies() []Anomaly {
	return r.anomalies
}
