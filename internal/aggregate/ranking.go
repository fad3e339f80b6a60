package aggregate

import (
	"sort"

	"github.com/google/uuid"

	"github.com/luisabarca/multivend-backend/pkg/db/models"
)

// DefaultTopN bounds rankings when the caller does not ask for a size.
const DefaultTopN = 10

// TopProducts ranks a seller's products by revenue over pure orders. Ties
// keep first-seen input order; the result is truncated to n (DefaultTopN when
// n <= 0).
func TopProducts(items []models.OrderItem, products []models.Product, pureOrderIDs map[uuid.UUID]struct{}, n int) []TopEntity {
	nameByProduct := make(map[uuid.UUID]string, len(products))
	for _, p := range products {
		nameByProduct[p.ID] = p.Name
	}

	type acc struct {
		revenue int64
		units   int64
	}
	totals := make(map[uuid.UUID]*acc)
	order := make([]uuid.UUID, 0)
	for _, item := range items {
		if _, ok := pureOrderIDs[item.OrderID]; !ok {
			continue
		}
		a, ok := totals[item.ProductID]
		if !ok {
			a = &acc{}
			totals[item.ProductID] = a
			order = append(order, item.ProductID)
		}
		a.revenue += item.LineCents()
		a.units += int64(item.Qty)
	}

	entities := make([]TopEntity, 0, len(order))
	for _, id := range order {
		entities = append(entities, TopEntity{
			ID:           id,
			Name:         nameByProduct[id],
			RevenueCents: totals[id].revenue,
			Units:        totals[id].units,
		})
	}
	return rank(entities, n)
}

// StoreRevenue is the per-store accumulation used by the platform ranking.
type StoreRevenue struct {
	RevenueCents int64
	OrderIDs     map[uuid.UUID]struct{}
}

// AccumulateStoreRevenue folds order items into per-store revenue using the
// product-to-store mapping. Items referencing unknown products are skipped;
// the caller logs them as anomalies.
func AccumulateStoreRevenue(items []models.OrderItem, products []models.Product) map[uuid.UUID]*StoreRevenue {
	storeByProduct := make(map[uuid.UUID]uuid.UUID, len(products))
	for _, p := range products {
		storeByProduct[p.ID] = p.StoreID
	}

	totals := make(map[uuid.UUID]*StoreRevenue)
	for _, item := range items {
		storeID, ok := storeByProduct[item.ProductID]
		if !ok {
			continue
		}
		sr, ok := totals[storeID]
		if !ok {
			sr = &StoreRevenue{OrderIDs: make(map[uuid.UUID]struct{})}
			totals[storeID] = sr
		}
		sr.RevenueCents += item.LineCents()
		sr.OrderIDs[item.OrderID] = struct{}{}
	}
	return totals
}

// TopStores ranks stores by platform-wide revenue in the current window.
// Growth is computed genuinely against the preceding window's revenue for
// the same store using the standard growth rule; there are no placeholder
// values.
func TopStores(stores []models.Store, current, previous map[uuid.UUID]*StoreRevenue, n int) []TopEntity {
	entities := make([]TopEntity, 0, len(stores))
	for _, store := range stores {
		sr, ok := current[store.ID]
		if !ok {
			continue
		}
		var prevCents int64
		if prev, ok := previous[store.ID]; ok {
			prevCents = prev.RevenueCents
		}
		growth := GrowthPercent(sr.RevenueCents, prevCents)
		entities = append(entities, TopEntity{
			ID:           store.ID,
			Name:         store.Name,
			RevenueCents: sr.RevenueCents,
			Orders:       len(sr.OrderIDs),
			Growth:       &growth,
		})
	}
	return rank(entities, n)
}

func rank(entities []TopEntity, n int) []TopEntity {
	if n <= 0 {
		n = DefaultTopN
	}
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].RevenueCents > entities[j].RevenueCents
	})
	if len(entities) > n {
		return entities[:n]
	}
	return entities
}
