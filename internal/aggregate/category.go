package aggregate

import (
	"sort"

	"github.com/google/uuid"

	"github.com/luisabarca/multivend-backend/pkg/db/models"
)

// categoryCap bounds every category breakdown to its largest entries.
const categoryCap = 10

// CategoryCounts tallies products per category for the platform view.
// Uncategorized products land in "Other". Entries are sorted descending by
// count with ties kept in first-seen order, and capped at the top ten.
func CategoryCounts(products []models.Product) []CategoryEntry {
	counts := make(map[string]int64)
	order := make([]string, 0)
	for _, p := range products {
		name := p.CategoryOrOther()
		if _, ok := counts[name]; !ok {
			order = append(order, name)
		}
		counts[name]++
	}

	entries := make([]CategoryEntry, 0, len(order))
	for _, name := range order {
		entries = append(entries, CategoryEntry{Name: name, Count: counts[name]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return capEntries(entries)
}

// CategoryRevenue tallies the seller's revenue per category from order items,
// restricted to pure orders so shared orders cannot skew a seller's category
// mix. Items referencing unknown products land in "Other".
func CategoryRevenue(items []models.OrderItem, products []models.Product, pureOrderIDs map[uuid.UUID]struct{}) []CategoryEntry {
	categoryByProduct := make(map[uuid.UUID]string, len(products))
	for _, p := range products {
		categoryByProduct[p.ID] = p.CategoryOrOther()
	}

	revenue := make(map[string]int64)
	order := make([]string, 0)
	for _, item := range items {
		if _, ok := pureOrderIDs[item.OrderID]; !ok {
			continue
		}
		name, ok := categoryByProduct[item.ProductID]
		if !ok {
			name = "Other"
		}
		if _, seen := revenue[name]; !seen {
			order = append(order, name)
		}
		revenue[name] += item.LineCents()
	}

	entries := make([]CategoryEntry, 0, len(order))
	for _, name := range order {
		entries = append(entries, CategoryEntry{Name: name, RevenueCents: revenue[name]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].RevenueCents > entries[j].RevenueCents
	})
	return capEntries(entries)
}

func capEntries(entries []CategoryEntry) []CategoryEntry {
	if len(entries) > categoryCap {
		return entries[:categoryCap]
	}
	return entries
}
