package aggregate

import (
	"sort"

	"github.com/luisabarca/multivend-backend/pkg/db/models"
)

// StatusDistribution counts orders per status, remapping raw statuses to
// their display labels and sorting descending by count with stable ties.
// Statuses with no orders are omitted.
func StatusDistribution(orders []models.Order) []StatusEntry {
	counts := make(map[string]*StatusEntry)
	seen := make([]string, 0)
	for _, o := range orders {
		key := string(o.Status)
		entry, ok := counts[key]
		if !ok {
			entry = &StatusEntry{Status: o.Status, Label: o.Status.DisplayLabel()}
			counts[key] = entry
			seen = append(seen, key)
		}
		entry.Count++
	}

	entries := make([]StatusEntry, 0, len(seen))
	for _, key := range seen {
		entries = append(entries, *counts[key])
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}
