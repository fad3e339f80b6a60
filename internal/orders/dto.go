package orders

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/luisabarca/multivend-backend/pkg/db/models"
	"github.com/luisabarca/multivend-backend/pkg/enums"
)

// Filter narrows an order fetch. Filtering happens at the query boundary so
// result sizes stay bounded; it is never applied after materialization.
type Filter struct {
	Status *enums.OrderStatus
	From   *time.Time
	To     *time.Time
}

func (f Filter) apply(query *gorm.DB) *gorm.DB {
	if f.Status != nil {
		query = query.Where("status = ?", *f.Status)
	}
	if f.From != nil {
		query = query.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		query = query.Where("created_at < ?", *f.To)
	}
	return query
}

// DistinctOrderIDs extracts the unique order ids referenced by the given
// items, preserving first-seen order so downstream results are deterministic.
func DistinctOrderIDs(items []models.OrderItem) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(items))
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.OrderID]; ok {
			continue
		}
		seen[item.OrderID] = struct{}{}
		ids = append(ids, item.OrderID)
	}
	return ids
}
