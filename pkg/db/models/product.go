package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a seller listing. Category is free text and optional; aggregation
// buckets uncategorized products under "Other".
type Product struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	StoreID    uuid.UUID `gorm:"column:store_id;type:uuid;not null;index"`
	Name       string    `gorm:"column:name;not null"`
	Category   *string   `gorm:"column:category"`
	Stock      int       `gorm:"column:stock;not null;default:0"`
	PriceCents int64     `gorm:"column:price_cents;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// CategoryOrOther normalizes the optional category for aggregation.
func (p Product) CategoryOrOther() string {
	if p.Category == nil || *p.Category == "" {
		return "Other"
	}
	return *p.Category
}
