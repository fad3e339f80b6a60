package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderItem is one product line inside an order. Each item references exactly
// one product and therefore, transitively, exactly one store and seller.
type OrderItem struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"column:order_id;type:uuid;not null;index"`
	ProductID      uuid.UUID `gorm:"column:product_id;type:uuid;not null;index"`
	UnitPriceCents int64     `gorm:"column:unit_price_cents;not null"`
	Qty            int       `gorm:"column:qty;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

// LineCents is the revenue contribution of this line.
func (i OrderItem) LineCents() int64 {
	return i.UnitPriceCents * int64(i.Qty)
}
