package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/luisabarca/multivend-backend/pkg/enums"
)

// Order is the buyer-facing order header. TotalCents is the full amount
// charged to the buyer and may span several sellers' products.
type Order struct {
	ID         uuid.UUID         `gorm:"column:id;type:uuid;primaryKey"`
	BuyerID    uuid.UUID         `gorm:"column:buyer_id;type:uuid;not null;index"`
	TotalCents int64             `gorm:"column:total_cents;not null"`
	Status     enums.OrderStatus `gorm:"column:status;not null;default:'pending'"`
	CreatedAt  time.Time         `gorm:"column:created_at;autoCreateTime"`
}
