package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/luisabarca/multivend-backend/pkg/enums"
)

// Store represents a seller tenant. A store belongs to exactly one owning
// seller; a seller may own several stores.
type Store struct {
	ID                 uuid.UUID                `gorm:"column:id;type:uuid;primaryKey"`
	OwnerID            uuid.UUID                `gorm:"column:owner_id;type:uuid;not null;index"`
	Name               string                   `gorm:"column:name;not null"`
	City               string                   `gorm:"column:city;not null"`
	State              string                   `gorm:"column:state;not null"`
	VerificationStatus enums.VerificationStatus `gorm:"column:verification_status;not null;default:'pending'"`
	CreatedAt          time.Time                `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time                `gorm:"column:updated_at;autoUpdateTime"`
}
