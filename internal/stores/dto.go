package stores

import (
	"github.com/google/uuid"

	"github.com/luisabarca/multivend-backend/pkg/enums"
)

// Location is the admin map projection of a store. Coordinates come from the
// static state centroid table, so stores in unknown states carry none.
type Location struct {
	ID       uuid.UUID                `json:"id"`
	Name     string                   `json:"name"`
	City     string                   `json:"city"`
	State    string                   `json:"state"`
	Verified bool                     `json:"verified"`
	Lat      *float64                 `json:"lat,omitempty"`
	Lng      *float64                 `json:"lng,omitempty"`
	Status   enums.VerificationStatus `json:"status"`
}
