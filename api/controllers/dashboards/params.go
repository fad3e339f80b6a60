package dashboards

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/luisabarca/multivend-backend/api/middleware"
	"github.com/luisabarca/multivend-backend/api/validators"
	"github.com/luisabarca/multivend-backend/internal/dashboard"
	pkgerrors "github.com/luisabarca/multivend-backend/pkg/errors"
)

// periodQuery is the shared dashboard query DTO; all three dashboards accept
// the same presets.
type periodQuery struct {
	Period string `json:"period" validate:"omitempty,oneof=7d 30d 90d 1y"`
}

// parsePeriod validates the period query parameter before any fetch.
func parsePeriod(r *http.Request) (dashboard.Period, error) {
	query := periodQuery{Period: strings.TrimSpace(r.URL.Query().Get("period"))}
	if err := validators.ValidateStruct(&query); err != nil {
		return "", err
	}
	return dashboard.ParsePeriod(query.Period)
}

// actorID extracts the authenticated user id seeded by the auth middleware.
func actorID(r *http.Request) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid actor id")
	}
	return id, nil
}
