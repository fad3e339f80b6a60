package dashboards

import (
	"net/http"

	"github.com/luisabarca/multivend-backend/api/responses"
	"github.com/luisabarca/multivend-backend/internal/dashboard"
	"github.com/luisabarca/multivend-backend/pkg/logger"
)

// BuyerDashboard serves GET /api/v1/buyer/dashboard.
func BuyerDashboard(svc *dashboard.BuyerService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		buyerID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		period, err := parsePeriod(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dash, err := svc.Dashboard(r.Context(), buyerID, period)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dash)
	}
}
