package dashboards

import (
	"net/http"

	"github.com/luisabarca/multivend-backend/api/responses"
	"github.com/luisabarca/multivend-backend/internal/dashboard"
	"github.com/luisabarca/multivend-backend/pkg/logger"
)

// AdminDashboard serves GET /api/admin/v1/dashboard.
func AdminDashboard(svc *dashboard.AdminService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := parsePeriod(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dash, err := svc.Dashboard(r.Context(), period)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dash)
	}
}
