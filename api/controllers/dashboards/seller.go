package dashboards

import (
	"net/http"

	"github.com/luisabarca/multivend-backend/api/responses"
	"github.com/luisabarca/multivend-backend/api/validators"
	"github.com/luisabarca/multivend-backend/internal/dashboard"
	"github.com/luisabarca/multivend-backend/pkg/config"
	"github.com/luisabarca/multivend-backend/pkg/logger"
)

// SellerDashboard serves GET /api/v1/seller/dashboard.
func SellerDashboard(svc *dashboard.SellerService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		period, err := parsePeriod(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dash, err := svc.Dashboard(r.Context(), sellerID, period)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dash)
	}
}

// SellerLowStock serves GET /api/v1/seller/alerts/low-stock.
func SellerLowStock(svc *dashboard.SellerService, alerts config.AlertsConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		threshold, err := validators.ParseQueryInt(r, "threshold", alerts.LowStockThreshold, 1, 1000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", alerts.LowStockLimit, 1, 100)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.LowStock(r.Context(), sellerID, threshold, limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// SellerPendingOrders serves GET /api/v1/seller/orders/pending.
func SellerPendingOrders(svc *dashboard.SellerService, alerts config.AlertsConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sellerID, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", alerts.PendingOrderLimit, 1, 100)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.Pending(r.Context(), sellerID, limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}
