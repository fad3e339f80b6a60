package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/luisabarca/multivend-backend/api/controllers"
	dashcontrollers "github.com/luisabarca/multivend-backend/api/controllers/dashboards"
	"github.com/luisabarca/multivend-backend/api/middleware"
	"github.com/luisabarca/multivend-backend/internal/dashboard"
	"github.com/luisabarca/multivend-backend/pkg/config"
	"github.com/luisabarca/multivend-backend/pkg/enums"
	"github.com/luisabarca/multivend-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	pingers map[string]controllers.Pinger,
	sellerService *dashboard.SellerService,
	buyerService *dashboard.BuyerService,
	adminService *dashboard.AdminService,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, pingers))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Route("/seller", func(r chi.Router) {
			r.Use(middleware.RequireRole(string(enums.RoleSeller), logg))
			r.Get("/dashboard", dashcontrollers.SellerDashboard(sellerService, logg))
			r.Get("/alerts/low-stock", dashcontrollers.SellerLowStock(sellerService, cfg.Alerts, logg))
			r.Get("/orders/pending", dashcontrollers.SellerPendingOrders(sellerService, cfg.Alerts, logg))
		})

		r.Route("/buyer", func(r chi.Router) {
			r.Use(middleware.RequireRole(string(enums.RoleBuyer), logg))
			r.Get("/dashboard", dashcontrollers.BuyerDashboard(buyerService, logg))
		})
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.RequireRole(string(enums.RoleAdmin), logg))
		r.Get("/dashboard", dashcontrollers.AdminDashboard(adminService, logg))
	})

	return r
}
