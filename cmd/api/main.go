package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/luisabarca/multivend-backend/api/controllers"
	"github.com/luisabarca/multivend-backend/api/routes"
	"github.com/luisabarca/multivend-backend/internal/dashboard"
	"github.com/luisabarca/multivend-backend/internal/orders"
	"github.com/luisabarca/multivend-backend/internal/products"
	"github.com/luisabarca/multivend-backend/internal/stores"
	"github.com/luisabarca/multivend-backend/pkg/config"
	"github.com/luisabarca/multivend-backend/pkg/db"
	"github.com/luisabarca/multivend-backend/pkg/logger"
	"github.com/luisabarca/multivend-backend/pkg/metrics"
	"github.com/luisabarca/multivend-backend/pkg/migrate"
	"github.com/luisabarca/multivend-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	m := metrics.NewDashboardMetrics(prometheus.DefaultRegisterer)
	cache := dashboard.NewCache(redisClient, cfg.Dashboard.CacheTTL, cfg.Dashboard.CacheEnabled, logg, m)

	storeService, err := stores.NewService(stores.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create store service", err)
		os.Exit(1)
	}
	productRepo := products.NewRepository(dbClient.DB())
	orderRepo := orders.NewRepository(dbClient.DB())

	sellerService, err := dashboard.NewSellerService(storeService, productRepo, orderRepo, cache, logg, m, cfg.Alerts, cfg.Dashboard.SectionTimeout)
	if err != nil {
		logg.Error(context.Background(), "failed to create seller dashboard service", err)
		os.Exit(1)
	}
	buyerService, err := dashboard.NewBuyerService(orderRepo, cache, logg, m, cfg.Dashboard.SectionTimeout)
	if err != nil {
		logg.Error(context.Background(), "failed to create buyer dashboard service", err)
		os.Exit(1)
	}
	adminService, err := dashboard.NewAdminService(storeService, productRepo, orderRepo, cache, logg, m, cfg.Dashboard.SectionTimeout)
	if err != nil {
		logg.Error(context.Background(), "failed to create admin dashboard service", err)
		os.Exit(1)
	}

	pingers := map[string]controllers.Pinger{
		"database": dbClient,
		"redis":    redisClient,
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, pingers, sellerService, buyerService, adminService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
