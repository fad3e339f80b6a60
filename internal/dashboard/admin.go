package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/luisabarca/multivend-backend/internal/aggregate"
	"github.com/luisabarca/multivend-backend/internal/attribution"
	"github.com/luisabarca/multivend-backend/internal/orders"
	"github.com/luisabarca/multivend-backend/internal/products"
	"github.com/luisabarca/multivend-backend/internal/stores"
	"github.com/luisabarca/multivend-backend/pkg/db/models"
	"github.com/luisabarca/multivend-backend/pkg/logger"
	"github.com/luisabarca/multivend-backend/pkg/metrics"
	"github.com/luisabarca/multivend-backend/pkg/redis"
)

// AdminService assembles the platform dashboard read-model. Every section is
// platform-wide; attribution purity does not apply because the whole order
// total belongs to the platform view.
type AdminService struct {
	stores         stores.Service
	products       products.Repository
	orders         orders.Repository
	cache          *Cache
	logg           *logger.Logger
	metrics        *metrics.DashboardMetrics
	sectionTimeout time.Duration
	now            func() time.Time
}

// NewAdminService wires the platform dashboard assembler.
func NewAdminService(
	storeSvc stores.Service,
	productRepo products.Repository,
	orderRepo orders.Repository,
	cache *Cache,
	logg *logger.Logger,
	m *metrics.DashboardMetrics,
	sectionTimeout time.Duration,
) (*AdminService, error) {
	if storeSvc == nil || productRepo == nil || orderRepo == nil {
		return nil, fmt.Errorf("admin dashboard requires store, product and order access")
	}
	return &AdminService{
		stores:         storeSvc,
		products:       productRepo,
		orders:         orderRepo,
		cache:          cache,
		logg:           logg,
		metrics:        m,
		sectionTimeout: sectionTimeout,
		now:            time.Now,
	}, nil
}

// Dashboard assembles the platform read-model for the given period. The four
// sections (counts, sales, categories, locations) have no data dependencies
// on each other and run concurrently; each degrades to empty on failure.
func (a *AdminService) Dashboard(ctx context.Context, period Period) (AdminDashboard, error) {
	if a.logg != nil {
		ctx = a.logg.WithDashboard(ctx, KindAdmin)
		ctx = a.logg.WithField(ctx, "period", period.String())
	}

	key := redis.DashboardKey(KindAdmin, "platform", period.String())
	var cached AdminDashboard
	if a.cache.Lookup(ctx, KindAdmin, key, &cached) {
		return cached, nil
	}

	started := a.now()
	defer func() {
		a.metrics.ObserveDuration(KindAdmin, a.now().Sub(started))
	}()

	window := period.Window(started)
	dash := emptyAdmin(period)

	var (
		cardsMu                              sync.Mutex
		orderCount, productCount, storeCount int64
		grossCents                           int64
		growth                               float64
	)

	runSections(ctx, a.logg, a.metrics, KindAdmin, a.sectionTimeout,
		section{name: "counts", run: func(sctx context.Context) error {
			oc, err := a.orders.CountAll(sctx)
			if err != nil {
				return err
			}
			pc, err := a.products.CountAll(sctx)
			if err != nil {
				return err
			}
			sc, err := a.stores.CountVerified(sctx)
			if err != nil {
				return err
			}
			cardsMu.Lock()
			orderCount, productCount, storeCount = oc, pc, sc
			cardsMu.Unlock()
			return nil
		}},
		section{name: "sales", run: func(sctx context.Context) error {
			sales, err := a.salesSection(sctx, window)
			if err != nil {
				return err
			}
			dash.Trend = sales.trend
			dash.Statuses = sales.statuses
			cardsMu.Lock()
			grossCents, growth = sales.grossCents, sales.growth
			cardsMu.Unlock()
			return nil
		}},
		section{name: "top_stores", run: func(sctx context.Context) error {
			ranked, err := a.topStoresSection(sctx, window)
			if err != nil {
				return err
			}
			dash.TopStores = ranked
			return nil
		}},
		section{name: "categories", run: func(sctx context.Context) error {
			all, err := a.products.ListAll(sctx)
			if err != nil {
				return err
			}
			dash.Categories = aggregate.CategoryCounts(all)
			return nil
		}},
		section{name: "locations", run: func(sctx context.Context) error {
			locations, err := a.stores.Locations(sctx)
			if err != nil {
				return err
			}
			dash.Locations = locations
			return nil
		}},
	)

	dash.Cards = aggregate.AdminCards(grossCents, growth, orderCount, productCount, storeCount)

	a.cache.Store(ctx, key, dash)
	return dash, nil
}

// salesResult is one all-or-nothing sales section computation; nothing is
// written to the dashboard until the whole section succeeds.
type salesResult struct {
	grossCents int64
	growth     float64
	trend      []aggregate.TrendPoint
	statuses   []aggregate.StatusEntry
}

// salesSection covers everything derived from the window's orders directly:
// gross revenue and growth, the revenue trend, and the status breakdown.
func (a *AdminService) salesSection(ctx context.Context, window aggregate.Window) (salesResult, error) {
	previous := window.Previous()
	fetched, err := a.orders.ListAll(ctx, orders.Filter{From: &previous.Start, To: &window.End})
	if err != nil {
		return salesResult{}, err
	}

	var current []attribution.AttributedOrder
	var currentCents, previousCents int64
	for _, o := range fetched {
		switch {
		case window.Contains(o.CreatedAt):
			currentCents += o.TotalCents
			current = append(current, attribution.AttributedOrder{Order: o, ShareCents: o.TotalCents, Pure: true})
		case previous.Contains(o.CreatedAt):
			previousCents += o.TotalCents
		}
	}

	return salesResult{
		grossCents: currentCents,
		growth:     aggregate.GrowthPercent(currentCents, previousCents),
		trend:      aggregate.Trend(current, window),
		statuses:   aggregate.StatusDistribution(ordersOf(current)),
	}, nil
}

// topStoresSection ranks stores by current-window revenue with genuine
// previous-window growth. It walks orders to items to the product catalog for
// the product-to-store mapping.
func (a *AdminService) topStoresSection(ctx context.Context, window aggregate.Window) ([]aggregate.TopEntity, error) {
	previous := window.Previous()
	fetched, err := a.orders.ListAll(ctx, orders.Filter{From: &previous.Start, To: &window.End})
	if err != nil {
		return nil, err
	}
	if len(fetched) == 0 {
		return []aggregate.TopEntity{}, nil
	}

	orderIDs := make([]uuid.UUID, 0, len(fetched))
	for _, o := range fetched {
		orderIDs = append(orderIDs, o.ID)
	}
	items, err := a.orders.ItemsForOrders(ctx, orderIDs)
	if err != nil {
		return nil, err
	}
	catalog, err := a.products.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	currentByStore, previousByStore := splitStoreRevenue(items, catalog, fetched, window)
	storeIDs := make([]uuid.UUID, 0, len(currentByStore))
	for id := range currentByStore {
		storeIDs = append(storeIDs, id)
	}
	ranked, err := a.stores.Stores(ctx, storeIDs)
	if err != nil {
		return nil, err
	}
	return aggregate.TopStores(ranked, currentByStore, previousByStore, aggregate.DefaultTopN), nil
}

// splitStoreRevenue folds order items into per-store revenue separately for
// the current window and the window before it, keyed off each item's parent
// order date.
func splitStoreRevenue(
	items []models.OrderItem,
	catalog []models.Product,
	fetched []models.Order,
	window aggregate.Window,
) (current, previous map[uuid.UUID]*aggregate.StoreRevenue) {
	inCurrent := make(map[uuid.UUID]bool, len(fetched))
	for _, o := range fetched {
		inCurrent[o.ID] = window.Contains(o.CreatedAt)
	}

	var currentItems, previousItems []models.OrderItem
	for _, item := range items {
		isCurrent, known := inCurrent[item.OrderID]
		if !known {
			continue
		}
		if isCurrent {
			currentItems = append(currentItems, item)
		} else {
			previousItems = append(previousItems, item)
		}
	}
	return aggregate.AccumulateStoreRevenue(currentItems, catalog),
		aggregate.AccumulateStoreRevenue(previousItems, catalog)
}
