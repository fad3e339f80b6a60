package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/luisabarca/multivend-backend/internal/aggregate"
	"github.com/luisabarca/multivend-backend/internal/attribution"
	"github.com/luisabarca/multivend-backend/internal/orders"
	"github.com/luisabarca/multivend-backend/internal/products"
	"github.com/luisabarca/multivend-backend/internal/stores"
	"github.com/luisabarca/multivend-backend/pkg/config"
	"github.com/luisabarca/multivend-backend/pkg/db/models"
	pkgerrors "github.com/luisabarca/multivend-backend/pkg/errors"
	"github.com/luisabarca/multivend-backend/pkg/logger"
	"github.com/luisabarca/multivend-backend/pkg/metrics"
	"github.com/luisabarca/multivend-backend/pkg/redis"
)

// SellerService assembles the seller dashboard read-model.
type SellerService struct {
	stores         stores.Service
	products       products.Repository
	orders         orders.Repository
	cache          *Cache
	logg           *logger.Logger
	metrics        *metrics.DashboardMetrics
	alerts         config.AlertsConfig
	sectionTimeout time.Duration
	now            func() time.Time
}

// NewSellerService wires the seller dashboard assembler.
func NewSellerService(
	storeSvc stores.Service,
	productRepo products.Repository,
	orderRepo orders.Repository,
	cache *Cache,
	logg *logger.Logger,
	m *metrics.DashboardMetrics,
	alerts config.AlertsConfig,
	sectionTimeout time.Duration,
) (*SellerService, error) {
	if storeSvc == nil || productRepo == nil || orderRepo == nil {
		return nil, fmt.Errorf("seller dashboard requires store, product and order access")
	}
	return &SellerService{
		stores:         storeSvc,
		products:       productRepo,
		orders:         orderRepo,
		cache:          cache,
		logg:           logg,
		metrics:        m,
		alerts:         alerts,
		sectionTimeout: sectionTimeout,
		now:            time.Now,
	}, nil
}

// sellerScope is the fetched snapshot one seller assembly works over. The
// pipeline is strictly sequential (stores, products, items, orders); the
// sections computed from it are not.
type sellerScope struct {
	empty    bool
	storeIDs []uuid.UUID
	products []models.Product
	items    []models.OrderItem
	current  []attribution.AttributedOrder
	previous []attribution.AttributedOrder
}

// Dashboard assembles the seller read-model for the given period. Scope-empty
// sellers get the zero-value dashboard; fetch failures degrade per section
// rather than erroring, so a broken analytics panel never hides the order
// list. Only boundary validation propagates as an error.
func (s *SellerService) Dashboard(ctx context.Context, sellerID uuid.UUID, period Period) (SellerDashboard, error) {
	ctx = s.withLogScope(ctx, sellerID, period)

	key := redis.DashboardKey(KindSeller, sellerID.String(), period.String())
	var cached SellerDashboard
	if s.cache.Lookup(ctx, KindSeller, key, &cached) {
		return cached, nil
	}

	started := s.now()
	defer func() {
		s.metrics.ObserveDuration(KindSeller, s.now().Sub(started))
	}()

	window := period.Window(started)
	scope, err := s.resolveScope(ctx, sellerID, window)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeValidation {
			return SellerDashboard{}, err
		}
		s.metrics.IncSectionFailure(KindSeller, "scope")
		if s.logg != nil {
			s.logg.Error(ctx, "seller dashboard scope fetch failed", err)
		}
		return emptySeller(period), nil
	}
	if scope.empty {
		return emptySeller(period), nil
	}

	pureCurrent := pureOnly(scope.current)
	purePrevious := pureOnly(scope.previous)
	pureIDs := orderIDSet(pureCurrent)

	dash := emptySeller(period)
	var lowStockTotal int64
	runSections(ctx, s.logg, s.metrics, KindSeller, s.sectionTimeout,
		section{name: "overview", run: func(context.Context) error {
			dash.Overview = aggregate.Overview(pureCurrent, purePrevious)
			return nil
		}},
		section{name: "trend", run: func(context.Context) error {
			dash.Trend = aggregate.Trend(pureCurrent, window)
			return nil
		}},
		section{name: "categories", run: func(context.Context) error {
			dash.Categories = aggregate.CategoryRevenue(scope.items, scope.products, pureIDs)
			return nil
		}},
		section{name: "statuses", run: func(context.Context) error {
			dash.Statuses = aggregate.StatusDistribution(ordersOf(pureCurrent))
			return nil
		}},
		section{name: "top_products", run: func(context.Context) error {
			dash.Top = aggregate.TopProducts(scope.items, scope.products, pureIDs, aggregate.DefaultTopN)
			return nil
		}},
		section{name: "pending_orders", run: func(context.Context) error {
			// The dashboard panel is window-bounded like every other
			// section: it shows in-flight orders from the current and
			// previous windows. Pending is the unbounded operational list.
			attributed := append(append([]attribution.AttributedOrder{}, scope.current...), scope.previous...)
			dash.Pending = aggregate.PendingOrders(attributed, s.alerts.PendingOrderLimit)
			return nil
		}},
		section{name: "low_stock", run: func(sctx context.Context) error {
			low, err := s.products.ListLowStock(sctx, scope.storeIDs, s.alerts.LowStockThreshold, s.alerts.LowStockLimit)
			if err != nil {
				return err
			}
			// The card counts every low stock product, not just the
			// fetch-limited rows rendered in the panel.
			total, err := s.products.CountLowStock(sctx, scope.storeIDs, s.alerts.LowStockThreshold)
			if err != nil {
				return err
			}
			dash.LowStock = aggregate.LowStockAlerts(low)
			lowStockTotal = total
			return nil
		}},
	)

	// The revenue headline card is partial-inclusive on purpose: a seller's
	// own share of in-flight shared orders belongs in the headline even
	// though the charts below stay pure-only.
	dash.Cards = aggregate.SellerCards(dash.Overview, sumShares(scope.current), int(lowStockTotal))

	s.cache.Store(ctx, key, dash)
	return dash, nil
}

// LowStock lists the seller's low stock alerts directly, outside dashboard
// assembly. Unlike a dashboard section this is the primary payload, so fetch
// failures surface as typed errors instead of degrading.
func (s *SellerService) LowStock(ctx context.Context, sellerID uuid.UUID, threshold, limit int) ([]aggregate.LowStockAlert, error) {
	storeIDs, err := s.stores.OwnedStoreIDs(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if len(storeIDs) == 0 {
		return []aggregate.LowStockAlert{}, nil
	}
	low, err := s.products.ListLowStock(ctx, storeIDs, threshold, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing low stock products")
	}
	return aggregate.LowStockAlerts(low), nil
}

// Pending lists in-flight orders touching the seller's products, including
// the seller's share of partial orders.
func (s *SellerService) Pending(ctx context.Context, sellerID uuid.UUID, limit int) ([]aggregate.PendingOrderSummary, error) {
	storeIDs, err := s.stores.OwnedStoreIDs(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if len(storeIDs) == 0 {
		return []aggregate.PendingOrderSummary{}, nil
	}

	prods, err := s.products.ListByStores(ctx, storeIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing products")
	}
	productIDs := make([]uuid.UUID, 0, len(prods))
	for _, p := range prods {
		productIDs = append(productIDs, p.ID)
	}
	items, err := s.orders.ItemsForProducts(ctx, productIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing order items")
	}
	if len(items) == 0 {
		return []aggregate.PendingOrderSummary{}, nil
	}
	fetched, err := s.orders.OrdersByID(ctx, orders.DistinctOrderIDs(items), orders.Filter{})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetching orders")
	}

	result := attribution.Attribute(fetched, items)
	s.logAnomalies(ctx, result.Anomalies())
	return aggregate.PendingOrders(result.All(), limit), nil
}

// resolveScope walks the seller scope pipeline. A seller with no stores or
// no products gets the zero-value dashboard without further queries. No order
// items only skips the order fetch: the inventory-driven sections still run,
// a brand-new seller with thin stock gets low stock alerts before the first
// sale.
func (s *SellerService) resolveScope(ctx context.Context, sellerID uuid.UUID, window aggregate.Window) (sellerScope, error) {
	storeIDs, err := s.stores.OwnedStoreIDs(ctx, sellerID)
	if err != nil {
		return sellerScope{}, err
	}
	if len(storeIDs) == 0 {
		return sellerScope{empty: true}, nil
	}

	prods, err := s.products.ListByStores(ctx, storeIDs)
	if err != nil {
		return sellerScope{}, err
	}
	if len(prods) == 0 {
		return sellerScope{empty: true}, nil
	}

	productIDs := make([]uuid.UUID, 0, len(prods))
	for _, p := range prods {
		productIDs = append(productIDs, p.ID)
	}
	items, err := s.orders.ItemsForProducts(ctx, productIDs)
	if err != nil {
		return sellerScope{}, err
	}
	if len(items) == 0 {
		return sellerScope{storeIDs: storeIDs, products: prods}, nil
	}

	previous := window.Previous()
	fetched, err := s.orders.OrdersByID(ctx, orders.DistinctOrderIDs(items), orders.Filter{
		From: &previous.Start,
		To:   &window.End,
	})
	if err != nil {
		return sellerScope{}, err
	}

	result := attribution.Attribute(fetched, items)
	s.logAnomalies(ctx, result.Anomalies())

	scope := sellerScope{storeIDs: storeIDs, products: prods, items: items}
	for _, a := range result.All() {
		switch {
		case window.Contains(a.Order.CreatedAt):
			scope.current = append(scope.current, a)
		case previous.Contains(a.Order.CreatedAt):
			scope.previous = append(scope.previous, a)
		}
	}
	return scope, nil
}

func (s *SellerService) logAnomalies(ctx context.Context, anomalies []attribution.Anomaly) {
	if s.logg == nil {
		return
	}
	for _, a := range anomalies {
		actx := s.logg.WithFields(ctx, map[string]any{
			"order_id":    a.OrderID.String(),
			"kind":        string(a.Kind),
			"share_cents": a.ShareCents,
			"total_cents": a.TotalCents,
		})
		s.logg.Warn(actx, "revenue attribution anomaly")
	}
}

func (s *SellerService) withLogScope(ctx context.Context, sellerID uuid.UUID, period Period) context.Context {
	if s.logg == nil {
		return ctx
	}
	ctx = s.logg.WithSellerID(ctx, sellerID.String())
	ctx = s.logg.WithDashboard(ctx, KindSeller)
	return s.logg.WithField(ctx, "period", period.String())
}

func pureOnly(attributed []attribution.AttributedOrder) []attribution.AttributedOrder {
	pure := make([]attribution.AttributedOrder, 0, len(attributed))
	for _, a := range attributed {
		if a.Pure {
			pure = append(pure, a)
		}
	}
	return pure
}

func orderIDSet(attributed []attribution.AttributedOrder) map[uuid.UUID]struct{} {
	ids := make(map[uuid.UUID]struct{}, len(attributed))
	for _, a := range attributed {
		ids[a.Order.ID] = struct{}{}
	}
	return ids
}

func ordersOf(attributed []attribution.AttributedOrder) []models.Order {
	out := make([]models.Order, 0, len(attributed))
	for _, a := range attributed {
		out = append(out, a.Order)
	}
	return out
}

func sumShares(attributed []attribution.AttributedOrder) int64 {
	var total int64
	for _, a := range attributed {
		total += a.ShareCents
	}
	return total
}
