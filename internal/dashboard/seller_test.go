package dashboard

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/luisabarca/multivend-backend/internal/aggregate"
	"github.com/luisabarca/multivend-backend/pkg/config"
	"github.com/luisabarca/multivend-backend/pkg/db/models"
	"github.com/luisabarca/multivend-backend/pkg/enums"
	pkgerrors "github.com/luisabarca/multivend-backend/pkg/errors"
	"github.com/luisabarca/multivend-backend/pkg/logger"
	"github.com/luisabarca/multivend-backend/pkg/metrics"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func testAlerts() config.AlertsConfig {
	return config.AlertsConfig{LowStockThreshold: 10, LowStockLimit: 20, PendingOrderLimit: 20}
}

func newTestSeller(t *testing.T, st *stubStores, pr *stubProducts, or *stubOrders, cache *Cache) *SellerService {
	t.Helper()
	svc, err := NewSellerService(st, pr, or, cache, testLogger(), metrics.NewDashboardMetrics(nil), testAlerts(), 0)
	if err != nil {
		t.Fatalf("new seller service: %v", err)
	}
	svc.now = func() time.Time { return testNow }
	return svc
}

// sellerFixture builds one seller with a pure order, a shared order, and a
// previous-window order, all touching a single product.
type sellerFixture struct {
	stores   *stubStores
	products *stubProducts
	orders   *stubOrders
	product  models.Product
}

func newSellerFixture() *sellerFixture {
	storeID := uuid.New()
	category := "Toys"
	product := models.Product{ID: uuid.New(), StoreID: storeID, Name: "Wooden Train", Category: &category, Stock: 4, PriceCents: 2500}

	pureOrder := models.Order{
		ID: uuid.New(), BuyerID: uuid.New(), TotalCents: 5000,
		Status: enums.OrderStatusCompleted, CreatedAt: time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC),
	}
	sharedOrder := models.Order{
		ID: uuid.New(), BuyerID: uuid.New(), TotalCents: 8000,
		Status: enums.OrderStatusPending, CreatedAt: time.Date(2024, 6, 11, 9, 0, 0, 0, time.UTC),
	}
	priorOrder := models.Order{
		ID: uuid.New(), BuyerID: uuid.New(), TotalCents: 2500,
		Status: enums.OrderStatusCompleted, CreatedAt: time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC),
	}

	items := []models.OrderItem{
		{ID: uuid.New(), OrderID: pureOrder.ID, ProductID: product.ID, UnitPriceCents: 2500, Qty: 2},
		{ID: uuid.New(), OrderID: sharedOrder.ID, ProductID: product.ID, UnitPriceCents: 3000, Qty: 1},
		{ID: uuid.New(), OrderID: priorOrder.ID, ProductID: product.ID, UnitPriceCents: 2500, Qty: 1},
	}

	return &sellerFixture{
		stores:   &stubStores{ids: []uuid.UUID{storeID}},
		products: &stubProducts{products: []models.Product{product}, lowStock: []models.Product{product}},
		orders:   &stubOrders{items: items, orders: []models.Order{pureOrder, sharedOrder, priorOrder}},
		product:  product,
	}
}

func TestSellerDashboardEmptyScopeYieldsZeroShape(t *testing.T) {
	svc := newTestSeller(t, &stubStores{}, &stubProducts{}, &stubOrders{}, nil)

	dash, err := svc.Dashboard(context.Background(), uuid.New(), Period7D)
	if err != nil {
		t.Fatalf("empty scope must not error: %v", err)
	}
	if dash.Overview.TotalRevenueCents != 0 || dash.Overview.TotalOrders != 0 {
		t.Fatalf("expected zero overview, got %+v", dash.Overview)
	}
	if dash.Trend == nil || dash.Categories == nil || dash.Pending == nil {
		t.Fatal("zero dashboard must keep every section present")
	}
	if len(dash.Cards) == 0 {
		t.Fatal("zero dashboard still renders its card row")
	}
}

func TestSellerDashboardPureOnlyAnalytics(t *testing.T) {
	fx := newSellerFixture()
	svc := newTestSeller(t, fx.stores, fx.products, fx.orders, nil)

	dash, err := svc.Dashboard(context.Background(), uuid.New(), Period7D)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	// Only the $50 pure order feeds analytics; the shared $80 order and the
	// previous-window order stay out.
	if dash.Overview.TotalRevenueCents != 5000 || dash.Overview.TotalOrders != 1 {
		t.Fatalf("unexpected overview: %+v", dash.Overview)
	}
	if dash.Overview.AverageOrderCents != 5000 {
		t.Fatalf("expected AOV 5000, got %d", dash.Overview.AverageOrderCents)
	}
	if dash.Overview.GrowthPercentage != 100 {
		t.Fatalf("expected 100%% growth over 2500, got %v", dash.Overview.GrowthPercentage)
	}

	if len(dash.Trend) != 7 {
		t.Fatalf("expected 7 trend points, got %d", len(dash.Trend))
	}
	var trendTotal int64
	for _, p := range dash.Trend {
		trendTotal += p.RevenueCents
	}
	if trendTotal != 5000 {
		t.Fatalf("trend must carry pure revenue only, got %d", trendTotal)
	}

	if len(dash.Categories) != 1 || dash.Categories[0].Name != "Toys" || dash.Categories[0].RevenueCents != 5000 {
		t.Fatalf("unexpected categories: %+v", dash.Categories)
	}
	if len(dash.Top) != 1 || dash.Top[0].RevenueCents != 5000 {
		t.Fatalf("unexpected top products: %+v", dash.Top)
	}
}

func TestSellerDashboardOperationalViewsIncludePartial(t *testing.T) {
	fx := newSellerFixture()
	svc := newTestSeller(t, fx.stores, fx.products, fx.orders, nil)

	dash, err := svc.Dashboard(context.Background(), uuid.New(), Period7D)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	if len(dash.Pending) != 1 {
		t.Fatalf("expected the shared pending order, got %+v", dash.Pending)
	}
	pending := dash.Pending[0]
	if !pending.Partial || pending.SellerCents != 3000 || pending.TotalCents != 8000 {
		t.Fatalf("unexpected pending row: %+v", pending)
	}

	// Headline revenue card includes the seller's partial share: 5000 + 3000.
	if dash.Cards[0].ID != "revenue" || dash.Cards[0].Value != "$80.00" {
		t.Fatalf("unexpected revenue card: %+v", dash.Cards[0])
	}
}

func TestSellerDashboardLowStockSection(t *testing.T) {
	fx := newSellerFixture()
	svc := newTestSeller(t, fx.stores, fx.products, fx.orders, nil)

	dash, err := svc.Dashboard(context.Background(), uuid.New(), Period7D)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if len(dash.LowStock) != 1 || dash.LowStock[0].Severity != "Low" {
		t.Fatalf("unexpected low stock alerts: %+v", dash.LowStock)
	}
}

func TestSellerDashboardSectionFailureIsIsolated(t *testing.T) {
	fx := newSellerFixture()
	fx.products.lowErr = errors.New("stock index down")
	svc := newTestSeller(t, fx.stores, fx.products, fx.orders, nil)

	dash, err := svc.Dashboard(context.Background(), uuid.New(), Period7D)
	if err != nil {
		t.Fatalf("one failing section must not error: %v", err)
	}
	if len(dash.LowStock) != 0 {
		t.Fatalf("failed section must render empty, got %+v", dash.LowStock)
	}
	if dash.Overview.TotalRevenueCents != 5000 || len(dash.Pending) != 1 {
		t.Fatal("other sections must still populate")
	}
}

func TestSellerDashboardScopeFetchFailureDegradesToZero(t *testing.T) {
	fx := newSellerFixture()
	fx.orders.err = errors.New("orders unavailable")
	svc := newTestSeller(t, fx.stores, fx.products, fx.orders, nil)

	dash, err := svc.Dashboard(context.Background(), uuid.New(), Period7D)
	if err != nil {
		t.Fatalf("total fetch failure must yield the zero dashboard, not an error: %v", err)
	}
	if dash.Overview.TotalRevenueCents != 0 || len(dash.Pending) != 0 {
		t.Fatalf("expected zero dashboard, got %+v", dash)
	}
}

func TestSellerDashboardValidationErrorPropagates(t *testing.T) {
	fx := newSellerFixture()
	fx.stores.idsErr = pkgerrors.New(pkgerrors.CodeValidation, "seller id required")
	svc := newTestSeller(t, fx.stores, fx.products, fx.orders, nil)

	_, err := svc.Dashboard(context.Background(), uuid.Nil, Period7D)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSellerDashboardFetchCoversPreviousWindow(t *testing.T) {
	fx := newSellerFixture()
	svc := newTestSeller(t, fx.stores, fx.products, fx.orders, nil)

	if _, err := svc.Dashboard(context.Background(), uuid.New(), Period7D); err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	filter := fx.orders.lastFilter
	if filter.From == nil || filter.To == nil {
		t.Fatal("order fetch must be range-bounded")
	}
	window := Period7D.Window(testNow)
	if !filter.From.Equal(window.Previous().Start) || !filter.To.Equal(window.End) {
		t.Fatalf("fetch range must span previous+current windows, got %v..%v", filter.From, filter.To)
	}
}

func TestSellerDashboardServedFromCache(t *testing.T) {
	fx := newSellerFixture()
	store := newStubCacheStore()
	cache := NewCache(store, time.Minute, true, testLogger(), metrics.NewDashboardMetrics(nil))
	svc := newTestSeller(t, fx.stores, fx.products, fx.orders, cache)
	sellerID := uuid.New()

	first, err := svc.Dashboard(context.Background(), sellerID, Period7D)
	if err != nil {
		t.Fatalf("first assembly: %v", err)
	}
	if store.sets != 1 {
		t.Fatalf("expected one cache write, got %d", store.sets)
	}

	// Break the backing repos: a hit must not touch them.
	fx.orders.err = errors.New("db down")
	second, err := svc.Dashboard(context.Background(), sellerID, Period7D)
	if err != nil {
		t.Fatalf("cached assembly: %v", err)
	}
	if second.Overview != first.Overview {
		t.Fatalf("cached overview mismatch: %+v vs %+v", second.Overview, first.Overview)
	}
}

func TestSellerDashboardCacheFailsOpen(t *testing.T) {
	fx := newSellerFixture()
	store := newStubCacheStore()
	store.getErr = errors.New("redis gone")
	store.setErr = errors.New("redis gone")
	cache := NewCache(store, time.Minute, true, testLogger(), metrics.NewDashboardMetrics(nil))
	svc := newTestSeller(t, fx.stores, fx.products, fx.orders, cache)

	dash, err := svc.Dashboard(context.Background(), uuid.New(), Period7D)
	if err != nil {
		t.Fatalf("broken cache must fall through to assembly: %v", err)
	}
	if dash.Overview.TotalRevenueCents != 5000 {
		t.Fatalf("expected direct assembly result, got %+v", dash.Overview)
	}
}

func TestSellerDashboardLowStockBeforeFirstSale(t *testing.T) {
	storeID := uuid.New()
	category := "Toys"
	product := models.Product{ID: uuid.New(), StoreID: storeID, Name: "Wooden Train", Category: &category, Stock: 2, PriceCents: 2500}
	st := &stubStores{ids: []uuid.UUID{storeID}}
	pr := &stubProducts{products: []models.Product{product}, lowStock: []models.Product{product}}
	svc := newTestSeller(t, st, pr, &stubOrders{}, nil)

	dash, err := svc.Dashboard(context.Background(), uuid.New(), Period7D)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	// No sales yet, but the inventory sections still populate.
	if len(dash.LowStock) != 1 || dash.LowStock[0].Severity != "Critical" {
		t.Fatalf("expected the low stock alert for an order-less seller, got %+v", dash.LowStock)
	}
	card := findCard(t, dash.Cards, "low_stock")
	if card.Value != "1" {
		t.Fatalf("expected low stock card of 1, got %+v", card)
	}
	if dash.Overview.TotalRevenueCents != 0 || len(dash.Trend) != 7 || len(dash.Pending) != 0 {
		t.Fatalf("order-derived sections must stay zero-valued: %+v", dash)
	}
	if dash.Pending == nil || dash.Categories == nil {
		t.Fatal("zero-valued sections must stay present")
	}
}

func TestSellerDashboardLowStockCardCountsBeyondPanelLimit(t *testing.T) {
	fx := newSellerFixture()
	fx.products.lowCount = 7
	svc := newTestSeller(t, fx.stores, fx.products, fx.orders, nil)

	dash, err := svc.Dashboard(context.Background(), uuid.New(), Period7D)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if len(dash.LowStock) != 1 {
		t.Fatalf("panel renders the fetched page, got %+v", dash.LowStock)
	}
	card := findCard(t, dash.Cards, "low_stock")
	if card.Value != "7" {
		t.Fatalf("card must carry the full count, not the panel page size: %+v", card)
	}
}

func TestSellerPendingListOutlivesDashboardWindow(t *testing.T) {
	fx := newSellerFixture()
	// An in-flight order far older than both dashboard windows.
	stale := models.Order{
		ID: uuid.New(), BuyerID: uuid.New(), TotalCents: 2500,
		Status: enums.OrderStatusPending, CreatedAt: time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
	}
	fx.orders.items = append(fx.orders.items, models.OrderItem{
		ID: uuid.New(), OrderID: stale.ID, ProductID: fx.product.ID, UnitPriceCents: 2500, Qty: 1,
	})
	fx.orders.orders = append(fx.orders.orders, stale)
	svc := newTestSeller(t, fx.stores, fx.products, fx.orders, nil)

	dash, err := svc.Dashboard(context.Background(), uuid.New(), Period7D)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	for _, p := range dash.Pending {
		if p.ID == stale.ID {
			t.Fatalf("dashboard panel is window-bounded, stale order must not appear: %+v", dash.Pending)
		}
	}

	list, err := svc.Pending(context.Background(), uuid.New(), 20)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	var found bool
	for _, p := range list {
		if p.ID == stale.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("unbounded pending list must include the stale order, got %+v", list)
	}
}

func findCard(t *testing.T, cards []aggregate.SummaryCard, id string) aggregate.SummaryCard {
	t.Helper()
	for _, c := range cards {
		if c.ID == id {
			return c
		}
	}
	t.Fatalf("card %q not found in %+v", id, cards)
	return aggregate.SummaryCard{}
}
