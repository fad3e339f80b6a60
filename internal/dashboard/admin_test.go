package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/luisabarca/multivend-backend/internal/stores"
	"github.com/luisabarca/multivend-backend/pkg/db/models"
	"github.com/luisabarca/multivend-backend/pkg/enums"
	"github.com/luisabarca/multivend-backend/pkg/metrics"
)

func newTestAdmin(t *testing.T, st *stubStores, pr *stubProducts, or *stubOrders) *AdminService {
	t.Helper()
	svc, err := NewAdminService(st, pr, or, nil, testLogger(), metrics.NewDashboardMetrics(nil), 0)
	if err != nil {
		t.Fatalf("new admin service: %v", err)
	}
	svc.now = func() time.Time { return testNow }
	return svc
}

func adminFixture() (*stubStores, *stubProducts, *stubOrders) {
	storeID := uuid.New()
	store := models.Store{ID: storeID, Name: "Harbor Hardware", State: "CA", VerificationStatus: enums.VerificationVerified}
	category := "Tools"
	product := models.Product{ID: uuid.New(), StoreID: storeID, Name: "Hammer", Category: &category, PriceCents: 2000}

	currentOrder := models.Order{
		ID: uuid.New(), BuyerID: uuid.New(), TotalCents: 4000,
		Status: enums.OrderStatusCompleted, CreatedAt: time.Date(2024, 6, 12, 8, 0, 0, 0, time.UTC),
	}
	priorOrder := models.Order{
		ID: uuid.New(), BuyerID: uuid.New(), TotalCents: 2000,
		Status: enums.OrderStatusCompleted, CreatedAt: time.Date(2024, 6, 4, 8, 0, 0, 0, time.UTC),
	}

	items := []models.OrderItem{
		{ID: uuid.New(), OrderID: currentOrder.ID, ProductID: product.ID, UnitPriceCents: 2000, Qty: 2},
		{ID: uuid.New(), OrderID: priorOrder.ID, ProductID: product.ID, UnitPriceCents: 2000, Qty: 1},
	}

	st := &stubStores{
		stores:    []models.Store{store},
		locations: []stores.Location{{ID: storeID, Name: store.Name, State: "CA"}},
		verified:  1,
	}
	pr := &stubProducts{products: []models.Product{product}, count: 1}
	or := &stubOrders{items: items, orders: []models.Order{currentOrder, priorOrder}, count: 2}
	return st, pr, or
}

func TestAdminDashboardAssemblesPlatformSections(t *testing.T) {
	st, pr, or := adminFixture()
	svc := newTestAdmin(t, st, pr, or)

	dash, err := svc.Dashboard(context.Background(), Period7D)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	if dash.Cards[0].Value != "$40.00" {
		t.Fatalf("expected gross revenue $40.00, got %+v", dash.Cards[0])
	}
	if dash.Cards[0].ChangeLabel != "+100% vs previous period" {
		t.Fatalf("expected genuine growth label, got %+v", dash.Cards[0])
	}
	if dash.Cards[1].Value != "2" || dash.Cards[2].Value != "1" || dash.Cards[3].Value != "1" {
		t.Fatalf("unexpected count cards: %+v", dash.Cards)
	}

	if len(dash.Trend) != 7 {
		t.Fatalf("expected 7 trend points, got %d", len(dash.Trend))
	}
	if len(dash.Categories) != 1 || dash.Categories[0].Name != "Tools" || dash.Categories[0].Count != 1 {
		t.Fatalf("unexpected categories: %+v", dash.Categories)
	}
	if len(dash.Statuses) != 1 || dash.Statuses[0].Label != "Delivered" {
		t.Fatalf("unexpected statuses: %+v", dash.Statuses)
	}
	if len(dash.Locations) != 1 {
		t.Fatalf("expected 1 location, got %+v", dash.Locations)
	}
}

func TestAdminDashboardTopStoresGrowthIsGenuine(t *testing.T) {
	st, pr, or := adminFixture()
	svc := newTestAdmin(t, st, pr, or)

	dash, err := svc.Dashboard(context.Background(), Period7D)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	if len(dash.TopStores) != 1 {
		t.Fatalf("expected 1 ranked store, got %+v", dash.TopStores)
	}
	top := dash.TopStores[0]
	if top.RevenueCents != 4000 {
		t.Fatalf("expected current-window revenue 4000, got %d", top.RevenueCents)
	}
	// 4000 now vs 2000 in the prior window.
	if top.Growth == nil || *top.Growth != 100 {
		t.Fatalf("expected 100%% growth from the prior window, got %v", top.Growth)
	}
}

func TestAdminDashboardSectionFailureIsIsolated(t *testing.T) {
	st, pr, or := adminFixture()
	st.err = errors.New("stores down")
	svc := newTestAdmin(t, st, pr, or)

	dash, err := svc.Dashboard(context.Background(), Period7D)
	if err != nil {
		t.Fatalf("failing sections must not error: %v", err)
	}
	// Locations, counts, and the store ranking all depend on the store
	// service and degrade; orders and categories still populate.
	if len(dash.Locations) != 0 || len(dash.TopStores) != 0 {
		t.Fatalf("store-backed sections must degrade, got %+v", dash)
	}
	if len(dash.Categories) != 1 {
		t.Fatal("categories section must still populate")
	}
	if len(dash.Trend) != 7 {
		t.Fatal("trend section must still populate")
	}
}
