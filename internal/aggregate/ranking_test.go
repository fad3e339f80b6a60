package aggregate

import (
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/luisabarca/multivend-backend/pkg/db/models"
)

func TestTopProductsRanksByRevenueOverPureOrders(t *testing.T) {
	cheap := models.Product{ID: uuid.New(), Name: "Sticker"}
	dear := models.Product{ID: uuid.New(), Name: "Console"}

	pureOrder := uuid.New()
	sharedOrder := uuid.New()
	items := []models.OrderItem{
		{ID: uuid.New(), OrderID: pureOrder, ProductID: cheap.ID, UnitPriceCents: 100, Qty: 3},
		{ID: uuid.New(), OrderID: pureOrder, ProductID: dear.ID, UnitPriceCents: 30000, Qty: 1},
		{ID: uuid.New(), OrderID: sharedOrder, ProductID: cheap.ID, UnitPriceCents: 100, Qty: 50},
	}
	pure := map[uuid.UUID]struct{}{pureOrder: {}}

	top := TopProducts(items, []models.Product{cheap, dear}, pure, 10)
	if len(top) != 2 {
		t.Fatalf("expected 2 products, got %d", len(top))
	}
	if top[0].Name != "Console" || top[0].RevenueCents != 30000 || top[0].Units != 1 {
		t.Fatalf("unexpected leader: %+v", top[0])
	}
	if top[1].RevenueCents != 300 || top[1].Units != 3 {
		t.Fatalf("shared order must not contribute, got %+v", top[1])
	}
}

func TestTopProductsTruncatesToN(t *testing.T) {
	orderID := uuid.New()
	pure := map[uuid.UUID]struct{}{orderID: {}}

	var products []models.Product
	var items []models.OrderItem
	for i := 0; i < 15; i++ {
		p := models.Product{ID: uuid.New(), Name: fmt.Sprintf("P%02d", i)}
		products = append(products, p)
		items = append(items, models.OrderItem{
			ID: uuid.New(), OrderID: orderID, ProductID: p.ID,
			UnitPriceCents: int64(100 * (i + 1)), Qty: 1,
		})
	}

	top := TopProducts(items, products, pure, 0)
	if len(top) != DefaultTopN {
		t.Fatalf("expected default cap %d, got %d", DefaultTopN, len(top))
	}
	if top[0].Name != "P14" {
		t.Fatalf("expected highest-revenue product first, got %s", top[0].Name)
	}
}

func TestTopProductsStableTies(t *testing.T) {
	first := models.Product{ID: uuid.New(), Name: "First"}
	second := models.Product{ID: uuid.New(), Name: "Second"}
	orderID := uuid.New()
	pure := map[uuid.UUID]struct{}{orderID: {}}

	items := []models.OrderItem{
		{ID: uuid.New(), OrderID: orderID, ProductID: first.ID, UnitPriceCents: 500, Qty: 1},
		{ID: uuid.New(), OrderID: orderID, ProductID: second.ID, UnitPriceCents: 500, Qty: 1},
	}

	top := TopProducts(items, []models.Product{first, second}, pure, 10)
	if top[0].Name != "First" {
		t.Fatalf("ties must keep first-seen order, got %s first", top[0].Name)
	}
}

func TestAccumulateStoreRevenueSkipsUnknownProducts(t *testing.T) {
	storeID := uuid.New()
	known := models.Product{ID: uuid.New(), StoreID: storeID}

	items := []models.OrderItem{
		{ID: uuid.New(), OrderID: uuid.New(), ProductID: known.ID, UnitPriceCents: 1000, Qty: 2},
		{ID: uuid.New(), OrderID: uuid.New(), ProductID: uuid.New(), UnitPriceCents: 9999, Qty: 1},
	}

	totals := AccumulateStoreRevenue(items, []models.Product{known})
	if len(totals) != 1 {
		t.Fatalf("expected one store, got %d", len(totals))
	}
	if totals[storeID].RevenueCents != 2000 {
		t.Fatalf("expected 2000 cents, got %d", totals[storeID].RevenueCents)
	}
}

func TestTopStoresComputesGenuineGrowth(t *testing.T) {
	grewStore := models.Store{ID: uuid.New(), Name: "Grew"}
	newStore := models.Store{ID: uuid.New(), Name: "Fresh"}

	orderA, orderB := uuid.New(), uuid.New()
	current := map[uuid.UUID]*StoreRevenue{
		grewStore.ID: {RevenueCents: 15000, OrderIDs: map[uuid.UUID]struct{}{orderA: {}, orderB: {}}},
		newStore.ID:  {RevenueCents: 5000, OrderIDs: map[uuid.UUID]struct{}{orderA: {}}},
	}
	previous := map[uuid.UUID]*StoreRevenue{
		grewStore.ID: {RevenueCents: 10000},
	}

	top := TopStores([]models.Store{grewStore, newStore}, current, previous, 10)
	if len(top) != 2 {
		t.Fatalf("expected 2 stores, got %d", len(top))
	}
	if top[0].Name != "Grew" || top[0].Orders != 2 {
		t.Fatalf("unexpected leader: %+v", top[0])
	}
	if top[0].Growth == nil || *top[0].Growth != 50 {
		t.Fatalf("expected 50%% growth, got %v", top[0].Growth)
	}
	if top[1].Growth == nil || *top[1].Growth != 100 {
		t.Fatalf("store with no prior revenue must read 100%%, got %v", top[1].Growth)
	}
}

func TestTopStoresSkipsStoresWithoutCurrentRevenue(t *testing.T) {
	idle := models.Store{ID: uuid.New(), Name: "Idle"}
	top := TopStores([]models.Store{idle}, map[uuid.UUID]*StoreRevenue{}, nil, 10)
	if len(top) != 0 {
		t.Fatalf("expected no entries, got %d", len(top))
	}
}
