package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/luisabarca/multivend-backend/internal/orders"
	"github.com/luisabarca/multivend-backend/internal/stores"
	"github.com/luisabarca/multivend-backend/pkg/db/models"
	"github.com/luisabarca/multivend-backend/pkg/redis"
)

type stubStores struct {
	ids       []uuid.UUID
	idsErr    error
	stores    []models.Store
	locations []stores.Location
	verified  int64
	err       error
}

func (s *stubStores) OwnedStoreIDs(ctx context.Context, sellerID uuid.UUID) ([]uuid.UUID, error) {
	return s.ids, s.idsErr
}

func (s *stubStores) Locations(ctx context.Context) ([]stores.Location, error) {
	return s.locations, s.err
}

func (s *stubStores) Stores(ctx context.Context, ids []uuid.UUID) ([]models.Store, error) {
	return s.stores, s.err
}

func (s *stubStores) CountVerified(ctx context.Context) (int64, error) {
	return s.verified, s.err
}

type stubProducts struct {
	products []models.Product
	lowStock []models.Product
	lowCount int64
	count    int64
	err      error
	lowErr   error
}

func (s *stubProducts) ListByStores(ctx context.Context, storeIDs []uuid.UUID) ([]models.Product, error) {
	return s.products, s.err
}

func (s *stubProducts) ListLowStock(ctx context.Context, storeIDs []uuid.UUID, threshold, limit int) ([]models.Product, error) {
	return s.lowStock, s.lowErr
}

func (s *stubProducts) CountLowStock(ctx context.Context, storeIDs []uuid.UUID, threshold int) (int64, error) {
	if s.lowCount > 0 {
		return s.lowCount, s.lowErr
	}
	return int64(len(s.lowStock)), s.lowErr
}

func (s *stubProducts) CountAll(ctx context.Context) (int64, error) {
	return s.count, s.err
}

func (s *stubProducts) ListAll(ctx context.Context) ([]models.Product, error) {
	return s.products, s.err
}

type stubOrders struct {
	items      []models.OrderItem
	orders     []models.Order
	count      int64
	err        error
	ordersErr  error
	lastFilter orders.Filter
}

func (s *stubOrders) ItemsForProducts(ctx context.Context, productIDs []uuid.UUID) ([]models.OrderItem, error) {
	return s.items, s.err
}

func (s *stubOrders) ItemsForOrders(ctx context.Context, orderIDs []uuid.UUID) ([]models.OrderItem, error) {
	return s.items, s.err
}

func (s *stubOrders) OrdersByID(ctx context.Context, orderIDs []uuid.UUID, filter orders.Filter) ([]models.Order, error) {
	s.lastFilter = filter
	return s.orders, s.ordersErr
}

func (s *stubOrders) ListByBuyer(ctx context.Context, buyerID uuid.UUID, filter orders.Filter) ([]models.Order, error) {
	s.lastFilter = filter
	return s.orders, s.ordersErr
}

func (s *stubOrders) ListAll(ctx context.Context, filter orders.Filter) ([]models.Order, error) {
	s.lastFilter = filter
	return s.orders, s.ordersErr
}

func (s *stubOrders) CountAll(ctx context.Context) (int64, error) {
	return s.count, s.err
}

type stubCacheStore struct {
	data   map[string]string
	getErr error
	setErr error
	delErr error
	sets   int
	dels   int
}

func newStubCacheStore() *stubCacheStore {
	return &stubCacheStore{data: map[string]string{}}
}

func (s *stubCacheStore) Get(ctx context.Context, key string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	val, ok := s.data[key]
	if !ok {
		return "", redis.ErrCacheMiss
	}
	return val, nil
}

func (s *stubCacheStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	s.sets++
	if s.setErr != nil {
		return s.setErr
	}
	if encoded, ok := value.([]byte); ok {
		s.data[key] = string(encoded)
	}
	return nil
}

func (s *stubCacheStore) Del(ctx context.Context, keys ...string) error {
	s.dels++
	if s.delErr != nil {
		return s.delErr
	}
	for _, key := range keys {
		delete(s.data, key)
	}
	return nil
}
