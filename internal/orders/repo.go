package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/luisabarca/multivend-backend/internal/repo"
	"github.com/luisabarca/multivend-backend/pkg/db/models"
)

// Repository supplies the order-item join and the order fetch. There is no
// direct seller-to-order foreign key; "which orders touch my products" is
// established by walking product ids to order items to distinct order ids.
type Repository interface {
	ItemsForProducts(ctx context.Context, productIDs []uuid.UUID) ([]models.OrderItem, error)
	ItemsForOrders(ctx context.Context, orderIDs []uuid.UUID) ([]models.OrderItem, error)
	OrdersByID(ctx context.Context, orderIDs []uuid.UUID, filter Filter) ([]models.Order, error)
	ListByBuyer(ctx context.Context, buyerID uuid.UUID, filter Filter) ([]models.Order, error)
	ListAll(ctx context.Context, filter Filter) ([]models.Order, error)
	CountAll(ctx context.Context) (int64, error)
}

type repository struct {
	repo.Base
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) ItemsForProducts(ctx context.Context, productIDs []uuid.UUID) ([]models.OrderItem, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}
	var items []models.OrderItem
	err := r.DB(ctx).
		Where("product_id IN ?", productIDs).
		Order("created_at ASC").
		Find(&items).
		Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) ItemsForOrders(ctx context.Context, orderIDs []uuid.UUID) ([]models.OrderItem, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}
	var items []models.OrderItem
	err := r.DB(ctx).
		Where("order_id IN ?", orderIDs).
		Order("created_at ASC").
		Find(&items).
		Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) OrdersByID(ctx context.Context, orderIDs []uuid.UUID, filter Filter) ([]models.Order, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}
	var orders []models.Order
	query := filter.apply(r.DB(ctx)).Where("id IN ?", orderIDs)
	if err := query.Order("created_at ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repository) ListByBuyer(ctx context.Context, buyerID uuid.UUID, filter Filter) ([]models.Order, error) {
	var orders []models.Order
	query := filter.apply(r.DB(ctx)).Where("buyer_id = ?", buyerID)
	if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repository) ListAll(ctx context.Context, filter Filter) ([]models.Order, error) {
	var orders []models.Order
	if err := filter.apply(r.DB(ctx)).Order("created_at ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB(ctx).
		Model(&models.Order{}).
		Count(&count).
		Error
	return count, err
}
