package products

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/luisabarca/multivend-backend/internal/repo"
	"github.com/luisabarca/multivend-backend/pkg/db/models"
)

// Repository is the product index: everything here is scoped by store ids.
// Empty scope returns empty results without touching the database; an
// unscoped fallback would silently leak other sellers' catalogs.
type Repository interface {
	ListByStores(ctx context.Context, storeIDs []uuid.UUID) ([]models.Product, error)
	ListLowStock(ctx context.Context, storeIDs []uuid.UUID, threshold, limit int) ([]models.Product, error)
	CountLowStock(ctx context.Context, storeIDs []uuid.UUID, threshold int) (int64, error)
	CountAll(ctx context.Context) (int64, error)
	ListAll(ctx context.Context) ([]models.Product, error)
}

type repository struct {
	repo.Base
}

// NewRepository builds a products repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) ListByStores(ctx context.Context, storeIDs []uuid.UUID) ([]models.Product, error) {
	if len(storeIDs) == 0 {
		return nil, nil
	}
	var out []models.Product
	err := r.DB(ctx).
		Where("store_id IN ?", storeIDs).
		Order("created_at ASC").
		Find(&out).
		Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) ListLowStock(ctx context.Context, storeIDs []uuid.UUID, threshold, limit int) ([]models.Product, error) {
	if len(storeIDs) == 0 {
		return nil, nil
	}
	var out []models.Product
	err := r.DB(ctx).
		Where("store_id IN ? AND stock < ?", storeIDs, threshold).
		Order("stock ASC").
		Limit(limit).
		Find(&out).
		Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CountLowStock is the uncapped companion to ListLowStock: headline cards
// need the full count while the panel renders a limited page.
func (r *repository) CountLowStock(ctx context.Context, storeIDs []uuid.UUID, threshold int) (int64, error) {
	if len(storeIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.DB(ctx).
		Model(&models.Product{}).
		Where("store_id IN ? AND stock < ?", storeIDs, threshold).
		Count(&count).
		Error
	return count, err
}

func (r *repository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB(ctx).
		Model(&models.Product{}).
		Count(&count).
		Error
	return count, err
}

func (r *repository) ListAll(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	err := r.DB(ctx).
		Order("created_at ASC").
		Find(&out).
		Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
