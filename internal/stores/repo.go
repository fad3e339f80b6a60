package stores

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/luisabarca/multivend-backend/internal/repo"
	"github.com/luisabarca/multivend-backend/pkg/db/models"
	"github.com/luisabarca/multivend-backend/pkg/enums"
)

// Repository resolves seller scope and answers store-level count queries.
type Repository interface {
	ListOwnedStoreIDs(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error)
	ListStores(ctx context.Context) ([]models.Store, error)
	ListStoresByID(ctx context.Context, ids []uuid.UUID) ([]models.Store, error)
	CountByVerification(ctx context.Context, status enums.VerificationStatus) (int64, error)
}

type repository struct {
	repo.Base
}

// NewRepository builds a stores repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) ListOwnedStoreIDs(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.DB(ctx).
		Model(&models.Store{}).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Pluck("id", &ids).
		Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *repository) ListStores(ctx context.Context) ([]models.Store, error) {
	var out []models.Store
	err := r.DB(ctx).
		Order("created_at ASC").
		Find(&out).
		Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) ListStoresByID(ctx context.Context, ids []uuid.UUID) ([]models.Store, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []models.Store
	err := r.DB(ctx).
		Where("id IN ?", ids).
		Order("created_at ASC").
		Find(&out).
		Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) CountByVerification(ctx context.Context, status enums.VerificationStatus) (int64, error) {
	var count int64
	err := r.DB(ctx).
		Model(&models.Store{}).
		Where("verification_status = ?", status).
		Count(&count).
		Error
	return count, err
}
