package stores

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/luisabarca/multivend-backend/pkg/db/models"
	"github.com/luisabarca/multivend-backend/pkg/enums"
	pkgerrors "github.com/luisabarca/multivend-backend/pkg/errors"
	"github.com/luisabarca/multivend-backend/pkg/geo"
)

// Service exposes seller scope resolution and platform store projections.
type Service interface {
	// OwnedStoreIDs returns the stores a seller owns. An empty result is
	// valid and must short-circuit downstream aggregation to zero values.
	OwnedStoreIDs(ctx context.Context, sellerID uuid.UUID) ([]uuid.UUID, error)
	// Locations returns every store with state-centroid coordinates for the
	// admin map.
	Locations(ctx context.Context) ([]Location, error)
	// Stores returns the raw store records for the given ids, used by the
	// platform revenue ranking.
	Stores(ctx context.Context, ids []uuid.UUID) ([]models.Store, error)
	// CountVerified returns the active (verified) store count.
	CountVerified(ctx context.Context) (int64, error)
}

type service struct {
	repo Repository
}

// NewService builds the stores service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("stores repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) OwnedStoreIDs(ctx context.Context, sellerID uuid.UUID) ([]uuid.UUID, error) {
	if sellerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "seller id required")
	}
	ids, err := s.repo.ListOwnedStoreIDs(ctx, sellerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing owned stores")
	}
	return ids, nil
}

func (s *service) Locations(ctx context.Context) ([]Location, error) {
	records, err := s.repo.ListStores(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing stores")
	}

	locations := make([]Location, 0, len(records))
	for _, store := range records {
		loc := Location{
			ID:       store.ID,
			Name:     store.Name,
			City:     store.City,
			State:    store.State,
			Verified: store.VerificationStatus == enums.VerificationVerified,
			Status:   store.VerificationStatus,
		}
		if point, ok := geo.StateCentroid(store.State); ok {
			lat, lng := point.Lat, point.Lng
			loc.Lat = &lat
			loc.Lng = &lng
		}
		locations = append(locations, loc)
	}
	return locations, nil
}

func (s *service) Stores(ctx context.Context, ids []uuid.UUID) ([]models.Store, error) {
	records, err := s.repo.ListStoresByID(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing stores by id")
	}
	return records, nil
}

func (s *service) CountVerified(ctx context.Context) (int64, error) {
	count, err := s.repo.CountByVerification(ctx, enums.VerificationVerified)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "counting verified stores")
	}
	return count, nil
}
