package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/luisabarca/multivend-backend/internal/aggregate"
	"github.com/luisabarca/multivend-backend/internal/attribution"
	"github.com/luisabarca/multivend-backend/internal/orders"
	pkgerrors "github.com/luisabarca/multivend-backend/pkg/errors"
	"github.com/luisabarca/multivend-backend/pkg/logger"
	"github.com/luisabarca/multivend-backend/pkg/metrics"
	"github.com/luisabarca/multivend-backend/pkg/redis"
)

// recentOrderLimit bounds the buyer's recent order list.
const recentOrderLimit = 10

// BuyerService assembles the buyer dashboard read-model. Buyers see whole
// orders; attribution never applies on this side of the marketplace.
type BuyerService struct {
	orders         orders.Repository
	cache          *Cache
	logg           *logger.Logger
	metrics        *metrics.DashboardMetrics
	sectionTimeout time.Duration
	now            func() time.Time
}

// NewBuyerService wires the buyer dashboard assembler.
func NewBuyerService(orderRepo orders.Repository, cache *Cache, logg *logger.Logger, m *metrics.DashboardMetrics, sectionTimeout time.Duration) (*BuyerService, error) {
	if orderRepo == nil {
		return nil, fmt.Errorf("buyer dashboard requires order access")
	}
	return &BuyerService{
		orders:         orderRepo,
		cache:          cache,
		logg:           logg,
		metrics:        m,
		sectionTimeout: sectionTimeout,
		now:            time.Now,
	}, nil
}

// Dashboard assembles the buyer read-model for the given period.
func (b *BuyerService) Dashboard(ctx context.Context, buyerID uuid.UUID, period Period) (BuyerDashboard, error) {
	if buyerID == uuid.Nil {
		return BuyerDashboard{}, pkgerrors.New(pkgerrors.CodeValidation, "buyer id required")
	}
	if b.logg != nil {
		ctx = b.logg.WithUserID(ctx, buyerID.String())
		ctx = b.logg.WithDashboard(ctx, KindBuyer)
	}

	key := redis.DashboardKey(KindBuyer, buyerID.String(), period.String())
	var cached BuyerDashboard
	if b.cache.Lookup(ctx, KindBuyer, key, &cached) {
		return cached, nil
	}

	started := b.now()
	defer func() {
		b.metrics.ObserveDuration(KindBuyer, b.now().Sub(started))
	}()

	window := period.Window(started)
	previous := window.Previous()
	fetched, err := b.orders.ListByBuyer(ctx, buyerID, orders.Filter{From: &previous.Start, To: &window.End})
	if err != nil {
		b.metrics.IncSectionFailure(KindBuyer, "scope")
		if b.logg != nil {
			b.logg.Error(ctx, "buyer dashboard order fetch failed", err)
		}
		return emptyBuyer(period), nil
	}
	if len(fetched) == 0 {
		return emptyBuyer(period), nil
	}

	var current []attribution.AttributedOrder
	var totalCents int64
	dash := emptyBuyer(period)
	for _, o := range fetched {
		if !window.Contains(o.CreatedAt) {
			continue
		}
		totalCents += o.TotalCents
		// A buyer owns an order's full total; reusing the attributed shape
		// lets the trend bucketing serve both sides.
		current = append(current, attribution.AttributedOrder{Order: o, ShareCents: o.TotalCents, Pure: true})
		if len(dash.Recent) < recentOrderLimit {
			dash.Recent = append(dash.Recent, BuyerOrder{
				ID:         o.ID,
				Status:     o.Status,
				Label:      o.Status.DisplayLabel(),
				TotalCents: o.TotalCents,
				CreatedAt:  o.CreatedAt,
			})
		}
	}

	runSections(ctx, b.logg, b.metrics, KindBuyer, b.sectionTimeout,
		section{name: "trend", run: func(context.Context) error {
			dash.Trend = aggregate.Trend(current, window)
			return nil
		}},
		section{name: "statuses", run: func(context.Context) error {
			dash.Statuses = aggregate.StatusDistribution(ordersOf(current))
			return nil
		}},
	)

	var averageCents int64
	if len(current) > 0 {
		averageCents = decimal.NewFromInt(totalCents).
			Div(decimal.NewFromInt(int64(len(current)))).
			Round(0).
			IntPart()
	}
	dash.Cards = aggregate.BuyerCards(totalCents, len(current), averageCents)

	b.cache.Store(ctx, key, dash)
	return dash, nil
}
