package aggregate

import "github.com/luisabarca/multivend-backend/internal/attribution"

// Trend buckets pure-order revenue across the window. Every bucket in the
// window appears exactly once, in chronological order, with zero revenue
// where nothing happened. Orders outside the window are ignored so callers
// can pass an over-fetched range.
func Trend(orders []attribution.AttributedOrder, window Window) []TrendPoint {
	byBucket := make(map[string]int64)
	for _, o := range orders {
		if !window.Contains(o.Order.CreatedAt) {
			continue
		}
		byBucket[window.BucketFor(o.Order.CreatedAt)] += o.ShareCents
	}

	buckets := window.Buckets()
	points := make([]TrendPoint, 0, len(buckets))
	for _, key := range buckets {
		points = append(points, TrendPoint{Bucket: key, RevenueCents: byBucket[key]})
	}
	return points
}
