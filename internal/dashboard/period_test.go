package dashboard

import (
	"testing"
	"time"

	"github.com/luisabarca/multivend-backend/internal/aggregate"
	pkgerrors "github.com/luisabarca/multivend-backend/pkg/errors"
)

func TestParsePeriodAcceptsPresets(t *testing.T) {
	for _, raw := range []string{"7d", "30d", "90d", "1y"} {
		period, err := ParsePeriod(raw)
		if err != nil {
			t.Fatalf("%s: %v", raw, err)
		}
		if period.String() != raw {
			t.Fatalf("expected %s, got %s", raw, period)
		}
	}
}

func TestParsePeriodDefaultsEmpty(t *testing.T) {
	period, err := ParsePeriod("")
	if err != nil {
		t.Fatalf("empty period: %v", err)
	}
	if period != DefaultPeriod {
		t.Fatalf("expected default %s, got %s", DefaultPeriod, period)
	}
}

func TestParsePeriodRejectsUnknownValues(t *testing.T) {
	for _, raw := range []string{"14d", "1m", "forever", "7D"} {
		_, err := ParsePeriod(raw)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("%s: expected validation error, got %v", raw, err)
		}
	}
}

func TestPeriodWindowGranularity(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	for _, tc := range []struct {
		period      Period
		granularity aggregate.Granularity
		buckets     int
	}{
		{Period7D, aggregate.GranularityDay, 7},
		{Period30D, aggregate.GranularityDay, 30},
		{Period90D, aggregate.GranularityDay, 90},
		{Period1Y, aggregate.GranularityMonth, 12},
	} {
		window := tc.period.Window(now)
		if window.Granularity != tc.granularity {
			t.Fatalf("%s: expected %s granularity, got %s", tc.period, tc.granularity, window.Granularity)
		}
		if got := len(window.Buckets()); got != tc.buckets {
			t.Fatalf("%s: expected %d buckets, got %d", tc.period, tc.buckets, got)
		}
	}
}
