package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNilReceiverIsNoop(t *testing.T) {
	var m *DashboardMetrics
	m.ObserveDuration("seller", time.Second)
	m.IncSectionFailure("seller", "trend")
	m.IncCacheHit("seller")
	m.IncCacheMiss("seller")
}

func TestNilRegistererYieldsNoop(t *testing.T) {
	m := NewDashboardMetrics(nil)
	m.IncSectionFailure("admin", "top stores")
}

func TestSectionFailureCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewDashboardMetrics(reg)

	m.IncSectionFailure("seller", "Revenue Trend")
	m.IncSectionFailure("seller", "Revenue Trend")

	got := testutil.ToFloat64(m.sectionFailure.WithLabelValues("seller", "revenue_trend"))
	if got != 2 {
		t.Fatalf("expected 2 failures recorded, got %v", got)
	}
}

func TestNormalizeLabel(t *testing.T) {
	if normalizeLabel("  Top Stores ") != "top_stores" {
		t.Fatalf("unexpected label %q", normalizeLabel("  Top Stores "))
	}
	if normalizeLabel("") != "unknown" {
		t.Fatal("empty label should normalize to unknown")
	}
}
