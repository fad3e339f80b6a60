package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DashboardMetrics records assembly outcomes for dashboard read-models.
type DashboardMetrics struct {
	duration       *prometheus.HistogramVec
	sectionFailure *prometheus.CounterVec
	cacheHit       *prometheus.CounterVec
	cacheMiss      *prometheus.CounterVec
}

// NewDashboardMetrics registers the dashboard metrics on the provided registerer.
// A nil registerer yields a no-op recorder, which keeps tests quiet.
func NewDashboardMetrics(reg prometheus.Registerer) *DashboardMetrics {
	if reg == nil {
		return &DashboardMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dashboard_assembly_duration_seconds",
		Help:    "Time spent assembling a dashboard read-model.",
		Buckets: prometheus.DefBuckets,
	}, []string{"dashboard"})
	sectionFailure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_section_failures_total",
		Help: "Dashboard sections that degraded to their zero-value shape.",
	}, []string{"dashboard", "section"})
	cacheHit := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_cache_hits_total",
		Help: "Dashboard responses served from the read-model cache.",
	}, []string{"dashboard"})
	cacheMiss := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dashboard_cache_misses_total",
		Help: "Dashboard requests that fell through to direct assembly.",
	}, []string{"dashboard"})
	reg.MustRegister(duration, sectionFailure, cacheHit, cacheMiss)
	return &DashboardMetrics{
		duration:       duration,
		sectionFailure: sectionFailure,
		cacheHit:       cacheHit,
		cacheMiss:      cacheMiss,
	}
}

// ObserveDuration records assembly time for the named dashboard.
func (m *DashboardMetrics) ObserveDuration(dashboard string, d time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(dashboard)).Observe(d.Seconds())
}

// IncSectionFailure increments the degrade counter for one dashboard section.
func (m *DashboardMetrics) IncSectionFailure(dashboard, section string) {
	if m == nil || m.sectionFailure == nil {
		return
	}
	m.sectionFailure.WithLabelValues(normalizeLabel(dashboard), normalizeLabel(section)).Inc()
}

// IncCacheHit increments the cache hit counter.
func (m *DashboardMetrics) IncCacheHit(dashboard string) {
	if m == nil || m.cacheHit == nil {
		return
	}
	m.cacheHit.WithLabelValues(normalizeLabel(dashboard)).Inc()
}

// IncCacheMiss increments the cache miss counter.
func (m *DashboardMetrics) IncCacheMiss(dashboard string) {
	if m == nil || m.cacheMiss == nil {
		return
	}
	m.cacheMiss.WithLabelValues(normalizeLabel(dashboard)).Inc()
}

func normalizeLabel(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return "unknown"
	}
	return strings.ReplaceAll(value, " ", "_")
}
