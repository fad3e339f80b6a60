package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/multierr"

	"github.com/luisabarca/multivend-backend/pkg/logger"
	"github.com/luisabarca/multivend-backend/pkg/metrics"
)

// section is one independently computed dashboard panel. Sections within an
// assembly share input snapshots but never each other's results, so they run
// concurrently; a failing section degrades to its zero-value shape while the
// rest still populate.
type section struct {
	name string
	run  func(ctx context.Context) error
}

// runSections executes every section concurrently and waits for all of them.
// A positive timeout becomes a per-section deadline, so one stalled query
// degrades its own panel instead of holding the whole assembly. Each failure
// increments the degrade counter for its section; the combined error lands in
// a single warn line so one log entry tells the whole story.
func runSections(ctx context.Context, logg *logger.Logger, m *metrics.DashboardMetrics, kind string, timeout time.Duration, sections ...section) {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs error
	)
	for _, s := range sections {
		wg.Add(1)
		go func(s section) {
			defer wg.Done()
			sctx := ctx
			if timeout > 0 {
				var cancel context.CancelFunc
				sctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			if err := s.run(sctx); err != nil {
				m.IncSectionFailure(kind, s.name)
				mu.Lock()
				errs = multierr.Append(errs, fmt.Errorf("%s: %w", s.name, err))
				mu.Unlock()
			}
		}(s)
	}
	wg.Wait()

	if errs != nil && logg != nil {
		ctx = logg.WithField(ctx, "degraded_sections", errs.Error())
		logg.Warn(ctx, "dashboard sections degraded to empty")
	}
}
