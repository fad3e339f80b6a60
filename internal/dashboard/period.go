package dashboard

import (
	"time"

	"github.com/luisabarca/multivend-backend/internal/aggregate"
	pkgerrors "github.com/luisabarca/multivend-backend/pkg/errors"
)

// Period is a preset reporting window.
type Period string

const (
	Period7D  Period = "7d"
	Period30D Period = "30d"
	Period90D Period = "90d"
	Period1Y  Period = "1y"

	DefaultPeriod = Period30D
)

// ParsePeriod validates a raw period value before any fetch happens. An empty
// value means the default; anything else outside the presets is rejected, never
// silently defaulted.
func ParsePeriod(raw string) (Period, error) {
	switch Period(raw) {
	case "":
		return DefaultPeriod, nil
	case Period7D, Period30D, Period90D, Period1Y:
		return Period(raw), nil
	default:
		return "", pkgerrors.New(pkgerrors.CodeValidation, "period must be one of 7d, 30d, 90d, 1y").
			WithDetails(map[string]any{"period": raw})
	}
}

// Window builds the reporting window ending at now. Day-granular presets stay
// at or under 90 days; the one-year preset buckets by month.
func (p Period) Window(now time.Time) aggregate.Window {
	switch p {
	case Period7D:
		return aggregate.DayWindow(now, 7)
	case Period90D:
		return aggregate.DayWindow(now, 90)
	case Period1Y:
		return aggregate.MonthWindow(now, 12)
	default:
		return aggregate.DayWindow(now, 30)
	}
}

func (p Period) String() string {
	return string(p)
}
