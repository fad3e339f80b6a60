package aggregate

import "time"

// Granularity is the trend bucket size.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
)

// Window is a half-open time range [Start, End) carrying its bucket
// granularity. Periods of 90 days or less bucket by calendar day; the
// one-year period buckets by calendar month.
type Window struct {
	Start       time.Time
	End         time.Time
	Granularity Granularity

	span int
}

// DayWindow builds a window covering the given number of calendar days and
// ending now. The first bucket is days-1 days before today.
func DayWindow(now time.Time, days int) Window {
	end := now.UTC()
	start := truncateDay(end).AddDate(0, 0, -(days - 1))
	return Window{Start: start, End: end, Granularity: GranularityDay, span: days}
}

// MonthWindow builds a window covering the given number of calendar months
// and ending now.
func MonthWindow(now time.Time, months int) Window {
	end := now.UTC()
	start := truncateMonth(end).AddDate(0, -(months - 1), 0)
	return Window{Start: start, End: end, Granularity: GranularityMonth, span: months}
}

// Previous returns the immediately preceding window of equal length, used
// for growth comparisons.
func (w Window) Previous() Window {
	prev := Window{End: w.Start, Granularity: w.Granularity, span: w.span}
	switch w.Granularity {
	case GranularityMonth:
		prev.Start = w.Start.AddDate(0, -w.span, 0)
	default:
		prev.Start = w.Start.AddDate(0, 0, -w.span)
	}
	return prev
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	t = t.UTC()
	return !t.Before(w.Start) && t.Before(w.End)
}

// BucketFor formats the bucket key for a timestamp.
func (w Window) BucketFor(t time.Time) string {
	return t.UTC().Format(w.bucketLayout())
}

// Buckets lists every bucket key in chronological order. The list is always
// complete: a bucket with no revenue still appears so trend charts have no
// gaps.
func (w Window) Buckets() []string {
	keys := make([]string, 0, w.span)
	cursor := w.Start
	for i := 0; i < w.span; i++ {
		keys = append(keys, cursor.Format(w.bucketLayout()))
		if w.Granularity == GranularityMonth {
			cursor = cursor.AddDate(0, 1, 0)
		} else {
			cursor = cursor.AddDate(0, 0, 1)
		}
	}
	return keys
}

func (w Window) bucketLayout() string {
	if w.Granularity == GranularityMonth {
		return "2006-01"
	}
	return "2006-01-02"
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func truncateMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
