package pipeline

import (
	"time"

	"bikedash/internal/dataset"
)

// DateRange is an inclusive [Start, End] day pair
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a range, swapping the ends if they arrive reversed
func NewDateRange(start, end time.Time) DateRange {
	if end.Before(start) {
		start, end = end, start
	}
	return DateRange{Start: start, End: end}
}

// Clamp restricts both ends of the range to [min, max], the bounds of the
// loaded table. Clamping is monotonic, so Start <= End is preserved.
func (r DateRange) Clamp(min, max time.Time) DateRange {
	return DateRange{
		Start: clampDay(r.Start, min, max),
		End:   clampDay(r.End, min, max),
	}
}

func clampDay(day, min, max time.Time) time.Time {
	if day.Before(min) {
		return min
	}
	if day.After(max) {
		return max
	}
	return day
}

// Contains reports whether day falls inside the range, inclusive both ends
func (r DateRange) Contains(day time.Time) bool {
	return !day.Before(r.Start) && !day.After(r.End)
}

// Filter returns the subset of records whose date falls in the range.
// An empty result is valid and flows through aggregation unchanged.
func Filter(records []dataset.TripRecord, r DateRange) []dataset.TripRecord {
	filtered := make([]dataset.TripRecord, 0, len(records))
	for _, rec := range records {
		if r.Contains(rec.Date) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}
