package dial

import "time"

// DateRange is one availability window, [Start, End).
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Missing reports whether either bound is unset.
func (r DateRange) Missing() bool {
	return r.Start.IsZero() || r.End.IsZero()
}

// Contains reports whether t is in [Start, End).
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// HourInRanges reports whether hour, placed on each range's start day, falls
// inside that range. The candidate is always anchored to the range start's
// calendar day in the start's own location, not to the strip cell's date.
// Ranges with a missing bound are skipped.
func HourInRanges(hour int, ranges []DateRange) bool {
	for _, r := range ranges {
		if r.Missing() {
			continue
		}
		y, m, d := r.Start.Date()
		candidate := time.Date(y, m, d, hour, 0, 0, 0, r.Start.Location())
		if r.Contains(candidate) {
			return true
		}
	}
	return false
}
