// Package dial computes the hour strip shown for a timezone: a day of hour
// cells shifted by the zone's offset from the browsing timezone, grouped into
// previous/current/next day buckets.
package dial

import (
	"time"

	"github.com/javiermolinar/tzbuddy/internal/dateutil"
)

// TimezoneInfo describes a resolved timezone.
type TimezoneInfo struct {
	Name         string // Canonical IANA name, e.g. "Europe/Madrid"
	Abbreviation string // Abbreviation in force at the browsing instant, e.g. "CET"
}

// BucketDay identifies which calendar day a bucket belongs to.
type BucketDay int

const (
	PreviousDay BucketDay = iota
	CurrentDay
	NextDay
)

func (d BucketDay) String() string {
	switch d {
	case PreviousDay:
		return "previous"
	case NextDay:
		return "next"
	default:
		return "current"
	}
}

// Bucket is one day-partition of the strip.
type Bucket struct {
	Day   BucketDay
	Date  time.Time // Midnight of the bucket day in the target zone
	Cells []HourCell
}

// HourWindow is the strip for one timezone. Empty buckets are omitted.
type HourWindow struct {
	Buckets          []Bucket
	OffsetHours      int // Whole hours between the reference and target zones
	RemainderMinutes int // Minutes dropped when the offset is not a whole hour
}

// Len returns the number of cells across all buckets.
func (w HourWindow) Len() int {
	n := 0
	for _, b := range w.Buckets {
		n += len(b.Cells)
	}
	return n
}

// Cells returns all cells in display order.
func (w HourWindow) Cells() []HourCell {
	cells := make([]HourCell, 0, w.Len())
	for _, b := range w.Buckets {
		cells = append(cells, b.Cells...)
	}
	return cells
}

// Fractional reports whether the target zone is offset by a non-whole hour.
func (w HourWindow) Fractional() bool {
	return w.RemainderMinutes != 0
}

// OffsetHours splits the difference between two UTC offsets (in minutes) into
// whole hours and leftover minutes. Division truncates toward zero, so a
// +5:30 zone seen from UTC is 5 hours with 30 minutes left over.
func OffsetHours(referenceMinutes, targetMinutes int) (hours, remainder int) {
	diff := referenceMinutes - targetMinutes
	return diff / 60, diff % 60
}

// RawHours returns the unwrapped hour sequence for a shift. An aligned zone
// shows the plain day; a shifted zone starts one hour after the shift and
// spans 25 values so the day edge is visible on both sides.
func RawHours(offsetHours int) []int {
	if offsetHours == 0 {
		hours := make([]int, 24)
		for i := range hours {
			hours[i] = i
		}
		return hours
	}

	hours := make([]int, 25)
	for i := range hours {
		hours[i] = i - offsetHours + 1
	}
	return hours
}

// Build computes the strip for target as seen from referenceLoc at reference.
func Build(reference time.Time, target, referenceLoc *time.Location) HourWindow {
	return BuildFromOffsets(
		reference,
		target,
		utcOffsetMinutes(reference, referenceLoc),
		utcOffsetMinutes(reference, target),
	)
}

// BuildFromOffsets computes the strip from explicit UTC offsets in minutes.
// Bucket dates are the reference instant's calendar day in target, one day
// either side.
func BuildFromOffsets(reference time.Time, target *time.Location, referenceMinutes, targetMinutes int) HourWindow {
	if target == nil {
		target = time.UTC
	}
	offset, remainder := OffsetHours(referenceMinutes, targetMinutes)
	day := dateutil.TruncateToDay(reference.In(target))

	var prev, curr, next []int
	for _, raw := range RawHours(offset) {
		switch {
		case raw < 0:
			prev = append(prev, wrapHour(raw))
		case raw < 24:
			curr = append(curr, raw)
		default:
			next = append(next, wrapHour(raw))
		}
	}

	w := HourWindow{OffsetHours: offset, RemainderMinutes: remainder}
	for i, hours := range [][]int{prev, curr, next} {
		if len(hours) == 0 {
			continue
		}
		date := day.AddDate(0, 0, i-1)
		cells := make([]HourCell, len(hours))
		for j, h := range hours {
			cells[j] = HourCell{Hour: h, Date: date, Boundary: h == 0}
		}
		w.Buckets = append(w.Buckets, Bucket{Day: BucketDay(i), Date: date, Cells: cells})
	}
	return w
}

// wrapHour folds a raw hour into 0..23. Zones can sit up to 26 hours
// apart, so a raw hour may be more than a day out.
func wrapHour(raw int) int {
	return ((raw % 24) + 24) % 24
}

// utcOffsetMinutes mirrors tzinfo.UTCOffsetMinutes, which dial cannot
// import because tzinfo depends on it.
func utcOffsetMinutes(t time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}
	_, secs := t.In(loc).Zone()
	return secs / 60
}
