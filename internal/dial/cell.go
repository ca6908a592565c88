package dial

import (
	"strconv"
	"time"
)

// Clock selects how hour labels are printed.
type Clock int

const (
	Clock24 Clock = iota
	Clock12
)

// ParseClock maps a config value to a Clock. Unknown values mean 24h.
func ParseClock(s string) Clock {
	if s == "12h" {
		return Clock12
	}
	return Clock24
}

// HourCell is one hour of the strip.
type HourCell struct {
	Hour     int       // 0..23
	Date     time.Time // Calendar date of the cell's bucket
	Boundary bool      // Hour 0: rendered as a date label
}

// Time returns the cell as an instant in its bucket's zone.
func (c HourCell) Time() time.Time {
	return time.Date(c.Date.Year(), c.Date.Month(), c.Date.Day(), c.Hour, 0, 0, 0, c.Date.Location())
}

// Label returns the text shown in the cell.
func (c HourCell) Label(clock Clock) string {
	if c.Boundary {
		return c.Date.Format("Jan 02")
	}
	if clock == Clock12 {
		switch {
		case c.Hour == 12:
			return "12pm"
		case c.Hour > 12:
			return strconv.Itoa(c.Hour-12) + "pm"
		default:
			return strconv.Itoa(c.Hour) + "am"
		}
	}
	return strconv.Itoa(c.Hour)
}

// Title returns the cell's full date and hour, e.g. "24/12 09:00".
func (c HourCell) Title() string {
	return c.Time().Format("02/01 15:04")
}

// Available reports whether the cell's hour falls inside any range.
func (c HourCell) Available(ranges []DateRange) bool {
	return HourInRanges(c.Hour, ranges)
}

// IsNightHour reports whether an hour is usually outside waking hours.
func IsNightHour(hour int) bool {
	return hour <= 5 || hour >= 22
}
