// Package team defines the core domain types for tzbuddy: team members,
// their timezones, and the availability windows shown on their dials.
package team

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/tzbuddy/internal/dateutil"
	"github.com/javiermolinar/tzbuddy/internal/dial"
	"github.com/javiermolinar/tzbuddy/internal/tzinfo"
)

// Validation errors.
var (
	ErrEmptyName       = errors.New("member name cannot be empty")
	ErrUnknownTimezone = errors.New("unknown timezone")
	ErrEndBeforeStart  = errors.New("end time must be after start time")
)

// Domain errors.
var (
	ErrMemberNotFound  = errors.New("member not found")
	ErrDuplicateMember = errors.New("member already exists")
)

// Member is a person whose working hours are shown on a dial.
type Member struct {
	ID        int64
	Name      string
	Timezone  string // IANA identifier, e.g. "Europe/Madrid"
	CreatedAt time.Time
}

// NewMember creates a Member with validation.
func NewMember(name, timezone string, resolver *tzinfo.Resolver) (*Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	loc, ok := resolver.Location(timezone)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimezone, timezone)
	}
	return &Member{
		Name:      name,
		Timezone:  loc.String(),
		CreatedAt: time.Now(),
	}, nil
}

// Availability is a window in which a member can be reached.
type Availability struct {
	ID       int64
	MemberID int64
	Start    time.Time
	End      time.Time
}

// NewAvailability builds a window on date (YYYY-MM-DD) from start to end
// (HH:MM), interpreted in loc. An end of "24:00" means the next midnight.
func NewAvailability(memberID int64, date, start, end string, loc *time.Location) (*Availability, error) {
	day, err := dateutil.ParseDate(date, loc)
	if err != nil {
		return nil, err
	}
	startMin, err := dateutil.ParseClock(start)
	if err != nil {
		return nil, fmt.Errorf("start time: %w", err)
	}
	endMin, err := dateutil.ParseClock(end)
	if err != nil {
		return nil, fmt.Errorf("end time: %w", err)
	}
	if endMin <= startMin {
		return nil, ErrEndBeforeStart
	}

	return &Availability{
		MemberID: memberID,
		Start:    dateutil.AtClock(day, startMin),
		End:      dateutil.AtClock(day, endMin),
	}, nil
}

// Range converts the window to the dial's range type.
func (a *Availability) Range() dial.DateRange {
	return dial.DateRange{Start: a.Start, End: a.End}
}

// Duration returns the window length.
func (a *Availability) Duration() time.Duration {
	return a.End.Sub(a.Start)
}

// Ranges converts availability windows to dial ranges. Nil entries become
// empty ranges, which the dial skips.
func Ranges(avail []*Availability) []dial.DateRange {
	if avail == nil {
		return nil
	}
	out := make([]dial.DateRange, len(avail))
	for i, a := range avail {
		if a != nil {
			out[i] = a.Range()
		}
	}
	return out
}
