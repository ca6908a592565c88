// Package tzinfo resolves timezone identifiers against the IANA database.
package tzinfo

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // Embedded zoneinfo so lookups work without a system database

	"github.com/javiermolinar/tzbuddy/internal/dial"
)

// aliases maps shorthands to canonical zone names.
var aliases = map[string]string{
	"utc": "UTC",
	"gmt": "UTC",
	"z":   "UTC",
}

// Resolver looks up timezones by identifier.
type Resolver struct {
	local *time.Location
}

// NewResolver creates a resolver. "Local" resolves to the given location,
// or time.Local when nil.
func NewResolver(local *time.Location) *Resolver {
	if local == nil {
		local = time.Local
	}
	return &Resolver{local: local}
}

// Location returns the zone for identifier, or false if it is unknown.
// An empty identifier is unknown.
func (r *Resolver) Location(identifier string) (*time.Location, bool) {
	id := strings.TrimSpace(identifier)
	if id == "" {
		return nil, false
	}
	if strings.EqualFold(id, "local") {
		return r.local, true
	}
	if canonical, ok := aliases[strings.ToLower(id)]; ok {
		id = canonical
	}
	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, false
	}
	return loc, true
}

// Lookup resolves identifier and describes it at the given instant.
// Unknown zones return ok == false; callers render nothing for them.
func (r *Resolver) Lookup(identifier string, at time.Time) (dial.TimezoneInfo, *time.Location, bool) {
	loc, ok := r.Location(identifier)
	if !ok {
		return dial.TimezoneInfo{}, nil, false
	}
	abbr, _ := at.In(loc).Zone()
	return dial.TimezoneInfo{Name: loc.String(), Abbreviation: abbr}, loc, true
}

// Valid reports whether identifier resolves to a zone.
func (r *Resolver) Valid(identifier string) bool {
	_, ok := r.Location(identifier)
	return ok
}

// UTCOffsetMinutes returns loc's offset from UTC at t, in minutes.
func UTCOffsetMinutes(t time.Time, loc *time.Location) int {
	_, secs := t.In(loc).Zone()
	return secs / 60
}

// FormatOffset formats an offset in minutes as "+5", "-3:30" or "+0".
func FormatOffset(minutes int) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%s%d", sign, hours)
	}
	return fmt.Sprintf("%s%d:%02d", sign, hours, mins)
}
