package view

import (
	"time"

	"github.com/javiermolinar/tzbuddy/internal/dial"
)

// HeaderLine describes the browsing date and reference zone, marking today.
func HeaderLine(browsing, today time.Time, reference dial.TimezoneInfo) string {
	label := browsing.Format("Mon Jan 2, 2006")
	if sameDay(browsing, today.In(browsing.Location())) {
		label = "*" + label + "*"
	}
	zone := reference.Name
	if reference.Abbreviation != "" && reference.Abbreviation != reference.Name {
		zone += " (" + reference.Abbreviation + ")"
	}
	return label + "  " + zone
}

func sameDay(a, b time.Time) bool {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	return ya == yb && ma == mb && da == db
}
