// Package summary builds the per-member dials for a browsing day and works
// out which hours the team shares.
package summary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/javiermolinar/tzbuddy/internal/dateutil"
	"github.com/javiermolinar/tzbuddy/internal/dial"
	"github.com/javiermolinar/tzbuddy/internal/llm"
	"github.com/javiermolinar/tzbuddy/internal/team"
	"github.com/javiermolinar/tzbuddy/internal/tzinfo"
)

// MemberDay is one member's dial for the browsing day.
type MemberDay struct {
	Member    *team.Member
	Info      dial.TimezoneInfo
	Location  *time.Location
	Offset    string // Member offset relative to the reference zone, e.g. "-5"
	Window    dial.HourWindow
	Ranges    []dial.DateRange
	Available []bool // One flag per cell of Window.Cells()
}

// ZoneLabel is the zone column text, e.g. "EST -5". A trailing "*" marks
// offsets that are not whole hours.
func (md *MemberDay) ZoneLabel() string {
	abbr := md.Info.Abbreviation
	if abbr == "" {
		abbr = md.Info.Name
	}
	label := abbr + " " + md.Offset
	if md.Window.Fractional() {
		label += "*"
	}
	return label
}

// HourOverlap lists who is available at one reference hour.
type HourOverlap struct {
	Hour    int
	Start   time.Time
	Members []string
}

// TeamDay holds every member's dial and the hourly overlap for one day.
type TeamDay struct {
	Date      time.Time // Midnight of the browsing day in the reference zone
	Reference dial.TimezoneInfo
	Members   []*MemberDay
	Overlap   []HourOverlap
	Skipped   []*team.Member // Members whose timezone could not be resolved
	Insight   *llm.Insight
}

// SharedHours returns the reference hours in which every member is available.
func (d *TeamDay) SharedHours() []int {
	if len(d.Members) == 0 {
		return nil
	}
	var hours []int
	for _, o := range d.Overlap {
		if len(o.Members) == len(d.Members) {
			hours = append(hours, o.Hour)
		}
	}
	return hours
}

// Options configures BuildTeamDay.
type Options struct {
	Date              time.Time // Browsing date; zero means now
	ReferenceTimezone string    // IANA name or "Local"
	Resolver          *tzinfo.Resolver
	IncludeInsight    bool
	Insighter         *llm.Insighter // Required when IncludeInsight is set
}

// BuildTeamDay loads members and availability and builds their dials for the
// browsing date.
func BuildTeamDay(ctx context.Context, repo team.Repository, opts Options) (*TeamDay, error) {
	resolver := opts.Resolver
	if resolver == nil {
		resolver = tzinfo.NewResolver(nil)
	}

	browsing := opts.Date
	if browsing.IsZero() {
		browsing = time.Now()
	}

	refInfo, refLoc, ok := resolver.Lookup(opts.ReferenceTimezone, browsing)
	if !ok {
		return nil, fmt.Errorf("%w: %q", team.ErrUnknownTimezone, opts.ReferenceTimezone)
	}
	browsing = browsing.In(refLoc)
	day := dateutil.TruncateToDay(browsing)

	members, err := repo.ListMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}

	// Wide enough to cover the previous and next buckets of any zone.
	from, to := day.AddDate(0, 0, -2), day.AddDate(0, 0, 3)

	result := &TeamDay{Date: day, Reference: refInfo}
	for _, m := range members {
		info, loc, ok := resolver.Lookup(m.Timezone, browsing)
		if !ok {
			result.Skipped = append(result.Skipped, m)
			continue
		}

		avail, err := repo.ListAvailability(ctx, m.ID, from, to)
		if err != nil {
			return nil, fmt.Errorf("listing availability for %s: %w", m.Name, err)
		}

		result.Members = append(result.Members, newMemberDay(m, info, loc, browsing, refLoc, team.Ranges(avail)))
	}

	result.Overlap = overlap(day, result.Members)

	if opts.IncludeInsight && len(result.Members) > 0 {
		if opts.Insighter == nil {
			return nil, errors.New("insight requested without an LLM client")
		}
		insight, err := opts.Insighter.TeamInsight(ctx, result.insightInput())
		if err != nil {
			return nil, fmt.Errorf("building insight: %w", err)
		}
		result.Insight = insight
	}

	return result, nil
}

func newMemberDay(m *team.Member, info dial.TimezoneInfo, loc *time.Location, browsing time.Time, refLoc *time.Location, ranges []dial.DateRange) *MemberDay {
	window := dial.Build(browsing, loc, refLoc)
	cells := window.Cells()
	flags := make([]bool, len(cells))
	for i, c := range cells {
		flags[i] = c.Available(ranges)
	}

	offset := tzinfo.UTCOffsetMinutes(browsing, loc) - tzinfo.UTCOffsetMinutes(browsing, refLoc)
	return &MemberDay{
		Member:    m,
		Info:      info,
		Location:  loc,
		Offset:    tzinfo.FormatOffset(offset),
		Window:    window,
		Ranges:    ranges,
		Available: flags,
	}
}

// overlap checks every reference hour of day as an instant against each
// member's ranges. Hours skipped by a DST jump are absent.
func overlap(day time.Time, members []*MemberDay) []HourOverlap {
	var out []HourOverlap
	y, mo, d := day.Date()
	for h := 0; h < 24; h++ {
		start := time.Date(y, mo, d, h, 0, 0, 0, day.Location())
		if start.Hour() != h {
			continue
		}
		o := HourOverlap{Hour: h, Start: start}
		for _, md := range members {
			if availableAt(start, md.Ranges) {
				o.Members = append(o.Members, md.Member.Name)
			}
		}
		out = append(out, o)
	}
	return out
}

func availableAt(t time.Time, ranges []dial.DateRange) bool {
	for _, r := range ranges {
		if !r.Missing() && r.Contains(t) {
			return true
		}
	}
	return false
}

func (d *TeamDay) insightInput() llm.TeamDay {
	in := llm.TeamDay{
		Date:      d.Date,
		Reference: d.Reference.Name,
		Shared:    d.SharedHours(),
	}
	for _, md := range d.Members {
		mh := llm.MemberHours{
			Name:     md.Member.Name,
			Timezone: md.Info.Name,
			Offset:   md.Offset,
		}
		for _, o := range d.Overlap {
			for _, name := range o.Members {
				if name == md.Member.Name {
					mh.Hours = append(mh.Hours, o.Hour)
					mh.LocalHours = append(mh.LocalHours, o.Start.In(md.Location).Hour())
					break
				}
			}
		}
		in.Members = append(in.Members, mh)
	}
	return in
}
