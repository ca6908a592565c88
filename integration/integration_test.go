package integration

import (
	"context"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/javiermolinar/tzbuddy/internal/db"
	"github.com/javiermolinar/tzbuddy/internal/dial"
	"github.com/javiermolinar/tzbuddy/internal/summary"
	"github.com/javiermolinar/tzbuddy/internal/team"
	"github.com/javiermolinar/tzbuddy/internal/tzinfo"
)

// openRepo creates a fresh repository for each test with automatic cleanup.
func openRepo(t *testing.T) *db.SQLite {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	repo, err := db.New(dbPath)
	if err != nil {
		t.Fatalf("failed to open repo: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("loading %s: %v", name, err)
	}
	return loc
}

// addMember inserts a member with one window per date, all in the member's zone.
func addMember(t *testing.T, repo *db.SQLite, name, timezone, start, end string, dates ...string) *team.Member {
	t.Helper()
	ctx := context.Background()
	resolver := tzinfo.NewResolver(time.UTC)

	m, err := team.NewMember(name, timezone, resolver)
	if err != nil {
		t.Fatalf("NewMember(%s) failed: %v", name, err)
	}
	if err := repo.CreateMember(ctx, m); err != nil {
		t.Fatalf("CreateMember(%s) failed: %v", name, err)
	}

	loc, _ := resolver.Location(timezone)
	for _, d := range dates {
		a, err := team.NewAvailability(m.ID, d, start, end, loc)
		if err != nil {
			t.Fatalf("NewAvailability(%s, %s) failed: %v", name, d, err)
		}
		if err := repo.AddAvailability(ctx, a); err != nil {
			t.Fatalf("AddAvailability(%s) failed: %v", name, err)
		}
	}
	return m
}

func buildDay(t *testing.T, repo *db.SQLite, reference string, browsing time.Time) *summary.TeamDay {
	t.Helper()
	day, err := summary.BuildTeamDay(context.Background(), repo, summary.Options{
		Date:              browsing,
		ReferenceTimezone: reference,
		Resolver:          tzinfo.NewResolver(time.UTC),
	})
	if err != nil {
		t.Fatalf("BuildTeamDay failed: %v", err)
	}
	return day
}

func memberDay(t *testing.T, day *summary.TeamDay, name string) *summary.MemberDay {
	t.Helper()
	for _, md := range day.Members {
		if md.Member.Name == name {
			return md
		}
	}
	t.Fatalf("member %s not in team day", name)
	return nil
}

func countAvailable(flags []bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

func TestTeamDayAcrossZones(t *testing.T) {
	repo := openRepo(t)
	addMember(t, repo, "Ada", "Europe/London", "09:00", "17:00", "2024-01-15")
	addMember(t, repo, "Grace", "America/New_York", "09:00", "17:00", "2024-01-15")

	madrid := mustLoad(t, "Europe/Madrid")
	day := buildDay(t, repo, "Europe/Madrid", time.Date(2024, 1, 15, 12, 0, 0, 0, madrid))

	if got, want := day.SharedHours(), []int{15, 16, 17}; !slices.Equal(got, want) {
		t.Errorf("SharedHours = %v, want %v", got, want)
	}

	grace := memberDay(t, day, "Grace")
	if grace.ZoneLabel() != "EST -6" {
		t.Errorf("Grace zone label = %q, want %q", grace.ZoneLabel(), "EST -6")
	}
	if grace.Window.Len() != 25 {
		t.Errorf("Grace strip has %d cells, want 25", grace.Window.Len())
	}
	if n := countAvailable(grace.Available); n != 8 {
		t.Errorf("Grace has %d available cells, want 8", n)
	}

	ada := memberDay(t, day, "Ada")
	if ada.ZoneLabel() != "GMT -1" {
		t.Errorf("Ada zone label = %q, want %q", ada.ZoneLabel(), "GMT -1")
	}
}

func TestTeamDayOnUSDaylightSavingSwitch(t *testing.T) {
	repo := openRepo(t)
	addMember(t, repo, "Ada", "Europe/London", "09:00", "17:00", "2024-03-10")
	addMember(t, repo, "Grace", "America/New_York", "09:00", "17:00", "2024-03-10")

	madrid := mustLoad(t, "Europe/Madrid")
	day := buildDay(t, repo, "Europe/Madrid", time.Date(2024, 3, 10, 12, 0, 0, 0, madrid))

	// New York is on EDT, London and Madrid are not yet on summer time.
	if got, want := day.SharedHours(), []int{14, 15, 16, 17}; !slices.Equal(got, want) {
		t.Errorf("SharedHours = %v, want %v", got, want)
	}
	if got := memberDay(t, day, "Grace").ZoneLabel(); got != "EDT -5" {
		t.Errorf("Grace zone label = %q, want %q", got, "EDT -5")
	}
}

func TestSkippedHourIsAbsentFromOverlap(t *testing.T) {
	repo := openRepo(t)
	addMember(t, repo, "Grace", "America/New_York", "00:00", "24:00", "2024-03-10")

	ny := mustLoad(t, "America/New_York")
	day := buildDay(t, repo, "America/New_York", time.Date(2024, 3, 10, 12, 0, 0, 0, ny))

	if len(day.Overlap) != 23 {
		t.Fatalf("expected 23 overlap hours on a spring-forward day, got %d", len(day.Overlap))
	}
	for _, o := range day.Overlap {
		if o.Hour == 2 {
			t.Error("hour 2 does not exist on the switch day")
		}
	}
	if got := day.SharedHours(); len(got) != 23 {
		t.Errorf("expected every existing hour shared, got %v", got)
	}
}

func TestFractionalZoneAndUnknownMember(t *testing.T) {
	repo := openRepo(t)
	addMember(t, repo, "Priya", "Asia/Kolkata", "09:00", "18:00", "2024-01-15")

	// Stored zones can go stale; they are reported, never rendered.
	if err := repo.CreateMember(context.Background(), &team.Member{Name: "Ken", Timezone: "Moon/Base", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("CreateMember failed: %v", err)
	}

	day := buildDay(t, repo, "UTC", time.Date(2024, 1, 15, 6, 0, 0, 0, time.UTC))

	if len(day.Skipped) != 1 || day.Skipped[0].Name != "Ken" {
		t.Errorf("Skipped = %+v, want Ken", day.Skipped)
	}
	if len(day.Members) != 1 {
		t.Fatalf("expected 1 rendered member, got %d", len(day.Members))
	}

	priya := day.Members[0]
	if !priya.Window.Fractional() {
		t.Error("expected Asia/Kolkata to be marked fractional")
	}
	if priya.ZoneLabel() != "IST +5:30*" {
		t.Errorf("zone label = %q, want %q", priya.ZoneLabel(), "IST +5:30*")
	}

	// 09:00-18:00 IST is 03:30-12:30 UTC, so reference hours 04..12 start inside it.
	if got, want := day.SharedHours(), []int{4, 5, 6, 7, 8, 9, 10, 11, 12}; !slices.Equal(got, want) {
		t.Errorf("SharedHours = %v, want %v", got, want)
	}
}

func TestStripBucketsFollowTargetCalendar(t *testing.T) {
	tokyo := mustLoad(t, "Asia/Tokyo")
	browsing := time.Date(2024, 1, 15, 20, 0, 0, 0, time.UTC)

	w := dial.Build(browsing, tokyo, time.UTC)

	if len(w.Buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(w.Buckets))
	}
	if w.Buckets[0].Day != dial.CurrentDay || w.Buckets[1].Day != dial.NextDay {
		t.Errorf("bucket days = %v, %v", w.Buckets[0].Day, w.Buckets[1].Day)
	}
	// 20:00 UTC is already Jan 16 in Tokyo.
	if got := w.Buckets[0].Date.Format("2006-01-02"); got != "2024-01-16" {
		t.Errorf("current bucket date = %s, want 2024-01-16", got)
	}
}

func TestRemoveMemberDropsThemFromTeamDay(t *testing.T) {
	repo := openRepo(t)
	ada := addMember(t, repo, "Ada", "UTC", "09:00", "17:00", "2024-01-15")
	addMember(t, repo, "Grace", "UTC", "12:00", "14:00", "2024-01-15")

	browsing := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	if got := buildDay(t, repo, "UTC", browsing).SharedHours(); !slices.Equal(got, []int{12, 13}) {
		t.Errorf("SharedHours before removal = %v", got)
	}

	if err := repo.DeleteMember(context.Background(), ada.ID); err != nil {
		t.Fatalf("DeleteMember failed: %v", err)
	}
	day := buildDay(t, repo, "UTC", browsing)
	if len(day.Members) != 1 {
		t.Fatalf("expected 1 member after removal, got %d", len(day.Members))
	}
	if got := day.SharedHours(); !slices.Equal(got, []int{12, 13}) {
		t.Errorf("SharedHours after removal = %v", got)
	}
}
