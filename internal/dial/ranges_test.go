package dial

import (
	"testing"
	"time"
)

func workday(day int) DateRange {
	return DateRange{
		Start: time.Date(2024, 1, day, 9, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, day, 17, 0, 0, 0, time.UTC),
	}
}

func TestHourInRanges(t *testing.T) {
	ranges := []DateRange{workday(1)}

	tests := []struct {
		name string
		hour int
		want bool
	}{
		{name: "start is inclusive", hour: 9, want: true},
		{name: "inside", hour: 12, want: true},
		{name: "last hour", hour: 16, want: true},
		{name: "end is exclusive", hour: 17, want: false},
		{name: "before start", hour: 8, want: false},
		{name: "midnight", hour: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HourInRanges(tt.hour, ranges); got != tt.want {
				t.Errorf("HourInRanges(%d) = %v, want %v", tt.hour, got, tt.want)
			}
		})
	}
}

func TestHourInRanges_NoRanges(t *testing.T) {
	if HourInRanges(10, nil) {
		t.Error("nil ranges should never match")
	}
	if HourInRanges(10, []DateRange{}) {
		t.Error("empty ranges should never match")
	}
}

func TestHourInRanges_AnyRangeMatches(t *testing.T) {
	ranges := []DateRange{
		{
			Start: time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		},
		{
			Start: time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC),
			End:   time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC),
		},
	}

	if !HourInRanges(14, ranges) {
		t.Error("expected hour 14 to match the second range")
	}
	if HourInRanges(10, ranges) {
		t.Error("hour 10 is in neither range")
	}
}

func TestHourInRanges_SkipsMissingBounds(t *testing.T) {
	ranges := []DateRange{
		{},
		{Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{End: time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC)},
		workday(1),
	}

	if !HourInRanges(10, ranges) {
		t.Error("valid range after missing ones should still match")
	}
	if HourInRanges(3, ranges[:3]) {
		t.Error("missing ranges should never match")
	}
}

func TestHourInRanges_AnchoredToRangeStartDay(t *testing.T) {
	// An overnight range starting at 22:00 only matches hours 22 and 23:
	// the candidate is placed on the start day, so 01:00 falls before it.
	overnight := []DateRange{{
		Start: time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 2, 6, 0, 0, 0, time.UTC),
	}}

	if !HourInRanges(23, overnight) {
		t.Error("23 should match")
	}
	if HourInRanges(1, overnight) {
		t.Error("01 is anchored to the start day and should not match")
	}
}

func TestHourInRanges_UsesStartLocation(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("loading zone: %v", err)
	}
	ranges := []DateRange{{
		Start: time.Date(2024, 1, 1, 9, 0, 0, 0, ny),
		End:   time.Date(2024, 1, 1, 12, 0, 0, 0, ny),
	}}

	if !HourInRanges(9, ranges) {
		t.Error("hour 9 in the range's own zone should match")
	}
	if HourInRanges(14, ranges) {
		t.Error("14:00 New York time is outside the range")
	}
}

func TestHourInRanges_DoesNotMutate(t *testing.T) {
	ranges := []DateRange{workday(1), workday(2)}
	before := append([]DateRange(nil), ranges...)

	HourInRanges(10, ranges)

	for i := range ranges {
		if !ranges[i].Start.Equal(before[i].Start) || !ranges[i].End.Equal(before[i].End) {
			t.Fatalf("range %d was modified", i)
		}
	}
}

func TestHourCell_Available(t *testing.T) {
	cell := HourCell{Hour: 10, Date: time.Date(2030, 5, 5, 0, 0, 0, 0, time.UTC)}
	if !cell.Available([]DateRange{workday(1)}) {
		t.Error("cell date is ignored; hour 10 should match the Jan 1 range")
	}
}
