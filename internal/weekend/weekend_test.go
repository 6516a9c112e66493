package weekend

import (
	"reflect"
	"testing"
	"time"

	"github.com/estatewatch/estate-digest/internal/listing"
)

// mustDate builds a date in UTC; the bucketing math only reads the calendar
// fields, so the zone is irrelevant for tests.
func mustDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 8, 0, 0, 0, time.UTC)
}

func TestDaysUntilThursday(t *testing.T) {
	tests := []struct {
		weekday  int // Monday=0
		expected int
	}{
		{0, 3}, // Monday
		{1, 2}, // Tuesday
		{2, 1}, // Wednesday
		{3, 0}, // Thursday
		{4, 6}, // Friday
		{5, 5}, // Saturday
		{6, 4}, // Sunday
	}

	for _, tt := range tests {
		if got := daysUntilThursday(tt.weekday); got != tt.expected {
			t.Errorf("daysUntilThursday(%d) = %d, expected %d", tt.weekday, got, tt.expected)
		}
	}
}

func TestWindows(t *testing.T) {
	// Monday, August 10 2026. Thursday offset is 3, so this weekend is
	// Aug 13-16 and next weekend Aug 20-23.
	now := mustDate(2026, time.August, 10)

	this, next := Windows(now)

	wantThis := map[int]bool{13: true, 14: true, 15: true, 16: true}
	wantNext := map[int]bool{20: true, 21: true, 22: true, 23: true}

	if !reflect.DeepEqual(this.Days, wantThis) {
		t.Errorf("this weekend days = %v, expected %v", this.Days, wantThis)
	}
	if !reflect.DeepEqual(next.Days, wantNext) {
		t.Errorf("next weekend days = %v, expected %v", next.Days, wantNext)
	}
}

func TestWindowsCrossMonth(t *testing.T) {
	// Friday, August 28 2026: the coming Thursday is September 3, so the
	// day-sets wrap into the next month's day-of-month numbers.
	now := mustDate(2026, time.August, 28)

	this, next := Windows(now)

	wantThis := map[int]bool{3: true, 4: true, 5: true, 6: true}
	wantNext := map[int]bool{10: true, 11: true, 12: true, 13: true}

	if !reflect.DeepEqual(this.Days, wantThis) {
		t.Errorf("this weekend days = %v, expected %v", this.Days, wantThis)
	}
	if !reflect.DeepEqual(next.Days, wantNext) {
		t.Errorf("next weekend days = %v, expected %v", next.Days, wantNext)
	}
}

func TestDayNumbers(t *testing.T) {
	tests := []struct {
		name     string
		dates    string
		expected []int
	}{
		{
			name:     "month name list",
			dates:    "Aug 14, 15, 16",
			expected: []int{14, 15, 16},
		},
		{
			name:     "slash form",
			dates:    "8/15",
			expected: []int{8, 15},
		},
		{
			name:     "out of range ignored",
			dates:    "99 and 0 and 32",
			expected: []int{},
		},
		{
			name:     "ordinal suffix defeats the word boundary",
			dates:    "the 21st",
			expected: []int{},
		},
		{
			name:     "weekday names carry no numbers",
			dates:    "Saturday, Sunday",
			expected: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DayNumbers(tt.dates)
			if len(got) != len(tt.expected) {
				t.Fatalf("DayNumbers(%q) = %v, expected %v", tt.dates, got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("DayNumbers(%q) = %v, expected %v", tt.dates, got, tt.expected)
				}
			}
		})
	}
}

func TestBucket(t *testing.T) {
	// Monday, August 10 2026: this weekend = {13,14,15,16},
	// next weekend = {20,21,22,23}.
	now := mustDate(2026, time.August, 10)

	tests := []struct {
		name   string
		dates  string
		bucket string
	}{
		{
			name:   "exclusively this weekend",
			dates:  "Aug 14, 15, 16",
			bucket: "this",
		},
		{
			name:   "exclusively next weekend",
			dates:  "Aug 21 - 22",
			bucket: "next",
		},
		{
			name:   "matching both is ambiguous",
			dates:  "Aug 14, Aug 21",
			bucket: "other",
		},
		{
			name:   "matching neither",
			dates:  "Aug 5",
			bucket: "other",
		},
		{
			name:   "no numbers at all",
			dates:  "See website for dates",
			bucket: "other",
		},
		{
			name:   "weekday name does not influence bucketing",
			dates:  "Thursday, Aug 20",
			bucket: "next",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls := listing.New("Test Sale", "", tt.dates, "https://example.com/sale")
			b := Bucket(now, []listing.Listing{ls})

			var got string
			switch {
			case len(b.ThisWeekend) == 1:
				got = "this"
			case len(b.NextWeekend) == 1:
				got = "next"
			case len(b.Other) == 1:
				got = "other"
			default:
				t.Fatal("listing not assigned to exactly one bucket")
			}

			if got != tt.bucket {
				t.Errorf("dates %q bucketed as %s, expected %s", tt.dates, got, tt.bucket)
			}
		})
	}
}

func TestBucketDeterministic(t *testing.T) {
	now := mustDate(2026, time.August, 10)
	listings := []listing.Listing{
		listing.New("A", "", "Aug 14", "https://example.com/a"),
		listing.New("B", "", "Aug 21", "https://example.com/b"),
		listing.New("C", "", "no dates here", "https://example.com/c"),
	}

	first := Bucket(now, listings)
	second := Bucket(now, listings)

	if !reflect.DeepEqual(first, second) {
		t.Error("Bucket should be deterministic for a fixed instant and input")
	}
}

func TestBucketPreservesOrder(t *testing.T) {
	now := mustDate(2026, time.August, 10)
	listings := []listing.Listing{
		listing.New("First", "", "Aug 14", "https://example.com/1"),
		listing.New("Second", "", "Aug 15", "https://example.com/2"),
		listing.New("Third", "", "Aug 16", "https://example.com/3"),
	}

	b := Bucket(now, listings)

	if len(b.ThisWeekend) != 3 {
		t.Fatalf("expected 3 listings in this weekend, got %d", len(b.ThisWeekend))
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if b.ThisWeekend[i].Title != want {
			t.Errorf("position %d: expected %q, got %q", i, want, b.ThisWeekend[i].Title)
		}
	}
}
