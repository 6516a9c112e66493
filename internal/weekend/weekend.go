// Package weekend computes the Thursday-Sunday day-of-month windows used to
// group listings and assigns each listing to a bucket by numeric day match.
//
// Windows carry day-of-month numbers only, no month or year. A listing dated
// "the 14th" in a different month than intended can therefore be misbucketed;
// that imprecision is deliberate and matched by the bucketing tests.
package weekend

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/estatewatch/estate-digest/internal/listing"
)

// Timezone is the named zone all weekend math runs in.
const Timezone = "America/Chicago"

// windowLength is the number of days in a sale weekend (Thursday-Sunday).
const windowLength = 4

// Window is the set of day-of-month numbers covering one Thursday-Sunday span.
type Window struct {
	Start time.Time
	Days  map[int]bool
}

// Contains reports whether any of the given day numbers fall in the window.
func (w Window) Contains(days []int) bool {
	for _, d := range days {
		if w.Days[d] {
			return true
		}
	}
	return false
}

// Buckets is a disjoint partition of listings by weekend window.
type Buckets struct {
	ThisWeekend []listing.Listing
	NextWeekend []listing.Listing
	Other       []listing.Listing
}

// mondayWeekday converts Go's Sunday-based weekday to Monday=0..Sunday=6.
func mondayWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// daysUntilThursday returns the offset from weekday w (Monday=0) to the next
// Thursday, counting today as zero when today is Thursday.
func daysUntilThursday(w int) int {
	const thursday = 3
	if w <= thursday {
		return thursday - w
	}
	return (7 - w) + thursday
}

// Windows computes the this-weekend and next-weekend windows relative to now.
func Windows(now time.Time) (this, next Window) {
	offset := daysUntilThursday(mondayWeekday(now))
	thisStart := now.AddDate(0, 0, offset)
	nextStart := thisStart.AddDate(0, 0, 7)
	return newWindow(thisStart), newWindow(nextStart)
}

func newWindow(start time.Time) Window {
	days := make(map[int]bool, windowLength)
	for i := 0; i < windowLength; i++ {
		days[start.AddDate(0, 0, i).Day()] = true
	}
	return Window{Start: start, Days: days}
}

var dayNumberPattern = regexp.MustCompile(`\b(\d{1,2})\b`)

// DayNumbers extracts all standalone one- or two-digit numbers in [1,31]
// from a listing's dates string.
func DayNumbers(dates string) []int {
	matches := dayNumberPattern.FindAllString(strings.ToLower(dates), -1)
	days := make([]int, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		if n >= 1 && n <= 31 {
			days = append(days, n)
		}
	}
	return days
}

// Bucket partitions listings into this-weekend, next-weekend, and other
// groups. A listing whose dates match both windows is ambiguous and lands in
// Other, as does one matching neither. Input order is preserved per bucket.
func Bucket(now time.Time, listings []listing.Listing) Buckets {
	this, next := Windows(now)

	var b Buckets
	for _, ls := range listings {
		days := DayNumbers(ls.Dates)
		inThis := this.Contains(days)
		inNext := next.Contains(days)

		switch {
		case inThis && !inNext:
			b.ThisWeekend = append(b.ThisWeekend, ls)
		case inNext && !inThis:
			b.NextWeekend = append(b.NextWeekend, ls)
		default:
			b.Other = append(b.Other, ls)
		}
	}
	return b
}
