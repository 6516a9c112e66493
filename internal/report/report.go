// Package report renders the weekly digest as fixed-structure plain text.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/estatewatch/estate-digest/internal/listing"
	"github.com/estatewatch/estate-digest/internal/weekend"
)

// otherSectionCap limits the OTHER UPCOMING SALES section.
const otherSectionCap = 15

const (
	dateFormat      = "January 2, 2006"
	timestampFormat = "January 2, 2006 at 3:04 PM"
)

// Render produces the full email body for the given buckets and run time.
func Render(b weekend.Buckets, now time.Time) string {
	var msg strings.Builder

	msg.WriteString("AUSTIN ESTATE SALES - WEEKLY UPDATE\n")
	msg.WriteString("===================================\n")
	msg.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(dateFormat)))

	msg.WriteString("THIS WEEKEND (Thursday - Sunday)\n")
	msg.WriteString("--------------------------------\n\n")
	writeSection(&msg, b.ThisWeekend, "No estate sales found for this weekend.\n\n", 0)

	msg.WriteString("NEXT WEEKEND (Thursday - Sunday)\n")
	msg.WriteString("---------------------------------\n\n")
	writeSection(&msg, b.NextWeekend, "No estate sales found for next weekend.\n\n", 0)

	if len(b.Other) > 0 {
		msg.WriteString("OTHER UPCOMING SALES\n")
		msg.WriteString("--------------------\n\n")
		writeSection(&msg, b.Other, "", otherSectionCap)
	}

	msg.WriteString("\nHappy treasure hunting!\n")
	msg.WriteString(fmt.Sprintf("Last updated: %s\n", now.Format(timestampFormat)))
	msg.WriteString("- Austin Estate Sales Tracker")

	return msg.String()
}

// writeSection renders one bucket as numbered four-line entries, or the
// given empty line when the bucket is empty. limit 0 means unlimited.
func writeSection(msg *strings.Builder, listings []listing.Listing, emptyLine string, limit int) {
	if len(listings) == 0 {
		msg.WriteString(emptyLine)
		return
	}
	if limit > 0 && len(listings) > limit {
		listings = listings[:limit]
	}
	for i, ls := range listings {
		msg.WriteString(fmt.Sprintf("%d. %s\n", i+1, ls.Title))
		msg.WriteString(fmt.Sprintf("   Address: %s\n", ls.Address))
		msg.WriteString(fmt.Sprintf("   Dates: %s\n", ls.Dates))
		msg.WriteString(fmt.Sprintf("   Link: %s\n\n", ls.Link))
	}
}
