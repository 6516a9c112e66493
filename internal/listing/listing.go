// Package listing provides the scraped estate-sale record and the text
// normalization shared by the extraction heuristics.
//
// Every field is free text produced by best-effort pattern matching, so each
// carries a literal fallback used when no heuristic matches.
package listing

import (
	"regexp"
	"strings"
)

// Fallback values used when extraction finds nothing usable.
const (
	DefaultTitle   = "Estate Sale"
	DefaultAddress = "Austin, TX (see website for full address)"
	DefaultDates   = "See website for dates"
)

// Listing represents one scraped estate sale
type Listing struct {
	Title   string `json:"title"`
	Address string `json:"address"`
	Dates   string `json:"dates"`
	Link    string `json:"link"`
}

// New creates a Listing, substituting the literal defaults for any empty
// field. Link is the caller's responsibility: it is the dedup key and must
// be an absolute URL.
func New(title, address, dates, link string) Listing {
	if title == "" {
		title = DefaultTitle
	}
	if address == "" {
		address = DefaultAddress
	}
	if dates == "" {
		dates = DefaultDates
	}
	return Listing{
		Title:   title,
		Address: address,
		Dates:   dates,
		Link:    link,
	}
}

var (
	whitespaceRun = regexp.MustCompile(`\s+`)

	entityReplacer = strings.NewReplacer(
		"&amp;", "&",
		"&quot;", `"`,
		"&lt;", "<",
		"&gt;", ">",
	)
)

// Normalize collapses whitespace runs to a single space, decodes the small
// set of HTML entities that survive goquery's text extraction, and trims.
func Normalize(s string) string {
	s = whitespaceRun.ReplaceAllString(s, " ")
	s = entityReplacer.Replace(s)
	return strings.TrimSpace(s)
}
