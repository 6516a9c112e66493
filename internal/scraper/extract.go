package scraper

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/estatewatch/estate-digest/internal/listing"
)

const (
	// maxAncestorHops bounds the climb from a sale link to its card markup.
	maxAncestorHops = 4
	// minContainerText is the minimum ancestor text length that counts as a
	// listing card rather than a bare wrapper.
	minContainerText = 30

	minHeadingTitle = 6
	maxHeadingTitle = 149
	minAttrTitle    = 6
	minLineTitle    = 11
	maxLineTitle    = 99

	minAddressLen = 9
	maxDateParts  = 5
)

// titleStrategy attempts to pull a sale title from the container markup.
// Strategies are pure: they report a candidate and whether they matched.
type titleStrategy func(container, link *goquery.Selection) (string, bool)

// extractor holds the site-token-dependent patterns for one target city.
type extractor struct {
	region string
	city   string

	linkPath        *regexp.Regexp
	addressPatterns []*regexp.Regexp
	datePatterns    []*regexp.Regexp
	bareNumber      *regexp.Regexp

	titleStrategies []titleStrategy
}

// newExtractor compiles the heuristic patterns for a region/city pair, e.g.
// "TX"/"Austin". Sale links look like /TX/Austin/<sale-id>/<page-id>.
func newExtractor(region, city string) *extractor {
	r, c := regexp.QuoteMeta(region), regexp.QuoteMeta(city)

	e := &extractor{
		region:   region,
		city:     city,
		linkPath: regexp.MustCompile(fmt.Sprintf(`/%s/%s/\d+/\d+`, r, c)),

		// Ordered most-specific first; the first match longer than 8
		// characters wins.
		addressPatterns: []*regexp.Regexp{
			regexp.MustCompile(fmt.Sprintf(`(?i)\d+[^,\n]*\b(?:St|Street|Ave|Avenue|Rd|Road|Dr|Drive|Ln|Lane|Blvd|Boulevard|Ct|Court|Cir|Circle|Cv|Cove|Trl|Trail|Pkwy|Parkway|Way|Loop|Pass|Bend)\b[^,\n]*,\s*[A-Za-z\s]+,\s*%s\s*\d*`, r)),
			regexp.MustCompile(fmt.Sprintf(`(?i)%s,\s*%s\s*\d{5}`, c, r)),
			regexp.MustCompile(fmt.Sprintf(`(?i)%s\s*\d{5}`, r)),
			regexp.MustCompile(fmt.Sprintf(`(?i)%s,\s*%s\s*\d*`, c, r)),
		},

		datePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{1,2}(?:\s*-\s*\d{1,2})?(?:\s*,\s*\d{4})?`),
			regexp.MustCompile(`\b\d{1,2}/\d{1,2}(?:/\d{2,4})?\b`),
			regexp.MustCompile(`(?i)\b(?:Monday|Tuesday|Wednesday|Thursday|Friday|Saturday|Sunday)\b`),
			regexp.MustCompile(`(?i)\b\d{1,2}(?:st|nd|rd|th)\b`),
		},

		bareNumber: regexp.MustCompile(`^\d+$`),
	}

	e.titleStrategies = []titleStrategy{
		e.headingTitle,
		e.attrTitle,
		e.boldTitle,
		e.textLineTitle,
	}

	return e
}

// resolveContainer ascends from the sale link until an ancestor looks like a
// listing card: enough text and a mention of the city or region token.
// Falls back to the link itself after a bounded number of hops.
func (e *extractor) resolveContainer(link *goquery.Selection) *goquery.Selection {
	node := link
	for i := 0; i < maxAncestorHops; i++ {
		parent := node.Parent()
		if parent.Length() == 0 {
			break
		}
		text := strings.TrimSpace(parent.Text())
		if len(text) > minContainerText &&
			(strings.Contains(text, e.city) || strings.Contains(text, e.region)) {
			return parent
		}
		node = parent
	}
	return link
}

// extractTitle applies the title strategies in order and normalizes the
// first hit. Length bounds are checked on the raw text, before
// normalization.
func (e *extractor) extractTitle(container, link *goquery.Selection) string {
	for _, strategy := range e.titleStrategies {
		if title, ok := strategy(container, link); ok {
			return listing.Normalize(title)
		}
	}
	return listing.DefaultTitle
}

func (e *extractor) headingTitle(container, _ *goquery.Selection) (string, bool) {
	var title string
	container.Find("h1, h2, h3, h4, h5, h6").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		text := strings.TrimSpace(h.Text())
		if len(text) >= minHeadingTitle && len(text) <= maxHeadingTitle {
			title = text
			return false
		}
		return true
	})
	return title, title != ""
}

func (e *extractor) attrTitle(_, link *goquery.Selection) (string, bool) {
	title := strings.TrimSpace(link.AttrOr("title", ""))
	return title, len(title) >= minAttrTitle
}

func (e *extractor) boldTitle(container, _ *goquery.Selection) (string, bool) {
	var title string
	container.Find("b, strong").EachWithBreak(func(_ int, b *goquery.Selection) bool {
		text := strings.TrimSpace(b.Text())
		if len(text) >= minLineTitle && len(text) <= maxLineTitle {
			title = text
			return false
		}
		return true
	})
	return title, title != ""
}

// textLineTitle scans the container's text line by line for something that
// reads like a sale name: sized right, not a bare number, not a URL, and not
// leading with the city or region token (those lines are addresses).
func (e *extractor) textLineTitle(container, _ *goquery.Selection) (string, bool) {
	for _, line := range strings.Split(container.Text(), "\n") {
		line = strings.TrimSpace(line)
		if len(line) < minLineTitle || len(line) > maxLineTitle {
			continue
		}
		if e.bareNumber.MatchString(line) || strings.HasPrefix(line, "http") {
			continue
		}
		if strings.HasPrefix(line, e.city) || strings.HasPrefix(line, e.region) {
			continue
		}
		return line, true
	}
	return "", false
}

// extractAddress runs the address patterns in order against the container
// text and returns the first sufficiently long match, normalized.
func (e *extractor) extractAddress(container *goquery.Selection) string {
	text := container.Text()
	for _, pattern := range e.addressPatterns {
		match := strings.TrimSpace(pattern.FindString(text))
		if len(match) >= minAddressLen {
			return listing.Normalize(match)
		}
	}
	return listing.DefaultAddress
}

// extractDates collects all distinct date-looking fragments from the
// container text in first-seen order and joins the first few.
func (e *extractor) extractDates(container *goquery.Selection) string {
	text := container.Text()

	seen := make(map[string]bool)
	var found []string
	for _, pattern := range e.datePatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			match = strings.TrimSpace(match)
			if match == "" || seen[match] {
				continue
			}
			seen[match] = true
			found = append(found, match)
		}
	}

	if len(found) == 0 {
		return listing.DefaultDates
	}
	if len(found) > maxDateParts {
		found = found[:maxDateParts]
	}
	return strings.Join(found, ", ")
}
