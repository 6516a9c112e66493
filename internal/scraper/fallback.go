package scraper

import (
	"fmt"
	"strings"

	"github.com/estatewatch/estate-digest/internal/listing"
)

// fallbackListings scans the raw page text for sale paths the structured
// pass may have missed and synthesizes minimal records for them. Synthesized
// listings carry the default address and dates and are appended to the
// structured results without further dedup against them.
func (s *Scraper) fallbackListings(html string) []listing.Listing {
	matches := s.linkPath.FindAllString(html, -1)

	seen := make(map[string]bool, len(matches))
	listings := make([]listing.Listing, 0, maxFallback)

	for _, path := range matches {
		if seen[path] {
			continue
		}
		seen[path] = true

		listings = append(listings, listing.New(
			fmt.Sprintf("Estate Sale #%s", saleID(path)),
			"",
			"",
			s.baseURL+path,
		))
		if len(listings) >= maxFallback {
			break
		}
	}

	return listings
}

// saleID returns the first numeric segment of a sale path,
// e.g. "/TX/Austin/78701/1234567" -> "78701".
func saleID(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for _, part := range parts {
		if part != "" && part[0] >= '0' && part[0] <= '9' {
			return part
		}
	}
	return parts[len(parts)-1]
}
