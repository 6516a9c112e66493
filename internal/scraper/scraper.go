package scraper

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/estatewatch/estate-digest/internal/config"
	"github.com/estatewatch/estate-digest/internal/listing"
	"github.com/estatewatch/estate-digest/internal/logger"
)

const (
	// UserAgent mirrors a desktop Chrome build; the site serves a reduced
	// page to unknown agents.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	Timeout   = 30 * time.Second

	// fallbackThreshold triggers the raw text-pattern pass when the
	// structured pass finds fewer listings than this.
	fallbackThreshold = 10
	maxFallback       = 10
)

// FetchError reports a transport failure or non-2xx response from the
// listings page.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// errNoContent marks a discovered link whose surroundings carry no text to
// extract from; the listing is skipped and counted, never surfaced.
var errNoContent = errors.New("no text content around link")

// Scraper fetches and parses the estate-sale listings page
type Scraper struct {
	client      *http.Client
	url         string
	baseURL     string
	maxListings int
	*extractor
}

// New creates a Scraper for the configured target site.
func New(cfg config.Scrape) *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		url:         cfg.URL,
		baseURL:     cfg.BaseURL,
		maxListings: cfg.MaxListings,
		extractor:   newExtractor(cfg.Region, cfg.City),
	}
}

// Fetch performs one GET against the listings page and returns the body.
// Any transport error or non-2xx status yields a FetchError; there is no
// retry.
func (s *Scraper) Fetch() (string, error) {
	req, err := http.NewRequest(http.MethodGet, s.url, nil)
	if err != nil {
		return "", &FetchError{URL: s.url, Err: err}
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: s.url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{URL: s.url, Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: s.url, Err: err}
	}

	return string(body), nil
}

// Extract parses the page and produces listings in link-discovery order,
// deduplicated by link and capped at the configured maximum. Individual
// listings that cannot be extracted are skipped and counted, not surfaced.
func (s *Scraper) Extract(html string) ([]listing.Listing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	listings := make([]listing.Listing, 0, s.maxListings)
	seen := make(map[string]bool)
	var linksFound, skipped int

	doc.Find("a[href]").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		href, _ := link.Attr("href")
		if !s.linkPath.MatchString(href) {
			return true
		}
		linksFound++
		if seen[href] {
			return true
		}
		seen[href] = true

		ls, err := s.extractOne(link, href)
		if err != nil {
			skipped++
			logger.Debug("skipping sale link", logger.Fields{"href": href, "reason": err.Error()})
			return true
		}

		listings = append(listings, ls)
		return len(listings) < s.maxListings
	})

	logger.AddCounter("scrape.links_found", int64(linksFound))
	logger.AddCounter("scrape.listings_kept", int64(len(listings)))
	logger.AddCounter("scrape.listings_skipped", int64(skipped))
	logger.Debug("structured pass complete", logger.Fields{
		"links_found": linksFound,
		"kept":        len(listings),
		"skipped":     skipped,
	})

	if len(listings) < fallbackThreshold {
		synthesized := s.fallbackListings(html)
		logger.AddCounter("scrape.fallback_synthesized", int64(len(synthesized)))
		listings = append(listings, synthesized...)
	}

	return listings, nil
}

// Run performs one fetch-and-extract cycle.
func (s *Scraper) Run() ([]listing.Listing, error) {
	html, err := s.Fetch()
	if err != nil {
		return nil, err
	}
	return s.Extract(html)
}

// extractOne pulls one listing out of the markup around a discovered link.
func (s *Scraper) extractOne(link *goquery.Selection, href string) (listing.Listing, error) {
	container := s.resolveContainer(link)

	if strings.TrimSpace(container.Text()) == "" && strings.TrimSpace(link.AttrOr("title", "")) == "" {
		return listing.Listing{}, errNoContent
	}

	return listing.New(
		s.extractTitle(container, link),
		s.extractAddress(container),
		s.extractDates(container),
		s.baseURL+href,
	), nil
}
