// Package scraper provides HTTP fetching and heuristic HTML extraction of
// estate-sale listings from EstateSales.NET.
//
// The scraper fetches the public Austin listings page and pulls a title,
// address, and dates string for each sale link it discovers. The page markup
// is loosely structured, so every field is extracted by an ordered chain of
// heuristics with a literal fallback; results are best-effort and may be
// wrong. Listings are deduplicated by link and capped at a fixed count.
package scraper
