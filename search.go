package tickpick

import (
	"sort"
	"strings"
)

// MaxResults is the maximum number of listings a search returns.
const MaxResults = 100

// Ranking priorities, from best to worst. Listings ranked RankNone are not
// part of a query's results.
const (
	RankExact  = 0 // query is exactly the symbol
	RankPrefix = 1 // symbol starts with the query
	RankSymbol = 2 // symbol contains the query
	RankName   = 3 // security name contains the query
	RankNone   = 4 // no match
)

// Rank returns the priority of a listing for a query, case-insensitively.
func Rank(l Listing, query string) int {
	query = strings.ToLower(strings.TrimSpace(query))
	symbol := strings.ToLower(l.Symbol)
	name := strings.ToLower(l.Name)
	switch {
	case symbol == query:
		return RankExact
	case strings.HasPrefix(symbol, query):
		return RankPrefix
	case strings.Contains(symbol, query):
		return RankSymbol
	case strings.Contains(name, query):
		return RankName
	default:
		return RankNone
	}
}

// Search returns the listings matching the query, best ranked first, ties
// broken by symbol ascending, truncated to MaxResults.
//
// An empty query returns the first MaxResults listings in symbol order.
func (d *Directory) Search(query string) []Listing {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return truncate(d.listings)
	}

	type match struct {
		rank    int
		listing Listing
	}
	matches := make([]match, 0, MaxResults)
	for _, l := range d.listings {
		if rank := Rank(l, query); rank < RankNone {
			matches = append(matches, match{rank, l})
		}
	}
	// listings are already in symbol order, so a stable sort on the rank
	// alone preserves the symbol tie-break.
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].rank < matches[j].rank })

	results := make([]Listing, len(matches))
	for i, m := range matches {
		results[i] = m.listing
	}
	return truncate(results)
}

func truncate(listings []Listing) []Listing {
	if len(listings) > MaxResults {
		return listings[:MaxResults]
	}
	return listings
}
