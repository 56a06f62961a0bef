package tickpick

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/etnz/tickpick/date"
)

// Listing represents one tradable entry of the symbol directory.
type Listing struct {
	Symbol   string // short uppercase exchange ticker, never empty
	Name     string // security display name
	Exchange string // listing exchange code (N, A, P, Q, ...)
	ETF      bool   // true when the listing is an exchange-traded fund
	Lot      int    // round lot size, 0 when unknown
}

// Label returns the human friendly "SYMBOL - Name" form used in lists.
func (l Listing) Label() string {
	if l.Name == "" {
		return l.Symbol
	}
	return l.Symbol + " - " + l.Name
}

// Directory holds the symbol directory for a single run.
//
// It is built once (from the network or from the snapshot cache), sorted by
// symbol ascending, and read-only thereafter.
type Directory struct {
	listings []Listing
	index    map[string]int
	on       date.Date // creation date of the upstream symbol file
}

// NewDirectory builds a directory from the given listings.
//
// Listings are sorted by symbol ascending and indexed by symbol. Listings
// with an empty symbol are rejected, duplicated symbols are skipped with a
// warning. An empty result is an error: a symbol directory with no symbols
// means the source was garbage.
func NewDirectory(on date.Date, listings []Listing) (*Directory, error) {
	d := &Directory{
		listings: make([]Listing, 0, len(listings)),
		index:    make(map[string]int, len(listings)),
		on:       on,
	}
	for _, l := range listings {
		l.Symbol = strings.ToUpper(strings.TrimSpace(l.Symbol))
		if l.Symbol == "" {
			return nil, fmt.Errorf("invalid listing %q: empty symbol", l.Name)
		}
		if _, ok := d.index[l.Symbol]; ok {
			log.Printf("warning, symbol %q is already defined, skipping duplicate", l.Symbol)
			continue
		}
		d.index[l.Symbol] = -1 // fixed after the sort
		d.listings = append(d.listings, l)
	}
	if len(d.listings) == 0 {
		return nil, fmt.Errorf("no listings in the symbol directory")
	}

	sort.Slice(d.listings, func(i, j int) bool { return d.listings[i].Symbol < d.listings[j].Symbol })
	for i, l := range d.listings {
		d.index[l.Symbol] = i
	}
	return d, nil
}

// On returns the creation date of the upstream symbol file.
func (d *Directory) On() date.Date { return d.on }

// Len returns the number of listings in the directory.
func (d *Directory) Len() int { return len(d.listings) }

// Has reports whether the directory contains the given symbol.
func (d *Directory) Has(symbol string) bool {
	_, ok := d.index[strings.ToUpper(strings.TrimSpace(symbol))]
	return ok
}

// Get returns the listing for a symbol, or a zero Listing and false.
func (d *Directory) Get(symbol string) (Listing, bool) {
	i, ok := d.index[strings.ToUpper(strings.TrimSpace(symbol))]
	if !ok {
		return Listing{}, false
	}
	return d.listings[i], true
}

// Listings returns the listings in symbol ascending order. The returned
// slice is shared and must not be modified.
func (d *Directory) Listings() []Listing { return d.listings }
