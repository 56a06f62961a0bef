package tickpick

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/tickpick/date"
)

// This file contains code to persist the symbol directory as a single file,
// in a way that is still human-readable and diff-friendly.
//
// The format is JSONL: a header line carrying the upstream file creation
// date, then one listing per line, in symbol ascending order.

// jheader is the object read from the first line using the json parser.
type jheader struct {
	On date.Date `json:"on"`
}

// jlisting is the object read from every other line.
type jlisting struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name,omitempty"`
	Exchange string `json:"exchange,omitempty"`
	ETF      bool   `json:"etf,omitempty"`
	Lot      int    `json:"lot,omitempty"`
}

// EncodeDirectory writes the directory to w in JSONL format.
func EncodeDirectory(w io.Writer, d *Directory) error {
	enc := json.NewEncoder(w)
	if err := enc.Encode(jheader{On: d.On()}); err != nil {
		return fmt.Errorf("cannot encode directory header: %w", err)
	}
	for _, l := range d.Listings() {
		jl := jlisting{
			Symbol:   l.Symbol,
			Name:     l.Name,
			Exchange: l.Exchange,
			ETF:      l.ETF,
			Lot:      l.Lot,
		}
		if err := enc.Encode(jl); err != nil {
			return fmt.Errorf("cannot encode listing %q: %w", l.Symbol, err)
		}
	}
	return nil
}

// DecodeDirectory parses a directory from r in JSONL format.
// filename is for error messages only.
func DecodeDirectory(filename string, r io.Reader) (*Directory, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	// First non-empty line is the header.
	var header jheader
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := json.Unmarshal([]byte(line), &header); err != nil {
			return nil, fmt.Errorf("format error in %q on line %d: %w", filename, n, err)
		}
		break
	}

	var listings []Listing
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var jl jlisting
		if err := json.Unmarshal([]byte(line), &jl); err != nil {
			return nil, fmt.Errorf("format error in %q on line %d: %w", filename, n, err)
		}
		listings = append(listings, Listing{
			Symbol:   jl.Symbol,
			Name:     jl.Name,
			Exchange: jl.Exchange,
			ETF:      jl.ETF,
			Lot:      jl.Lot,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", filename, err)
	}
	return NewDirectory(header.On, listings)
}
