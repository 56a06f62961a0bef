// Package nasdaqtrader fetches the public NASDAQ Trader symbol directory.
//
// The directory (nasdaqtraded.txt) covers the whole US tape: NASDAQ, NYSE,
// AMEX. It is a pipe-delimited flat file, one listing per row, with a header
// row naming the columns and a trailing "File Creation Time" row.
// No API key is required.
package nasdaqtrader

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/tickpick"
	"github.com/etnz/tickpick/date"
)

// SymbolDirectoryURL is the fixed location of the symbol directory file.
const SymbolDirectoryURL = "https://www.nasdaqtrader.com/dynamic/SymDir/nasdaqtraded.txt"

// nasdaqtrader.com rejects the default Go user agent.
const userAgent = "Mozilla/5.0 (compatible; tkp/1.0)"

const fetchTimeout = 30 * time.Second

// Fetch downloads and parses the symbol directory.
//
// It is a single blocking GET with a fixed timeout, no retry.
func Fetch() (*tickpick.Directory, error) {
	raw, err := get(SymbolDirectoryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch NASDAQ symbol file: %w", err)
	}
	return Parse(raw)
}

func get(addr string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	client := &http.Client{Timeout: fetchTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Fallback column indexes, used when the header row cannot be interpreted.
const (
	fallbackSymbol = 1
	fallbackName   = 2
	fallbackTest   = 7
)

// Parse parses the pipe-delimited symbol directory file.
//
// Columns are located by name in the header row ("Symbol", "Security Name",
// "Test Issue", ...), falling back to the well-known indexes when the header
// is not recognizable. Test issues (non-tradable placeholder listings) are
// skipped, and so are rows with an empty symbol.
func Parse(raw string) (*tickpick.Directory, error) {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil, fmt.Errorf("NASDAQ symbol file is empty")
	}

	// Header: Nasdaq Traded|Symbol|Security Name|Listing Exchange|Market Category|ETF|Round Lot Size|Test Issue|...
	cols := newColumns(strings.Split(lines[0], "|"))

	var listings []tickpick.Listing
	on := date.Today()
	for _, line := range lines[1:] {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, "File Creation Time") {
			on = creationDate(line)
			continue
		}
		fields := strings.Split(line, "|")
		if l, ok := cols.listing(fields); ok {
			listings = append(listings, l)
		}
	}
	if len(listings) == 0 {
		return nil, fmt.Errorf("no tickers parsed from NASDAQ symbol file")
	}

	return tickpick.NewDirectory(on, listings)
}

// creationDate parses the trailing "File Creation Time: 1216202517:30" row.
// The timestamp is MMDDYYYYHH:MM; only the day matters here.
func creationDate(line string) date.Date {
	_, after, ok := strings.Cut(line, ":")
	if !ok {
		return date.Today()
	}
	digits := strings.TrimSpace(after)
	if len(digits) < 8 {
		return date.Today()
	}
	t, err := time.Parse("01022006", digits[:8])
	if err != nil {
		return date.Today()
	}
	return date.New(t.Date())
}

// columns maps the directory columns to their index in a row, -1 for absent.
type columns struct {
	symbol, name, test     int
	exchange, etf, lotSize int
}

func newColumns(header []string) columns {
	c := columns{
		symbol:   index(header, "Symbol"),
		name:     index(header, "Security Name"),
		test:     index(header, "Test Issue"),
		exchange: index(header, "Listing Exchange"),
		etf:      index(header, "ETF"),
		lotSize:  index(header, "Round Lot Size"),
	}
	if c.symbol < 0 || c.name < 0 {
		// Unrecognizable header. The column layout has been stable for years.
		c.symbol, c.name, c.test = fallbackSymbol, fallbackName, fallbackTest
	}
	return c
}

func index(header []string, name string) int {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}

// listing extracts one listing from a row, reporting false for rows to skip.
func (c columns) listing(fields []string) (tickpick.Listing, bool) {
	if len(fields) <= c.symbol || len(fields) <= c.name {
		return tickpick.Listing{}, false
	}
	if c.test >= 0 && c.test < len(fields) && strings.ToUpper(strings.TrimSpace(fields[c.test])) == "Y" {
		return tickpick.Listing{}, false
	}
	symbol := strings.ToUpper(strings.TrimSpace(fields[c.symbol]))
	if symbol == "" {
		return tickpick.Listing{}, false
	}
	lot, _ := strconv.Atoi(c.get(fields, c.lotSize))
	return tickpick.Listing{
		Symbol:   symbol,
		Name:     strings.TrimSpace(fields[c.name]),
		Exchange: c.get(fields, c.exchange),
		ETF:      c.get(fields, c.etf) == "Y",
		Lot:      lot,
	}, true
}

func (c columns) get(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}
