package nasdaqtrader

import (
	"strings"
	"testing"

	"github.com/etnz/tickpick/date"
)

const sample = `Nasdaq Traded|Symbol|Security Name|Listing Exchange|Market Category|ETF|Round Lot Size|Test Issue|Financial Status|CQS Symbol|NASDAQ Symbol|NextShares
Y|AAPL|Apple Inc. Common Stock|Q|Q|N|100|N|N||AAPL|N
Y|msft|Microsoft Corporation Common Stock|Q|Q|N|100|N|N||MSFT|N
Y|ZZZT|NASDAQ test security|Q|Q|N|100|Y|N||ZZZT|N
Y|SPY|SPDR S&P 500 ETF Trust|P| |Y|100|N||SPY|SPY|N
Y||no symbol here|Q|Q|N|100|N|N|||N
File Creation Time: 1216202517:30|||||||||||
`

func TestParse(t *testing.T) {
	d, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	// the test issue and the empty-symbol row are gone, symbols are upper.
	want := []string{"AAPL", "MSFT", "SPY"}
	if d.Len() != len(want) {
		t.Fatalf("Len() = %d; want %d", d.Len(), len(want))
	}
	for i, l := range d.Listings() {
		if l.Symbol != want[i] {
			t.Errorf("Listings()[%d].Symbol = %q; want %q", i, l.Symbol, want[i])
		}
	}

	spy, _ := d.Get("SPY")
	if !spy.ETF || spy.Exchange != "P" || spy.Lot != 100 {
		t.Errorf("Get(SPY) = %+v; want ETF on exchange P with lot 100", spy)
	}

	if d.On() != date.New(2025, 12, 16) {
		t.Errorf("On() = %v; want 2025-12-16 from the File Creation Time row", d.On())
	}
}

func TestParseFallbackColumns(t *testing.T) {
	// Mangled header: the parser falls back to the well-known indexes.
	mangled := strings.Replace(sample, "Symbol|Security Name", "S?|SN?", 1)
	d, err := Parse(mangled)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !d.Has("AAPL") || !d.Has("MSFT") {
		t.Errorf("fallback parse lost listings: %d symbols", d.Len())
	}
	if d.Has("ZZZT") {
		t.Errorf("fallback parse kept the test issue row")
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Errorf("Parse of an empty file expected an error")
	}
	if _, err := Parse("   \n  "); err == nil {
		t.Errorf("Parse of a blank file expected an error")
	}
}

func TestParseNoListings(t *testing.T) {
	onlyHeader := strings.SplitN(sample, "\n", 2)[0]
	if _, err := Parse(onlyHeader); err == nil {
		t.Errorf("Parse of a header-only file expected an error")
	}
}

func TestCreationDate(t *testing.T) {
	on := creationDate("File Creation Time: 1216202517:30")
	if on != date.New(2025, 12, 16) {
		t.Errorf("creationDate = %v; want 2025-12-16", on)
	}

	// unreadable timestamps default to today.
	if got := creationDate("File Creation Time: garbage"); got != date.Today() {
		t.Errorf("creationDate(garbage) = %v; want today", got)
	}
}
