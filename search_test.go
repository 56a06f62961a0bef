package tickpick

import (
	"fmt"
	"testing"
)

func TestRank(t *testing.T) {
	tests := []struct {
		listing Listing
		query   string
		want    int
	}{
		{Listing{Symbol: "AAPL", Name: "Apple Inc."}, "aapl", RankExact},
		{Listing{Symbol: "AAPL.W", Name: "Apple warrants"}, "aapl", RankPrefix},
		{Listing{Symbol: "XAAPLX", Name: "whatever"}, "aapl", RankSymbol},
		{Listing{Symbol: "APC", Name: "Aapl Holdings Corp."}, "aapl", RankName},
		{Listing{Symbol: "MSFT", Name: "Microsoft Corporation"}, "aapl", RankNone},
		{Listing{Symbol: "MSFT", Name: "Microsoft Corporation"}, "MICRO", RankName},
	}
	for _, tt := range tests {
		if got := Rank(tt.listing, tt.query); got != tt.want {
			t.Errorf("Rank(%v, %q) = %d; want %d", tt.listing, tt.query, got, tt.want)
		}
	}
}

func TestSearchOrdersByRankThenSymbol(t *testing.T) {
	d := testDirectory(t,
		Listing{Symbol: "APC", Name: "Aapl Holdings Corp."},
		Listing{Symbol: "AAPL.W", Name: "Apple warrants"},
		Listing{Symbol: "AAPL", Name: "Apple Inc."},
		Listing{Symbol: "XAAPLX", Name: "whatever"},
		Listing{Symbol: "MSFT", Name: "Microsoft Corporation"},
	)

	results := d.Search("AAPL")
	want := []string{"AAPL", "AAPL.W", "XAAPLX", "APC"}
	if len(results) != len(want) {
		t.Fatalf("Search(AAPL) returned %d results; want %d", len(results), len(want))
	}
	for i, l := range results {
		if l.Symbol != want[i] {
			t.Errorf("Search(AAPL)[%d] = %q; want %q", i, l.Symbol, want[i])
		}
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	d := testDirectory(t,
		Listing{Symbol: "MSFT", Name: "Microsoft Corporation"},
		Listing{Symbol: "AAPL", Name: "Apple Inc."},
	)
	results := d.Search("")
	if len(results) != 2 || results[0].Symbol != "AAPL" || results[1].Symbol != "MSFT" {
		t.Errorf("Search(\"\") = %v; want all listings in symbol order", results)
	}
}

func TestSearchTruncates(t *testing.T) {
	listings := make([]Listing, 0, 2*MaxResults)
	for i := 0; i < 2*MaxResults; i++ {
		listings = append(listings, Listing{
			Symbol: fmt.Sprintf("AA%03d", i),
			Name:   "Acme Series",
		})
	}
	d := testDirectory(t, listings...)

	if got := len(d.Search("AA")); got != MaxResults {
		t.Errorf("Search(AA) returned %d results; want %d", got, MaxResults)
	}
	if got := len(d.Search("")); got != MaxResults {
		t.Errorf("Search(\"\") returned %d results; want %d", got, MaxResults)
	}
}
