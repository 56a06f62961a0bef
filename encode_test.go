package tickpick

import (
	"bytes"
	"strings"
	"testing"

	"github.com/etnz/tickpick/date"
)

func TestEncodeDecodeDirectory(t *testing.T) {
	d := testDirectory(t,
		Listing{Symbol: "AAPL", Name: "Apple Inc.", Exchange: "Q", Lot: 100},
		Listing{Symbol: "SPY", Name: "SPDR S&P 500 ETF Trust", Exchange: "P", ETF: true, Lot: 100},
	)

	var buf bytes.Buffer
	if err := EncodeDirectory(&buf, d); err != nil {
		t.Fatalf("EncodeDirectory: %v", err)
	}

	back, err := DecodeDirectory("test.jsonl", &buf)
	if err != nil {
		t.Fatalf("DecodeDirectory: %v", err)
	}

	if back.On() != date.New(2025, 12, 16) {
		t.Errorf("On() = %v; want 2025-12-16", back.On())
	}
	if back.Len() != d.Len() {
		t.Fatalf("Len() = %d; want %d", back.Len(), d.Len())
	}
	for i := range d.Listings() {
		if d.Listings()[i] != back.Listings()[i] {
			t.Errorf("listing %d = %+v; want %+v", i, back.Listings()[i], d.Listings()[i])
		}
	}
}

func TestDecodeDirectoryBadLine(t *testing.T) {
	in := `{"on":"2025-12-16"}
{"symbol":"AAPL","name":"Apple Inc."}
this is not json
`
	_, err := DecodeDirectory("bad.jsonl", strings.NewReader(in))
	if err == nil {
		t.Fatalf("DecodeDirectory on a corrupted file expected an error")
	}
	if !strings.Contains(err.Error(), "bad.jsonl") || !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error %q should name the file and the line", err)
	}
}

func TestDecodeDirectoryEmpty(t *testing.T) {
	if _, err := DecodeDirectory("empty.jsonl", strings.NewReader("")); err == nil {
		t.Errorf("DecodeDirectory on an empty file expected an error")
	}
}
