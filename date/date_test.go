package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	// July 32 is August 1.
	d := New(2025, 7, 32)
	if got, want := d.String(), "2025-08-01"; got != want {
		t.Errorf("New(2025, 7, 32).String() = %q; want %q", got, want)
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("2025-7-1")
	if err != nil {
		t.Fatalf("Parse(2025-7-1) unexpected error: %v", err)
	}
	if d != New(2025, time.July, 1) {
		t.Errorf("Parse(2025-7-1) = %v; want 2025-07-01", d)
	}

	if _, err := Parse("not a date"); err == nil {
		t.Errorf("Parse(not a date) expected an error")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2025, time.December, 16)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"2025-12-16"` {
		t.Errorf("Marshal = %s; want %q", b, `"2025-12-16"`)
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v; want %v", back, d)
	}
}
