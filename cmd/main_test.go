package cmd

import (
	"path/filepath"
	"testing"

	"github.com/etnz/tickpick"
	"github.com/etnz/tickpick/date"
)

func TestLoadDirectoryCacheHit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nasdaqtraded.jsonl")
	d, err := tickpick.NewDirectory(date.Today(), []tickpick.Listing{
		{Symbol: "AAPL", Name: "Apple Inc."},
	})
	if err != nil {
		t.Fatalf("NewDirectory: %v", err)
	}
	if err := tickpick.SaveCache(path, d); err != nil {
		t.Fatalf("SaveCache: %v", err)
	}

	old := *cacheFile
	*cacheFile = path
	defer func() { *cacheFile = old }()

	// A same-day cache is served without touching the network.
	got, err := LoadDirectory(false)
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if got.Len() != 1 || !got.Has("AAPL") {
		t.Errorf("LoadDirectory returned %d listings; want the cached directory", got.Len())
	}
}
