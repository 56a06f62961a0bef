package tickpick

import (
	"fmt"
	"os"

	"github.com/etnz/tickpick/date"
)

// The snapshot cache stores the parsed directory in a single JSONL file and
// expires it on the calendar day boundary: a snapshot written yesterday is
// stale, whatever the hour.

// LoadCache reads the directory from a same-day snapshot file.
//
// It returns an error when the file is missing, was written on an earlier
// calendar day, or does not decode. Callers treat any error as a cache miss.
func LoadCache(path string) (*Directory, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	written := date.New(info.ModTime().Date())
	if written != date.Today() {
		return nil, fmt.Errorf("cache %q is outdated (%s)", path, written)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeDirectory(path, f)
}

// SaveCache writes the directory snapshot to path.
func SaveCache(path string, d *Directory) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeDirectory(f, d); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
