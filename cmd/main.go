// Package cmd implements the CLI application to search and pick ticker
// symbols from the NASDAQ Trader symbol directory.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/tickpick"
	"github.com/etnz/tickpick/nasdaqtrader"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&pickCmd{}, "directory")
	c.Register(&searchCmd{}, "directory")
	c.Register(&updateCmd{}, "directory")

	c.Register(&quoteCmd{}, "market")
	c.Register(&describeCmd{}, "market")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var cacheFile = flag.String("cache-file", defaultCacheFile(), "Path to the symbol directory cache file (JSONL format)")

// defaultCacheFile returns the cache location: next to the executable, like
// the directory file itself would be.
func defaultCacheFile() string {
	exe, err := os.Executable()
	if err != nil {
		return "nasdaqtraded.jsonl"
	}
	return filepath.Join(filepath.Dir(exe), "nasdaqtraded.jsonl")
}

// LoadDirectory is the central function to obtain the symbol directory.
//
// It loads the same-day snapshot cache when there is one, and fetches from
// NASDAQ Trader otherwise, rewriting the cache on the way out. With refresh
// set the cache is bypassed and refetched unconditionally. Cache failures
// are never fatal.
func LoadDirectory(refresh bool) (*tickpick.Directory, error) {
	if !refresh {
		dir, err := tickpick.LoadCache(*cacheFile)
		if err == nil {
			log.Printf("loaded %d symbols from cache %s", dir.Len(), *cacheFile)
			return dir, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("warning, cannot use cache: %v, fetching fresh data", err)
		}
	}

	log.Printf("fetching ticker list from NASDAQ Trader...")
	dir, err := nasdaqtrader.Fetch()
	if err != nil {
		return nil, err
	}
	log.Printf("fetched %d symbols from NASDAQ Trader", dir.Len())

	if err := tickpick.SaveCache(*cacheFile, dir); err != nil {
		log.Printf("warning, failed to save cache %s: %v", *cacheFile, err)
	}
	return dir, nil
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// fall back to the raw markdown, still readable.
		fmt.Println(md)
		return
	}
	fmt.Println(out)
}
