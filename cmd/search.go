package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/tickpick"
	"github.com/google/subcommands"
)

// searchCmd implements the "search" command, the non-interactive search.
type searchCmd struct {
	refresh bool
	max     int
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search the symbol directory" }
func (*searchCmd) Usage() string {
	return `tkp search [-refresh] [-n max] <search term>

  Prints the listings matching the search term, best ranked first: exact
  symbol, then symbol prefix, then symbol substring, then name substring.

Usage Examples:
$ tkp search apple
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.refresh, "refresh", false, "Bypass the cache and always fetch from NASDAQ.")
	f.IntVar(&c.max, "n", tickpick.MaxResults, "Maximum number of results to print.")
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a search term is required.")
		return subcommands.ExitUsageError
	}
	searchTerm := strings.Join(f.Args(), " ")

	dir, err := LoadDirectory(c.refresh)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load the symbol directory: %v\n", err)
		return subcommands.ExitFailure
	}

	results := dir.Search(searchTerm)
	if len(results) == 0 {
		fmt.Printf("No results found for %q.\n", searchTerm)
		return subcommands.ExitSuccess
	}
	if c.max > 0 && len(results) > c.max {
		results = results[:c.max]
	}

	for _, l := range results {
		fmt.Println(l.Label())
	}
	return subcommands.ExitSuccess
}
