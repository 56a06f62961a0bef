package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// updateCmd implements the "update" command.
type updateCmd struct{}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "refetch the symbol directory and rewrite the cache" }
func (*updateCmd) Usage() string {
	return `tkp update

  Fetches the symbol directory from NASDAQ Trader, bypassing the daily
  cache, and rewrites the cache file with the fresh data.
`
}

func (*updateCmd) SetFlags(f *flag.FlagSet) {}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dir, err := LoadDirectory(true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not update the symbol directory: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated %d symbols (directory of %s) in %s\n", dir.Len(), dir.On(), *cacheFile)
	return subcommands.ExitSuccess
}
