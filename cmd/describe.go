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

// describeCmd implements the "describe" command, the AI company summary.
type describeCmd struct {
	refresh bool
}

func (*describeCmd) Name() string     { return "describe" }
func (*describeCmd) Synopsis() string { return "AI-generated summary of a listed company" }
func (*describeCmd) Usage() string {
	return `tkp describe <symbol>

  Asks Gemini for a short profile of the company behind a ticker symbol,
  and renders the answer in the terminal.

  Requires the GEMINI_API_KEY environment variable to be set.

Usage Examples:
$ tkp describe AAPL
`
}

func (c *describeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.refresh, "refresh", false, "Bypass the cache and always fetch from NASDAQ.")
}

func (c *describeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one symbol is required.")
		return subcommands.ExitUsageError
	}
	symbol := strings.ToUpper(strings.TrimSpace(f.Arg(0)))

	dir, err := LoadDirectory(c.refresh)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load the symbol directory: %v\n", err)
		return subcommands.ExitFailure
	}
	listing, ok := dir.Get(symbol)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: symbol %q is not in the directory.\n", symbol)
		return subcommands.ExitFailure
	}

	md, err := tickpick.Describe(ctx, listing)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error describing %s: %v\n", symbol, err)
		return subcommands.ExitFailure
	}

	printMarkdown(md)
	return subcommands.ExitSuccess
}
