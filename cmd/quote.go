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

// quoteCmd implements the "quote" command.
type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "print the latest price for a symbol" }
func (*quoteCmd) Usage() string {
	return `tkp quote <symbol>

  Fetches and prints the latest traded price for a ticker symbol.

Usage Examples:
$ tkp quote AAPL
`
}

func (*quoteCmd) SetFlags(f *flag.FlagSet) {}

func (c *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one symbol is required.")
		return subcommands.ExitUsageError
	}
	symbol := strings.ToUpper(strings.TrimSpace(f.Arg(0)))

	price, err := tickpick.Quote(symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching quote: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("%s %s\n", symbol, price)
	return subcommands.ExitSuccess
}
