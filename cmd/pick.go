package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tickpick/tui"
	"github.com/google/subcommands"
)

// pickCmd implements the "pick" command, the interactive picker.
type pickCmd struct {
	refresh bool
}

func (*pickCmd) Name() string     { return "pick" }
func (*pickCmd) Synopsis() string { return "interactively pick one ticker symbol" }
func (*pickCmd) Usage() string {
	return `tkp pick [-refresh]

  Opens a terminal picker over the NASDAQ Trader symbol directory. Type to
  narrow the ranked list of matches, confirm with Enter, abort with Esc.
  The chosen symbol is printed on stdout, so it can feed another command:

  $ tkp quote "$(tkp pick)"
`
}

func (c *pickCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.refresh, "refresh", false, "Bypass the cache and always fetch from NASDAQ.")
}

func (c *pickCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	dir, err := LoadDirectory(c.refresh)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load the symbol directory: %v\n", err)
		return subcommands.ExitFailure
	}

	symbol, err := tui.Run(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: picker failed: %v\n", err)
		return subcommands.ExitFailure
	}
	if symbol == "" {
		fmt.Fprintln(os.Stderr, "No ticker selected.")
		return subcommands.ExitFailure
	}

	fmt.Println(symbol)
	return subcommands.ExitSuccess
}
