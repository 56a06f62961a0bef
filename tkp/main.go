package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/tickpick/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	name := path.Base(os.Args[0])

	// Shell completion, a no-op unless invoked by the completion hooks.
	completion(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion(name string) {
	tkp := &complete.Command{
		Sub: map[string]*complete.Command{
			"pick": {Flags: map[string]complete.Predictor{
				"refresh": predict.Nothing,
			}},
			"search": {Flags: map[string]complete.Predictor{
				"refresh": predict.Nothing,
				"n":       predict.Something,
			}},
			"update": {},
			"quote":  {},
			"describe": {Flags: map[string]complete.Predictor{
				"refresh": predict.Nothing,
			}},
			"topic": {Args: predict.Set{"readme", "cache", "ranking"}},
		},
		Flags: map[string]complete.Predictor{
			"cache-file": predict.Files("*.jsonl"),
		},
	}
	tkp.Complete(name)
}
