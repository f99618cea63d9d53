// Command finpredict plans SIPs and financial goals, and serves the
// finpredictor API.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/finpredictor/cmd"
	"github.com/etnz/finpredictor/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion().Complete("finpredict")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	if name := flag.Arg(0); name != "" && !registered(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

func registered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}

// completion describes the command line for shell completion.
func completion() *complete.Command {
	views := predict.Set{"monthly", "yearly"}
	risks := predict.Set{"low", "moderate", "high"}
	assets := predict.Set{"stock", "mutual_fund", "crypto", "bond", "cash", "other"}

	sub := map[string]*complete.Command{
		"help":     {},
		"flags":    {},
		"commands": {},
	}
	for _, g := range cmd.Groups {
		for _, c := range g.Commands {
			fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(fs)
			flags := make(map[string]complete.Predictor)
			fs.VisitAll(func(f *flag.Flag) {
				switch f.Name {
				case "view":
					flags[f.Name] = views
				case "risk":
					flags[f.Name] = risks
				case "type":
					flags[f.Name] = assets
				default:
					flags[f.Name] = predict.Something
				}
			})
			sub[c.Name()] = &complete.Command{Flags: flags}
		}
	}
	sub["topic"].Args = predict.Set(append(docs.All(), "*"))
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"api":   predict.Something,
			"user":  predict.Something,
			"plain": predict.Nothing,
		},
	}
}
