package cmd

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/etnz/finpredictor"
	"github.com/etnz/finpredictor/agent"
	"github.com/etnz/finpredictor/client"
	"github.com/google/subcommands"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }
func (*assistCmd) Usage() string {
	return `finpredict assist [<first question>]

  Starts an interactive session with the AI assistant. It can run
  projections, compute required SIPs, read the user's portfolio and goals
  and search market news. Type 'bye' to exit.

  Requires GEMINI_API_KEY.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (*assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail("%v", err)
	}
	gemini, err := agent.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return fail("%v", err)
	}

	experts := []*agent.Expert{agent.NewPlanner(gemini.Model()), agent.NewTrader(gemini.Model())}
	if cfg.UserID != "" {
		records := userRecords{client.New(cfg.APIURL, nil), cfg.UserID}
		experts = append(experts, agent.NewAccountant(gemini.Model(), records))
	}
	a := agent.New(os.Stdout, os.Stdin, experts...)
	a.Print = printMarkdownTo

	if err := a.Run(ctx, gemini.Client(), strings.Join(f.Args(), " ")); err != nil {
		return fail("agent failed: %v", err)
	}
	return subcommands.ExitSuccess
}

// userRecords reads the data of a user from the API.
type userRecords struct {
	api    *client.Client
	userID string
}

func (r userRecords) Portfolio(ctx context.Context) (finpredictor.Portfolio, error) {
	return r.api.Portfolio(ctx, r.userID), nil
}

func (r userRecords) Goals(ctx context.Context) ([]finpredictor.Goal, error) {
	return r.api.Goals(ctx, r.userID), nil
}
