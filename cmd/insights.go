package cmd

import (
	"context"
	"flag"

	"github.com/etnz/finpredictor"
	"github.com/etnz/finpredictor/renderer"
	"github.com/google/subcommands"
)

type insightsCmd struct{}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "display AI recommendations about the portfolio and goals" }
func (*insightsCmd) Usage() string {
	return `finpredict insights

  Asks the API for recommendations based on the user's portfolio and goals.
  The server answers demo insights when it has no Gemini API key.
`
}

func (*insightsCmd) SetFlags(f *flag.FlagSet) {}

func (*insightsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	api, user, err := connectUser()
	if err != nil {
		return usageError("%v", err)
	}
	p := api.Predict(ctx, finpredictor.PredictionRequest{UserID: user})
	printMarkdown(renderer.InsightsMarkdown(p))
	return subcommands.ExitSuccess
}
