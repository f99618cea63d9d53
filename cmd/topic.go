package cmd

import (
	"context"
	"flag"

	"github.com/etnz/finpredictor/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `finpredict topic [<topic>...]

  Shows documentation for the given topics, '*' for all of them.
`
}

func (*topicCmd) SetFlags(f *flag.FlagSet) {}

func (*topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}
	doc, err := docs.Topics(topics...)
	if err != nil {
		return fail("%v", err)
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
