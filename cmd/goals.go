package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/finpredictor"
	"github.com/etnz/finpredictor/renderer"
	"github.com/google/subcommands"
)

type goalsCmd struct{}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "list the financial goals of the user" }
func (*goalsCmd) Usage() string {
	return `finpredict goals

  Lists the goals of the user with the recommended and current SIP.
`
}

func (*goalsCmd) SetFlags(f *flag.FlagSet) {}

func (*goalsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	api, user, err := connectUser()
	if err != nil {
		return usageError("%v", err)
	}
	printMarkdown(renderer.GoalsMarkdown(api.Goals(ctx, user)))
	return subcommands.ExitSuccess
}

type addGoalCmd struct {
	in finpredictor.GoalCreate
}

func (*addGoalCmd) Name() string     { return "add-goal" }
func (*addGoalCmd) Synopsis() string { return "create a financial goal" }
func (*addGoalCmd) Usage() string {
	return `finpredict add-goal -title <title> -target <amount> -date <date> [-starting <amount>] [-sip <amount>] [-return <rate>] [-inflation <rate>] [-salary-growth <rate>]

  Creates a goal and prints the monthly SIP recommended to reach it.
  The target is in today's money: it grows with inflation until the date.
`
}

func (c *addGoalCmd) SetFlags(f *flag.FlagSet) {
	c.in = finpredictor.NewGoalCreate()
	f.StringVar(&c.in.Title, "title", "", "Goal title, e.g. 'House down payment'.")
	f.Float64Var(&c.in.TargetAmount, "target", 0, "Target amount in today's money.")
	f.Var(dateValue{&c.in.TargetDate}, "date", "Target date, e.g. 2030-06-01.")
	f.Float64Var(&c.in.StartingAmount, "starting", 0, "Amount already saved for the goal.")
	f.Float64Var(&c.in.CurrentSIP, "sip", 0, "Current monthly contribution.")
	rateVar(f, &c.in.ExpectedReturnRate, "return", c.in.ExpectedReturnRate, "Expected annual return.")
	rateVar(f, &c.in.InflationRate, "inflation", c.in.InflationRate, "Expected annual inflation.")
	rateVar(f, &c.in.SalaryGrowthRate, "salary-growth", c.in.SalaryGrowthRate, "Expected annual salary growth.")
}

func (c *addGoalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in.Title == "" || c.in.TargetAmount <= 0 || c.in.TargetDate.IsZero() {
		return usageError("-title, a positive -target and -date are required")
	}
	api, user, err := connectUser()
	if err != nil {
		return usageError("%v", err)
	}
	g, err := api.CreateGoal(ctx, user, c.in)
	if err != nil {
		return fail("creating goal: %v", err)
	}
	printMarkdown(renderer.GoalsMarkdown([]finpredictor.Goal{g}))
	fmt.Fprintf(stdout, "Goal id %s\n", g.ID)
	return subcommands.ExitSuccess
}

type removeGoalCmd struct{}

func (*removeGoalCmd) Name() string     { return "remove-goal" }
func (*removeGoalCmd) Synopsis() string { return "remove financial goals" }
func (*removeGoalCmd) Usage() string {
	return `finpredict remove-goal <id>...

  Removes goals by id.
`
}

func (*removeGoalCmd) SetFlags(f *flag.FlagSet) {}

func (*removeGoalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		return usageError("missing goal id")
	}
	api, user, err := connectUser()
	if err != nil {
		return usageError("%v", err)
	}
	for _, id := range f.Args() {
		if err := api.DeleteGoal(ctx, user, id); err != nil {
			return fail("removing goal %q: %v", id, err)
		}
	}
	return subcommands.ExitSuccess
}
