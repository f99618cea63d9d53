package cmd

import (
	"context"
	"flag"

	"github.com/etnz/finpredictor"
	"github.com/etnz/finpredictor/renderer"
	"github.com/google/subcommands"
)

type sipCmd struct {
	sip renderer.SIP
}

func (*sipCmd) Name() string     { return "sip" }
func (*sipCmd) Synopsis() string { return "compute the monthly SIP required to reach a target" }
func (*sipCmd) Usage() string {
	return `finpredict sip -target <amount> -years <n> [-starting <amount>] [-return <rate>] [-inflation <rate>]

  Computes the monthly contribution required to reach a target, expressed in
  today's money, in a number of years (possibly fractional).
`
}

func (c *sipCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.sip.Target, "target", 0, "Target amount in today's money.")
	f.Float64Var(&c.sip.Years, "years", 0, "Years until the target date.")
	f.Float64Var(&c.sip.Starting, "starting", 0, "Amount already invested.")
	rateVar(f, &c.sip.Return, "return", 0.12, "Expected annual return.")
	rateVar(f, &c.sip.Inflation, "inflation", 0.05, "Expected annual inflation.")
}

func (c *sipCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.sip.Target <= 0 {
		return usageError("-target must be positive")
	}
	monthly, err := finpredictor.RequiredSIP(c.sip.Target, c.sip.Years, c.sip.Return, c.sip.Inflation, c.sip.Starting)
	if err != nil {
		return fail("%v", err)
	}
	c.sip.Monthly = monthly
	printMarkdown(renderer.SIPMarkdown(c.sip))
	return subcommands.ExitSuccess
}
