package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/finpredictor"
	"github.com/etnz/finpredictor/renderer"
	"github.com/google/subcommands"
)

type projectCmd struct {
	req         finpredictor.Request
	view        string
	json        bool
	interactive bool
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project the value of savings in today's money" }
func (*projectCmd) Usage() string {
	return `finpredict project [-starting <amount>] [-monthly <amount>] [-return <rate>] [-inflation <rate>] -years <n> [-view monthly|yearly] [-json] [-i]

  Projects month by month the value of a starting amount growing at the
  expected return, with a contribution added at the end of every month.
  Values are deflated by inflation, in today's money.

  Rates are annual, either as fractions (0.12) or percents (12%).

  With -i, reads changes like "monthly=9000" or "years=15" from the standard
  input and prints the projection again after each one.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.req.Starting, "starting", 0, "Amount invested today.")
	f.Float64Var(&c.req.Monthly, "monthly", 0, "Contribution added every month, negative for withdrawals.")
	rateVar(f, &c.req.Return, "return", 0.12, "Expected annual return.")
	rateVar(f, &c.req.Inflation, "inflation", 0.05, "Expected annual inflation.")
	f.IntVar(&c.req.Years, "years", 10, "Horizon in whole years.")
	f.StringVar(&c.view, "view", "monthly", "Either 'monthly' or 'yearly'.")
	f.BoolVar(&c.json, "json", false, "Print the projection as JSON.")
	f.BoolVar(&c.interactive, "i", false, "Update the projection interactively.")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	view, err := finpredictor.ParseView(c.view)
	if err != nil {
		return usageError("%v", err)
	}

	planner := finpredictor.NewPlanner(c.req)
	if c.interactive {
		planner.OnChange(func(req finpredictor.Request, p finpredictor.Projection, err error) {
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			if err := c.print(req, view, p); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		})
	}

	points, err := planner.Projection()
	if err != nil {
		return fail("%v", err)
	}
	if err := c.print(planner.Request(), view, points); err != nil {
		return fail("%v", err)
	}

	if c.interactive {
		if err := edit(planner, os.Stdin); err != nil {
			return fail("%v", err)
		}
	}
	return subcommands.ExitSuccess
}

func (c *projectCmd) print(req finpredictor.Request, view finpredictor.View, points finpredictor.Projection) error {
	if c.json {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		err := enc.Encode(struct {
			Points     finpredictor.Projection `json:"points"`
			FinalValue float64                 `json:"final_value"`
		}{points.In(view), points.FinalValue()})
		if err != nil {
			return fmt.Errorf("writing projection: %w", err)
		}
		return nil
	}
	printMarkdown(renderer.ProjectionMarkdown(req, view, points.In(view)))
	return nil
}

// edit applies every "field=value" line of r to the planner.
// Invalid lines are reported and skipped.
func edit(p *finpredictor.Planner, r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		change, err := assignment(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		// the listener reports projection errors.
		_ = p.Update(change)
	}
	return sc.Err()
}

// assignment parses "field=value" into a change of a Request.
func assignment(line string) (func(*finpredictor.Request), error) {
	field, value, ok := strings.Cut(line, "=")
	if !ok {
		return nil, fmt.Errorf("invalid change %q, want field=value", line)
	}
	field, value = strings.TrimSpace(field), strings.TrimSpace(value)

	switch field {
	case "starting", "monthly":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", value, finpredictor.ErrInvalid)
		}
		if field == "starting" {
			return func(r *finpredictor.Request) { r.Starting = v }, nil
		}
		return func(r *finpredictor.Request) { r.Monthly = v }, nil
	case "return", "inflation":
		v, err := finpredictor.ParseRate(value)
		if err != nil {
			return nil, err
		}
		if field == "return" {
			return func(r *finpredictor.Request) { r.Return = v }, nil
		}
		return func(r *finpredictor.Request) { r.Inflation = v }, nil
	case "years":
		v, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid years %q: %w", value, finpredictor.ErrInvalid)
		}
		return func(r *finpredictor.Request) { r.Years = v }, nil
	}
	return nil, fmt.Errorf("unknown field %q, want starting, monthly, return, inflation or years", field)
}
