package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/finpredictor"
	"github.com/etnz/finpredictor/renderer"
	"github.com/google/subcommands"
)

type portfolioCmd struct{}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "display the assets of the user" }
func (*portfolioCmd) Usage() string {
	return `finpredict portfolio

  Displays the assets of the user with their cost, value, gain and the
  allocation per asset type.
`
}

func (*portfolioCmd) SetFlags(f *flag.FlagSet) {}

func (*portfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	api, user, err := connectUser()
	if err != nil {
		return usageError("%v", err)
	}
	printMarkdown(renderer.PortfolioMarkdown(api.Portfolio(ctx, user)))
	return subcommands.ExitSuccess
}

type addAssetCmd struct {
	typ   string
	in    finpredictor.AssetCreate
	units float64
	price float64
}

func (*addAssetCmd) Name() string     { return "add-asset" }
func (*addAssetCmd) Synopsis() string { return "add an asset to the portfolio" }
func (*addAssetCmd) Usage() string {
	return `finpredict add-asset -type <type> -symbol <symbol> -units <n> -price <amount> [-name <name>]

  Adds an asset bought at price. Types are stock, mutual_fund, crypto, bond, cash and other.
`
}

func (c *addAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", string(finpredictor.Stock), "Asset type.")
	f.StringVar(&c.in.Symbol, "symbol", "", "Ticker or scheme code.")
	f.StringVar(&c.in.Name, "name", "", "Display name.")
	f.Float64Var(&c.units, "units", 0, "Number of units held.")
	f.Float64Var(&c.price, "price", 0, "Buy price of one unit.")
}

func (c *addAssetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := finpredictor.ParseAssetType(c.typ)
	if err != nil {
		return usageError("%v", err)
	}
	c.in.Type = typ
	c.in.Units = finpredictor.Q(c.units)
	c.in.BuyPrice = finpredictor.M(c.price, finpredictor.DefaultCurrency)
	if err := c.in.Validate(); err != nil {
		return usageError("%v", err)
	}

	api, user, err := connectUser()
	if err != nil {
		return usageError("%v", err)
	}
	a, err := api.AddAsset(ctx, user, c.in)
	if err != nil {
		return fail("adding asset: %v", err)
	}
	fmt.Fprintf(stdout, "Added %s (id %s)\n", a, a.ID)
	return subcommands.ExitSuccess
}

type removeAssetCmd struct{}

func (*removeAssetCmd) Name() string     { return "remove-asset" }
func (*removeAssetCmd) Synopsis() string { return "remove an asset from the portfolio" }
func (*removeAssetCmd) Usage() string {
	return `finpredict remove-asset <id>...

  Removes assets by id.
`
}

func (*removeAssetCmd) SetFlags(f *flag.FlagSet) {}

func (*removeAssetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		return usageError("missing asset id")
	}
	api, user, err := connectUser()
	if err != nil {
		return usageError("%v", err)
	}
	for _, id := range f.Args() {
		if err := api.DeleteAsset(ctx, user, id); err != nil {
			return fail("removing asset %q: %v", id, err)
		}
	}
	return subcommands.ExitSuccess
}
