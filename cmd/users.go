package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/finpredictor"
	"github.com/google/subcommands"
)

type signupCmd struct {
	in   finpredictor.UserCreate
	risk string
}

func (*signupCmd) Name() string     { return "signup" }
func (*signupCmd) Synopsis() string { return "register a new user" }
func (*signupCmd) Usage() string {
	return `finpredict signup -name <name> -email <email> -password <password> [-age <n>] [-dob <date>] [-risk low|moderate|high] [-income <amount>]

  Registers a user and prints its id.
`
}

func (c *signupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in.Name, "name", "", "Full name.")
	f.StringVar(&c.in.Email, "email", "", "Email, used to log in.")
	f.StringVar(&c.in.Password, "password", "", "Password.")
	f.IntVar(&c.in.Age, "age", 0, "Age in years.")
	f.Var(dateValue{&c.in.DOB}, "dob", "Date of birth, e.g. 1990-04-23.")
	f.StringVar(&c.risk, "risk", "moderate", "Risk profile: low, moderate or high.")
	f.Float64Var(&c.in.MonthlyIncome, "income", 0, "Monthly income.")
}

func (c *signupCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	risk, err := finpredictor.ParseRiskProfile(c.risk)
	if err != nil {
		return usageError("%v", err)
	}
	c.in.RiskProfile = risk
	if err := c.in.Validate(); err != nil {
		return usageError("%v", err)
	}

	api, _, err := connect()
	if err != nil {
		return fail("%v", err)
	}
	u, err := api.Signup(ctx, c.in)
	if err != nil {
		return fail("signing up: %v", err)
	}
	printUser(u)
	return subcommands.ExitSuccess
}

type loginCmd struct {
	in finpredictor.Credentials
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "print the id of a registered user" }
func (*loginCmd) Usage() string {
	return `finpredict login -email <email> -password <password>

  Checks the credentials and prints the user id to use with -user or
  FINPREDICTOR_USER.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in.Email, "email", "", "Email.")
	f.StringVar(&c.in.Password, "password", "", "Password.")
}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.in.Email == "" || c.in.Password == "" {
		return usageError("-email and -password are required")
	}
	api, _, err := connect()
	if err != nil {
		return fail("%v", err)
	}
	u, err := api.Login(ctx, c.in)
	if err != nil {
		return fail("logging in: %v", err)
	}
	printUser(u)
	return subcommands.ExitSuccess
}

func printUser(u finpredictor.User) {
	fmt.Fprintf(stdout, "Welcome %s (%s risk profile).\n", u.Name, u.RiskProfile)
	fmt.Fprintf(stdout, "export FINPREDICTOR_USER=%s\n", u.ID)
}
