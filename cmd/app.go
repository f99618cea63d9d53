// Package cmd implements the finpredict command line.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/finpredictor/client"
	"github.com/etnz/finpredictor/config"
	"github.com/google/subcommands"
)

// Group is a set of subcommands listed together in the help.
type Group struct {
	Name     string
	Commands []subcommands.Command
}

// Groups lists the finpredict subcommands.
var Groups = []Group{
	{"planning", []subcommands.Command{&projectCmd{}, &sipCmd{}}},
	{"account", []subcommands.Command{&signupCmd{}, &loginCmd{}}},
	{"portfolio", []subcommands.Command{&portfolioCmd{}, &addAssetCmd{}, &removeAssetCmd{}}},
	{"goals", []subcommands.Command{&goalsCmd{}, &addGoalCmd{}, &removeGoalCmd{}}},
	{"ai", []subcommands.Command{&insightsCmd{}, &assistCmd{}}},
	{"server", []subcommands.Command{&serveCmd{}}},
	{"documentation", []subcommands.Command{&topicCmd{}}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, g := range Groups {
		for _, cmd := range g.Commands {
			c.Register(cmd, g.Name)
		}
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var apiURL = flag.String("api", "", "URL of the finpredictor API. Defaults to $FINPREDICTOR_API_URL or http://localhost:8000.")
var userID = flag.String("user", "", "Id of the user to act for. Defaults to $FINPREDICTOR_USER.")
var plain = flag.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal.")

// stdout is where commands print their results.
var stdout io.Writer = os.Stdout

// loadConfig reads the environment configuration, overridden by the global flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if *apiURL != "" {
		cfg.APIURL = *apiURL
	}
	if *userID != "" {
		cfg.UserID = *userID
	}
	return cfg, nil
}

// connect returns a client of the configured API and the current user id.
func connect() (*client.Client, string, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, "", err
	}
	return client.New(cfg.APIURL, nil), cfg.UserID, nil
}

var errNoUser = errors.New("no user: pass -user or set FINPREDICTOR_USER, see 'finpredict login'")

// connectUser is connect for commands that act for a user.
func connectUser() (*client.Client, string, error) {
	c, id, err := connect()
	if err == nil && id == "" {
		err = errNoUser
	}
	return c, id, err
}

// printMarkdown renders markdown for the terminal on stdout.
func printMarkdown(md string) { printMarkdownTo(stdout, md) }

func printMarkdownTo(w io.Writer, md string) {
	if *plain {
		fmt.Fprint(w, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}

// fail prints err on stderr and returns ExitFailure.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitFailure
}

// usageError prints err on stderr and returns ExitUsageError.
func usageError(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitUsageError
}
