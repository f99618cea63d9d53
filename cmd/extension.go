package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
)

const (
	EnvAPIURL = "FINPREDICTOR_API_URL"
	EnvUser   = "FINPREDICTOR_USER"
	EnvPlain  = "FINPREDICTOR_PLAIN"
)

// RunExtension attempts to find and execute an external finpredict-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The global flags are passed to the extension as environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "finpredict-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", name, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	cmd.Env = os.Environ()
	if cfg, err := loadConfig(); err == nil {
		cmd.Env = append(cmd.Env, EnvAPIURL+"="+cfg.APIURL, EnvUser+"="+cfg.UserID)
	}
	cmd.Env = append(cmd.Env, EnvPlain+"="+strconv.FormatBool(*plain))

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return true, exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
