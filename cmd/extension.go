package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

const (
	EnvCurrency = "GROW_CURRENCY"
	EnvVerbose  = "GROW_VERBOSE"
	EnvRaw      = "GROW_RAW"
)

// ExtensionPrefix prefixes the name of external grow-<subcommand> binaries.
const ExtensionPrefix = "grow-"

// RunExtension attempts to find and execute an external grow-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
//
// The global configuration is passed to the extension as environment variables.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := ExtensionPrefix + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		if config.Verbose {
			fmt.Fprintf(os.Stderr, "External command %q not found in PATH: %v\n", name, err)
		}
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), extensionEnv(config)...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}

// extensionEnv returns the environment variables describing c.
func extensionEnv(c Config) []string {
	return []string{
		EnvCurrency + "=" + c.Currency,
		EnvVerbose + "=" + strconv.FormatBool(c.Verbose),
		EnvRaw + "=" + strconv.FormatBool(c.Raw),
	}
}
