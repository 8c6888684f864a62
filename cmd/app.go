// Package cmd implements the grow CLI application.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/glamour"
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Commands lists the subcommands in the order they are registered.
var Commands = []subcommands.Command{
	&projectCmd{},
	&scenariosCmd{},
	&volatilityCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// IsCommand reports whether name is a built-in subcommand.
func IsCommand(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, c := range Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// Config holds the settings shared by every subcommand. Environment variables
// provide the defaults, global flags override them.
type Config struct {
	Currency string `env:"GROW_CURRENCY" envDefault:"USD"`
	Verbose  bool   `env:"GROW_VERBOSE"`
	Raw      bool   `env:"GROW_RAW"`
}

// ParseEnv reads the configuration from the environment.
func ParseEnv() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return c, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// SetFlags binds the global flags to c.
func (c *Config) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.Currency, "currency", c.Currency, "Currency of the amounts (ISO 4217 code). Env: "+EnvCurrency)
	f.BoolVar(&c.Verbose, "v", c.Verbose, "Trace every calculation on stderr. Env: "+EnvVerbose)
	f.BoolVar(&c.Raw, "raw", c.Raw, "Print raw markdown instead of styled terminal output. Env: "+EnvRaw)
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var config Config

// Init loads the configuration from the environment and binds the global
// flags on f. It must be called before f is parsed.
func Init(f *flag.FlagSet) error {
	c, err := ParseEnv()
	if err != nil {
		return err
	}
	config = c
	config.SetFlags(f)
	return nil
}

// newLogger returns the logger handed to the calculations. Warnings are
// always printed to stderr, traces only in verbose mode.
func newLogger() logr.Logger {
	zc := zap.NewDevelopmentConfig()
	zc.DisableStacktrace = true
	zc.DisableCaller = true
	zc.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if config.Verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	z, err := zc.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		return logr.Discard()
	}
	return zapr.NewLogger(z)
}

// printMarkdown prints md to stdout, styled for the terminal unless raw
// output was requested.
func printMarkdown(md string) {
	if config.Raw {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
