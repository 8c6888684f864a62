package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/etnz/growth"
	"github.com/etnz/growth/renderer"
	"github.com/google/subcommands"
)

// volatilityCmd holds the flags for the 'volatility' subcommand.
type volatilityCmd struct {
	perYear int
	value   bool
}

func (*volatilityCmd) Name() string     { return "volatility" }
func (*volatilityCmd) Synopsis() string { return "measure the annualized volatility of a series" }
func (*volatilityCmd) Usage() string {
	return `grow volatility [-per-year <n>] [-value] [<value>...]

  Measures the annualized volatility of a series of values, given as
  arguments or, if there are none, read from the standard input.

  The volatility is undefined for less than three values, or when a value is
  zero.

`
}

func (c *volatilityCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.perYear, "per-year", int(growth.Monthly), "Number of values per year.")
	f.BoolVar(&c.value, "value", false, "Print the bare annualized volatility, as a fraction.")
}

func (c *volatilityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.perYear <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -per-year must be positive, got %d\n", c.perYear)
		return subcommands.ExitUsageError
	}

	var series []float64
	var err error
	if f.NArg() > 0 {
		series, err = parseSeries(f.Args())
	} else {
		series, err = readSeries(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading series: %v\n", err)
		return subcommands.ExitUsageError
	}

	vol, err := growth.Volatility(series, c.perYear)
	if err != nil && !errors.Is(err, growth.ErrNotEnoughData) && !errors.Is(err, growth.ErrZeroValue) {
		fmt.Fprintf(os.Stderr, "Error measuring volatility: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.value {
		printMarkdown(renderer.VolatilityMarkdown(vol, err))
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitSuccess
	}
	fmt.Println(strconv.FormatFloat(vol, 'f', -1, 64))
	return subcommands.ExitSuccess
}

// parseSeries parses every field as a number.
func parseSeries(fields []string) ([]float64, error) {
	series := make([]float64, 0, len(fields))
	for i, s := range fields {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("value #%d: %w", i+1, err)
		}
		series = append(series, v)
	}
	return series, nil
}

// readSeries reads whitespace separated numbers from r.
func readSeries(r io.Reader) ([]float64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	var fields []string
	for scanner.Scan() {
		fields = append(fields, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return parseSeries(fields)
}
