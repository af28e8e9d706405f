// SPDX-License-Identifier: MIT

// Command calc evaluates arithmetic expressions.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/calculator"
)

type (
	// options holds the persistent flag values.
	options struct {
		debug    bool
		noColor  bool
		workers  int
		capacity int
	}
)

// errFailed is returned when at least one expression failed to evaluate.
var errFailed = errors.New("evaluation failed")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		}
		os.Exit(1)
	}
}

// newRootCmd builds the calc command tree.
func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "calc",
		Short: "Evaluate arithmetic expressions",
		Long: `Calc evaluates arithmetic expressions supporting + - * / ^, parentheses,
signed floating point literals & arbitrary whitespace.

Examples:
  # Evaluate expressions given as arguments
  calc eval "2+3*4" "(2+3)*4"

  # Evaluate one expression per line from a file, or stdin
  calc batch expressions.txt`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().IntVar(&opts.workers, "workers", 0, "Batch worker pool size (defaults to GOMAXPROCS)")
	rootCmd.PersistentFlags().IntVar(&opts.capacity, "capacity", calculator.DefaultCapacity, "Evaluation stack capacity")

	rootCmd.AddCommand(newEvalCmd(opts), newBatchCmd(opts))

	return rootCmd
}

// newCalculator configures a Calculator from the flags, logging to w.
func (o *options) newCalculator(w io.Writer) *calculator.Calculator {
	logger := logrus.New()
	logger.SetOutput(w)
	if o.debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	return calculator.New(
		calculator.WithLogger(logger),
		calculator.WithDebug(o.debug),
		calculator.WithWorkers(o.workers),
		calculator.WithCapacity(o.capacity),
	)
}

// printResult writes a single evaluation outcome.
func printResult(w io.Writer, label string, value float64, err error) {
	if err != nil {
		fmt.Fprintf(w, "%s: %s\n", label, color.RedString("%v", err))
		return
	}

	fmt.Fprintf(w, "%s = %s\n", label, color.GreenString("%s", formatValue(value)))
}

func formatValue(value float64) string { return strconv.FormatFloat(value, 'g', -1, 64) }
