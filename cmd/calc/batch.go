// SPDX-License-Identifier: MIT
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gitlab.com/fisherprime/calculator"
)

const commentMarker = "#"

func newBatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [FILE]",
		Short: "Evaluate one expression per line, concurrently",
		Long: `Evaluate one expression per line from FILE, or stdin when FILE is omitted.

Blank lines & lines starting with '#' are skipped. Results are printed in input order,
followed by a summary.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			source := cmd.InOrStdin()
			if len(args) > 0 {
				var file *os.File
				if file, err = os.Open(args[0]); err != nil {
					return
				}
				defer file.Close()

				source = file
			}

			lines, exprs, err := readExpressions(source)
			if err != nil {
				return
			}

			c := opts.newCalculator(cmd.ErrOrStderr())
			results, summary, err := c.EvaluateAll(cmd.Context(), exprs)
			if err != nil {
				return
			}

			w := cmd.OutOrStdout()
			for index, result := range results {
				printResult(w, fmt.Sprintf("%d: %s", lines[index], result.Expr), result.Value, result.Err)
			}
			printSummary(w, summary)

			if summary.Failed() > 0 {
				err = fmt.Errorf("%w: %d of %d", errFailed, summary.Failed(), summary.Total())
			}

			return
		},
	}
}

// readExpressions collects the expressions from r alongside their line numbers.
func readExpressions(r io.Reader) (lines []int, exprs []string, err error) {
	scanner := bufio.NewScanner(r)

	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, commentMarker) {
			continue
		}

		lines = append(lines, line)
		exprs = append(exprs, text)
	}
	err = scanner.Err()

	return
}

func printSummary(w io.Writer, summary *calculator.Summary) {
	fmt.Fprint(w, color.CyanString("=== Summary ===\n"))
	fmt.Fprintf(w, "evaluated: %d, failed: %d\n", summary.Total(), summary.Failed())

	for _, status := range summary.Statuses() {
		fmt.Fprintf(w, "  %s: %d\n", status, summary.Count(status))
	}
}
