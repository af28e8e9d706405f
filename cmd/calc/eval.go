// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEvalCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Evaluate the expressions given as arguments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := opts.newCalculator(cmd.ErrOrStderr())

			failed := 0
			for _, expr := range args {
				value, err := c.Calculate(expr)
				if err != nil {
					failed++
				}
				printResult(cmd.OutOrStdout(), expr, value, err)
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errFailed, failed, len(args))
			}

			return nil
		},
	}
}
