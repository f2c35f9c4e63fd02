package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"adder/internal/calculation"
)

func newComputeCmd() *cobra.Command {
	// Flag parsing is off so negative operands such as -5 stay positional.
	return &cobra.Command{
		Use:                "compute <left> <sign> <right>",
		Short:              "Print the result of one calculation",
		Example:            "  adder compute 3 x 1\n  adder compute 5 / 0",
		Args:               cobra.ExactArgs(3),
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("left operand: %w", err)
			}

			sign, err := calculation.ParseSign(args[1])
			if err != nil {
				return err
			}

			right, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("right operand: %w", err)
			}

			result := calculation.Compute(left, right, sign)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(result, 'g', -1, 64))
			return err
		},
	}
}
