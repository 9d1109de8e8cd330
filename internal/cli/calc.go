// Copyright (c) 2025 Greetcalc Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package cli

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"greetcalc/internal/calculator"
)

func newCalcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Basic arithmetic operations",
	}

	cmd.AddCommand(
		binaryOpCmd("add", "Add two numbers", func(a, b float64) (float64, error) {
			return calculator.Add(a, b), nil
		}),
		binaryOpCmd("sub", "Subtract the second number from the first", func(a, b float64) (float64, error) {
			return calculator.Subtract(a, b), nil
		}),
		binaryOpCmd("mul", "Multiply two numbers", func(a, b float64) (float64, error) {
			return calculator.Multiply(a, b), nil
		}),
		binaryOpCmd("div", "Divide the first number by the second", calculator.Divide),
		binaryOpCmd("pow", "Raise the first number to the power of the second", func(a, b float64) (float64, error) {
			return calculator.Power(a, b), nil
		}),
		unaryOpCmd("sqrt", "Take the square root of a number", calculator.SquareRoot),
	)

	return cmd
}

func binaryOpCmd(use, short string, op func(a, b float64) (float64, error)) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <a> <b>", use),
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			b, err := parseOperand(args[1])
			if err != nil {
				return err
			}

			result, err := op(a, b)
			if err != nil {
				return err
			}

			slog.Debug("operation evaluated", "op", use, "a", a, "b", b, "result", result)
			return printResult(cmd, result)
		},
	}
}

func unaryOpCmd(use, short string, op func(n float64) (float64, error)) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s <n>", use),
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseOperand(args[0])
			if err != nil {
				return err
			}

			result, err := op(n)
			if err != nil {
				return err
			}

			slog.Debug("operation evaluated", "op", use, "n", n, "result", result)
			return printResult(cmd, result)
		},
	}
}

func parseOperand(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, calculator.ErrInvalidArgument)
	}
	return v, nil
}

// printResult renders with shortest round-trip precision so integral
// results print without a fractional part.
func printResult(cmd *cobra.Command, v float64) error {
	_, err := resultColor.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'g', -1, 64))
	return err
}
