// Copyright (c) 2025 Greetcalc Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"greetcalc/pkg/greeter"
)

func newGreetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "greet [name]",
		Short: "Print a greeting",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.cfg.Greeter.GreetName
			if len(args) == 1 {
				name = args[0]
			}
			_, err := messageColor.Fprintln(cmd.OutOrStdout(), greeter.Greeting(name))
			return err
		},
	}
}

func newFarewellCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "farewell [name]",
		Short: "Print a farewell",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := a.cfg.Greeter.FarewellName
			if len(args) == 1 {
				name = args[0]
			}
			_, err := messageColor.Fprintln(cmd.OutOrStdout(), greeter.Farewell(name))
			return err
		},
	}
}

func newTimeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "time",
		Short: "Print the current wall-clock time",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := greeter.New(cmd.OutOrStdout())
			g.Layout = a.cfg.Greeter.TimeLayout
			_, err := fmt.Fprintln(cmd.OutOrStdout(), g.CurrentTime())
			return err
		},
	}
}
