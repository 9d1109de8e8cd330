// Copyright (c) 2025 Greetcalc Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Package cli wires the greetcalc command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"greetcalc/internal/config"
	"greetcalc/internal/logging"
	"greetcalc/pkg/greeter"
)

const version = "0.1.0"

var (
	messageColor = color.New(color.FgCyan)
	resultColor  = color.New(color.FgGreen)
)

// app carries flag values and the loaded config shared by all commands.
type app struct {
	cfgPath   string
	debug     bool
	logFormat string
	noColor   bool

	cfg *config.Config
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "greetcalc",
		Short:        "Arithmetic helper and console greeter",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			slog.Debug("running greeter sequence",
				"greet", a.cfg.Greeter.GreetName,
				"farewell", a.cfg.Greeter.FarewellName)

			g := greeter.New(cmd.OutOrStdout())
			g.Layout = a.cfg.Greeter.TimeLayout
			g.Run(a.cfg.Greeter.GreetName, a.cfg.Greeter.FarewellName)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfgPath, "config", "", "path to config file (default "+config.FileName+" in the working directory)")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log output format: text or json")
	cmd.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colorized output")

	cmd.AddCommand(
		newCalcCmd(),
		newGreetCmd(a),
		newFarewellCmd(a),
		newTimeCmd(a),
		newVersionCmd(),
	)

	return cmd
}

// init loads the config and installs logging before any command runs.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	format := cfg.Output.LogFormat
	if a.logFormat != "" {
		format = a.logFormat
	}
	logging.Setup(cmd.ErrOrStderr(), format, a.debug || cfg.Output.Debug)

	if a.noColor || !cfg.Output.Color {
		color.NoColor = true
	}

	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "greetcalc version %s\n", version)
		},
	}
}
