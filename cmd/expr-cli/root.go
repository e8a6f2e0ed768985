// SPDX-License-Identifier: Apache-2.0
package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"exprparser/internal/config"
)

// Version information (set at build time).
var Version = "0.1.0"

// errFailed reports that the input had problems. The diagnostics have
// already been printed.
var errFailed = errors.New("input has errors")

// configKey is used to store config in context.
type configKey struct{}

// getConfig returns the config loaded for the command, falling back to the
// defaults when the command ran without it (or it failed to load).
func getConfig(cmd *cobra.Command) *config.Config {
	if ctx := cmd.Context(); ctx != nil {
		if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
			return cfg
		}
	}
	cfg, _, err := config.Load("", nil)
	if err != nil {
		return config.Default()
	}
	return cfg
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "expr",
		Short: "Parse and evaluate arithmetic expressions",
		Long: `expr parses unsigned integer arithmetic (+ - * /) into a lossless syntax
tree, reports every syntax error with its location, and evaluates the result.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, used, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			applyColor(cfg.Color)

			var logFile *string
			if cfg.Log.File != "" {
				logFile = &cfg.Log.File
			}
			commonlog.Configure(cfg.Log.Verbosity, logFile)
			if used != "" {
				commonlog.GetLogger("exprparser.cli").Debugf("using config file %s", used)
			}

			if cmd.Context() == nil {
				cmd.SetContext(context.Background())
			}
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./expr.yaml)")
	rootCmd.PersistentFlags().String("color", config.ColorAuto, "Color output (auto|always|never)")
	rootCmd.PersistentFlags().IntP("verbosity", "v", 0, "Log verbosity")
	rootCmd.PersistentFlags().String("log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().String("file-id", config.DefaultFileID, "Name shown for inline input in diagnostics")

	_ = rootCmd.RegisterFlagCompletionFunc("color", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{config.ColorAuto, config.ColorAlways, config.ColorNever}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newReplCommand())
	rootCmd.AddCommand(newEvalCommand())
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newTreeCommand())
	rootCmd.AddCommand(newFmtCommand())
	rootCmd.AddCommand(newExplainCommand())
	rootCmd.AddCommand(newLSPCommand())

	return rootCmd
}

func applyColor(mode string) {
	switch mode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
