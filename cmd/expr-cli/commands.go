// SPDX-License-Identifier: Apache-2.0
package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"exprparser/internal/errors"
	"exprparser/internal/grammar"
	"exprparser/internal/lsp"
	"exprparser/internal/parser"
	"exprparser/internal/repl"
)

func newReplCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := getConfig(cmd)

			rl, err := repl.NewReadline(cfg.Prompt, cfg.HistoryFile)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
			session := repl.NewSession(rl, cmd.OutOrStdout(), cmd.ErrOrStderr(), repl.Options{
				Prompt:   cfg.Prompt,
				FileID:   cfg.FileID,
				ShowTree: cfg.ShowTree,
			})
			return session.Run()
		},
	}

	cmd.Flags().String("prompt", "", "Prompt shown before each line")
	cmd.Flags().String("history", "", "History file")
	cmd.Flags().Bool("tree", false, "Print the syntax tree after each line")

	return cmd
}

func newEvalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>...",
		Short: "Evaluate an expression and print its value",
		Long: `Evaluate the arguments, joined by spaces, as one expression.
Exits with status 1 after printing diagnostics if the expression has errors.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig(cmd)
			input := strings.Join(args, " ")

			value, ok := evaluate(cmd.ErrOrStderr(), cfg.FileID, input, parser.ParseSource(input))
			if !ok {
				return errFailed
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Report the problems in a file, or standard input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "<stdin>"
			var source []byte
			var err error
			if len(args) == 1 {
				name = args[0]
				source, err = os.ReadFile(name)
			} else {
				source, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", name, err)
			}

			result := parser.ParseSource(string(source), parser.WithTelemetry())
			if _, ok := evaluate(cmd.ErrOrStderr(), name, string(source), result); !ok {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("Check of %s failed after %s", name, formatDuration(result.Telemetry.ParseTime)))
				return errFailed
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("No problems found in %s (%d lexemes in %s)",
				name, result.Telemetry.LexemeCount, formatDuration(result.Telemetry.ParseTime)))
			return nil
		},
	}
}

func newTreeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <expression>...",
		Short: "Print the syntax tree of an expression",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig(cmd)
			input := strings.Join(args, " ")

			result := parser.ParseSource(input)
			reporter := errors.NewErrorReporter(cfg.FileID, input)
			_, _ = fmt.Fprint(cmd.ErrOrStderr(), reporter.FormatDiagnostics(result.Diagnostics(cfg.FileID)))
			_, _ = fmt.Fprint(cmd.OutOrStdout(), result.Format())
			return nil
		},
	}
}

func newFmtCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <expression>...",
		Short: "Print an expression in canonical form",
		Long: `Parse the arguments, joined by spaces, with the strict grammar and print
the expression with normalized spacing. Nothing is repaired: the first
syntax error is reported and the command exits with status 1.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig(cmd)
			input := strings.Join(args, " ")

			expr, err := grammar.ParseString(cfg.FileID, input)
			if err != nil {
				_, _ = fmt.Fprint(cmd.ErrOrStderr(), grammar.FormatError(input, err))
				return errFailed
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), expr.String())
			return nil
		},
	}
}

func newExplainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <code>",
		Short: "Describe an error code such as E0100",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := strings.ToUpper(args[0])
			description := errors.GetErrorDescription(code)
			if description == errors.GetErrorDescription("") {
				return fmt.Errorf("unknown error code %q", args[0])
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s [%s]: %s\n", code, errors.GetErrorCategory(code), description)
			return nil
		},
	}
}

func newLSPCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Run the language server on standard input/output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return lsp.RunStdio(Version)
		},
	}
}

// evaluate prints every diagnostic of result to w and reports whether the
// input was free of errors and produced a value.
func evaluate(w io.Writer, fileID, source string, result *parser.ParseResult) (uint64, bool) {
	reporter := errors.NewErrorReporter(fileID, source)
	_, _ = fmt.Fprint(w, reporter.FormatDiagnostics(result.Diagnostics(fileID)))

	value, err := result.Eval()
	var evalErr *errors.EvalError
	switch {
	case stderrors.As(err, &evalErr):
		_, _ = fmt.Fprint(w, reporter.FormatDiagnostic(evalErr.Diagnostic(fileID)))
		return 0, false
	case err != nil:
		return 0, false
	}
	return value, len(result.Errors()) == 0
}
