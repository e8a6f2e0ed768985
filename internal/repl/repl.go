// Package repl runs the interactive read-eval-print loop.
package repl

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"exprparser/internal/ast"
	"exprparser/internal/errors"
	"exprparser/internal/parser"
)

// LineReader is the part of *readline.Instance the loop needs.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

// Options configures a Session.
type Options struct {
	Prompt   string
	FileID   string
	ShowTree bool
}

// Session evaluates one line at a time, writing values to out and
// diagnostics and tree dumps to errOut.
type Session struct {
	reader LineReader
	out    io.Writer
	errOut io.Writer
	opts   Options
	log    commonlog.Logger
}

func NewSession(reader LineReader, out, errOut io.Writer, opts Options) *Session {
	return &Session{
		reader: reader,
		out:    out,
		errOut: errOut,
		opts:   opts,
		log:    commonlog.GetLogger("exprparser.repl"),
	}
}

// NewReadline configures the production line reader.
func NewReadline(prompt, historyFile string) (*readline.Instance, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		AutoComplete:    newCommandCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize REPL: %w", err)
	}
	return rl, nil
}

// Run loops until EOF or a quit command. Interrupts discard the current
// line.
func (s *Session) Run() error {
	defer func() { _ = s.reader.Close() }()
	s.reader.SetPrompt(s.opts.Prompt)

	for {
		line, err := s.reader.Readline()
		if stderrors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if stderrors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read line: %w", err)
		}

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, ".") {
			if quit := s.handleDotCommand(trimmed); quit {
				return nil
			}
			continue
		}
		if trimmed == "" {
			continue
		}

		s.Eval(line)
	}
}

// Eval parses and evaluates a single line.
func (s *Session) Eval(line string) {
	s.log.Debugf("evaluating %q", line)

	result := parser.ParseSource(line)
	reporter := errors.NewErrorReporter(s.opts.FileID, line)

	_, _ = fmt.Fprint(s.errOut, reporter.FormatDiagnostics(result.Diagnostics(s.opts.FileID)))

	value, err := result.Eval()
	var evalErr *errors.EvalError
	switch {
	case err == nil:
		_, _ = fmt.Fprintln(s.out, value)
	case stderrors.As(err, &evalErr):
		_, _ = fmt.Fprint(s.errOut, reporter.FormatDiagnostic(evalErr.Diagnostic(s.opts.FileID)))
	case stderrors.Is(err, ast.ErrNoValue):
		_, _ = fmt.Fprintln(s.errOut, color.RedString("failed to evaluate"))
	default:
		s.log.Errorf("unexpected evaluation error: %s", err)
	}

	if s.opts.ShowTree {
		_, _ = fmt.Fprintf(s.errOut, "\n%s", result.Format())
	}
}

func (s *Session) handleDotCommand(line string) (quit bool) {
	command := strings.ToLower(strings.Fields(line)[0])

	switch command {
	case ".quit", ".exit":
		return true
	case ".help":
		printHelp(s.out)
	case ".tree":
		s.opts.ShowTree = !s.opts.ShowTree
		state := "off"
		if s.opts.ShowTree {
			state = "on"
		}
		_, _ = fmt.Fprintf(s.out, "tree dump %s\n", state)
	default:
		_, _ = fmt.Fprintf(s.errOut, "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func printHelp(w io.Writer) {
	help := `
Commands:
  .help           Show this help message
  .tree           Toggle the syntax tree dump
  .quit / .exit   Exit the REPL

Expressions use + - * / on unsigned integers, e.g. 1 + 2 * 3
`
	_, _ = fmt.Fprintln(w, help)
}

func newCommandCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".tree"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
