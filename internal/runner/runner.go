package runner

import (
	"arrow/internal/config"
	"arrow/pkg/color"
	"arrow/pkg/interpreter"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/peterh/liner"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

const (
	promptMain = "arrow> "
	banner     = "arrow line mode. Each line runs on its own; :help lists commands, Ctrl+D exits."
	help       = ":reset  clear variables\n:quit   leave line mode\n:help   show this list"
)

// ErrScriptFailed is returned once a script error has been reported
var ErrScriptFailed = errors.New("script failed")

type Runner struct {
	Config     config.Config
	SourceFile string    // Path to the script file
	Stdout     io.Writer // write() output
	Stderr     io.Writer // rendered script errors
	Logger     *log.Logger
}

// New returns a runner writing to the process streams
func New(cfg config.Config) *Runner {
	return &Runner{
		Config: cfg,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: log.Default(),
	}
}

// RunFile reads, decodes and executes the whole script file. The first
// script error is reported and stops the run.
func (r *Runner) RunFile() error {
	r.Logger.Info("Processing file", "file", r.SourceFile)

	data, err := os.ReadFile(r.SourceFile)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", r.SourceFile, err)
	}

	return r.RunSource(data)
}

// RunSource executes raw script bytes the way file mode does
func (r *Runner) RunSource(data []byte) error {
	src, err := Decode(data, r.Config.Encoding)
	if err != nil {
		return err
	}

	it := interpreter.NewInterpreter(r.options()...)
	if err := it.Exec(JoinLines(src)); err != nil {
		r.report(err)
		return ErrScriptFailed
	}

	return nil
}

// RunLines executes each line as its own script against one interpreter.
// An error aborts only the line it happened on. It returns the number of failed lines.
func (r *Runner) RunLines(lines []string) int {
	it := interpreter.NewInterpreter(r.options()...)

	failed := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if handled, exit := r.command(it, line); handled {
			if exit {
				break
			}
			continue
		}

		if err := it.Exec(line); err != nil {
			r.report(err)
			failed++
		}
	}

	return failed
}

// RunREPL reads lines interactively until EOF. Globals persist between lines.
func (r *Runner) RunREPL() error {
	fmt.Fprintln(r.Stdout, color.GrayText(banner))

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(r.Config.HistoryFile); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	it := interpreter.NewInterpreter(r.options()...)

	for {
		line, err := ln.Prompt(promptMain)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			// Ctrl+D or closed input
			fmt.Fprintln(r.Stdout)
			break
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		if handled, exit := r.command(it, line); handled {
			if exit {
				break
			}
			continue
		}

		if err := it.Exec(line); err != nil {
			r.report(err)
		}
	}

	f, err := os.Create(r.Config.HistoryFile)
	if err != nil {
		r.Logger.Warn("Failed to save history", "file", r.Config.HistoryFile, "error", err)
		return nil
	}
	defer f.Close()

	if _, err := ln.WriteHistory(f); err != nil {
		r.Logger.Warn("Failed to save history", "file", r.Config.HistoryFile, "error", err)
	}

	return nil
}

// command handles line mode commands, which start with ':'.
// It reports whether line was a command and whether the session should end.
func (r *Runner) command(it *interpreter.Interpreter, line string) (handled, exit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], ":") {
		return false, false
	}

	switch fields[0] {
	case ":quit", ":q":
		return true, true
	case ":reset":
		it.Reset()
	case ":help":
		fmt.Fprintln(r.Stdout, color.GrayText(help))
	default:
		fmt.Fprintln(r.Stderr, color.Failure("Error: Unknown command "+fields[0]))
	}

	return true, false
}

func (r *Runner) options() []interpreter.Option {
	return []interpreter.Option{
		interpreter.WithWriter(r.Stdout),
		interpreter.WithLogger(r.Logger),
		interpreter.WithDiagnostics(r.Config.Diagnostics),
		interpreter.WithMaxSteps(r.Config.MaxSteps),
		interpreter.WithMaxDepth(r.Config.MaxDepth),
	}
}

func (r *Runner) report(err error) {
	fmt.Fprintln(r.Stderr, color.Failure(err.Error()))
}

// Decode converts source bytes in the named IANA encoding to UTF-8
func Decode(data []byte, encoding string) (string, error) {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
		return string(data), nil
	}

	enc, err := ianaindex.IANA.Encoding(encoding)
	if err != nil {
		return "", fmt.Errorf("unknown encoding %q: %w", encoding, err)
	}
	if enc == nil {
		return "", fmt.Errorf("unsupported encoding %q", encoding)
	}

	utf8Data, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), enc.NewDecoder()))
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", encoding, err)
	}

	return string(utf8Data), nil
}

// JoinLines drops empty lines and rejoins the rest with newlines
func JoinLines(src string) string {
	lines := strings.Split(src, "\n")

	kept := lines[:0]
	for _, line := range lines {
		if line != "" {
			kept = append(kept, line)
		}
	}

	return strings.Join(kept, "\n")
}
