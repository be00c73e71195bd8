package main

import (
	"arrow/internal/config"
	"arrow/internal/logger"
	"arrow/internal/runner"
	"arrow/pkg/color"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

type options struct {
	Help        bool   // Show help message
	Verbose     bool   // Enable debug-level diagnostics
	NoColor     bool   // Disable colored output
	Quiet       bool   // Disable diagnostics
	Interactive bool   // Line mode
	ConfigFile  string // Path to a YAML config file
	Encoding    string // Source encoding
	MaxSteps    int    // Statement limit
	MaxDepth    int    // Call depth limit
}

// Main entry point for the arrow interpreter.
func main() {
	opts := options{}

	flag.BoolVar(&opts.Help, "h", false, "Show help")
	flag.BoolVar(&opts.Verbose, "v", false, "Verbose mode")
	flag.BoolVar(&opts.NoColor, "n", false, "No color")
	flag.BoolVar(&opts.Quiet, "q", false, "Disable diagnostics")
	flag.BoolVar(&opts.Interactive, "i", false, "Interactive line mode")
	flag.StringVar(&opts.ConfigFile, "config", "", "YAML config file")
	flag.StringVar(&opts.Encoding, "e", "utf-8", "Source encoding (e.g., utf-8, Shift_JIS, ISO-8859-1)")
	flag.IntVar(&opts.MaxSteps, "max-steps", 0, "Maximum statements to execute (0 = unlimited)")
	flag.IntVar(&opts.MaxDepth, "max-depth", 0, "Maximum call depth (0 = unlimited)")

	flag.Parse()
	args := flag.Args()

	cfg := config.Default()
	if opts.ConfigFile != "" {
		loaded, err := config.Load(opts.ConfigFile)
		if err != nil {
			logger.Init(opts.Verbose, !opts.Quiet, opts.NoColor)
			log.Fatal("Failed to load config", "error", err)
		}
		cfg = loaded
	}
	applyFlags(&cfg, opts)

	logger.Init(cfg.Verbose, cfg.Diagnostics, !cfg.Color)
	if opts.Help {
		usage(os.Stderr)
		return
	}

	if !cfg.Color {
		color.EnableColor(false)
	}

	r := runner.New(cfg)

	if opts.Interactive {
		if err := r.RunREPL(); err != nil {
			log.Fatal("Line mode failed", "error", err)
		}
		return
	}

	if len(args) == 0 {
		usage(os.Stderr)
		os.Exit(1)
	}

	os.Exit(runFile(r, args[0], os.Stderr))
}

// runFile executes the script at path and returns the exit code.
// A file that cannot be read also prints the usage message.
func runFile(r *runner.Runner, path string, stderr io.Writer) int {
	r.SourceFile = path

	if err := r.RunFile(); err != nil {
		// script errors have already been printed
		if !errors.Is(err, runner.ErrScriptFailed) {
			r.Logger.Error("Run failed", "error", err)
			usage(stderr)
		}
		return 1
	}

	return 0
}

// applyFlags lets flags given on the command line override the config file
func applyFlags(cfg *config.Config, opts options) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "v":
			cfg.Verbose = opts.Verbose
		case "n":
			cfg.Color = !opts.NoColor
		case "q":
			cfg.Diagnostics = !opts.Quiet
		case "e":
			cfg.Encoding = opts.Encoding
		case "max-steps":
			cfg.MaxSteps = opts.MaxSteps
		case "max-depth":
			cfg.MaxDepth = opts.MaxDepth
		}
	})
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [options] <script-file>\n", os.Args[0])
	fmt.Fprintln(w, "Options:")
	flag.CommandLine.SetOutput(w)
	flag.PrintDefaults()
}
