package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Init installs the default logger used for diagnostics and driver messages
func Init(verbose, diagnostics, noColor bool) {
	log.SetDefault(New(os.Stderr, verbose, diagnostics, noColor))
}

// New builds a logger writing to w. Diagnostics are logged at debug level, so
// the level drops to debug when they are enabled; otherwise only warnings and
// errors pass. Verbose adds caller locations.
func New(w io.Writer, verbose, diagnostics, noColor bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportCaller:    verbose,
		ReportTimestamp: false,
		TimeFormat:      time.RFC3339,
		Prefix:          "ARROW",
	})

	l.SetLevel(log.WarnLevel)
	if verbose || diagnostics {
		l.SetLevel(log.DebugLevel)
	}

	l.SetColorProfile(termenv.ANSI256)
	if noColor {
		l.SetColorProfile(termenv.Ascii)
	}

	return l
}
