package color

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	Gray = "\033[90m"

	BrightRed = "\033[91m"
)

var colorEnabled = true

func init() {
	if termenv.EnvNoColor() || !isTerminal() {
		colorEnabled = false
	}
}

func isTerminal() bool {
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}

func EnableColor(enable bool) {
	colorEnabled = enable
}

func IsColorEnabled() bool {
	return colorEnabled
}

func Colorize(color, text string) string {
	if !colorEnabled {
		return text
	}
	return color + text + Reset
}

func BrightRedText(text string) string {
	return Colorize(BrightRed, text)
}

func GrayText(text string) string {
	return Colorize(Gray, text)
}

func BoldText(text string) string {
	return Colorize(Bold, text)
}

// Failure colors the leading "Error..." part of a rendered script error,
// leaving the text itself unchanged when color is off.
func Failure(rendered string) string {
	if !colorEnabled {
		return rendered
	}

	head, rest, found := strings.Cut(rendered, ": ")
	if !found {
		return BrightRedText(rendered)
	}
	return BrightRedText(BoldText(head)) + ": " + rest
}
