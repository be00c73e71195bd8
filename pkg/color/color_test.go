package color_test

import (
	"arrow/pkg/color"
	"testing"
)

func TestFailure(t *testing.T) {
	defer color.EnableColor(color.IsColorEnabled())

	color.EnableColor(false)
	if got := color.Failure("Error at line 3: Division by zero"); got != "Error at line 3: Division by zero" {
		t.Errorf("expected plain text without color, got %q", got)
	}

	color.EnableColor(true)
	got := color.Failure("Error at line 3: Division by zero")
	want := color.BrightRed + color.Bold + "Error at line 3" + color.Reset + color.Reset + ": Division by zero"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
