package config_test

import (
	"arrow/internal/config"
	"arrow/pkg/interpreter"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "arrow.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, "diagnostics: false\nencoding: shift_jis\nmax_steps: 1000\n")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Diagnostics {
		t.Error("expected diagnostics to be disabled")
	}
	if cfg.Encoding != "shift_jis" || cfg.MaxSteps != 1000 {
		t.Errorf("unexpected config %+v", cfg)
	}
	if !cfg.Color {
		t.Error("expected color to keep its default")
	}
	if cfg.MaxDepth != interpreter.DefaultMaxDepth {
		t.Errorf("expected default call depth %d, got %d", interpreter.DefaultMaxDepth, cfg.MaxDepth)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative steps", "max_steps: -1\n"},
		{"negative depth", "max_depth: -5\n"},
		{"empty encoding", "encoding: \"\"\n"},
		{"bad yaml", "diagnostics: [\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := config.Load(writeFile(t, test.content)); err == nil {
				t.Error("expected an error")
			}
		})
	}

	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
