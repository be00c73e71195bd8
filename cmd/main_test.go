package main

import (
	"arrow/internal/config"
	"arrow/internal/runner"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func newRunner(stdout, stderr io.Writer) *runner.Runner {
	cfg := config.Default()
	cfg.Diagnostics = false

	r := runner.New(cfg)
	r.Stdout = stdout
	r.Stderr = stderr
	r.Logger = log.New(io.Discard)
	return r
}

func TestRunFileExitCodes(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.arw")
	if err := os.WriteFile(good, []byte("write(1);\n"), 0o644); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}

	bad := filepath.Join(dir, "bad.arw")
	if err := os.WriteFile(bad, []byte("write(missing);\n"), 0o644); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}

	tests := []struct {
		name      string
		path      string
		code      int
		withUsage bool
	}{
		{"success", good, 0, false},
		{"script error", bad, 1, false},
		{"unreadable file", filepath.Join(dir, "missing.arw"), 1, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			if code := runFile(newRunner(&stdout, &stderr), test.path, &stderr); code != test.code {
				t.Errorf("expected exit code %d, got %d", test.code, code)
			}

			if got := strings.Contains(stderr.String(), "Usage:"); got != test.withUsage {
				t.Errorf("expected usage shown=%v, got %q", test.withUsage, stderr.String())
			}
		})
	}
}
