package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"bookseed/internal/shared"
	tu "bookseed/internal/testing"
)

// newTestRunner builds a Runner with silenced logging and captured output.
func newTestRunner(t *testing.T) (*Runner, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := shared.NewLogger(io.Discard)
	r := NewRunner(RunnerOpts{
		Config: shared.DefaultConfig(),
		Logger: logger,
		Output: &buf,
	})
	return r, &buf
}

// runCommand drives the CLI exactly the way main does.
func runCommand(t *testing.T, r *Runner, args ...string) error {
	t.Helper()
	app := &cli.Command{
		Name:     "bookseed",
		Commands: r.register(),
	}
	return app.Run(context.Background(), append([]string{"bookseed"}, args...))
}

func TestNewRunner(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		r := NewRunner(RunnerOpts{})
		if r.config == nil {
			t.Error("expected default config")
		}
		if r.logger == nil {
			t.Error("expected default logger")
		}
		if r.output == nil {
			t.Error("expected default output")
		}
	})

	t.Run("Custom Options", func(t *testing.T) {
		var buf bytes.Buffer
		config := shared.DefaultConfig()
		config.Database.Path = "custom.db"
		r := NewRunner(RunnerOpts{Config: config, Output: &buf})
		if r.config.Database.Path != "custom.db" {
			t.Errorf("expected custom config, got %s", r.config.Database.Path)
		}
		if r.output != &buf {
			t.Error("expected custom output writer")
		}
	})
}

func TestRegister(t *testing.T) {
	r, _ := newTestRunner(t)
	commands := r.register()

	want := []string{"seed", "verify", "stats", "reset"}
	if len(commands) != len(want) {
		t.Fatalf("expected %d commands, got %d", len(want), len(commands))
	}
	for i, name := range want {
		if commands[i].Name != name {
			t.Errorf("command %d: expected %s, got %s", i, name, commands[i].Name)
		}
		if commands[i].Action == nil {
			t.Errorf("command %s missing action", name)
		}
	}
}

func TestWriteHelpers(t *testing.T) {
	t.Run("writeJSON", func(t *testing.T) {
		r, buf := newTestRunner(t)
		if err := r.writeJSON(map[string]int{"users": 3}, false); err != nil {
			t.Fatalf("writeJSON failed: %v", err)
		}
		if got := buf.String(); got != "{\"users\":3}\n" {
			t.Errorf("unexpected output %q", got)
		}
	})

	t.Run("writeJSON Failed Writer", func(t *testing.T) {
		r, _ := newTestRunner(t)
		r.output = &tu.FWriter{}
		if err := r.writeJSON(map[string]int{}, false); err == nil {
			t.Error("expected error from failing writer")
		}
	})

	t.Run("writeJSON Limited Writer", func(t *testing.T) {
		r, _ := newTestRunner(t)
		var buf bytes.Buffer
		lw := tu.NewLimitedWriter(1, 0, &buf)
		r.output = &lw
		// First write (the payload) succeeds, the trailing newline fails.
		if err := r.writeJSON(map[string]int{}, false); err == nil {
			t.Error("expected error from exhausted writer")
		}
	})

	t.Run("writePlain", func(t *testing.T) {
		r, buf := newTestRunner(t)
		if err := r.writePlain("count: %d\n", 7); err != nil {
			t.Fatalf("writePlain failed: %v", err)
		}
		if !strings.Contains(buf.String(), "count: 7") {
			t.Errorf("unexpected output %q", buf.String())
		}
	})

	t.Run("writePlain Failed Writer", func(t *testing.T) {
		r, _ := newTestRunner(t)
		r.output = &tu.FWriter{}
		if err := r.writePlain("x"); err == nil {
			t.Error("expected error from failing writer")
		}
	})
}
