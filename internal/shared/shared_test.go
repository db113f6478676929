package shared

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestGenerateID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := GenerateID()
		if len(id) != 36 {
			t.Fatalf("expected 36-char UUID, got %q", id)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = struct{}{}
	}
}

func TestMarshalJSON(t *testing.T) {
	value := map[string]int{"books": 3}

	t.Run("Compact", func(t *testing.T) {
		data, err := MarshalJSON(value, false)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if string(data) != `{"books":3}` {
			t.Errorf("unexpected output: %s", data)
		}
	})

	t.Run("Pretty", func(t *testing.T) {
		data, err := MarshalJSON(value, true)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if !strings.Contains(string(data), "\n") {
			t.Errorf("expected indented output, got %s", data)
		}
	})

	t.Run("Unmarshalable Value", func(t *testing.T) {
		if _, err := MarshalJSON(make(chan int), false); err == nil {
			t.Error("expected error for channel value")
		}
	})
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)
	if logger == nil {
		t.Fatal("expected logger")
	}

	SetLogLevel(logger, log.DebugLevel)
	child := WithLogger(logger, "component", "build")
	child.Info("hello")

	out := buf.String()
	if !strings.Contains(out, "hello") {
		t.Errorf("expected log output, got %q", out)
	}
	if !strings.Contains(out, "component") {
		t.Errorf("expected bound key in output, got %q", out)
	}
}
