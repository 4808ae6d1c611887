package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "mines.log")

	l, err := New(Options{File: path, Level: "debug"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	l.Debug("board ready", "width", 9)
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	out := string(data)
	for _, want := range []string{"board ready", "width=9", "session=" + l.Session, "mines"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
}

func TestNewLevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mines.log")

	l, err := New(Options{File: path, Level: "warn"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	l.Info("hidden")
	l.Warn("shown")
	_ = l.Close()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") {
		t.Error("info record should be filtered at warn level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("warn record should be written")
	}
}

func TestNewBadLevel(t *testing.T) {
	if _, err := New(Options{Level: "chatty"}); err == nil {
		t.Error("New with an unknown level should fail")
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("nothing to see")
	if err := l.Close(); err != nil {
		t.Errorf("Close on a discard logger = %v, want nil", err)
	}
}

func TestSessionsDiffer(t *testing.T) {
	a, _ := New(Options{})
	b, _ := New(Options{})
	if a.Session == "" || a.Session == b.Session {
		t.Errorf("sessions %q and %q should be distinct and non-empty", a.Session, b.Session)
	}
}
