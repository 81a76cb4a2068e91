package script

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tickerlab/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeScript creates a shell script in dir and returns its path. The
// runner is pointed at /bin/sh so tests don't depend on python.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestRunSuccessCapturesStdout(t *testing.T) {
	dir := t.TempDir()
	predict := writeScript(t, dir, "model.sh", "echo UP 1.23%\n")

	r := NewRunner(config.Scripts{Interpreter: "/bin/sh", Predict: predict}, testLogger())
	out := r.Predict()

	if out.Status != StatusSuccess {
		t.Fatalf("Status = %v, want StatusSuccess (detail %q)", out.Status, out.Detail)
	}
	if out.Detail != "UP 1.23%" {
		t.Errorf("Detail = %q, want %q", out.Detail, "UP 1.23%")
	}
}

func TestRunScriptFailureCapturesStderr(t *testing.T) {
	dir := t.TempDir()
	download := writeScript(t, dir, "download.sh", "echo bad ticker >&2\nexit 1\n")

	r := NewRunner(config.Scripts{Interpreter: "/bin/sh", Download: download}, testLogger())
	out := r.Download("NOPE")

	if out.Status != StatusScriptFailure {
		t.Fatalf("Status = %v, want StatusScriptFailure", out.Status)
	}
	if !strings.Contains(out.Detail, "bad ticker") {
		t.Errorf("Detail = %q, want it to contain %q", out.Detail, "bad ticker")
	}
}

func TestRunPassesArguments(t *testing.T) {
	dir := t.TempDir()
	download := writeScript(t, dir, "download.sh", `echo "got $1"`+"\n")

	r := NewRunner(config.Scripts{Interpreter: "/bin/sh", Download: download}, testLogger())
	out := r.Download("AAPL")

	if out.Status != StatusSuccess {
		t.Fatalf("Status = %v, want StatusSuccess (detail %q)", out.Status, out.Detail)
	}
	if out.Detail != "got AAPL" {
		t.Errorf("Detail = %q, want %q", out.Detail, "got AAPL")
	}
}

func TestRunLaunchFailure(t *testing.T) {
	r := NewRunner(config.Scripts{
		Interpreter: filepath.Join(t.TempDir(), "no-such-interpreter"),
		Predict:     "model.py",
	}, testLogger())
	out := r.Predict()

	if out.Status != StatusLaunchFailure {
		t.Fatalf("Status = %v, want StatusLaunchFailure", out.Status)
	}
	if out.Detail == "" {
		t.Error("Detail is empty, want a launch error description")
	}
}
