package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupWritesJSONLines(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state", "yami")
	cleanup, err := Setup(Config{Dir: dir})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if err := IsReady(); err != nil {
		t.Fatalf("IsReady: %v", err)
	}

	L().Info("bookmark.toggled", "id", "atlantis")
	L().Debug("hidden.at.info")
	path := Path()
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d:\n%s", len(lines), data)
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if rec["msg"] != "bookmark.toggled" || rec["id"] != "atlantis" {
		t.Errorf("unexpected record: %v", rec)
	}
}

func TestCleanupRestoresDiscard(t *testing.T) {
	cleanup, err := Setup(Config{Dir: t.TempDir(), Debug: true})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	cleanup()

	if IsReady() == nil {
		t.Error("expected logger not ready after cleanup")
	}
	if Path() != "" {
		t.Errorf("expected empty path after cleanup, got %q", Path())
	}
	L().Info("dropped")
}
