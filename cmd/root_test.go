package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// runCmd executes the root command against a throwaway config and returns
// stdout. Flag values are reset first since cobra keeps them between runs.
func runCmd(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func writeTestConfig(t *testing.T, backend string) string {
	t.Helper()
	t.Setenv("YAMI_STORAGE_BACKEND", "")
	t.Setenv("YAMI_STORAGE_PATH", "")
	t.Setenv("YAMI_CATALOG", "")

	dir := t.TempDir()
	name := "yami.db"
	if backend == "file" {
		name = "state.json"
	}
	cfg := "storage:\n" +
		"  backend: " + backend + "\n" +
		"  path: " + filepath.Join(dir, name) + "\n" +
		"log:\n" +
		"  dir: " + filepath.Join(dir, "logs") + "\n"

	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1 << 20, "1.0 MB"},
		{5*(1<<20) + 1<<19, "5.5 MB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestListCommand(t *testing.T) {
	cfg := writeTestConfig(t, "file")

	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{"all", []string{"list"}, []string{"mothman", "hachishaku", "kukisake", "atlantis"}, nil},
		{"text", []string{"list", "-q", "八尺"}, []string{"hachishaku"}, []string{"mothman", "kukisake", "atlantis"}},
		{"credibility", []string{"list", "-m", "3"}, []string{"kukisake"}, []string{"mothman", "hachishaku", "atlantis"}},
		{"category", []string{"list", "-c", "未確認生物"}, []string{"mothman"}, []string{"hachishaku", "kukisake", "atlantis"}},
		{"none", []string{"list", "-q", "zzz"}, []string{"No articles match."}, []string{"mothman"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCmd(t, cfg, tt.args...)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out, w) {
					t.Errorf("output should not contain %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestShowCommand(t *testing.T) {
	cfg := writeTestConfig(t, "file")

	out, err := runCmd(t, cfg, "show", "kukisake")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	for _, w := range []string{"口裂け女", "credibility: 3.0/5", "vote: 未投票"} {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}

	if _, err := runCmd(t, cfg, "show", "nope"); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestBookmarkAndVotePersist(t *testing.T) {
	for _, backend := range []string{"file", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			cfg := writeTestConfig(t, backend)

			if _, err := runCmd(t, cfg, "bookmark", "mothman"); err != nil {
				t.Fatalf("bookmark: %v", err)
			}
			if _, err := runCmd(t, cfg, "bookmark", "atlantis"); err != nil {
				t.Fatalf("bookmark: %v", err)
			}
			if _, err := runCmd(t, cfg, "vote", "mothman", "believe"); err != nil {
				t.Fatalf("vote: %v", err)
			}

			out, err := runCmd(t, cfg, "bookmarks")
			if err != nil {
				t.Fatalf("bookmarks: %v", err)
			}
			mi, ai := strings.Index(out, "mothman"), strings.Index(out, "atlantis")
			if mi < 0 || ai < 0 || mi > ai {
				t.Errorf("expected mothman before atlantis:\n%s", out)
			}

			out, err = runCmd(t, cfg, "show", "mothman")
			if err != nil {
				t.Fatalf("show: %v", err)
			}
			if !strings.Contains(out, "saved: true") || !strings.Contains(out, "vote: 信じる") {
				t.Errorf("state not persisted:\n%s", out)
			}

			// Toggling again removes it.
			out, err = runCmd(t, cfg, "bookmark", "mothman")
			if err != nil {
				t.Fatalf("bookmark: %v", err)
			}
			if !strings.HasPrefix(out, "Removed mothman") {
				t.Errorf("got %q", out)
			}

			out, err = runCmd(t, cfg, "stats")
			if err != nil {
				t.Fatalf("stats: %v", err)
			}
			for _, w := range []string{"Articles: 4", "Saved: 1", "Votes: 1 believe, 0 disbelieve", "Storage: " + backend} {
				if !strings.Contains(out, w) {
					t.Errorf("stats missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestBookmarkRemovesStaleID(t *testing.T) {
	cfg := writeTestConfig(t, "file")
	statePath := filepath.Join(filepath.Dir(cfg), "state.json")
	if err := os.WriteFile(statePath, []byte(`{"bookmarks":["ghost","mothman"]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCmd(t, cfg, "bookmark", "ghost")
	if err != nil {
		t.Fatalf("bookmark ghost: %v", err)
	}
	if !strings.HasPrefix(out, "Removed ghost") {
		t.Errorf("got %q", out)
	}

	data, err := os.ReadFile(statePath)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "ghost") {
		t.Errorf("stale id still stored: %s", data)
	}
	if !strings.Contains(string(data), "mothman") {
		t.Errorf("live bookmark lost: %s", data)
	}

	// An id that is neither in the catalog nor saved is still rejected.
	if _, err := runCmd(t, cfg, "bookmark", "ghost"); err == nil {
		t.Error("expected error for unknown, unsaved id")
	}
}

func TestCategoriesFromUserCatalog(t *testing.T) {
	cfg := writeTestConfig(t, "file")
	dir := filepath.Dir(cfg)

	userCatalog := `articles:
  - id: kappa
    title: 河童
    lead: 川に棲む。
    body: 胡瓜を好む。
    tags: [妖怪, 民俗]
    credibility: 1
    danger: 2
  - id: tsuchinoko
    title: ツチノコ
    lead: 幻の蛇。
    body: 懸賞金がかかる。
    tags: [未確認生物]
    credibility: 1.5
    danger: 1
`
	catPath := filepath.Join(dir, "user_catalog.yaml")
	if err := os.WriteFile(catPath, []byte(userCatalog), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("YAMI_CATALOG", catPath)

	out, err := runCmd(t, cfg, "categories")
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	want := "すべて\t2\n妖怪\t1\n未確認生物\t1\n"
	if out != want {
		t.Errorf("categories = %q, want %q", out, want)
	}
}

func TestVoteCommandErrors(t *testing.T) {
	cfg := writeTestConfig(t, "file")

	if _, err := runCmd(t, cfg, "vote", "mothman", "maybe"); err == nil {
		t.Error("expected error for unknown stance")
	}
	if _, err := runCmd(t, cfg, "vote", "nope", "believe"); err == nil {
		t.Error("expected error for unknown id")
	}

	out, err := runCmd(t, cfg, "vote", "--", "hachishaku", "-1")
	if err != nil {
		t.Fatalf("vote -1: %v", err)
	}
	if !strings.Contains(out, "信じない") {
		t.Errorf("got %q", out)
	}
}

func TestCategoriesCommand(t *testing.T) {
	cfg := writeTestConfig(t, "file")

	out, err := runCmd(t, cfg, "categories")
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	for _, w := range []string{"すべて\t4", "未確認生物\t1", "神話\t1"} {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
}

func TestStorageFallback(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("YAMI_STORAGE_BACKEND", "")
	t.Setenv("YAMI_STORAGE_PATH", "")
	t.Setenv("YAMI_CATALOG", "")

	// A regular file where the storage directory should be.
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := "storage:\n  backend: sqlite\n  path: " + filepath.Join(blocker, "yami.db") + "\n" +
		"log:\n  dir: " + filepath.Join(dir, "logs") + "\n"
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCmd(t, cfgPath, "stats")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if !strings.Contains(out, "Storage: memory (fallback)") {
		t.Errorf("expected memory fallback:\n%s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	SetVersionInfo("1.2.3", "abc", "today")
	t.Cleanup(func() { SetVersionInfo("dev", "none", "unknown") })

	out, err := runCmd(t, writeTestConfig(t, "memory"), "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "yami 1.2.3 (commit: abc") {
		t.Errorf("got %q", out)
	}
}
