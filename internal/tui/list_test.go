package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 8, "hello..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"", 5, ""},
		{"test", 0, ""},
	}
	for _, tt := range tests {
		got := truncateStr(tt.input, tt.n)
		if got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestTruncateStrUTF8(t *testing.T) {
	got := truncateStr("アトランティス失われた帝国", 5)
	want := "アト..."
	if got != want {
		t.Errorf("truncateStr(Japanese, 5) = %q, want %q", got, want)
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		n, cursor, visible int
		start, end         int
	}{
		{4, 0, 10, 0, 4},
		{10, 0, 3, 0, 3},
		{10, 5, 3, 3, 6},
		{10, 9, 3, 7, 10},
		{2, 1, 0, 1, 2},
	}
	for _, tt := range tests {
		start, end := visibleRange(tt.n, tt.cursor, tt.visible)
		if start != tt.start || end != tt.end {
			t.Errorf("visibleRange(%d, %d, %d) = [%d, %d), want [%d, %d)",
				tt.n, tt.cursor, tt.visible, start, end, tt.start, tt.end)
		}
	}
}

func TestStarBar(t *testing.T) {
	tests := []struct {
		value  float64
		filled int
	}{
		{0, 0},
		{1, 1},
		{2.5, 2},
		{3, 3},
		{5, 5},
	}
	for _, tt := range tests {
		got := starBar(tt.value, 5)
		if n := strings.Count(got, "★"); n != tt.filled {
			t.Errorf("starBar(%v) filled %d stars, want %d", tt.value, n, tt.filled)
		}
		if n := strings.Count(got, "☆"); n != 5-tt.filled {
			t.Errorf("starBar(%v) left %d empty stars, want %d", tt.value, n, 5-tt.filled)
		}
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("one two three four", 9)
	if got != "one two\nthree\nfour" {
		t.Errorf("wrapText words = %q", got)
	}

	jp := wrapText("地中海・大西洋諸説", 8)
	for _, line := range strings.Split(jp, "\n") {
		if lipgloss.Width(line) > 8 {
			t.Errorf("line %q wider than 8 cells", line)
		}
	}
	if strings.ReplaceAll(jp, "\n", "") != "地中海・大西洋諸説" {
		t.Errorf("wrapText lost runes: %q", jp)
	}
}

func TestCategoryBar(t *testing.T) {
	b := newCategoryBar([]string{"すべて", "怪談", "神話"}, "神話")
	if b.current() != "神話" {
		t.Fatalf("expected start category 神話, got %s", b.current())
	}

	b.move(-5)
	if b.cursor != 0 {
		t.Errorf("expected cursor clamped to 0, got %d", b.cursor)
	}
	b.move(1)
	b.selectCursor()
	if b.current() != "怪談" {
		t.Errorf("expected 怪談 after select, got %s", b.current())
	}
	if b.selectIndex(7) {
		t.Error("expected out-of-range index to be rejected")
	}

	unknown := newCategoryBar([]string{"すべて", "怪談"}, "宇宙人")
	if unknown.current() != "すべて" {
		t.Errorf("expected unknown start to fall back to sentinel, got %s", unknown.current())
	}
}
