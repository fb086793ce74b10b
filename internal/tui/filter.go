package tui

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// categoryBar is the single-select category row. Index 0 is the
// all-categories sentinel.
type categoryBar struct {
	categories []string
	selected   int
	filterMode bool
	cursor     int
}

func newCategoryBar(categories []string, start string) categoryBar {
	b := categoryBar{categories: categories}
	if i := slices.Index(categories, start); i >= 0 {
		b.selected = i
		b.cursor = i
	}
	return b
}

func (b *categoryBar) current() string {
	if len(b.categories) == 0 {
		return ""
	}
	return b.categories[b.selected]
}

func (b *categoryBar) move(delta int) {
	n := len(b.categories)
	if n == 0 {
		return
	}
	b.cursor = max(0, min(n-1, b.cursor+delta))
}

func (b *categoryBar) selectCursor() {
	if b.cursor < len(b.categories) {
		b.selected = b.cursor
	}
}

func (b *categoryBar) selectIndex(i int) bool {
	if i < 0 || i >= len(b.categories) {
		return false
	}
	b.selected = i
	b.cursor = i
	return true
}

func (b *categoryBar) render(width int) string {
	sep := tabSeparatorStyle.Render(" · ")
	parts := make([]string, 0, len(b.categories))
	for i, c := range b.categories {
		style := tabInactiveStyle
		if i == b.selected {
			style = tabActiveStyle
		}
		label := c
		if b.filterMode && i == b.cursor {
			label = "[" + c + "]"
		}
		parts = append(parts, style.Render(label))
	}

	// Build row with · separators, stopping when we'd exceed width
	var row string
	for i, part := range parts {
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	barStyle := lipgloss.NewStyle().
		Background(colorChipBg).
		Width(width).
		PaddingLeft(1)
	return barStyle.Render(row)
}
