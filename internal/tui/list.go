package tui

import (
	"fmt"
	"strings"

	"github.com/yamiarchive/yami/internal/catalog"
)

func renderListItem(a catalog.Article, selected, saved bool, width int) string {
	if width < 10 {
		width = 30
	}

	mark := "  "
	if saved {
		mark = savedMarkStyle.Render("● ")
	}

	var title string
	if selected {
		title = itemSelectedStyle.Render("> " + truncateStr(a.Title, width-6))
	} else {
		title = itemTitleStyle.Render("  " + truncateStr(a.Title, width-6))
	}

	meta := "  " + mark + itemMetaStyle.Render(fmt.Sprintf("%s · %s · ★%.1f", a.Region, a.Era, a.Credibility))

	return title + "\n" + meta
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// visibleRange returns the [start, end) window of n items that keeps cursor
// on screen when visible items fit.
func visibleRange(n, cursor, visible int) (int, int) {
	if visible < 1 {
		visible = 1
	}
	start := 0
	if cursor >= visible {
		start = cursor - visible + 1
	}
	end := start + visible
	if end > n {
		end = n
		start = max(0, end-visible)
	}
	return start, end
}

func renderList(articles []catalog.Article, cursor int, saved func(string) bool, height, width int, empty string) string {
	if len(articles) == 0 {
		return centerText(empty, width, height)
	}

	// Each item is 2 lines + 1 blank line = 3 lines
	start, end := visibleRange(len(articles), cursor, height/3)

	var b strings.Builder
	for i := start; i < end; i++ {
		a := articles[i]
		b.WriteString(renderListItem(a, i == cursor, saved(a.ID), width))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func centerText(s string, width, height int) string {
	pad := max(0, (width-len([]rune(s)))/2)
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}
