package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type statusInfo struct {
	shown, total int
	category     string
	minCred      float64
	bookmarks    int
	searching    bool
	bookmarkView bool
}

func renderStatusBar(s statusInfo, width int) string {
	left := fmt.Sprintf(" %d/%d 件", s.shown, s.total)
	if s.category != "" {
		left += " · " + s.category
	}
	left += fmt.Sprintf(" · ★%.1f 以上 · 保存 %d", s.minCred, s.bookmarks)

	right := " / search  f filter  +/- ★  s save  y/n vote  b saved  ? help "
	switch {
	case s.searching:
		right = " esc cancel  enter done "
	case s.bookmarkView:
		left = fmt.Sprintf(" 保存した記事 %d 件", s.shown)
		right = " s unsave  y/n vote  b back  q quit "
	}

	gap := max(0, width-lipgloss.Width(left)-lipgloss.Width(right))
	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
