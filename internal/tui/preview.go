package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yamiarchive/yami/internal/catalog"
	"github.com/yamiarchive/yami/internal/state"
)

type articleView struct {
	article *catalog.Article
	vote    state.Vote
	voted   bool
	saved   bool
}

func renderPreview(v articleView, width, height, scroll int) string {
	if v.article == nil {
		return centerText("記事を選択してください", width, height)
	}
	a := v.article

	contentWidth := max(10, width-2)

	title := previewTitleStyle.Width(contentWidth).Render(a.Title)
	lead := previewLeadStyle.Width(contentWidth).Render(wrapText(a.Lead, contentWidth))
	body := previewBodyStyle.Width(contentWidth).Render(wrapText(a.Body, contentWidth))

	cred := previewLabelStyle.Render("信憑性 ") + starBar(a.Credibility, 5) +
		previewLabelStyle.Render(fmt.Sprintf(" %.1f", a.Credibility))
	where := previewLabelStyle.Render("地域: ") + badgeStyle.Render(a.Region) +
		previewLabelStyle.Render("  時代: ") + badgeStyle.Render(a.Era)
	danger := previewLabelStyle.Render("危険度: ") + catalog.DangerLabel(float64(a.Danger))

	tags := make([]string, len(a.Tags))
	for i, t := range a.Tags {
		tags[i] = badgeStyle.Render(t)
	}

	lines := []string{title, lead, "", body, "", cred, where, danger, strings.Join(tags, " ")}

	if len(a.Sources) > 0 {
		lines = append(lines, "", previewLabelStyle.Render("関連資料"))
		for _, s := range a.Sources {
			lines = append(lines, "  • "+s.Label+previewLabelStyle.Render(" "+s.URL))
		}
	}

	lines = append(lines, "", renderVoteRow(v))

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)

	// Apply scroll offset
	out := strings.Split(content, "\n")
	if scroll > 0 && scroll < len(out) {
		out = out[scroll:]
	}

	// Pad to fill height
	if len(out) < height {
		out = append(out, make([]string, height-len(out))...)
	} else if len(out) > height {
		out = out[:height]
	}
	return strings.Join(out, "\n")
}

func renderVoteRow(v articleView) string {
	believe, disbelieve := voteInactiveStyle, voteInactiveStyle
	if v.voted && v.vote == state.Believe {
		believe = voteActiveStyle
	}
	if v.voted && v.vote == state.Disbelieve {
		disbelieve = voteActiveStyle
	}
	save := voteInactiveStyle.Render("保存")
	if v.saved {
		save = voteActiveStyle.Render("保存済")
	}
	return believe.Render("y 信じる") + " " + disbelieve.Render("n 信じない") + " " + save
}

// starBar renders n stars, filling star i when value >= i.
func starBar(value float64, n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		if value >= float64(i) {
			b.WriteString(starOnStyle.Render("★"))
		} else {
			b.WriteString(starOffStyle.Render("☆"))
		}
	}
	return b.String()
}

// wrapText breaks s into lines of at most width cells. Words longer than a
// line, which is every run of Japanese text, are split by rune.
func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	var lines []string
	var line strings.Builder
	lineW := 0

	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineW = 0
	}

	for _, word := range strings.Fields(s) {
		ww := lipgloss.Width(word)
		if lineW > 0 && lineW+1+ww <= width {
			line.WriteString(" ")
			line.WriteString(word)
			lineW += 1 + ww
			continue
		}
		if lineW > 0 {
			flush()
		}
		for _, r := range word {
			rw := lipgloss.Width(string(r))
			if lineW+rw > width && lineW > 0 {
				flush()
			}
			line.WriteRune(r)
			lineW += rw
		}
	}
	if lineW > 0 {
		flush()
	}
	return strings.Join(lines, "\n")
}
