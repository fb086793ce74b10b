package tui

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yamiarchive/yami/internal/browser"
	"github.com/yamiarchive/yami/internal/catalog"
	"github.com/yamiarchive/yami/internal/query"
	"github.com/yamiarchive/yami/internal/state"
)

type focusPane int

const (
	focusList focusPane = iota
	focusPreview
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeFilter
	modeHelp
	modeBookmarks
)

const credStep = 0.5

type App struct {
	catalog  *catalog.Catalog
	store    *state.Store
	log      *slog.Logger
	articles []catalog.Article
	cursor   int
	focus    focusPane
	mode     mode

	width  int
	height int

	// Sub-components
	searchInput textinput.Model
	categoryBar categoryBar

	// Ephemeral query state; only searchInput holds the text.
	minCred float64

	previewScroll int
	toast         string
	err           error
	unsubscribe   func()
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Catalog        *catalog.Catalog
	Store          *state.Store
	Logger         *slog.Logger
	Query          string
	Category       string
	MinCredibility float64
	// Categories overrides the fixed category bar, sentinel first.
	Categories []string
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "例：モスマン / 八尺様 / 失われた文明"
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 100
	ti.SetValue(opts.Query)

	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	start := opts.Category
	if start == "" {
		start = query.AllCategories
	}
	categories := opts.Categories
	if len(categories) == 0 {
		categories = catalog.Categories()
	}
	if !slices.Contains(categories, start) {
		categories = catalog.PrimaryCategories(opts.Catalog.Articles())
	}

	a := &App{
		catalog:     opts.Catalog,
		store:       opts.Store,
		log:         log,
		searchInput: ti,
		categoryBar: newCategoryBar(categories, start),
		minCred:     clampCred(opts.MinCredibility),
	}
	a.unsubscribe = a.store.Subscribe(a.onStoreEvent)
	a.refilter()
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

// queryOptions snapshots the ephemeral query state.
func (a *App) queryOptions() query.Options {
	return query.Options{
		Text:           a.searchInput.Value(),
		Category:       a.categoryBar.current(),
		MinCredibility: a.minCred,
	}
}

// refilter recomputes the visible list from the catalog or the bookmarks.
func (a *App) refilter() {
	if a.mode == modeBookmarks {
		a.articles = a.catalog.Resolve(a.store.Bookmarks())
	} else {
		a.articles = query.Apply(a.catalog.Articles(), a.queryOptions())
	}
	if a.cursor >= len(a.articles) {
		a.cursor = max(0, len(a.articles)-1)
	}
}

func (a *App) selected() *catalog.Article {
	if len(a.articles) == 0 || a.cursor >= len(a.articles) {
		return nil
	}
	return &a.articles[a.cursor]
}

func (a *App) onStoreEvent(e state.Event) {
	switch e.Kind {
	case state.BookmarkChanged:
		if e.Bookmarked {
			a.toast = "保存しました"
		} else {
			a.toast = "保存を解除しました"
		}
		a.log.Info("bookmark.toggled", "id", e.ID, "bookmarked", e.Bookmarked)
	case state.BeliefChanged:
		a.toast = "投票: " + e.Vote.Label()
		a.log.Info("belief.set", "id", e.ID, "vote", int(e.Vote))
	}
	if err := a.store.LastSaveError(); err != nil {
		a.toast += "（保存に失敗しました）"
	}
	if a.mode == modeBookmarks {
		a.refilter()
	}
}

func openURLCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.Open(url); err != nil {
			return openErrMsg{err: err}
		}
		return nil
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error and toast on any keypress
		a.err = nil
		a.toast = ""
		return a.handleKey(msg)

	case openErrMsg:
		a.err = msg.err
		a.log.Warn("browser.open_failed", "err", msg.err)
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a.quit()
	}

	switch a.mode {
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeFilter:
		return a.handleFilterKey(msg)
	case modeHelp:
		if msg.String() == "?" || msg.String() == "esc" || msg.String() == "q" {
			a.mode = modeNormal
		}
		return a, nil
	}

	if cmd, handled := a.handleArticleKey(msg); handled {
		return a, cmd
	}

	switch msg.String() {
	case "q":
		if a.mode == modeBookmarks {
			return a.leaveBookmarks()
		}
		return a.quit()
	case "b":
		if a.mode == modeBookmarks {
			return a.leaveBookmarks()
		}
		a.mode = modeBookmarks
		a.cursor = 0
		a.refilter()
		return a, nil
	case "esc":
		if a.mode == modeBookmarks {
			return a.leaveBookmarks()
		}
		return a, nil
	}

	if a.mode == modeBookmarks {
		return a, nil
	}

	switch msg.String() {
	case "/":
		a.mode = modeSearch
		a.cursor = 0
		return a, a.searchInput.Focus()
	case "f":
		a.mode = modeFilter
		a.categoryBar.filterMode = true
		return a, nil
	case "+", "=", "]":
		a.setMinCred(a.minCred + credStep)
		return a, nil
	case "-", "[":
		a.setMinCred(a.minCred - credStep)
		return a, nil
	case "0":
		a.setMinCred(0)
		return a, nil
	case "?":
		a.mode = modeHelp
		return a, nil
	}
	return a, nil
}

// handleArticleKey covers navigation and the per-article actions shared by
// the browse and bookmark views.
func (a *App) handleArticleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "j", "down":
		if a.focus == focusList && a.cursor < len(a.articles)-1 {
			a.cursor++
			a.previewScroll = 0
		} else if a.focus == focusPreview {
			a.previewScroll++
		}
		return nil, true
	case "k", "up":
		if a.focus == focusList && a.cursor > 0 {
			a.cursor--
			a.previewScroll = 0
		} else if a.focus == focusPreview && a.previewScroll > 0 {
			a.previewScroll--
		}
		return nil, true
	case "tab":
		if a.focus == focusList {
			a.focus = focusPreview
		} else {
			a.focus = focusList
		}
		return nil, true
	case "s":
		if art := a.selected(); art != nil {
			a.store.ToggleBookmark(art.ID)
		}
		return nil, true
	case "y":
		if art := a.selected(); art != nil {
			a.store.SetBelief(art.ID, state.Believe)
		}
		return nil, true
	case "n":
		if art := a.selected(); art != nil {
			a.store.SetBelief(art.ID, state.Disbelieve)
		}
		return nil, true
	case "o", "enter":
		if art := a.selected(); art != nil {
			if url := firstOpenableSource(*art); url != "" {
				return openURLCmd(url), true
			}
			a.toast = "開ける関連資料がありません"
		}
		return nil, true
	case "i":
		if art := a.selected(); art != nil && art.Image != "" {
			return openURLCmd(art.Image), true
		}
		return nil, true
	}
	return nil, false
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeNormal
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		a.refilter()
		return a, nil
	case "enter":
		a.mode = modeNormal
		a.searchInput.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	// Filtering is in-memory, so the list follows every keystroke.
	a.refilter()
	return a, cmd
}

func (a *App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "f":
		a.mode = modeNormal
		a.categoryBar.filterMode = false
		return a, nil
	case "left", "h":
		a.categoryBar.move(-1)
		return a, nil
	case "right", "l":
		a.categoryBar.move(1)
		return a, nil
	case " ", "enter":
		a.categoryBar.selectCursor()
		a.cursor = 0
		a.refilter()
		return a, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if a.categoryBar.selectIndex(int(msg.String()[0] - '1')) {
			a.cursor = 0
			a.refilter()
		}
		return a, nil
	}
	return a, nil
}

func (a *App) leaveBookmarks() (tea.Model, tea.Cmd) {
	a.mode = modeNormal
	a.cursor = 0
	a.refilter()
	return a, nil
}

func (a *App) quit() (tea.Model, tea.Cmd) {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	return a, tea.Quit
}

// setMinCred is the input layer's clamp; the query engine compares as given.
func (a *App) setMinCred(v float64) {
	a.minCred = clampCred(v)
	a.cursor = 0
	a.refilter()
}

func clampCred(v float64) float64 {
	return max(0, min(5, v))
}

func firstOpenableSource(art catalog.Article) string {
	for _, s := range art.Sources {
		if browser.Openable(s.URL) {
			return s.URL
		}
	}
	return ""
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorBlood).Render("  闇市アーカイブ")
	}

	if a.mode == modeHelp {
		return a.renderHelp()
	}

	headerHeight := 1
	filterHeight := 1
	statusHeight := 1
	contentHeight := max(3, a.height-headerHeight-filterHeight-statusHeight-4) // borders

	listWidth := int(float64(a.width) * 0.38)
	previewWidth := a.width - listWidth - 1

	header := headerStyle.Render("闇市アーカイブ") + headerSubStyle.Render("  都市伝説・オカルト百貨 — 信憑性★表示つき")

	filter := a.categoryBar.render(a.width)
	switch a.mode {
	case modeSearch:
		filter = a.searchInput.View()
	case modeBookmarks:
		filter = tabActiveStyle.Render("保存した記事")
	}

	empty := "該当する記事はありません"
	if a.mode == modeBookmarks {
		empty = "まだありません。"
	}
	listContent := renderList(a.articles, a.cursor, a.store.IsBookmarked, contentHeight, listWidth-4, empty)

	listStyle := paneStyle(a.focus == focusList)
	previewStyle := paneStyle(a.focus == focusPreview)
	listPane := listStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)

	view := articleView{article: a.selected()}
	if view.article != nil {
		view.vote, view.voted = a.store.Belief(view.article.ID)
		view.saved = a.store.IsBookmarked(view.article.ID)
	}
	previewContent := renderPreview(view, previewWidth-4, contentHeight, a.previewScroll)
	previewPane := previewStyle.Width(previewWidth - 2).Height(contentHeight).Render(previewContent)

	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, previewPane)

	bookmarks, _, _ := a.store.Counts()
	status := renderStatusBar(statusInfo{
		shown:        len(a.articles),
		total:        a.catalog.Len(),
		category:     a.categoryBar.current(),
		minCred:      a.minCred,
		bookmarks:    bookmarks,
		searching:    a.mode == modeSearch,
		bookmarkView: a.mode == modeBookmarks,
	}, a.width)

	switch {
	case a.err != nil:
		status = errorStyle.Render(a.err.Error())
	case a.toast != "":
		status = statusBarStyle.Width(a.width).Render(a.toast)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, filter, content, status)
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorBlood).Bold(true).Render("闇市アーカイブ")
	dim := helpDimStyle

	help := title + dim.Render(" — Keyboard Shortcuts") + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓     Move through articles\n" +
		"  tab           Switch focus between list and detail\n\n" +
		dim.Render("Filters") + "\n" +
		"  /             Search title, lead, tags, region, era\n" +
		"  f             Category mode (←/→ move, enter select, 1-9 jump)\n" +
		"  +/-           Raise/lower minimum credibility by 0.5★\n" +
		"  0             Reset minimum credibility\n\n" +
		dim.Render("Article") + "\n" +
		"  s             Save / unsave\n" +
		"  y / n         信じる / 信じない\n" +
		"  o, enter      Open first source link\n" +
		"  i             Open image\n" +
		"  b             Saved articles\n\n" +
		dim.Render("General") + "\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c    Quit"

	card := helpCardStyle.Render(help)
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
