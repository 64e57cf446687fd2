package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tilt2048/internal/registry"
	"github.com/vovakirdan/tilt2048/internal/storage"
)

const (
	minWidthForStats = 90  // Below this the stats panel is hidden
	statsWidth       = 24  // Width of the stats panel
	maxResults       = 100 // Rows loaded per variant
	minWidthForNames = 70  // Below this the player column is dropped
)

var (
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	emptyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Help key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Back, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Next, k.Prev},
		{k.Back, k.Quit, k.Help},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		Next: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("right/tab", "next variant")),
		Prev: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("left", "prev variant")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// variantSummary is the stats panel content for one variant.
type variantSummary struct {
	games    int
	best     int
	average  float64
	bestTile int
}

// ScoreboardModel shows stored results one variant at a time.
type ScoreboardModel struct {
	variants  []registry.GameInfo
	current   int
	store     *storage.Store
	results   []storage.GameResult
	summary   variantSummary
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard opened on the first variant.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants: registry.List(),
		store:    store,
		keys:     DefaultScoreboardKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) showStats() bool {
	return m.width >= minWidthForStats
}

// newTable builds the results table for the current width.
func (m *ScoreboardModel) newTable() table.Model {
	tableWidth := m.width - 4
	if m.showStats() {
		tableWidth -= statsWidth + 4
	}

	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 9},
		{Title: "Tile", Width: 6},
		{Title: "Moves", Width: 6},
		{Title: "Result", Width: 8},
	}
	if tableWidth >= minWidthForNames {
		columns = append(columns, table.Column{Title: "Player", Width: 10})
	}
	columns = append(columns, table.Column{Title: "When", Width: 14})

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads results and stats for the current variant.
func (m *ScoreboardModel) load() {
	m.results = nil
	m.summary = variantSummary{}

	if m.store != nil && len(m.variants) > 0 {
		id := m.variants[m.current].ID
		if results, err := m.store.TopResults(id, maxResults); err == nil {
			m.results = results
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.summary.games = stats.GamesCount
			m.summary.best = stats.HighScore
			m.summary.average = stats.AvgScore
		}
		if tile, err := m.store.BestTile(id); err == nil {
			m.summary.bestTile = tile
		}
	}
	m.fillTable()
}

// outcome describes how a stored game ended.
func outcome(r storage.GameResult) string {
	switch {
	case r.Won:
		return "won"
	case r.Level > 0:
		return fmt.Sprintf("level %d", r.Level)
	default:
		return "over"
	}
}

func (m *ScoreboardModel) fillTable() {
	withPlayer := len(m.table.Columns()) == 7

	rows := make([]table.Row, 0, len(m.results))
	for i, r := range m.results {
		row := table.Row{
			fmt.Sprintf("#%d", i+1),
			humanize.Comma(int64(r.Score)),
			strconv.Itoa(r.MaxTile),
			strconv.Itoa(r.Moves),
			outcome(r),
		}
		if withPlayer {
			player := r.Player
			if player == "" {
				player = "local"
			}
			row = append(row, player)
		}
		rows = append(rows, append(row, humanize.Time(r.CreatedAt)))
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// step moves to the next (+1) or previous (-1) variant, wrapping around.
func (m *ScoreboardModel) step(delta int) {
	if len(m.variants) == 0 {
		return
	}
	m.current = (m.current + delta + len(m.variants)) % len(m.variants)
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.fillTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	body := panelStyle.Render(m.renderTable())
	if m.showStats() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, panelStyle.Width(statsWidth).Render(m.renderStats()), "  ", body)
	}
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, body))

	b.WriteString("\n")
	b.WriteString(hintStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTabs shows every variant, or just the current one when they don't fit.
func (m ScoreboardModel) renderTabs() string {
	if len(m.variants) == 0 {
		return ""
	}

	tabs := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.current {
			tabs[i] = activeTabStyle.Render(v.Title)
		} else {
			tabs[i] = tabStyle.Render(v.Title)
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = activeTabStyle.Render("< " + m.variants[m.current].Title + " >")
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, line)
}

func (m ScoreboardModel) renderStats() string {
	s := m.summary
	lines := []string{
		"Stats",
		strings.Repeat("-", statsWidth-4),
		fmt.Sprintf("Games     %s", humanize.Comma(int64(s.games))),
		fmt.Sprintf("Best      %s", humanize.Comma(int64(s.best))),
		fmt.Sprintf("Average   %s", humanize.Comma(int64(s.average))),
		fmt.Sprintf("Best tile %d", s.bestTile),
	}
	return strings.Join(lines, "\n")
}

func (m ScoreboardModel) renderTable() string {
	if len(m.results) == 0 {
		return emptyStyle.Render("No games recorded yet.\nFinish a game to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
