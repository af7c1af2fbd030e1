package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/games/mines/board"
	"github.com/vovakirdan/tui-mines/internal/registry"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

const (
	statsPanelWidth = 28 // stats box beside the table
	wideLayoutWidth = 76 // below this the stats go under the table
	bestTimesLimit  = 100
)

var (
	accentColor = lipgloss.Color("229")
	mutedColor  = lipgloss.Color("241")
	borderColor = lipgloss.Color("240")
	selectColor = lipgloss.Color("57")
)

// ScoreboardKeyMap defines the key bindings for the best-times screen.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Prev key.Binding
	Next key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next}, {k.Up, k.Down}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns the default bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "prev board"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l/tab", "next board"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// boardTab is one preset on the tab strip.
type boardTab struct {
	ID     string
	Title  string
	Detail string
}

// ScoreboardModel shows the fastest wins and totals per preset.
type ScoreboardModel struct {
	boards  []boardTab
	current int

	store  *storage.Store
	scores []storage.Result
	stats  *storage.GameStats

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel lists every registered preset that the config can
// describe. store may be nil, in which case every board is empty.
func NewScoreboardModel(store *storage.Store, width, height int, mcfg config.MinesConfig) ScoreboardModel {
	var boards []boardTab
	for _, info := range registry.List() {
		d, err := config.ParseDifficulty(info.ID)
		if err != nil {
			continue
		}
		p, err := mcfg.Preset(d)
		if err != nil {
			continue
		}
		boards = append(boards, boardTab{ID: info.ID, Title: p.Title, Detail: p.String()})
	}

	m := ScoreboardModel{
		boards: boards,
		store:  store,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m *ScoreboardModel) wide() bool {
	return m.width >= wideLayoutWidth
}

func (m *ScoreboardModel) newTable() table.Model {
	dateWidth := 18
	if m.wide() {
		// Give the date whatever the stats panel leaves over
		dateWidth = min(max(m.width-statsPanelWidth-30, 12), 24)
	}

	// Title, tabs, stats, help and borders
	height := m.height - 12
	if !m.wide() {
		height -= 6
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Time", Width: 10},
			{Title: "Played", Width: dateWidth},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(accentColor).
		Background(selectColor).
		Bold(false)
	t.SetStyles(s)
	return t
}

// reload fetches the wins and totals of the current board.
func (m *ScoreboardModel) reload() {
	m.scores = nil
	m.stats = nil

	if m.store != nil && len(m.boards) > 0 {
		id := m.boards[m.current].ID
		if scores, err := m.store.BestTimes(id, bestTimesLimit); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.Stats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, r := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			board.FormatSeconds(uint64(r.Seconds)),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) selectBoard(delta int) {
	if len(m.boards) == 0 {
		return
	}
	m.current = (m.current + delta + len(m.boards)) % len(m.boards)
	m.reload()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
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
			m.selectBoard(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.selectBoard(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("BEST TIMES")

	var body string
	if m.wide() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.tablePanel(), "  ", m.statsPanel())
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, m.tablePanel(), m.statsPanel())
	}

	page := lipgloss.JoinVertical(lipgloss.Center,
		"",
		title,
		"",
		m.tabs(),
		"",
		body,
		"",
		lipgloss.NewStyle().Foreground(mutedColor).Render(m.help.View(m.keys)),
	)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, page)
}

// tabs renders the preset strip, collapsing to "< Title >" when the
// strip does not fit.
func (m ScoreboardModel) tabs() string {
	if len(m.boards) == 0 {
		return lipgloss.NewStyle().Foreground(mutedColor).Render("No boards registered")
	}

	active := lipgloss.NewStyle().Bold(true).Foreground(accentColor).Background(selectColor).Padding(0, 1)
	idle := lipgloss.NewStyle().Foreground(mutedColor).Padding(0, 1)

	parts := make([]string, len(m.boards))
	for i, b := range m.boards {
		if i == m.current {
			parts[i] = active.Render(b.Title)
		} else {
			parts[i] = idle.Render(b.Title)
		}
	}
	strip := strings.Join(parts, " ")
	if lipgloss.Width(strip) > m.width-4 {
		strip = active.Render("< " + m.boards[m.current].Title + " >")
	}
	return strip
}

func (m ScoreboardModel) tablePanel() string {
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1)

	if len(m.scores) == 0 {
		empty := lipgloss.NewStyle().Foreground(mutedColor).Italic(true).Padding(1, 2)
		return panel.Render(empty.Render("No wins recorded yet.\nClear this board to set a time!"))
	}
	return panel.Render(m.table.View())
}

func (m ScoreboardModel) statsPanel() string {
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(statsPanelWidth).
		Padding(0, 1)

	lines := []string{lipgloss.NewStyle().Bold(true).Render("Board")}
	if len(m.boards) > 0 {
		lines = append(lines, m.boards[m.current].Detail)
	}
	lines = append(lines, "", m.statsLine())
	if m.stats != nil && m.stats.Wins > 0 {
		lines = append(lines, "Best "+board.FormatSeconds(uint64(m.stats.BestSeconds)))
	}
	if m.stats != nil && !m.stats.LastPlayed.IsZero() {
		lines = append(lines, "Last "+m.stats.LastPlayed.Format("Jan 02 15:04"))
	}
	return panel.Render(strings.Join(lines, "\n"))
}

// statsLine summarises every finished game on the current board.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.Played == 0 {
		return "No games played"
	}
	line := fmt.Sprintf("Played %d, won %d (%.0f%%)", m.stats.Played, m.stats.Wins, m.stats.WinRate()*100)
	if m.stats.Wins > 0 {
		line += "\nAvg " + board.FormatSeconds(uint64(m.stats.AvgSeconds+0.5))
	}
	return line
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the best-times screen. It returns true when the
// player wants the menu back and false when they quit.
func RunScoreboard(store *storage.Store, width, height int, mcfg config.MinesConfig) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height, mcfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
