package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/storage"
)

// MenuChoice identifies a main menu entry.
type MenuChoice int

const (
	MenuPlay MenuChoice = iota
	MenuScores
	MenuQuit
)

// MenuItem represents a selectable entry in the menu.
type MenuItem struct {
	Choice MenuChoice
	Title  string
}

var menuItems = []MenuItem{
	{Choice: MenuPlay, Title: "Play"},
	{Choice: MenuScores, Title: "Scores"},
	{Choice: MenuQuit, Title: "Quit"},
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuInfoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuCursor     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	player    string
	records   storage.Records
	balance   int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem
}

// NewMenuModel creates a new menu model. The store is optional and only used
// to show the player's records and wallet.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, player string) MenuModel {
	if player == "" {
		player = storage.DefaultPlayer
	}
	m := MenuModel{
		items:     menuItems,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		player:    player,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	if store != nil {
		//nolint:errcheck // zero values are shown when the store fails
		m.records, _ = store.Best(player)
		//nolint:errcheck // zero values are shown when the store fails
		m.balance, _ = store.Balance(player)
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		selected := m.items[m.cursor]
		if selected.Choice == MenuQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.selected = &selected
		return m, tea.Quit

	case MenuActionScoreboard:
		m.selected = &MenuItem{Choice: MenuScores, Title: "Scores"}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  A R E N A  "), m.width))
	b.WriteString("\n\n")

	info := fmt.Sprintf("%s  |  best %d kills, %d XP  |  %d coins",
		m.player, m.records.Kills, m.records.Experience, m.balance)
	b.WriteString(centerText(menuInfoStyle.Render(info), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuCursor.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(menuInfoStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring printable cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Config core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg, storage.DefaultPlayer)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuQuit, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Selected() == nil {
		return MenuResult{Choice: MenuQuit, Config: cfg}, nil
	}

	return MenuResult{Choice: m.Selected().Choice, Config: m.Config()}, nil
}
