package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-arena/internal/games/survival"
)

// ChooserKeyMap defines the key bindings for the level-up chooser.
type ChooserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Pick   key.Binding
	Direct key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ChooserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Pick, k.Direct, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ChooserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Pick, k.Direct}, {k.Quit}}
}

// DefaultChooserKeyMap returns default key bindings.
func DefaultChooserKeyMap() ChooserKeyMap {
	return ChooserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up/w", "prev"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down/s", "next"),
		),
		Pick: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "choose"),
		),
		Direct: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "choose directly"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

var chooserBox = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("63")).
	Padding(1, 2)

var (
	chooserTitle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	chooserCursor   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	chooserPremium  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	chooserAdmin    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	chooserDimmed   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	chooserErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// chooser presents an ability offer and forwards the pick to the game.
type chooser struct {
	offer     []survival.Ability
	milestone int
	cursor    int
	message   string
	keys      ChooserKeyMap
	help      help.Model
}

func newChooser(offer []survival.Ability, milestone int) chooser {
	return chooser{
		offer:     offer,
		milestone: milestone,
		keys:      DefaultChooserKeyMap(),
		help:      help.New(),
	}
}

// active reports whether an offer is waiting for a choice.
func (c chooser) active() bool {
	return len(c.offer) > 0
}

// update handles a key while the offer is open. It returns the updated
// chooser and whether the game accepted a choice.
func (c chooser) update(msg tea.KeyMsg, game *survival.Game) (chooser, bool) {
	pick := -1
	switch {
	case key.Matches(msg, c.keys.Up):
		c.cursor = (c.cursor - 1 + len(c.offer)) % len(c.offer)
	case key.Matches(msg, c.keys.Down):
		c.cursor = (c.cursor + 1) % len(c.offer)
	case key.Matches(msg, c.keys.Pick):
		pick = c.cursor
	case key.Matches(msg, c.keys.Direct):
		pick = int(msg.String()[0] - '1')
	}

	if pick < 0 || pick >= len(c.offer) {
		return c, false
	}

	err := game.Choose(c.offer[pick])
	switch {
	case err == nil:
		return chooser{}, true
	case errors.Is(err, survival.ErrInsufficientCurrency):
		c.cursor = pick
		c.message = fmt.Sprintf("Not enough coins: %s costs more than %d", c.offer[pick].Info().Name, game.Currency())
	default:
		c.message = err.Error()
	}
	return c, false
}

// view renders the chooser panel centered on a width x height area.
func (c chooser) view(game *survival.Game, premiumCost, width, height int) string {
	var b strings.Builder
	b.WriteString(chooserTitle.Render(fmt.Sprintf("LEVEL UP  -  %d XP", c.milestone)))
	b.WriteString("\n")
	b.WriteString(chooserDimmed.Render(fmt.Sprintf("Coins: %d", game.Currency())))
	b.WriteString("\n\n")

	for i, a := range c.offer {
		info := a.Info()
		level := game.Level(a)

		label := fmt.Sprintf("%d. %-16s Lv %d -> %d", i+1, info.Name, level, level+1)
		switch info.Tier {
		case survival.TierPremium:
			label += chooserPremium.Render(fmt.Sprintf("  [%d coins]", premiumCost))
		case survival.TierRestricted:
			label += chooserAdmin.Render("  [admin]")
		}

		if i == c.cursor {
			b.WriteString(chooserCursor.Render("> " + label))
		} else {
			b.WriteString("  " + label)
		}
		b.WriteString("\n")
		b.WriteString(chooserDimmed.Render("     " + info.Description))
		b.WriteString("\n")
	}

	if c.message != "" {
		b.WriteString("\n")
		b.WriteString(chooserErrStyle.Render(c.message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(c.help.View(c.keys))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, chooserBox.Render(b.String()))
}
