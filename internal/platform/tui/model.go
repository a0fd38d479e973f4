package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/games/survival"
	"github.com/vovakirdan/tui-arena/internal/storage"
)

// maxFrame caps the simulated time of a single tick so a stalled terminal
// does not teleport enemies.
const maxFrame = 100 * time.Millisecond

// Options configures a game model.
type Options struct {
	Arena   config.ArenaConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // optional
	Logger  *log.Logger    // optional
	Player  string         // wallet and runs owner; defaults to storage.DefaultPlayer
}

// Model is the Bubble Tea model for running the arena.
type Model struct {
	game       *survival.Game
	arena      config.ArenaConfig
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	player     string
	keyMapper  *KeyMapper
	input      *HeldInput
	chooser    chooser
	gameState  core.GameState
	records    storage.Records
	newRecord  bool
	lastTick   time.Time
	embedded   bool // owned by a session; back returns to its menu
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model with a fresh run.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := opts.Player
	if player == "" {
		player = storage.DefaultPlayer
	}

	m := Model{
		game:      survival.New(opts.Arena, cfg),
		arena:     opts.Arena,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     opts.Store,
		logger:    logger,
		config:    cfg,
		player:    player,
		keyMapper: NewKeyMapper(),
		input:     NewHeldInput(),
	}

	if m.store != nil {
		if balance, err := m.store.Balance(player); err != nil {
			logger.Error("cannot load wallet", "player", player, "err", err)
		} else {
			m.game.SetCurrency(balance)
		}
		if rec, err := m.store.Best(player); err != nil {
			logger.Error("cannot load records", "player", player, "err", err)
		} else {
			m.records = rec
		}
	}

	return m
}

// Init starts the tick loop. The run itself waits in the idle phase.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.input.Point(msg.X, msg.Y, m.screen.Width(), m.screen.Height())
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.chooser.active() {
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			m.quitting = true
			return m, tea.Quit
		}
		var chosen bool
		offer := m.chooser.offer
		if m.chooser, chosen = m.chooser.update(msg, m.game); chosen {
			m.logger.Info("ability chosen", "offer", offer, "levels", m.game.Levels())
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack {
		switch m.game.Phase() {
		case survival.PhaseRunning:
			action = core.ActionPause
		default:
			m.backToMenu = true
			if !m.embedded {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	m.input.Press(action, time.Now())
	return m, nil
}

// handleResize keeps the run going and only moves the camera viewport.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.SetViewport(m.config.ViewportPixels())
	return m, nil
}

// handleTick advances the simulation by the wall time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := time.Second / time.Duration(m.config.TickRate)
	if !m.lastTick.IsZero() {
		elapsed = min(now.Sub(m.lastTick), maxFrame)
	}
	m.lastTick = now

	frame := m.input.Frame(now)
	if frame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.newRecord = false
		m.logger.Info("run restarted", "player", m.player)
	}

	result := m.game.Step(float64(elapsed)/float64(time.Millisecond), frame)
	m.gameState = result.State
	m.handleEvents(result.Events)

	return m, tickCmd(m.config.TickRate)
}

// handleEvents forwards simulation events to the log, the store and the
// chooser.
func (m *Model) handleEvents(events []survival.Event) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case survival.SelectionEvent:
			m.input.Release()
			m.chooser = newChooser(ev.Offer, ev.Milestone)
			m.logger.Info("level up", "milestone", ev.Milestone, "offer", ev.Offer)

		case survival.KillsEvent:
			m.logger.Debug("kills", "delta", ev.Delta, "total", ev.Total)

		case survival.ExperienceEvent:
			m.logger.Debug("experience", "delta", ev.Delta, "total", ev.Total)

		case survival.DefeatedEvent:
			m.finishRun(ev)

		case survival.CurrencyEvent:
			if m.store == nil {
				m.logger.Info("wallet changed", "delta", ev.Delta, "balance", ev.Balance)
				continue
			}
			// Other sessions of the same player share the stored wallet
			balance, err := m.store.AddCurrency(m.player, ev.Delta)
			if err != nil {
				m.logger.Error("cannot save wallet", "err", err)
				continue
			}
			m.game.SetCurrency(balance)
			m.logger.Info("wallet changed", "delta", ev.Delta, "balance", balance)
		}
	}
}

// finishRun compares the run against the stored records, persists it and
// pays out currency for the collected experience.
func (m *Model) finishRun(ev survival.DefeatedEvent) {
	m.newRecord = ev.Kills > m.records.Kills || ev.Experience > m.records.Experience
	m.records.Kills = max(m.records.Kills, ev.Kills)
	m.records.Experience = max(m.records.Experience, ev.Experience)

	m.logger.Info("run ended",
		"player", m.player,
		"kills", ev.Kills,
		"experience", ev.Experience,
		"ticks", m.game.Ticks(),
		"record", m.newRecord,
	)

	if m.store != nil {
		run := storage.RunEntry{
			Player:     m.player,
			Kills:      ev.Kills,
			Experience: ev.Experience,
			Ticks:      m.game.Ticks(),
		}
		if _, err := m.store.SaveRun(run); err != nil {
			m.logger.Error("cannot save run", "err", err)
		}
	}

	if per := m.arena.Progression.XPPerCurrency; per > 0 {
		m.game.GrantCurrency(ev.Experience / per)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".arena", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	filename := fmt.Sprintf("arena_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.chooser.active() {
		return m.chooser.view(m.game, m.arena.Progression.PremiumCost, m.screen.Width(), m.screen.Height())
	}

	m.game.Render(m.screen)
	if m.gameState.GameOver {
		if m.newRecord {
			m.screen.DrawTextCentered(m.screen.Height()/2-4, "NEW RECORD", core.ColorBrightYellow)
		}
		hint := fmt.Sprintf("Best: %d kills, %d XP   R restart   B menu", m.records.Kills, m.records.Experience)
		m.screen.DrawTextCentered(m.screen.Height()/2+4, hint, core.ColorGray)
	}

	return RenderScreen(m.screen)
}

// Game returns the simulation driven by this model.
func (m Model) Game() *survival.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single run.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer motion steers the facing
	)

	_, err := p.Run()
	return err
}
