package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arena/internal/config"
	"github.com/vovakirdan/tui-arena/internal/core"
	"github.com/vovakirdan/tui-arena/internal/games/survival"
	"github.com/vovakirdan/tui-arena/internal/storage"
)

func testOptions(t *testing.T, store *storage.Store) Options {
	t.Helper()
	arena := config.DefaultArenaConfig()
	return Options{
		Arena: arena,
		Runtime: core.RuntimeConfig{
			ScreenW:  80,
			ScreenH:  24,
			TickRate: 60,
			Seed:     3,
		},
		Store:  store,
		Player: "tester",
	}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "arena.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return model
}

func TestModelStartsIdleAndResumesOnPause(t *testing.T) {
	m := NewModel(testOptions(t, nil))
	if m.Game().Phase() != survival.PhaseIdle {
		t.Fatalf("Phase() = %v, expected idle", m.Game().Phase())
	}
	if !strings.Contains(m.View(), "ARENA SURVIVAL") {
		t.Error("idle view should show the title")
	}

	now := time.Now()
	m = update(t, m, runeKey("p"))
	m = update(t, m, TickMsg(now))
	if m.Game().Phase() != survival.PhaseRunning {
		t.Fatalf("Phase() = %v, expected running", m.Game().Phase())
	}

	// A stalled tick advances at most maxFrame
	clock := m.Game().Clock()
	m = update(t, m, TickMsg(now.Add(5*time.Second)))
	if d := m.Game().Clock() - clock; d > float64(maxFrame/time.Millisecond) {
		t.Errorf("tick advanced %fms, expected at most %v", d, maxFrame)
	}
}

func TestModelBackPausesRunningGame(t *testing.T) {
	m := NewModel(testOptions(t, nil))
	m = update(t, m, runeKey("p"))
	m = update(t, m, TickMsg(time.Now()))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = update(t, m, TickMsg(time.Now()))
	if m.Game().Phase() != survival.PhasePaused {
		t.Fatalf("Phase() = %v, expected paused", m.Game().Phase())
	}
	if m.BackToMenu() {
		t.Error("back while running should only pause")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back while paused should leave the game")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m := NewModel(testOptions(t, nil))
	m = update(t, m, runeKey("p"))
	m = update(t, m, TickMsg(time.Now()))
	before := m.Game().Player()

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.Game().Phase() != survival.PhaseRunning || m.Game().Player() != before {
		t.Error("resize should not reset the run")
	}
	if len(strings.Split(m.View(), "\n")) != 40 {
		t.Error("view should follow the new height")
	}
}

func TestFinishRunPersistsAndPays(t *testing.T) {
	store := openTestStore(t)
	if err := store.SetBalance("tester", 1); err != nil {
		t.Fatal(err)
	}

	m := NewModel(testOptions(t, store))
	if m.Game().Currency() != 1 {
		t.Fatalf("Currency() = %d, expected the stored balance", m.Game().Currency())
	}

	m.finishRun(survival.DefeatedEvent{Kills: 12, Experience: 60})
	if !m.newRecord {
		t.Error("first run should be a record")
	}
	m.handleEvents(m.Game().Step(16, core.NewInputFrame()).Events)

	if bal, _ := store.Balance("tester"); bal != 3 {
		t.Errorf("stored balance = %d, expected 1 + 60/25", bal)
	}

	m.finishRun(survival.DefeatedEvent{Kills: 3, Experience: 10})
	if m.newRecord {
		t.Error("a worse run should not be a record")
	}

	runs, err := store.TopRuns("tester", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Kills != 12 {
		t.Errorf("stored runs = %+v", runs)
	}
	if rec, _ := store.Best("tester"); rec.Kills != 12 || rec.Experience != 60 {
		t.Errorf("Best() = %+v", rec)
	}
}

func TestWalletSharedAcrossSessions(t *testing.T) {
	store := openTestStore(t)
	if err := store.SetBalance("tester", 10); err != nil {
		t.Fatal(err)
	}

	a := NewModel(testOptions(t, store))
	b := NewModel(testOptions(t, store))

	a.Game().GrantCurrency(4)
	a.handleEvents(a.Game().Step(16, core.NewInputFrame()).Events)
	if a.Game().Currency() != 14 {
		t.Errorf("session A Currency() = %d, expected 14", a.Game().Currency())
	}

	// Session B still holds the balance it loaded at start
	b.handleEvents([]survival.Event{survival.CurrencyEvent{Delta: -2, Balance: 8}})
	if bal, _ := store.Balance("tester"); bal != 12 {
		t.Fatalf("stored balance = %d, expected 10 + 4 - 2", bal)
	}
	if b.Game().Currency() != 12 {
		t.Errorf("session B Currency() = %d, expected the stored 12", b.Game().Currency())
	}

	a.Game().GrantCurrency(1)
	a.handleEvents(a.Game().Step(16, core.NewInputFrame()).Events)
	if bal, _ := store.Balance("tester"); bal != 13 {
		t.Errorf("stored balance = %d, expected 13", bal)
	}
}

func TestChooserFlow(t *testing.T) {
	opts := testOptions(t, nil)
	opts.Arena.Progression.Milestones = []int{0}
	m := NewModel(opts)

	m = update(t, m, runeKey("p"))
	m = update(t, m, TickMsg(time.Now()))
	if !m.chooser.active() {
		t.Fatal("crossing a milestone should open the chooser")
	}
	if !strings.Contains(m.View(), "LEVEL UP") {
		t.Error("chooser view missing")
	}

	first := m.chooser.offer[0]
	m = update(t, m, runeKey("1"))
	if m.chooser.active() {
		t.Fatal("chooser should close after a valid pick")
	}
	if m.Game().Level(first) != 1 {
		t.Errorf("Level(%v) = %d, expected 1", first, m.Game().Level(first))
	}
	if m.Game().Phase() != survival.PhaseRunning {
		t.Errorf("Phase() = %v, expected running", m.Game().Phase())
	}
}

func TestChooserRejectsUnaffordablePremium(t *testing.T) {
	opts := testOptions(t, nil)
	opts.Arena.Progression.Milestones = []int{0}
	m := NewModel(opts)

	m = update(t, m, runeKey("p"))
	m = update(t, m, TickMsg(time.Now()))

	last := len(m.chooser.offer)
	premium := m.chooser.offer[last-1]
	if premium.Info().Tier != survival.TierPremium {
		t.Fatalf("last offer %v is not premium", premium)
	}

	m = update(t, m, runeKey(string(rune('0'+last))))
	if !m.chooser.active() || m.chooser.message == "" {
		t.Error("unaffordable premium should keep the chooser open with a message")
	}
	if m.Game().Level(premium) != 0 {
		t.Error("premium ability granted without currency")
	}
}
