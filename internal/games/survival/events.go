package survival

// Event is an outcome emitted by Step for collaborators (HUD, storage, logging).
// The unexported marker keeps the set of events closed to this package.
type Event interface {
	isEvent()
}

// DefeatedEvent is raised once when the player's health reaches zero.
type DefeatedEvent struct {
	Kills      int
	Experience int
}

// KillsEvent reports enemies removed by cleanup this tick.
type KillsEvent struct {
	Delta int
	Total int
}

// ExperienceEvent reports experience collected this tick.
type ExperienceEvent struct {
	Delta int
	Total int
}

// SelectionEvent asks the player to choose one of the offered abilities.
type SelectionEvent struct {
	Offer     []Ability
	Milestone int // the experience threshold that was crossed
}

// CurrencyEvent reports a wallet change.
type CurrencyEvent struct {
	Delta   int
	Balance int
}

func (DefeatedEvent) isEvent()   {}
func (KillsEvent) isEvent()      {}
func (ExperienceEvent) isEvent() {}
func (SelectionEvent) isEvent()  {}
func (CurrencyEvent) isEvent()   {}
