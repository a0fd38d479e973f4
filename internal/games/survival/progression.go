package survival

import "errors"

// Choice rejections.
var (
	ErrNotChoosing          = errors.New("survival: no ability selection pending")
	ErrNotOffered           = errors.New("survival: ability was not offered")
	ErrInsufficientCurrency = errors.New("survival: insufficient currency")
)

// checkMilestone consumes at most one experience milestone per tick and
// raises a selection request for it. An empty pool resumes immediately.
func (g *Game) checkMilestone() {
	ms := g.cfg.Progression.Milestones
	if g.milestone >= len(ms) || g.experience < ms[g.milestone] {
		return
	}
	threshold := ms[g.milestone]
	g.milestone++

	offer := g.buildOffer()
	if len(offer) == 0 {
		return
	}
	g.offer = offer
	g.phase = PhaseChoosing
	g.emit(SelectionEvent{Offer: append([]Ability(nil), offer...), Milestone: threshold})
}

// eligible reports whether a may appear in an offer right now.
func (g *Game) eligible(a Ability) bool {
	info := a.Info()
	if g.skills.levels[a] >= info.MaxLevel() {
		return false
	}
	return info.Tier != TierRestricted || g.privileged
}

// buildOffer draws the standard picks uniformly without replacement and adds
// one premium pick when any premium ability is eligible.
func (g *Game) buildOffer() []Ability {
	var standard, premium []Ability
	for _, a := range AllAbilities() {
		if !g.eligible(a) {
			continue
		}
		if a.Info().Tier == TierPremium {
			premium = append(premium, a)
		} else {
			standard = append(standard, a)
		}
	}

	g.rng.Shuffle(len(standard), func(i, j int) {
		standard[i], standard[j] = standard[j], standard[i]
	})
	n := min(g.cfg.Progression.OfferSize, len(standard))
	offer := standard[:n:n]

	if len(premium) > 0 {
		offer = append(offer, premium[g.rng.Intn(len(premium))])
	}
	return offer
}

// Choose applies the player's pick from the pending offer and resumes the run.
// Premium picks cost currency; a rejected pick leaves the offer pending.
func (g *Game) Choose(a Ability) error {
	if g.phase != PhaseChoosing {
		return ErrNotChoosing
	}
	offered := false
	for _, o := range g.offer {
		if o == a {
			offered = true
			break
		}
	}
	if !offered {
		return ErrNotOffered
	}

	if a.Info().Tier == TierPremium {
		cost := g.cfg.Progression.PremiumCost
		if g.currency < cost {
			return ErrInsufficientCurrency
		}
		g.currency -= cost
		g.emit(CurrencyEvent{Delta: -cost, Balance: g.currency})
	}

	if g.skills.levels[a] < a.Info().MaxLevel() {
		g.skills.levels[a]++
	}
	g.offer = nil
	g.phase = PhaseRunning
	return nil
}

// Offer returns the pending ability choices, or nil when none are pending.
func (g *Game) Offer() []Ability {
	if g.phase != PhaseChoosing {
		return nil
	}
	return append([]Ability(nil), g.offer...)
}

// Levels returns the current level of every ability.
func (g *Game) Levels() map[Ability]int {
	out := make(map[Ability]int, abilityCount)
	for _, a := range AllAbilities() {
		out[a] = g.skills.levels[a]
	}
	return out
}
