package nashgame

import (
	"sort"

	"golang.org/x/exp/rand"
)

// SampleAction draws one action from strategy.
func SampleAction(rng *rand.Rand, strategy MixedStrategy) int {
	cumulative := allocFloatSlice(len(strategy))
	defer freeFloatSlice(cumulative)

	total := 0.0
	for a, p := range strategy {
		total += p
		cumulative[a] = total
	}

	x := rng.Float64() * total
	selected := sort.Search(len(cumulative), func(i int) bool {
		return cumulative[i] > x
	})
	if selected == len(cumulative) {
		selected = len(cumulative) - 1
	}

	return selected
}

// SampleProfile draws one joint action profile, each player independently
// sampling an action from their strategy in profile.
func SampleProfile(rng *rand.Rand, profile MixedProfile) ActionProfile {
	result := make(ActionProfile, len(profile))
	for player, s := range profile {
		result[player] = SampleAction(rng, s)
	}
	return result
}

// Simulate plays rounds independent rounds of profile and returns each
// player's average realized payoff. profile must pass ValidateProfile.
func (g *Game) Simulate(rng *rand.Rand, profile MixedProfile, rounds int) []float64 {
	totals := make([]float64, g.NumPlayers())
	if rounds <= 0 {
		return totals
	}

	for i := 0; i < rounds; i++ {
		actions := SampleProfile(rng, profile)
		offset := g.payoffs[0].offset(actions)
		for player := range totals {
			totals[player] += g.payoffAt(player, offset)
		}
	}

	for player := range totals {
		totals[player] /= float64(rounds)
	}
	return totals
}
