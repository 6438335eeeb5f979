package nashgame

import (
	"math"
)

// BestResponse returns the highest expected payoff player can obtain
// against the other players' strategies in profile, together with every
// action achieving it within PayoffTolerance. It has the preconditions of
// ExpectedPayoffs.
func (g *Game) BestResponse(player int, profile MixedProfile) (float64, []int) {
	utilities := allocFloatSlice(g.actionCounts[player])
	defer freeFloatSlice(utilities)
	g.expectedPayoffsInto(player, profile, utilities)

	best, _ := argMax(utilities)
	var actions []int
	for a, u := range utilities {
		if u >= best-PayoffTolerance {
			actions = append(actions, a)
		}
	}

	return best, actions
}

// Regret returns how much player could gain by deviating from profile to
// a best response. It is zero (up to rounding) at a Nash equilibrium.
func (g *Game) Regret(player int, profile MixedProfile) float64 {
	best, _ := g.BestResponse(player, profile)
	return math.Max(0, best-g.ExpectedPayoff(player, profile))
}

// argMax returns the largest value and the first index holding it.
func argMax(vs []float64) (float64, int) {
	best := math.Inf(-1)
	bestIdx := 0
	for i, v := range vs {
		if v > best {
			best = v
			bestIdx = i
		}
	}

	return best, bestIdx
}
