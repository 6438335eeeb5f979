package nashgame

import (
	"math"

	"github.com/pkg/errors"
)

// ExpectedPayoffs returns, for each of player's actions, the player's
// expected payoff from playing that action while every other player
// follows profile. player's own entry of profile is ignored.
//
// player must be in [0, NumPlayers()) and profile must pass
// ValidateProfile; otherwise ExpectedPayoffs may panic.
func (g *Game) ExpectedPayoffs(player int, profile MixedProfile) []float64 {
	result := make([]float64, g.actionCounts[player])
	g.expectedPayoffsInto(player, profile, result)
	return result
}

func (g *Game) expectedPayoffsInto(player int, profile MixedProfile, result []float64) {
	t := g.payoffs[player]
	stride := t.strides[player]
	it := g.deviations(player)
	for it.Next() {
		idx := it.Value()
		prob := 1.0
		for q, a := range idx {
			if q != player {
				prob *= profile[q][a]
			}
		}
		if prob == 0 {
			continue
		}

		base := t.offset(idx)
		for a := range result {
			result[a] += prob * t.data[base+a*stride]
		}
	}
}

// ExpectedPayoff returns player's expected payoff when everyone,
// including player, follows profile. It has the preconditions of
// ExpectedPayoffs.
func (g *Game) ExpectedPayoff(player int, profile MixedProfile) float64 {
	payoffs := allocFloatSlice(g.actionCounts[player])
	defer freeFloatSlice(payoffs)
	g.expectedPayoffsInto(player, profile, payoffs)

	total := 0.0
	for a, u := range payoffs {
		total += profile[player][a] * u
	}
	return total
}

// IsNashEquilibrium reports whether profile is a Nash equilibrium: for
// every player, all actions in the support (probability above
// SupportTolerance) earn the same expected payoff within PayoffTolerance,
// and no action outside the support earns more than that payoff plus
// PayoffTolerance. Profiles of the wrong shape are never equilibria.
func (g *Game) IsNashEquilibrium(profile MixedProfile) bool {
	if g.ValidateProfile(profile) != nil {
		return false
	}

	for player, n := range g.actionCounts {
		payoffs := allocFloatSlice(n)
		g.expectedPayoffsInto(player, profile, payoffs)
		ok := isBestResponse(profile[player], payoffs)
		freeFloatSlice(payoffs)
		if !ok {
			return false
		}
	}

	return true
}

func isBestResponse(strategy MixedStrategy, payoffs []float64) bool {
	baseline := math.NaN()
	for a, p := range strategy {
		if p <= SupportTolerance {
			continue
		}
		if math.IsNaN(baseline) {
			baseline = payoffs[a]
		} else if math.Abs(payoffs[a]-baseline) > PayoffTolerance {
			return false
		}
	}

	if math.IsNaN(baseline) {
		return false
	}

	for a, p := range strategy {
		if p <= SupportTolerance && payoffs[a] > baseline+PayoffTolerance {
			return false
		}
	}

	return true
}

// ValidateProfile checks that profile has one strategy per player, each
// with one non-negative probability per action summing to 1 within
// PayoffTolerance. The error wraps ErrDomain.
func (g *Game) ValidateProfile(profile MixedProfile) error {
	if len(profile) != len(g.actionCounts) {
		return errors.Wrapf(ErrDomain, "profile has %d strategies for %d players",
			len(profile), len(g.actionCounts))
	}

	for player, s := range profile {
		if len(s) != g.actionCounts[player] {
			return errors.Wrapf(ErrDomain, "player %d: strategy has %d entries for %d actions",
				player, len(s), g.actionCounts[player])
		}
		for a, p := range s {
			if p < -SupportTolerance || math.IsNaN(p) {
				return errors.Wrapf(ErrDomain, "player %d: action %d has probability %v", player, a, p)
			}
		}
		if sum := s.Sum(); math.Abs(sum-1) > PayoffTolerance {
			return errors.Wrapf(ErrDomain, "player %d: probabilities sum to %v", player, sum)
		}
	}

	return nil
}
