package nashgame

import (
	"math"
)

// Dominance selects strict or weak dominance.
type Dominance int

const (
	// Strict dominance: strictly better against every opponent profile.
	Strict Dominance = iota
	// Weak dominance: at least as good against every opponent profile.
	Weak
)

func (d Dominance) String() string {
	if d == Weak {
		return "weak"
	}
	return "strict"
}

// DominantStrategies returns, for each player, the actions that dominate
// every other action of that player. A player with a single action has
// that action as its dominant strategy.
func (g *Game) DominantStrategies(kind Dominance) [][]int {
	result := make([][]int, g.NumPlayers())
	for player, n := range g.actionCounts {
		result[player] = []int{}
		for s := 0; s < n; s++ {
			if g.isDominant(player, s, kind) {
				result[player] = append(result[player], s)
			}
		}
	}

	return result
}

func (g *Game) isDominant(player, s int, kind Dominance) bool {
	for t := 0; t < g.actionCounts[player]; t++ {
		if t != s && !g.dominates(player, s, t, kind) {
			return false
		}
	}
	return true
}

// dominates reports whether action s dominates action t for player,
// stopping at the first opponent profile that is a counter-example.
func (g *Game) dominates(player, s, t int, kind Dominance) bool {
	stride := g.payoffs[player].strides[player]
	it := g.deviations(player)
	for it.Next() {
		base := g.payoffs[player].offset(it.Value())
		us := g.payoffAt(player, base+s*stride)
		ut := g.payoffAt(player, base+t*stride)
		if kind == Strict && !(us > ut) {
			return false
		}
		if kind == Weak && !(us >= ut) {
			return false
		}
	}

	return true
}

// Security is a player's maxmin value and the actions that guarantee it.
type Security struct {
	Value      float64
	Strategies []int
}

// MaxMin computes each player's security level against adversarial
// opponents: the largest payoff an action guarantees over all opponent
// profiles. Ties are decided by exact floating-point equality, so payoffs
// that are mathematically equal but computed differently (0.1+0.2 vs 0.3)
// are not treated as ties.
func (g *Game) MaxMin() []Security {
	result := make([]Security, g.NumPlayers())
	for player, n := range g.actionCounts {
		best := Security{Value: math.Inf(-1)}
		for s := 0; s < n; s++ {
			guaranteed := g.guaranteedPayoff(player, s)
			if guaranteed > best.Value {
				best = Security{Value: guaranteed, Strategies: []int{s}}
			} else if guaranteed == best.Value {
				best.Strategies = append(best.Strategies, s)
			}
		}
		result[player] = best
	}

	return result
}

func (g *Game) guaranteedPayoff(player, s int) float64 {
	stride := g.payoffs[player].strides[player]
	worst := math.Inf(1)
	it := g.deviations(player)
	for it.Next() {
		base := g.payoffs[player].offset(it.Value())
		if u := g.payoffAt(player, base+s*stride); u < worst {
			worst = u
		}
	}
	return worst
}

// DominantStrategyEquilibria returns every profile composed of dominant
// strategies, or nil if some player has no dominant strategy.
func (g *Game) DominantStrategyEquilibria(kind Dominance) []ActionProfile {
	dominant := g.DominantStrategies(kind)
	dims := make([]int, len(dominant))
	for player, actions := range dominant {
		if len(actions) == 0 {
			return nil
		}
		dims[player] = len(actions)
	}

	var result []ActionProfile
	it := NewProduct(dims)
	for it.Next() {
		profile := make(ActionProfile, len(dims))
		for player, i := range it.Value() {
			profile[player] = dominant[player][i]
		}
		result = append(result, profile)
	}

	return result
}
