package matrixgame

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/timpalpant/nashgame"
)

// DefaultMaxSweeps bounds the number of passes over the players when
// solving indifference systems of games with more than two players.
const DefaultMaxSweeps = 64

// Solve finds mixed strategies with the given supports such that every
// player is indifferent between the actions of their support. A player
// with a single-action support plays it purely. Every other player starts
// from the uniform distribution over their support and is then solved for
// from the indifference conditions of their opponents.
//
// With two players each player's probabilities depend only on the
// opponent's payoffs, so one pass is exact. With more players the
// per-player systems are linear only once the remaining players are held
// fixed, and passes are repeated until the strategies stop changing or
// maxSweeps is reached.
//
// Solve returns false if the candidate is infeasible: some system is
// singular or inconsistent, or its solution has a negative probability.
// The returned profile still has to be verified as an equilibrium.
func Solve(g *nashgame.Game, supports nashgame.SupportProfile, maxSweeps int) (nashgame.MixedProfile, bool) {
	if len(supports) != g.NumPlayers() {
		return nil, false
	}

	profile := make(nashgame.MixedProfile, len(supports))
	var free []int
	for player, s := range supports {
		n := g.NumActions(player)
		if len(s) == 0 || len(s) > n {
			return nil, false
		}

		if len(s) == 1 {
			profile[player] = nashgame.PureStrategy(s[0], n)
		} else {
			profile[player] = uniformOver(s, n)
			free = append(free, player)
		}
	}

	if maxSweeps <= 0 {
		maxSweeps = DefaultMaxSweeps
	}
	if g.NumPlayers() <= 2 {
		maxSweeps = 1
	}

	for sweep := 0; sweep < maxSweeps && len(free) > 0; sweep++ {
		delta := 0.0
		for _, player := range free {
			x, ok := solvePlayer(g, supports, profile, player)
			if !ok {
				return nil, false
			}

			delta = math.Max(delta, maxAbsDiff(x, profile[player]))
			profile[player] = x
		}

		if delta <= nashgame.SupportTolerance {
			break
		}
	}

	return profile, true
}

// solvePlayer solves for player's probabilities over their support so
// that every opponent with a mixed support is indifferent between the
// actions of that support, holding all other players at profile.
func solvePlayer(g *nashgame.Game, supports nashgame.SupportProfile, profile nashgame.MixedProfile, player int) (nashgame.MixedStrategy, bool) {
	support := supports[player]
	n := g.NumActions(player)
	rows := indifferenceRows(g, supports, profile, player)
	if len(rows) == 0 {
		// No opponent needs to be made indifferent.
		return uniformOver(support, n), true
	}

	m, k := len(rows)+1, len(support)
	a := mat.NewDense(m, k, nil)
	for i, row := range rows {
		a.SetRow(i, row)
	}
	b := mat.NewVecDense(m, nil)
	for j := 0; j < k; j++ {
		a.Set(m-1, j, 1)
	}
	b.SetVec(m-1, 1)

	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		if _, ok := err.(mat.Condition); !ok {
			return nil, false
		}
	}
	if x.Len() != k || !consistent(a, &x, b) {
		return nil, false
	}

	strategy := make(nashgame.MixedStrategy, n)
	total := 0.0
	for j, action := range support {
		p := x.AtVec(j)
		if math.IsNaN(p) || p < -nashgame.SupportTolerance {
			return nil, false
		}
		if p <= 0 {
			p = 0
		}
		strategy[action] = p
		total += p
	}

	if total <= nashgame.SupportTolerance {
		return nil, false
	}
	for action := range strategy {
		strategy[action] /= total
	}

	return strategy, true
}

// indifferenceRows builds one equation per opponent q and non-baseline
// action a of q's support: the coefficient for each action s in player's
// support is q's expected payoff of a minus that of q's baseline action
// when player plays s.
func indifferenceRows(g *nashgame.Game, supports nashgame.SupportProfile, profile nashgame.MixedProfile, player int) [][]float64 {
	support := supports[player]
	scratch := append(nashgame.MixedProfile(nil), profile...)

	var rows [][]float64
	for q, qSupport := range supports {
		if q == player || len(qSupport) < 2 {
			continue
		}

		qRows := make([][]float64, len(qSupport)-1)
		for i := range qRows {
			qRows[i] = make([]float64, len(support))
		}

		baseline := qSupport[0]
		for j, s := range support {
			scratch[player] = nashgame.PureStrategy(s, g.NumActions(player))
			payoffs := g.ExpectedPayoffs(q, scratch)
			for i, action := range qSupport[1:] {
				qRows[i][j] = payoffs[action] - payoffs[baseline]
			}
		}

		rows = append(rows, qRows...)
	}

	return rows
}

// consistent reports whether a*x reproduces b within PayoffTolerance.
// Least-squares solutions of overdetermined systems that do not satisfy
// every equation are rejected here.
func consistent(a *mat.Dense, x, b *mat.VecDense) bool {
	var r mat.VecDense
	r.MulVec(a, x)
	for i := 0; i < r.Len(); i++ {
		d := r.AtVec(i) - b.AtVec(i)
		if math.IsNaN(d) || math.Abs(d) > nashgame.PayoffTolerance {
			return false
		}
	}
	return true
}

func uniformOver(support nashgame.Support, n int) nashgame.MixedStrategy {
	s := make(nashgame.MixedStrategy, n)
	for _, a := range support {
		s[a] = 1.0 / float64(len(support))
	}
	return s
}

func maxAbsDiff(a, b nashgame.MixedStrategy) float64 {
	result := 0.0
	for i := range a {
		result = math.Max(result, math.Abs(a[i]-b[i]))
	}
	return result
}
