// Package nashgame analyzes finite n-player strategic-form games:
// dominant strategies, maxmin values, and pure and mixed Nash equilibria.
// Mixed equilibria are searched for by support enumeration in the
// matrixgame subpackage.
package nashgame

import (
	"github.com/pkg/errors"
)

// Game is a finite strategic-form game: each player has a fixed number of
// actions and a payoff tensor indexed by the joint action profile.
// A Game is immutable once constructed and safe for concurrent readers.
type Game struct {
	actionCounts []int
	payoffs      []*Tensor
}

// NewGame validates that every player's payoff tensor has exactly the
// shape given by actionCounts. The tensors are copied, so later changes
// to them do not affect the game.
func NewGame(payoffs []*Tensor, actionCounts []int) (*Game, error) {
	if len(actionCounts) == 0 {
		return nil, errors.Wrap(ErrInvalidGame, "game has no players")
	}

	for player, n := range actionCounts {
		if n <= 0 {
			return nil, errors.Wrapf(ErrInvalidGame, "player %d has %d actions", player, n)
		}
	}

	if len(payoffs) != len(actionCounts) {
		return nil, errors.Wrapf(ErrInvalidGame,
			"%d payoff tensors given for %d players", len(payoffs), len(actionCounts))
	}

	for player, t := range payoffs {
		if t == nil {
			return nil, errors.Wrapf(ErrShapeMismatch, "player %d has no payoff tensor", player)
		}
		if !sameShape(t.shape, actionCounts) {
			return nil, errors.Wrapf(ErrShapeMismatch,
				"payoff tensor for player %d: expected shape %v, got %v",
				player, actionCounts, t.shape)
		}
	}

	g := &Game{
		actionCounts: append([]int(nil), actionCounts...),
		payoffs:      make([]*Tensor, len(payoffs)),
	}
	for player, t := range payoffs {
		g.payoffs[player] = t.Clone()
	}

	return g, nil
}

// NewBimatrixGame builds a two-player game from the row player's payoff
// matrix a and the column player's payoff matrix b.
func NewBimatrixGame(a, b [][]float64) (*Game, error) {
	ta, err := matrixTensor(a)
	if err != nil {
		return nil, errors.Wrap(err, "row player")
	}

	tb, err := matrixTensor(b)
	if err != nil {
		return nil, errors.Wrap(err, "column player")
	}

	return NewGame([]*Tensor{ta, tb}, ta.Shape())
}

func matrixTensor(m [][]float64) (*Tensor, error) {
	if len(m) == 0 {
		return nil, errors.Wrap(ErrShapeMismatch, "matrix has no rows")
	}

	cols := len(m[0])
	data := make([]float64, 0, len(m)*cols)
	for i, row := range m {
		if len(row) != cols {
			return nil, errors.Wrapf(ErrShapeMismatch,
				"row %d has %d columns, expected %d", i, len(row), cols)
		}
		data = append(data, row...)
	}

	return NewTensor([]int{len(m), cols}, data)
}

// NumPlayers returns the number of players.
func (g *Game) NumPlayers() int {
	return len(g.actionCounts)
}

// ActionCounts returns a copy of the number of actions of each player.
func (g *Game) ActionCounts() []int {
	return append([]int(nil), g.actionCounts...)
}

// NumActions returns the number of actions available to player.
func (g *Game) NumActions(player int) int {
	return g.actionCounts[player]
}

// PayoffTensor returns a copy of the payoff tensor of player.
func (g *Game) PayoffTensor(player int) *Tensor {
	return g.payoffs[player].Clone()
}

// Payoff returns player's payoff when the joint action profile is played.
func (g *Game) Payoff(player int, profile ActionProfile) (float64, error) {
	if player < 0 || player >= len(g.actionCounts) {
		return 0, errors.Wrapf(ErrDomain, "player %d out of range [0, %d)", player, len(g.actionCounts))
	}

	return g.payoffs[player].At(profile)
}

// MaxActions returns the largest action count among all players.
func (g *Game) MaxActions() int {
	result := 0
	for _, n := range g.actionCounts {
		if n > result {
			result = n
		}
	}

	return result
}

// deviations returns an iterator over the joint profiles of player's
// opponents. The player's own coordinate is always 0, so the flat offset
// of the profile where the player takes action a is base + a*stride.
func (g *Game) deviations(player int) *Product {
	dims := append([]int(nil), g.actionCounts...)
	dims[player] = 1
	return NewProduct(dims)
}

// payoffAt returns player's payoff at the given flat offset.
func (g *Game) payoffAt(player, offset int) float64 {
	return g.payoffs[player].data[offset]
}
