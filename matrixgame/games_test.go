package matrixgame

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/timpalpant/nashgame"
)

func bimatrix(t testing.TB, a, b [][]float64) *nashgame.Game {
	g, err := nashgame.NewBimatrixGame(a, b)
	require.NoError(t, err)
	return g
}

func battleOfTheSexes(t testing.TB) *nashgame.Game {
	return bimatrix(t,
		[][]float64{{2, 0}, {0, 1}},
		[][]float64{{1, 0}, {0, 2}})
}

func prisonersDilemma(t testing.TB) *nashgame.Game {
	return bimatrix(t,
		[][]float64{{-2, -10}, {-1, -5}},
		[][]float64{{-2, -1}, {-10, -5}})
}

func matchingPennies(t testing.TB) *nashgame.Game {
	return bimatrix(t,
		[][]float64{{1, -1}, {-1, 1}},
		[][]float64{{-1, 1}, {1, -1}})
}

func pigouNetwork(t testing.TB) *nashgame.Game {
	return bimatrix(t,
		[][]float64{{-1, -0.5}, {-1, -1}},
		[][]float64{{-1, -1}, {-0.5, -1}})
}

func rockPaperScissors(t testing.TB) *nashgame.Game {
	return bimatrix(t,
		[][]float64{{0, -1, 1}, {1, 0, -1}, {-1, 1, 0}},
		[][]float64{{0, 1, -1}, {-1, 0, 1}, {1, -1, 0}})
}

// barCrowding is a three-player game where action 0 goes to the bar and
// action 1 stays home for a sure payoff of 1.
func barCrowding(t testing.TB) *nashgame.Game {
	shape := []int{2, 2, 2}
	tensors := make([]*nashgame.Tensor, 3)
	for player, data := range [][]float64{
		{-1, 2, 2, 0, 1, 1, 1, 1},
		{-1, 2, 1, 1, 2, 1, 1, 1},
		{-1, 1, 2, 1, 2, 1, 0, 1},
	} {
		tensor, err := nashgame.NewTensor(shape, data)
		require.NoError(t, err)
		tensors[player] = tensor
	}

	g, err := nashgame.NewGame(tensors, shape)
	require.NoError(t, err)
	return g
}
