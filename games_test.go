package nashgame

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustBimatrix(t testing.TB, a, b [][]float64) *Game {
	g, err := NewBimatrixGame(a, b)
	require.NoError(t, err)
	return g
}

func battleOfTheSexes(t testing.TB) *Game {
	return mustBimatrix(t,
		[][]float64{{2, 0}, {0, 1}},
		[][]float64{{1, 0}, {0, 2}})
}

func prisonersDilemma(t testing.TB) *Game {
	return mustBimatrix(t,
		[][]float64{{-2, -10}, {-1, -5}},
		[][]float64{{-2, -1}, {-10, -5}})
}

func matchingPennies(t testing.TB) *Game {
	return mustBimatrix(t,
		[][]float64{{1, -1}, {-1, 1}},
		[][]float64{{-1, 1}, {1, -1}})
}

func pigouNetwork(t testing.TB) *Game {
	return mustBimatrix(t,
		[][]float64{{-1, -0.5}, {-1, -1}},
		[][]float64{{-1, -1}, {-0.5, -1}})
}

func rockPaperScissors(t testing.TB) *Game {
	return mustBimatrix(t,
		[][]float64{{0, -1, 1}, {1, 0, -1}, {-1, 1, 0}},
		[][]float64{{0, 1, -1}, {-1, 0, 1}, {1, -1, 0}})
}

func barCrowding(t testing.TB) *Game {
	shape := []int{2, 2, 2}
	tensors := make([]*Tensor, 3)
	for player, data := range [][]float64{
		{-1, 2, 2, 0, 1, 1, 1, 1},
		{-1, 2, 1, 1, 2, 1, 1, 1},
		{-1, 1, 2, 1, 2, 1, 0, 1},
	} {
		tensor, err := NewTensor(shape, data)
		require.NoError(t, err)
		tensors[player] = tensor
	}

	g, err := NewGame(tensors, shape)
	require.NoError(t, err)
	return g
}

// allProfiles returns every action profile of g in enumeration order.
func allProfiles(g *Game) []ActionProfile {
	var result []ActionProfile
	it := NewProduct(g.ActionCounts())
	for it.Next() {
		result = append(result, append(ActionProfile(nil), it.Value()...))
	}
	return result
}
