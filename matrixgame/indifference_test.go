package matrixgame

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timpalpant/nashgame"
)

func assertStrategy(t *testing.T, expected []float64, actual nashgame.MixedStrategy) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.InDelta(t, expected[i], actual[i], 1e-9, "action %d of %v", i, actual)
	}
}

func TestSolveFullSupport(t *testing.T) {
	testCases := []struct {
		name     string
		game     *nashgame.Game
		expected [][]float64
	}{
		{"battle of the sexes", battleOfTheSexes(t), [][]float64{{2.0 / 3, 1.0 / 3}, {1.0 / 3, 2.0 / 3}}},
		{"matching pennies", matchingPennies(t), [][]float64{{0.5, 0.5}, {0.5, 0.5}}},
		{"rock paper scissors", rockPaperScissors(t), [][]float64{{1.0 / 3, 1.0 / 3, 1.0 / 3}, {1.0 / 3, 1.0 / 3, 1.0 / 3}}},
		// The opponent's indifference forces all weight onto action 0.
		{"pigou network", pigouNetwork(t), [][]float64{{1, 0}, {1, 0}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sp := make(nashgame.SupportProfile, tc.game.NumPlayers())
			for player := range sp {
				sp[player] = Subsets(tc.game.NumActions(player), tc.game.NumActions(player))[0]
			}

			profile, ok := Solve(tc.game, sp, 0)
			require.True(t, ok)
			for player, expected := range tc.expected {
				assertStrategy(t, expected, profile[player])
			}
			assert.True(t, tc.game.IsNashEquilibrium(profile))
			for _, s := range profile {
				for _, p := range s {
					assert.False(t, math.Signbit(p), "negative probability in %v", profile)
				}
			}
		})
	}
}

func TestSolvePureSupports(t *testing.T) {
	g := prisonersDilemma(t)
	profile, ok := Solve(g, nashgame.SupportProfile{{1}, {0}}, 0)
	require.True(t, ok)
	assert.Equal(t, nashgame.MixedProfile{{0, 1}, {1, 0}}, profile)
	assert.False(t, g.IsNashEquilibrium(profile))
}

func TestSolveMixedAgainstPure(t *testing.T) {
	// With the row player fixed there is nothing to make them indifferent
	// about, so the column player is uniform over their support.
	g := pigouNetwork(t)
	profile, ok := Solve(g, nashgame.SupportProfile{{0}, {0, 1}}, 0)
	require.True(t, ok)
	assertStrategy(t, []float64{1, 0}, profile[0])
	assertStrategy(t, []float64{0.5, 0.5}, profile[1])
}

func TestSolveInfeasible(t *testing.T) {
	// Indifference for the prisoner's dilemma requires negative weights.
	_, ok := Solve(prisonersDilemma(t), nashgame.SupportProfile{{0, 1}, {0, 1}}, 0)
	assert.False(t, ok)

	// Both rows of the system are identical and inconsistent.
	_, ok = Solve(rockPaperScissors(t), nashgame.SupportProfile{{0, 1}, {0, 1}}, 0)
	assert.False(t, ok)
}

func TestSolveInvalidSupports(t *testing.T) {
	g := matchingPennies(t)
	for name, sp := range map[string]nashgame.SupportProfile{
		"too few players": {{0}},
		"empty support":   {{}, {0}},
		"too large":       {{0, 1, 2}, {0}},
	} {
		_, ok := Solve(g, sp, 0)
		assert.False(t, ok, name)
	}
}

func TestSolveThreePlayers(t *testing.T) {
	g := barCrowding(t)
	profile, ok := Solve(g, nashgame.SupportProfile{{0}, {1}, {0}}, 0)
	require.True(t, ok)
	assert.Equal(t, nashgame.MixedProfile{{1, 0}, {0, 1}, {1, 0}}, profile)
	assert.True(t, g.IsNashEquilibrium(profile))
}
