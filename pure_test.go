package nashgame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPureNashEquilibria(t *testing.T) {
	testCases := []struct {
		name     string
		game     *Game
		expected []ActionProfile
	}{
		{"battle of the sexes", battleOfTheSexes(t), []ActionProfile{{0, 0}, {1, 1}}},
		{"prisoner's dilemma", prisonersDilemma(t), []ActionProfile{{1, 1}}},
		{"matching pennies", matchingPennies(t), nil},
		{"pigou network", pigouNetwork(t), []ActionProfile{{0, 0}, {0, 1}, {1, 0}}},
		{"rock paper scissors", rockPaperScissors(t), nil},
		{"bar crowding", barCrowding(t), []ActionProfile{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}, {1, 1, 1}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ElementsMatch(t, tc.expected, tc.game.PureNashEquilibria())
		})
	}
}

// Every profile is either returned with no profitable deviation, or is
// omitted and some player has a strictly profitable deviation.
func TestPureNashProperties(t *testing.T) {
	for _, g := range []*Game{
		battleOfTheSexes(t), prisonersDilemma(t), matchingPennies(t),
		pigouNetwork(t), rockPaperScissors(t), barCrowding(t),
	} {
		equilibria := g.PureNashEquilibria()
		for _, profile := range allProfiles(g) {
			profitable := false
			for player := 0; player < g.NumPlayers(); player++ {
				current, _ := g.Payoff(player, profile)
				for a := 0; a < g.NumActions(player); a++ {
					alt := append(ActionProfile(nil), profile...)
					alt[player] = a
					if u, _ := g.Payoff(player, alt); u > current {
						profitable = true
					}
				}
			}

			found := false
			for _, eq := range equilibria {
				if eq.Equal(profile) {
					found = true
				}
			}
			assert.Equal(t, !profitable, found, "profile %v", profile)
			assert.Equal(t, found, g.IsPureNash(profile), "profile %v", profile)
		}
	}
}

func TestPureNashAreMixedEquilibria(t *testing.T) {
	for _, g := range []*Game{
		battleOfTheSexes(t), prisonersDilemma(t), pigouNetwork(t), barCrowding(t),
	} {
		for _, p := range g.PureNashEquilibria() {
			assert.True(t, g.IsNashEquilibrium(p.Mixed(g.ActionCounts())), "profile %v", p)
		}
	}
}

func TestIsPureNashRejectsInvalidProfile(t *testing.T) {
	g := prisonersDilemma(t)
	assert.False(t, g.IsPureNash(ActionProfile{1}))
	assert.False(t, g.IsPureNash(ActionProfile{1, 2}))
}
