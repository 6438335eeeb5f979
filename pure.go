package nashgame

// PureNashEquilibria returns every action profile in which no player can
// strictly improve their payoff by changing only their own action.
// Profiles are returned in row-major order: player 0's action varies
// slowest and the last player's fastest.
func (g *Game) PureNashEquilibria() []ActionProfile {
	var result []ActionProfile
	it := NewProduct(g.actionCounts)
	for it.Next() {
		profile := it.Value()
		if g.isPureNash(profile) {
			result = append(result, append(ActionProfile(nil), profile...))
		}
	}

	return result
}

// IsPureNash reports whether profile is a pure Nash equilibrium.
func (g *Game) IsPureNash(profile ActionProfile) bool {
	if _, err := g.payoffs[0].Offset(profile); err != nil {
		return false
	}
	return g.isPureNash(profile)
}

func (g *Game) isPureNash(profile []int) bool {
	for player := range g.actionCounts {
		if g.hasProfitableDeviation(player, profile) {
			return false
		}
	}
	return true
}

func (g *Game) hasProfitableDeviation(player int, profile []int) bool {
	t := g.payoffs[player]
	offset := t.offset(profile)
	current := t.data[offset]
	base := offset - profile[player]*t.strides[player]
	for a := 0; a < g.actionCounts[player]; a++ {
		if a == profile[player] {
			continue
		}
		if t.data[base+a*t.strides[player]] > current {
			return true
		}
	}

	return false
}
