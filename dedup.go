package nashgame

import (
	"math"
)

// SameProfile reports whether two mixed profiles describe the same
// equilibrium: same number of players, same strategy lengths, and every
// probability equal within PayoffTolerance.
func SameProfile(a, b MixedProfile) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if math.Abs(a[i][j]-b[i][j]) > PayoffTolerance {
				return false
			}
		}
	}

	return true
}

// EquilibriumSet accumulates equilibria, dropping any profile that is
// SameProfile as one already present. Insertion order is preserved.
type EquilibriumSet struct {
	equilibria []Equilibrium
}

// Add inserts eq unless an equal profile is already present, and reports
// whether it was inserted.
func (s *EquilibriumSet) Add(eq Equilibrium) bool {
	if s.Contains(eq.Profile) {
		return false
	}

	s.equilibria = append(s.equilibria, eq)
	return true
}

// Contains reports whether a profile equal to p is in the set.
func (s *EquilibriumSet) Contains(p MixedProfile) bool {
	for _, existing := range s.equilibria {
		if SameProfile(existing.Profile, p) {
			return true
		}
	}
	return false
}

func (s *EquilibriumSet) Len() int {
	return len(s.equilibria)
}

// Equilibria returns the accumulated equilibria in insertion order.
func (s *EquilibriumSet) Equilibria() []Equilibrium {
	return append([]Equilibrium(nil), s.equilibria...)
}
