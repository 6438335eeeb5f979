package nashgame

import (
	"fmt"
	"strings"
)

const (
	// PayoffTolerance is the absolute tolerance used when comparing
	// expected payoffs and when comparing equilibria elementwise.
	PayoffTolerance = 1e-6
	// SupportTolerance is the probability below which an action is
	// treated as outside a mixed strategy's support.
	SupportTolerance = 1e-10
)

// ActionProfile is one action index per player.
type ActionProfile []int

// Mixed expresses the profile as one-hot mixed strategies.
func (p ActionProfile) Mixed(actionCounts []int) MixedProfile {
	result := make(MixedProfile, len(p))
	for player, action := range p {
		result[player] = PureStrategy(action, actionCounts[player])
	}
	return result
}

// Equal reports whether both profiles choose the same actions.
func (p ActionProfile) Equal(other ActionProfile) bool {
	return sameShape(p, other)
}

func (p ActionProfile) String() string {
	parts := make([]string, len(p))
	for i, a := range p {
		parts[i] = fmt.Sprint(a)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// MixedStrategy is a probability distribution over one player's actions.
type MixedStrategy []float64

// PureStrategy returns the distribution putting all mass on action.
func PureStrategy(action, numActions int) MixedStrategy {
	s := make(MixedStrategy, numActions)
	s[action] = 1.0
	return s
}

// UniformStrategy returns the uniform distribution over n actions.
func UniformStrategy(n int) MixedStrategy {
	s := make(MixedStrategy, n)
	for i := range s {
		s[i] = 1.0 / float64(n)
	}
	return s
}

// Support returns the actions played with probability greater than tol.
func (s MixedStrategy) Support(tol float64) Support {
	var result Support
	for a, p := range s {
		if p > tol {
			result = append(result, a)
		}
	}
	return result
}

// Sum returns the total probability mass.
func (s MixedStrategy) Sum() float64 {
	total := 0.0
	for _, p := range s {
		total += p
	}
	return total
}

// MixedProfile is one mixed strategy per player.
type MixedProfile []MixedStrategy

// Clone returns a deep copy of the profile.
func (p MixedProfile) Clone() MixedProfile {
	result := make(MixedProfile, len(p))
	for i, s := range p {
		result[i] = append(MixedStrategy(nil), s...)
	}
	return result
}

// Pure returns the action profile if every player's strategy puts all
// its mass (within SupportTolerance) on a single action.
func (p MixedProfile) Pure() (ActionProfile, bool) {
	result := make(ActionProfile, len(p))
	for player, s := range p {
		support := s.Support(SupportTolerance)
		if len(support) != 1 {
			return nil, false
		}
		result[player] = support[0]
	}
	return result, true
}

func (p MixedProfile) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		probs := make([]string, len(s))
		for a, x := range s {
			probs[a] = fmt.Sprintf("%.4f", x)
		}
		parts[i] = "[" + strings.Join(probs, " ") + "]"
	}
	return strings.Join(parts, " | ")
}

// Support is a sorted set of action indices of one player.
type Support []int

// SupportProfile is one support per player.
type SupportProfile []Support

// Key returns a canonical string form, e.g. "0,1|2".
func (sp SupportProfile) Key() string {
	var b strings.Builder
	for i, s := range sp {
		if i > 0 {
			b.WriteByte('|')
		}
		for j, a := range s {
			if j > 0 {
				b.WriteByte(',')
			}
			fmt.Fprint(&b, a)
		}
	}
	return b.String()
}

// Method records how an equilibrium was discovered.
type Method int

const (
	MethodDominance Method = iota
	MethodPureSearch
	MethodSupportEnumeration
)

func (m Method) String() string {
	switch m {
	case MethodDominance:
		return "dominance"
	case MethodPureSearch:
		return "pure search"
	case MethodSupportEnumeration:
		return "support enumeration"
	default:
		return "unknown"
	}
}

// Equilibrium is a Nash equilibrium tagged with the method that found it.
// Pure equilibria are represented by one-hot strategies.
type Equilibrium struct {
	Profile MixedProfile
	Method  Method
}

// PureEquilibria converts action profiles into equilibria found by method.
func (g *Game) PureEquilibria(profiles []ActionProfile, method Method) []Equilibrium {
	result := make([]Equilibrium, len(profiles))
	for i, p := range profiles {
		result[i] = Equilibrium{Profile: p.Mixed(g.actionCounts), Method: method}
	}
	return result
}
