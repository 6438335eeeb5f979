package matrixgame

import (
	"sort"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/timpalpant/nashgame"
)

// Subsets returns every size-element subset of [0, n) in lexicographic order.
func Subsets(n, size int) []nashgame.Support {
	if size <= 0 || size > n {
		return nil
	}

	combinations := combin.Combinations(n, size)
	result := make([]nashgame.Support, len(combinations))
	for i, c := range combinations {
		result[i] = c
	}
	return result
}

// PlayerSupports returns every non-empty subset of [0, n) with at most k
// elements, ordered by increasing size.
func PlayerSupports(n, k int) []nashgame.Support {
	if k > n {
		k = n
	}

	var result []nashgame.Support
	for size := 1; size <= k; size++ {
		result = append(result, Subsets(n, size)...)
	}
	return result
}

// Stage iterates over the candidate support profiles of one enumeration
// stage: the cartesian product, across players, of each player's
// supports of size 1..min(k, that player's action count). Candidates are
// ordered by non-decreasing total support size, ties in product order.
type Stage struct {
	k          int
	candidates []nashgame.SupportProfile
	pos        int
}

// NewStage prepares the candidates for maximum support size k.
func NewStage(actionCounts []int, k int) *Stage {
	supports := make([][]nashgame.Support, len(actionCounts))
	dims := make([]int, len(actionCounts))
	for player, n := range actionCounts {
		supports[player] = PlayerSupports(n, k)
		dims[player] = len(supports[player])
	}

	it := nashgame.NewProduct(dims)
	candidates := make([]nashgame.SupportProfile, 0, it.Size())
	for it.Next() {
		sp := make(nashgame.SupportProfile, len(dims))
		for player, i := range it.Value() {
			sp[player] = supports[player][i]
		}
		candidates = append(candidates, sp)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return totalSize(candidates[i]) < totalSize(candidates[j])
	})

	return &Stage{k: k, candidates: candidates, pos: -1}
}

func totalSize(sp nashgame.SupportProfile) int {
	n := 0
	for _, s := range sp {
		n += len(s)
	}
	return n
}

// MaxSupportSize returns the stage's bound k.
func (s *Stage) MaxSupportSize() int {
	return s.k
}

// Len returns the number of candidate support profiles in the stage.
func (s *Stage) Len() int {
	return len(s.candidates)
}

// Next advances to the next candidate.
func (s *Stage) Next() bool {
	if s.pos+1 >= len(s.candidates) {
		s.pos = len(s.candidates)
		return false
	}
	s.pos++
	return true
}

// Value returns the current candidate. It must not be modified.
func (s *Stage) Value() nashgame.SupportProfile {
	return s.candidates[s.pos]
}

// Reset rewinds the stage to before its first candidate.
func (s *Stage) Reset() {
	s.pos = -1
}

// Candidates returns every candidate of the stage in enumeration order.
func (s *Stage) Candidates() []nashgame.SupportProfile {
	return s.candidates
}

// StageSize returns the number of candidates in stage k without
// materializing them.
func StageSize(actionCounts []int, k int) int {
	total := 1
	for _, n := range actionCounts {
		count := 0
		for size := 1; size <= k && size <= n; size++ {
			count += combin.Binomial(n, size)
		}
		total *= count
	}
	return total
}
