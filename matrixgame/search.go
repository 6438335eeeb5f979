// Package matrixgame finds mixed Nash equilibria by enumerating support
// profiles and solving the indifference conditions each one implies.
package matrixgame

import (
	"expvar"
	"runtime"
	"sync"
	"time"

	"github.com/golang/glog"
	"github.com/hashicorp/golang-lru"

	"github.com/timpalpant/nashgame"
)

var (
	candidatesExamined = expvar.NewInt("matrixgame/candidates")
	candidatesRejected = expvar.NewInt("matrixgame/infeasible")
	equilibriaVerified = expvar.NewInt("matrixgame/verified")
	cacheHits          = expvar.NewInt("matrixgame/cache_hits")
)

// DefaultCacheSize is the number of candidate outcomes remembered across
// stages when Params.CacheSize is zero.
const DefaultCacheSize = 1 << 16

// Params configures a mixed equilibrium search.
type Params struct {
	// Largest support size explored. Zero (or anything larger than the
	// largest action count) explores every support size.
	MaxSupportSize int
	// Number of goroutines solving candidates within a stage. Values <= 1
	// solve sequentially. Results do not depend on this setting.
	NumWorkers int
	// Number of candidate outcomes cached across stages. Negative
	// disables the cache.
	CacheSize int
	// Passes over the players for games with more than two players.
	MaxSweeps int
}

// Solver enumerates support profiles of a game and collects the mixed
// Nash equilibria they admit.
type Solver struct {
	game   *nashgame.Game
	params Params
	cache  *lru.Cache
}

func NewSolver(g *nashgame.Game, params Params) *Solver {
	if params.MaxSupportSize <= 0 || params.MaxSupportSize > g.MaxActions() {
		params.MaxSupportSize = g.MaxActions()
	}
	if params.CacheSize == 0 {
		params.CacheSize = DefaultCacheSize
	}

	s := &Solver{game: g, params: params}
	if params.CacheSize > 0 {
		cache, err := lru.New(params.CacheSize)
		if err != nil {
			panic(err)
		}
		s.cache = cache
	}

	return s
}

// MixedNashEquilibria runs a sequential search over supports of size up
// to maxSupportSize (<= 0 for no limit).
func MixedNashEquilibria(g *nashgame.Game, maxSupportSize int) []nashgame.Equilibrium {
	return NewSolver(g, Params{MaxSupportSize: maxSupportSize}).Equilibria()
}

// Equilibria runs every stage k = 1..MaxSupportSize and returns the
// distinct equilibria found, in discovery order. Later stages are always
// explored, since equilibria with larger supports may coexist with
// smaller ones.
func (s *Solver) Equilibria() []nashgame.Equilibrium {
	var result nashgame.EquilibriumSet
	for k := 1; k <= s.params.MaxSupportSize; k++ {
		start := time.Now()
		stage := NewStage(s.game.ActionCounts(), k)
		outcomes := s.solveStage(stage.Candidates())

		found := 0
		for _, profile := range outcomes {
			if profile == nil {
				continue
			}
			if result.Add(nashgame.Equilibrium{Profile: profile, Method: nashgame.MethodSupportEnumeration}) {
				found++
				glog.V(2).Infof("Found equilibrium: %v", profile)
			}
		}

		glog.V(1).Infof("Support stage %d: %d candidates, %d new equilibria (took %v)",
			k, stage.Len(), found, time.Since(start))
	}

	return result.Equilibria()
}

// solveStage returns, for each candidate, the verified equilibrium it
// admits or nil.
func (s *Solver) solveStage(candidates []nashgame.SupportProfile) []nashgame.MixedProfile {
	outcomes := make([]nashgame.MixedProfile, len(candidates))
	if s.params.NumWorkers <= 1 {
		for i, sp := range candidates {
			outcomes[i] = s.solveCandidate(sp)
		}
		return outcomes
	}

	numWorkers := s.params.NumWorkers
	if numWorkers > runtime.NumCPU()*4 {
		numWorkers = runtime.NumCPU() * 4
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, numWorkers)
	for i, sp := range candidates {
		sem <- struct{}{}
		wg.Add(1)
		go func(i int, sp nashgame.SupportProfile) {
			defer func() { <-sem }()
			defer wg.Done()
			outcomes[i] = s.solveCandidate(sp)
		}(i, sp)
	}

	wg.Wait()
	return outcomes
}

// solveCandidate returns a profile owned by the caller, or nil.
func (s *Solver) solveCandidate(sp nashgame.SupportProfile) nashgame.MixedProfile {
	var key string
	if s.cache != nil {
		key = sp.Key()
		if cached, ok := s.cache.Get(key); ok {
			cacheHits.Add(1)
			return cloneProfile(cached.(nashgame.MixedProfile))
		}
	}

	candidatesExamined.Add(1)
	profile, ok := Solve(s.game, sp, s.params.MaxSweeps)
	if !ok {
		candidatesRejected.Add(1)
		profile = nil
	} else if !s.game.IsNashEquilibrium(profile) {
		profile = nil
	} else {
		equilibriaVerified.Add(1)
	}

	if s.cache != nil {
		s.cache.Add(key, cloneProfile(profile))
	}

	return profile
}

func cloneProfile(p nashgame.MixedProfile) nashgame.MixedProfile {
	if p == nil {
		return nil
	}
	return p.Clone()
}
