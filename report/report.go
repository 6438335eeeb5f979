// Package report runs every analysis over a game and renders the results
// for people (text) or tools (YAML). It performs no analysis of its own.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
	"gopkg.in/yaml.v3"

	"github.com/timpalpant/nashgame"
	"github.com/timpalpant/nashgame/gamefile"
	"github.com/timpalpant/nashgame/matrixgame"
)

// Params controls which analyses are run.
type Params struct {
	Search matrixgame.Params
	// Rounds of sampled play per mixed equilibrium; zero skips simulation.
	SimulateRounds int
	Seed           uint64
}

// Security is one player's maxmin result.
type Security struct {
	Value      float64 `yaml:"value"`
	Strategies []int   `yaml:"strategies,flow"`
}

// Equilibrium is one mixed equilibrium with its payoffs.
type Equilibrium struct {
	Method string `yaml:"method"`
	// One probability vector per player.
	Strategies [][]float64 `yaml:"strategies,flow"`
	// Expected payoff per player.
	Payoffs []float64 `yaml:"payoffs,flow"`
	// Average realized payoff per player under sampled play, if simulated.
	Simulated []float64 `yaml:"simulated,omitempty,flow"`
}

// Report holds the results of every query on one game.
type Report struct {
	RunID        string    `yaml:"run_id"`
	Created      time.Time `yaml:"created"`
	Name         string    `yaml:"name"`
	ActionCounts []int     `yaml:"action_counts,flow"`

	StrictDominant [][]int    `yaml:"strict_dominant,flow"`
	WeakDominant   [][]int    `yaml:"weak_dominant,flow"`
	Security       []Security `yaml:"maxmin"`

	StrictDominantEquilibria [][]int       `yaml:"strict_dominant_equilibria,flow"`
	WeakDominantEquilibria   [][]int       `yaml:"weak_dominant_equilibria,flow"`
	PureNash                 [][]int       `yaml:"pure_nash,flow"`
	MixedNash                []Equilibrium `yaml:"mixed_nash"`

	def *gamefile.Definition
}

// Build runs all analyses of g. def supplies names and labels.
func Build(def *gamefile.Definition, g *nashgame.Game, params Params) *Report {
	r := &Report{
		RunID:        uuid.New().String(),
		Created:      time.Now().UTC(),
		Name:         def.Name,
		ActionCounts: g.ActionCounts(),

		StrictDominant:           g.DominantStrategies(nashgame.Strict),
		WeakDominant:             g.DominantStrategies(nashgame.Weak),
		StrictDominantEquilibria: profiles(g.DominantStrategyEquilibria(nashgame.Strict)),
		WeakDominantEquilibria:   profiles(g.DominantStrategyEquilibria(nashgame.Weak)),
		PureNash:                 profiles(g.PureNashEquilibria()),

		def: def,
	}

	for _, s := range g.MaxMin() {
		r.Security = append(r.Security, Security{Value: s.Value, Strategies: s.Strategies})
	}

	rng := rand.New(rand.NewSource(params.Seed))
	for _, eq := range matrixgame.NewSolver(g, params.Search).Equilibria() {
		e := Equilibrium{Method: eq.Method.String()}
		for player, s := range eq.Profile {
			e.Strategies = append(e.Strategies, []float64(s))
			e.Payoffs = append(e.Payoffs, g.ExpectedPayoff(player, eq.Profile))
		}
		if params.SimulateRounds > 0 {
			e.Simulated = g.Simulate(rng, eq.Profile, params.SimulateRounds)
		}
		r.MixedNash = append(r.MixedNash, e)
	}

	return r
}

func profiles(ps []nashgame.ActionProfile) [][]int {
	result := make([][]int, len(ps))
	for i, p := range ps {
		result[i] = []int(p)
	}
	return result
}

// WriteYAML writes the report as a YAML document.
func (r *Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}

// WriteText writes a human-readable report.
func (r *Report) WriteText(w io.Writer) error {
	b := &strings.Builder{}
	fmt.Fprintf(b, "Analyzing %s: %d-player strategic form game %v\n",
		r.Name, len(r.ActionCounts), r.ActionCounts)
	fmt.Fprintf(b, "Run %s\n", r.RunID)

	b.WriteString("\nStrictly dominant strategies:\n")
	r.writeStrategySets(b, r.StrictDominant)
	b.WriteString("\nWeakly dominant strategies:\n")
	r.writeStrategySets(b, r.WeakDominant)

	b.WriteString("\nMaxmin values and strategies:\n")
	for player, s := range r.Security {
		fmt.Fprintf(b, "  %s: value = %g, strategies = %s\n",
			r.def.PlayerName(player), s.Value, r.actionList(player, s.Strategies))
	}

	b.WriteString("\nStrictly dominant strategy equilibria: ")
	r.writeProfiles(b, r.StrictDominantEquilibria)
	b.WriteString("Weakly dominant strategy equilibria: ")
	r.writeProfiles(b, r.WeakDominantEquilibria)
	b.WriteString("\nPure strategy Nash equilibria: ")
	r.writeProfiles(b, r.PureNash)

	b.WriteString("\nMixed strategy Nash equilibria:")
	if len(r.MixedNash) == 0 {
		b.WriteString(" none\n")
	} else {
		b.WriteString("\n")
	}
	for i, eq := range r.MixedNash {
		fmt.Fprintf(b, "  Eq-%d (%s):\n", i+1, eq.Method)
		for player, s := range eq.Strategies {
			fmt.Fprintf(b, "    %s: %s, expected payoff %.4f", r.def.PlayerName(player),
				r.formatStrategy(player, s), eq.Payoffs[player])
			if len(eq.Simulated) > 0 {
				fmt.Fprintf(b, " (simulated %.4f)", eq.Simulated[player])
			}
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Report) writeStrategySets(b *strings.Builder, sets [][]int) {
	for player, actions := range sets {
		fmt.Fprintf(b, "  %s: %s\n", r.def.PlayerName(player), r.actionList(player, actions))
	}
}

func (r *Report) writeProfiles(b *strings.Builder, ps [][]int) {
	if len(ps) == 0 {
		b.WriteString("none\n")
		return
	}

	parts := make([]string, len(ps))
	for i, p := range ps {
		names := make([]string, len(p))
		for player, a := range p {
			names[player] = r.def.ActionName(player, a)
		}
		parts[i] = "(" + strings.Join(names, ", ") + ")"
	}
	b.WriteString(strings.Join(parts, " "))
	b.WriteString("\n")
}

func (r *Report) actionList(player int, actions []int) string {
	if len(actions) == 0 {
		return "none"
	}

	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = r.def.ActionName(player, a)
	}
	return "[" + strings.Join(names, ", ") + "]"
}

func (r *Report) formatStrategy(player int, s []float64) string {
	parts := make([]string, len(s))
	for a, p := range s {
		parts[a] = fmt.Sprintf("%s=%.3f", r.def.ActionName(player, a), p)
	}
	return strings.Join(parts, " ")
}
