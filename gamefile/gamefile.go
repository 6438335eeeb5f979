// Package gamefile loads and saves strategic-form game definitions.
//
// Two formats are supported, chosen by file extension:
//
//	.yaml, .yml        YAML definition with nested payoff lists
//	.yaml.gz, .yml.gz  the same, gzip-compressed
//	.npz               NumPy archive with one payoff_<player>.npy per player
package gamefile

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/timpalpant/nashgame"
)

// ErrFormat is returned for definitions that cannot be turned into a game.
var ErrFormat = errors.New("gamefile: invalid game definition")

// Definition is the on-disk description of a game.
type Definition struct {
	Name    string     `yaml:"name,omitempty"`
	Players []string   `yaml:"players,omitempty"`
	Actions [][]string `yaml:"actions,omitempty"`
	// Inferred from the shape of the first payoff tensor when omitted.
	ActionCounts []int `yaml:"action_counts,omitempty,flow"`
	// One nested list per player, nested once per player.
	Payoffs []interface{} `yaml:"payoffs"`
}

// Decode reads a YAML definition.
func Decode(r io.Reader) (*Definition, error) {
	var def Definition
	if err := yaml.NewDecoder(r).Decode(&def); err != nil {
		return nil, errors.Wrap(err, "decoding game yaml")
	}
	return &def, nil
}

// Encode writes def as YAML.
func Encode(w io.Writer, def *Definition) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(def); err != nil {
		return err
	}
	return enc.Close()
}

// Tensors converts the nested payoff lists to tensors.
func (d *Definition) Tensors() ([]*nashgame.Tensor, error) {
	if len(d.Payoffs) == 0 {
		return nil, errors.Wrap(ErrFormat, "no payoffs")
	}

	result := make([]*nashgame.Tensor, len(d.Payoffs))
	for player, nested := range d.Payoffs {
		shape, data, err := flatten(nested)
		if err != nil {
			return nil, errors.Wrapf(err, "payoffs of player %d", player)
		}
		t, err := nashgame.NewTensor(shape, data)
		if err != nil {
			return nil, errors.Wrapf(err, "payoffs of player %d", player)
		}
		result[player] = t
	}

	return result, nil
}

// Game builds and validates the game described by d.
func (d *Definition) Game() (*nashgame.Game, error) {
	tensors, err := d.Tensors()
	if err != nil {
		return nil, err
	}

	actionCounts := d.ActionCounts
	if len(actionCounts) == 0 {
		actionCounts = tensors[0].Shape()
	}

	if len(d.Players) > 0 && len(d.Players) != len(actionCounts) {
		return nil, errors.Wrapf(ErrFormat, "%d player names for %d players",
			len(d.Players), len(actionCounts))
	}
	if len(d.Actions) > 0 {
		if len(d.Actions) != len(actionCounts) {
			return nil, errors.Wrapf(ErrFormat, "action labels given for %d of %d players",
				len(d.Actions), len(actionCounts))
		}
		for player, labels := range d.Actions {
			if len(labels) != actionCounts[player] {
				return nil, errors.Wrapf(ErrFormat, "player %d has %d action labels for %d actions",
					player, len(labels), actionCounts[player])
			}
		}
	}

	return nashgame.NewGame(tensors, actionCounts)
}

// PlayerName returns the configured name of player, or "Player <n>"
// numbering players from 1.
func (d *Definition) PlayerName(player int) string {
	if player < len(d.Players) {
		return d.Players[player]
	}
	return fmt.Sprintf("Player %d", player+1)
}

// ActionName returns the configured label of a player's action, or its index.
func (d *Definition) ActionName(player, action int) string {
	if player < len(d.Actions) && action < len(d.Actions[player]) {
		return d.Actions[player][action]
	}
	return fmt.Sprint(action)
}

// FromGame describes g with the given name and no labels.
func FromGame(name string, g *nashgame.Game) *Definition {
	def := &Definition{
		Name:         name,
		ActionCounts: g.ActionCounts(),
		Payoffs:      make([]interface{}, g.NumPlayers()),
	}
	for player := range def.Payoffs {
		t := g.PayoffTensor(player)
		def.Payoffs[player] = nest(t.Shape(), t.Data())
	}
	return def
}

// flatten converts a nested list decoded from YAML into a row-major
// shape and buffer, rejecting ragged lists and non-numeric entries.
func flatten(v interface{}) ([]int, []float64, error) {
	switch x := v.(type) {
	case []interface{}:
		if len(x) == 0 {
			return nil, nil, errors.Wrap(nashgame.ErrShapeMismatch, "empty list")
		}

		var shape []int
		var data []float64
		for i, elem := range x {
			s, d, err := flatten(elem)
			if err != nil {
				return nil, nil, err
			}
			if i == 0 {
				shape = s
			} else if !equalInts(s, shape) {
				return nil, nil, errors.Wrapf(nashgame.ErrShapeMismatch,
					"ragged list: element %d has shape %v, element 0 has %v", i, s, shape)
			}
			data = append(data, d...)
		}

		return append([]int{len(x)}, shape...), data, nil
	case int:
		return nil, []float64{float64(x)}, nil
	case int64:
		return nil, []float64{float64(x)}, nil
	case uint64:
		return nil, []float64{float64(x)}, nil
	case float64:
		return nil, []float64{x}, nil
	default:
		return nil, nil, errors.Wrapf(ErrFormat, "unexpected payoff entry %v (%T)", v, v)
	}
}

// nest is the inverse of flatten.
func nest(shape []int, data []float64) interface{} {
	if len(shape) == 1 {
		return append([]float64(nil), data...)
	}

	stride := len(data) / shape[0]
	result := make([]interface{}, shape[0])
	for i := range result {
		result[i] = nest(shape[1:], data[i*stride:(i+1)*stride])
	}
	return result
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
