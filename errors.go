package nashgame

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidGame is returned when a game has no players, a player has
	// no actions, or the number of payoff tensors does not match the
	// number of players.
	ErrInvalidGame = errors.New("nashgame: invalid game")
	// ErrShapeMismatch is returned when a payoff tensor's shape differs
	// from the game's action counts, or a tensor's data does not fill its shape.
	ErrShapeMismatch = errors.New("nashgame: shape mismatch")
	// ErrDomain is returned when a player or action index is out of range.
	ErrDomain = errors.New("nashgame: index out of domain")
)
