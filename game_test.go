package nashgame

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTensor(t *testing.T) {
	tensor, err := NewTensor([]int{2, 3}, []float64{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)

	v, err := tensor.At([]int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)

	offset, err := tensor.Offset([]int{1, 0})
	require.NoError(t, err)
	assert.Equal(t, 3, offset, "last axis varies fastest")

	require.NoError(t, tensor.Set([]int{0, 1}, 7))
	assert.Equal(t, 7.0, tensor.Data()[1])
}

func TestNewTensorRejectsBadShape(t *testing.T) {
	_, err := NewTensor([]int{2, 2}, []float64{1, 2, 3})
	assert.Equal(t, ErrShapeMismatch, errors.Cause(err))

	_, err = NewTensor([]int{2, 0}, nil)
	assert.Equal(t, ErrShapeMismatch, errors.Cause(err))

	_, err = NewTensor(nil, []float64{1})
	assert.Equal(t, ErrShapeMismatch, errors.Cause(err))
}

func TestNewGameShapeMismatch(t *testing.T) {
	a, err := NewTensor([]int{2, 2}, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	b, err := NewTensor([]int{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	_, err = NewGame([]*Tensor{a, b}, []int{2, 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShapeMismatch))
	assert.Contains(t, err.Error(), "player 1")
	assert.Contains(t, err.Error(), "[2 2]")
	assert.Contains(t, err.Error(), "[2 3]")
}

func TestNewGameInvalid(t *testing.T) {
	a, err := NewTensor([]int{2, 2}, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	_, err = NewGame(nil, nil)
	assert.Equal(t, ErrInvalidGame, errors.Cause(err))

	_, err = NewGame([]*Tensor{a}, []int{2, 2})
	assert.Equal(t, ErrInvalidGame, errors.Cause(err))

	_, err = NewGame([]*Tensor{a, a}, []int{2, 0})
	assert.Equal(t, ErrInvalidGame, errors.Cause(err))
}

func TestNewBimatrixGameRagged(t *testing.T) {
	_, err := NewBimatrixGame([][]float64{{1, 2}, {3}}, [][]float64{{1, 2}, {3, 4}})
	assert.Equal(t, ErrShapeMismatch, errors.Cause(err))
}

func TestPayoff(t *testing.T) {
	g := prisonersDilemma(t)
	assert.Equal(t, 2, g.NumPlayers())
	assert.Equal(t, []int{2, 2}, g.ActionCounts())

	u, err := g.Payoff(0, ActionProfile{0, 1})
	require.NoError(t, err)
	assert.Equal(t, -10.0, u)

	u, err = g.Payoff(1, ActionProfile{0, 1})
	require.NoError(t, err)
	assert.Equal(t, -1.0, u)

	for _, tc := range []struct {
		player  int
		profile ActionProfile
	}{
		{2, ActionProfile{0, 0}},
		{-1, ActionProfile{0, 0}},
		{0, ActionProfile{0, 2}},
		{0, ActionProfile{0}},
		{0, ActionProfile{0, 0, 0}},
	} {
		_, err := g.Payoff(tc.player, tc.profile)
		assert.Equal(t, ErrDomain, errors.Cause(err), "player %d profile %v", tc.player, tc.profile)
	}
}

func TestProduct(t *testing.T) {
	it := NewProduct([]int{2, 3})
	assert.Equal(t, 6, it.Size())

	var got [][]int
	for it.Next() {
		got = append(got, append([]int(nil), it.Value()...))
	}
	expected := [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	assert.Equal(t, expected, got)

	it.Reset()
	n := 0
	for it.Next() {
		n++
	}
	assert.Equal(t, 6, n, "product is restartable")

	empty := NewProduct([]int{2, 0})
	assert.False(t, empty.Next())
	assert.Equal(t, 0, empty.Size())
}

func TestGameCopiesPayoffs(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	a, err := NewTensor([]int{2, 2}, data)
	require.NoError(t, err)
	b, err := NewTensor([]int{2, 2}, []float64{5, 6, 7, 8})
	require.NoError(t, err)

	g, err := NewGame([]*Tensor{a, b}, []int{2, 2})
	require.NoError(t, err)

	data[0] = 99
	require.NoError(t, b.Set([]int{0, 0}, -1))
	require.NoError(t, g.PayoffTensor(1).Set([]int{0, 0}, -7))

	u, err := g.Payoff(0, ActionProfile{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 1.0, u)

	u, err = g.Payoff(1, ActionProfile{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 5.0, u)
	assert.Equal(t, []float64{5, 6, 7, 8}, g.PayoffTensor(1).Data())
}

func TestTensorOffsets(t *testing.T) {
	tensor, err := ZeroTensor([]int{2, 3, 4})
	require.NoError(t, err)

	expected := 0
	it := NewProduct(tensor.Shape())
	for it.Next() {
		offset, err := tensor.Offset(it.Value())
		require.NoError(t, err)
		assert.Equal(t, expected, offset, "index %v", it.Value())
		assert.Equal(t, offset, tensor.offset(it.Value()))
		expected++
	}
	assert.Equal(t, tensor.Len(), expected)
}
