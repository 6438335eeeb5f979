package nashgame

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/combin"
)

// Tensor is a dense n-dimensional array of payoffs stored in a flat
// row-major buffer: the last axis varies fastest, so the offset of
// index (i0, ..., ik) is sum(i_j * strides[j]).
type Tensor struct {
	shape   []int
	strides []int
	data    []float64
}

// NewTensor wraps data as a tensor with the given shape. The data slice
// is not copied.
func NewTensor(shape []int, data []float64) (*Tensor, error) {
	if len(shape) == 0 {
		return nil, errors.Wrap(ErrShapeMismatch, "tensor must have at least one dimension")
	}

	size := 1
	for i, d := range shape {
		if d <= 0 {
			return nil, errors.Wrapf(ErrShapeMismatch, "dimension %d has size %d", i, d)
		}
		size *= d
	}

	if len(data) != size {
		return nil, errors.Wrapf(ErrShapeMismatch,
			"shape %v requires %d elements, got %d", shape, size, len(data))
	}

	return &Tensor{
		shape:   append([]int(nil), shape...),
		strides: rowMajorStrides(shape),
		data:    data,
	}, nil
}

// Clone returns a deep copy of t.
func (t *Tensor) Clone() *Tensor {
	return &Tensor{
		shape:   append([]int(nil), t.shape...),
		strides: append([]int(nil), t.strides...),
		data:    append([]float64(nil), t.data...),
	}
}

// ZeroTensor allocates a zero-filled tensor of the given shape.
func ZeroTensor(shape []int) (*Tensor, error) {
	size := 1
	for _, d := range shape {
		size *= d
	}
	if size < 0 {
		size = 0
	}

	return NewTensor(shape, make([]float64, size))
}

func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	stride := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= shape[i]
	}

	return strides
}

// Shape returns a copy of the tensor's dimensions.
func (t *Tensor) Shape() []int {
	return append([]int(nil), t.shape...)
}

// Len returns the number of elements in the tensor.
func (t *Tensor) Len() int {
	return len(t.data)
}

// Data returns the flat row-major backing buffer. Callers must not modify it.
func (t *Tensor) Data() []float64 {
	return t.data
}

// Offset maps an index to its position in the flat buffer.
func (t *Tensor) Offset(index []int) (int, error) {
	if len(index) != len(t.shape) {
		return 0, errors.Wrapf(ErrDomain, "index %v has %d dimensions, tensor has %d",
			index, len(index), len(t.shape))
	}

	for i, x := range index {
		if x < 0 || x >= t.shape[i] {
			return 0, errors.Wrapf(ErrDomain, "index %v out of range for shape %v", index, t.shape)
		}
	}

	return combin.IdxFor(index, t.shape), nil
}

// At returns the element at index.
func (t *Tensor) At(index []int) (float64, error) {
	offset, err := t.Offset(index)
	if err != nil {
		return 0, err
	}

	return t.data[offset], nil
}

// Set stores v at index.
func (t *Tensor) Set(index []int, v float64) error {
	offset, err := t.Offset(index)
	if err != nil {
		return err
	}

	t.data[offset] = v
	return nil
}

// offset computes the flat offset of a known-valid index, the strided
// equivalent of combin.IdxFor.
func (t *Tensor) offset(index []int) int {
	offset := 0
	for i, x := range index {
		offset += x * t.strides[i]
	}
	return offset
}

func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor%v%v", t.shape, t.data)
}

func sameShape(a, b []int) bool {
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
