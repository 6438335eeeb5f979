package nashgame

import (
	"gonum.org/v1/gonum/stat/combin"
)

// Product iterates over the cartesian product [0,dims[0]) x ... x
// [0,dims[k]) in row-major order: the first coordinate varies slowest,
// the last fastest. It is finite and may be restarted with Reset.
//
//	it := NewProduct([]int{2, 3})
//	for it.Next() {
//		idx := it.Value()
//		...
//	}
type Product struct {
	dims []int
	gen  *combin.CartesianGenerator
	cur  []int
}

// NewProduct returns an iterator positioned before the first element.
// If any dimension is <= 0 the product is empty.
func NewProduct(dims []int) *Product {
	p := &Product{
		dims: append([]int(nil), dims...),
		cur:  make([]int, len(dims)),
	}
	p.Reset()
	return p
}

// Reset rewinds the iterator to before the first element.
func (p *Product) Reset() {
	p.gen = nil
	if p.Size() > 0 {
		p.gen = combin.NewCartesianGenerator(p.dims)
	}
}

// Next advances to the next element and reports whether there is one.
func (p *Product) Next() bool {
	if p.gen == nil || !p.gen.Next() {
		return false
	}

	p.gen.Product(p.cur)
	return true
}

// Value returns the current element. The slice is reused by Next, so
// callers that keep it must copy it.
func (p *Product) Value() []int {
	return p.cur
}

// Size returns the total number of elements in the product.
func (p *Product) Size() int {
	for _, d := range p.dims {
		if d <= 0 {
			return 0
		}
	}
	return combin.Card(p.dims)
}
