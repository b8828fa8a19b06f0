package hypmath

import "fmt"

// Tensor is a dense real array of arbitrary shape with float32 storage.
// Elementwise functions in this package accept and return tensors of
// identical shape; shape is immutable after construction.
type Tensor struct {
	shape []int     // dimension sizes, outermost first
	data  []float32 // flat storage, row-major
}

// NewTensor allocates a zero tensor of the given shape.
// A nil or empty shape produces a scalar-like tensor of one element.
func NewTensor(shape ...int) *Tensor {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return &Tensor{shape: append([]int(nil), shape...), data: make([]float32, n)}
}

// FromSlice wraps a copy of data in a rank-1 tensor.
func FromSlice(data []float32) *Tensor {
	t := &Tensor{shape: []int{len(data)}, data: make([]float32, len(data))}
	copy(t.data, data)
	return t
}

// Full returns a rank-1 tensor of n copies of v.
func Full(n int, v float32) *Tensor {
	t := NewTensor(n)
	for i := range t.data {
		t.data[i] = v
	}
	return t
}

// Shape returns a copy of the tensor shape.
func (t *Tensor) Shape() []int { return append([]int(nil), t.shape...) }

// NumEl returns the total element count.
func (t *Tensor) NumEl() int { return len(t.data) }

// Data exposes the flat backing slice. Mutating it mutates the tensor;
// callers that need isolation must copy.
func (t *Tensor) Data() []float32 { return t.data }

// At returns the i-th element in flat order.
func (t *Tensor) At(i int) float32 { return t.data[i] }

// like allocates an uninitialized tensor with the same shape as t.
func (t *Tensor) like() *Tensor {
	return &Tensor{shape: append([]int(nil), t.shape...), data: make([]float32, len(t.data))}
}

// mustSameLen panics when two flat lengths disagree. Shape mismatch
// between a saved state and its gradient is a programmer error in the
// autodiff harness, not a runtime condition to recover from.
func mustSameLen(op string, a, b int) {
	if a != b {
		panic(fmt.Sprintf("hypmath: %s: element count mismatch %d vs %d", op, a, b))
	}
}

// Saved holds the forward-pass values a Backward call needs, kept at
// full float64 precision so gradient formulas divide by the clamped
// quantities actually evaluated, not their float32 roundings.
// Single-use contract: one Forward output feeds exactly one Backward.
type Saved struct {
	shape []int
	data  []float64
}

// NumEl returns the saved element count.
func (s *Saved) NumEl() int { return len(s.data) }
