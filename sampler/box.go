// SPDX-License-Identifier: MIT
// Package: lvsample/sampler
//
// box.go — axis-aligned box in R^N.

package sampler

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
)

const (
	methodNewBox      = "NewBox"
	methodBoxSetBound = "Box.SetBound"
)

// Box samples R^N uniformly inside [lower, upper), one independent
// UniformReal per coordinate. The zero value is not usable; construct with
// NewBox.
type Box struct {
	base
	lower *mat.VecDense
	upper *mat.VecDense
}

// NewBox returns a Box over [lower, upper). Both vectors are copied.
//
// Errors: ErrNilBound, ErrDimensionMismatch, ErrNonFinite, ErrInvertedBounds.
// Complexity: O(N).
func NewBox(lower, upper mat.Vector, opts ...Option) (*Box, error) {
	b := &Box{base: newBase(opts)}
	if err := b.setBound(methodNewBox, lower, upper); err != nil {
		return nil, err
	}
	return b, nil
}

// SetBound replaces the bounds. The dimension may change. On error the old
// bounds are kept.
func (b *Box) SetBound(lower, upper mat.Vector) error {
	return b.setBound(methodBoxSetBound, lower, upper)
}

func (b *Box) setBound(method string, lower, upper mat.Vector) error {
	if lower == nil || upper == nil {
		return samplerErrorf(method, ErrNilBound, "lower=%v upper=%v", lower != nil, upper != nil)
	}
	n := lower.Len()
	if n == 0 || n != upper.Len() {
		return samplerErrorf(method, ErrDimensionMismatch, "len(lower)=%d len(upper)=%d", n, upper.Len())
	}
	var i int
	for i = 0; i < n; i++ {
		if err := validateInterval(method, i, lower.AtVec(i), upper.AtVec(i)); err != nil {
			return err
		}
	}
	b.lower = mat.VecDenseCopyOf(lower)
	b.upper = mat.VecDenseCopyOf(upper)
	return nil
}

// Bound returns copies of the lower and upper vectors.
func (b *Box) Bound() (lower, upper *mat.VecDense) {
	return mat.VecDenseCopyOf(b.lower), mat.VecDenseCopyOf(b.upper)
}

// Intervals returns the per-axis bounds as r1 intervals.
func (b *Box) Intervals() []r1.Interval {
	n := b.lower.Len()
	out := make([]r1.Interval, n)
	for i := range out {
		out[i] = r1.Interval{Min: b.lower.AtVec(i), Max: b.upper.AtVec(i)}
	}
	return out
}

// Dim returns N.
func (b *Box) Dim() int { return b.lower.Len() }

// Sample returns a new N-vector with coordinate i in [lower[i], upper[i]).
func (b *Box) Sample() *mat.VecDense {
	n := b.lower.Len()
	q := mat.NewVecDense(n, nil)
	var i int
	for i = 0; i < n; i++ {
		q.SetVec(i, b.eng.UniformReal(b.lower.AtVec(i), b.upper.AtVec(i)))
	}
	return q
}
