// SPDX-License-Identifier: MIT
// Package: lvsample/sampler
//
// se2.go — planar poses (x, y, heading).

package sampler

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// SE2Dim is the length of a planar pose sample.
const SE2Dim = 3

const (
	methodNewSE2          = "NewSE2"
	methodSE2SetBound     = "SE2.SetBound"
	methodNewSE2Disk      = "NewSE2Disk"
	methodSE2DiskSetBound = "SE2Disk.SetBound"
)

// Heading range shared by the planar samplers.
const headingLo, headingHi = -math.Pi, math.Pi

// SE2 samples planar poses with position in an axis-aligned rectangle.
//
// x is drawn from [lower.X, upper.X) and y from [lower.Y, upper.Y); heading is
// uniform over [-π, π) regardless of bounds. The zero value is not usable;
// construct with NewSE2 or NewSE2XY.
type SE2 struct {
	base
	lower, upper r2.Vec
}

// NewSE2 returns an SE2 sampler over the rectangle [lower, upper).
//
// Errors: ErrNonFinite, ErrInvertedBounds.
func NewSE2(lower, upper r2.Vec, opts ...Option) (*SE2, error) {
	s := &SE2{base: newBase(opts)}
	if err := s.setBound(methodNewSE2, lower, upper); err != nil {
		return nil, err
	}
	return s, nil
}

// NewSE2XY is NewSE2 with per-axis limits.
func NewSE2XY(xMin, xMax, yMin, yMax float64, opts ...Option) (*SE2, error) {
	return NewSE2(r2.Vec{X: xMin, Y: yMin}, r2.Vec{X: xMax, Y: yMax}, opts...)
}

// SetBound replaces the rectangle. On error the old bounds are kept.
func (s *SE2) SetBound(lower, upper r2.Vec) error {
	return s.setBound(methodSE2SetBound, lower, upper)
}

func (s *SE2) setBound(method string, lower, upper r2.Vec) error {
	if err := validateInterval(method, 0, lower.X, upper.X); err != nil {
		return err
	}
	if err := validateInterval(method, 1, lower.Y, upper.Y); err != nil {
		return err
	}
	s.lower, s.upper = lower, upper
	return nil
}

// Bound returns the rectangle corners.
func (s *SE2) Bound() (lower, upper r2.Vec) { return s.lower, s.upper }

// Dim returns SE2Dim.
func (s *SE2) Dim() int { return SE2Dim }

// Sample returns (x, y, heading).
func (s *SE2) Sample() *mat.VecDense {
	q := make([]float64, SE2Dim)
	q[0] = s.eng.UniformReal(s.lower.X, s.upper.X)
	q[1] = s.eng.UniformReal(s.lower.Y, s.upper.Y)
	q[2] = s.eng.UniformReal(headingLo, headingHi)
	return mat.NewVecDense(SE2Dim, q)
}

// SE2Disk samples planar poses whose position is uniform by area over an
// annulus around center, expressed relative to a reference point:
//
//	(x, y) = disk(rMin, rMax) + center − ref
//
// The zero value is not usable; construct with NewSE2Disk.
type SE2Disk struct {
	base
	center, ref r2.Vec
	rMin, rMax  float64
}

// NewSE2Disk returns an SE2Disk sampler.
//
// Errors: ErrNonFinite, ErrNegativeRadius.
func NewSE2Disk(center r2.Vec, rMin, rMax float64, ref r2.Vec, opts ...Option) (*SE2Disk, error) {
	s := &SE2Disk{base: newBase(opts)}
	if err := s.setBound(methodNewSE2Disk, center, rMin, rMax, ref); err != nil {
		return nil, err
	}
	return s, nil
}

// SetBound replaces center, radii and reference. On error the old values are kept.
func (s *SE2Disk) SetBound(center r2.Vec, rMin, rMax float64, ref r2.Vec) error {
	return s.setBound(methodSE2DiskSetBound, center, rMin, rMax, ref)
}

func (s *SE2Disk) setBound(method string, center r2.Vec, rMin, rMax float64, ref r2.Vec) error {
	if !finite(center.X) || !finite(center.Y) || !finite(ref.X) || !finite(ref.Y) {
		return samplerErrorf(method, ErrNonFinite, "center=%v ref=%v", center, ref)
	}
	if err := validateRadii(method, rMin, rMax); err != nil {
		return err
	}
	s.center, s.ref, s.rMin, s.rMax = center, ref, rMin, rMax
	return nil
}

// Bound returns the center, radii and reference point.
func (s *SE2Disk) Bound() (center r2.Vec, rMin, rMax float64, ref r2.Vec) {
	return s.center, s.rMin, s.rMax, s.ref
}

// Dim returns SE2Dim.
func (s *SE2Disk) Dim() int { return SE2Dim }

// Sample returns (x, y, heading).
func (s *SE2Disk) Sample() *mat.VecDense {
	x, y := s.eng.Disk(s.rMin, s.rMax)
	p := r2.Sub(r2.Add(r2.Vec{X: x, Y: y}, s.center), s.ref)
	q := make([]float64, SE2Dim)
	q[0] = p.X
	q[1] = p.Y
	q[2] = s.eng.UniformReal(headingLo, headingHi)
	return mat.NewVecDense(SE2Dim, q)
}
