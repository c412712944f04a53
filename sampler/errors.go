// SPDX-License-Identifier: MIT
// Package: lvsample/sampler
//
// errors.go — sentinel errors for bound validation.
//
// Error policy:
//   • Constructors and SetBound validate and return these sentinels wrapped
//     with the method name via %w. Callers branch with errors.Is.
//   • ErrInvertedBounds and ErrNegativeRadius are the rng sentinels, so one
//     errors.Is check covers both a rejected bound and a recovered rng panic.
//   • Sample never fails: bounds are validated before they are stored.

package sampler

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvsample/rng"
)

// ErrInvertedBounds indicates lower[i] > upper[i] on some axis.
var ErrInvertedBounds = rng.ErrInvertedBounds

// ErrNegativeRadius indicates a radius below zero or r_min > r_max.
var ErrNegativeRadius = rng.ErrNegativeRadius

// ErrDimensionMismatch indicates lower/upper vectors of different or zero length.
var ErrDimensionMismatch = errors.New("sampler: dimension mismatch")

// ErrNonFinite indicates a NaN or ±Inf bound component.
var ErrNonFinite = errors.New("sampler: bound is NaN or Inf")

// ErrNilBound indicates a nil lower or upper vector.
var ErrNilBound = errors.New("sampler: nil bound")

// samplerErrorf wraps sentinel with "<method>: <detail>".
func samplerErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// validateInterval checks one axis: both ends finite and lo <= hi.
func validateInterval(method string, axis int, lo, hi float64) error {
	if !finite(lo) || !finite(hi) {
		return samplerErrorf(method, ErrNonFinite, "axis %d: [%g, %g]", axis, lo, hi)
	}
	if lo > hi {
		return samplerErrorf(method, ErrInvertedBounds, "axis %d: %g > %g", axis, lo, hi)
	}
	return nil
}

// validateRadii checks 0 <= rMin <= rMax with finite values.
func validateRadii(method string, rMin, rMax float64) error {
	if !finite(rMin) || !finite(rMax) {
		return samplerErrorf(method, ErrNonFinite, "r_min=%g r_max=%g", rMin, rMax)
	}
	if rMin < 0 || rMin > rMax {
		return samplerErrorf(method, ErrNegativeRadius, "r_min=%g r_max=%g", rMin, rMax)
	}
	return nil
}
