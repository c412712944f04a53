// SPDX-License-Identifier: MIT
// Package: lvsample/rng
//
// errors.go — sentinel errors carried by contract-violation panics.
//
// Error policy:
//   • Engine draws have no error return. A violated precondition is a caller
//     bug and panics with an error wrapping one of these sentinels, so a
//     recover() site can still branch with errors.Is.
//   • Sentinels are never formatted at definition site; context is attached
//     with %w in contractPanic.

package rng

import (
	"errors"
	"fmt"
)

// ErrInvertedBounds indicates an interval whose lower end exceeds its upper
// end, or an end that is NaN.
var ErrInvertedBounds = errors.New("rng: lower bound exceeds upper bound")

// ErrNegativeRadius indicates a disk or ball radius below zero, or r_min > r_max.
var ErrNegativeRadius = errors.New("rng: invalid radius")

// ErrBadFocus indicates a half-normal focus that is not strictly positive.
var ErrBadFocus = errors.New("rng: focus must be > 0")

// contractPanic panics with "<method>: <detail>: <sentinel>".
func contractPanic(method string, sentinel error, format string, args ...interface{}) {
	panic(fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel))
}

// checkInterval enforces lo <= hi. NaN on either side fails the comparison.
func checkInterval(method string, lo, hi float64) {
	if !(lo <= hi) {
		contractPanic(method, ErrInvertedBounds, "lo=%g hi=%g", lo, hi)
	}
}

// checkRadii enforces 0 <= rMin <= rMax.
func checkRadii(method string, rMin, rMax float64) {
	if !(rMin >= 0 && rMin <= rMax) {
		contractPanic(method, ErrNegativeRadius, "r_min=%g r_max=%g", rMin, rMax)
	}
}
