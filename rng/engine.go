// SPDX-License-Identifier: MIT
// Package: lvsample/rng
//
// engine.go — Engine construction and scalar draws.

package rng

import (
	"math"

	"gonum.org/v1/gonum/mathext/prng"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultFocus is the half-normal focus used when callers have no preference.
const DefaultFocus = 3.0

// Engine is a seeded pseudo-random generator with its derived distributions.
// The zero value is not usable; construct with New.
type Engine struct {
	seed    uint32
	src     *prng.MT19937
	uniform distuv.Uniform
	normal  distuv.Normal
}

// Option customizes a single Engine at construction time.
type Option func(*engineConfig)

type engineConfig struct {
	seed    uint32
	hasSeed bool
}

// WithSeed pins the Engine's seed, bypassing the process seed source.
// Use it to replay one Engine whose Seed() was logged earlier.
// Complexity: O(1).
func WithSeed(seed uint32) Option {
	return func(c *engineConfig) {
		c.seed = seed
		c.hasSeed = true
	}
}

// New returns an Engine. Without WithSeed its seed is the next one derived
// from the process seed, distinct from every other derived Engine.
// Safe for concurrent use.
//
// Complexity: O(1) (MT19937 state init is a fixed 624 words).
func New(opts ...Option) *Engine {
	var cfg engineConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	seed := cfg.seed
	if !cfg.hasSeed {
		seed = global.next()
	}

	src := prng.NewMT19937()
	src.Seed(uint64(seed))
	return &Engine{
		seed:    seed,
		src:     src,
		uniform: distuv.Uniform{Min: 0, Max: 1, Src: src},
		normal:  distuv.Normal{Mu: 0, Sigma: 1, Src: src},
	}
}

// Seed reports the seed this Engine was constructed with.
func (e *Engine) Seed() uint32 { return e.seed }

// Uniform01 returns a uniform draw in [0,1).
func (e *Engine) Uniform01() float64 {
	return e.uniform.Rand()
}

// UniformReal returns a uniform draw in [lo, hi). Panics if lo > hi.
// When lo == hi the result is lo.
func (e *Engine) UniformReal(lo, hi float64) float64 {
	checkInterval("UniformReal", lo, hi)
	return uniformRealFrom(e.Uniform01(), lo, hi)
}

// uniformRealFrom maps u in [0,1) onto [lo, hi). For u just below 1 the sum
// (hi-lo)*u + lo may round to hi; it is pulled back to the float below hi.
// When hi-lo overflows to +Inf the convex form lo*(1-u) + hi*u is used, whose
// terms stay finite.
func uniformRealFrom(u, lo, hi float64) float64 {
	var r float64
	if w := hi - lo; !math.IsInf(w, 0) {
		r = w*u + lo
	} else {
		r = lo*(1-u) + hi*u
	}
	if r >= hi && lo < hi {
		return math.Nextafter(hi, lo)
	}
	return r
}

// UniformInt returns a uniform integer in [lo, hi], both ends inclusive.
// Panics if lo > hi.
func (e *Engine) UniformInt(lo, hi int) int {
	if lo > hi {
		contractPanic("UniformInt", ErrInvertedBounds, "lo=%d hi=%d", lo, hi)
	}
	return uniformIntFrom(e.Uniform01(), lo, hi)
}

// uniformIntFrom maps u in [0,1) onto [lo, hi]. The offset from lo is
// computed in uint64 so that neither precision loss nor hi+1 overflow can
// push the result outside the interval.
func uniformIntFrom(u float64, lo, hi int) int {
	span, spanF := intSpan(lo, hi)
	return int(uint64(lo) + floorOffset(u*spanF, span, spanF))
}

// intSpan returns hi-lo+1 as uint64 and as float64. span == 0 stands for the
// full 2^64 range (lo = MinInt64, hi = MaxInt64); spanF is then 2^64.
func intSpan(lo, hi int) (uint64, float64) {
	span := uint64(hi) - uint64(lo) + 1
	if span == 0 {
		return 0, 0x1p64
	}
	return span, float64(span)
}

// floorOffset returns floor(x) clamped to [0, span-1] for x in [0, spanF].
// float64(span) may round above span, so the clamp runs after conversion too.
func floorOffset(x float64, span uint64, spanF float64) uint64 {
	if !(x < spanF) {
		return span - 1
	}
	if x < 0 {
		return 0
	}
	off := uint64(x)
	if span != 0 && off >= span {
		off = span - 1
	}
	return off
}

// UniformBool returns true when Uniform01() <= 0.5.
// The inclusive comparison is part of the replay contract; keep it.
func (e *Engine) UniformBool() bool {
	return e.Uniform01() <= 0.5
}

// Gaussian01 returns a standard normal draw.
func (e *Engine) Gaussian01() float64 {
	return e.normal.Rand()
}

// Gaussian returns Gaussian01()*stddev + mean.
func (e *Engine) Gaussian(mean, stddev float64) float64 {
	return e.Gaussian01()*stddev + mean
}

// HalfNormalReal returns a value in [rMin, rMax] biased toward rMax.
//
// The normal's second parameter is a standard deviation, not a variance:
// v has mean span and standard deviation span/focus.
//
// Algorithm:
//  1. span = rMax − rMin; draw v ~ N(μ = span, σ = span/focus).
//  2. Fold: v > span reflects around span (rMax); v < 0 reflects around 0 (rMin).
//  3. Clamp v into [0, span] for tails that overshoot both reflections.
//  4. Return rMin + v, clamped to rMax against rounding.
//
// Larger focus narrows the normal, concentrating draws near rMax.
// Panics if rMin > rMax or focus <= 0.
func (e *Engine) HalfNormalReal(rMin, rMax, focus float64) float64 {
	checkInterval("HalfNormalReal", rMin, rMax)
	if !(focus > 0) {
		contractPanic("HalfNormalReal", ErrBadFocus, "focus=%g", focus)
	}
	span := rMax - rMin
	r := rMin + foldHalfNormal(e.Gaussian(span, span/focus), span)
	if r > rMax {
		return rMax
	}
	return r
}

// foldHalfNormal reflects v into [0, span] and clamps what still escapes.
func foldHalfNormal(v, span float64) float64 {
	if v > span {
		v = 2*span - v
	}
	if v < 0 {
		v = -v
	}
	if v > span {
		v = span
	}
	return v
}

// HalfNormalInt returns an integer in [rMin, rMax] biased toward rMax: a
// HalfNormalReal offset over [0, rMax−rMin+1], floored and clamped in uint64
// like UniformInt. Panics like HalfNormalReal.
func (e *Engine) HalfNormalInt(rMin, rMax int, focus float64) int {
	if rMin > rMax {
		contractPanic("HalfNormalInt", ErrInvertedBounds, "r_min=%d r_max=%d", rMin, rMax)
	}
	span, spanF := intSpan(rMin, rMax)
	v := e.HalfNormalReal(0, spanF, focus)
	return int(uint64(rMin) + floorOffset(v, span, spanF))
}
