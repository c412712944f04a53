// SPDX-License-Identifier: MIT

package rng_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvsample/rng"
)

const (
	draws    = 100_000
	seedTest = 20240607
)

// justBelowOne is the largest float64 a [0,1) uniform can return.
var justBelowOne = math.Nextafter(1, 0)

// requireContractPanic runs fn and asserts it panics with an error wrapping sentinel.
func requireContractPanic(t *testing.T, sentinel error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a contract panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %T is not an error", r)
		require.True(t, errors.Is(err, sentinel), "panic %v does not wrap %v", err, sentinel)
	}()
	fn()
}

func TestUniform01_Range(t *testing.T) {
	t.Parallel()

	e := rng.New(rng.WithSeed(seedTest))
	var i int
	for i = 0; i < draws; i++ {
		u := e.Uniform01()
		require.GreaterOrEqual(t, u, 0.0)
		require.Less(t, u, 1.0)
	}
}

// TestUniformReal_RangeAndMean: lo=2, hi=5 must stay in [2,5) with mean ≈ 3.5.
func TestUniformReal_RangeAndMean(t *testing.T) {
	t.Parallel()

	e := rng.New(rng.WithSeed(seedTest))
	xs := make([]float64, draws)
	for i := range xs {
		xs[i] = e.UniformReal(2, 5)
		require.GreaterOrEqual(t, xs[i], 2.0)
		require.Less(t, xs[i], 5.0)
	}
	// σ of the mean is (3/√12)/√1e5 ≈ 0.0027; 0.02 is > 7σ.
	require.InDelta(t, 3.5, stat.Mean(xs, nil), 0.02)
}

func TestUniformReal_DegenerateInterval(t *testing.T) {
	t.Parallel()

	e := rng.New(rng.WithSeed(seedTest))
	require.Equal(t, 7.25, e.UniformReal(7.25, 7.25))
}

// TestUniformReal_TopDrawStaysOpen pins the clamp for a draw just below 1:
// 3*(1-2^-53)+2 rounds to exactly 5 under round-half-even.
func TestUniformReal_TopDrawStaysOpen(t *testing.T) {
	t.Parallel()

	got := rng.UniformRealFrom(justBelowOne, 2, 5)
	require.Less(t, got, 5.0)
	require.Equal(t, math.Nextafter(5, 2), got)

	require.Equal(t, 2.0, rng.UniformRealFrom(0, 2, 5))
}

// TestUniformReal_OverflowingWidth: hi-lo overflows to +Inf for ±MaxFloat64,
// yet draws stay finite, inside [lo, hi) and spread across both signs.
func TestUniformReal_OverflowingWidth(t *testing.T) {
	t.Parallel()

	lo, hi := -math.MaxFloat64, math.MaxFloat64
	require.Equal(t, lo, rng.UniformRealFrom(0, lo, hi))
	require.Equal(t, 0.0, rng.UniformRealFrom(0.5, lo, hi))
	top := rng.UniformRealFrom(justBelowOne, lo, hi)
	require.Less(t, top, hi)
	require.Greater(t, top, 0.0)

	e := rng.New(rng.WithSeed(seedTest))
	var neg, i int
	for i = 0; i < 10_000; i++ {
		v := e.UniformReal(lo, hi)
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
		require.Less(t, v, hi)
		if v < 0 {
			neg++
		}
	}
	// σ of the negative count is 50; allow 8σ.
	require.InDelta(t, 5_000, neg, 400)
}

func TestUniformInt_InclusiveRange(t *testing.T) {
	t.Parallel()

	e := rng.New(rng.WithSeed(seedTest))
	seen := make(map[int]int)
	var i int
	for i = 0; i < draws; i++ {
		v := e.UniformInt(-2, 3)
		require.GreaterOrEqual(t, v, -2)
		require.LessOrEqual(t, v, 3)
		seen[v]++
	}
	// Both ends are reachable and each of the 6 values is roughly 1/6.
	require.Len(t, seen, 6)
	for v, n := range seen {
		require.InDelta(t, draws/6, n, draws/60, "value %d", v)
	}
}

// TestUniformInt_ClampNearOne is the regression test for the floor(...)==hi+1 case.
func TestUniformInt_ClampNearOne(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		lo, hi int
	}{
		{"unit", 0, 0},
		{"small", 0, 2},
		{"negative", -7, -3},
		// width 3 at magnitude 1e15: (3-ε)+1e15 rounds up to 1e15+3 = hi+1.
		{"large-offset", 1_000_000_000_000_000, 1_000_000_000_000_002},
		// beyond 2^53 lo and hi+1 are no longer exact float64 values.
		{"beyond-2^53", 100_000_000_000_000_003, 100_000_000_000_000_005},
		// float64(hi)+1 would round to 2^63 and wrap on conversion.
		{"near-max", math.MaxInt - 10, math.MaxInt},
		{"near-min", math.MinInt, math.MinInt + 4},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := rng.UniformIntFrom(justBelowOne, tc.lo, tc.hi)
			require.Equal(t, tc.hi, got)
			require.Equal(t, tc.lo, rng.UniformIntFrom(0, tc.lo, tc.hi))
		})
	}
}

// TestUniformInt_ExtremeRangesStayInside walks u across [0,1) for ranges whose
// endpoints or width do not fit a float64 mantissa.
func TestUniformInt_ExtremeRangesStayInside(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		lo, hi int
	}{
		{"beyond-2^53", 100_000_000_000_000_003, 100_000_000_000_000_005},
		{"near-max", math.MaxInt - 10, math.MaxInt},
		{"straddles-zero", math.MinInt / 2, math.MaxInt / 2},
		{"full-range", math.MinInt, math.MaxInt},
	}
	us := []float64{0, 1e-300, 0.3, 0.5, 0.75, justBelowOne}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			for _, u := range us {
				got := rng.UniformIntFrom(u, tc.lo, tc.hi)
				require.GreaterOrEqual(t, got, tc.lo, "u=%g", u)
				require.LessOrEqual(t, got, tc.hi, "u=%g", u)
			}
			require.Equal(t, tc.lo, rng.UniformIntFrom(0, tc.lo, tc.hi))
		})
	}

	// the midpoint of the full range lands at zero
	require.Equal(t, 0, rng.UniformIntFrom(0.5, math.MinInt, math.MaxInt))

	e := rng.New(rng.WithSeed(seedTest))
	seen := make(map[int]bool)
	var i int
	for i = 0; i < 10_000; i++ {
		v := e.UniformInt(math.MaxInt-2, math.MaxInt)
		require.GreaterOrEqual(t, v, math.MaxInt-2)
		seen[v] = true
	}
	require.Len(t, seen, 3)
}

func TestUniformBool_Balanced(t *testing.T) {
	t.Parallel()

	e := rng.New(rng.WithSeed(seedTest))
	var trues, i int
	for i = 0; i < draws; i++ {
		if e.UniformBool() {
			trues++
		}
	}
	require.InDelta(t, 0.5, float64(trues)/draws, 0.01)
}

// TestUniformBool_InclusiveHalf checks the <= 0.5 contract against the
// Uniform01 stream of an identically seeded engine.
func TestUniformBool_InclusiveHalf(t *testing.T) {
	t.Parallel()

	a := rng.New(rng.WithSeed(seedTest))
	b := rng.New(rng.WithSeed(seedTest))
	var i int
	for i = 0; i < 1000; i++ {
		require.Equal(t, b.Uniform01() <= 0.5, a.UniformBool())
	}
}

func TestGaussian01_Moments(t *testing.T) {
	t.Parallel()

	e := rng.New(rng.WithSeed(seedTest))
	xs := make([]float64, draws)
	for i := range xs {
		xs[i] = e.Gaussian01()
	}
	mean, variance := stat.MeanVariance(xs, nil)
	require.InDelta(t, 0.0, mean, 0.02)
	require.InDelta(t, 1.0, variance, 0.03)
}

func TestGaussian_ShiftScale(t *testing.T) {
	t.Parallel()

	a := rng.New(rng.WithSeed(seedTest))
	b := rng.New(rng.WithSeed(seedTest))
	var i int
	for i = 0; i < 1000; i++ {
		want := b.Gaussian01()*2.5 + 10
		require.InDelta(t, want, a.Gaussian(10, 2.5), 1e-12)
	}
}

func TestHalfNormalReal_SupportAndBias(t *testing.T) {
	t.Parallel()

	const rMin, rMax = 1.0, 4.0
	means := make([]float64, 0, 3)
	for _, focus := range []float64{1, rng.DefaultFocus, 10} {
		e := rng.New(rng.WithSeed(seedTest))
		xs := make([]float64, draws)
		for i := range xs {
			xs[i] = e.HalfNormalReal(rMin, rMax, focus)
			require.GreaterOrEqual(t, xs[i], rMin)
			require.LessOrEqual(t, xs[i], rMax)
		}
		means = append(means, stat.Mean(xs, nil))
	}
	// Higher focus pulls the mass toward rMax.
	require.Less(t, means[0], means[1])
	require.Less(t, means[1], means[2])
	require.Greater(t, means[1], (rMin+rMax)/2)
}

// TestHalfNormalReal_ScaleIsStdDev: with span 10 and focus 4 the normal has
// σ = 2.5, so the distance below rMax is half-normal with mean σ·√(2/π) ≈ 1.995.
// Reading span/focus as a variance would give σ ≈ 1.58 and a mean near 1.26.
func TestHalfNormalReal_ScaleIsStdDev(t *testing.T) {
	t.Parallel()

	const rMin, rMax, focus = 0.0, 10.0, 4.0
	sigma := (rMax - rMin) / focus

	e := rng.New(rng.WithSeed(seedTest))
	ds := make([]float64, draws)
	for i := range ds {
		ds[i] = rMax - e.HalfNormalReal(rMin, rMax, focus)
	}
	// standard error ≈ 0.005 at 100k draws
	require.InDelta(t, sigma*math.Sqrt(2/math.Pi), stat.Mean(ds, nil), 0.04)
}

func TestHalfNormalReal_ZeroSpan(t *testing.T) {
	t.Parallel()

	e := rng.New(rng.WithSeed(seedTest))
	require.Equal(t, 3.0, e.HalfNormalReal(3, 3, rng.DefaultFocus))
}

func TestFoldHalfNormal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		v, span float64
		want    float64
	}{
		{"inside", 2, 3, 2},
		{"above reflects around span", 4, 3, 2},
		{"below reflects around zero", -1, 3, 1},
		{"far above folds then clamps", 10, 3, 3},
		{"far below clamps", -9, 3, 3},
		{"edges", 3, 3, 3},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, rng.FoldHalfNormal(tc.v, tc.span))
		})
	}
}

func TestHalfNormalInt_SupportAndMode(t *testing.T) {
	t.Parallel()

	e := rng.New(rng.WithSeed(seedTest))
	counts := make([]int, 6)
	var i int
	for i = 0; i < draws; i++ {
		v := e.HalfNormalInt(0, 5, rng.DefaultFocus)
		require.GreaterOrEqual(t, v, 0)
		require.LessOrEqual(t, v, 5)
		counts[v]++
	}
	// The top bucket carries the most mass.
	for v := 0; v < 5; v++ {
		require.Greater(t, counts[5], counts[v], "bucket %d", v)
	}
}

// TestHalfNormalInt_ExtremeRanges: the integer half-normal keeps its support
// when the bounds sit beyond float64 integer precision or next to MaxInt.
func TestHalfNormalInt_ExtremeRanges(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		rMin, rMax int
	}{
		{"beyond-2^53", 100_000_000_000_000_003, 100_000_000_000_000_005},
		{"near-max", math.MaxInt - 10, math.MaxInt - 1},
		{"at-max", math.MaxInt - 3, math.MaxInt},
		{"full-range", math.MinInt, math.MaxInt},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			e := rng.New(rng.WithSeed(seedTest))
			var i int
			for i = 0; i < 5_000; i++ {
				v := e.HalfNormalInt(tc.rMin, tc.rMax, rng.DefaultFocus)
				require.GreaterOrEqual(t, v, tc.rMin)
				require.LessOrEqual(t, v, tc.rMax)
			}
		})
	}
}

func TestEngine_ContractViolationsPanic(t *testing.T) {
	t.Parallel()

	e := rng.New(rng.WithSeed(seedTest))
	cases := []struct {
		name     string
		sentinel error
		fn       func()
	}{
		{"UniformReal inverted", rng.ErrInvertedBounds, func() { e.UniformReal(5, 2) }},
		{"UniformReal NaN", rng.ErrInvertedBounds, func() { e.UniformReal(math.NaN(), 1) }},
		{"UniformInt inverted", rng.ErrInvertedBounds, func() { e.UniformInt(3, 2) }},
		{"HalfNormalReal inverted", rng.ErrInvertedBounds, func() { e.HalfNormalReal(4, 1, 3) }},
		{"HalfNormalReal focus", rng.ErrBadFocus, func() { e.HalfNormalReal(1, 4, 0) }},
		{"HalfNormalInt inverted", rng.ErrInvertedBounds, func() { e.HalfNormalInt(4, 1, 3) }},
		{"Disk negative", rng.ErrNegativeRadius, func() { e.Disk(-1, 1) }},
		{"Disk inverted", rng.ErrNegativeRadius, func() { e.Disk(2, 1) }},
		{"Ball negative", rng.ErrNegativeRadius, func() { e.Ball(-0.5, 1) }},
		{"Ball inverted", rng.ErrNegativeRadius, func() { e.Ball(3, 1) }},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			requireContractPanic(t, tc.sentinel, tc.fn)
		})
	}
}
