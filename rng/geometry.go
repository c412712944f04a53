// SPDX-License-Identifier: MIT
// Package: lvsample/rng
//
// geometry.go — orientation and region draws.
//
// Every transform here is uniform with respect to the natural measure of its
// target (rotation group, area, volume), not per coordinate.

package rng

import "math"

// Quaternion returns a unit quaternion ordered (x, y, z, w), uniformly
// distributed over SO(3).
//
// Algorithm (Shoemake, "Uniform random rotations", Graphics Gems III):
//
//	u0,u1,u2 ~ U[0,1)
//	r1 = √(1−u0), r2 = √u0, θ1 = 2πu1, θ2 = 2πu2
//	(x, y, z, w) = (sin θ1·r1, cos θ1·r1, sin θ2·r2, cos θ2·r2)
//
// |q|² = r1² + r2² = 1 up to rounding.
func (e *Engine) Quaternion() [4]float64 {
	x0 := e.Uniform01()
	r1 := math.Sqrt(1.0 - x0)
	r2 := math.Sqrt(x0)
	t1 := 2.0 * math.Pi * e.Uniform01()
	t2 := 2.0 * math.Pi * e.Uniform01()
	s1, c1 := math.Sincos(t1)
	s2, c2 := math.Sincos(t2)
	return [4]float64{s1 * r1, c1 * r1, s2 * r2, c2 * r2}
}

// EulerRPY returns independent (roll, pitch, yaw) draws, each in [-π, π).
func (e *Engine) EulerRPY() [3]float64 {
	var v [3]float64
	v[0] = e.UniformReal(-math.Pi, math.Pi)
	v[1] = e.UniformReal(-math.Pi, math.Pi)
	v[2] = e.UniformReal(-math.Pi, math.Pi)
	return v
}

// Disk returns a point uniformly distributed by area over the annulus
// rMin <= |p| <= rMax. The radius is √ of a uniform draw over [rMin², rMax²];
// the angle is uniform over [0, 2π). Panics unless 0 <= rMin <= rMax.
func (e *Engine) Disk(rMin, rMax float64) (x, y float64) {
	checkRadii("Disk", rMin, rMax)
	a := e.Uniform01()
	b := e.Uniform01()
	r := math.Sqrt(a*rMax*rMax + (1-a)*rMin*rMin)
	s, c := math.Sincos(2 * math.Pi * b)
	return r * c, r * s
}

// Ball returns a point uniformly distributed by volume over the spherical
// shell rMin <= |p| <= rMax. The radius is ∛ of a uniform draw over
// [rMin³, rMax³]; the direction is uniform on the unit sphere
// (θ = acos(1−2b), φ = 2πc). Panics unless 0 <= rMin <= rMax.
func (e *Engine) Ball(rMin, rMax float64) (x, y, z float64) {
	checkRadii("Ball", rMin, rMax)
	a := e.Uniform01()
	b := e.Uniform01()
	c := e.Uniform01()
	r := math.Cbrt(a*rMax*rMax*rMax + (1-a)*rMin*rMin*rMin)
	sinTheta, cosTheta := math.Sincos(math.Acos(1 - 2*b))
	sinPhi, cosPhi := math.Sincos(2 * math.Pi * c)
	return r * cosPhi * sinTheta, r * sinPhi * sinTheta, r * cosTheta
}
