// SPDX-License-Identifier: MIT
// Package: lvsample/sampler
//
// se3.go — spatial poses with Euler or quaternion orientation.
//
// Position comes from either an axis-aligned box (box3) or a ball centered at
// the origin (ball3). Orientation is always a uniform unit quaternion from the
// engine; the Euler forms convert it with rotation.EulerFromQuat.

package sampler

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvsample/rotation"
)

const (
	// SE3EulerDim is the length of (x, y, z, roll, pitch, yaw).
	SE3EulerDim = 6
	// SE3QuatDim is the length of (x, y, z, qx, qy, qz, qw).
	SE3QuatDim = 7
)

// box3 holds a validated 3D position box.
type box3 struct {
	lower, upper r3.Vec
}

func (b *box3) setBound(method string, lower, upper r3.Vec) error {
	if err := validateInterval(method, 0, lower.X, upper.X); err != nil {
		return err
	}
	if err := validateInterval(method, 1, lower.Y, upper.Y); err != nil {
		return err
	}
	if err := validateInterval(method, 2, lower.Z, upper.Z); err != nil {
		return err
	}
	b.lower, b.upper = lower, upper
	return nil
}

// Bound returns the position box corners.
func (b *box3) Bound() (lower, upper r3.Vec) { return b.lower, b.upper }

// ball3 holds a validated ball radius; the inner radius is always 0.
type ball3 struct {
	r float64
}

func (b *ball3) setBound(method string, r float64) error {
	if err := validateRadii(method, 0, r); err != nil {
		return err
	}
	b.r = r
	return nil
}

// Bound returns the ball radius.
func (b *ball3) Bound() float64 { return b.r }

// boxPosition draws x, y, z independently inside the box, in axis order.
func (s *base) boxPosition(b *box3, q []float64) {
	q[0] = s.eng.UniformReal(b.lower.X, b.upper.X)
	q[1] = s.eng.UniformReal(b.lower.Y, b.upper.Y)
	q[2] = s.eng.UniformReal(b.lower.Z, b.upper.Z)
}

// ballPosition draws a point uniform by volume in the ball of radius r.
func (s *base) ballPosition(b *ball3, q []float64) {
	q[0], q[1], q[2] = s.eng.Ball(0, b.r)
}

// eulerOrientation writes (roll, pitch, yaw) of a uniform rotation into q[3:6].
func (s *base) eulerOrientation(q []float64) {
	v := s.eng.Quaternion()
	a := rotation.EulerFromQuat(rotation.FromXYZW(v[0], v[1], v[2], v[3]))
	q[3], q[4], q[5] = a.X, a.Y, a.Z
}

// quatOrientation writes a uniform unit quaternion (x, y, z, w) into q[3:7].
func (s *base) quatOrientation(q []float64) {
	v := s.eng.Quaternion()
	copy(q[3:7], v[:])
}

// SE3Euler samples spatial poses in a position box with Euler orientation.
// The zero value is not usable; construct with NewSE3Euler.
type SE3Euler struct {
	base
	box3
}

// NewSE3Euler returns an SE3Euler sampler over the position box [lower, upper).
//
// Errors: ErrNonFinite, ErrInvertedBounds.
func NewSE3Euler(lower, upper r3.Vec, opts ...Option) (*SE3Euler, error) {
	s := &SE3Euler{base: newBase(opts)}
	if err := s.box3.setBound("NewSE3Euler", lower, upper); err != nil {
		return nil, err
	}
	return s, nil
}

// SetBound replaces the position box. On error the old box is kept.
func (s *SE3Euler) SetBound(lower, upper r3.Vec) error {
	return s.box3.setBound("SE3Euler.SetBound", lower, upper)
}

// Dim returns SE3EulerDim.
func (s *SE3Euler) Dim() int { return SE3EulerDim }

// Sample returns (x, y, z, roll, pitch, yaw).
func (s *SE3Euler) Sample() *mat.VecDense {
	q := make([]float64, SE3EulerDim)
	s.boxPosition(&s.box3, q)
	s.eulerOrientation(q)
	return mat.NewVecDense(SE3EulerDim, q)
}

// SE3Quat samples spatial poses in a position box with quaternion orientation.
// The zero value is not usable; construct with NewSE3Quat.
type SE3Quat struct {
	base
	box3
}

// NewSE3Quat returns an SE3Quat sampler over the position box [lower, upper).
//
// Errors: ErrNonFinite, ErrInvertedBounds.
func NewSE3Quat(lower, upper r3.Vec, opts ...Option) (*SE3Quat, error) {
	s := &SE3Quat{base: newBase(opts)}
	if err := s.box3.setBound("NewSE3Quat", lower, upper); err != nil {
		return nil, err
	}
	return s, nil
}

// SetBound replaces the position box. On error the old box is kept.
func (s *SE3Quat) SetBound(lower, upper r3.Vec) error {
	return s.box3.setBound("SE3Quat.SetBound", lower, upper)
}

// Dim returns SE3QuatDim.
func (s *SE3Quat) Dim() int { return SE3QuatDim }

// Sample returns (x, y, z, qx, qy, qz, qw).
func (s *SE3Quat) Sample() *mat.VecDense {
	q := make([]float64, SE3QuatDim)
	s.boxPosition(&s.box3, q)
	s.quatOrientation(q)
	return mat.NewVecDense(SE3QuatDim, q)
}

// SE3EulerBall samples spatial poses in a ball around the origin with Euler
// orientation. The zero value is not usable; construct with NewSE3EulerBall.
type SE3EulerBall struct {
	base
	ball3
}

// NewSE3EulerBall returns an SE3EulerBall sampler of radius r.
//
// Errors: ErrNonFinite, ErrNegativeRadius.
func NewSE3EulerBall(r float64, opts ...Option) (*SE3EulerBall, error) {
	s := &SE3EulerBall{base: newBase(opts)}
	if err := s.ball3.setBound("NewSE3EulerBall", r); err != nil {
		return nil, err
	}
	return s, nil
}

// SetBound replaces the radius. On error the old radius is kept.
func (s *SE3EulerBall) SetBound(r float64) error {
	return s.ball3.setBound("SE3EulerBall.SetBound", r)
}

// Dim returns SE3EulerDim.
func (s *SE3EulerBall) Dim() int { return SE3EulerDim }

// Sample returns (x, y, z, roll, pitch, yaw).
func (s *SE3EulerBall) Sample() *mat.VecDense {
	q := make([]float64, SE3EulerDim)
	s.ballPosition(&s.ball3, q)
	s.eulerOrientation(q)
	return mat.NewVecDense(SE3EulerDim, q)
}

// SE3QuatBall samples spatial poses in a ball around the origin with
// quaternion orientation. The zero value is not usable; construct with
// NewSE3QuatBall.
type SE3QuatBall struct {
	base
	ball3
}

// NewSE3QuatBall returns an SE3QuatBall sampler of radius r.
//
// Errors: ErrNonFinite, ErrNegativeRadius.
func NewSE3QuatBall(r float64, opts ...Option) (*SE3QuatBall, error) {
	s := &SE3QuatBall{base: newBase(opts)}
	if err := s.ball3.setBound("NewSE3QuatBall", r); err != nil {
		return nil, err
	}
	return s, nil
}

// SetBound replaces the radius. On error the old radius is kept.
func (s *SE3QuatBall) SetBound(r float64) error {
	return s.ball3.setBound("SE3QuatBall.SetBound", r)
}

// Dim returns SE3QuatDim.
func (s *SE3QuatBall) Dim() int { return SE3QuatDim }

// Sample returns (x, y, z, qx, qy, qz, qw).
func (s *SE3QuatBall) Sample() *mat.VecDense {
	q := make([]float64, SE3QuatDim)
	s.ballPosition(&s.ball3, q)
	s.quatOrientation(q)
	return mat.NewVecDense(SE3QuatDim, q)
}
