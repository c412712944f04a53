// Package rotation converts between unit quaternions, 3×3 rotation matrices
// and XYZ (roll, pitch, yaw) Euler angles on top of gonum's num/quat and
// spatial/r3 types.
//
// Conventions:
//   - Quaternions arrive in (x, y, z, w) order, the order rng.Engine emits.
//   - Euler angles follow R = Rx(roll) · Ry(pitch) · Rz(yaw) acting on column
//     vectors. EulerXYZ returns roll in [0, π] and pitch, yaw in [-π, π]; the
//     roll range is halved because (roll, pitch, yaw) and
//     (roll±π, π−pitch, yaw±π) describe the same rotation.
//
// All functions are pure and safe for concurrent use.
package rotation

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// FromXYZW builds a quaternion from components ordered (x, y, z, w).
func FromXYZW(x, y, z, w float64) quat.Number {
	return quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z}
}

// XYZW returns q's components ordered (x, y, z, w).
func XYZW(q quat.Number) [4]float64 {
	return [4]float64{q.Imag, q.Jmag, q.Kmag, q.Real}
}

// Matrix returns the rotation matrix of the unit quaternion q. A non-unit q
// yields a scaled, non-orthogonal matrix.
func Matrix(q quat.Number) *r3.Mat {
	return r3.Rotation(q).Mat()
}

// EulerXYZ extracts (roll, pitch, yaw) as r3.Vec{X: roll, Y: pitch, Z: yaw}
// such that m = Rx(roll)·Ry(pitch)·Rz(yaw).
//
// Algorithm (Tait–Bryan extraction on the axis triple i=0, j=1, k=2):
//  1. a0 = atan2(m12, m22); c2 = ‖(m00, m01)‖.
//  2. If a0 > 0, shift a0 by −π and take a1 = atan2(−m02, −c2);
//     otherwise a1 = atan2(−m02, c2).
//  3. a2 = atan2(sin a0·m20 − cos a0·m10, cos a0·m11 − sin a0·m21).
//  4. Return −(a0, a1, a2).
//
// Step 2 pins the first angle to [-π, 0] before negation, which resolves the
// two-fold ambiguity the same way for every input.
func EulerXYZ(m *r3.Mat) r3.Vec {
	var a0, a1, a2 float64
	a0 = math.Atan2(m.At(1, 2), m.At(2, 2))
	c2 := math.Hypot(m.At(0, 0), m.At(0, 1))
	if a0 > 0 {
		a0 -= math.Pi
		a1 = math.Atan2(-m.At(0, 2), -c2)
	} else {
		a1 = math.Atan2(-m.At(0, 2), c2)
	}
	s1, c1 := math.Sincos(a0)
	a2 = math.Atan2(s1*m.At(2, 0)-c1*m.At(1, 0), c1*m.At(1, 1)-s1*m.At(2, 1))
	return r3.Vec{X: -a0, Y: -a1, Z: -a2}
}

// EulerFromQuat is EulerXYZ(Matrix(q)).
func EulerFromQuat(q quat.Number) r3.Vec {
	return EulerXYZ(Matrix(q))
}

// FromEulerXYZ composes Rx(roll)·Ry(pitch)·Rz(yaw) as a unit quaternion.
func FromEulerXYZ(roll, pitch, yaw float64) quat.Number {
	qx := quat.Number(r3.NewRotation(roll, r3.Vec{X: 1}))
	qy := quat.Number(r3.NewRotation(pitch, r3.Vec{Y: 1}))
	qz := quat.Number(r3.NewRotation(yaw, r3.Vec{Z: 1}))
	return quat.Mul(qx, quat.Mul(qy, qz))
}
