// Package sampler draws configurations from bounded spaces for sampling-based
// motion planners and collision checkers.
//
// 🚀 Variants:
//
//	Box           R^N box               → N-vector
//	SE2           planar box pose       → (x, y, heading)
//	SE2Disk       planar annulus pose   → (x, y, heading)
//	SE3Euler      spatial box pose      → (x, y, z, roll, pitch, yaw)
//	SE3Quat       spatial box pose      → (x, y, z, qx, qy, qz, qw)
//	SE3EulerBall  spatial ball pose     → (x, y, z, roll, pitch, yaw)
//	SE3QuatBall   spatial ball pose     → (x, y, z, qx, qy, qz, qw)
//
// Every variant owns one *rng.Engine and implements Sampler. Sample returns a
// freshly allocated *mat.VecDense that belongs to the caller.
//
// ⚙️ Usage:
//
//	s, err := sampler.NewSE3Quat(r3.Vec{}, r3.Vec{X: 1, Y: 1, Z: 1}, sampler.WithSeed(42))
//	if err != nil {
//	  // errors.Is(err, sampler.ErrInvertedBounds) ...
//	}
//	q := s.Sample() // 7-vector
//
// Headings are uniform over [-π, π). Orientations are uniform over SO(3);
// Euler forms follow rotation.EulerXYZ (roll in [0, π], pitch and yaw in [-π, π]).
//
// Concurrency: Sample mutates the owned engine. A sampler must be used by one
// goroutine at a time; distinct samplers are independent.
package sampler
