// Package lvsample is a seeded sampling toolkit for sampling-based motion
// planning and collision checking.
//
// 🚀 What is in the box?
//
//	rng/       — Engine: MT19937-backed uniform, integer, boolean, Gaussian and
//	             half-normal draws plus uniform quaternions, disks and balls;
//	             a process-wide seed source that hands every Engine a distinct seed
//	rotation/  — quaternion ↔ matrix ↔ XYZ Euler conversions on gonum types
//	sampler/   — configuration-space samplers: Box (R^N), SE2, SE2Disk,
//	             SE3Euler, SE3Quat, SE3EulerBall, SE3QuatBall
//	cmd/samplectl — command-line front end printing samples as CSV or JSON
//
// ✨ Reproducibility
//
//   - Every Engine reports its Seed; log it and rebuild with rng.WithSeed.
//   - rng.SetSeed pins the process seed; Engines built afterward replay exactly.
//   - Samplers own one Engine each and never share it implicitly.
//
// Quick example:
//
//	rng.SetSeed(42)
//	s, _ := sampler.NewSE2(r2.Vec{X: 0, Y: 0}, r2.Vec{X: 10, Y: 5})
//	q := s.Sample() // (x, y, heading), heading in [-π, π)
//
//	go get github.com/katalvlaran/lvsample
package lvsample
