// SPDX-License-Identifier: MIT

package rng

// Test bridge: exposes the pure kernels behind the Engine draws so rng_test can
// pin floating-point edge cases that a real generator hits with probability
// ~2^-53.
var (
	UniformIntFrom  = uniformIntFrom
	UniformRealFrom = uniformRealFrom
	FoldHalfNormal  = foldHalfNormal
	Mix32           = mix32
	ClockSeed       = clockSeed
)
