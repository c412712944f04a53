// SPDX-License-Identifier: MIT
// Package: lvsample/rng
//
// seed.go — the process-wide seed source.
//
// Lifecycle:
//   - Uninitialised until first use; then seeded from the wall clock, or from
//     the last SetSeed value.
//   - Each New() without WithSeed takes the next derived seed. Derivation is a
//     bijection of (processSeed + counter), so seeds never repeat within one
//     process seed until the 32-bit counter wraps.
//   - SetSeed replaces the process seed and resets the counter.
//
// Concurrency: every field is guarded by seedSource.mu. Drawing from an Engine
// never enters this file.

package rng

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type seedSource struct {
	mu     sync.Mutex
	seed   uint32
	ready  bool
	issued uint32 // Engines derived since the process seed was last set
	log    zerolog.Logger
}

var global = seedSource{log: zerolog.Nop()}

// SetSeed fixes the process seed used by every Engine constructed after the
// call. Seed 0 is replaced by 1. Calling SetSeed after Engines were already
// derived is legal but logged: those Engines keep their old seeds.
//
// Complexity: O(1).
func SetSeed(seed uint32) {
	global.mu.Lock()
	defer global.mu.Unlock()

	if global.issued > 0 {
		global.log.Warn().
			Uint32("seed", seed).
			Uint32("engines", global.issued).
			Msg("rng: engines already created with the previous seed; only new engines follow the new seed")
	}
	if seed == 0 {
		global.log.Warn().Msg("rng: seed cannot be 0, using 1 instead")
		seed = 1
	}
	global.seed = seed
	global.ready = true
	global.issued = 0
}

// Seed returns the process seed that was, or will be, used to derive Engine
// seeds. Passing it to SetSeed in a later run reproduces the same Engines.
//
// Complexity: O(1).
func Seed() uint32 {
	global.mu.Lock()
	defer global.mu.Unlock()

	global.ensure()
	return global.seed
}

// SetLogger installs the logger used for seed warnings. The default discards
// everything.
func SetLogger(l zerolog.Logger) {
	global.mu.Lock()
	global.log = l
	global.mu.Unlock()
}

// ensure initialises the process seed from the clock. Caller holds mu.
func (s *seedSource) ensure() {
	if s.ready {
		return
	}
	s.seed = clockSeed(time.Now().UnixNano())
	s.ready = true
	s.log.Debug().Uint32("seed", s.seed).Msg("rng: process seed initialised from clock")
}

// next returns a fresh Engine seed. Zero is skipped so that every derived
// seed is also a valid SetSeed argument.
func (s *seedSource) next() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensure()
	var v uint32
	for v == 0 {
		s.issued++
		v = mix32(s.seed + s.issued)
	}
	return v
}

// clockSeed folds a nanosecond timestamp into a non-zero 32-bit seed through
// the SplitMix64 finaliser, so consecutive timestamps land far apart.
func clockSeed(nanos int64) uint32 {
	var x uint64
	x = uint64(nanos) + 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	v := uint32(x) ^ uint32(x>>32)
	if v == 0 {
		v = 1
	}
	return v
}

// mix32 is the MurmurHash3 32-bit finaliser. Each step (xor-shift, odd
// multiply) is invertible, so mix32 is a bijection on uint32 and mix32(0) == 0.
func mix32(x uint32) uint32 {
	x ^= x >> 16
	x *= 0x85ebca6b
	x ^= x >> 13
	x *= 0xc2b2ae35
	x ^= x >> 16
	return x
}
