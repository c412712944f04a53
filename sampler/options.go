// SPDX-License-Identifier: MIT
// Package: lvsample/sampler
//
// options.go — functional options and the engine-owning base.
//
// Contract:
//   • Options are functional (type Option func(*samplerConfig)).
//   • Option constructors panic on meaningless input (nil engine).
//   • WithEngine wins over WithSeed when both are given.

package sampler

import "github.com/katalvlaran/lvsample/rng"

// Option customizes how a sampler obtains its engine.
type Option func(*samplerConfig)

type samplerConfig struct {
	engine  *rng.Engine
	seed    uint32
	hasSeed bool
}

// WithEngine hands the sampler an existing engine. The sampler takes
// ownership: do not draw from e elsewhere while the sampler is in use.
// Panics on nil.
func WithEngine(e *rng.Engine) Option {
	if e == nil {
		panic("sampler: WithEngine(nil)")
	}
	return func(c *samplerConfig) {
		c.engine = e
	}
}

// WithSeed builds the sampler's engine from a fixed seed instead of the
// process seed source.
func WithSeed(seed uint32) Option {
	return func(c *samplerConfig) {
		c.seed = seed
		c.hasSeed = true
	}
}

// base is composed into every sampler. It owns exactly one engine; Sample
// methods take pointer receivers because every draw mutates it.
type base struct {
	eng *rng.Engine
}

func newBase(opts []Option) base {
	var cfg samplerConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	switch {
	case cfg.engine != nil:
		return base{eng: cfg.engine}
	case cfg.hasSeed:
		return base{eng: rng.New(rng.WithSeed(cfg.seed))}
	default:
		return base{eng: rng.New()}
	}
}

// Engine returns the engine owned by the sampler, e.g. to log its Seed.
func (b *base) Engine() *rng.Engine { return b.eng }
