package sampler

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvsample/rng"
)

// Sampler is the capability shared by every variant: a fixed-length vector
// per call. Sample mutates the sampler's engine.
type Sampler interface {
	Sample() *mat.VecDense
	Dim() int
	Engine() *rng.Engine
}

var (
	_ Sampler = (*Box)(nil)
	_ Sampler = (*SE2)(nil)
	_ Sampler = (*SE2Disk)(nil)
	_ Sampler = (*SE3Euler)(nil)
	_ Sampler = (*SE3Quat)(nil)
	_ Sampler = (*SE3EulerBall)(nil)
	_ Sampler = (*SE3QuatBall)(nil)
)

// Draw returns n consecutive samples from s, in draw order. n <= 0 yields nil.
//
// Complexity: O(n·Dim).
func Draw(s Sampler, n int) []*mat.VecDense {
	if n <= 0 {
		return nil
	}
	out := make([]*mat.VecDense, n)
	for i := range out {
		out[i] = s.Sample()
	}
	return out
}
