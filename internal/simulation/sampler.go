package simulation

import (
	"math"

	"gonum.org/v1/gonum/mathext/prng"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler draws one gas price from a closed range.
type Sampler interface {
	Draw(min, max float64) float64
}

// UniformSampler draws uniformly distributed values from a Mersenne Twister
// source. It is not safe for concurrent use.
type UniformSampler struct {
	src *prng.MT19937
}

// NewUniformSampler creates a sampler seeded with seed.
func NewUniformSampler(seed uint64) *UniformSampler {
	src := prng.NewMT19937()
	src.Seed(seed)
	return &UniformSampler{src: src}
}

// Draw returns a value drawn uniformly between min and max. Results always
// lie within [min, max]; min == max returns min. Reversed bounds are sampled
// between max and min.
func (s *UniformSampler) Draw(min, max float64) float64 {
	if min == max {
		return min
	}

	v := distuv.Uniform{Min: min, Max: max, Src: s.src}.Rand()

	lo, hi := math.Min(min, max), math.Max(min, max)
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
