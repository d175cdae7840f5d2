package services

import "math"

const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// SeededRandom is a linear congruential generator. The same seed always
// yields the same sequence, which keeps the synthetic corpus reproducible.
type SeededRandom struct {
	seed int64
}

// NewSeededRandom creates a generator starting from seed. Seeds are reduced
// into [0, 233280) so the state never goes negative or overflows.
func NewSeededRandom(seed int64) *SeededRandom {
	return &SeededRandom{seed: ((seed % lcgModulus) + lcgModulus) % lcgModulus}
}

// Next advances the generator and returns a float in [0, 1)
func (r *SeededRandom) Next() float64 {
	r.seed = (r.seed*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(r.seed) / lcgModulus
}

// NextInt returns an integer in [min, max]
func (r *SeededRandom) NextInt(min, max int) int {
	return int(math.Floor(r.Next()*float64(max-min+1))) + min
}

// NextFloat returns a float in [min, max)
func (r *SeededRandom) NextFloat(min, max float64) float64 {
	return r.Next()*(max-min) + min
}

// Pick returns a uniformly drawn element of items
func Pick[T any](r *SeededRandom, items []T) T {
	return items[r.NextInt(0, len(items)-1)]
}
