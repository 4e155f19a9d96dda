package dice

import (
	"math"
	"math/rand"
	"time"
)

// Source supplies uniform floats in [0,1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded source. A zero seed uses the wall clock.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func floatBetween(rng Source, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// intBetween returns an integer in [lo,hi], both inclusive
func intBetween(rng Source, lo, hi int) int {
	n := lo + int(math.Floor(rng.Float64()*float64(hi-lo+1)))
	if n > hi {
		n = hi
	}
	return n
}
