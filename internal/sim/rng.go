package sim

import "math/rand"

// Rand is the randomness source used by world generation.
// *rand.Rand satisfies it; tests substitute scripted sources.
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded math/rand source.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// uniform returns a value in [lo, hi).
func uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// WeightedRandom picks one item with probability proportional to its weight.
// It draws r in [0, total) and returns the first item whose cumulative weight
// is >= r. It falls back to the first item when nothing matches, so it never
// fails for a non-empty slice. Items without a weight are never chosen.
func WeightedRandom[T any](r Rand, items []T, weights []float64) T {
	var zero T
	if len(items) == 0 {
		return zero
	}

	n := min(len(items), len(weights))
	total := 0.0
	for _, w := range weights[:n] {
		total += w
	}

	pick := r.Float64() * total
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += weights[i]
		if pick <= sum {
			return items[i]
		}
	}

	return items[0]
}
