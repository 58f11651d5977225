package tests

import (
	"math/rand"
	"time"
)

// Randomizer produces random test data. Not seeded deterministically on
// purpose: property-style tests should hold for any input.
type Randomizer struct {
	Float64    func() float64
	IntBetween func(minValue, maxValue int) int
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		IntBetween: func(minValue, maxValue int) int {
			return minValue + random.Intn(maxValue-minValue+1)
		},
	}
}
