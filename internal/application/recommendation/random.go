package recommendation

import (
	"math/rand/v2"
	"time"
)

// Picker is the randomness capability threaded through generation
type Picker interface {
	IntN(n int) int
}

// NewPicker returns a seeded generator scoped to one request
func NewPicker(seed uint64) Picker {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SeedSource produces the seed of each request's generator
type SeedSource func() uint64

// FixedSeed makes every request draw the same sequence
func FixedSeed(seed uint64) SeedSource {
	return func() uint64 { return seed }
}

// TimeSeed seeds each request from the wall clock
func TimeSeed() SeedSource {
	return func() uint64 { return uint64(time.Now().UnixNano()) }
}

func pick(rng Picker, options []string) string {
	if len(options) == 1 {
		return options[0]
	}
	return options[rng.IntN(len(options))]
}
