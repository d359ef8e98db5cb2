// Package randbuf generates reproducible pseudo-random register buffers for
// the benchmark harness and for fuzz-style tests, grounded in
// fastpfor_test.go's rand.New(rand.NewSource(seed)) usage.
package randbuf

import (
	"math/rand"

	"github.com/cardlabs/hlldense"
)

// Raw fills a fresh Raw buffer with values in [0, RegisterMax] drawn from a
// rand.Rand seeded with seed. Same seed, same buffer, every time.
func Raw(seed int64) *hlldense.Raw {
	r := rand.New(rand.NewSource(seed))
	var raw hlldense.Raw
	for i := range raw {
		raw[i] = byte(r.Intn(hlldense.RegisterMax + 1))
	}
	return &raw
}

// Dense fills a fresh Dense buffer by generating a random Raw buffer and
// compressing it with the scalar baseline, so the result is always a
// well-formed packed encoding regardless of which kernel later reads it.
func Dense(seed int64) *hlldense.Dense {
	raw := Raw(seed)
	var dense hlldense.Dense
	hlldense.CompressScalar(&dense, raw)
	return &dense
}
