package hlldense

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

var mergeTiers = []struct {
	name string
	fn   func(raw *Raw, dense *Dense)
}{
	{"Scalar", MergeScalar},
	{"SIMD256Shuffle", MergeSIMD256Shuffle},
	{"SIMD256ShufflePrefix", MergeSIMD256ShufflePrefix},
	{"SIMD512Shuffle", MergeSIMD512Shuffle},
	{"SIMD512Gather", MergeSIMD512Gather},
}

func TestMergeAllZero(t *testing.T) {
	var dense Dense
	for _, tc := range mergeTiers {
		t.Run(tc.name, func(t *testing.T) {
			var raw Raw
			tc.fn(&raw, &dense)
			for i, v := range raw {
				assert.EqualValuesf(t, 0, v, "register %d", i)
			}
		})
	}
}

func TestMergeRecoversCompressedRamp(t *testing.T) {
	var want Raw
	for i := range want {
		want[i] = byte(i % 64)
	}
	var dense Dense
	CompressScalar(&dense, &want)

	for _, tc := range mergeTiers {
		t.Run(tc.name, func(t *testing.T) {
			var raw Raw
			tc.fn(&raw, &dense)
			assert.Equal(t, want, raw)
		})
	}
}

func TestMergeSingleHighRegister(t *testing.T) {
	var raw Raw
	raw[7777] = 42
	var dense Dense
	CompressScalar(&dense, &raw)

	for _, tc := range mergeTiers {
		t.Run(tc.name, func(t *testing.T) {
			var got Raw
			tc.fn(&got, &dense)
			assert.Equal(t, raw, got)
		})
	}
}

func TestMergeMaxSemantics(t *testing.T) {
	var raw, other Raw
	for i := range raw {
		raw[i] = byte(i % 64)
		other[i] = byte((i + 17) % 64)
	}
	var dense Dense
	CompressScalar(&dense, &other)

	for _, tc := range mergeTiers {
		t.Run(tc.name, func(t *testing.T) {
			got := raw
			tc.fn(&got, &dense)
			for i := range got {
				want := raw[i]
				if other[i] > want {
					want = other[i]
				}
				assert.EqualValuesf(t, want, got[i], "register %d", i)
			}
		})
	}
}

func TestMergeIdempotent(t *testing.T) {
	dense := randomDense(t, 1)
	for _, tc := range mergeTiers {
		t.Run(tc.name, func(t *testing.T) {
			var raw Raw
			tc.fn(&raw, dense)
			once := raw
			tc.fn(&raw, dense)
			assert.Equal(t, once, raw)
		})
	}
}

func TestMergeMonotone(t *testing.T) {
	dense := randomDense(t, 2)
	for _, tc := range mergeTiers {
		t.Run(tc.name, func(t *testing.T) {
			var raw Raw
			for i := range raw {
				raw[i] = byte((i * 13) % 64)
			}
			pre := raw
			tc.fn(&raw, dense)
			for i := range raw {
				assert.GreaterOrEqualf(t, raw[i], pre[i], "register %d", i)
				assert.GreaterOrEqualf(t, raw[i], Get(dense, i), "register %d", i)
			}
		})
	}
}

func TestMergeTiersAgreeWithScalarFuzz(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for round := 0; round < 20; round++ {
		var seedRaw Raw
		for i := range seedRaw {
			seedRaw[i] = byte(r.Intn(RegisterMax + 1))
		}
		var dense Dense
		CompressScalar(&dense, &seedRaw)

		want := seedRaw
		MergeScalar(&want, &dense)

		for _, tc := range mergeTiers[1:] {
			got := seedRaw
			tc.fn(&got, &dense)
			if idx := EquivalenceCheckRaw(&got, &want); idx != -1 {
				t.Fatalf("round %d: %s diverges from scalar at register %d: got %d want %d", round, tc.name, idx, got[idx], want[idx])
			}
		}
	}
}

func TestMergeSIMD256ShuffleRawUnsafe(t *testing.T) {
	dense := randomDense(t, 3)
	padded := make([]byte, 4+DenseBytes+16)
	copy(padded[4:], dense[:])

	var want Raw
	MergeScalar(&want, dense)

	var got Raw
	MergeSIMD256ShuffleRawUnsafe(&got, padded)
	assert.Equal(t, want, got)
}

func randomDense(t *testing.T, seed int64) *Dense {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	var raw Raw
	for i := range raw {
		raw[i] = byte(r.Intn(RegisterMax + 1))
	}
	var dense Dense
	CompressScalar(&dense, &raw)
	return &dense
}
