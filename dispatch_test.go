package hlldense

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDynamicEntryPointsAgreeWithScalar exercises the public Merge/Compress/
// Histogram entry points (whichever tier dispatch.go selected for this CPU)
// against the scalar baseline, since the dispatch tier running CI is not
// under test control.
func TestDynamicEntryPointsAgreeWithScalar(t *testing.T) {
	dense := randomDense(t, 17)

	var wantRaw Raw
	MergeScalar(&wantRaw, dense)
	var gotRaw Raw
	Merge(&gotRaw, dense)
	assert.Equal(t, wantRaw, gotRaw)

	var wantDense Dense
	CompressScalar(&wantDense, &gotRaw)
	var gotDense Dense
	Compress(&gotDense, &gotRaw)
	assert.Equal(t, wantDense, gotDense)

	var wantHist, gotHist Histogram
	HistogramScalar(&wantHist, dense)
	Histogram(&gotHist, dense)
	assert.Equal(t, wantHist, gotHist)
}

func TestTierReportsAKnownValue(t *testing.T) {
	tier := Tier()
	assert.Contains(t, []string{"scalar", "simd256", "simd512"}, tier)
}

func TestMergeRawPanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { Merge(nil, &Dense{}) })
	assert.Panics(t, func() { Merge(&Raw{}, nil) })
}

func TestCompressPanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { Compress(nil, &Raw{}) })
	assert.Panics(t, func() { Compress(&Dense{}, nil) })
}

func TestHistogramPanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { Histogram(nil, &Dense{}) })
	assert.Panics(t, func() { Histogram(&Histogram{}, nil) })
}
