package randbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardlabs/hlldense"
)

func TestRawIsReproducibleAndInRange(t *testing.T) {
	a := Raw(42)
	b := Raw(42)
	assert.Equal(t, a, b)
	for i, v := range a {
		assert.LessOrEqualf(t, v, byte(hlldense.RegisterMax), "register %d", i)
	}
}

func TestRawDiffersAcrossSeeds(t *testing.T) {
	a := Raw(1)
	b := Raw(2)
	assert.NotEqual(t, a, b)
}

func TestDenseRoundTripsToItsRaw(t *testing.T) {
	raw := Raw(7)
	dense := Dense(7)
	var back hlldense.Raw
	hlldense.MergeScalar(&back, dense)
	assert.Equal(t, *raw, back)
}
