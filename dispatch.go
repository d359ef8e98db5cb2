package hlldense

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// mergeDispatch, compressDispatch and histogramDispatch hold the tier chosen
// for the running CPU. They are populated once by initDispatch and read on
// every call to Merge, Compress and Histogram; atomic.Value gives lock-free
// reads after the one-time write, with one independent slot per kernel
// family so each can pick its own tier.
var (
	mergeDispatch     atomic.Value
	compressDispatch  atomic.Value
	histogramDispatch atomic.Value

	dispatchOnce sync.Once
)

// tier names the three dispatch tiers. It exists only for Tier, the
// introspection helper below.
type tier int

const (
	tierScalar tier = iota
	tierSIMD256
	tierSIMD512
)

func (t tier) String() string {
	switch t {
	case tierSIMD512:
		return "simd512"
	case tierSIMD256:
		return "simd256"
	default:
		return "scalar"
	}
}

var selectedTier tier

// initDispatch runs exactly once, selecting a tier per kernel family from
// the widest the running CPU advertises down to the scalar baseline.
func initDispatch() {
	dispatchOnce.Do(func() {
		switch {
		case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW:
			selectedTier = tierSIMD512
			mergeDispatch.Store(func(raw *Raw, dense *Dense) { MergeSIMD512Shuffle(raw, dense) })
			compressDispatch.Store(func(dense *Dense, raw *Raw) { CompressSIMD512ShuffleSplitStore(dense, raw) })
			histogramDispatch.Store(func(h *Histogram, dense *Dense) { HistogramSIMD512MultiBin(h, dense) })
		case cpu.X86.HasAVX2:
			selectedTier = tierSIMD256
			mergeDispatch.Store(func(raw *Raw, dense *Dense) { MergeSIMD256ShufflePrefix(raw, dense) })
			compressDispatch.Store(func(dense *Dense, raw *Raw) { CompressSIMD256ShuffleSplitStore(dense, raw) })
			histogramDispatch.Store(func(h *Histogram, dense *Dense) { HistogramSIMD256MultiBin(h, dense) })
		default:
			selectedTier = tierScalar
			mergeDispatch.Store(func(raw *Raw, dense *Dense) { MergeScalar(raw, dense) })
			compressDispatch.Store(func(dense *Dense, raw *Raw) { CompressScalar(dense, raw) })
			histogramDispatch.Store(func(h *Histogram, dense *Dense) { HistogramScalar(h, dense) })
		}
	})
}

// Tier reports which dispatch tier Merge, Compress and Histogram currently
// use, forcing selection if it hasn't happened yet. It exists for
// diagnostics; it is not part of any kernel's correctness contract.
func Tier() string {
	initDispatch()
	return selectedTier.String()
}

func init() {
	initDispatch()
}
