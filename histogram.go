package hlldense

// Histogram tallies, into h, how many of dense's RegisterCount registers
// hold each of the 64 possible values:
//
//	h[Get(dense, i)]++  for all i in [0, RegisterCount)
//
// Histogram is additive: it never zeroes h first, so callers reusing a
// Histogram across calls accumulate across them; zero h explicitly for a
// fresh tally. Histogram selects the fastest tier known to pass
// equivalence verification for the running CPU; see dispatch.go.
func Histogram(h *Histogram, dense *Dense) {
	checkHistogram(h, "Histogram")
	checkDense(dense, "Histogram")
	histogramDispatch.Load().(func(*Histogram, *Dense))(h, dense)
}

// HistogramScalar is the reference baseline: a plain Get/increment loop
// over every register in order. Every other histogram tier must agree with
// it bin-for-bin.
func HistogramScalar(h *Histogram, dense *Dense) {
	checkHistogram(h, "HistogramScalar")
	checkDense(dense, "HistogramScalar")
	for i := 0; i < RegisterCount; i++ {
		h[Get(dense, i)]++
	}
}

// HistogramScalarCursor is semantically identical to HistogramScalar but
// walks dense with an explicit byte cursor instead of re-deriving each
// register's byte offset from scratch, unpacking four registers per 3-byte
// step the same way the batched vector tiers do.
func HistogramScalarCursor(h *Histogram, dense *Dense) {
	checkHistogram(h, "HistogramScalarCursor")
	checkDense(dense, "HistogramScalarCursor")
	denseS := dense[:]
	reg, b := 0, 0
	for reg < RegisterCount {
		x := uint32(denseS[b]) | uint32(denseS[b+1])<<8 | uint32(denseS[b+2])<<16
		h[x&0x3F]++
		h[(x>>6)&0x3F]++
		h[(x>>12)&0x3F]++
		h[(x>>18)&0x3F]++
		reg += 4
		b += 3
	}
}

// HistogramUnrolled16 processes registers sixteen at a time (four
// four-register groups make up 12 packed bytes), a manually unrolled scalar
// tally rather than relying on the compiler to unroll HistogramScalar.
func HistogramUnrolled16(h *Histogram, dense *Dense) {
	checkHistogram(h, "HistogramUnrolled16")
	checkDense(dense, "HistogramUnrolled16")
	denseS := dense[:]
	for reg, b := 0, 0; reg < RegisterCount; reg, b = reg+16, b+12 {
		for g := 0; g < 4; g++ {
			off := b + g*3
			x := uint32(denseS[off]) | uint32(denseS[off+1])<<8 | uint32(denseS[off+2])<<16
			v0, v1, v2, v3 := unpackLane(x)
			h[v0]++
			h[v1]++
			h[v2]++
			h[v3]++
		}
	}
}
