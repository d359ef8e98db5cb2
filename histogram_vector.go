package hlldense

// HistogramSIMD256ShuffleScalarTally reuses unpackLane, the same unpack the
// merge vector tiers use, to pull four register values per 3-byte step out
// of dense, then tallies them one at a time into h. The unpack is
// data-parallel, but each of the 32 increments touches h itself and so
// cannot run independently without sub-histograms (see
// HistogramSIMD256MultiBin for the variant that shards them).
func HistogramSIMD256ShuffleScalarTally(h *Histogram, dense *Dense) {
	checkHistogram(h, "HistogramSIMD256ShuffleScalarTally")
	checkDense(dense, "HistogramSIMD256ShuffleScalarTally")
	denseS := dense[:]
	for byteOff := 0; byteOff < DenseBytes; byteOff += 3 {
		x := uint32(denseS[byteOff]) | uint32(denseS[byteOff+1])<<8 | uint32(denseS[byteOff+2])<<16
		v0, v1, v2, v3 := unpackLane(x)
		h[v0]++
		h[v1]++
		h[v2]++
		h[v3]++
	}
}

// histogramMultiBin tallies dense into K independent sub-histograms, one
// per lane within a K-wide batch, so that no two registers processed in the
// same round ever touch the same bin counter. It then reduces the K
// sub-histograms into h column-wise. This lets a real vector gather-add-
// scatter round run its K lanes independently, at the cost of
// K*HistogramBins counters to reduce at the end.
func histogramMultiBin(h *Histogram, dense *Dense, k int) {
	var scratch [16 * HistogramBins]uint32
	sub := scratch[:k*HistogramBins]
	denseS := dense[:]
	groupsPerRound := k / 4
	regsPerRound := k

	for base := 0; base < RegisterCount; base += regsPerRound {
		byteBase := (base / 4) * 3
		for lane := 0; lane < groupsPerRound; lane++ {
			byteOff := byteBase + lane*3
			x := uint32(denseS[byteOff]) | uint32(denseS[byteOff+1])<<8 | uint32(denseS[byteOff+2])<<16
			v0, v1, v2, v3 := unpackLane(x)
			l0, l1, l2, l3 := lane*4+0, lane*4+1, lane*4+2, lane*4+3
			sub[int(v0)*k+l0]++
			sub[int(v1)*k+l1]++
			sub[int(v2)*k+l2]++
			sub[int(v3)*k+l3]++
		}
	}

	reduceSubHistogram(h, sub, k)
}

// HistogramSIMD256MultiBin is the K=16 multi-bin routing tier: one
// sub-histogram per lane across 32-register (256-bit) batches.
func HistogramSIMD256MultiBin(h *Histogram, dense *Dense) {
	checkHistogram(h, "HistogramSIMD256MultiBin")
	checkDense(dense, "HistogramSIMD256MultiBin")
	histogramMultiBin(h, dense, 16)
}

// HistogramSIMD512MultiBin is the K=8 multi-bin routing tier: one
// sub-histogram per lane across 64-register (512-bit) batches. Its K is
// half that of the 256-bit multi-bin tier (K=16) rather than scaled up with
// the batch size.
func HistogramSIMD512MultiBin(h *Histogram, dense *Dense) {
	checkHistogram(h, "HistogramSIMD512MultiBin")
	checkDense(dense, "HistogramSIMD512MultiBin")
	histogramMultiBin(h, dense, 8)
}

// HistogramSIMD512GatherScatter is the other 512-bit multi-bin strategy,
// K=16 wide: for each of the 16 lanes in a round, it computes the
// destination slot v*K+lane in a K=16-wide sub-histogram, gathers the
// current count, adds one, and scatters it back. The 16 lanes within one
// round never collide (each lane owns a distinct slot modulo K), so the
// round's gather-add-scatter sequence is safe even though separate rounds
// may reuse the same slot — by the time round N+1 runs, round N's scatter
// has already completed.
func HistogramSIMD512GatherScatter(h *Histogram, dense *Dense) {
	checkHistogram(h, "HistogramSIMD512GatherScatter")
	checkDense(dense, "HistogramSIMD512GatherScatter")
	const k = 16
	sub := make([]uint32, k*HistogramBins)
	denseS := dense[:]

	for base := 0; base < RegisterCount; base += k {
		byteBase := (base / 4) * 3
		for lane := 0; lane < k/4; lane++ {
			byteOff := byteBase + lane*3
			x := uint32(denseS[byteOff]) | uint32(denseS[byteOff+1])<<8 | uint32(denseS[byteOff+2])<<16
			v0, v1, v2, v3 := unpackLane(x)
			l0, l1, l2, l3 := lane*4+0, lane*4+1, lane*4+2, lane*4+3
			// gather
			s0, s1, s2, s3 := sub[int(v0)*k+l0], sub[int(v1)*k+l1], sub[int(v2)*k+l2], sub[int(v3)*k+l3]
			// add
			s0, s1, s2, s3 = s0+1, s1+1, s2+1, s3+1
			// scatter
			sub[int(v0)*k+l0], sub[int(v1)*k+l1], sub[int(v2)*k+l2], sub[int(v3)*k+l3] = s0, s1, s2, s3
		}
	}

	reduceSubHistogram(h, sub, k)
}

// reduceSubHistogram sums a k-wide sub-histogram column-wise into h, exactly
// (no saturating arithmetic).
func reduceSubHistogram(h *Histogram, sub []uint32, k int) {
	for bin := 0; bin < HistogramBins; bin++ {
		var sum uint32
		for _, c := range sub[bin*k : bin*k+k] {
			sum += c
		}
		h[bin] += sum
	}
}
