package hlldense

import "encoding/binary"

// CompressSIMD256ShuffleSplitStore packs all registers in batches of 32 (8
// four-register groups), the width a 256-bit shuffle-then-split-store
// kernel would handle per iteration. Each group writes exactly the 3 bytes
// it owns, so unlike the real split-store kernel this tier needs no
// trailing-store overrun handling.
func CompressSIMD256ShuffleSplitStore(dense *Dense, raw *Raw) {
	checkDense(dense, "CompressSIMD256ShuffleSplitStore")
	checkRaw(raw, "CompressSIMD256ShuffleSplitStore")
	compressGroupRange(dense[:], raw[:], 0, RegisterCount)
}

// CompressSIMD512ShuffleSplitStore is the 512-bit-wide counterpart,
// batching 64 registers (16 groups) per logical iteration.
func CompressSIMD512ShuffleSplitStore(dense *Dense, raw *Raw) {
	checkDense(dense, "CompressSIMD512ShuffleSplitStore")
	checkRaw(raw, "CompressSIMD512ShuffleSplitStore")
	compressGroupRange(dense[:], raw[:], 0, RegisterCount)
}

// compressScatterIndices are the byte-stride-3 offsets a scatter-based
// store would use to write one 4-byte packed group per lane.
var compressScatterIndices = [16]int{0, 3, 6, 9, 12, 15, 18, 21, 24, 27, 30, 33, 36, 39, 42, 45}

// CompressSIMD512Scatter mirrors the gather/scatter-style tier: it zeroes
// dense first, then scatters one 4-byte word per four-register group at
// explicit stride-3 byte offsets. packLane only ever produces 24 meaningful
// bits, so every 4-byte scatter word's top byte is zero and momentarily
// clobbers the next group's first byte with that zero; the subsequent,
// in-order group overwrites that byte with its real value. Every byte of
// dense is therefore rewritten, so the up-front zeroing leaves no stale
// bits from the caller's buffer. The final group has no "next" store to
// repair the overrun, so it falls back to a 3-byte store.
func CompressSIMD512Scatter(dense *Dense, raw *Raw) {
	checkDense(dense, "CompressSIMD512Scatter")
	checkRaw(raw, "CompressSIMD512Scatter")
	for i := range dense {
		dense[i] = 0
	}
	const groups = RegisterCount / 4
	for round := 0; round < RegisterCount/64; round++ {
		regBase := round * 64
		for lane, idx := range compressScatterIndices {
			g := round*16 + lane
			reg := regBase + lane*4
			b0, b1, b2 := packLane(raw[reg], raw[reg+1], raw[reg+2], raw[reg+3])
			off := round*48 + idx
			if g == groups-1 {
				dense[off] = b0
				dense[off+1] = b1
				dense[off+2] = b2
				continue
			}
			binary.LittleEndian.PutUint32(dense[off:], uint32(b0)|uint32(b1)<<8|uint32(b2)<<16)
		}
	}
}
