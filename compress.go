package hlldense

// Compress encodes raw into dense, the inverse of Merge's unpack direction:
//
//	Set(dense, i, raw[i])  for all i in [0, RegisterCount)
//
// raw values above RegisterMax are truncated to 6 bits, matching Set.
// Compress selects the fastest tier known to pass equivalence verification
// for the running CPU; see dispatch.go.
func Compress(dense *Dense, raw *Raw) {
	checkDense(dense, "Compress")
	checkRaw(raw, "Compress")
	compressDispatch.Load().(func(*Dense, *Raw))(dense, raw)
}

// CompressScalar is the reference baseline: a plain Set loop. Every other
// compress tier must agree with it byte-for-byte.
func CompressScalar(dense *Dense, raw *Raw) {
	checkDense(dense, "CompressScalar")
	checkRaw(raw, "CompressScalar")
	compressScalarRange(dense[:], raw[:], 0, RegisterCount)
}

func compressScalarRange(dense, raw []byte, lo, hi int) {
	for i := lo; i < hi; i++ {
		setSlice(dense, i, raw[i])
	}
}

// packLane is the inverse of unpackLane: it folds four raw register values
// into the 24 bits three packed dense bytes hold.
func packLane(v0, v1, v2, v3 byte) (b0, b1, b2 byte) {
	y := uint32(v0&RegisterMax) | uint32(v1&RegisterMax)<<6 | uint32(v2&RegisterMax)<<12 | uint32(v3&RegisterMax)<<18
	return byte(y), byte(y >> 8), byte(y >> 16)
}

// compressGroupRange is the batched counterpart of compressScalarRange: it
// packs four registers at a time into three dense bytes, the lane width
// every vectorized compress tier below processes in bulk. loReg and hiReg
// must be multiples of 4.
func compressGroupRange(dense, raw []byte, loReg, hiReg int) {
	loByte := loReg * RegisterBits / 8
	for reg, byteOff := loReg, loByte; reg < hiReg; reg, byteOff = reg+4, byteOff+3 {
		b0, b1, b2 := packLane(raw[reg], raw[reg+1], raw[reg+2], raw[reg+3])
		dense[byteOff] = b0
		dense[byteOff+1] = b1
		dense[byteOff+2] = b2
	}
}
