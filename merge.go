package hlldense

// Merge folds dense into raw, taking the element-wise maximum:
//
//	raw[i] = max(raw[i], Get(dense, i))  for all i in [0, RegisterCount)
//
// Merge is commutative, associative and idempotent. It selects the fastest
// tier known to pass equivalence verification for the running CPU (see
// dispatch.go) and never requires padding around dense: every tier wired
// into the dynamic dispatch reads only the DenseBytes already present in the
// buffer, never bytes before or after it.
func Merge(raw *Raw, dense *Dense) {
	checkRaw(raw, "Merge")
	checkDense(dense, "Merge")
	mergeDispatch.Load().(func(*Raw, *Dense))(raw, dense)
}

// MergeScalar is the reference baseline: a plain Get/compare/store loop.
// Every other merge tier must agree with it byte-for-byte.
func MergeScalar(raw *Raw, dense *Dense) {
	checkRaw(raw, "MergeScalar")
	checkDense(dense, "MergeScalar")
	mergeScalarRange(raw[:], dense[:], 0, RegisterCount)
}

// mergeScalarRange applies the scalar merge loop to registers [lo, hi) of
// dense into raw. Shared by the scalar baseline and the scalar prefix/
// suffix handling in the vectorized tiers.
func mergeScalarRange(raw, dense []byte, lo, hi int) {
	for i := lo; i < hi; i++ {
		v := getSlice(dense, i)
		if v > raw[i] {
			raw[i] = v
		}
	}
}
