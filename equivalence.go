package hlldense

// EquivalenceCheck compares two packed dense arrays byte-for-byte and
// returns the index of the first byte that differs, or -1 if they are
// identical. It exists so that every vectorized merge/compress tier can be
// checked against the scalar baseline without re-deriving registers from
// bytes; callers that want register-level comparison should compare Raw
// arrays instead, where a differing index already names the register.
func EquivalenceCheck(a, b *Dense) int {
	for i := range a {
		if a[i] != b[i] {
			return i
		}
	}
	return -1
}

// EquivalenceCheckRaw compares two unpacked register arrays and returns the
// index of the first differing register, or -1 if they agree everywhere.
func EquivalenceCheckRaw(a, b *Raw) int {
	for i := range a {
		if a[i] != b[i] {
			return i
		}
	}
	return -1
}

// EquivalenceCheckHistogram compares two histograms bin-by-bin and returns
// the index of the first differing bin, or -1 if they agree everywhere.
func EquivalenceCheckHistogram(a, b *Histogram) int {
	for i := range a {
		if a[i] != b[i] {
			return i
		}
	}
	return -1
}
