// Package hlldense implements the SIMD-shaped kernels that operate on the
// dense register array of a P=14 HyperLogLog cardinality estimator:
// 16,384 six-bit registers packed little-endian into a 12,288-byte buffer.
//
// Three kernel families are exposed, each as a pure function over
// caller-owned buffers with no hidden allocation or I/O:
//
//   - Merge folds a packed DENSE array into an unpacked RAW accumulator by
//     element-wise maximum.
//   - Compress encodes an unpacked RAW accumulator back into packed DENSE.
//   - Histogram tallies, over all 16,384 registers, how many hold each of
//     the 64 possible register values.
//
// Each family ships a scalar baseline plus several data-parallel tiers that
// process registers in 32- or 64-wide batches using the same bit-lane
// arithmetic a real 256-bit/512-bit SIMD shuffle or gather would compute
// (see DESIGN.md for why these tiers are portable Go rather than
// hand-written vector assembly). Dynamic entry points
// (Merge, Compress, Histogram) pick the best tier for the running CPU once,
// at package initialization, and cache the choice; the package has no other mutable
// state. Named tier functions remain directly callable for benchmarking
// and equivalence checking.
//
// References:
//   - https://github.com/antirez/redis/blob/unstable/src/hyperloglog.c
//   - https://en.wikipedia.org/wiki/HyperLogLog
package hlldense
