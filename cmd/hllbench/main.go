// Command hllbench verifies and times the dense-register kernel tiers in
// github.com/cardlabs/hlldense: a verify phase checks every candidate tier
// against its scalar baseline before a shuffled-order timing phase reports
// per-tier elapsed time.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cardlabs/hlldense"
	"github.com/cardlabs/hlldense/internal/randbuf"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hllbench",
		Short: "Verify and benchmark the HLL dense-register kernel tiers",
	}

	var rounds int
	var seed int64
	var k int

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Verify all tiers, then time each one over --rounds iterations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runVerify(rounds/10, seed, k); err != nil {
				fmt.Fprintf(os.Stderr, "hllbench: %v\n", err)
				return err
			}
			benchFamily("merge", mergeCandidates(), rounds, seed)
			benchFamily("compress", compressCandidates(), rounds, seed)
			benchFamily("histogram", histogramCandidates(k), rounds, seed)
			return nil
		},
	}
	benchCmd.Flags().IntVar(&rounds, "rounds", 100_000, "iterations per candidate in the timing phase")
	benchCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "PRNG seed for generated inputs")
	benchCmd.Flags().IntVar(&k, "k", 0, "run only the multi-bin histogram tiers with this sub-histogram width (8 or 16; 0 = both)")

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every candidate tier agrees with its scalar baseline, then exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runVerify(rounds/10, seed, k); err != nil {
				fmt.Fprintf(os.Stderr, "hllbench: %v\n", err)
				return err
			}
			fmt.Println("all candidate tiers agree with their scalar baselines")
			return nil
		},
	}
	verifyCmd.Flags().IntVar(&rounds, "rounds", 100_000, "rounds/10 iterations per family in the verify phase")
	verifyCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "PRNG seed for generated inputs")
	verifyCmd.Flags().IntVar(&k, "k", 0, "run only the multi-bin histogram tiers with this sub-histogram width (8 or 16; 0 = both)")

	rootCmd.AddCommand(benchCmd, verifyCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runVerify(n int, seed int64, k int) error {
	if err := verifyMerge(n, seed); err != nil {
		return err
	}
	if err := verifyCompress(n, seed); err != nil {
		return err
	}
	return verifyHistogram(n, seed, k)
}

// candidate is one named, directly-invokable kernel tier, closed over
// whatever buffers benchFamily's caller has already prepared so that timing
// a round never also times buffer construction.
type candidate struct {
	name string
	run  func()
}

func mergeCandidates() []candidate {
	dense := randbuf.Dense(1)
	raw := randbuf.Raw(2)
	return []candidate{
		{"scalar", func() { hlldense.MergeScalar(raw, dense) }},
		{"simd256_shuffle", func() { hlldense.MergeSIMD256Shuffle(raw, dense) }},
		{"simd256_shuffle_prefix", func() { hlldense.MergeSIMD256ShufflePrefix(raw, dense) }},
		{"simd512_shuffle", func() { hlldense.MergeSIMD512Shuffle(raw, dense) }},
		{"simd512_gather", func() { hlldense.MergeSIMD512Gather(raw, dense) }},
	}
}

func compressCandidates() []candidate {
	raw := randbuf.Raw(3)
	var dense hlldense.Dense
	return []candidate{
		{"scalar", func() { hlldense.CompressScalar(&dense, raw) }},
		{"simd256_shuffle_split_store", func() { hlldense.CompressSIMD256ShuffleSplitStore(&dense, raw) }},
		{"simd512_shuffle_split_store", func() { hlldense.CompressSIMD512ShuffleSplitStore(&dense, raw) }},
		{"simd512_scatter", func() { hlldense.CompressSIMD512Scatter(&dense, raw) }},
	}
}

func histogramCandidates(k int) []candidate {
	dense := randbuf.Dense(4)
	var h hlldense.Histogram
	cands := []candidate{
		{"scalar", func() { hlldense.HistogramScalar(&h, dense) }},
		{"scalar_cursor", func() { hlldense.HistogramScalarCursor(&h, dense) }},
		{"unrolled16", func() { hlldense.HistogramUnrolled16(&h, dense) }},
		{"simd256_shuffle_scalar_tally", func() { hlldense.HistogramSIMD256ShuffleScalarTally(&h, dense) }},
	}
	if k == 0 || k == 16 {
		cands = append(cands, candidate{"simd256_multibin_k16", func() { hlldense.HistogramSIMD256MultiBin(&h, dense) }})
	}
	if k == 0 || k == 8 {
		cands = append(cands, candidate{"simd512_multibin_k8", func() { hlldense.HistogramSIMD512MultiBin(&h, dense) }})
	}
	if k == 0 || k == 16 {
		cands = append(cands, candidate{"simd512_gather_scatter_k16", func() { hlldense.HistogramSIMD512GatherScatter(&h, dense) }})
	}
	return cands
}

// benchFamily times each candidate over n rounds, in a randomly permuted run
// order, and prints a per-candidate line followed by a summary table.
func benchFamily(name string, candidates []candidate, n int, seed int64) {
	order := rand.New(rand.NewSource(seed)).Perm(len(candidates))
	elapsed := make([]time.Duration, len(candidates))

	fmt.Printf("\n%s (%d rounds, seed %d):\n", name, n, seed)
	for _, idx := range order {
		c := candidates[idx]
		start := time.Now()
		for i := 0; i < n; i++ {
			c.run()
		}
		elapsed[idx] = time.Since(start)
		fmt.Printf("  %-32s %v\n", c.name, elapsed[idx])
	}

	fmt.Printf("  --- summary (run order was shuffled) ---\n")
	for i, c := range candidates {
		fmt.Printf("  %-32s %v\n", c.name, elapsed[i])
	}
}

type mergeTier struct {
	name string
	fn   func(raw *hlldense.Raw, dense *hlldense.Dense)
}

// verifyMerge generates n fresh (raw, dense) pairs from seed, runs the
// scalar baseline and every other merge tier on independent copies of raw,
// and aborts with a diagnostic identifying the first divergent tier,
// register, and value pair.
func verifyMerge(n int, seed int64) error {
	tiers := []mergeTier{
		{"simd256_shuffle", hlldense.MergeSIMD256Shuffle},
		{"simd256_shuffle_prefix", hlldense.MergeSIMD256ShufflePrefix},
		{"simd512_shuffle", hlldense.MergeSIMD512Shuffle},
		{"simd512_gather", hlldense.MergeSIMD512Gather},
	}
	for i := 0; i < n; i++ {
		round := seed + int64(i)*2
		dense := randbuf.Dense(round + 1)

		want := *randbuf.Raw(round)
		hlldense.MergeScalar(&want, dense)

		for _, tier := range tiers {
			got := *randbuf.Raw(round)
			tier.fn(&got, dense)
			if idx := hlldense.EquivalenceCheckRaw(&got, &want); idx != -1 {
				return fmt.Errorf("merge/%s: diverges from scalar at register %d: got %d want %d", tier.name, idx, got[idx], want[idx])
			}
		}
	}
	return nil
}

type compressTier struct {
	name string
	fn   func(dense *hlldense.Dense, raw *hlldense.Raw)
}

func verifyCompress(n int, seed int64) error {
	tiers := []compressTier{
		{"simd256_shuffle_split_store", hlldense.CompressSIMD256ShuffleSplitStore},
		{"simd512_shuffle_split_store", hlldense.CompressSIMD512ShuffleSplitStore},
		{"simd512_scatter", hlldense.CompressSIMD512Scatter},
	}
	for i := 0; i < n; i++ {
		raw := randbuf.Raw(seed + int64(i))

		var want hlldense.Dense
		hlldense.CompressScalar(&want, raw)

		for _, tier := range tiers {
			var got hlldense.Dense
			tier.fn(&got, raw)
			if idx := hlldense.EquivalenceCheck(&got, &want); idx != -1 {
				return fmt.Errorf("compress/%s: diverges from scalar at byte %d: got 0x%02x want 0x%02x", tier.name, idx, got[idx], want[idx])
			}
		}
	}
	return nil
}

type histogramTier struct {
	name string
	fn   func(h *hlldense.Histogram, dense *hlldense.Dense)
}

func verifyHistogram(n int, seed int64, k int) error {
	tiers := []histogramTier{
		{"scalar_cursor", hlldense.HistogramScalarCursor},
		{"unrolled16", hlldense.HistogramUnrolled16},
		{"simd256_shuffle_scalar_tally", hlldense.HistogramSIMD256ShuffleScalarTally},
	}
	if k == 0 || k == 16 {
		tiers = append(tiers, histogramTier{"simd256_multibin_k16", hlldense.HistogramSIMD256MultiBin})
	}
	if k == 0 || k == 8 {
		tiers = append(tiers, histogramTier{"simd512_multibin_k8", hlldense.HistogramSIMD512MultiBin})
	}
	if k == 0 || k == 16 {
		tiers = append(tiers, histogramTier{"simd512_gather_scatter_k16", hlldense.HistogramSIMD512GatherScatter})
	}
	for i := 0; i < n; i++ {
		dense := randbuf.Dense(seed + int64(i))

		var want hlldense.Histogram
		hlldense.HistogramScalar(&want, dense)

		for _, tier := range tiers {
			var got hlldense.Histogram
			tier.fn(&got, dense)
			if idx := hlldense.EquivalenceCheckHistogram(&got, &want); idx != -1 {
				return fmt.Errorf("histogram/%s: diverges from scalar at bin %d: got %d want %d", tier.name, idx, got[idx], want[idx])
			}
		}
	}
	return nil
}
