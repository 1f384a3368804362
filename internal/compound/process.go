package compound

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidTarget is returned when no vocabulary word has the target length.
var ErrInvalidTarget = errors.New("invalid target length specified, length not found in input")

// Options tunes a search run.
type Options struct {
	// Workers is the size of the expansion worker pool. If 0 or negative,
	// runtime.NumCPU() is used.
	Workers int

	// Progress receives human-readable status lines. May be nil.
	Progress func(string)
}

// ProcessLines finds every word of length target in words that is the
// concatenation of other, shorter words of words.
//
// words must already be deduplicated. The target bucket is checked before
// any search starts; when it is missing the call fails with
// ErrInvalidTarget. The returned results are formatted as
// "w1+w2+...+wk=concat" and come back in no particular order.
func ProcessLines(ctx context.Context, words []string, target int, opts Options) ([]string, error) {
	idx := BuildIndex(words)

	if target <= 0 || !idx.Has(target) {
		return nil, fmt.Errorf("target length %d: %w", target, ErrInvalidTarget)
	}

	progress := opts.Progress
	if progress == nil {
		progress = func(string) {}
	}

	progress(fmt.Sprintf("Indexed %d words into %d length buckets (%d words of length %d)",
		idx.Size(), len(idx.Lengths()), len(idx.WordsOfLength(target)), target))

	// Phase 1: Enumerate length combinations
	progress("Phase 1: Enumerating length combinations...")
	multisets := FindPossibleLengthCombinations(idx, target)
	progress(fmt.Sprintf("  Found %d length combinations", len(multisets)))

	// Phase 2: Expand and validate word sequences
	progress("Phase 2: Expanding and validating word sequences...")
	results, err := FindValidWordCombinations(ctx, idx, target, multisets, opts.Workers, opts.Progress)
	if err != nil {
		return nil, fmt.Errorf("failed to validate word combinations: %w", err)
	}

	progress(fmt.Sprintf("Found %d valid word combinations", len(results)))

	return results, nil
}
