package compound

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

const (
	wordSeparator = "+"
	equalsMarker  = "="
)

// Result is a word sequence whose concatenation is a target-length word.
type Result struct {
	Words  []string
	Concat string
}

// String formats the result as "w1+w2+...+wk=concat".
func (r Result) String() string {
	return strings.Join(r.Words, wordSeparator) + equalsMarker + r.Concat
}

// check concatenates seq and reports a Result when the concatenation is
// one of the target words.
func check(seq []string, targets map[string]struct{}) (Result, bool) {
	concat := strings.Join(seq, "")
	if _, ok := targets[concat]; !ok {
		return Result{}, false
	}
	return Result{Words: seq, Concat: concat}, true
}

func workerCount(workers int) int {
	if workers <= 0 {
		return runtime.NumCPU()
	}
	return workers
}

// Validate checks already materialised sequences in parallel and returns
// the formatted survivors in no particular order.
// workers: Number of parallel workers. If 0 or negative, uses runtime.NumCPU().
func Validate(ctx context.Context, sequences [][]string, targets map[string]struct{}, workers int) ([]string, error) {
	workerPoolSize := workerCount(workers)

	jobs := make(chan []string, len(sequences))
	for _, seq := range sequences {
		jobs <- seq
	}
	close(jobs)

	results := make(chan string, workerPoolSize)

	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workerPoolSize; w++ {
		eg.Go(func() error {
			for seq := range jobs {
				if err := ctx.Err(); err != nil {
					return err
				}
				if r, ok := check(seq, targets); ok {
					results <- r.String()
				}
			}
			return nil
		})
	}

	var valid []string
	done := make(chan struct{})
	go func() {
		defer close(done)
		for r := range results {
			valid = append(valid, r)
		}
	}()

	err := eg.Wait()
	close(results)
	<-done

	if err != nil {
		return nil, err
	}
	return valid, nil
}

// FindValidWordCombinations expands every multiset into word sequences
// and keeps the sequences that concatenate to a target word.
//
// Each worker takes one multiset at a time and expands it with its own
// LengthFrequency; only the index and the target lookup set are shared,
// and both are read-only. Results come back in no particular order.
// workers: Number of parallel workers. If 0 or negative, uses runtime.NumCPU().
func FindValidWordCombinations(ctx context.Context, idx *LengthIndex, target int, multisets []LengthMultiset, workers int, progressCallback func(string)) ([]string, error) {
	workerPoolSize := workerCount(workers)
	targets := idx.TargetSet(target)

	jobs := make(chan LengthMultiset, len(multisets))
	for _, m := range multisets {
		jobs <- m
	}
	close(jobs)

	results := make(chan []string, workerPoolSize)

	eg, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workerPoolSize; w++ {
		eg.Go(func() error {
			return expandWorker(ctx, idx, target, targets, jobs, results)
		})
	}

	// Collect results in a separate goroutine
	var valid []string
	done := make(chan struct{})
	go func() {
		defer close(done)
		processed := 0
		for found := range results {
			valid = append(valid, found...)
			processed++

			if progressCallback != nil && (processed%100 == 0 || processed == len(multisets)) {
				progressCallback(fmt.Sprintf("    Expanded %d/%d length combinations (%d results so far)",
					processed, len(multisets), len(valid)))
			}
		}
	}()

	err := eg.Wait()
	close(results)
	<-done

	if err != nil {
		return nil, err
	}
	return valid, nil
}

func expandWorker(ctx context.Context, idx *LengthIndex, target int, targets map[string]struct{}, jobs <-chan LengthMultiset, results chan<- []string) error {
	for m := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}

		var found []string
		for seq := range BuildSequences(m.Frequency(), idx, target) {
			if r, ok := check(seq, targets); ok {
				found = append(found, r.String())
			}
		}
		results <- found
	}
	return nil
}
