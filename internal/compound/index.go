package compound

import (
	"sort"
	"unicode/utf8"
)

// LengthIndex groups vocabulary words by character length.
// It is read-only once built and safe to share between goroutines.
type LengthIndex struct {
	buckets map[int][]string
	size    int
}

// BuildIndex places every word in the bucket keyed by its rune length.
// Empty strings are skipped since they have no positive length.
func BuildIndex(words []string) *LengthIndex {
	idx := &LengthIndex{buckets: make(map[int][]string)}

	for _, w := range words {
		n := wordLength(w)
		if n == 0 {
			continue
		}
		idx.buckets[n] = append(idx.buckets[n], w)
		idx.size++
	}

	return idx
}

// Size returns the number of indexed words.
func (idx *LengthIndex) Size() int {
	return idx.size
}

// Has reports whether any word of length l exists.
func (idx *LengthIndex) Has(l int) bool {
	_, ok := idx.buckets[l]
	return ok
}

// WordsOfLength returns the bucket for l, or nil when there is none.
// Callers must not modify the returned slice.
func (idx *LengthIndex) WordsOfLength(l int) []string {
	return idx.buckets[l]
}

// Lengths returns every bucket key in ascending order.
func (idx *LengthIndex) Lengths() []int {
	lengths := make([]int, 0, len(idx.buckets))
	for l := range idx.buckets {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)
	return lengths
}

// LengthsExcluding returns the ascending bucket keys without target.
// Words of the target length are answers, never ingredients.
func (idx *LengthIndex) LengthsExcluding(target int) []int {
	all := idx.Lengths()
	lengths := all[:0]
	for _, l := range all {
		if l != target {
			lengths = append(lengths, l)
		}
	}
	return lengths
}

// TargetSet returns a lookup set of the words of length target.
func (idx *LengthIndex) TargetSet(target int) map[string]struct{} {
	bucket := idx.buckets[target]
	set := make(map[string]struct{}, len(bucket))
	for _, w := range bucket {
		set[w] = struct{}{}
	}
	return set
}

func wordLength(w string) int {
	return utf8.RuneCountInString(w)
}
