package compound

import (
	"iter"
	"slices"
)

// LengthFrequency maps a word length to the number of words of that
// length still required by a sequence under construction.
type LengthFrequency map[int]int

// Clone returns an independent copy of f.
func (f LengthFrequency) Clone() LengthFrequency {
	c := make(LengthFrequency, len(f))
	for l, n := range f {
		c[l] = n
	}
	return c
}

// sortedLengths returns the keys of f in ascending order so the
// enumeration order is stable within a run.
func (f LengthFrequency) sortedLengths() []int {
	lengths := make([]int, 0, len(f))
	for l := range f {
		lengths = append(lengths, l)
	}
	slices.Sort(lengths)
	return lengths
}

// BuildSequences lazily yields every ordered word sequence that spends
// the counts in freq and whose total length is target.
//
// Words are drawn from the full bucket each time, so the same word may
// fill several slots of the same length. freq is cloned; the caller's
// map is never touched and concurrent calls never share state. Each
// yielded slice is a fresh copy owned by the consumer.
func BuildSequences(freq LengthFrequency, idx *LengthIndex, target int) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		b := &sequenceBuilder{
			idx:       idx,
			target:    target,
			remaining: freq.Clone(),
			yield:     yield,
		}
		b.lengths = b.remaining.sortedLengths()
		b.extend(make([]string, 0, target), 0)
	}
}

type sequenceBuilder struct {
	idx       *LengthIndex
	target    int
	remaining LengthFrequency
	lengths   []int
	yield     func([]string) bool
}

// extend returns false once the consumer has asked to stop.
func (b *sequenceBuilder) extend(partial []string, size int) bool {
	if size == b.target {
		if !b.yield(slices.Clone(partial)) {
			return false
		}
	}
	if size >= b.target {
		return true
	}

	for _, l := range b.lengths {
		if b.remaining[l] <= 0 {
			continue
		}
		for _, w := range b.idx.WordsOfLength(l) {
			if !b.take(l, func() bool { return b.extend(append(partial, w), size+l) }) {
				return false
			}
		}
	}
	return true
}

// take holds one unit of length l while fn runs and always gives it back.
func (b *sequenceBuilder) take(l int, fn func() bool) bool {
	b.remaining[l]--
	defer func() { b.remaining[l]++ }()
	return fn()
}
