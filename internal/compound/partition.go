package compound

import (
	"slices"
	"strconv"
	"strings"
)

// LengthMultiset is a sorted, non-decreasing list of word lengths that
// add up to a target length.
type LengthMultiset []int

// Key returns the canonical form used to deduplicate multisets that are
// permutations of one another.
func (m LengthMultiset) Key() string {
	var sb strings.Builder
	for i, l := range m {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(l))
	}
	return sb.String()
}

// Sum returns the total of all lengths in the multiset.
func (m LengthMultiset) Sum() int {
	total := 0
	for _, l := range m {
		total += l
	}
	return total
}

// Frequency returns a fresh length -> count map for the multiset.
// Every call allocates, so each search branch can own its copy.
func (m LengthMultiset) Frequency() LengthFrequency {
	freq := make(LengthFrequency, len(m))
	for _, l := range m {
		freq[l]++
	}
	return freq
}

// FindPossibleLengthCombinations enumerates the length multisets for
// target using every indexed length except target itself.
func FindPossibleLengthCombinations(idx *LengthIndex, target int) []LengthMultiset {
	return EnumerateLengthMultisets(idx.LengthsExcluding(target), target)
}

// EnumerateLengthMultisets returns the distinct multisets of candidate
// lengths (each usable any number of times) that sum exactly to target.
//
// The search is a plain depth-first walk that revisits every ordering of
// a multiset, so permutations are folded together by canonical key. The
// result keeps the order in which each multiset was first found.
func EnumerateLengthMultisets(candidates []int, target int) []LengthMultiset {
	lengths := make([]int, 0, len(candidates))
	for _, l := range candidates {
		if l > 0 && l != target && !slices.Contains(lengths, l) {
			lengths = append(lengths, l)
		}
	}
	slices.Sort(lengths)

	seen := make(map[string]struct{})
	var results []LengthMultiset

	var walk func(partial []int, sum int)
	walk = func(partial []int, sum int) {
		if sum == target {
			m := LengthMultiset(slices.Clone(partial))
			slices.Sort(m)
			key := m.Key()
			if _, dup := seen[key]; !dup {
				seen[key] = struct{}{}
				results = append(results, m)
			}
		}
		if sum >= target {
			return
		}

		for _, l := range lengths {
			walk(append(partial, l), sum+l)
		}
	}

	if target > 0 {
		walk(make([]int, 0, target), 0)
	}

	return results
}
