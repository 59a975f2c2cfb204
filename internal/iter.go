package internal

import (
	"cmp"
	"iter"
	"slices"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, value := range seq {
				if !yield(key, value) {
					return
				}
			}
		}
	}
}

// IterSeq2Sorted yields the pairs of a sequence ordered by key.
// The whole sequence is collected first.
func IterSeq2Sorted[K cmp.Ordered, V any](seq iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		type pair struct {
			key   K
			value V
		}

		var pairs []pair
		for key, value := range seq {
			pairs = append(pairs, pair{key, value})
		}

		slices.SortStableFunc(pairs, func(a, b pair) int {
			return cmp.Compare(a.key, b.key)
		})

		for _, p := range pairs {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}
