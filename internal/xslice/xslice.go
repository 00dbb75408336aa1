// Package xslice collects small generic slice helpers for the sampling
// pipeline (graph's part dissolving uses ClosestIndex): sorting by a
// derived key, de-duplication, and nearest-by-distance search. These
// mirror the teacher's free-function helpers (utils.go: sortByLength,
// maxint) generalized with Go generics instead of one copy per concrete
// type.
package xslice

import "sort"

// MaxInt returns the larger of a and b, generalizing the teacher's maxint.
func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// MinInt returns the smaller of a and b.
func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// SortByKey sorts in place ascending by the float64 key function, the
// generic form of the teacher's sortByLength (utils.go).
func SortByKey[T any](in []T, key func(T) float64) {
	sort.Slice(in, func(a, b int) bool {
		return key(in[a]) < key(in[b])
	})
}

// SortByKeyDesc sorts in place descending by the float64 key function.
func SortByKeyDesc[T any](in []T, key func(T) float64) {
	sort.Slice(in, func(a, b int) bool {
		return key(in[a]) > key(in[b])
	})
}

// UnorderedDelete removes the element at index i by swapping it with the
// last element and truncating, avoiding an O(n) shift. Grounded on
// unixpickle/essentials.UnorderedDelete, reused here so callers that only
// need the slice-mutation idiom (not the whole essentials dependency) don't
// have to import it directly.
func UnorderedDelete[T any](s []T, i int) []T {
	s[i] = s[len(s)-1]
	return s[:len(s)-1]
}

// Unique returns a new slice retaining the first occurrence of each
// key-equal element, preserving input order.
func Unique[T any, K comparable](in []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(in))
	out := make([]T, 0, len(in))
	for _, v := range in {
		k := key(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}

// ClosestIndex returns the index of the element in in minimizing dist(v),
// and -1 if in is empty. Used by graph's short-part dissolving to pick the
// closest remaining part when a full KD-tree is overkill for a small
// candidate set.
func ClosestIndex[T any](in []T, dist func(T) float64) int {
	best := -1
	bestDist := 0.0
	for i, v := range in {
		d := dist(v)
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// Reverse reverses a slice in place.
func Reverse[T any](in []T) {
	for i, j := 0, len(in)-1; i < j; i, j = i+1, j-1 {
		in[i], in[j] = in[j], in[i]
	}
}
