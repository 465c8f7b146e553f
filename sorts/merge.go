package sorts

import (
	"cmp"

	"github.com/kabu1204/go-sorts/types"
)

// MergeSort sorts s ascending and stably:
//
//	[ sorted | sorted ] -> [ sorted ]
//
// Each level copies the two halves it merges; the copies are dropped once
// the merge returns.
func MergeSort[S ~[]E, E cmp.Ordered](s S) {
	MergeSortFunc(s, cmp.Compare[E])
}

// MergeSortFunc is MergeSort ordered by cmp.
func MergeSortFunc[S ~[]E, E any](s S, cmp types.Comparator[E]) {
	if len(s) <= 1 {
		return
	}

	mid := len(s) / 2
	left := append(S(nil), s[:mid]...)
	right := append(S(nil), s[mid:]...)

	MergeSortFunc(left, cmp)
	MergeSortFunc(right, cmp)

	MergeFunc(s, left, right, cmp)
}

// Merge writes the sorted interleaving of left and right into dst, which
// must hold at least len(left)+len(right) elements. Ties take from left.
// dst must not overlap left or right.
func Merge[S ~[]E, E cmp.Ordered](dst, left, right S) {
	MergeFunc(dst, left, right, cmp.Compare[E])
}

// MergeFunc is Merge ordered by cmp. left and right must already be sorted
// under cmp, and dst must hold len(left)+len(right) elements or it panics.
func MergeFunc[S ~[]E, E any](dst, left, right S, cmp types.Comparator[E]) {
	i, j, k := 0, 0, 0

	for i < len(left) && j < len(right) {
		if cmp(left[i], right[j]) <= 0 {
			dst[k] = left[i]
			i++
		} else {
			dst[k] = right[j]
			j++
		}
		k++
	}
	for ; i < len(left); i++ {
		dst[k] = left[i]
		k++
	}
	for ; j < len(right); j++ {
		dst[k] = right[j]
		k++
	}
}
