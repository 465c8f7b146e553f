package sorts

import (
	"cmp"

	"github.com/kabu1204/go-sorts/types"
)

// SelectionSort sorts s ascending with at most len(s)-1 exchanges:
//
//	[ i smallest elements in order | unprocessed ]
//
// It is not stable.
func SelectionSort[S ~[]E, E cmp.Ordered](s S) {
	SelectionSortFunc(s, cmp.Compare[E])
}

// SelectionSortFunc is SelectionSort ordered by cmp.
func SelectionSortFunc[S ~[]E, E any](s S, cmp types.Comparator[E]) {
	for i := 0; i < len(s)-1; i++ {
		minIndex := i
		for j := i; j < len(s); j++ {
			if cmp(s[j], s[minIndex]) < 0 {
				minIndex = j
			}
		}
		Swap(s, minIndex, i)
	}
}
