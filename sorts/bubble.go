package sorts

import (
	"cmp"

	"github.com/kabu1204/go-sorts/types"
)

// BubbleSort sorts s ascending. After pass i the last i elements are the i
// largest, in place:
//
//	[ unprocessed | i largest elements in order ]
//
// Equal neighbours are never exchanged, so the sort is stable.
func BubbleSort[S ~[]E, E cmp.Ordered](s S) {
	BubbleSortFunc(s, cmp.Compare[E])
}

// BubbleSortFunc is BubbleSort ordered by cmp.
func BubbleSortFunc[S ~[]E, E any](s S, cmp types.Comparator[E]) {
	for i := 0; i < len(s)-1; i++ {
		for j := 0; j < len(s)-1-i; j++ {
			if cmp(s[j], s[j+1]) > 0 {
				Swap(s, j, j+1)
			}
		}
	}
}
