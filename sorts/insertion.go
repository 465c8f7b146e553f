package sorts

import (
	"cmp"

	"github.com/kabu1204/go-sorts/types"
)

// InsertionSort sorts s ascending by exchanging, for every position i, each
// later element smaller than s[i] straight into i:
//
//	[ i elements in order | unprocessed ]
//
// Unlike the shifting textbook version this performs one exchange per
// inversion found against s[i], and it is not stable.
func InsertionSort[S ~[]E, E cmp.Ordered](s S) {
	InsertionSortFunc(s, cmp.Compare[E])
}

// InsertionSortFunc is InsertionSort ordered by cmp.
func InsertionSortFunc[S ~[]E, E any](s S, cmp types.Comparator[E]) {
	for i := 0; i < len(s); i++ {
		for j := i; j < len(s); j++ {
			if cmp(s[j], s[i]) < 0 {
				Swap(s, j, i)
			}
		}
	}
}
