package sorts

import (
	"cmp"

	"github.com/kabu1204/go-sorts/types"
)

// NotFound is returned by BinarySearch when no element matches.
const NotFound = -1

// BinarySearch looks for value in s[lo:hi+1] and returns its index or
// NotFound.
//
// When the midpoint element is less than value the search continues in the
// lower half [lo, mid], otherwise in [mid+1, hi]. That makes it a correct
// search over a non-increasing range only: on ascending input it finds just
// the elements lying on its search path. Use Search for ascending slices.
//
// An inverted range (lo > hi) yields NotFound.
func BinarySearch[S ~[]E, E cmp.Ordered](value E, s S, lo, hi int) int {
	return BinarySearchFunc(value, s, lo, hi, cmp.Compare[E])
}

// BinarySearchFunc is BinarySearch ordered by cmp: it moves to [lo, mid] when
// cmp(s[mid], value) < 0, so s[lo:hi+1] must be non-increasing under cmp.
func BinarySearchFunc[S ~[]E, E any](value E, s S, lo, hi int, cmp types.Comparator[E]) int {
	for lo <= hi {
		mid := lo + (hi-lo)/2
		c := cmp(s[mid], value)
		switch {
		case c == 0:
			return mid
		case lo == hi:
			return NotFound
		case c < 0:
			hi = mid
		default:
			lo = mid + 1
		}
	}
	return NotFound
}

// Search finds value in an ascending slice. It returns the position where
// value is or would be inserted, and whether it is present there.
func Search[S ~[]E, E cmp.Ordered](s S, value E) (int, bool) {
	return SearchFunc(s, value, cmp.Compare[E])
}

// SearchFunc is Search for a slice ascending under cmp.
func SearchFunc[S ~[]E, E any](s S, value E, cmp types.Comparator[E]) (int, bool) {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if cmp(s[mid], value) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, lo < len(s) && cmp(s[lo], value) == 0
}
