package sorts

import (
	"cmp"

	"github.com/kabu1204/go-sorts/types"
)

// QuickSort sorts s ascending. Pivots are the median of the first, middle
// and last element of each range; the worst case is still quadratic. It is
// not stable.
func QuickSort[S ~[]E, E cmp.Ordered](s S) {
	QuickSortFunc(s, cmp.Compare[E])
}

// QuickSortFunc is QuickSort ordered by cmp.
func QuickSortFunc[S ~[]E, E any](s S, cmp types.Comparator[E]) {
	quickSort(s, 0, len(s)-1, cmp)
}

func quickSort[S ~[]E, E any](s S, low, high int, cmp types.Comparator[E]) {
	if low < high {
		p := partition(s, low, high, cmp)
		quickSort(s, low, p-1, cmp)
		quickSort(s, p+1, high, cmp)
	}
}

// partition splits s[low:high+1] around a median-of-three pivot and returns
// the pivot's final index: s[low:p] <= s[p] < s[p+1:high+1].
func partition[S ~[]E, E any](s S, low, high int, cmp types.Comparator[E]) int {
	pivotIndex := medianOfThree(s, low, high, cmp)
	Swap(s, pivotIndex, high)
	pivot := s[high]

	// s[low:i+1] <= pivot, s[j+1:high] > pivot
	i, j := low-1, high-1
	for {
		for i < j && cmp(s[i+1], pivot) <= 0 {
			i++
		}
		for j > i && cmp(s[j], pivot) > 0 {
			j--
		}
		if i >= j {
			break
		}
		Swap(s, i+1, j)
	}

	Swap(s, i+1, high)
	return i + 1
}

// medianOfThree orders s[low], s[mid] and s[high] so the median lands at
// mid, and returns mid.
func medianOfThree[S ~[]E, E any](s S, low, high int, cmp types.Comparator[E]) int {
	mid := low + (high-low)/2

	if cmp(s[low], s[mid]) > 0 {
		Swap(s, low, mid)
	}
	if cmp(s[low], s[high]) > 0 {
		Swap(s, low, high)
	}
	if cmp(s[mid], s[high]) > 0 {
		Swap(s, mid, high)
	}
	return mid
}
