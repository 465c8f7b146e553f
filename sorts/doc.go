// Package sorts holds classic comparison sorts and a binary search over
// slices.
//
// Each operation comes in two forms: one for cmp.Ordered elements and a
// ...Func form taking a types.Comparator. All sorts work in place by
// exchanging elements; only merge sort allocates, and only for the two
// halves it is merging.
//
//	s := []int{5, 3, 1, 4, 2}
//	sorts.QuickSort(s) // [1 2 3 4 5]
//
// Nothing here is safe for concurrent use on the same slice.
package sorts
