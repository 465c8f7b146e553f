package types

type Iterator[T any] interface {
	Next() (T, bool)
	Len() int
}

type sliceIterator[T any] struct {
	index int
	slice []T
}

// SliceIterator walks s from the first element; it never copies s.
func SliceIterator[T any](s []T) Iterator[T] {
	return &sliceIterator[T]{
		index: -1,
		slice: s,
	}
}

func (it *sliceIterator[T]) hasNext() bool {
	return it.index < len(it.slice)-1
}

func (it *sliceIterator[T]) Next() (T, bool) {
	if it.hasNext() {
		it.index++
		return it.slice[it.index], true
	}
	var zero T
	return zero, false
}

func (it *sliceIterator[T]) Len() int {
	return len(it.slice)
}
