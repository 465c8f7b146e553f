package stream

import (
	"github.com/kabu1204/go-sorts/types"
)

func sliceSource[T any](s []T) func() types.Iterator[T] {
	return func() types.Iterator[T] {
		return types.SliceIterator(s)
	}
}

// FromSlice streams the elements of s without copying it. Every terminal
// operation reads s again from the start.
func FromSlice[T any](s []T) Stream[T] {
	return &stream[T]{
		source:  sliceSource(s),
		prev:    nil,
		wrapper: defaultWrapper[T],
		Name:    "FromSlice",
	}
}

func Of[T any](elems ...T) Stream[T] {
	return &stream[T]{
		source:  sliceSource(elems),
		prev:    nil,
		wrapper: defaultWrapper[T],
		Name:    "Of",
	}
}
