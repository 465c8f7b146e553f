package stream

import (
	"github.com/kabu1204/go-sorts/optional"
	"github.com/kabu1204/go-sorts/sorts"
	"github.com/kabu1204/go-sorts/types"
)

type Stream[T any] interface {
	// stateless
	Filter(p types.Predicate[T]) Stream[T]
	Map(f types.Function[T, T]) Stream[T]
	Peek(f types.Consumer[T]) Stream[T]

	// stateful
	Distinct(f types.IntFunction[T]) Stream[T]                     // first element per hash wins
	Sorted(cmp types.Comparator[T], alg sorts.Algorithm) Stream[T] // stable only if alg is
	Limit(N int64) Stream[T]                                       // first N elems
	Skip(N int64) Stream[T]                                        // skip first N elems

	ForEach(f types.Consumer[T])
	ToSlice() []T
	AllMatch(p types.Predicate[T]) bool
	NoneMatch(p types.Predicate[T]) bool
	AnyMatch(p types.Predicate[T]) bool
	Reduce(accumulator types.BinaryOperator[T]) optional.Optional[T]
	ReduceFrom(initValue T, accumulator types.BinaryOperator[T]) T
	FindFirst() optional.Optional[T]
	FindFirstMatch(p types.Predicate[T]) optional.Optional[T]
	Count() int64
}
