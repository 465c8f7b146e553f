package types

type (
	Predicate[T any] func(T) bool

	Function[T, R any] func(T) R

	Consumer[T any] func(T)

	IntFunction[T any] func(T) int

	// Comparator returns a negative number, zero or a positive number when e1
	// sorts before, together with or after e2.
	Comparator[T any] func(e1, e2 T) int

	BinaryOperator[T any] func(e1, e2 T) T
)

// Array pairs a slice with its ordering so it can be handed to package sort.
type Array[T any] struct {
	Data []T
	Cmp  Comparator[T]
}
