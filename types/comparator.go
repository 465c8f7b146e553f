package types

import (
	"cmp"
	"reflect"

	"github.com/emirpasic/gods/utils"
)

// Natural orders any cmp.Ordered type ascending. NaNs sort first.
func Natural[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// FromGods adapts an untyped gods comparator such as utils.IntComparator.
// The comparator panics if it is handed a T it does not expect.
func FromGods[T any](c utils.Comparator) Comparator[T] {
	return func(e1, e2 T) int {
		return c(e1, e2)
	}
}

func (c Comparator[T]) Less(e1, e2 T) bool {
	return c(e1, e2) < 0
}

func (c Comparator[T]) Reversed() Comparator[T] {
	return func(e1, e2 T) int {
		return c(e2, e1)
	}
}

// Then breaks ties of c with next.
func (c Comparator[T]) Then(next Comparator[T]) Comparator[T] {
	return func(e1, e2 T) int {
		if r := c(e1, e2); r != 0 {
			return r
		}
		return next(e1, e2)
	}
}

// ByField orders structs (or pointers to structs) by the field found at a
// dotted path such as "Info.Age". The path is resolved against T once, so the
// comparator holds no mutable state. Integer, float and string fields are
// supported. It panics on a path T does not have.
func ByField[T any](fieldPath string) Comparator[T] {
	indices, ok := FieldPathOf(reflect.TypeOf((*T)(nil)).Elem(), fieldPath)
	if !ok {
		panic("Field path is INCORRECT.")
	}
	return func(e1, e2 T) int {
		v1 := reflect.Indirect(reflect.ValueOf(e1)).FieldByIndex(indices)
		v2 := reflect.Indirect(reflect.ValueOf(e2)).FieldByIndex(indices)
		return compareValues(v1, v2)
	}
}

func compareValues(v1, v2 reflect.Value) int {
	switch v1.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(v1.Int(), v2.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(v1.Uint(), v2.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(v1.Float(), v2.Float())
	case reflect.String:
		return cmp.Compare(v1.String(), v2.String())
	}
	panic("Field kind " + v1.Kind().String() + " is not ordered.")
}
