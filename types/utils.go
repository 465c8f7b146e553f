package types

import (
	"reflect"
	"strings"
)

// FieldPathOf resolves a dotted field path against typ, stepping through
// pointers to structs, and returns the index path FieldByIndex expects.
func FieldPathOf(typ reflect.Type, fieldPath string) ([]int, bool) {
	if typ == nil {
		return nil, false
	}
	indices := make([]int, 0, 4)
	for _, name := range strings.Split(fieldPath, ".") {
		for typ.Kind() == reflect.Pointer {
			typ = typ.Elem()
		}
		if typ.Kind() != reflect.Struct {
			return nil, false
		}
		field, ok := typ.FieldByName(name)
		if !ok || len(field.Index) != 1 {
			return nil, false
		}
		indices = append(indices, field.Index[0])
		typ = field.Type
	}
	return indices, true
}

// FieldPath2Index resolves a dotted field path on instance to the value it
// names and its index path. It fails on a path crossing a nil pointer.
func FieldPath2Index(instance interface{}, fieldPath string) (interface{}, []int, bool) {
	indices, ok := FieldPathOf(reflect.TypeOf(instance), fieldPath)
	if !ok {
		return nil, nil, false
	}
	v, err := reflect.Indirect(reflect.ValueOf(instance)).FieldByIndexErr(indices)
	if err != nil {
		return nil, nil, false
	}
	if !v.CanInterface() {
		return nil, indices, true
	}
	return v.Interface(), indices, true
}
