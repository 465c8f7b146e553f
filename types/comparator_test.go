package types

import (
	"reflect"
	"sort"
	"testing"

	"github.com/emirpasic/gods/utils"
	"github.com/stretchr/testify/assert"
)

type Info struct {
	Age   int
	Score float64
	Intro string
}

type Employee struct {
	Name     string
	Level    uint8
	SelfInfo Info
	Manager  *Employee
	Tags     []string
}

func TestNatural(t *testing.T) {
	c := Natural[int]()
	assert.Negative(t, c(1, 2))
	assert.Zero(t, c(2, 2))
	assert.Positive(t, c(3, 2))
	assert.True(t, c.Less(1, 2))
	assert.False(t, c.Less(2, 2))
}

func TestReversed(t *testing.T) {
	c := Natural[string]().Reversed()
	assert.Positive(t, c("a", "b"))
	assert.Negative(t, c("b", "a"))
	assert.Zero(t, c("a", "a"))
}

func TestThen(t *testing.T) {
	c := ByField[Employee]("SelfInfo.Age").Then(ByField[Employee]("Name"))
	a := Employee{Name: "a", SelfInfo: Info{Age: 30}}
	b := Employee{Name: "b", SelfInfo: Info{Age: 30}}
	old := Employee{Name: "a", SelfInfo: Info{Age: 40}}
	assert.Negative(t, c(a, b))
	assert.Negative(t, c(b, old))
	assert.Zero(t, c(a, a))
}

func TestFromGods(t *testing.T) {
	c := FromGods[int](utils.IntComparator)
	assert.Negative(t, c(1, 5))
	assert.Positive(t, c(5, 1))
	assert.Zero(t, c(3, 3))

	assert.Panics(t, func() {
		FromGods[int](utils.StringComparator)(1, 2)
	})
}

func TestByField(t *testing.T) {
	boss := &Employee{Name: "boss", Level: 9}
	a := Employee{Name: "ann", Level: 2, SelfInfo: Info{Age: 30, Score: 1.5, Intro: "hi"}, Manager: boss}
	b := Employee{Name: "bob", Level: 1, SelfInfo: Info{Age: 25, Score: 2.5, Intro: "hello"}, Manager: &Employee{Name: "alf"}}

	tests := []struct {
		path string
		want int
	}{
		{"Name", -1},
		{"Level", 1},
		{"SelfInfo.Age", 1},
		{"SelfInfo.Score", -1},
		{"SelfInfo.Intro", 1},
		{"Manager.Name", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ByField[Employee](tt.path)(a, b), tt.path)
		assert.Equal(t, -tt.want, ByField[*Employee](tt.path)(&b, &a), tt.path)
	}
}

func TestByFieldBadPath(t *testing.T) {
	e := Employee{Name: "x"}
	assert.Panics(t, func() { ByField[Employee]("Nope")(e, e) })
	assert.Panics(t, func() { ByField[Employee]("Name.Inner")(e, e) })
	assert.Panics(t, func() { ByField[Employee]("Tags")(e, e) }, "slices are not ordered")
	assert.Panics(t, func() { ByField[int]("Age")(1, 2) })
}

func TestFieldPath2Index(t *testing.T) {
	e := &Employee{SelfInfo: Info{Intro: "Hello0"}}
	v, indices, ok := FieldPath2Index(e, "SelfInfo.Intro")
	assert.True(t, ok)
	assert.Equal(t, "Hello0", v)
	assert.Equal(t, []int{2, 2}, indices)

	_, _, ok = FieldPath2Index(e, "SelfInfo.Missing")
	assert.False(t, ok)

	_, _, ok = FieldPath2Index(e, "Manager.Name")
	assert.False(t, ok, "nil Manager")

	_, _, ok = FieldPath2Index(nil, "Name")
	assert.False(t, ok)
}

func TestFieldPathOf(t *testing.T) {
	indices, ok := FieldPathOf(reflect.TypeOf(&Employee{}), "Manager.SelfInfo.Age")
	assert.True(t, ok)
	assert.Equal(t, []int{3, 2, 0}, indices)

	_, ok = FieldPathOf(reflect.TypeOf(Employee{}), "")
	assert.False(t, ok)
	_, ok = FieldPathOf(reflect.TypeOf(0), "Age")
	assert.False(t, ok)
}

func TestByFieldResolvesOnConstruction(t *testing.T) {
	assert.Panics(t, func() { ByField[Employee]("Nope") })
	assert.NotPanics(t, func() { ByField[*Employee]("Manager.Name") })
}

func TestArray(t *testing.T) {
	arr := &Array[int]{Data: []int{3, 1, 2}, Cmp: Natural[int]().Reversed()}
	sort.Sort(arr)
	assert.Equal(t, []int{3, 2, 1}, arr.Data)
	assert.Equal(t, 3, arr.Len())
}

func TestSliceIterator(t *testing.T) {
	it := SliceIterator([]string{"a", "b"})
	assert.Equal(t, 2, it.Len())

	var got []string
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		got = append(got, v)
	}
	assert.Equal(t, []string{"a", "b"}, got)

	v, ok := it.Next()
	assert.False(t, ok)
	assert.Equal(t, "", v)
}
