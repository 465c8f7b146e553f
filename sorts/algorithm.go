package sorts

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/kabu1204/go-sorts/types"
)

// Algorithm names one of the sorts in this package.
type Algorithm int

const (
	AlgoBubble Algorithm = iota
	AlgoSelection
	AlgoInsertion
	AlgoMerge
	AlgoQuick
)

// ErrUnknownAlgorithm is wrapped by ParseAlgorithm for names it does not know.
var ErrUnknownAlgorithm = errors.New("unknown sort algorithm")

// Algorithms lists every algorithm in declaration order.
var Algorithms = []Algorithm{AlgoBubble, AlgoSelection, AlgoInsertion, AlgoMerge, AlgoQuick}

var algorithmNames = [...]string{
	AlgoBubble:    "bubble",
	AlgoSelection: "selection",
	AlgoInsertion: "insertion",
	AlgoMerge:     "merge",
	AlgoQuick:     "quick",
}

func (a Algorithm) valid() bool {
	return a >= 0 && int(a) < len(algorithmNames)
}

func (a Algorithm) String() string {
	if !a.valid() {
		return "Algorithm(" + strconv.Itoa(int(a)) + ")"
	}
	return algorithmNames[a]
}

// Stable reports whether a keeps equal elements in their input order.
func (a Algorithm) Stable() bool {
	return a == AlgoBubble || a == AlgoMerge
}

// ParseAlgorithm maps a name such as "merge" or "Quick" to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for a, n := range algorithmNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Algorithm(a), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownAlgorithm, "parse %q", name)
}

// Sort sorts s ascending with a.
func Sort[S ~[]E, E cmp.Ordered](a Algorithm, s S) {
	SortFunc(a, s, cmp.Compare[E])
}

// SortFunc sorts s with a. It panics if a is not one of Algorithms.
func SortFunc[S ~[]E, E any](a Algorithm, s S, cmp types.Comparator[E]) {
	switch a {
	case AlgoBubble:
		BubbleSortFunc(s, cmp)
	case AlgoSelection:
		SelectionSortFunc(s, cmp)
	case AlgoInsertion:
		InsertionSortFunc(s, cmp)
	case AlgoMerge:
		MergeSortFunc(s, cmp)
	case AlgoQuick:
		QuickSortFunc(s, cmp)
	default:
		panic("sorts: " + a.String() + " is not a sort algorithm")
	}
}

// IsSorted reports whether s is ascending.
func IsSorted[S ~[]E, E cmp.Ordered](s S) bool {
	return IsSortedFunc(s, cmp.Compare[E])
}

func IsSortedFunc[S ~[]E, E any](s S, cmp types.Comparator[E]) bool {
	for i := 1; i < len(s); i++ {
		if cmp(s[i], s[i-1]) < 0 {
			return false
		}
	}
	return true
}
