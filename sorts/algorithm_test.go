package sorts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlgorithmNames(t *testing.T) {
	assert.Equal(t, []string{"bubble", "selection", "insertion", "merge", "quick"},
		[]string{AlgoBubble.String(), AlgoSelection.String(), AlgoInsertion.String(), AlgoMerge.String(), AlgoQuick.String()})
	assert.Equal(t, "Algorithm(9)", Algorithm(9).String())
	assert.Equal(t, "Algorithm(-1)", Algorithm(-1).String())
}

func TestAlgorithmStable(t *testing.T) {
	var stable []Algorithm
	for _, a := range Algorithms {
		if a.Stable() {
			stable = append(stable, a)
		}
	}
	assert.Equal(t, []Algorithm{AlgoBubble, AlgoMerge}, stable)
}

func TestParseAlgorithm(t *testing.T) {
	for _, a := range Algorithms {
		got, err := ParseAlgorithm(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	got, err := ParseAlgorithm(" Quick ")
	require.NoError(t, err)
	assert.Equal(t, AlgoQuick, got)

	_, err = ParseAlgorithm("bogo")
	require.ErrorIs(t, err, ErrUnknownAlgorithm)
	assert.Contains(t, err.Error(), `"bogo"`)
}

func TestSortDispatch(t *testing.T) {
	for _, a := range Algorithms {
		data := []int{5, 3, 1, 4, 2}
		Sort(a, data)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, data, a.String())
	}
	assert.Panics(t, func() { Sort(Algorithm(42), []int{2, 1}) })
}

func TestIsSorted(t *testing.T) {
	assert.True(t, IsSorted([]int{}))
	assert.True(t, IsSorted([]int{1}))
	assert.True(t, IsSorted([]int{1, 1, 2}))
	assert.False(t, IsSorted([]int{2, 1}))
	assert.True(t, IsSortedFunc([]int{3, 2, 2}, func(a, b int) int { return b - a }))
}
