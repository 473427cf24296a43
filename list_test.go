package reducer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(l *list[int], n int) []int {
	var result []int
	l.Iterate(n, func(v int) {
		result = append(result, v)
	})
	return result
}

func TestListOrder(t *testing.T) {
	requireT := require.New(t)

	l := newList[int]()
	requireT.Nil(collect(l, l.Count))

	expected := make([]int, 0, 3*degree+1)
	for i := 0; i < 3*degree+1; i++ {
		l.Append(i)
		expected = append(expected, i)
	}

	requireT.Equal(3*degree+1, l.Count)
	requireT.Equal(expected, collect(l, l.Count))
}

func TestListIteratePrefix(t *testing.T) {
	requireT := require.New(t)

	l := newList[int]()
	for i := 0; i < degree+5; i++ {
		l.Append(i)
	}

	requireT.Equal([]int{0, 1, 2}, collect(l, 3))
	requireT.Len(collect(l, degree+1), degree+1)
	requireT.Nil(collect(l, 0))
}
