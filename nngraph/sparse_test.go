package nngraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestSparse_AssemblyAndMatrix(t *testing.T) {
	es := []entry{
		{i: 2, j: 0, v: 5},
		{i: 0, j: 2, v: 1},
		{i: 0, j: 1, v: 2},
		{i: 0, j: 2, v: 3}, // duplicate, summed
		{i: 1, j: 1, v: 0}, // explicit zero is stored
	}
	s := newSparse(3, 3, es, func(a, b float64) float64 { return a + b })

	r, c := s.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 4, s.NNZ())
	assert.Equal(t, 2, s.RowNNZ(0))
	assert.Equal(t, 1, s.RowNNZ(1))
	assert.True(t, s.Has(1, 1))
	assert.False(t, s.Has(1, 0))
	assert.Equal(t, 6.0, s.RowSum(0))

	want := mat.NewDense(3, 3, []float64{
		0, 2, 4,
		0, 0, 0,
		5, 0, 0,
	})
	assert.True(t, mat.Equal(want, s))
	assert.True(t, mat.Equal(want.T(), s.T()))

	var seen [][3]float64
	s.Do(func(i, j int, v float64) { seen = append(seen, [3]float64{float64(i), float64(j), v}) })
	assert.Equal(t, [][3]float64{{0, 1, 2}, {0, 2, 4}, {1, 1, 0}, {2, 0, 5}}, seen)

	var cols []int
	s.DoRow(0, func(j int, _ float64) { cols = append(cols, j) })
	assert.Equal(t, []int{1, 2}, cols)
}

func TestSparse_AtOutOfRangePanics(t *testing.T) {
	s := newSparse(2, 2, nil, nil)
	require.Equal(t, 0, s.NNZ())
	assert.Zero(t, s.At(1, 1))
	assert.Panics(t, func() { s.At(2, 0) })
	assert.Panics(t, func() { s.At(0, -1) })
}
