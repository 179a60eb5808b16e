package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvsphere/nngraph"
)

func TestSpyPoints_KeepsExplicitZeros(t *testing.T) {
	// Neighbours this far apart underflow exp(-d²/σ) to exactly zero.
	pts := [][3]float32{{0, 0, 0}, {1000, 0, 0}, {3000, 0, 0}}
	g, err := nngraph.Build(pts, 1, 1e-3, nngraph.Plotting{})
	require.NoError(t, err)

	zeros := 0
	g.KNN.Do(func(_, _ int, v float64) {
		if v == 0 {
			zeros++
		}
	})
	require.Equal(t, g.KNN.NNZ(), zeros, "every stored weight underflows")

	xys := spyPoints(g.KNN)
	assert.Len(t, xys, g.KNN.NNZ())
	assert.Equal(t, 1.0, xys[0].X)
	assert.Equal(t, 0.0, xys[0].Y)
}

func TestSpyPoints_DenseSkipsZeros(t *testing.T) {
	m := mat.NewDense(2, 3, []float64{
		0, 2, 0,
		5, 0, 0,
	})
	xys := spyPoints(m)
	require.Len(t, xys, 2)
	assert.Equal(t, 1.0, xys[0].X)
	assert.Equal(t, 0.0, xys[0].Y)
	assert.Equal(t, 0.0, xys[1].X)
	assert.Equal(t, -1.0, xys[1].Y)
}
