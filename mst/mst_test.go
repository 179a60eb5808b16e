package mst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsphere/core"
	_ "github.com/katalvlaran/lvsphere/healpix"
	"github.com/katalvlaran/lvsphere/mst"
	"github.com/katalvlaran/lvsphere/sphere"
)

// square with one diagonal: A-B 1, B-C 2, C-D 1, D-A 3, A-C 2.5.
func square(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for _, e := range []struct {
		u, v string
		w    float64
	}{{"A", "B", 1}, {"B", "C", 2}, {"C", "D", 1}, {"D", "A", 3}, {"A", "C", 2.5}} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

func TestKruskalAndPrim_Square(t *testing.T) {
	g := square(t)

	kEdges, kTotal, err := mst.Kruskal(g, nil)
	require.NoError(t, err)
	assert.Len(t, kEdges, 3)
	assert.Equal(t, 4.0, kTotal)

	pEdges, pTotal, err := mst.Prim(g, "D", nil)
	require.NoError(t, err)
	assert.Len(t, pEdges, 3)
	assert.Equal(t, 4.0, pTotal)
	assert.Equal(t, "C", pEdges[0].From, "Prim starts with the cheapest edge at the root")
}

func TestCompute_Dispatch(t *testing.T) {
	g := square(t)

	_, total, err := mst.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, 4.0, total)

	_, total, err = mst.Compute(g, mst.WithMethod(mst.MethodPrim), mst.WithRoot("A"))
	require.NoError(t, err)
	assert.Equal(t, 4.0, total)

	hops := func(*core.Edge) float64 { return 1 }
	_, total, err = mst.Compute(g, mst.WithLength(hops))
	require.NoError(t, err)
	assert.Equal(t, 3.0, total)

	_, _, err = mst.Compute(g, mst.WithMethod("boruvka"))
	require.ErrorIs(t, err, mst.ErrUnknownMethod)
}

func TestErrors(t *testing.T) {
	_, _, err := mst.Kruskal(nil, nil)
	require.ErrorIs(t, err, mst.ErrInvalidGraph)

	_, _, err = mst.Kruskal(core.NewGraph(), nil)
	require.ErrorIs(t, err, mst.ErrInvalidGraph, "unweighted without a length function")

	_, _, err = mst.Kruskal(core.NewGraph(core.WithWeighted(), core.WithDirected(true)), nil)
	require.ErrorIs(t, err, mst.ErrInvalidGraph)

	_, _, err = mst.Kruskal(core.NewGraph(core.WithWeighted()), nil)
	require.ErrorIs(t, err, mst.ErrDisconnected)

	g := square(t)
	require.NoError(t, g.AddVertex("Z"))
	_, _, err = mst.Kruskal(g, nil)
	require.ErrorIs(t, err, mst.ErrDisconnected)
	_, _, err = mst.Prim(g, "A", nil)
	require.ErrorIs(t, err, mst.ErrDisconnected)

	_, _, err = mst.Prim(g, "", nil)
	require.ErrorIs(t, err, mst.ErrEmptyRoot)
	_, _, err = mst.Prim(g, "nope", nil)
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	one := core.NewGraph(core.WithWeighted())
	require.NoError(t, one.AddVertex("x"))
	edges, total, err := mst.Kruskal(one, nil)
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)
}

func TestSphere_KruskalMatchesPrim(t *testing.T) {
	h, err := sphere.NewHealpix(sphere.WithNside(4))
	require.NoError(t, err)

	kEdges, kTotal, err := mst.Kruskal(h.Core, h.EdgeLength)
	require.NoError(t, err)
	pEdges, pTotal, err := mst.Prim(h.Core, "0", h.EdgeLength)
	require.NoError(t, err)

	assert.Len(t, kEdges, h.N()-1)
	assert.Len(t, pEdges, h.N()-1)
	assert.InDelta(t, kTotal, pTotal, 1e-9)

	// The tree keeps N-1 of the 4N-ish edges.
	var all float64
	for _, e := range h.Core.Edges() {
		all += h.EdgeLength(e)
	}
	assert.Less(t, kTotal, all)
	assert.Greater(t, kTotal, 0.0)
}
