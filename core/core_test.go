package core_test

import (
	"math"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsphere/core"
)

func TestAddVertex_IdempotentAndValidated(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))
	require.True(t, g.HasVertex("A"))
	require.False(t, g.HasVertex(""))
	require.Equal(t, 1, g.VertexCount())
}

func TestMetadata(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.SetMetadata("missing", "k", 1), core.ErrVertexNotFound)
	require.ErrorIs(t, g.SetMetadata("", "k", 1), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("0"))
	require.NoError(t, g.SetMetadata("0", "pixel", 0))
	v, ok := g.Metadata("0", "pixel")
	require.True(t, ok)
	require.Equal(t, 0, v)

	_, ok = g.Metadata("0", "absent")
	require.False(t, ok)
	_, ok = g.Metadata("nope", "pixel")
	require.False(t, ok)
}

func TestAddEdge_Policies(t *testing.T) {
	tests := []struct {
		name    string
		opts    []core.GraphOption
		from    string
		to      string
		weight  float64
		wantErr error
	}{
		{"empty endpoint", nil, "", "B", 0, core.ErrEmptyVertexID},
		{"weight on unweighted", nil, "A", "B", 0.5, core.ErrBadWeight},
		{"NaN weight", []core.GraphOption{core.WithWeighted()}, "A", "B", math.NaN(), core.ErrBadWeight},
		{"Inf weight", []core.GraphOption{core.WithWeighted()}, "A", "B", math.Inf(1), core.ErrBadWeight},
		{"loop disabled", nil, "A", "A", 0, core.ErrLoopNotAllowed},
		{"loop enabled", []core.GraphOption{core.WithLoops()}, "A", "A", 0, nil},
		{"weighted ok", []core.GraphOption{core.WithWeighted()}, "A", "B", 0.25, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph(tc.opts...)
			_, err := g.AddEdge(tc.from, tc.to, tc.weight)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.True(t, g.HasEdge(tc.from, tc.to))
		})
	}
}

func TestAddEdge_UndirectedMirrorAndMulti(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	eid, err := g.AddEdge("A", "B", 0.75)
	require.NoError(t, err)
	require.Equal(t, "e1", eid)

	require.True(t, g.HasEdge("B", "A"), "undirected edge must be mirrored")
	w, err := g.Weight("B", "A")
	require.NoError(t, err)
	require.InDelta(t, 0.75, w, 1e-12)

	_, err = g.AddEdge("B", "A", 0.75)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	_, err = g.Weight("A", "C")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	_, err = g.GetEdge("e42")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestDirectedNeighborsAndDegree(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("A", "C", 2)
	_, _ = g.AddEdge("C", "A", 3)

	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	require.Equal(t, []string{"B", "C"}, ids)

	ids, err = g.NeighborIDs("B")
	require.NoError(t, err)
	require.Empty(t, ids)

	deg, err := g.Degree("A")
	require.NoError(t, err)
	require.Equal(t, 2, deg)
	require.False(t, g.HasEdge("B", "A"))

	_, err = g.Degree("Z")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Neighbors("")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestUndirectedLoopDegree(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, _ = g.AddEdge("A", "A", 0)
	_, _ = g.AddEdge("A", "B", 0)

	deg, err := g.Degree("A")
	require.NoError(t, err)
	require.Equal(t, 3, deg)

	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B"}, ids)
}

func TestEdges_SortedByID(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 3; i++ {
		_, err := g.AddEdge(strconv.Itoa(i), strconv.Itoa(i+1), 0)
		require.NoError(t, err)
	}
	edges := g.Edges()
	require.Len(t, edges, 3)
	require.Equal(t, 3, g.EdgeCount())
	for i := 1; i < len(edges); i++ {
		require.Less(t, edges[i-1].ID, edges[i].ID)
	}
	require.Equal(t, []string{"0", "1", "2", "3"}, g.Vertices())
}

func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	const n = 64

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = g.AddEdge("hub", strconv.Itoa(i), float64(i)+1)
		}(i)
	}
	wg.Wait()

	require.Equal(t, n, g.EdgeCount())
	deg, err := g.Degree("hub")
	require.NoError(t, err)
	require.Equal(t, n, deg)
}
