package sphere_test

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsphere/bfs"
	"github.com/katalvlaran/lvsphere/healpix"
	"github.com/katalvlaran/lvsphere/nngraph"
	"github.com/katalvlaran/lvsphere/pixelization"
	"github.com/katalvlaran/lvsphere/sphere"
)

// countingScheme forwards to HEALPix and counts calls per capability.
type countingScheme struct {
	mu    sync.Mutex
	calls map[string]int
	order []string
}

func newCountingScheme() *countingScheme { return &countingScheme{calls: map[string]int{}} }

func (c *countingScheme) hit(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.calls[name] == 0 {
		c.order = append(c.order, name)
	}
	c.calls[name]++
}

func (c *countingScheme) NPix(nside int) (int, error) {
	c.hit("NPix")
	return healpix.Scheme{}.NPix(nside)
}

func (c *countingScheme) Pix2Vec(nside, ipix int, ord pixelization.Ordering) ([3]float64, error) {
	c.hit("Pix2Vec")
	return healpix.Scheme{}.Pix2Vec(nside, ipix, ord)
}

func (c *countingScheme) Pix2Ang(nside, ipix int, ord pixelization.Ordering) (float64, float64, error) {
	c.hit("Pix2Ang")
	return healpix.Scheme{}.Pix2Ang(nside, ipix, ord)
}

func TestNewHealpix_EndToEndNside4(t *testing.T) {
	for _, ord := range []pixelization.Ordering{pixelization.Nested, pixelization.Ring} {
		t.Run(ord.String(), func(t *testing.T) {
			g, err := sphere.NewHealpix(sphere.WithNside(4), sphere.WithOrdering(ord))
			require.NoError(t, err)

			assert.Equal(t, 4, g.Nside)
			assert.Equal(t, ord, g.Ordering)
			assert.Equal(t, sphere.Parameters{NeighborCount: 8, KernelWidth: 0.1}, g.Parameters)
			assert.Equal(t, 192, g.N())
			assert.Equal(t, 192, g.Core.VertexCount())
			require.Len(t, g.Angles, 192)
			assert.Equal(t, 8, g.K)
			assert.InDelta(t, 0.1, g.KernelWidth, 1e-15)
			assert.Equal(t, sphere.PlottingMetadata(), g.Plotting)

			for i := 0; i < g.N(); i++ {
				require.Equal(t, 8, g.KNN.RowNNZ(i), "k-NN degree before symmetrization")
			}
			assert.True(t, g.IsSymmetric())
			g.W.Do(func(i, j int, v float64) {
				require.NotEqual(t, i, j)
				require.Greater(t, v, 0.0)
				require.LessOrEqual(t, v, 1.0)
			})

			comps := bfs.Components(g.Core)
			assert.Len(t, comps, 1, "sphere graph is connected")
		})
	}
}

func TestNewHealpix_VertexMetadata(t *testing.T) {
	g, err := sphere.NewHealpix(sphere.WithNside(2), sphere.WithNest(false))
	require.NoError(t, err)
	assert.Equal(t, pixelization.Ring, g.Ordering)

	for _, i := range []int{0, 17, 47} {
		id := strconv.Itoa(i)
		th, ok := g.Core.Metadata(id, sphere.MetaColatitude)
		require.True(t, ok)
		assert.Equal(t, g.Angles[i].Colatitude, th)
		ph, ok := g.Core.Metadata(id, sphere.MetaLongitude)
		require.True(t, ok)
		assert.Equal(t, g.Angles[i].Longitude, ph)
		px, ok := g.Core.Metadata(id, sphere.MetaPixel)
		require.True(t, ok)
		assert.Equal(t, i, px)
		c, ok := g.Core.Metadata(id, nngraph.MetaCoords)
		require.True(t, ok)
		assert.Equal(t, g.Coords[i], c)
	}
}

func TestNewHealpix_CoarsestResolution(t *testing.T) {
	g, err := sphere.NewHealpix(sphere.WithNside(1))
	require.NoError(t, err)
	assert.Equal(t, 12, g.N())
	assert.Equal(t, 6, g.Parameters.NeighborCount)
	for i := 0; i < 12; i++ {
		assert.Equal(t, 6, g.KNN.RowNNZ(i))
	}
}

func TestNewHealpix_MissingSchemeBeforeAnything(t *testing.T) {
	for _, nside := range []int{4, 64, 3, 0, -7} {
		_, err := sphere.NewHealpix(sphere.WithNside(nside), sphere.WithSchemeName("nonexistent"))
		require.ErrorIs(t, err, pixelization.ErrMissingDependency, "nside=%d", nside)
		require.ErrorIs(t, err, pixelization.ErrNotRegistered)
		assert.NotErrorIs(t, err, sphere.ErrParameterLookup)

		var mde *pixelization.MissingDependencyError
		require.ErrorAs(t, err, &mde)
		assert.Equal(t, "nonexistent", mde.Name)
	}
}

func TestNewHealpix_DefaultsFailOnParameterLookup(t *testing.T) {
	cs := newCountingScheme()
	_, err := sphere.NewHealpix(sphere.WithScheme(cs))
	require.ErrorIs(t, err, sphere.ErrParameterLookup)

	var pe *sphere.ParameterLookupError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, sphere.DefaultNside, pe.Nside)
	assert.Equal(t, []string{"NPix"}, cs.order, "no sampling before the lookup")
}

func TestNewHealpix_CallOrder(t *testing.T) {
	cs := newCountingScheme()
	g, err := sphere.NewHealpix(sphere.WithScheme(cs), sphere.WithNside(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"NPix", "Pix2Vec", "Pix2Ang"}, cs.order)
	assert.Equal(t, 48, cs.calls["Pix2Vec"])
	assert.Equal(t, 48, cs.calls["Pix2Ang"])
	assert.Equal(t, 48, g.N())
}

func TestNewHealpix_SchemeErrorsPropagateUnchanged(t *testing.T) {
	_, err := sphere.NewHealpix(sphere.WithScheme(failingScheme{}), sphere.WithNside(4))
	assert.Same(t, errReject, err)

	// The scheme rejects nside 0 before the parameter table is consulted.
	_, err = sphere.NewHealpix(sphere.WithNside(0))
	require.ErrorIs(t, err, healpix.ErrInvalidNside)
	_, want := healpix.NSide2NPix(0)
	assert.Equal(t, want.Error(), err.Error())

	// RING accepts nside 3; the table does not.
	_, err = sphere.NewHealpix(sphere.WithNside(3), sphere.WithNest(false))
	require.ErrorIs(t, err, sphere.ErrParameterLookup)
}

func TestNewHealpix_PassthroughGraphOptions(t *testing.T) {
	g, err := sphere.NewHealpix(sphere.WithNside(2),
		sphere.WithGraphOptions(nngraph.WithSymmetrize(nngraph.None)))
	require.NoError(t, err)
	assert.Equal(t, nngraph.None, g.Symmetrize)
	assert.True(t, g.Core.Directed())
	assert.Equal(t, 48*8, g.Core.EdgeCount())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { sphere.WithScheme(nil) })
	assert.Panics(t, func() { sphere.WithSchemeName("") })
	assert.Panics(t, func() { sphere.WithOrdering(pixelization.Ordering(5)) })
	assert.Panics(t, func() { sphere.WithGraphOptions(nngraph.WithCenter(), nil) })
	assert.NotPanics(t, func() { sphere.WithNside(-1) })
}
