package render_test

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot/vg"

	_ "github.com/katalvlaran/lvsphere/healpix"
	"github.com/katalvlaran/lvsphere/render"
	"github.com/katalvlaran/lvsphere/sphere"
)

func TestScatter3D(t *testing.T) {
	g, err := sphere.NewHealpix(sphere.WithNside(2))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Scatter3D(&buf, "healpix nside=2", g.Coords, g.Plotting))
	html := buf.String()
	assert.True(t, strings.Contains(html, "<html"), "writes an HTML page")
	assert.Contains(t, html, "healpix nside=2")
	assert.Contains(t, html, "vertices=48")
	assert.Contains(t, html, "scatter3D")

	err = render.Scatter3D(&buf, "empty", nil, g.Plotting)
	require.ErrorIs(t, err, render.ErrNoPoints)
}

func TestSpy_PNG(t *testing.T) {
	g, err := sphere.NewHealpix(sphere.WithNside(2))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Spy(&buf, g.W, render.SpyOptions{Title: "W", Size: 2 * vg.Inch}))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	b := img.Bounds()
	assert.Equal(t, b.Dx(), b.Dy())
	assert.Positive(t, b.Dx())

	// Dense fallback path.
	buf.Reset()
	d := mat.NewDense(2, 3, []float64{1, 0, 0, 0, 0, 2})
	require.NoError(t, render.Spy(&buf, d, render.SpyOptions{}))
	_, err = png.Decode(&buf)
	require.NoError(t, err)

	// All-zero matrices still render an empty frame.
	buf.Reset()
	require.NoError(t, render.Spy(&buf, mat.NewDense(2, 2, nil), render.SpyOptions{}))
}

type emptyMatrix struct{}

func (emptyMatrix) Dims() (int, int)    { return 0, 0 }
func (emptyMatrix) At(int, int) float64 { panic("unreachable") }
func (e emptyMatrix) T() mat.Matrix     { return e }

func TestSpy_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, render.Spy(&buf, emptyMatrix{}, render.SpyOptions{}), render.ErrEmptyMatrix)
	assert.Zero(t, buf.Len())
}
