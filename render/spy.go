// SPDX-License-Identifier: MIT
// Package: lvsphere/render
//
// spy.go — sparsity-pattern PNG of a matrix.

package render

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrEmptyMatrix is returned by Spy for a matrix without rows or columns.
var ErrEmptyMatrix = errors.New("render: empty matrix")

// SpyOptions controls Spy output.
type SpyOptions struct {
	// Title is drawn above the plot.
	Title string

	// Size is the side of the square image; 0 means 6 inches.
	Size vg.Length

	// MarkerRadius is the radius of each non-zero marker; 0 means 0.5pt.
	MarkerRadius vg.Length
}

// doer is implemented by sparse matrices that can enumerate their entries
// without scanning every cell.
type doer interface {
	Do(fn func(i, j int, v float64))
}

// Spy writes a PNG with one marker per stored entry of m. Row 0 is at the
// top, as in a printed matrix. For matrices with a Do method every entry Do
// visits is drawn, explicit zeros included, so the marker count equals the
// stored count (nngraph.Sparse.NNZ). Other matrices are scanned cell by cell
// and only non-zero cells are drawn.
//
// Errors: ErrEmptyMatrix, plotting or writer errors.
//
// Complexity: O(nnz) for matrices with a Do method, O(r·c) otherwise.
func Spy(w io.Writer, m mat.Matrix, o SpyOptions) error {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return ErrEmptyMatrix
	}
	if o.Size == 0 {
		o.Size = 6 * vg.Inch
	}
	if o.MarkerRadius == 0 {
		o.MarkerRadius = vg.Points(0.5)
	}

	xys := spyPoints(m)

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = fmt.Sprintf("column (nnz=%d)", len(xys))
	p.Y.Label.Text = "-row"
	p.X.Min, p.X.Max = -0.5, float64(c)-0.5
	p.Y.Min, p.Y.Max = -float64(r)+0.5, 0.5

	if len(xys) > 0 {
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return fmt.Errorf("Spy: %w", err)
		}
		s.GlyphStyle.Shape = draw.BoxGlyph{}
		s.GlyphStyle.Radius = o.MarkerRadius
		p.Add(s)
	}

	wt, err := p.WriterTo(o.Size, o.Size, "png")
	if err != nil {
		return fmt.Errorf("Spy: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("Spy: %w", err)
	}

	return nil
}

// spyPoints returns the marker positions for m: (column, -row).
func spyPoints(m mat.Matrix) plotter.XYs {
	var xys plotter.XYs
	add := func(i, j int) {
		xys = append(xys, plotter.XY{X: float64(j), Y: -float64(i)})
	}
	if d, ok := m.(doer); ok {
		d.Do(func(i, j int, _ float64) { add(i, j) })

		return xys
	}
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if m.At(i, j) != 0 {
				add(i, j)
			}
		}
	}

	return xys
}
