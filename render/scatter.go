// SPDX-License-Identifier: MIT
// Package: lvsphere/render
//
// scatter.go — HTML scatter plots of point clouds.

package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/lvsphere/nngraph"
)

// ErrNoPoints is returned when there is nothing to draw.
var ErrNoPoints = errors.New("render: no points")

// projections are the orthographic views added below the 3D chart.
var projections = []struct {
	name string
	a, b int
}{
	{"x-y", 0, 1},
	{"x-z", 0, 2},
	{"y-z", 1, 2},
}

// markerSize converts a matplotlib-style marker area (points²) into an
// echarts symbol diameter in pixels.
func markerSize(area float64) float64 {
	if area <= 0 {
		return 4
	}
	return math.Sqrt(area)
}

// Scatter3D writes an HTML page showing pts.
//
// Errors: ErrNoPoints, or the writer's error.
func Scatter3D(w io.Writer, title string, pts [][3]float32, p nngraph.Plotting) error {
	if len(pts) == 0 {
		return ErrNoPoints
	}
	axisName := [3]string{"x", "y", "z"}
	size := markerSize(p.VertexSize)

	data := make([]opts.Chart3DData, len(pts))
	for i, v := range pts {
		data[i] = opts.Chart3DData{Value: []interface{}{v[0], v[1], v[2]}}
	}
	sc3 := charts.NewScatter3D()
	sc3.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("vertices=%d", len(pts))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: axisName[0], Min: p.Limits[0][0], Max: p.Limits[0][1]}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: axisName[1], Min: p.Limits[1][0], Max: p.Limits[1][1]}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: axisName[2], Min: p.Limits[2][0], Max: p.Limits[2][1]}),
	)
	sc3.AddSeries("vertices", data)

	page := components.NewPage()
	page.PageTitle = title
	page.AddCharts(sc3)

	for _, pr := range projections {
		xy := make([]opts.ScatterData, len(pts))
		for i, v := range pts {
			xy[i] = opts.ScatterData{Value: []interface{}{v[pr.a], v[pr.b]}}
		}
		sc := charts.NewScatter()
		sc.SetGlobalOptions(
			charts.WithInitializationOpts(opts.Initialization{Width: "600px", Height: "600px"}),
			charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("%s (%s)", title, pr.name)}),
			charts.WithXAxisOpts(opts.XAxis{Min: p.Limits[pr.a][0], Max: p.Limits[pr.a][1], Name: axisName[pr.a], NameLocation: "middle", NameGap: 25}),
			charts.WithYAxisOpts(opts.YAxis{Min: p.Limits[pr.b][0], Max: p.Limits[pr.b][1], Name: axisName[pr.b], NameLocation: "middle", NameGap: 30}),
		)
		sc.AddSeries("vertices", xy, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: size}))
		page.AddCharts(sc)
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("Scatter3D: %w", err)
	}

	return nil
}
