// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/lvsphere/bfs"
	"github.com/katalvlaran/lvsphere/dijkstra"
	_ "github.com/katalvlaran/lvsphere/healpix"
	"github.com/katalvlaran/lvsphere/internal/ctxlog"
	"github.com/katalvlaran/lvsphere/internal/jobfile"
	"github.com/katalvlaran/lvsphere/mst"
	"github.com/katalvlaran/lvsphere/render"
	"github.com/katalvlaran/lvsphere/sphere"
	"github.com/katalvlaran/lvsphere/store"
)

// config is the parsed command line.
type config struct {
	job       string
	outputDir string
	database  string
	logLevel  string
	logFormat string
	graph     jobfile.Graph
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("spheregraph", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr, fs.PrintDefaults) }

	var (
		c    config
		ring bool
	)
	fs.StringVar(&c.job, "job", "", "HCL job file; other graph flags are ignored when set")
	fs.IntVar(&c.graph.Nside, "nside", 4, "HEALPix resolution")
	fs.BoolVar(&ring, "ring", false, "use RING instead of NESTED ordering")
	fs.StringVar(&c.graph.Name, "name", "", "graph name (default nside<N>)")
	fs.StringVar(&c.graph.Symmetrize, "symmetrize", "average", "average, maximum, fill or none")
	fs.BoolVar(&c.graph.Center, "center", false, "center the point cloud before the neighbour search")
	fs.BoolVar(&c.graph.Rescale, "rescale", false, "rescale the point cloud before the neighbour search")
	fs.BoolVar(&c.graph.HTML, "html", false, "write an HTML scatter plot")
	fs.BoolVar(&c.graph.Spy, "spy", false, "write a PNG of the weight matrix sparsity")
	fs.StringVar(&c.outputDir, "out", ".", "directory for rendered files")
	fs.StringVar(&c.database, "db", "", "SQLite database to save graphs into")
	fs.StringVar(&c.logLevel, "log-level", "info", "debug, info, warn or error")
	fs.StringVar(&c.logFormat, "log-format", "text", "text or json")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, &exitError{code: 2, msg: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, &exitError{code: 2, msg: fmt.Sprintf("unexpected argument %q", fs.Arg(0))}
	}
	nest := !ring
	c.graph.Nest = &nest
	if c.graph.Name == "" {
		c.graph.Name = "nside" + strconv.Itoa(c.graph.Nside)
	}

	return &c, nil
}

// run is main without the process exit, for tests.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	log := ctxlog.New(cfg.logLevel, cfg.logFormat, stderr)
	ctx = ctxlog.WithLogger(ctx, log)

	graphs := []jobfile.Graph{cfg.graph}
	if cfg.job != "" {
		job, err := jobfile.Load(ctx, cfg.job)
		if err != nil {
			return err
		}
		graphs = job.Graphs
		if job.OutputDir != "" {
			cfg.outputDir = job.OutputDir
		}
		if job.Database != "" {
			cfg.database = job.Database
		}
	}

	var db *store.Store
	if cfg.database != "" {
		if db, err = store.Open(ctx, cfg.database); err != nil {
			return err
		}
		defer db.Close()
	}

	for _, entry := range graphs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := buildOne(ctx, entry, cfg.outputDir, db, stdout); err != nil {
			return fmt.Errorf("graph %q: %w", entry.Name, err)
		}
	}

	return nil
}

// buildOne builds, reports, renders and saves one graph.
func buildOne(ctx context.Context, entry jobfile.Graph, outDir string, db *store.Store, stdout io.Writer) error {
	log := ctxlog.FromContext(ctx).With("graph", entry.Name)

	opts, err := entry.Options()
	if err != nil {
		return err
	}
	log.Debug("building", "nside", entry.Nside, "nested", entry.Nested())
	g, err := sphere.NewHealpix(opts...)
	if err != nil {
		return err
	}

	comps := bfs.Components(g.Core)
	res, err := bfs.BFS(g.Core, "0")
	if err != nil {
		return err
	}
	dist, _, err := dijkstra.Dijkstra(g.Core, dijkstra.Source("0"), dijkstra.WithLength(g.EdgeLength))
	if err != nil {
		return err
	}
	_, far, _ := dijkstra.Farthest(dist)
	treeLen := math.NaN()
	if !g.Core.Directed() && len(comps) == 1 {
		if _, treeLen, err = mst.Kruskal(g.Core, g.EdgeLength); err != nil {
			return err
		}
	}
	fmt.Fprintf(stdout, "%s nside=%d ordering=%s vertices=%d edges=%d k=%d kernel_width=%g components=%d hops_from_0=%d path_from_0=%.4f mst_length=%.4f\n",
		entry.Name, g.Nside, g.Ordering, g.N(), g.Core.EdgeCount(),
		g.Parameters.NeighborCount, g.Parameters.KernelWidth, len(comps), res.Eccentricity(), far, treeLen)

	if entry.HTML || entry.Spy {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}
	}
	if entry.HTML {
		path := filepath.Join(outDir, entry.Name+".html")
		if err := writeFile(path, func(w io.Writer) error {
			return render.Scatter3D(w, fmt.Sprintf("%s (nside=%d, %s)", entry.Name, g.Nside, g.Ordering), g.Coords, g.Plotting)
		}); err != nil {
			return err
		}
		log.Info("wrote scatter plot", "path", path)
	}
	if entry.Spy {
		path := filepath.Join(outDir, entry.Name+"_spy.png")
		if err := writeFile(path, func(w io.Writer) error {
			return render.Spy(w, g.W, render.SpyOptions{Title: entry.Name + " W"})
		}); err != nil {
			return err
		}
		log.Info("wrote spy plot", "path", path)
	}

	if db != nil {
		id, err := db.SaveGraph(ctx, entry.Name, g)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s saved id=%s\n", entry.Name, id)
		log.Info("saved graph", "id", id)
	}

	return nil
}

// writeFile creates path and fills it with fn, removing it if fn fails.
func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	return fn(f)
}
