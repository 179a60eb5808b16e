// Package lvsphere builds graphs on the sphere: HEALPix pixel centres become
// vertices, and each vertex is joined to its k nearest neighbours with
// heat-kernel weights exp(-d²/σ).
//
// What is in the module?
//
//	pixelization/ — Scheme interface, Ordering, scheme registry
//	healpix/      — pure-Go HEALPix (ring + nested), registers "healpix"
//	nngraph/      — k-NN assembly on a kd-tree, heat kernel, symmetrization
//	sphere/       — sampling, tuned (k, σ) per nside, NewHealpix
//	core/         — thread-safe Graph with vertex metadata
//	bfs/          — hop traversal and connected components
//	dijkstra/     — shortest paths, e.g. by chord length between vertices
//	mst/          — Kruskal / Prim spanning trees
//	render/       — HTML 3D scatter and PNG sparsity plots
//	store/        — SQLite persistence of built graphs
//	cmd/spheregraph — command line front end (flags or HCL job files)
//
// Quick start:
//
//	import _ "github.com/katalvlaran/lvsphere/healpix"
//
//	g, err := sphere.NewHealpix(sphere.WithNside(8), sphere.WithNest(false))
//	// g.N() == 768, g.W is the symmetric weight matrix, g.Core the graph.
//
// The default construction (nside 1024) has no tuned kernel width and fails
// with sphere.ErrParameterLookup; pick one of 1, 2, 4, 8, 16 or 32.
//
//	go get github.com/katalvlaran/lvsphere
package lvsphere
