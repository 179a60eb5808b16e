// SPDX-License-Identifier: MIT
// Package: lvsphere/store
//
// graphs.go — saving and reading sphere graphs.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvsphere/internal/ctxlog"
	"github.com/katalvlaran/lvsphere/nngraph"
	"github.com/katalvlaran/lvsphere/sphere"
)

// Summary describes one saved graph.
type Summary struct {
	ID            uuid.UUID
	Name          string
	Nside         int
	Ordering      string
	NeighborCount int
	KernelWidth   float64
	Symmetrize    string
	VertexCount   int
	EdgeCount     int
	CreatedAt     time.Time
}

// Vertex is one stored vertex.
type Vertex struct {
	Index      int
	X, Y, Z    float64
	Colatitude float64
	Longitude  float64
}

// Edge is one stored weight-matrix entry.
type Edge struct {
	From, To int
	Weight   float64
}

// SaveGraph writes g under a fresh UUID in one transaction and returns the ID.
// Undirected graphs (any mode but nngraph.None) store only the upper triangle
// (From < To); directed graphs store every entry, even when the weights
// happen to be symmetric.
func (s *Store) SaveGraph(ctx context.Context, name string, g *sphere.Healpix) (uuid.UUID, error) {
	if g == nil || g.Graph == nil {
		return uuid.Nil, errors.New("store: SaveGraph: nil graph")
	}
	id := uuid.New()
	undirected := g.Symmetrize != nngraph.None

	var edges []Edge
	g.W.Do(func(i, j int, v float64) {
		if undirected && j <= i {
			return
		}
		edges = append(edges, Edge{From: i, To: j, Weight: v})
	})

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("store: SaveGraph: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO graphs (id, name, nside, ordering, neighbor_count, kernel_width, symmetrize, vertex_count, edge_count)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id.String(), name, g.Nside, g.Ordering.String(), g.Parameters.NeighborCount,
		g.Parameters.KernelWidth, g.Symmetrize.String(), g.N(), len(edges))
	if err != nil {
		return uuid.Nil, fmt.Errorf("store: SaveGraph: insert graph: %w", err)
	}

	vStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO vertices (graph_id, idx, x, y, z, colatitude, longitude)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return uuid.Nil, fmt.Errorf("store: SaveGraph: prepare vertices: %w", err)
	}
	defer vStmt.Close()
	for i, p := range g.Coords {
		a := g.Angles[i]
		if _, err := vStmt.ExecContext(ctx, id.String(), i,
			float64(p[0]), float64(p[1]), float64(p[2]), a.Colatitude, a.Longitude); err != nil {
			return uuid.Nil, fmt.Errorf("store: SaveGraph: vertex %d: %w", i, err)
		}
	}

	eStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO edges (graph_id, src, dst, weight) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return uuid.Nil, fmt.Errorf("store: SaveGraph: prepare edges: %w", err)
	}
	defer eStmt.Close()
	for _, e := range edges {
		if _, err := eStmt.ExecContext(ctx, id.String(), e.From, e.To, e.Weight); err != nil {
			return uuid.Nil, fmt.Errorf("store: SaveGraph: edge %d-%d: %w", e.From, e.To, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("store: SaveGraph: commit: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("graph saved", "id", id, "name", name, "vertices", g.N(), "edges", len(edges))

	return id, nil
}

const summaryColumns = `id, name, nside, ordering, neighbor_count, kernel_width, symmetrize, vertex_count, edge_count, created_at`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanSummary(sc scanner) (Summary, error) {
	var (
		sum     Summary
		raw     string
		created interface{}
	)
	err := sc.Scan(&raw, &sum.Name, &sum.Nside, &sum.Ordering, &sum.NeighborCount,
		&sum.KernelWidth, &sum.Symmetrize, &sum.VertexCount, &sum.EdgeCount, &created)
	if err != nil {
		return Summary{}, err
	}
	if sum.ID, err = uuid.Parse(raw); err != nil {
		return Summary{}, fmt.Errorf("store: bad graph id %q: %w", raw, err)
	}
	if sum.CreatedAt, err = parseTime(created); err != nil {
		return Summary{}, err
	}

	return sum, nil
}

// parseTime accepts the forms the driver may return for a TIMESTAMP column.
func parseTime(v interface{}) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		return parseTimeString(t)
	case []byte:
		return parseTimeString(string(t))
	case nil:
		return time.Time{}, nil
	default:
		return time.Time{}, fmt.Errorf("store: unexpected timestamp type %T", v)
	}
}

func parseTimeString(s string) (time.Time, error) {
	for _, layout := range []string{time.DateTime, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("store: unparseable timestamp %q", s)
}

// Graph returns the summary of one saved graph.
//
// Errors: ErrGraphNotFound.
func (s *Store) Graph(ctx context.Context, id uuid.UUID) (Summary, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+summaryColumns+` FROM graphs WHERE id = ?`, id.String())
	sum, err := scanSummary(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Summary{}, fmt.Errorf("store: graph %s: %w", id, ErrGraphNotFound)
	}
	if err != nil {
		return Summary{}, fmt.Errorf("store: graph %s: %w", id, err)
	}

	return sum, nil
}

// ListGraphs returns all saved graphs, oldest first.
func (s *Store) ListGraphs(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+summaryColumns+` FROM graphs ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("store: list graphs: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		sum, err := scanSummary(rows)
		if err != nil {
			return nil, fmt.Errorf("store: list graphs: %w", err)
		}
		out = append(out, sum)
	}

	return out, rows.Err()
}

// Vertices returns the vertices of a saved graph ordered by index.
//
// Errors: ErrGraphNotFound.
func (s *Store) Vertices(ctx context.Context, id uuid.UUID) ([]Vertex, error) {
	if _, err := s.Graph(ctx, id); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT idx, x, y, z, colatitude, longitude FROM vertices
		WHERE graph_id = ? ORDER BY idx`, id.String())
	if err != nil {
		return nil, fmt.Errorf("store: vertices of %s: %w", id, err)
	}
	defer rows.Close()

	var out []Vertex
	for rows.Next() {
		var v Vertex
		if err := rows.Scan(&v.Index, &v.X, &v.Y, &v.Z, &v.Colatitude, &v.Longitude); err != nil {
			return nil, fmt.Errorf("store: vertices of %s: %w", id, err)
		}
		out = append(out, v)
	}

	return out, rows.Err()
}

// Edges returns the stored weight entries of a saved graph ordered by
// (From, To).
//
// Errors: ErrGraphNotFound.
func (s *Store) Edges(ctx context.Context, id uuid.UUID) ([]Edge, error) {
	if _, err := s.Graph(ctx, id); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT src, dst, weight FROM edges
		WHERE graph_id = ? ORDER BY src, dst`, id.String())
	if err != nil {
		return nil, fmt.Errorf("store: edges of %s: %w", id, err)
	}
	defer rows.Close()

	var out []Edge
	for rows.Next() {
		var e Edge
		if err := rows.Scan(&e.From, &e.To, &e.Weight); err != nil {
			return nil, fmt.Errorf("store: edges of %s: %w", id, err)
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

// DeleteGraph removes a saved graph with its vertices and edges.
//
// Errors: ErrGraphNotFound.
func (s *Store) DeleteGraph(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM graphs WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("store: delete %s: %w", id, ErrGraphNotFound)
	}

	return nil
}
