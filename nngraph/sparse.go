// SPDX-License-Identifier: MIT
// Package: lvsphere/nngraph
//
// sparse.go — compressed sparse row matrix used for the k-NN and weight
// matrices.
//
// Contract:
//   • Sparse is immutable once built; all accessors are safe for concurrent use.
//   • Column indices within a row are strictly increasing.
//   • Sparse implements gonum mat.Matrix, so any mat routine that accepts a
//     Matrix (mat.Equal, mat.Formatted, mat.NewDense copy, …) works on it.

package nngraph

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Sparse is an r×c matrix in CSR layout.
type Sparse struct {
	r, c    int
	indptr  []int     // len r+1; row i occupies [indptr[i], indptr[i+1])
	indices []int     // column index per stored value
	data    []float64 // stored values
}

var _ mat.Matrix = (*Sparse)(nil)

// entry is one (i, j, v) triplet used while assembling a Sparse.
type entry struct {
	i, j int
	v    float64
}

// newSparse assembles an r×c CSR matrix from triplets. Duplicate (i, j)
// pairs are combined with merge. Explicit zeros are stored, so an underflowed
// kernel weight still marks a neighbour relation.
// Complexity: O(E log E).
func newSparse(r, c int, es []entry, merge func(a, b float64) float64) *Sparse {
	sort.Slice(es, func(a, b int) bool {
		if es[a].i != es[b].i {
			return es[a].i < es[b].i
		}
		return es[a].j < es[b].j
	})

	s := &Sparse{r: r, c: c, indptr: make([]int, r+1)}
	for n := 0; n < len(es); {
		e := es[n]
		v := e.v
		m := n + 1
		for ; m < len(es) && es[m].i == e.i && es[m].j == e.j; m++ {
			v = merge(v, es[m].v)
		}
		n = m
		s.indices = append(s.indices, e.j)
		s.data = append(s.data, v)
		s.indptr[e.i+1]++
	}
	for i := 0; i < r; i++ {
		s.indptr[i+1] += s.indptr[i]
	}

	return s
}

// Dims implements mat.Matrix.
func (s *Sparse) Dims() (r, c int) { return s.r, s.c }

// At implements mat.Matrix. It panics with mat.ErrIndexOutOfRange like the
// dense gonum types do.
// Complexity: O(log nnz(row)).
func (s *Sparse) At(i, j int) float64 {
	if i < 0 || i >= s.r || j < 0 || j >= s.c {
		panic(mat.ErrIndexOutOfRange)
	}
	if k, ok := s.find(i, j); ok {
		return s.data[k]
	}

	return 0
}

// find returns the storage position of (i, j).
func (s *Sparse) find(i, j int) (int, bool) {
	lo, hi := s.indptr[i], s.indptr[i+1]
	row := s.indices[lo:hi]
	k := sort.SearchInts(row, j)
	if k < len(row) && row[k] == j {
		return lo + k, true
	}

	return 0, false
}

// Has reports whether (i, j) is stored, even with a zero value.
func (s *Sparse) Has(i, j int) bool {
	_, ok := s.find(i, j)
	return ok
}

// T implements mat.Matrix with an implicit transpose.
func (s *Sparse) T() mat.Matrix { return mat.Transpose{Matrix: s} }

// NNZ returns the number of stored non-zero entries.
func (s *Sparse) NNZ() int { return len(s.data) }

// RowNNZ returns the number of stored entries in row i.
func (s *Sparse) RowNNZ(i int) int { return s.indptr[i+1] - s.indptr[i] }

// Do calls fn for every stored entry in row-major order.
func (s *Sparse) Do(fn func(i, j int, v float64)) {
	for i := 0; i < s.r; i++ {
		for k := s.indptr[i]; k < s.indptr[i+1]; k++ {
			fn(i, s.indices[k], s.data[k])
		}
	}
}

// DoRow calls fn for every stored entry of row i in column order.
func (s *Sparse) DoRow(i int, fn func(j int, v float64)) {
	for k := s.indptr[i]; k < s.indptr[i+1]; k++ {
		fn(s.indices[k], s.data[k])
	}
}

// RowSum returns Σ_j s[i][j].
func (s *Sparse) RowSum(i int) float64 {
	var sum float64
	for k := s.indptr[i]; k < s.indptr[i+1]; k++ {
		sum += s.data[k]
	}

	return sum
}

// triplets returns all stored entries, optionally transposed.
func (s *Sparse) triplets(transpose bool) []entry {
	es := make([]entry, 0, s.NNZ())
	s.Do(func(i, j int, v float64) {
		if transpose {
			i, j = j, i
		}
		es = append(es, entry{i: i, j: j, v: v})
	})

	return es
}
