package nngraph

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// bruteKNN is the O(N²) reference ordered by (distance, index).
func bruteKNN(pts [][3]float64, k int) [][]neighbor {
	out := make([][]neighbor, len(pts))
	for i := range pts {
		var all []neighbor
		for j := range pts {
			if j == i {
				continue
			}
			all = append(all, neighbor{idx: j, dist: point{x: pts[i]}.Distance(point{x: pts[j]})})
		}
		sort.Slice(all, func(a, b int) bool {
			if all[a].dist != all[b].dist {
				return all[a].dist < all[b].dist
			}
			return all[a].idx < all[b].idx
		})
		out[i] = all[:k]
	}

	return out
}

func TestKNN_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pts := make([][3]float64, 300)
	for i := range pts {
		pts[i] = [3]float64{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
	}
	for _, k := range []int{1, 6, 8, 20} {
		got := knn(pts, k)
		want := bruteKNN(pts, k)
		if diff := cmp.Diff(want, got, cmp.AllowUnexported(neighbor{})); diff != "" {
			t.Fatalf("k=%d mismatch (-want +got):\n%s", k, diff)
		}
	}
}

func TestKNN_TiesPreferLowerIndex(t *testing.T) {
	// 0 sits between four equidistant points.
	pts := [][3]float64{{0, 0, 0}, {0, 1, 0}, {-1, 0, 0}, {1, 0, 0}, {0, -1, 0}}
	got := knn(pts, 2)
	require.Equal(t, []neighbor{{idx: 1, dist: 1}, {idx: 2, dist: 1}}, got[0])
}

func TestKNN_GridWithManyTies(t *testing.T) {
	var pts [][3]float64
	for x := 0; x < 6; x++ {
		for y := 0; y < 6; y++ {
			for z := 0; z < 3; z++ {
				pts = append(pts, [3]float64{float64(x), float64(y), float64(z)})
			}
		}
	}
	want := bruteKNN(pts, 8)
	got := knn(pts, 8)
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(neighbor{})); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestKNN_Duplicates(t *testing.T) {
	pts := [][3]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}, {5, 0, 0}}
	got := knn(pts, 2)
	for i := 0; i < 3; i++ {
		require.Len(t, got[i], 2)
		for _, n := range got[i] {
			require.NotEqual(t, i, n.idx)
			require.Zero(t, n.dist)
		}
	}
	require.Equal(t, []neighbor{{idx: 0, dist: 25}, {idx: 1, dist: 25}}, got[3])
}
