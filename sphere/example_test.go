package sphere_test

import (
	"errors"
	"fmt"

	_ "github.com/katalvlaran/lvsphere/healpix"
	"github.com/katalvlaran/lvsphere/sphere"
)

// ExampleNewHealpix builds the nside=4 sphere graph in NESTED ordering.
func ExampleNewHealpix() {
	g, err := sphere.NewHealpix(sphere.WithNside(4))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("vertices=%d k=%d width=%.2f symmetric=%v\n",
		g.N(), g.Parameters.NeighborCount, g.Parameters.KernelWidth, g.IsSymmetric())
	// Output:
	// vertices=192 k=8 width=0.10 symmetric=true
}

// ExampleSelectParameters shows that resolutions outside the tuned table are
// rejected instead of extrapolated.
func ExampleSelectParameters() {
	p, _ := sphere.SelectParameters(16)
	fmt.Printf("k=%d width=%.3f\n", p.NeighborCount, p.KernelWidth)

	_, err := sphere.SelectParameters(64)
	fmt.Println(errors.Is(err, sphere.ErrParameterLookup))
	// Output:
	// k=8 width=0.010
	// true
}
