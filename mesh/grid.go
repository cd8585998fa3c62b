package mesh

import (
	"fmt"
	"math"

	"github.com/HinnyTsang/Bootes/types"
)

/*
Grid is a structured index space of up to three axes.

Axis 0 is x1 and is addressed by i, axis 1 (x2) by j and axis 2 (x3) by k. Cell fields are
stored as (k, j, i). Every active axis carries Ng ghost cells on each side; inactive axes have
exactly one cell and no ghosts, so loops over [Is, Ie) work uniformly for all dimensions.
*/
type Grid struct {
	Dim    int
	Nx     [3]int // active cells
	Ng     [3]int // ghost width per side
	N      [3]int // total cells including ghosts
	Is, Ie [3]int // active range [Is, Ie)
	Xf     [3][]float64
	Xv     [3][]float64
	Dx     [3][]float64
}

func NewGrid(dim int, nx [3]int, ng int, lo, hi [3]float64) (g *Grid, err error) {
	if dim < 1 || dim > 3 {
		err = fmt.Errorf("%w: got %d", types.ErrInvalidDimension, dim)
		return
	}
	if ng < 0 {
		err = fmt.Errorf("%w: negative ghost width %d", types.ErrInvalidGrid, ng)
		return
	}
	g = &Grid{Dim: dim}
	for a := 0; a < 3; a++ {
		if a < dim {
			if nx[a] < 1 {
				err = fmt.Errorf("%w: axis %d has %d cells", types.ErrInvalidGrid, a, nx[a])
				return nil, err
			}
			g.Nx[a], g.Ng[a] = nx[a], ng
		} else {
			g.Nx[a], g.Ng[a] = 1, 0
		}
		if !(hi[a] > lo[a]) || math.IsInf(hi[a]-lo[a], 0) {
			err = fmt.Errorf("%w: axis %d range [%g, %g]", types.ErrInvalidGrid, a, lo[a], hi[a])
			return nil, err
		}
		g.N[a] = g.Nx[a] + 2*g.Ng[a]
		g.Is[a], g.Ie[a] = g.Ng[a], g.Ng[a]+g.Nx[a]
		var (
			dx = (hi[a] - lo[a]) / float64(g.Nx[a])
			n  = g.N[a]
		)
		g.Xf[a] = make([]float64, n+1)
		g.Xv[a] = make([]float64, n)
		g.Dx[a] = make([]float64, n)
		for f := 0; f <= n; f++ {
			g.Xf[a][f] = lo[a] + float64(f-g.Ng[a])*dx
		}
		// Pin the outer active face to hi so the domain length is exact
		g.Xf[a][g.Ie[a]] = hi[a]
		for c := 0; c < n; c++ {
			g.Xv[a][c] = 0.5 * (g.Xf[a][c] + g.Xf[a][c+1])
			g.Dx[a][c] = g.Xf[a][c+1] - g.Xf[a][c]
		}
	}
	return
}

// Axes returns the active axes in sweep order.
func (g *Grid) Axes() (axes []types.Axis) {
	for a := 0; a < g.Dim; a++ {
		axes = append(axes, types.Axis(a))
	}
	return
}

// Faces is the number of faces of the active range along each axis, one more than the cell
// count along the swept axis.
func (g *Grid) Faces(axis types.Axis) (n [3]int) {
	x1, x2, x3 := axis.Excess()
	n = [3]int{g.Nx[0] + x1, g.Nx[1] + x2, g.Nx[2] + x3}
	return
}

// ActiveBox is the (k, j, i) active range with a leading species index in [0, ns).
func (g *Grid) ActiveBox(ns int) (lo, hi [4]int) {
	lo = [4]int{0, g.Is[2], g.Is[1], g.Is[0]}
	hi = [4]int{ns, g.Ie[2], g.Ie[1], g.Ie[0]}
	return
}

func (g *Grid) NumActive() int {
	return g.Nx[0] * g.Nx[1] * g.Nx[2]
}

func (g *Grid) String() string {
	return fmt.Sprintf("Dim=%d Nx=%v Ng=%v x1=[%g,%g] x2=[%g,%g] x3=[%g,%g]",
		g.Dim, g.Nx, g.Ng,
		g.Xf[0][g.Is[0]], g.Xf[0][g.Ie[0]],
		g.Xf[1][g.Is[1]], g.Xf[1][g.Ie[1]],
		g.Xf[2][g.Is[2]], g.Xf[2][g.Ie[2]])
}
