package boundary

import (
	"fmt"

	"github.com/HinnyTsang/Bootes/mesh"
	"github.com/HinnyTsang/Bootes/types"
	"github.com/HinnyTsang/Bootes/utils"
)

/*
Boundary fills the ghost cells of cell centred fields shaped (species, variable, k, j, i).

BC[axis][0] applies to the lower side of an axis and BC[axis][1] to the upper side. Axes are
filled in order x1, x2, x3 and each fill covers the full transverse extent including ghosts,
so edge and corner ghosts end up consistent with the later axes.
*/
type Boundary struct {
	Grid           *mesh.Grid
	BC             [3][2]utils.BCType
	ParallelDegree int
}

func New(g *mesh.Grid, bc [3][2]utils.BCType, ParallelDegree int) (b *Boundary, err error) {
	for a := 0; a < g.Dim; a++ {
		lo, hi := bc[a][0], bc[a][1]
		if (lo == utils.BCPeriodic) != (hi == utils.BCPeriodic) {
			err = fmt.Errorf("%w: axis %d periodic on one side only", types.ErrInvalidBC, a)
			return
		}
		if g.Ng[a] > g.Nx[a] && (lo != utils.BCNone || hi != utils.BCNone) {
			err = fmt.Errorf("%w: axis %d has %d ghosts for %d cells", types.ErrInvalidGrid, a, g.Ng[a], g.Nx[a])
			return
		}
	}
	b = &Boundary{Grid: g, BC: bc, ParallelDegree: ParallelDegree}
	return
}

// Apply fills every ghost layer of f, which must be shaped (ns, nv, N3, N2, N1).
func (b *Boundary) Apply(f *utils.Array) {
	var (
		g     = b.Grid
		shape = f.Shape()
	)
	if len(shape) != 5 || shape[2] != g.N[2] || shape[3] != g.N[1] || shape[4] != g.N[0] {
		panic(fmt.Errorf("%w: field shape %v does not match grid %v", types.ErrInvalidGrid, shape, g.N))
	}
	for _, axis := range g.Axes() {
		if g.Ng[axis] == 0 {
			continue
		}
		b.fillAxis(f, axis)
	}
}

func (b *Boundary) fillAxis(f *utils.Array, axis types.Axis) {
	var (
		g      = b.Grid
		shape  = f.Shape()
		nv     = shape[1]
		hi     = [4]int{shape[0] * nv, g.N[2], g.N[1], g.N[0]}
		sweep  = 3 - int(axis) // position of the swept index inside (sv, k, j, i)
		is, ie = g.Is[axis], g.Ie[axis]
		imp    = axis.Momentum()
		bcLo   = b.BC[axis][0]
		bcHi   = b.BC[axis][1]
	)
	hi[sweep] = g.Ng[axis]
	box := utils.NewBox([4]int{}, hi)
	utils.ParallelForBox(b.ParallelDegree, box, func(bn int, idx [4]int) {
		var (
			s, v  = idx[0] / nv, idx[0] % nv
			layer = idx[sweep]
			at    = func(n int) (k, j, i int) {
				pos := idx
				pos[sweep] = n
				return pos[1], pos[2], pos[3]
			}
			flip = 1.
		)
		if v == imp {
			flip = -1
		}
		// Lower side, ghost is-1-layer
		if src, sign, ok := source(bcLo, is-1-layer, is, ie, flip, false); ok {
			k, j, i := at(src)
			val := sign * f.At(s, v, k, j, i)
			k, j, i = at(is - 1 - layer)
			f.Set(val, s, v, k, j, i)
		}
		// Upper side, ghost ie+layer
		if src, sign, ok := source(bcHi, ie+layer, is, ie, flip, true); ok {
			k, j, i := at(src)
			val := sign * f.At(s, v, k, j, i)
			k, j, i = at(ie + layer)
			f.Set(val, s, v, k, j, i)
		}
	})
}

// source gives the cell a ghost copies from and the factor applied to the copy.
func source(bc utils.BCType, ghost, is, ie int, flip float64, upper bool) (src int, sign float64, ok bool) {
	sign, ok = 1, true
	switch bc {
	case utils.BCOutflow:
		if upper {
			src = ie - 1
		} else {
			src = is
		}
	case utils.BCPeriodic:
		if upper {
			src = is + (ghost - ie)
		} else {
			src = ie - (is - ghost)
		}
	case utils.BCReflect:
		if upper {
			src = ie - 1 - (ghost - ie)
		} else {
			src = is + (is - 1 - ghost)
		}
		sign = flip
	default:
		ok = false
	}
	return
}
