package dust

import (
	"fmt"

	"github.com/HinnyTsang/Bootes/types"
	"github.com/HinnyTsang/Bootes/utils"
)

// CalcFlux solves the interface problem of every species on every face of the active axes and
// zeroes the fluxes of the axes beyond the grid dimension.
func (c *Context) CalcFlux(s *State) {
	c.checkState(s)
	for a := 0; a < 3; a++ {
		axis := types.Axis(a)
		if a < c.Grid.Dim {
			c.SweepAxis(s, axis)
		} else {
			c.zeroAxis(s, axis)
		}
	}
}

// SweepAxis fills the fluxes through the faces normal to one axis.
func (c *Context) SweepAxis(s *State, axis types.Axis) {
	if !axis.Valid() {
		panic(fmt.Errorf("%w: %d", types.ErrInvalidAxis, int(axis)))
	}
	var (
		faces = c.Grid.Faces(axis)
		box   = utils.NewBox([4]int{}, [4]int{c.NumSpecies, faces[2], faces[1], faces[0]})
		imp   = axis.Momentum()
		a     = int(axis)
	)
	utils.ParallelForBox(c.ParallelDegree, box, func(bn int, idx [4]int) {
		var (
			sp, kf, jf, iif = idx[0], idx[1], idx[2], idx[3]
			WL, WR          [4]float64
		)
		for n := 0; n < types.NumDustVars; n++ {
			WL[n] = s.ValsL.At(sp, a, n, kf, jf, iif)
			WR[n] = s.ValsR.At(sp, a, n, kf, jf, iif)
		}
		F := c.Solver.Solve(WL, WR, imp)
		for n := 0; n < types.NumDustVars; n++ {
			s.Flux.Set(F[n], sp, n, a, kf, jf, iif)
		}
	})
}

func (c *Context) zeroAxis(s *State, axis types.Axis) {
	var (
		shape = s.Flux.Shape()
		box   = utils.NewBox([4]int{}, [4]int{c.NumSpecies, shape[3], shape[4], shape[5]})
		a     = int(axis)
	)
	utils.ParallelForBox(c.ParallelDegree, box, func(bn int, idx [4]int) {
		for n := 0; n < types.NumDustVars; n++ {
			s.Flux.Set(0, idx[0], n, a, idx[1], idx[2], idx[3])
		}
	})
}
