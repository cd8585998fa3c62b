package dust

import (
	"fmt"

	"github.com/HinnyTsang/Bootes/gravity"
	"github.com/HinnyTsang/Bootes/types"
	"github.com/HinnyTsang/Bootes/utils"
)

/*
ApplySourceTerms couples every dust species to the gas velocity through drag and to gravity.

gasPrim is the gas primitive field shaped (1, 5, N3, N2, N1); only its velocities are read.
A nil pot disables gravity. The gravitational force density on the dust is f = -rho grad(Phi).

Where the stopping time is shorter than dt the drag is too stiff to integrate explicitly and
the momentum is set to its terminal value under the gas velocity, the force and the fictitious
forces of the geometry. Otherwise the force and the drag relaxation are added explicitly,
dm = f dt + rho dt/ts (vgas - vdust). Density and velocity are those of the stage's primitive
state.
*/
func (c *Context) ApplySourceTerms(s *State, gasPrim *utils.Array, pot *gravity.Potential, dt float64) {
	c.checkState(s)
	if gasPrim.Rank() != 5 || gasPrim.Shape()[1] < types.NumGasVars {
		panic(fmt.Errorf("%w: gas primitive shape %v", types.ErrSpeciesMismatch, gasPrim.Shape()))
	}
	var (
		geom = c.Geometry
	)
	lo, hi := c.activeBox()
	utils.ParallelForBox(c.ParallelDegree, utils.NewBox(lo, hi), func(bn int, idx [4]int) {
		var (
			sp, k, j, i = idx[0], idx[1], idx[2], idx[3]
			rho         = s.Prim.At(sp, types.IDN, k, j, i)
			ts          = s.StoppingTime.At(sp, k, j, i)
			force       [3]float64
			vgas, vdust [3]float64
		)
		if pot != nil {
			acc := pot.Accel(geom, k, j, i)
			for n := 0; n < 3; n++ {
				force[n] = rho * acc[n]
			}
		}
		for n := 0; n < 3; n++ {
			vgas[n] = gasPrim.At(0, types.IV1+n, k, j, i)
			vdust[n] = s.Prim.At(sp, types.IV1+n, k, j, i)
		}
		if ts < dt {
			mom := geom.TerminalMomentum(k, j, i, rho, ts, vgas, force)
			for n := 0; n < 3; n++ {
				s.Cons.Set(mom[n], sp, types.IM1+n, k, j, i)
			}
			return
		}
		rhoDtTs := rho * dt / ts
		for n := 0; n < 3; n++ {
			s.Cons.Add(force[n]*dt+rhoDtTs*(vgas[n]-vdust[n]), sp, types.IM1+n, k, j, i)
		}
	})
}
