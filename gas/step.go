package gas

import (
	"fmt"
	"math"

	"github.com/HinnyTsang/Bootes/types"
)

/*
Step runs one forward stage of the gas: ghost fill, primitive recovery, reconstruction, flux
sweep and conservative update. Prim is left at the start of stage state, which is what the
dust drag reads. Boundary and Recon are optional as for the dust stage.
*/
func (gs *Solver) Step(s *State, dt float64) (err error) {
	if !(dt > 0) || math.IsInf(dt, 1) {
		err = fmt.Errorf("%w: dt = %g", types.ErrInvalidTimestep, dt)
		return
	}
	if gs.Boundary != nil {
		gs.Boundary.Apply(s.Cons)
	}
	gs.ConsToPrim(s)
	if gs.Recon != nil {
		gs.Recon.Interfaces(s.Prim, s.ValsL, s.ValsR)
	}
	gs.CalcFlux(s)
	gs.AdvectCons(s, dt)
	return
}
