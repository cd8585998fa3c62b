package dust

import (
	"fmt"
	"math"

	"github.com/HinnyTsang/Bootes/boundary"
	"github.com/HinnyTsang/Bootes/gravity"
	"github.com/HinnyTsang/Bootes/reconstruct"
	"github.com/HinnyTsang/Bootes/types"
	"github.com/HinnyTsang/Bootes/utils"
)

/*
Stage runs one forward stage of the dust update.

Each step is a parallel loop that returns only after all of its workers finish, so the steps
never overlap: ghost fill, primitive recovery, reconstruction, flux sweep, conservative update,
drag and gravity sources, floor. Boundary and Recon are optional; without them the caller
provides ghost cells and interface states.
*/
type Stage struct {
	Ctx      *Context
	Boundary *boundary.Boundary
	Recon    *reconstruct.Reconstructor
	Gravity  *gravity.Potential
	// Floors accumulates the floor resets of every stage run so far
	Floors FloorReport
	Count  int
}

func NewStage(c *Context, bc *boundary.Boundary, recon *reconstruct.Reconstructor, pot *gravity.Potential) *Stage {
	return &Stage{Ctx: c, Boundary: bc, Recon: recon, Gravity: pot}
}

func (st *Stage) Advance(s *State, gasPrim *utils.Array, dt float64) (rep FloorReport, err error) {
	if !(dt > 0) || math.IsInf(dt, 1) {
		err = fmt.Errorf("%w: dt = %g", types.ErrInvalidTimestep, dt)
		return
	}
	c := st.Ctx
	if st.Boundary != nil {
		st.Boundary.Apply(s.Cons)
	}
	c.ConsToPrim(s)
	if st.Recon != nil {
		st.Recon.Interfaces(s.Prim, s.ValsL, s.ValsR)
	}
	c.CalcFlux(s)
	c.AdvectCons(s, dt)
	c.ApplySourceTerms(s, gasPrim, st.Gravity, dt)
	rep = c.Protect(s)

	st.Count++
	st.Floors.Add(rep)
	if c.Verbose && rep.Total() > 0 {
		fmt.Printf("stage %d: dust floor applied, %s (cumulative %s)\n", st.Count, rep, st.Floors)
	}
	return
}
