package dust

import (
	"fmt"
	"math"

	"github.com/HinnyTsang/Bootes/eos"
	"github.com/HinnyTsang/Bootes/types"
	"github.com/HinnyTsang/Bootes/utils"
)

// Grain describes the particles of one dust species.
type Grain struct {
	Size    float64 // radius
	Density float64 // material density
}

// ConstantStoppingTime sets the stopping time of each species to ts[species] everywhere.
func (c *Context) ConstantStoppingTime(s *State, ts []float64) (err error) {
	if len(ts) != c.NumSpecies {
		err = fmt.Errorf("%w: %d stopping times for %d species", types.ErrSpeciesMismatch, len(ts), c.NumSpecies)
		return
	}
	utils.ParallelForBox(c.ParallelDegree, c.allCells(), func(bn int, idx [4]int) {
		s.StoppingTime.Set(ts[idx[0]], idx[0], idx[1], idx[2], idx[3])
	})
	return
}

/*
EpsteinStoppingTime fills the stopping times of small grains in the Epstein drag regime,

	ts = rho_grain a / (rho_gas vth),  vth = sqrt(8/pi) cs

with the gas density and pressure read from gasPrim (1, 5, N3, N2, N1). Cells without gas or
without a sound speed have no drag, ts = +Inf.
*/
func (c *Context) EpsteinStoppingTime(s *State, gasPrim *utils.Array, grains []Grain,
	cs eos.SoundSpeedFunc, gamma float64) (err error) {
	if len(grains) != c.NumSpecies {
		err = fmt.Errorf("%w: %d grain types for %d species", types.ErrSpeciesMismatch, len(grains), c.NumSpecies)
		return
	}
	vthFac := math.Sqrt(8 / math.Pi)
	utils.ParallelForBox(c.ParallelDegree, c.allCells(), func(bn int, idx [4]int) {
		var (
			sp, k, j, i = idx[0], idx[1], idx[2], idx[3]
			rhoG        = gasPrim.At(0, types.IDN, k, j, i)
			vth         = vthFac * cs(rhoG, gasPrim.At(0, types.IPR, k, j, i), gamma)
			ts          = math.Inf(1)
		)
		if rhoG > 0 && vth > 0 {
			ts = grains[sp].Density * grains[sp].Size / (rhoG * vth)
		}
		s.StoppingTime.Set(ts, sp, k, j, i)
	})
	return
}
