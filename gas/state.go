package gas

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/HinnyTsang/Bootes/eos"
	"github.com/HinnyTsang/Bootes/reconstruct"
	"github.com/HinnyTsang/Bootes/types"
	"github.com/HinnyTsang/Bootes/utils"
)

/*
State is the gas field. Cons holds [rho, m1, m2, m3, E] and Prim [rho, v1, v2, v3, p], both
(1, 5, N3, N2, N1) including ghosts, so they share the species leading index of the dust
arrays and go through the same boundary and reconstruction code. ValsL, ValsR and Flux are
scratch space laid out like the dust ones.
*/
type State struct {
	Cons, Prim   *utils.Array
	ValsL, ValsR *utils.Array
	Flux         *utils.Array
}

func (gs *Solver) NewState() (s *State) {
	var (
		g  = gs.Grid
		nv = types.NumGasVars
	)
	s = &State{
		Cons:  utils.NewArray(1, nv, g.N[2], g.N[1], g.N[0]),
		Prim:  utils.NewArray(1, nv, g.N[2], g.N[1], g.N[0]),
		ValsL: reconstruct.NewFaceArray(g, 1, nv),
		ValsR: reconstruct.NewFaceArray(g, 1, nv),
		Flux:  utils.NewArray(1, nv, 3, g.Nx[2]+1, g.Nx[1]+1, g.Nx[0]+1),
	}
	return
}

func (gs *Solver) allCells() utils.Box {
	g := gs.Grid
	return utils.NewBox([4]int{}, [4]int{1, g.N[2], g.N[1], g.N[0]})
}

// pressure of a conserved state under the solver's equation of state.
func (gs *Solver) pressure(rho, m1, m2, m3, E float64) float64 {
	if gs.EOS == eos.EOS_Isothermal {
		return rho * gs.IsoSoundSpeed * gs.IsoSoundSpeed
	}
	return eos.Pressure(rho, m1, m2, m3, E, gs.Gamma)
}

// ConsToPrim recovers the primitive state of every cell, ghosts included. Densities and
// pressures under their floors are raised to the floor in Prim only.
func (gs *Solver) ConsToPrim(s *State) {
	utils.ParallelForBox(gs.ParallelDegree, gs.allCells(), func(bn int, idx [4]int) {
		var (
			k, j, i = idx[1], idx[2], idx[3]
			U       [5]float64
		)
		for n := range U {
			U[n] = s.Cons.At(0, n, k, j, i)
		}
		rho := U[types.IDN]
		if math.IsNaN(rho) || rho < gs.DensityFloor {
			rho = gs.DensityFloor
		}
		p := gs.pressure(rho, U[types.IM1], U[types.IM2], U[types.IM3], U[types.IEN])
		if math.IsNaN(p) || p < gs.PressureFloor {
			p = gs.PressureFloor
		}
		s.Prim.Set(rho, 0, types.IDN, k, j, i)
		for n := types.IM1; n <= types.IM3; n++ {
			s.Prim.Set(U[n]/rho, 0, n, k, j, i)
		}
		s.Prim.Set(p, 0, types.IPR, k, j, i)
	})
}

// PrimToCons is the inverse of ConsToPrim. The isothermal pressure is rebuilt from the density.
func (gs *Solver) PrimToCons(s *State) {
	utils.ParallelForBox(gs.ParallelDegree, gs.allCells(), func(bn int, idx [4]int) {
		var (
			k, j, i = idx[1], idx[2], idx[3]
			W       [5]float64
		)
		for n := range W {
			W[n] = s.Prim.At(0, n, k, j, i)
		}
		U := gs.conserved(W)
		for n := range U {
			s.Cons.Set(U[n], 0, n, k, j, i)
		}
	})
}

func (gs *Solver) conserved(W [5]float64) (U [5]float64) {
	var (
		rho        = W[types.IDN]
		v1, v2, v3 = W[types.IV1], W[types.IV2], W[types.IV3]
		p          = W[types.IPR]
	)
	if gs.EOS == eos.EOS_Isothermal {
		p = rho * gs.IsoSoundSpeed * gs.IsoSoundSpeed
	}
	U[types.IDN] = rho
	U[types.IM1], U[types.IM2], U[types.IM3] = rho*v1, rho*v2, rho*v3
	U[types.IEN] = eos.Energy(rho, v1, v2, v3, p, gs.Gamma)
	return
}

// SetPrim stores the primitive state W in cell (k, j, i) of both Prim and Cons.
func (gs *Solver) SetPrim(s *State, k, j, i int, W [5]float64) {
	U := gs.conserved(W)
	for n := 0; n < types.NumGasVars; n++ {
		s.Prim.Set(W[n], 0, n, k, j, i)
		s.Cons.Set(U[n], 0, n, k, j, i)
	}
}

type Totals struct {
	Mass     float64
	Momentum [3]float64
	Energy   float64
}

// Totals are volume integrals of the conserved variables over the active cells.
func (gs *Solver) Totals(s *State) (tot Totals) {
	var (
		g    = gs.Grid
		vols = make([]float64, 0, g.NumActive())
		vals = make([][]float64, types.NumGasVars)
	)
	for k := g.Is[2]; k < g.Ie[2]; k++ {
		for j := g.Is[1]; j < g.Ie[1]; j++ {
			for i := g.Is[0]; i < g.Ie[0]; i++ {
				vols = append(vols, gs.Geometry.CellVolume(k, j, i))
				for n := range vals {
					vals[n] = append(vals[n], s.Cons.At(0, n, k, j, i))
				}
			}
		}
	}
	tot.Mass = floats.Dot(vols, vals[types.IDN])
	for n := 0; n < 3; n++ {
		tot.Momentum[n] = floats.Dot(vols, vals[types.IM1+n])
	}
	tot.Energy = floats.Dot(vols, vals[types.IEN])
	return
}
