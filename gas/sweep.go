package gas

import (
	"fmt"
	"math"

	"github.com/HinnyTsang/Bootes/eos"
	"github.com/HinnyTsang/Bootes/mesh"
	"github.com/HinnyTsang/Bootes/riemann"
	"github.com/HinnyTsang/Bootes/types"
	"github.com/HinnyTsang/Bootes/utils"
)

// CalcFlux fills the interface fluxes of the active axes and zeroes the others.
func (gs *Solver) CalcFlux(s *State) {
	for a := 0; a < 3; a++ {
		if a < gs.Grid.Dim {
			gs.SweepAxis(s, types.Axis(a))
		} else {
			gs.zeroAxis(s, a)
		}
	}
}

// SweepAxis solves the interface problem on every face normal to axis from ValsL and ValsR.
func (gs *Solver) SweepAxis(s *State, axis types.Axis) {
	if !axis.Valid() {
		panic(fmt.Errorf("%w: %d", types.ErrInvalidAxis, int(axis)))
	}
	var (
		faces = gs.Grid.Faces(axis)
		box   = utils.NewBox([4]int{}, [4]int{1, faces[2], faces[1], faces[0]})
		lay   = riemann.NewLayout(axis)
		a     = int(axis)
		iv    = types.IV1 + a
	)
	utils.ParallelForBox(gs.ParallelDegree, box, func(bn int, idx [4]int) {
		var (
			kf, jf, iif = idx[1], idx[2], idx[3]
			WL, WR      [5]float64
		)
		for n := 0; n < types.NumGasVars; n++ {
			WL[n] = s.ValsL.At(0, a, n, kf, jf, iif)
			WR[n] = s.ValsR.At(0, a, n, kf, jf, iif)
		}
		var (
			UL, UR = gs.conserved(WL), gs.conserved(WR)
			pL, pR = gs.facePressure(WL), gs.facePressure(WR)
		)
		F := gs.flux(WL[types.IDN], pL, WL[iv], WR[types.IDN], pR, WR[iv], UL, UR, lay)
		for n := 0; n < types.NumGasVars; n++ {
			s.Flux.Set(F[n], 0, n, a, kf, jf, iif)
		}
	})
}

func (gs *Solver) facePressure(W [5]float64) float64 {
	if gs.EOS == eos.EOS_Isothermal {
		return W[types.IDN] * gs.IsoSoundSpeed * gs.IsoSoundSpeed
	}
	return W[types.IPR]
}

func (gs *Solver) zeroAxis(s *State, a int) {
	var (
		shape = s.Flux.Shape()
		box   = utils.NewBox([4]int{}, [4]int{1, shape[3], shape[4], shape[5]})
	)
	utils.ParallelForBox(gs.ParallelDegree, box, func(bn int, idx [4]int) {
		for n := 0; n < types.NumGasVars; n++ {
			s.Flux.Set(0, 0, n, a, idx[1], idx[2], idx[3])
		}
	})
}

/*
AdvectCons applies the flux divergence to the five conserved variables of the active cells
and the curvature sources to the momenta. Total energy has no curvature source.
*/
func (gs *Solver) AdvectCons(s *State, dt float64) {
	var (
		g      = gs.Grid
		geom   = gs.Geometry
		curved = geom.System() != types.Cartesian
	)
	lo, hi := g.ActiveBox(1)
	utils.ParallelForBox(gs.ParallelDegree, utils.NewBox(lo, hi), func(bn int, idx [4]int) {
		var (
			k, j, i     = idx[1], idx[2], idx[3]
			kf, jf, iif = k - g.Is[2], j - g.Is[1], i - g.Is[0]
			flux        = func(n, a, kk, jj, ii int) float64 { return s.Flux.At(0, n, a, kk, jj, ii) }
		)
		for n := 0; n < types.NumGasVars; n++ {
			var (
				fLo = [3]float64{flux(n, 0, kf, jf, iif), flux(n, 1, kf, jf, iif), flux(n, 2, kf, jf, iif)}
				fHi = [3]float64{flux(n, 0, kf, jf, iif+1), flux(n, 1, kf, jf+1, iif), flux(n, 2, kf+1, jf, iif)}
			)
			s.Cons.Add(-dt*geom.Divergence(k, j, i, fLo, fHi), 0, n, k, j, i)
		}
		if !curved {
			return
		}
		var (
			v = [3]float64{
				s.Prim.At(0, types.IV1, k, j, i),
				s.Prim.At(0, types.IV2, k, j, i),
				s.Prim.At(0, types.IV3, k, j, i),
			}
			ff = mesh.FaceMomentumFlux{
				M2X1: [2]float64{flux(types.IM2, 0, kf, jf, iif), flux(types.IM2, 0, kf, jf, iif+1)},
				M3X1: [2]float64{flux(types.IM3, 0, kf, jf, iif), flux(types.IM3, 0, kf, jf, iif+1)},
				M3X2: [2]float64{flux(types.IM3, 1, kf, jf, iif), flux(types.IM3, 1, kf, jf+1, iif)},
			}
			src = geom.GeometricSource(k, j, i,
				s.Prim.At(0, types.IDN, k, j, i), s.Prim.At(0, types.IPR, k, j, i), v, ff)
		)
		for n := 0; n < 3; n++ {
			s.Cons.Add(dt*src[n], 0, types.IM1+n, k, j, i)
		}
	})
}

// MaxTimestep is the largest stable timestep of the current Prim for a Courant number cfl.
func (gs *Solver) MaxTimestep(s *State, cfl float64) (dt float64) {
	var (
		g       = gs.Grid
		buckets = make([]float64, gs.ParallelDegree)
	)
	for n := range buckets {
		buckets[n] = math.Inf(1)
	}
	lo, hi := g.ActiveBox(1)
	utils.ParallelForBox(gs.ParallelDegree, utils.NewBox(lo, hi), func(bn int, idx [4]int) {
		var (
			k, j, i = idx[1], idx[2], idx[3]
			rho     = s.Prim.At(0, types.IDN, k, j, i)
			a       = gs.SoundSpeed(rho, s.Prim.At(0, types.IPR, k, j, i))
		)
		for _, axis := range g.Axes() {
			speed := math.Abs(s.Prim.At(0, types.IV1+int(axis), k, j, i)) + a
			if speed == 0 {
				continue
			}
			buckets[bn] = math.Min(buckets[bn], gs.Geometry.CellLength(axis, k, j, i)/speed)
		}
	})
	dt = math.Inf(1)
	for _, b := range buckets {
		dt = math.Min(dt, b)
	}
	return cfl * dt
}
