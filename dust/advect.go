package dust

import (
	"github.com/HinnyTsang/Bootes/mesh"
	"github.com/HinnyTsang/Bootes/types"
	"github.com/HinnyTsang/Bootes/utils"
)

/*
AdvectCons applies the flux divergence of one stage to the conserved density and momenta of
every active cell, then adds the curvature sources of non Cartesian geometries.

The curvature sources use the stage's primitive state and the momentum fluxes through the
bounding faces, so a fluid at rest with an isotropic pressure stays at rest.
*/
func (c *Context) AdvectCons(s *State, dt float64) {
	c.checkState(s)
	var (
		g      = c.Grid
		geom   = c.Geometry
		curved = geom.System() != types.Cartesian
	)
	lo, hi := c.activeBox()
	utils.ParallelForBox(c.ParallelDegree, utils.NewBox(lo, hi), func(bn int, idx [4]int) {
		var (
			sp, k, j, i = idx[0], idx[1], idx[2], idx[3]
			kf, jf, iif = k - g.Is[2], j - g.Is[1], i - g.Is[0]
			flux        = func(n, a, kk, jj, ii int) float64 { return s.Flux.At(sp, n, a, kk, jj, ii) }
		)
		for n := 0; n < types.NumDustVars; n++ {
			var (
				fLo = [3]float64{flux(n, 0, kf, jf, iif), flux(n, 1, kf, jf, iif), flux(n, 2, kf, jf, iif)}
				fHi = [3]float64{flux(n, 0, kf, jf, iif+1), flux(n, 1, kf, jf+1, iif), flux(n, 2, kf+1, jf, iif)}
			)
			s.Cons.Add(-dt*geom.Divergence(k, j, i, fLo, fHi), sp, n, k, j, i)
		}
		if !curved {
			return
		}
		var (
			rho = s.Prim.At(sp, types.IDN, k, j, i)
			v   = [3]float64{
				s.Prim.At(sp, types.IV1, k, j, i),
				s.Prim.At(sp, types.IV2, k, j, i),
				s.Prim.At(sp, types.IV3, k, j, i),
			}
			ff = mesh.FaceMomentumFlux{
				M2X1: [2]float64{flux(types.IM2, 0, kf, jf, iif), flux(types.IM2, 0, kf, jf, iif+1)},
				M3X1: [2]float64{flux(types.IM3, 0, kf, jf, iif), flux(types.IM3, 0, kf, jf, iif+1)},
				M3X2: [2]float64{flux(types.IM3, 1, kf, jf, iif), flux(types.IM3, 1, kf, jf+1, iif)},
			}
			src = geom.GeometricSource(k, j, i, rho, c.Solver.Pressure(rho), v, ff)
		)
		for n := 0; n < 3; n++ {
			s.Cons.Add(dt*src[n], sp, types.IM1+n, k, j, i)
		}
	})
}
