package dust

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/HinnyTsang/Bootes/reconstruct"
	"github.com/HinnyTsang/Bootes/types"
	"github.com/HinnyTsang/Bootes/utils"
)

/*
State is the dust field of all species.

Cons holds [rho, m1, m2, m3] and Prim [rho, v1, v2, v3], both (ns, 4, N3, N2, N1) including
ghosts. StoppingTime is (ns, N3, N2, N1). ValsL, ValsR and Flux are scratch space rewritten
every stage: the interface states are (ns, 3, 4, nx3+1, nx2+1, nx1+1) and Flux is
(ns, 4, 3, nx3+1, nx2+1, nx1+1), all indexed relative to the active range.
*/
type State struct {
	Cons, Prim   *utils.Array
	StoppingTime *utils.Array
	ValsL, ValsR *utils.Array
	Flux         *utils.Array
}

func (c *Context) NewState() (s *State) {
	var (
		g  = c.Grid
		ns = c.NumSpecies
		nv = types.NumDustVars
	)
	s = &State{
		Cons:         utils.NewArray(ns, nv, g.N[2], g.N[1], g.N[0]),
		Prim:         utils.NewArray(ns, nv, g.N[2], g.N[1], g.N[0]),
		StoppingTime: utils.NewArray(ns, g.N[2], g.N[1], g.N[0]),
		ValsL:        reconstruct.NewFaceArray(g, ns, nv),
		ValsR:        reconstruct.NewFaceArray(g, ns, nv),
		Flux:         utils.NewArray(ns, nv, 3, g.Nx[2]+1, g.Nx[1]+1, g.Nx[0]+1),
	}
	return
}

func (c *Context) checkState(s *State) {
	if s.Cons.Shape()[0] != c.NumSpecies || s.Prim.Shape()[0] != c.NumSpecies {
		panic(fmt.Errorf("%w: state has %d species, context %d",
			types.ErrSpeciesMismatch, s.Cons.Shape()[0], c.NumSpecies))
	}
}

func (c *Context) allCells() utils.Box {
	g := c.Grid
	return utils.NewBox([4]int{}, [4]int{c.NumSpecies, g.N[2], g.N[1], g.N[0]})
}

// ConsToPrim derives velocities from momenta on every cell, ghosts included. Empty cells have
// zero velocity.
func (c *Context) ConsToPrim(s *State) {
	c.checkState(s)
	utils.ParallelForBox(c.ParallelDegree, c.allCells(), func(bn int, idx [4]int) {
		var (
			sp, k, j, i = idx[0], idx[1], idx[2], idx[3]
			rho         = s.Cons.At(sp, types.IDN, k, j, i)
		)
		s.Prim.Set(rho, sp, types.IDN, k, j, i)
		for n := types.IM1; n <= types.IM3; n++ {
			var v float64
			if rho > 0 {
				v = s.Cons.At(sp, n, k, j, i) / rho
			}
			s.Prim.Set(v, sp, n, k, j, i)
		}
	})
}

func (c *Context) PrimToCons(s *State) {
	c.checkState(s)
	utils.ParallelForBox(c.ParallelDegree, c.allCells(), func(bn int, idx [4]int) {
		var (
			sp, k, j, i = idx[0], idx[1], idx[2], idx[3]
			rho         = s.Prim.At(sp, types.IDN, k, j, i)
		)
		s.Cons.Set(rho, sp, types.IDN, k, j, i)
		for n := types.IM1; n <= types.IM3; n++ {
			s.Cons.Set(rho*s.Prim.At(sp, n, k, j, i), sp, n, k, j, i)
		}
	})
}

// Totals are volume integrals of the conserved variables over the active cells.
type Totals struct {
	Mass     []float64
	Momentum [][3]float64
}

func (c *Context) Totals(s *State) (tot Totals) {
	var (
		g    = c.Grid
		vols = make([]float64, 0, g.NumActive())
		vals = make([]float64, g.NumActive())
	)
	for k := g.Is[2]; k < g.Ie[2]; k++ {
		for j := g.Is[1]; j < g.Ie[1]; j++ {
			for i := g.Is[0]; i < g.Ie[0]; i++ {
				vols = append(vols, c.Geometry.CellVolume(k, j, i))
			}
		}
	}
	gather := func(sp, n int) []float64 {
		var ii int
		for k := g.Is[2]; k < g.Ie[2]; k++ {
			for j := g.Is[1]; j < g.Ie[1]; j++ {
				for i := g.Is[0]; i < g.Ie[0]; i++ {
					vals[ii] = s.Cons.At(sp, n, k, j, i)
					ii++
				}
			}
		}
		return vals
	}
	tot.Mass = make([]float64, c.NumSpecies)
	tot.Momentum = make([][3]float64, c.NumSpecies)
	for sp := 0; sp < c.NumSpecies; sp++ {
		tot.Mass[sp] = floats.Dot(vols, gather(sp, types.IDN))
		for n := 0; n < 3; n++ {
			tot.Momentum[sp][n] = floats.Dot(vols, gather(sp, types.IM1+n))
		}
	}
	return
}

// SetUniform fills species sp, ghosts included, with density rho and velocity v.
func (c *Context) SetUniform(s *State, sp int, rho float64, v [3]float64) {
	g := c.Grid
	for k := 0; k < g.N[2]; k++ {
		for j := 0; j < g.N[1]; j++ {
			for i := 0; i < g.N[0]; i++ {
				s.Cons.Set(rho, sp, types.IDN, k, j, i)
				for n := 0; n < 3; n++ {
					s.Cons.Set(rho*v[n], sp, types.IM1+n, k, j, i)
				}
			}
		}
	}
}
