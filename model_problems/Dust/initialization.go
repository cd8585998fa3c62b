package Dust

import (
	"github.com/HinnyTsang/Bootes/eos"
	"github.com/HinnyTsang/Bootes/sod_shock_tube"
	"github.com/HinnyTsang/Bootes/types"
)

// SodSolution is the exact solution matching the sod case initial state.
func (c *Dust) SodSolution() *sod_shock_tube.Sod {
	var (
		g  = c.Grid
		x0 = 0.5 * (g.Xf[0][g.Is[0]] + g.Xf[0][g.Ie[0]])
	)
	s, err := sod_shock_tube.NewSod(1, 1, 0, 0.125, 0.1, 0, c.Input.Gamma, x0)
	if err != nil {
		panic(err)
	}
	return s
}

// InitializeGas fills every gas cell, ghosts included.
func (c *Dust) InitializeGas() {
	var (
		g  = c.Grid
		ip = c.Input
		W  = [5]float64{ip.GasDensity, ip.GasVelocity[0], ip.GasVelocity[1], ip.GasVelocity[2], ip.GasPressure}
	)
	var sod *sod_shock_tube.Sod
	if c.Case == CASE_SOD {
		sod = c.SodSolution()
	}
	for k := 0; k < g.N[2]; k++ {
		for j := 0; j < g.N[1]; j++ {
			for i := 0; i < g.N[0]; i++ {
				if sod != nil {
					if g.Xv[0][i] < sod.X0 {
						W = [5]float64{sod.RhoL, sod.UL, 0, 0, sod.PL}
					} else {
						W = [5]float64{sod.RhoR, sod.UR, 0, 0, sod.PR}
					}
				}
				c.Gas.SetPrim(c.GasState, k, j, i, W)
			}
		}
	}
}

// InitializeDust sets each species to its dust to gas ratio times the gas density, moving at
// DustVelocity, and fills the stopping times.
func (c *Dust) InitializeDust() (err error) {
	var (
		g   = c.Grid
		ip  = c.Input
		ctx = c.DustCtx
		s   = c.DustState
	)
	for sp, ratio := range ip.DustToGas {
		for k := 0; k < g.N[2]; k++ {
			for j := 0; j < g.N[1]; j++ {
				for i := 0; i < g.N[0]; i++ {
					rho := ratio * c.GasState.Prim.At(0, types.IDN, k, j, i)
					s.Cons.Set(rho, sp, types.IDN, k, j, i)
					for n := 0; n < 3; n++ {
						s.Cons.Set(rho*ip.DustVelocity[n], sp, types.IM1+n, k, j, i)
					}
				}
			}
		}
	}
	ctx.ConsToPrim(s)
	return c.UpdateStoppingTime()
}

// UpdateStoppingTime refreshes the stopping times, which follow the gas under Epstein drag.
func (c *Dust) UpdateStoppingTime() error {
	if len(c.Grains) == 0 {
		return c.DustCtx.ConstantStoppingTime(c.DustState, c.Input.StoppingTimes)
	}
	var cs eos.SoundSpeedFunc = c.Gas.HLLC.SoundSpeed
	return c.DustCtx.EpsteinStoppingTime(c.DustState, c.GasState.Prim, c.Grains, cs, c.Gas.Gamma)
}
