package Dust

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/HinnyTsang/Bootes/dust"
	"github.com/HinnyTsang/Bootes/gas"
	"github.com/HinnyTsang/Bootes/types"
)

type Summary struct {
	Steps           int
	Time, Dt        float64
	GasInitial, Gas gas.Totals
	Dust            dust.Totals
	Floors          dust.FloorReport
	SodL1           float64 // density L1 error against the exact solution, sod case only
	WallTime        time.Duration
	StepsPerS       float64
}

// Timestep is the fixed dt of the run, either the input TimeStep or the CFL limit of the initial
// gas state, shrunk so that an integer number of steps reaches FinalTime.
func (c *Dust) Timestep() (dt float64, Nsteps int) {
	ip := c.Input
	dt = ip.TimeStep
	if dt == 0 {
		c.Gas.ConsToPrim(c.GasState)
		dt = c.Gas.MaxTimestep(c.GasState, ip.CFL)
	}
	Nsteps = int(math.Ceil(ip.FinalTime/dt - 1.e-9))
	dt = ip.FinalTime / float64(Nsteps)
	if Nsteps > ip.MaxIterations {
		Nsteps = ip.MaxIterations
	}
	return
}

// Step advances the gas and then the dust by dt.
func (c *Dust) Step(dt float64) (rep dust.FloorReport, err error) {
	if err = c.Gas.Step(c.GasState, dt); err != nil {
		return
	}
	if c.Stage == nil {
		return
	}
	if len(c.Grains) != 0 {
		if err = c.UpdateStoppingTime(); err != nil {
			return
		}
	}
	return c.Stage.Advance(c.DustState, c.GasState.Prim, dt)
}

func (c *Dust) Run() (sum Summary, err error) {
	var (
		ip           = c.Input
		logFrequency = ip.LogFrequency
		Time         float64
		start        = time.Now()
	)
	dt, Nsteps := c.Timestep()
	sum.Dt = dt
	sum.GasInitial = c.Gas.Totals(c.GasState)
	if c.Verbose {
		fmt.Printf("%s: %s, %s\n", c.Case.Print(), c.Geometry.System(), c.Grid)
		fmt.Printf("%s\n", c.Gas)
		fmt.Printf("FinalTime = %8.4f, Nsteps = %d, dt = %8.6g\n", ip.FinalTime, Nsteps, dt)
	}
	for tstep := 0; tstep < Nsteps; tstep++ {
		if _, err = c.Step(dt); err != nil {
			return
		}
		Time += dt
		sum.Steps++
		if c.Verbose && (tstep%logFrequency == 0 || tstep == Nsteps-1) {
			c.logStep(tstep, Time)
		}
	}
	sum.Time = Time
	if c.GasState.Cons.HasNonFinite() {
		err = fmt.Errorf("gas state is not finite at Time = %g, reduce the timestep", Time)
		return
	}
	sum.Gas = c.Gas.Totals(c.GasState)
	if c.Stage != nil {
		sum.Dust = c.DustCtx.Totals(c.DustState)
		sum.Floors = c.Stage.Floors
	}
	if c.Case == CASE_SOD {
		sum.SodL1 = c.SodError(Time)
	}
	sum.WallTime = time.Since(start)
	if secs := sum.WallTime.Seconds(); secs > 0 {
		sum.StepsPerS = float64(sum.Steps) / secs
	}
	if c.Verbose {
		c.printSummary(sum)
	}
	return
}

func (c *Dust) logStep(tstep int, Time float64) {
	gt := c.Gas.Totals(c.GasState)
	fmt.Printf("Time = %8.4f, step = %d, gas mass = %12.8g", Time, tstep, gt.Mass)
	if c.Stage != nil {
		dt := c.DustCtx.Totals(c.DustState)
		fmt.Printf(", dust mass = %v, floor resets = %d", dt.Mass, c.Stage.Floors.Total())
	}
	fmt.Printf("\n")
}

func (c *Dust) printSummary(sum Summary) {
	fmt.Printf("Finished %d steps to Time = %8.4f in %v (%.1f steps/s)\n",
		sum.Steps, sum.Time, sum.WallTime, sum.StepsPerS)
	fmt.Printf("gas mass %12.8g -> %12.8g, energy %12.8g -> %12.8g\n",
		sum.GasInitial.Mass, sum.Gas.Mass, sum.GasInitial.Energy, sum.Gas.Energy)
	if c.Stage != nil {
		fmt.Printf("dust mass %v, momentum %v\n", sum.Dust.Mass, sum.Dust.Momentum)
		fmt.Printf("floors: %s\n", sum.Floors)
	}
	if c.Case == CASE_SOD {
		fmt.Printf("density L1 error against the exact solution = %8.5f\n", sum.SodL1)
	}
}

// SodError is the mean absolute density error of the active cells along x1 at Time.
func (c *Dust) SodError(Time float64) float64 {
	var (
		g   = c.Grid
		X   = g.Xv[0][g.Is[0]:g.Ie[0]]
		rho = make([]float64, len(X))
		k   = g.Is[2]
		j   = g.Is[1]
	)
	for i := range rho {
		rho[i] = c.GasState.Cons.At(0, types.IDN, k, j, g.Is[0]+i)
	}
	exact, _, _, _ := c.SodSolution().Profile(Time, X)
	return floats.Distance(rho, exact, 1) / float64(len(X))
}
