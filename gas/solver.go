package gas

import (
	"fmt"

	"github.com/HinnyTsang/Bootes/boundary"
	"github.com/HinnyTsang/Bootes/eos"
	"github.com/HinnyTsang/Bootes/mesh"
	"github.com/HinnyTsang/Bootes/reconstruct"
	"github.com/HinnyTsang/Bootes/riemann"
	"github.com/HinnyTsang/Bootes/types"
)

const (
	DefaultDensityFloor  = 1.e-16
	DefaultPressureFloor = 1.e-16
)

type FluxFunc func(rhoL, pL, uL, rhoR, pR, uR float64, UL, UR [5]float64, lay riemann.Layout) [5]float64

/*
Solver advances a single compressible gas on the same grid and geometry as the dust.

With an isothermal equation of state the pressure is rho cs^2 everywhere; the energy is still
carried in the conserved state but no longer feeds back into the pressure.
*/
type Solver struct {
	Grid           *mesh.Grid
	Geometry       mesh.Geometry
	Gamma          float64
	EOS            eos.EOSType
	IsoSoundSpeed  float64
	FluxType       riemann.FluxType
	HLLC           *riemann.HLLC
	Boundary       *boundary.Boundary
	Recon          *reconstruct.Reconstructor
	ParallelDegree int
	DensityFloor   float64
	PressureFloor  float64
	flux           FluxFunc
}

func NewSolver(geom mesh.Geometry, gamma float64, et eos.EOSType, cs float64,
	ft riemann.FluxType, ParallelDegree int) (gs *Solver, err error) {
	switch {
	case et == eos.EOS_Isothermal && !(cs > 0):
		err = fmt.Errorf("%w: isothermal sound speed %g", types.ErrInvalidEOS, cs)
		return
	case !(gamma > 1):
		err = fmt.Errorf("%w: gamma = %g", types.ErrInvalidEOS, gamma)
		return
	}
	if ParallelDegree < 1 {
		ParallelDegree = 1
	}
	gs = &Solver{
		Grid:           geom.Grid(),
		Geometry:       geom,
		Gamma:          gamma,
		EOS:            et,
		IsoSoundSpeed:  cs,
		FluxType:       ft,
		HLLC:           riemann.NewHLLC(gamma, et.SoundSpeed(cs)),
		ParallelDegree: ParallelDegree,
		DensityFloor:   DefaultDensityFloor,
		PressureFloor:  DefaultPressureFloor,
	}
	gs.flux = gs.HLLC.GasSolver(ft)
	return
}

// SoundSpeed is the sound speed of a primitive state.
func (gs *Solver) SoundSpeed(rho, p float64) float64 {
	return gs.HLLC.SoundSpeed(rho, p, gs.Gamma)
}

func (gs *Solver) String() string {
	return fmt.Sprintf("%s gas, gamma = %g, %s flux", gs.EOS.Print(), gs.Gamma, gs.FluxType.Print())
}
