package Dust

import (
	"fmt"
	"strings"

	"github.com/HinnyTsang/Bootes/InputParameters"
	"github.com/HinnyTsang/Bootes/boundary"
	"github.com/HinnyTsang/Bootes/dust"
	"github.com/HinnyTsang/Bootes/eos"
	"github.com/HinnyTsang/Bootes/gas"
	"github.com/HinnyTsang/Bootes/gravity"
	"github.com/HinnyTsang/Bootes/mesh"
	"github.com/HinnyTsang/Bootes/reconstruct"
	"github.com/HinnyTsang/Bootes/riemann"
	"github.com/HinnyTsang/Bootes/types"
	"github.com/HinnyTsang/Bootes/utils"
)

type CaseType uint

const (
	CASE_DRIFT CaseType = iota
	CASE_SETTLING
	CASE_SOD
)

var (
	CaseNames = map[string]CaseType{
		"drift":    CASE_DRIFT,
		"settling": CASE_SETTLING,
		"sod":      CASE_SOD,
	}
	CasePrintNames = []string{"Drift", "Settling", "Sod Shock Tube"}
)

func (ct CaseType) Print() (txt string) {
	txt = CasePrintNames[ct]
	return
}

func NewCaseType(label string) (ct CaseType, err error) {
	var ok bool
	label = strings.ToLower(strings.TrimSpace(label))
	if ct, ok = CaseNames[label]; !ok {
		err = fmt.Errorf("unknown case named %s", label)
	}
	return
}

/*
Dust is a gas and dust model problem repeating single forward stages with a fixed timestep.

Each step advances the gas first, then the dust against the gas primitive state recovered at
the start of the gas step. The gas does not feel the dust or gravity. The sod case runs the gas
alone.
*/
type Dust struct {
	Input          *InputParameters.InputParametersDust
	Case           CaseType
	Grid           *mesh.Grid
	Geometry       mesh.Geometry
	Gas            *gas.Solver
	GasState       *gas.State
	DustCtx        *dust.Context
	DustState      *dust.State
	Stage          *dust.Stage
	Grains         []dust.Grain
	ParallelDegree int
	Verbose        bool
}

func NewDust(ip *InputParameters.InputParametersDust, ParallelDegree int, verbose bool) (c *Dust, err error) {
	if err = ip.Validate(); err != nil {
		return
	}
	c = &Dust{Input: ip, ParallelDegree: ParallelDegree, Verbose: verbose}
	if c.Case, err = NewCaseType(ip.Case); err != nil {
		return nil, err
	}
	var (
		cs    types.CoordSystem
		et    eos.EOSType
		ft    riemann.FluxType
		rm    reconstruct.Method
		bc    [3][2]utils.BCType
		recon *reconstruct.Reconstructor
		bnd   *boundary.Boundary
	)
	if cs, err = types.NewCoordSystem(ip.Coordinates); err != nil {
		return nil, err
	}
	if c.Grid, err = mesh.NewGrid(ip.Dim, ip.Nx, ip.Ghosts, ip.XMin, ip.XMax); err != nil {
		return nil, err
	}
	if c.Geometry, err = mesh.NewGeometry(cs, c.Grid); err != nil {
		return nil, err
	}
	if et, err = eos.NewEOSType(ip.EOS); err != nil {
		return nil, err
	}
	if ft, err = riemann.NewFluxType(ip.FluxType); err != nil {
		return nil, err
	}
	if rm, err = reconstruct.NewMethod(ip.Reconstruction); err != nil {
		return nil, err
	}
	if bc, err = ip.BoundaryTypes(); err != nil {
		return nil, err
	}
	if bnd, err = boundary.New(c.Grid, bc, ParallelDegree); err != nil {
		return nil, err
	}
	if recon, err = reconstruct.New(c.Grid, rm, ParallelDegree); err != nil {
		return nil, err
	}
	if c.Gas, err = gas.NewSolver(c.Geometry, ip.Gamma, et, ip.SoundSpeed, ft, ParallelDegree); err != nil {
		return nil, err
	}
	c.Gas.Boundary, c.Gas.Recon = bnd, recon
	c.GasState = c.Gas.NewState()
	c.InitializeGas()
	if c.Case == CASE_SOD {
		return
	}

	if c.DustCtx, err = dust.NewContext(c.Geometry, ip.NumSpecies(), ParallelDegree); err != nil {
		return nil, err
	}
	c.DustCtx.Solver = riemann.DustHLL{SoundSpeed: ip.DustSoundSpeed}
	c.DustCtx.Floor = dust.Floor{Enabled: !ip.DisableFloor, Density: ip.DensityFloor}
	c.DustCtx.Verbose = verbose
	c.DustState = c.DustCtx.NewState()
	for _, g := range ip.Grains {
		c.Grains = append(c.Grains, dust.Grain{Size: g.Size, Density: g.Density})
	}
	var pot *gravity.Potential
	switch {
	case ip.GM != 0:
		pot = gravity.NewPotential(c.Grid, gravity.PointMass(cs, ip.GM))
	case ip.Gravity != [3]float64{}:
		pot = gravity.NewPotential(c.Grid, gravity.Uniform(ip.Gravity))
	}
	c.Stage = dust.NewStage(c.DustCtx, bnd, recon, pot)
	if err = c.InitializeDust(); err != nil {
		return nil, err
	}
	return
}
