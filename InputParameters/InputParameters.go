package InputParameters

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/HinnyTsang/Bootes/eos"
	"github.com/HinnyTsang/Bootes/reconstruct"
	"github.com/HinnyTsang/Bootes/riemann"
	"github.com/HinnyTsang/Bootes/types"
	"github.com/HinnyTsang/Bootes/utils"
)

type GrainParameters struct {
	Size    float64 `yaml:"Size"`
	Density float64 `yaml:"Density"`
}

// Parameters obtained from the YAML input file
type InputParametersDust struct {
	Title          string              `yaml:"Title"`
	Case           string              `yaml:"Case"` // drift, settling or sod
	Coordinates    string              `yaml:"Coordinates"`
	Dim            int                 `yaml:"Dim"`
	Nx             [3]int              `yaml:"Nx"`
	Ghosts         int                 `yaml:"Ghosts"`
	XMin           [3]float64          `yaml:"XMin"`
	XMax           [3]float64          `yaml:"XMax"`
	BCs            map[string][]string `yaml:"BCs"` // Axis name x1, x2, x3 to [lower, upper]
	Reconstruction string              `yaml:"Reconstruction"`
	FluxType       string              `yaml:"FluxType"`
	EOS            string              `yaml:"EOS"`
	Gamma          float64             `yaml:"Gamma"`
	SoundSpeed     float64             `yaml:"SoundSpeed"`     // isothermal gas
	DustSoundSpeed float64             `yaml:"DustSoundSpeed"` // zero for pressureless dust
	GasDensity     float64             `yaml:"GasDensity"`
	GasPressure    float64             `yaml:"GasPressure"`
	GasVelocity    [3]float64          `yaml:"GasVelocity"`
	DustToGas      []float64           `yaml:"DustToGas"` // one entry per species
	DustVelocity   [3]float64          `yaml:"DustVelocity"`
	StoppingTimes  []float64           `yaml:"StoppingTimes"`
	Grains         []GrainParameters   `yaml:"Grains"` // Epstein drag instead of StoppingTimes
	GM             float64             `yaml:"GM"`
	Gravity        [3]float64          `yaml:"Gravity"`
	DensityFloor   float64             `yaml:"DensityFloor"`
	DisableFloor   bool                `yaml:"DisableFloor"`
	TimeStep       float64             `yaml:"TimeStep"`
	CFL            float64             `yaml:"CFL"` // used to pick the timestep when TimeStep is 0
	FinalTime      float64             `yaml:"FinalTime"`
	MaxIterations  int                 `yaml:"MaxIterations"`
	LogFrequency   int                 `yaml:"LogFrequency"`
}

var (
	CaseNames = []string{"drift", "settling", "sod"}
	axisNames = []string{"x1", "x2", "x3"}
)

func (ip *InputParametersDust) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, ip); err != nil {
		return
	}
	ip.SetDefaults()
	return
}

func (ip *InputParametersDust) SetDefaults() {
	ip.Case = strings.ToLower(strings.TrimSpace(ip.Case))
	if ip.Coordinates == "" {
		ip.Coordinates = "cartesian"
	}
	if ip.Dim == 0 {
		ip.Dim = 1
	}
	for a := 0; a < 3; a++ {
		if a >= ip.Dim && ip.Nx[a] == 0 {
			ip.Nx[a] = 1
		}
		// Unit length on axes left unset
		if ip.XMin[a] == 0 && ip.XMax[a] == 0 {
			ip.XMax[a] = 1
		}
	}
	if ip.Ghosts == 0 {
		ip.Ghosts = 2
	}
	if ip.Gamma == 0 {
		ip.Gamma = 1.4
	}
	if ip.DensityFloor == 0 {
		ip.DensityFloor = 1.e-16
	}
	if ip.LogFrequency == 0 {
		ip.LogFrequency = 100
	}
	if ip.MaxIterations == 0 {
		ip.MaxIterations = 1000000
	}
}

func (ip *InputParametersDust) NumSpecies() int {
	return len(ip.DustToGas)
}

// BoundaryTypes resolves the BC names of the active axes, outflow being the default.
func (ip *InputParametersDust) BoundaryTypes() (bc [3][2]utils.BCType, err error) {
	for key := range ip.BCs {
		if !slices.Contains(axisNames, strings.ToLower(key)) {
			err = fmt.Errorf("%w: axis %q", types.ErrUnknownBC, key)
			return
		}
	}
	for a := 0; a < ip.Dim; a++ {
		bc[a] = [2]utils.BCType{utils.BCOutflow, utils.BCOutflow}
		var names []string
		for key, val := range ip.BCs {
			if strings.ToLower(key) == axisNames[a] {
				names = val
			}
		}
		switch len(names) {
		case 0:
			continue
		case 1:
			names = []string{names[0], names[0]}
		case 2:
		default:
			err = fmt.Errorf("%w: axis %s needs one or two names, have %v", types.ErrInvalidBC, axisNames[a], names)
			return
		}
		for side := 0; side < 2; side++ {
			if bc[a][side], err = utils.ParseBCName(names[side]); err != nil {
				return
			}
		}
	}
	return
}

// Validate checks the names and the sizes of the parameters, reporting every problem found.
func (ip *InputParametersDust) Validate() error {
	var errs []error
	check := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}
	if !slices.Contains(CaseNames, ip.Case) {
		check(fmt.Errorf("unknown case %q, must be one of %v", ip.Case, CaseNames))
	}
	if ip.Dim < 1 || ip.Dim > 3 {
		check(fmt.Errorf("%w: got %d", types.ErrInvalidDimension, ip.Dim))
	}
	_, err := types.NewCoordSystem(ip.Coordinates)
	check(err)
	_, err = riemann.NewFluxType(ip.FluxType)
	check(err)
	_, err = eos.NewEOSType(ip.EOS)
	check(err)
	_, err = reconstruct.NewMethod(ip.Reconstruction)
	check(err)
	_, err = ip.BoundaryTypes()
	check(err)
	ns := ip.NumSpecies()
	if ip.Case != "sod" {
		if ns == 0 {
			check(fmt.Errorf("%w: DustToGas must list at least one species", types.ErrSpeciesMismatch))
		}
		if len(ip.Grains) == 0 && len(ip.StoppingTimes) != ns {
			check(fmt.Errorf("%w: %d stopping times for %d species", types.ErrSpeciesMismatch, len(ip.StoppingTimes), ns))
		}
		if len(ip.Grains) != 0 && len(ip.Grains) != ns {
			check(fmt.Errorf("%w: %d grain types for %d species", types.ErrSpeciesMismatch, len(ip.Grains), ns))
		}
	}
	if !(ip.FinalTime > 0) {
		check(fmt.Errorf("%w: FinalTime = %g", types.ErrInvalidTimestep, ip.FinalTime))
	}
	if ip.TimeStep < 0 || (ip.TimeStep == 0 && !(ip.CFL > 0)) {
		check(fmt.Errorf("%w: need TimeStep > 0 or CFL > 0", types.ErrInvalidTimestep))
	}
	return errors.Join(errs...)
}

func (ip *InputParametersDust) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t\t= Case\n", ip.Case)
	fmt.Printf("[%s]\t\t= Coordinates\n", ip.Coordinates)
	fmt.Printf("%d %v\t\t= Dim, Nx\n", ip.Dim, ip.Nx[:ip.Dim])
	fmt.Printf("%v - %v\t= Domain\n", ip.XMin[:ip.Dim], ip.XMax[:ip.Dim])
	fmt.Printf("[%s]\t\t\t= Flux Type\n", ip.FluxType)
	fmt.Printf("[%s]\t\t\t= Reconstruction\n", ip.Reconstruction)
	fmt.Printf("%8.5f\t\t= Gamma\n", ip.Gamma)
	fmt.Printf("%d\t\t\t\t= Dust species\n", ip.NumSpecies())
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	if ip.TimeStep > 0 {
		fmt.Printf("%8.5g\t\t= TimeStep\n", ip.TimeStep)
	} else {
		fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	}
	keys := make([]string, len(ip.BCs))
	i := 0
	for k := range ip.BCs {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("BCs[%s] = %v\n", key, ip.BCs[key])
	}
}
