package riemann

import (
	"fmt"
	"strings"

	"github.com/HinnyTsang/Bootes/types"
)

type FluxType uint

const (
	FLUX_HLLC FluxType = iota
	FLUX_HLL
)

var (
	FluxNames = map[string]FluxType{
		"hllc": FLUX_HLLC,
		"hll":  FLUX_HLL,
		"hlle": FLUX_HLL,
	}
	FluxPrintNames = []string{"HLLC", "HLL"}
)

func (ft FluxType) Print() (txt string) {
	txt = FluxPrintNames[ft]
	return
}

func NewFluxType(label string) (ft FluxType, err error) {
	var ok bool
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return FLUX_HLLC, nil
	}
	if ft, ok = FluxNames[label]; !ok {
		err = fmt.Errorf("%w: unable to use flux named %s", types.ErrUnknownFlux, label)
	}
	return
}

// GasSolver returns the gas flux function of the selected type.
func (s *HLLC) GasSolver(ft FluxType) func(rhoL, pL, uL, rhoR, pR, uR float64, UL, UR [5]float64, lay Layout) [5]float64 {
	switch ft {
	case FLUX_HLL:
		return s.FluxHLL
	default:
		return s.Flux
	}
}
