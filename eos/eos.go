package eos

import (
	"fmt"
	"math"
	"strings"

	"github.com/HinnyTsang/Bootes/types"
)

// SoundSpeedFunc returns the sound speed of a state with density rho and pressure p.
type SoundSpeedFunc func(rho, p, gamma float64) float64

// Adiabatic is the ideal gas sound speed sqrt(gamma p / rho). Vacuum (rho <= 0) and negative
// pressure return zero, which collapses the wave fan onto the contact.
func Adiabatic(rho, p, gamma float64) float64 {
	if rho <= 0 || p <= 0 {
		return 0
	}
	return math.Sqrt(gamma * p / rho)
}

// Isothermal returns a sound speed function with a fixed value, ignoring the state.
func Isothermal(cs float64) SoundSpeedFunc {
	return func(rho, p, gamma float64) float64 {
		return cs
	}
}

type EOSType uint8

const (
	EOS_Adiabatic EOSType = iota
	EOS_Isothermal
)

var (
	EOSNames = map[string]EOSType{
		"adiabatic":  EOS_Adiabatic,
		"ideal":      EOS_Adiabatic,
		"isothermal": EOS_Isothermal,
	}
	EOSPrintNames = []string{"Adiabatic", "Isothermal"}
)

func (et EOSType) Print() (txt string) {
	txt = EOSPrintNames[et]
	return
}

func NewEOSType(label string) (et EOSType, err error) {
	var ok bool
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return EOS_Adiabatic, nil
	}
	if et, ok = EOSNames[label]; !ok {
		err = fmt.Errorf("%w: unable to use equation of state named %s", types.ErrInvalidEOS, label)
	}
	return
}

// SoundSpeed builds the sound speed function for an equation of state type.
func (et EOSType) SoundSpeed(cs float64) SoundSpeedFunc {
	switch et {
	case EOS_Isothermal:
		return Isothermal(cs)
	default:
		return Adiabatic
	}
}

// Pressure returns the ideal gas pressure of a conserved state.
func Pressure(rho, m1, m2, m3, E, gamma float64) float64 {
	if rho <= 0 {
		return 0
	}
	return (gamma - 1) * (E - 0.5*(m1*m1+m2*m2+m3*m3)/rho)
}

// Energy is the inverse of Pressure: total energy density of a primitive state.
func Energy(rho, v1, v2, v3, p, gamma float64) float64 {
	return p/(gamma-1) + 0.5*rho*(v1*v1+v2*v2+v3*v3)
}

// Enthalpy is the specific total enthalpy (E + p)/rho.
func Enthalpy(rho, E, p float64) float64 {
	return (E + p) / rho
}
