package types

import (
	"fmt"
	"strings"
)

// Conserved variable indices. Dust carries the first four, gas all five.
const (
	IDN = iota
	IM1
	IM2
	IM3
	IEN
)

// Primitive variable indices, sharing the density slot with the conserved set.
const (
	IV1 = IM1
	IV2 = IM2
	IV3 = IM3
	IPR = IEN
)

const (
	NumDustVars = 4
	NumGasVars  = 5
)

type Axis int

const (
	X1 Axis = iota
	X2
	X3
)

func (a Axis) Valid() bool {
	return a >= X1 && a <= X3
}

func (a Axis) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Axis(%d)", int(a))
	}
	return []string{"x1", "x2", "x3"}[a]
}

// Momentum returns the conserved index of the momentum normal to the axis.
func (a Axis) Momentum() int {
	return IM1 + int(a)
}

// Excess returns the per-axis face count excess of a sweep along a: one more face than
// cells on the swept axis, none on the others.
func (a Axis) Excess() (x1, x2, x3 int) {
	switch a {
	case X1:
		x1 = 1
	case X2:
		x2 = 1
	case X3:
		x3 = 1
	default:
		panic(fmt.Errorf("%w: %d", ErrInvalidAxis, int(a)))
	}
	return
}

type CoordSystem uint8

const (
	Cartesian CoordSystem = iota
	SphericalPolar
)

var (
	CoordNames = map[string]CoordSystem{
		"cartesian":       Cartesian,
		"xyz":             Cartesian,
		"spherical":       SphericalPolar,
		"spherical_polar": SphericalPolar,
		"rtp":             SphericalPolar,
	}
	CoordPrintNames = []string{"Cartesian", "Spherical Polar"}
)

func (cs CoordSystem) String() string {
	if int(cs) >= len(CoordPrintNames) {
		return fmt.Sprintf("CoordSystem(%d)", int(cs))
	}
	return CoordPrintNames[cs]
}

func NewCoordSystem(label string) (cs CoordSystem, err error) {
	var ok bool
	label = strings.ToLower(strings.TrimSpace(label))
	if cs, ok = CoordNames[label]; !ok {
		err = fmt.Errorf("%w: %q", ErrUnknownCoordinates, label)
	}
	return
}
