package riemann

import (
	"fmt"
	"math"

	"github.com/HinnyTsang/Bootes/types"
)

// Layout gives the position of density, the normal and two tangential momenta and the
// energy inside a caller's state vector.
type Layout struct {
	Rho, Mn, Mt1, Mt2, E int
}

// NewLayout rotates the canonical [rho, m1, m2, m3, E] ordering so that Mn is the momentum
// normal to the swept axis.
func NewLayout(axis types.Axis) (lay Layout) {
	switch axis {
	case types.X1:
		lay = Layout{types.IDN, types.IM1, types.IM2, types.IM3, types.IEN}
	case types.X2:
		lay = Layout{types.IDN, types.IM2, types.IM3, types.IM1, types.IEN}
	case types.X3:
		lay = Layout{types.IDN, types.IM3, types.IM1, types.IM2, types.IEN}
	default:
		panic(fmt.Errorf("%w: %d", types.ErrInvalidAxis, int(axis)))
	}
	return
}

// EulerFlux is the physical flux of a conserved state through a face normal to the layout's
// normal momentum.
func EulerFlux(U [5]float64, p, u float64, lay Layout) (F [5]float64) {
	F[lay.Rho] = U[lay.Rho] * u
	F[lay.Mn] = U[lay.Mn]*u + p
	F[lay.Mt1] = U[lay.Mt1] * u
	F[lay.Mt2] = U[lay.Mt2] * u
	F[lay.E] = (U[lay.E] + p) * u
	return
}

const degenerateTol = 1.e-12

// nearZero reports whether x vanishes relative to the magnitude of the terms it came from.
func nearZero(x, scale float64) bool {
	return x == 0 || math.Abs(x) <= degenerateTol*scale
}

func allFinite(F []float64) bool {
	for _, f := range F {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
