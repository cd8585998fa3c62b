package riemann

import (
	"math"

	"github.com/HinnyTsang/Bootes/types"
)

/*
DustHLL is the two wave HLL solver for a dust fluid carrying density and three momenta.

Interface states are primitive, [rho, v1, v2, v3]. SoundSpeed is the isothermal velocity
dispersion used as the dust pressure proxy, p = rho cs^2; zero selects pressureless dust and
removes the pressure term from the normal momentum flux.
*/
type DustHLL struct {
	SoundSpeed float64
}

func (s DustHLL) HasPressure() bool {
	return s.SoundSpeed > 0
}

func (s DustHLL) Pressure(rho float64) float64 {
	if !s.HasPressure() {
		return 0
	}
	return rho * s.SoundSpeed * s.SoundSpeed
}

// WaveSpeeds gives Davis estimates of the outer wave speeds, imp being the index of the
// momentum normal to the face.
func (s DustHLL) WaveSpeeds(WL, WR [4]float64, imp int) (sL, sR float64) {
	var (
		uL, uR = WL[imp], WR[imp]
		cs     = s.SoundSpeed
	)
	if cs < 0 {
		cs = 0
	}
	sL = math.Min(uL-cs, uR-cs)
	sR = math.Max(uL+cs, uR+cs)
	return
}

// Conserved converts a primitive dust state to [rho, rho v1, rho v2, rho v3].
func (s DustHLL) Conserved(W [4]float64) (U [4]float64) {
	U[types.IDN] = W[types.IDN]
	for n := types.IM1; n <= types.IM3; n++ {
		U[n] = W[types.IDN] * W[n]
	}
	return
}

// PhysicalFlux is the flux of a primitive dust state through a face normal to momentum imp.
func (s DustHLL) PhysicalFlux(W [4]float64, imp int) (F [4]float64) {
	var (
		U  = s.Conserved(W)
		un = W[imp]
	)
	for n := 0; n < 4; n++ {
		F[n] = U[n] * un
	}
	if s.HasPressure() {
		F[imp] += s.Pressure(W[types.IDN])
	}
	return
}

func (s DustHLL) Flux(WL, WR [4]float64, sL, sR float64, imp int) (F [4]float64) {
	var (
		FL = s.PhysicalFlux(WL, imp)
		FR = s.PhysicalFlux(WR, imp)
	)
	switch {
	case 0 <= sL:
		return FL
	case sR <= 0:
		return FR
	}
	den := sR - sL
	if nearZero(den, math.Abs(sL)+math.Abs(sR)) {
		return upwind(FL, FR, 0.5*(sL+sR))
	}
	UL, UR := s.Conserved(WL), s.Conserved(WR)
	for n := 0; n < 4; n++ {
		F[n] = (sR*FL[n] - sL*FR[n] + sL*sR*(UR[n]-UL[n])) / den
	}
	if !allFinite(F[:]) {
		return upwind(FL, FR, 0.5*(sL+sR))
	}
	return
}

// Solve estimates the wave speeds and returns the HLL flux for one face.
func (s DustHLL) Solve(WL, WR [4]float64, imp int) (F [4]float64) {
	sL, sR := s.WaveSpeeds(WL, WR, imp)
	return s.Flux(WL, WR, sL, sR, imp)
}
