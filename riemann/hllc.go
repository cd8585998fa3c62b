package riemann

import (
	"math"

	"github.com/HinnyTsang/Bootes/eos"
)

type HLLC struct {
	Gamma      float64
	SoundSpeed eos.SoundSpeedFunc
}

func NewHLLC(gamma float64, cs eos.SoundSpeedFunc) *HLLC {
	if cs == nil {
		cs = eos.Adiabatic
	}
	return &HLLC{Gamma: gamma, SoundSpeed: cs}
}

// Waves holds the wave speed estimates of one interface.
type Waves struct {
	SL, SStar, SR float64
	PStar         float64
}

/*
Waves estimates the outer wave speeds from the PVRS star pressure and the contact speed
from the Rankine-Hugoniot condition across both outer waves (Toro 10.58 - 10.70).

ok is false when the contact speed is undefined, which happens when neither outer wave
separates from its state (vacuum or zero pressure on both sides).
*/
func (s *HLLC) Waves(rhoL, pL, uL, rhoR, pR, uR float64) (w Waves, ok bool) {
	var (
		gamma  = s.Gamma
		aL, aR = s.SoundSpeed(rhoL, pL, gamma), s.SoundSpeed(rhoR, pR, gamma)
		qL, qR = 1., 1.
	)
	pPVRS := 0.5*(pL+pR) - 0.5*(uR-uL)*0.5*(rhoL+rhoR)*0.5*(aL+aR)
	w.PStar = math.Max(0, pPVRS)
	// Shock branch of the wave speed correction, rarefactions keep q = 1
	if w.PStar > pL && pL > 0 {
		qL = math.Sqrt(1 + (gamma+1)/(2*gamma)*(w.PStar/pL-1))
	}
	if w.PStar > pR && pR > 0 {
		qR = math.Sqrt(1 + (gamma+1)/(2*gamma)*(w.PStar/pR-1))
	}
	w.SL = uL - aL*qL
	w.SR = uR + aR*qR

	dL, dR := rhoL*(w.SL-uL), rhoR*(w.SR-uR)
	den := dL - dR
	if nearZero(den, math.Abs(dL)+math.Abs(dR)) {
		w.SStar = 0.5 * (w.SL + w.SR)
		return
	}
	w.SStar = (pR - pL + rhoL*uL*(w.SL-uL) - rhoR*uR*(w.SR-uR)) / den
	ok = true
	return
}

/*
Flux returns the HLLC flux through one face for the conserved states UL, UR laid out as
described by lay. rho, p and u are the density, pressure and face-normal velocity of each side.
The returned flux uses the same layout as the inputs.
*/
func (s *HLLC) Flux(rhoL, pL, uL, rhoR, pR, uR float64, UL, UR [5]float64, lay Layout) (F [5]float64) {
	var (
		FL = EulerFlux(UL, pL, uL, lay)
		FR = EulerFlux(UR, pR, uR, lay)
	)
	if UL == UR && pL == pR && uL == uR {
		return FL
	}
	w, ok := s.Waves(rhoL, pL, uL, rhoR, pR, uR)
	if !ok {
		return upwind(FL, FR, w.SStar)
	}
	switch {
	case 0 <= w.SL:
		F = FL
	case 0 <= w.SStar:
		if nearZero(w.SL-w.SStar, math.Abs(w.SL)+math.Abs(w.SStar)) {
			return FL
		}
		Us := starState(UL, rhoL, pL, uL, w.SL, w.SStar, lay)
		for n := 0; n < 5; n++ {
			F[n] = FL[n] + w.SL*(Us[n]-UL[n])
		}
	case 0 <= w.SR:
		if nearZero(w.SR-w.SStar, math.Abs(w.SR)+math.Abs(w.SStar)) {
			return FR
		}
		Us := starState(UR, rhoR, pR, uR, w.SR, w.SStar, lay)
		for n := 0; n < 5; n++ {
			F[n] = FR[n] + w.SR*(Us[n]-UR[n])
		}
	default:
		F = FR
	}
	if !allFinite(F[:]) {
		return upwind(FL, FR, w.SStar)
	}
	return
}

// FluxHLL is the two wave HLL flux built from the same outer wave speed estimates.
func (s *HLLC) FluxHLL(rhoL, pL, uL, rhoR, pR, uR float64, UL, UR [5]float64, lay Layout) (F [5]float64) {
	var (
		FL = EulerFlux(UL, pL, uL, lay)
		FR = EulerFlux(UR, pR, uR, lay)
	)
	w, _ := s.Waves(rhoL, pL, uL, rhoR, pR, uR)
	switch {
	case 0 <= w.SL:
		return FL
	case w.SR <= 0:
		return FR
	}
	den := w.SR - w.SL
	if nearZero(den, math.Abs(w.SL)+math.Abs(w.SR)) {
		return upwind(FL, FR, 0.5*(w.SL+w.SR))
	}
	for n := 0; n < 5; n++ {
		F[n] = (w.SR*FL[n] - w.SL*FR[n] + w.SL*w.SR*(UR[n]-UL[n])) / den
	}
	if !allFinite(F[:]) {
		return upwind(FL, FR, 0.5*(w.SL+w.SR))
	}
	return
}

// StarState returns the star region state on side K (Toro 10.73), in the caller's layout.
func StarState(U [5]float64, rho, p, u, sK, sStar float64, lay Layout) [5]float64 {
	return starState(U, rho, p, u, sK, sStar, lay)
}

func starState(U [5]float64, rho, p, u, sK, sStar float64, lay Layout) (Us [5]float64) {
	var (
		fac   = rho * (sK - u) / (sK - sStar)
		pTerm float64
	)
	if p != 0 {
		pTerm = p / (rho * (sK - u))
	}
	Us[lay.Rho] = fac
	Us[lay.Mn] = fac * sStar
	Us[lay.Mt1] = fac * U[lay.Mt1] / rho
	Us[lay.Mt2] = fac * U[lay.Mt2] / rho
	Us[lay.E] = fac * (U[lay.E]/rho + (sStar-u)*(sStar+pTerm))
	return
}

func upwind[T ~[4]float64 | ~[5]float64](FL, FR T, s float64) T {
	if s < 0 {
		return FR
	}
	return FL
}
