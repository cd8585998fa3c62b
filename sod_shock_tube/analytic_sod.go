package sod_shock_tube

import (
	"fmt"
	"math"
)

/*
Sod is the exact solution of the one dimensional Riemann problem for an ideal gas, initially
discontinuous at X0. Waves are a rarefaction or a shock on each side of a contact; vacuum
generating states are rejected.
*/
type Sod struct {
	RhoL, PL, UL float64
	RhoR, PR, UR float64
	Gamma, X0    float64
	// Star region
	PStar, UStar       float64
	RhoStarL, RhoStarR float64
	aL, aR             float64
}

// NewStandardSod is the classic shock tube on [0, 1] with the diaphragm at 0.5.
func NewStandardSod() *Sod {
	s, err := NewSod(1, 1, 0, 0.125, 0.1, 0, 1.4, 0.5)
	if err != nil {
		panic(err)
	}
	return s
}

func NewSod(rhoL, pL, uL, rhoR, pR, uR, gamma, x0 float64) (s *Sod, err error) {
	s = &Sod{
		RhoL: rhoL, PL: pL, UL: uL,
		RhoR: rhoR, PR: pR, UR: uR,
		Gamma: gamma, X0: x0,
	}
	if rhoL <= 0 || rhoR <= 0 || pL <= 0 || pR <= 0 {
		err = fmt.Errorf("sod: states must have positive density and pressure")
		return nil, err
	}
	s.aL, s.aR = math.Sqrt(gamma*pL/rhoL), math.Sqrt(gamma*pR/rhoR)
	if 2*(s.aL+s.aR)/(gamma-1) <= uR-uL {
		err = fmt.Errorf("sod: initial states generate vacuum")
		return nil, err
	}
	s.PStar = fzero(s.pressureFunction, 0.5*(pL+pR))
	fL, _ := s.waveFunction(s.PStar, rhoL, pL, s.aL)
	fR, _ := s.waveFunction(s.PStar, rhoR, pR, s.aR)
	s.UStar = 0.5*(uL+uR) + 0.5*(fR-fL)
	s.RhoStarL = s.starDensity(rhoL, pL)
	s.RhoStarR = s.starDensity(rhoR, pR)
	return
}

func (s *Sod) starDensity(rho, p float64) float64 {
	var (
		gamma = s.Gamma
		ratio = s.PStar / p
		gm    = (gamma - 1) / (gamma + 1)
	)
	if s.PStar > p {
		return rho * (ratio + gm) / (gm*ratio + 1)
	}
	return rho * math.Pow(ratio, 1/gamma)
}

// waveFunction is the velocity jump across the wave on one side and its pressure derivative.
func (s *Sod) waveFunction(P, rho, p, a float64) (f, df float64) {
	gamma := s.Gamma
	if P > p {
		var (
			A = 2 / ((gamma + 1) * rho)
			B = (gamma - 1) / (gamma + 1) * p
			q = math.Sqrt(A / (P + B))
		)
		f = (P - p) * q
		df = q * (1 - 0.5*(P-p)/(B+P))
		return
	}
	pr := P / p
	f = 2 * a / (gamma - 1) * (math.Pow(pr, (gamma-1)/(2*gamma)) - 1)
	df = 1 / (rho * a) * math.Pow(pr, -(gamma+1)/(2*gamma))
	return
}

func (s *Sod) pressureFunction(P float64) (y, dy float64) {
	fL, dfL := s.waveFunction(P, s.RhoL, s.PL, s.aL)
	fR, dfR := s.waveFunction(P, s.RhoR, s.PR, s.aR)
	y = fL + fR + s.UR - s.UL
	dy = dfL + dfR
	return
}

// fzero finds the root of a monotone function with Newton iterations kept positive.
func fzero(f func(P float64) (y, dy float64), start float64) float64 {
	var (
		tol = 1.e-12
		P   = math.Max(start, tol)
	)
	for iter := 0; iter < 100; iter++ {
		y, dy := f(P)
		Pnew := P - y/dy
		if Pnew < tol {
			Pnew = tol
		}
		change := 2 * math.Abs(Pnew-P) / (Pnew + P)
		P = Pnew
		if change < tol {
			break
		}
	}
	return P
}

// ShockSpeed is the speed of the right moving shock, zero if the right wave is a rarefaction.
func (s *Sod) ShockSpeed() float64 {
	if s.PStar <= s.PR {
		return 0
	}
	g := s.Gamma
	return s.UR + s.aR*math.Sqrt((g+1)/(2*g)*s.PStar/s.PR+(g-1)/(2*g))
}

// Sample returns density, velocity and pressure at position x and time t > 0.
func (s *Sod) Sample(x, t float64) (rho, u, p float64) {
	var (
		g  = s.Gamma
		xi = (x - s.X0) / t
	)
	if xi <= s.UStar {
		// Left of the contact
		if s.PStar > s.PL {
			sL := s.UL - s.aL*math.Sqrt((g+1)/(2*g)*s.PStar/s.PL+(g-1)/(2*g))
			if xi <= sL {
				return s.RhoL, s.UL, s.PL
			}
			return s.RhoStarL, s.UStar, s.PStar
		}
		var (
			head = s.UL - s.aL
			aS   = s.aL * math.Pow(s.PStar/s.PL, (g-1)/(2*g))
			tail = s.UStar - aS
		)
		switch {
		case xi <= head:
			return s.RhoL, s.UL, s.PL
		case xi >= tail:
			return s.RhoStarL, s.UStar, s.PStar
		}
		c := 2/(g+1) + (g-1)/((g+1)*s.aL)*(s.UL-xi)
		rho = s.RhoL * math.Pow(c, 2/(g-1))
		u = 2 / (g + 1) * (s.aL + (g-1)/2*s.UL + xi)
		p = s.PL * math.Pow(c, 2*g/(g-1))
		return
	}
	// Right of the contact
	if s.PStar > s.PR {
		if xi >= s.ShockSpeed() {
			return s.RhoR, s.UR, s.PR
		}
		return s.RhoStarR, s.UStar, s.PStar
	}
	var (
		head = s.UR + s.aR
		aS   = s.aR * math.Pow(s.PStar/s.PR, (g-1)/(2*g))
		tail = s.UStar + aS
	)
	switch {
	case xi >= head:
		return s.RhoR, s.UR, s.PR
	case xi <= tail:
		return s.RhoStarR, s.UStar, s.PStar
	}
	c := 2/(g+1) - (g-1)/((g+1)*s.aR)*(s.UR-xi)
	rho = s.RhoR * math.Pow(c, 2/(g-1))
	u = 2 / (g + 1) * (-s.aR + (g-1)/2*s.UR + xi)
	p = s.PR * math.Pow(c, 2*g/(g-1))
	return
}

// Profile samples the solution at time t on the positions X, E being the specific internal
// energy.
func (s *Sod) Profile(t float64, X []float64) (Rho, P, U, E []float64) {
	Rho = make([]float64, len(X))
	P = make([]float64, len(X))
	U = make([]float64, len(X))
	E = make([]float64, len(X))
	for i, x := range X {
		Rho[i], U[i], P[i] = s.Sample(x, t)
		E[i] = P[i] / ((s.Gamma - 1.) * Rho[i])
	}
	return
}
