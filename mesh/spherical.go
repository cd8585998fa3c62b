package mesh

import (
	"fmt"
	"math"

	"github.com/HinnyTsang/Bootes/types"
)

/*
SphericalPolar is the (r, theta, phi) geometry.

The metric factors are volume averages over each cell so that a uniform state at rest with an
isotropic pressure is an exact equilibrium of the discrete update:

	oneOrGeo = <1/r>    = 1.5 (rp^2 - rm^2) / (rp^3 - rm^3)
	src2     = dr / rV,   rV = (rm + rp)(rp^3 - rm^3) / 3
	geoCot   = <cot>    = (sin tp - sin tm) / |cos tm - cos tp|
	sinF     = |sin t| on the theta faces, the geo_sm / geo_sp weights of the cells they bound
*/
type SphericalPolar struct {
	grid     *Grid
	rsq      []float64 // r^2 on x1 faces
	oneOrGeo []float64
	src2     []float64
	halfDr2  []float64 // (rp^2 - rm^2) / 2
	thirdDr3 []float64 // (rp^3 - rm^3) / 3
	sinF     []float64
	dCos     []float64
	geoCot   []float64
	sinV     []float64
}

func NewSphericalPolar(g *Grid) (sp *SphericalPolar, err error) {
	var (
		n1, n2 = g.N[0], g.N[1]
	)
	if g.Xf[0][0] < 0 {
		err = fmt.Errorf("%w: spherical radius starts at %g including ghosts", types.ErrInvalidGrid, g.Xf[0][0])
		return
	}
	if g.Xf[1][g.Is[1]] < 0 || g.Xf[1][g.Ie[1]] > math.Pi+1.e-12 {
		err = fmt.Errorf("%w: polar angle outside [0, pi]", types.ErrInvalidGrid)
		return
	}
	sp = &SphericalPolar{
		grid:     g,
		rsq:      make([]float64, n1+1),
		oneOrGeo: make([]float64, n1),
		src2:     make([]float64, n1),
		halfDr2:  make([]float64, n1),
		thirdDr3: make([]float64, n1),
		sinF:     make([]float64, n2+1),
		dCos:     make([]float64, n2),
		geoCot:   make([]float64, n2),
		sinV:     make([]float64, n2),
	}
	for i := 0; i <= n1; i++ {
		r := g.Xf[0][i]
		sp.rsq[i] = r * r
	}
	for i := 0; i < n1; i++ {
		var (
			rm, rp = g.Xf[0][i], g.Xf[0][i+1]
			dr3    = rp*rp*rp - rm*rm*rm
		)
		sp.halfDr2[i] = 0.5 * (rp*rp - rm*rm)
		sp.thirdDr3[i] = dr3 / 3
		if dr3 > 0 {
			sp.oneOrGeo[i] = 1.5 * (rp*rp - rm*rm) / dr3
			sp.src2[i] = g.Dx[0][i] / ((rm + rp) * dr3 / 3)
		}
	}
	for j := 0; j <= n2; j++ {
		sp.sinF[j] = math.Abs(math.Sin(g.Xf[1][j]))
	}
	for j := 0; j < n2; j++ {
		var (
			tm, tp = g.Xf[1][j], g.Xf[1][j+1]
			dc     = math.Abs(math.Cos(tm) - math.Cos(tp))
		)
		sp.dCos[j] = dc
		sp.sinV[j] = math.Abs(math.Sin(g.Xv[1][j]))
		if dc > 0 {
			sp.geoCot[j] = (math.Sin(tp) - math.Sin(tm)) / dc
		}
	}
	return
}

func (sp *SphericalPolar) System() types.CoordSystem { return types.SphericalPolar }

func (sp *SphericalPolar) Grid() *Grid { return sp.grid }

func (sp *SphericalPolar) FaceArea(axis types.Axis, k, j, i int) float64 {
	var (
		dPhi   = sp.grid.Dx[2][k]
		dTheta = sp.grid.Dx[1][j]
	)
	switch axis {
	case types.X1:
		return sp.rsq[i] * sp.dCos[j] * dPhi
	case types.X2:
		return sp.sinF[j] * sp.halfDr2[i] * dPhi
	case types.X3:
		return sp.halfDr2[i] * dTheta
	}
	checkAxis(axis)
	return 0
}

func (sp *SphericalPolar) CellVolume(k, j, i int) float64 {
	return sp.thirdDr3[i] * sp.dCos[j] * sp.grid.Dx[2][k]
}

func (sp *SphericalPolar) CellLength(axis types.Axis, k, j, i int) float64 {
	var (
		g = sp.grid
		r = g.Xv[0][i]
	)
	switch axis {
	case types.X1:
		return g.Dx[0][i]
	case types.X2:
		return r * g.Dx[1][j]
	case types.X3:
		return r * sp.sinV[j] * g.Dx[2][k]
	}
	checkAxis(axis)
	return 0
}

func (sp *SphericalPolar) Divergence(k, j, i int, lo, hi [3]float64) float64 {
	var (
		dPhi   = sp.grid.Dx[2][k]
		dTheta = sp.grid.Dx[1][j]
		a1m    = sp.rsq[i] * sp.dCos[j] * dPhi
		a1p    = sp.rsq[i+1] * sp.dCos[j] * dPhi
		a2m    = sp.sinF[j] * sp.halfDr2[i] * dPhi
		a2p    = sp.sinF[j+1] * sp.halfDr2[i] * dPhi
		a3     = sp.halfDr2[i] * dTheta
		vol    = sp.CellVolume(k, j, i)
	)
	if vol == 0 {
		return 0
	}
	return (a1p*hi[0] - a1m*lo[0] + a2p*hi[1] - a2m*lo[1] + a3*(hi[2]-lo[2])) / vol
}

func (sp *SphericalPolar) GeometricSource(k, j, i int, rho, p float64, v [3]float64, f FaceMomentumFlux) (src [3]float64) {
	var (
		oneOrR = sp.oneOrGeo[i]
		cot    = sp.geoCot[j]
		sm, sP = sp.sinF[j], sp.sinF[j+1]
	)
	src[0] = oneOrR * (rho*(v[1]*v[1]+v[2]*v[2]) + 2*p)

	src[1] = -sp.src2[i] * (sp.rsq[i]*f.M2X1[0] + sp.rsq[i+1]*f.M2X1[1])
	src[1] += cot * oneOrR * (rho*v[2]*v[2] + p)

	src[2] = -sp.src2[i] * (sp.rsq[i]*f.M3X1[0] + sp.rsq[i+1]*f.M3X1[1])
	if sm+sP > 0 {
		src[2] -= oneOrR * cot / (sm + sP) * (sm*f.M3X2[0] + sP*f.M3X2[1])
	}
	return
}

// TerminalMomentum balances drag against the force density and the fictitious forces of the
// rotating frame attached to the cell, with r the cell centre radius.
func (sp *SphericalPolar) TerminalMomentum(k, j, i int, rho, ts float64, vgas, force [3]float64) (mom [3]float64) {
	var (
		r          = sp.grid.Xv[0][i]
		cot        = sp.geoCot[j]
		v1, v2, v3 = vgas[0], vgas[1], vgas[2]
	)
	if r <= 0 {
		return NewCartesian(sp.grid).TerminalMomentum(k, j, i, rho, ts, vgas, force)
	}
	mom[0] = rho*v1 + (force[0]+rho*(v2*v2+v3*v3)/r)*ts
	mom[1] = rho*v2 + (force[1]-rho*(v1*v2-v3*v3*cot)/r)*ts
	mom[2] = rho*v3 + (force[2]-rho*(v1*v3+v2*v3*cot)/r)*ts
	return
}
