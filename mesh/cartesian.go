package mesh

import (
	"github.com/HinnyTsang/Bootes/types"
)

type Cartesian struct {
	grid *Grid
}

func NewCartesian(g *Grid) *Cartesian {
	return &Cartesian{grid: g}
}

func (c *Cartesian) System() types.CoordSystem { return types.Cartesian }

func (c *Cartesian) Grid() *Grid { return c.grid }

func (c *Cartesian) FaceArea(axis types.Axis, k, j, i int) float64 {
	var (
		dx = c.grid.Dx
	)
	switch axis {
	case types.X1:
		return dx[1][j] * dx[2][k]
	case types.X2:
		return dx[0][i] * dx[2][k]
	case types.X3:
		return dx[0][i] * dx[1][j]
	}
	checkAxis(axis)
	return 0
}

func (c *Cartesian) CellVolume(k, j, i int) float64 {
	dx := c.grid.Dx
	return dx[0][i] * dx[1][j] * dx[2][k]
}

func (c *Cartesian) CellLength(axis types.Axis, k, j, i int) float64 {
	checkAxis(axis)
	return c.grid.Dx[axis][[3]int{i, j, k}[axis]]
}

func (c *Cartesian) Divergence(k, j, i int, lo, hi [3]float64) float64 {
	dx := c.grid.Dx
	return (hi[0]-lo[0])/dx[0][i] + (hi[1]-lo[1])/dx[1][j] + (hi[2]-lo[2])/dx[2][k]
}

func (c *Cartesian) GeometricSource(k, j, i int, rho, p float64, v [3]float64, f FaceMomentumFlux) (src [3]float64) {
	return
}

func (c *Cartesian) TerminalMomentum(k, j, i int, rho, ts float64, vgas, force [3]float64) (mom [3]float64) {
	for n := 0; n < 3; n++ {
		mom[n] = rho*vgas[n] + force[n]*ts
	}
	return
}
