package mesh

import (
	"fmt"

	"github.com/HinnyTsang/Bootes/types"
)

/*
Geometry supplies every coordinate dependent quantity the finite volume update needs.

Cell indices are absolute (ghosts included) and faces are numbered so that face i is the
lower face of cell i. lo and hi passed to Divergence are the fluxes of one conserved variable
through the lower and upper faces of the cell along each axis.
*/
type Geometry interface {
	System() types.CoordSystem
	Grid() *Grid
	FaceArea(axis types.Axis, k, j, i int) float64
	CellVolume(k, j, i int) float64
	// CellLength is the physical length of the cell along an axis, used for gradients
	CellLength(axis types.Axis, k, j, i int) float64
	Divergence(k, j, i int, lo, hi [3]float64) float64
	// GeometricSource returns the rate of change of (m1, m2, m3) from the curvature of the
	// coordinates for a fluid with density rho, isotropic pressure p and velocity v
	GeometricSource(k, j, i int, rho, p float64, v [3]float64, f FaceMomentumFlux) [3]float64
	// TerminalMomentum is the momentum density of a fluid drifting at its terminal velocity
	// through gas moving at vgas under the force density force
	TerminalMomentum(k, j, i int, rho, ts float64, vgas, force [3]float64) [3]float64
}

// FaceMomentumFlux holds the tangential momentum fluxes through the lower [0] and upper [1]
// faces of a cell that enter the curvilinear source terms.
type FaceMomentumFlux struct {
	M2X1 [2]float64 // m2 through the x1 faces
	M3X1 [2]float64 // m3 through the x1 faces
	M3X2 [2]float64 // m3 through the x2 faces
}

func NewGeometry(cs types.CoordSystem, g *Grid) (geom Geometry, err error) {
	switch cs {
	case types.Cartesian:
		geom = NewCartesian(g)
	case types.SphericalPolar:
		geom, err = NewSphericalPolar(g)
	default:
		err = fmt.Errorf("%w: %d", types.ErrUnknownCoordinates, int(cs))
	}
	return
}

func checkAxis(axis types.Axis) {
	if !axis.Valid() {
		panic(fmt.Errorf("%w: %d", types.ErrInvalidAxis, int(axis)))
	}
}
