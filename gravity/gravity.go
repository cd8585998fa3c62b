package gravity

import (
	"math"

	"github.com/HinnyTsang/Bootes/mesh"
	"github.com/HinnyTsang/Bootes/types"
	"github.com/HinnyTsang/Bootes/utils"
)

// PotentialFunc evaluates the gravitational potential at a point given in grid coordinates.
type PotentialFunc func(x [3]float64) float64

/*
Potential holds the gravitational potential on the faces of every cell.

PhiX1 is shaped (N3, N2, N1+1) and holds the potential on the x1 faces, PhiX2 (N3, N2+1, N1)
and PhiX3 (N3+1, N2, N1) the same for the x2 and x3 faces. The acceleration of a cell is the
potential difference across its faces divided by the cell's physical length.
*/
type Potential struct {
	Grid                *mesh.Grid
	PhiX1, PhiX2, PhiX3 *utils.Array
}

func NewPotential(g *mesh.Grid, fn PotentialFunc) (pot *Potential) {
	var (
		n1, n2, n3 = g.N[0], g.N[1], g.N[2]
	)
	pot = &Potential{
		Grid:  g,
		PhiX1: utils.NewArray(n3, n2, n1+1),
		PhiX2: utils.NewArray(n3, n2+1, n1),
		PhiX3: utils.NewArray(n3+1, n2, n1),
	}
	for k := 0; k < n3; k++ {
		for j := 0; j < n2; j++ {
			for i := 0; i <= n1; i++ {
				pot.PhiX1.Set(fn([3]float64{g.Xf[0][i], g.Xv[1][j], g.Xv[2][k]}), k, j, i)
			}
		}
	}
	for k := 0; k < n3; k++ {
		for j := 0; j <= n2; j++ {
			for i := 0; i < n1; i++ {
				pot.PhiX2.Set(fn([3]float64{g.Xv[0][i], g.Xf[1][j], g.Xv[2][k]}), k, j, i)
			}
		}
	}
	for k := 0; k <= n3; k++ {
		for j := 0; j < n2; j++ {
			for i := 0; i < n1; i++ {
				pot.PhiX3.Set(fn([3]float64{g.Xv[0][i], g.Xv[1][j], g.Xf[2][k]}), k, j, i)
			}
		}
	}
	return
}

// Accel is the gravitational acceleration -grad(Phi) at the centre of cell (k, j, i).
func (pot *Potential) Accel(geom mesh.Geometry, k, j, i int) (acc [3]float64) {
	var (
		d1 = pot.PhiX1.At(k, j, i+1) - pot.PhiX1.At(k, j, i)
		d2 = pot.PhiX2.At(k, j+1, i) - pot.PhiX2.At(k, j, i)
		d3 = pot.PhiX3.At(k+1, j, i) - pot.PhiX3.At(k, j, i)
	)
	for n, d := range [3]float64{d1, d2, d3} {
		if d == 0 {
			continue
		}
		if l := geom.CellLength(types.Axis(n), k, j, i); l > 0 {
			acc[n] = -d / l
		}
	}
	return
}

// PointMass is the potential -GM/|x| of a mass at the origin.
func PointMass(cs types.CoordSystem, GM float64) PotentialFunc {
	return func(x [3]float64) float64 {
		var r float64
		switch cs {
		case types.SphericalPolar:
			r = x[0]
		default:
			r = math.Sqrt(x[0]*x[0] + x[1]*x[1] + x[2]*x[2])
		}
		if r == 0 {
			return math.Inf(-1)
		}
		return -GM / r
	}
}

// Uniform is the potential of the constant Cartesian acceleration g, Phi = -g.x
func Uniform(g [3]float64) PotentialFunc {
	return func(x [3]float64) float64 {
		return -(g[0]*x[0] + g[1]*x[1] + g[2]*x[2])
	}
}
