package gravity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HinnyTsang/Bootes/mesh"
	"github.com/HinnyTsang/Bootes/types"
)

func TestUniform(t *testing.T) {
	g, err := mesh.NewGrid(2, [3]int{4, 5, 1}, 2, [3]float64{0, 0, 0}, [3]float64{1, 2, 1})
	require.NoError(t, err)
	geom, err := mesh.NewGeometry(types.Cartesian, g)
	require.NoError(t, err)
	pot := NewPotential(g, Uniform([3]float64{0, -3, 0}))
	assert.Equal(t, []int{1, 9, 9}, pot.PhiX1.Shape())
	assert.Equal(t, []int{1, 10, 8}, pot.PhiX2.Shape())
	assert.Equal(t, []int{2, 9, 8}, pot.PhiX3.Shape())
	for j := g.Is[1]; j < g.Ie[1]; j++ {
		for i := g.Is[0]; i < g.Ie[0]; i++ {
			acc := pot.Accel(geom, 0, j, i)
			assert.InDeltaf(t, 0., acc[0], 1.e-14, "")
			assert.InDeltaf(t, -3., acc[1], 1.e-12, "")
			assert.InDeltaf(t, 0., acc[2], 1.e-14, "")
		}
	}
}

func TestPointMass(t *testing.T) {
	g, err := mesh.NewGrid(1, [3]int{64, 1, 1}, 2, [3]float64{1, 0, 0}, [3]float64{3, math.Pi, 2 * math.Pi})
	require.NoError(t, err)
	geom, err := mesh.NewGeometry(types.SphericalPolar, g)
	require.NoError(t, err)
	const GM = 2.
	pot := NewPotential(g, PointMass(types.SphericalPolar, GM))
	for i := g.Is[0]; i < g.Ie[0]; i++ {
		var (
			rm, rp = g.Xf[0][i], g.Xf[0][i+1]
			acc    = pot.Accel(geom, 0, 0, i)
		)
		// The face difference is exact for the geometric mean radius
		assert.InDeltaf(t, -GM/(rm*rp), acc[0], 1.e-12, "cell %d", i)
		assert.InDeltaf(t, -GM/math.Pow(g.Xv[0][i], 2), acc[0], 1.e-3, "cell %d", i)
		assert.Equal(t, 0., acc[1])
		assert.Equal(t, 0., acc[2])
	}
	{ // Cartesian point mass uses the distance from the origin
		phi := PointMass(types.Cartesian, GM)
		assert.InDeltaf(t, -GM/5, phi([3]float64{3, 4, 0}), 1.e-15, "")
		assert.True(t, math.IsInf(phi([3]float64{}), -1))
	}
}
