package reconstruct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HinnyTsang/Bootes/mesh"
	"github.com/HinnyTsang/Bootes/types"
	"github.com/HinnyTsang/Bootes/utils"
)

func TestMethod(t *testing.T) {
	m, err := NewMethod(" MinMod ")
	assert.NoError(t, err)
	assert.Equal(t, Minmod, m)
	assert.Equal(t, 2, m.Ghosts())
	assert.Equal(t, "Minmod", m.Print())
	m, err = NewMethod("")
	assert.NoError(t, err)
	assert.Equal(t, Constant, m)
	assert.Equal(t, 1, m.Ghosts())
	_, err = NewMethod("weno5")
	assert.ErrorIs(t, err, types.ErrUnknownRecon)
}

func TestReconstruct1D(t *testing.T) {
	g, err := mesh.NewGrid(1, [3]int{6, 1, 1}, 2, [3]float64{0, 0, 0}, [3]float64{1, 1, 1})
	require.NoError(t, err)
	prim := utils.NewArray(1, 2, g.N[2], g.N[1], g.N[0])
	for i := 0; i < g.N[0]; i++ {
		prim.Set(float64(i), 0, 0, 0, 0, i)
		// A single peak in the second variable
		if i == 5 {
			prim.Set(1, 0, 1, 0, 0, i)
		}
	}
	var (
		valsL = NewFaceArray(g, 1, 2)
		valsR = NewFaceArray(g, 1, 2)
	)
	assert.Equal(t, []int{1, 3, 2, 2, 2, 7}, valsL.Shape())
	{
		r, err := New(g, Constant, 2)
		require.NoError(t, err)
		r.Interfaces(prim, valsL, valsR)
		for iif := 0; iif <= 6; iif++ {
			assert.Equal(t, float64(iif+1), valsL.At(0, 0, 0, 0, 0, iif))
			assert.Equal(t, float64(iif+2), valsR.At(0, 0, 0, 0, 0, iif))
		}
	}
	{
		r, err := New(g, Minmod, 3)
		require.NoError(t, err)
		r.Interfaces(prim, valsL, valsR)
		// A linear profile is reproduced exactly at the faces
		for iif := 0; iif <= 6; iif++ {
			assert.InDeltaf(t, float64(iif)+1.5, valsL.At(0, 0, 0, 0, 0, iif), 1.e-15, "face %d", iif)
			assert.InDeltaf(t, float64(iif)+1.5, valsR.At(0, 0, 0, 0, 0, iif), 1.e-15, "face %d", iif)
		}
		// The extremum is flattened, its neighbours limited to their own value
		assert.Equal(t, 1., valsL.At(0, 0, 1, 0, 0, 4))
		assert.Equal(t, 1., valsR.At(0, 0, 1, 0, 0, 3))
		assert.Equal(t, 0., valsL.At(0, 0, 1, 0, 0, 3))
		assert.Equal(t, 0., valsR.At(0, 0, 1, 0, 0, 4))
	}
	{
		gs, err := mesh.NewGrid(1, [3]int{6, 1, 1}, 1, [3]float64{0, 0, 0}, [3]float64{1, 1, 1})
		require.NoError(t, err)
		_, err = New(gs, Minmod, 1)
		assert.ErrorIs(t, err, types.ErrInvalidGrid)
		assert.Panics(t, func() {
			r, _ := New(g, Constant, 1)
			r.Interfaces(prim, NewFaceArray(g, 2, 2), NewFaceArray(g, 2, 2))
		})
	}
}

func TestReconstruct2D(t *testing.T) {
	g, err := mesh.NewGrid(2, [3]int{3, 4, 1}, 2, [3]float64{0, 0, 0}, [3]float64{1, 1, 1})
	require.NoError(t, err)
	prim := utils.NewArray(2, 1, g.N[2], g.N[1], g.N[0])
	for s := 0; s < 2; s++ {
		for j := 0; j < g.N[1]; j++ {
			for i := 0; i < g.N[0]; i++ {
				prim.Set(float64(100*s+10*j+i), s, 0, 0, j, i)
			}
		}
	}
	var (
		valsL = NewFaceArray(g, 2, 1)
		valsR = NewFaceArray(g, 2, 1)
	)
	r, err := New(g, Constant, 4)
	require.NoError(t, err)
	r.Interfaces(prim, valsL, valsR)
	// x2 face jf=0 at active column iif=1 sits between cells j=1 and j=2 of column i=3
	assert.Equal(t, 113., valsL.At(1, 1, 0, 0, 0, 1))
	assert.Equal(t, 123., valsR.At(1, 1, 0, 0, 0, 1))
	// x1 face iif=3 of row jf=3 sits between cells i=4 and i=5 of row j=5
	assert.Equal(t, 54., valsL.At(0, 0, 0, 0, 3, 3))
	assert.Equal(t, 55., valsR.At(0, 0, 0, 0, 3, 3))
}
