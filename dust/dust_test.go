package dust

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/HinnyTsang/Bootes/boundary"
	"github.com/HinnyTsang/Bootes/eos"
	"github.com/HinnyTsang/Bootes/gravity"
	"github.com/HinnyTsang/Bootes/mesh"
	"github.com/HinnyTsang/Bootes/reconstruct"
	"github.com/HinnyTsang/Bootes/riemann"
	"github.com/HinnyTsang/Bootes/types"
	"github.com/HinnyTsang/Bootes/utils"
)

func newContext(t *testing.T, cs types.CoordSystem, dim int, nx [3]int, lo, hi [3]float64, ns int) (c *Context) {
	g, err := mesh.NewGrid(dim, nx, 2, lo, hi)
	require.NoError(t, err)
	geom, err := mesh.NewGeometry(cs, g)
	require.NoError(t, err)
	c, err = NewContext(geom, ns, 4)
	require.NoError(t, err)
	return
}

func newCartesian1D(t *testing.T, nx, ns int) *Context {
	return newContext(t, types.Cartesian, 1, [3]int{nx, 1, 1}, [3]float64{0, 0, 0}, [3]float64{1, 1, 1}, ns)
}

// gasField is a gas primitive field moving uniformly at v.
func gasField(g *mesh.Grid, rho, p float64, v [3]float64) (gp *utils.Array) {
	gp = utils.NewArray(1, types.NumGasVars, g.N[2], g.N[1], g.N[0])
	for k := 0; k < g.N[2]; k++ {
		for j := 0; j < g.N[1]; j++ {
			for i := 0; i < g.N[0]; i++ {
				gp.Set(rho, 0, types.IDN, k, j, i)
				gp.Set(p, 0, types.IPR, k, j, i)
				for n := 0; n < 3; n++ {
					gp.Set(v[n], 0, types.IV1+n, k, j, i)
				}
			}
		}
	}
	return
}

func newStage(t *testing.T, c *Context, bc utils.BCType) *Stage {
	var bcs [3][2]utils.BCType
	for a := 0; a < c.Grid.Dim; a++ {
		bcs[a] = [2]utils.BCType{bc, bc}
	}
	b, err := boundary.New(c.Grid, bcs, c.ParallelDegree)
	require.NoError(t, err)
	r, err := reconstruct.New(c.Grid, reconstruct.Constant, c.ParallelDegree)
	require.NoError(t, err)
	return NewStage(c, b, r, nil)
}

func TestNewContext(t *testing.T) {
	g, err := mesh.NewGrid(1, [3]int{4, 1, 1}, 2, [3]float64{}, [3]float64{1, 1, 1})
	require.NoError(t, err)
	geom, err := mesh.NewGeometry(types.Cartesian, g)
	require.NoError(t, err)
	_, err = NewContext(geom, 0, 1)
	assert.ErrorIs(t, err, types.ErrSpeciesMismatch)
	c, err := NewContext(geom, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, c.ParallelDegree)
	assert.True(t, c.Floor.Enabled)
	assert.Equal(t, DefaultDensityFloor, c.Floor.Density)
	s := c.NewState()
	assert.Equal(t, []int{2, 4, 1, 1, 8}, s.Cons.Shape())
	assert.Equal(t, []int{2, 1, 1, 8}, s.StoppingTime.Shape())
	assert.Equal(t, []int{2, 3, 4, 2, 2, 5}, s.ValsL.Shape())
	assert.Equal(t, []int{2, 4, 3, 2, 2, 5}, s.Flux.Shape())
	{ // Primitive round trip, empty cells have no velocity
		c.SetUniform(s, 0, 2, [3]float64{1, -2, 3})
		c.ConsToPrim(s)
		assert.Equal(t, -2., s.Prim.At(0, types.IV2, 0, 0, 3))
		assert.Equal(t, 0., s.Prim.At(1, types.IV1, 0, 0, 3))
		s.Cons.Fill(0)
		c.PrimToCons(s)
		assert.Equal(t, 6., s.Cons.At(0, types.IM3, 0, 0, 7))
	}
	assert.Panics(t, func() {
		c1, _ := NewContext(geom, 1, 1)
		c1.ConsToPrim(s)
	})
}

func TestCalcFlux(t *testing.T) {
	c := newCartesian1D(t, 8, 2)
	s := c.NewState()
	s.Flux.Fill(7)
	for sp := 0; sp < 2; sp++ {
		for iif := 0; iif <= 8; iif++ {
			W := [4]float64{1 + float64(sp), 0.5, -1, 2}
			for n := 0; n < 4; n++ {
				s.ValsL.Set(W[n], sp, 0, n, 0, 0, iif)
				s.ValsR.Set(W[n], sp, 0, n, 0, 0, iif)
			}
		}
	}
	c.CalcFlux(s)
	for sp := 0; sp < 2; sp++ {
		rho := 1 + float64(sp)
		for iif := 0; iif <= 8; iif++ {
			assert.Equal(t, rho*0.5, s.Flux.At(sp, types.IDN, 0, 0, 0, iif))
			assert.Equal(t, rho*0.5*0.5, s.Flux.At(sp, types.IM1, 0, 0, 0, iif))
			assert.Equal(t, -rho*0.5, s.Flux.At(sp, types.IM2, 0, 0, 0, iif))
			assert.Equal(t, rho*2*0.5, s.Flux.At(sp, types.IM3, 0, 0, 0, iif))
		}
	}
	// Axes beyond the grid dimension carry no flux anywhere
	for sp := 0; sp < 2; sp++ {
		for n := 0; n < 4; n++ {
			for a := 1; a < 3; a++ {
				for kf := 0; kf < 2; kf++ {
					for jf := 0; jf < 2; jf++ {
						for iif := 0; iif <= 8; iif++ {
							assert.Equal(t, 0., s.Flux.At(sp, n, a, kf, jf, iif))
						}
					}
				}
			}
		}
	}
	assert.Panics(t, func() { c.SweepAxis(s, types.Axis(3)) })
	assert.Panics(t, func() { c.SweepAxis(s, types.Axis(-1)) })
}

func TestAdvectCons_Telescoping(t *testing.T) {
	/*
		With arbitrary interface states the sum of the volume weighted increments over the active
		cells equals the net flux through the domain boundary, interior fluxes cancel in pairs.
	*/
	var (
		c   = newContext(t, types.Cartesian, 2, [3]int{6, 5, 1}, [3]float64{0, 0, 0}, [3]float64{1.5, 1, 1}, 2)
		g   = c.Grid
		s   = c.NewState()
		rnd = rand.New(rand.NewSource(17))
		dt  = 0.01
	)
	c.Solver = riemann.DustHLL{SoundSpeed: 0.3}
	shape := s.ValsL.Shape()
	for sp := 0; sp < shape[0]; sp++ {
		for a := 0; a < 3; a++ {
			for jf := 0; jf < shape[4]; jf++ {
				for iif := 0; iif < shape[5]; iif++ {
					for _, vals := range []*utils.Array{s.ValsL, s.ValsR} {
						vals.Set(0.5+rnd.Float64(), sp, a, types.IDN, 0, jf, iif)
						for n := types.IM1; n <= types.IM3; n++ {
							vals.Set(rnd.Float64()-0.5, sp, a, n, 0, jf, iif)
						}
					}
				}
			}
		}
	}
	c.SetUniform(s, 0, 1, [3]float64{})
	c.SetUniform(s, 1, 1, [3]float64{})
	c.ConsToPrim(s)
	before := c.Totals(s)
	c.CalcFlux(s)
	c.AdvectCons(s, dt)
	after := c.Totals(s)
	for sp := 0; sp < 2; sp++ {
		var boundaryFlux [4]float64
		for n := 0; n < 4; n++ {
			for jf := 0; jf < g.Nx[1]; jf++ {
				area := c.Geometry.FaceArea(types.X1, g.Is[2], g.Is[1]+jf, g.Is[0])
				boundaryFlux[n] += area * (s.Flux.At(sp, n, 0, 0, jf, g.Nx[0]) - s.Flux.At(sp, n, 0, 0, jf, 0))
			}
			for iif := 0; iif < g.Nx[0]; iif++ {
				area := c.Geometry.FaceArea(types.X2, g.Is[2], g.Is[1], g.Is[0]+iif)
				boundaryFlux[n] += area * (s.Flux.At(sp, n, 1, 0, g.Nx[1], iif) - s.Flux.At(sp, n, 1, 0, 0, iif))
			}
		}
		assert.InDeltaf(t, -dt*boundaryFlux[types.IDN], after.Mass[sp]-before.Mass[sp], 1.e-14, "mass of species %d", sp)
		for n := 0; n < 3; n++ {
			assert.InDeltaf(t, -dt*boundaryFlux[types.IM1+n], after.Momentum[sp][n]-before.Momentum[sp][n], 1.e-14,
				"momentum %d of species %d", n, sp)
		}
	}
}

func TestAdvectCons_SphericalEquilibrium(t *testing.T) {
	// Dust with a pressure proxy at rest in a spherical wedge stays at rest
	c := newContext(t, types.SphericalPolar, 2, [3]int{8, 6, 1},
		[3]float64{1, 0.3, 0}, [3]float64{3, math.Pi - 0.3, 2 * math.Pi}, 1)
	c.Solver = riemann.DustHLL{SoundSpeed: 0.5}
	var (
		g  = c.Grid
		s  = c.NewState()
		st = newStage(t, c, utils.BCOutflow)
	)
	c.SetUniform(s, 0, 1.5, [3]float64{})
	require.NoError(t, c.ConstantStoppingTime(s, []float64{1.e30}))
	_, err := st.Advance(s, gasField(g, 1, 1, [3]float64{}), 0.01)
	require.NoError(t, err)
	for j := g.Is[1]; j < g.Ie[1]; j++ {
		for i := g.Is[0]; i < g.Ie[0]; i++ {
			assert.InDeltaf(t, 1.5, s.Cons.At(0, types.IDN, 0, j, i), 1.e-13, "")
			for n := types.IM1; n <= types.IM3; n++ {
				assert.InDeltaf(t, 0., s.Cons.At(0, n, 0, j, i), 1.e-13, "momentum %d at j=%d i=%d", n, j, i)
			}
		}
	}
}

func TestAdvectCons_SphericalRotation(t *testing.T) {
	// Pressureless dust orbiting in phi is pushed outwards by the centrifugal source
	c := newContext(t, types.SphericalPolar, 1, [3]int{8, 1, 1},
		[3]float64{1, 0, 0}, [3]float64{2, math.Pi, 2 * math.Pi}, 1)
	var (
		g  = c.Grid
		s  = c.NewState()
		st = newStage(t, c, utils.BCOutflow)
		dt = 0.001
	)
	c.SetUniform(s, 0, 1, [3]float64{0, 0, 0.5})
	require.NoError(t, c.ConstantStoppingTime(s, []float64{math.Inf(1)}))
	_, err := st.Advance(s, gasField(g, 1, 1, [3]float64{}), dt)
	require.NoError(t, err)
	for i := g.Is[0]; i < g.Ie[0]; i++ {
		var (
			rm, rp = g.Xf[0][i], g.Xf[0][i+1]
			oneOrR = 1.5 * (rp*rp - rm*rm) / (rp*rp*rp - rm*rm*rm)
		)
		assert.InDeltaf(t, dt*oneOrR*0.25, s.Cons.At(0, types.IM1, 0, 0, i), 1.e-14, "cell %d", i)
		assert.Greater(t, s.Cons.At(0, types.IM1, 0, 0, i), 0.)
	}
}

func TestApplySourceTerms_RegimeBoundary(t *testing.T) {
	var (
		c  = newCartesian1D(t, 4, 1)
		g  = c.Grid
		dt = 0.1
		gp = gasField(g, 1, 1, [3]float64{1, -0.5, 0.25})
	)
	momentum := func(ts float64) (m [3]float64) {
		s := c.NewState()
		c.SetUniform(s, 0, 2, [3]float64{0.2, 0.1, 0})
		c.ConsToPrim(s)
		require.NoError(t, c.ConstantStoppingTime(s, []float64{ts}))
		c.ApplySourceTerms(s, gp, nil, dt)
		for n := 0; n < 3; n++ {
			m[n] = s.Cons.At(0, types.IM1+n, 0, 0, g.Is[0])
		}
		return
	}
	for _, eps := range []float64{1.e-3, 1.e-6, 1.e-9} {
		mStiff, mExplicit := momentum(dt-eps), momentum(dt+eps)
		for n := 0; n < 3; n++ {
			assert.InDeltaf(t, mStiff[n], mExplicit[n], 100*eps, "eps=%g component %d", eps, n)
			assert.False(t, math.IsNaN(mStiff[n]) || math.IsNaN(mExplicit[n]))
		}
	}
	{ // Both branches agree with the terminal momentum in the limit
		m := momentum(dt)
		assert.InDeltaf(t, 2., m[0], 1.e-14, "")
		assert.InDeltaf(t, -1., m[1], 1.e-14, "")
		assert.InDeltaf(t, 0.5, m[2], 1.e-14, "")
	}
}

func TestApplySourceTerms_EqualTimestepIsExplicit(t *testing.T) {
	/*
		In spherical coordinates the terminal momentum carries the fictitious forces while the
		explicit update does not, which tells the two branches apart when ts equals dt.
	*/
	c := newContext(t, types.SphericalPolar, 1, [3]int{4, 1, 1},
		[3]float64{1, 0, 0}, [3]float64{2, math.Pi, 2 * math.Pi}, 1)
	var (
		g  = c.Grid
		dt = 0.1
		gp = gasField(g, 1, 1, [3]float64{0, 0, 1})
		i  = g.Is[0]
		r  = g.Xv[0][i]
	)
	run := func(ts float64) float64 {
		s := c.NewState()
		c.SetUniform(s, 0, 1, [3]float64{})
		c.ConsToPrim(s)
		require.NoError(t, c.ConstantStoppingTime(s, []float64{ts}))
		c.ApplySourceTerms(s, gp, nil, dt)
		return s.Cons.At(0, types.IM1, 0, 0, i)
	}
	assert.Equal(t, 0., run(dt))
	assert.InDeltaf(t, 1/r*(dt/2), run(dt/2), 1.e-14, "")
}

func TestApplySourceTerms_TerminalLimit(t *testing.T) {
	var (
		c  = newCartesian1D(t, 4, 2)
		g  = c.Grid
		vg = [3]float64{0.7, -0.3, 0.1}
		gp = gasField(g, 1, 1, vg)
	)
	for _, ts := range []float64{1.e-2, 1.e-6, 1.e-12, 0} {
		s := c.NewState()
		c.SetUniform(s, 0, 3, [3]float64{-1, 2, 0})
		c.SetUniform(s, 1, 0.5, [3]float64{})
		c.ConsToPrim(s)
		require.NoError(t, c.ConstantStoppingTime(s, []float64{ts, ts}))
		c.ApplySourceTerms(s, gp, nil, 0.5)
		for n := 0; n < 3; n++ {
			assert.InDeltaf(t, 3*vg[n], s.Cons.At(0, types.IM1+n, 0, 0, 3), 1.e-12, "ts=%g", ts)
			assert.InDeltaf(t, 0.5*vg[n], s.Cons.At(1, types.IM1+n, 0, 0, 3), 1.e-12, "ts=%g", ts)
		}
	}
}

func TestApplySourceTerms_Gravity(t *testing.T) {
	var (
		c   = newCartesian1D(t, 4, 1)
		g   = c.Grid
		gp  = gasField(g, 1, 1, [3]float64{})
		pot = gravity.NewPotential(g, gravity.Uniform([3]float64{-2, 0, 0}))
		dt  = 0.01
	)
	{ // Free fall adds rho g dt
		s := c.NewState()
		c.SetUniform(s, 0, 1.5, [3]float64{})
		c.ConsToPrim(s)
		require.NoError(t, c.ConstantStoppingTime(s, []float64{math.Inf(1)}))
		c.ApplySourceTerms(s, gp, pot, dt)
		assert.InDeltaf(t, 1.5*-2*dt, s.Cons.At(0, types.IM1, 0, 0, 2), 1.e-12, "")
	}
	{ // Tightly coupled grains drift at g ts
		s := c.NewState()
		c.SetUniform(s, 0, 1.5, [3]float64{})
		c.ConsToPrim(s)
		require.NoError(t, c.ConstantStoppingTime(s, []float64{1.e-4}))
		c.ApplySourceTerms(s, gp, pot, dt)
		assert.InDeltaf(t, 1.5*-2*1.e-4, s.Cons.At(0, types.IM1, 0, 0, 2), 1.e-14, "")
		assert.Equal(t, 0., s.Cons.At(0, types.IM2, 0, 0, 2))
	}
	assert.Panics(t, func() {
		s := c.NewState()
		c.ApplySourceTerms(s, utils.NewArray(1, 4, 1, 1, g.N[0]), nil, dt)
	})
}

func TestProtect(t *testing.T) {
	var (
		c = newCartesian1D(t, 4, 2)
		s = c.NewState()
		g = c.Grid
	)
	c.SetUniform(s, 0, 1, [3]float64{1, 1, 1})
	c.SetUniform(s, 1, 1, [3]float64{1, 1, 1})
	s.Cons.Set(math.NaN(), 0, types.IDN, 0, 0, g.Is[0])
	s.Cons.Set(-1, 1, types.IDN, 0, 0, g.Is[0]+1)
	s.Cons.Set(1.e-20, 1, types.IDN, 0, 0, g.Is[0]+2)
	s.Cons.Set(math.NaN(), 0, types.IM2, 0, 0, g.Is[0]+3)
	s.Cons.Set(math.NaN(), 1, types.IM3, 0, 0, g.Is[0])
	// Ghost cells are left alone
	s.Cons.Set(-5, 0, types.IDN, 0, 0, 0)

	rep := c.Protect(s)
	assert.Equal(t, FloorReport{DensityResets: 3, MomentumResets: 2}, rep)
	assert.Equal(t, DefaultDensityFloor, s.Cons.At(0, types.IDN, 0, 0, g.Is[0]))
	assert.Equal(t, DefaultDensityFloor, s.Cons.At(1, types.IDN, 0, 0, g.Is[0]+1))
	assert.Equal(t, DefaultDensityFloor, s.Cons.At(1, types.IDN, 0, 0, g.Is[0]+2))
	assert.Equal(t, 0., s.Cons.At(0, types.IM2, 0, 0, g.Is[0]+3))
	assert.Equal(t, 1., s.Cons.At(0, types.IM1, 0, 0, g.Is[0]+3))
	assert.Equal(t, -5., s.Cons.At(0, types.IDN, 0, 0, 0))
	assert.False(t, s.Cons.HasNonFinite())

	// Idempotent
	once := s.Cons.Copy()
	rep = c.Protect(s)
	assert.Equal(t, 0, rep.Total())
	assert.Equal(t, once.Data(), s.Cons.Data())

	// Disabled
	c.Floor.Enabled = false
	s.Cons.Set(math.NaN(), 0, types.IDN, 0, 0, g.Is[0])
	assert.Equal(t, FloorReport{}, c.Protect(s))
	assert.True(t, math.IsNaN(s.Cons.At(0, types.IDN, 0, 0, g.Is[0])))
}

func TestStage_StiffDrift(t *testing.T) {
	// One species, 1D Cartesian, gas moving at (1, 0, 0), ts = 0.01 < dt = 1
	var (
		c  = newCartesian1D(t, 16, 1)
		g  = c.Grid
		s  = c.NewState()
		st = newStage(t, c, utils.BCPeriodic)
		gp = gasField(g, 1, 1, [3]float64{1, 0, 0})
	)
	c.SetUniform(s, 0, 2, [3]float64{})
	require.NoError(t, c.ConstantStoppingTime(s, []float64{0.01}))
	rep, err := st.Advance(s, gp, 1.)
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Total())
	assert.Equal(t, 1, st.Count)
	for i := g.Is[0]; i < g.Ie[0]; i++ {
		assert.InDeltaf(t, 2., s.Cons.At(0, types.IDN, 0, 0, i), 1.e-15, "")
		assert.InDeltaf(t, 2.*1., s.Cons.At(0, types.IM1, 0, 0, i), 1.e-15, "")
		assert.Equal(t, 0., s.Cons.At(0, types.IM2, 0, 0, i))
		assert.Equal(t, 0., s.Cons.At(0, types.IM3, 0, 0, i))
	}
}

func TestStage_ExplicitDrift(t *testing.T) {
	// Same set up with dt = 0.001, the explicit drag increment is rho dt/ts (1 - vdust)
	var (
		c     = newCartesian1D(t, 16, 1)
		g     = c.Grid
		s     = c.NewState()
		st    = newStage(t, c, utils.BCPeriodic)
		gp    = gasField(g, 1, 1, [3]float64{1, 0, 0})
		rho   = 2.
		vdust = 0.25
		dt    = 0.001
		ts    = 0.01
	)
	c.SetUniform(s, 0, rho, [3]float64{vdust, 0, 0})
	require.NoError(t, c.ConstantStoppingTime(s, []float64{ts}))
	_, err := st.Advance(s, gp, dt)
	require.NoError(t, err)
	expect := rho*vdust + rho*dt/ts*(1-vdust)
	for i := g.Is[0]; i < g.Ie[0]; i++ {
		assert.InDeltaf(t, expect, s.Cons.At(0, types.IM1, 0, 0, i), 1.e-14, "")
		assert.InDeltaf(t, rho, s.Cons.At(0, types.IDN, 0, 0, i), 1.e-14, "")
		assert.Equal(t, 0., s.Cons.At(0, types.IM2, 0, 0, i))
	}
	// Repeated stages relax the dust towards the gas velocity without overshoot
	for step := 0; step < 200; step++ {
		_, err = st.Advance(s, gp, dt)
		require.NoError(t, err)
	}
	vd := s.Cons.At(0, types.IM1, 0, 0, g.Is[0]) / s.Cons.At(0, types.IDN, 0, 0, g.Is[0])
	assert.Greater(t, vd, 0.99)
	assert.LessOrEqual(t, vd, 1.)
	assert.Equal(t, 201, st.Count)
}

func TestStage_Errors(t *testing.T) {
	var (
		c  = newCartesian1D(t, 4, 1)
		s  = c.NewState()
		st = NewStage(c, nil, nil, nil)
		gp = gasField(c.Grid, 1, 1, [3]float64{})
	)
	for _, dt := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := st.Advance(s, gp, dt)
		assert.ErrorIs(t, err, types.ErrInvalidTimestep)
	}
	assert.Equal(t, 0, st.Count)
	{ // Floor resets are accumulated across stages
		c.Floor.Density = 1.e-10
		_, err := st.Advance(s, gp, 0.1)
		require.NoError(t, err)
		_, err = st.Advance(s, gp, 0.1)
		require.NoError(t, err)
		assert.Equal(t, 4, st.Floors.DensityResets)
	}
}

func TestStoppingTime(t *testing.T) {
	var (
		c  = newCartesian1D(t, 4, 2)
		g  = c.Grid
		s  = c.NewState()
		gp = gasField(g, 2, 1.4, [3]float64{})
	)
	assert.ErrorIs(t, c.ConstantStoppingTime(s, []float64{1}), types.ErrSpeciesMismatch)
	require.NoError(t, c.ConstantStoppingTime(s, []float64{1, 3}))
	assert.Equal(t, 3., s.StoppingTime.At(1, 0, 0, 0))

	grains := []Grain{{Size: 1.e-3, Density: 3}, {Size: 1.e-1, Density: 1}}
	assert.ErrorIs(t, c.EpsteinStoppingTime(s, gp, grains[:1], eos.Adiabatic, 1.4), types.ErrSpeciesMismatch)
	require.NoError(t, c.EpsteinStoppingTime(s, gp, grains, eos.Adiabatic, 1.4))
	vth := math.Sqrt(8/math.Pi) * math.Sqrt(1.4*1.4/2)
	assert.InDeltaf(t, 3*1.e-3/(2*vth), s.StoppingTime.At(0, 0, 0, 2), 1.e-15, "")
	assert.InDeltaf(t, 1.e-1/(2*vth), s.StoppingTime.At(1, 0, 0, 5), 1.e-15, "")
	// No gas, no drag
	require.NoError(t, c.EpsteinStoppingTime(s, gasField(g, 0, 0, [3]float64{}), grains, eos.Adiabatic, 1.4))
	assert.True(t, math.IsInf(s.StoppingTime.At(0, 0, 0, 2), 1))
}

func TestTotals(t *testing.T) {
	c := newContext(t, types.Cartesian, 2, [3]int{4, 4, 1}, [3]float64{0, 0, 0}, [3]float64{2, 1, 1}, 2)
	s := c.NewState()
	c.SetUniform(s, 0, 3, [3]float64{1, 0, -1})
	c.SetUniform(s, 1, 0.5, [3]float64{})
	tot := c.Totals(s)
	assert.True(t, floats.EqualApprox([]float64{6, 1}, tot.Mass, 1.e-14))
	assert.True(t, floats.EqualApprox([]float64{6, 0, -6}, tot.Momentum[0][:], 1.e-14))
}
