package dust

import (
	"fmt"

	"github.com/HinnyTsang/Bootes/mesh"
	"github.com/HinnyTsang/Bootes/riemann"
	"github.com/HinnyTsang/Bootes/types"
)

const DefaultDensityFloor = 1.e-16

// Floor configures the conserved variable protection pass.
type Floor struct {
	Enabled bool
	Density float64
}

/*
Context carries what the dust update reads besides the state itself: the grid and its
geometry, the number of species, the interface solver and the floor settings. Nothing in it is
written during a stage, so a Context can be shared between goroutines.
*/
type Context struct {
	Grid           *mesh.Grid
	Geometry       mesh.Geometry
	NumSpecies     int
	ParallelDegree int
	Solver         riemann.DustHLL
	Floor          Floor
	Verbose        bool
}

func NewContext(geom mesh.Geometry, NumSpecies, ParallelDegree int) (c *Context, err error) {
	if NumSpecies < 1 {
		err = fmt.Errorf("%w: need at least one dust species, have %d", types.ErrSpeciesMismatch, NumSpecies)
		return
	}
	if ParallelDegree < 1 {
		ParallelDegree = 1
	}
	c = &Context{
		Grid:           geom.Grid(),
		Geometry:       geom,
		NumSpecies:     NumSpecies,
		ParallelDegree: ParallelDegree,
		Floor:          Floor{Enabled: true, Density: DefaultDensityFloor},
	}
	return
}

// activeBox is (species, k, j, i) over the active cells.
func (c *Context) activeBox() (lo, hi [4]int) {
	return c.Grid.ActiveBox(c.NumSpecies)
}
