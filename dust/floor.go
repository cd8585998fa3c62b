package dust

import (
	"fmt"
	"math"

	"github.com/HinnyTsang/Bootes/types"
	"github.com/HinnyTsang/Bootes/utils"
)

// FloorReport counts the values reset by Protect.
type FloorReport struct {
	DensityResets  int
	MomentumResets int
}

func (fr *FloorReport) Add(o FloorReport) {
	fr.DensityResets += o.DensityResets
	fr.MomentumResets += o.MomentumResets
}

func (fr FloorReport) Total() int {
	return fr.DensityResets + fr.MomentumResets
}

func (fr FloorReport) String() string {
	return fmt.Sprintf("density resets: %d, momentum resets: %d", fr.DensityResets, fr.MomentumResets)
}

/*
Protect resets dust densities that are NaN or below the floor to the floor and NaN momenta to
zero, on the active cells of every species. Applying it twice is the same as applying it once.

Resets are expected only from round off. A count that keeps growing points at a timestep or
scheme problem.
*/
func (c *Context) Protect(s *State) (rep FloorReport) {
	c.checkState(s)
	if !c.Floor.Enabled {
		return
	}
	var (
		floor   = c.Floor.Density
		buckets = make([]FloorReport, max(c.ParallelDegree, 1))
	)
	lo, hi := c.activeBox()
	utils.ParallelForBox(c.ParallelDegree, utils.NewBox(lo, hi), func(bn int, idx [4]int) {
		var (
			sp, k, j, i = idx[0], idx[1], idx[2], idx[3]
			rho         = s.Cons.At(sp, types.IDN, k, j, i)
		)
		if math.IsNaN(rho) || rho < floor {
			s.Cons.Set(floor, sp, types.IDN, k, j, i)
			buckets[bn].DensityResets++
		}
		for n := types.IM1; n <= types.IM3; n++ {
			if math.IsNaN(s.Cons.At(sp, n, k, j, i)) {
				s.Cons.Set(0, sp, n, k, j, i)
				buckets[bn].MomentumResets++
			}
		}
	})
	for _, b := range buckets {
		rep.Add(b)
	}
	return
}
