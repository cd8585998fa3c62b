package reconstruct

import (
	"fmt"
	"strings"

	"github.com/HinnyTsang/Bootes/mesh"
	"github.com/HinnyTsang/Bootes/types"
	"github.com/HinnyTsang/Bootes/utils"
)

type Method uint8

const (
	Constant Method = iota
	Minmod
)

var (
	MethodNames = map[string]Method{
		"constant": Constant,
		"pcm":      Constant,
		"first":    Constant,
		"minmod":   Minmod,
		"plm":      Minmod,
	}
	MethodPrintNames = []string{"Piecewise Constant", "Minmod"}
)

func (m Method) Print() (txt string) {
	txt = MethodPrintNames[m]
	return
}

// Ghosts is the ghost width the stencil reaches into.
func (m Method) Ghosts() int {
	if m == Minmod {
		return 2
	}
	return 1
}

func NewMethod(label string) (m Method, err error) {
	var ok bool
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return Constant, nil
	}
	if m, ok = MethodNames[label]; !ok {
		err = fmt.Errorf("%w: %s", types.ErrUnknownRecon, label)
	}
	return
}

/*
Reconstructor produces the primitive states on both sides of every face of the active range.

Faces are indexed relative to the active range, face n along an axis being the lower face of
active cell n. ValsL holds the state extrapolated from the cell below the face and ValsR the
state extrapolated from the cell above it. Both are shaped (ns, 3, nv, nx3+1, nx2+1, nx1+1).
*/
type Reconstructor struct {
	Grid           *mesh.Grid
	Method         Method
	ParallelDegree int
}

func New(g *mesh.Grid, m Method, ParallelDegree int) (r *Reconstructor, err error) {
	for a := 0; a < g.Dim; a++ {
		if g.Ng[a] < m.Ghosts() {
			err = fmt.Errorf("%w: %s needs %d ghost cells, axis %d has %d",
				types.ErrInvalidGrid, m.Print(), m.Ghosts(), a, g.Ng[a])
			return
		}
	}
	r = &Reconstructor{Grid: g, Method: m, ParallelDegree: ParallelDegree}
	return
}

// NewFaceArray allocates an interface state array for ns species of nv variables.
func NewFaceArray(g *mesh.Grid, ns, nv int) *utils.Array {
	return utils.NewArray(ns, 3, nv, g.Nx[2]+1, g.Nx[1]+1, g.Nx[0]+1)
}

// Interfaces fills valsL and valsR along every active axis from the cell centred prim.
func (r *Reconstructor) Interfaces(prim, valsL, valsR *utils.Array) {
	var (
		g     = r.Grid
		shape = prim.Shape()
		ns    = shape[0]
		nv    = shape[1]
	)
	if !valsL.SameShape(valsR) || valsL.Shape()[0] != ns || valsL.Shape()[2] != nv {
		panic(fmt.Errorf("%w: interface arrays %v, %v do not match %v",
			types.ErrSpeciesMismatch, valsL.Shape(), valsR.Shape(), shape))
	}
	for _, axis := range g.Axes() {
		var (
			faces = g.Faces(axis)
			box   = utils.NewBox([4]int{}, [4]int{ns, faces[2], faces[1], faces[0]})
			step  [3]int
		)
		step[axis] = 1
		utils.ParallelForBox(r.ParallelDegree, box, func(bn int, idx [4]int) {
			var (
				s           = idx[0]
				kf, jf, iif = idx[1], idx[2], idx[3]
				k, j, i     = g.Is[2] + kf, g.Is[1] + jf, g.Is[0] + iif
				dk, dj, di  = step[2], step[1], step[0]
			)
			cell := func(n, off int) float64 {
				return prim.At(s, n, k+off*dk, j+off*dj, i+off*di)
			}
			var wL, wR float64
			for n := 0; n < nv; n++ {
				switch r.Method {
				case Minmod:
					var (
						wmm, wm, w0, wp = cell(n, -2), cell(n, -1), cell(n, 0), cell(n, 1)
						slopeL          = utils.Minmod(wm-wmm, w0-wm)
						slopeR          = utils.Minmod(w0-wm, wp-w0)
					)
					wL = wm + 0.5*slopeL
					wR = w0 - 0.5*slopeR
				default:
					wL, wR = cell(n, -1), cell(n, 0)
				}
				valsL.Set(wL, s, int(axis), n, kf, jf, iif)
				valsR.Set(wR, s, int(axis), n, kf, jf, iif)
			}
		})
	}
}
