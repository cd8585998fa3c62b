package utils

import (
	"fmt"
	"strings"

	"github.com/HinnyTsang/Bootes/types"
)

// BCType selects how the ghost cells on one side of one axis are filled
type BCType uint16

const (
	// BCNone leaves ghost cells untouched, used on inactive axes
	BCNone BCType = iota
	BCOutflow
	BCPeriodic
	// BCReflect mirrors the cells and flips the normal velocity
	BCReflect
)

func (bc BCType) String() string {
	names := map[BCType]string{
		BCNone:     "None",
		BCOutflow:  "Outflow",
		BCPeriodic: "Periodic",
		BCReflect:  "Reflect",
	}
	if name, ok := names[bc]; ok {
		return name
	}
	return "Unknown"
}

// BCNameMap provides a mapping from common boundary condition names to BCType
// Keys are lowercase for case-insensitive matching
var BCNameMap = map[string]BCType{
	"none":       BCNone,
	"outflow":    BCOutflow,
	"outlet":     BCOutflow,
	"open":       BCOutflow,
	"periodic":   BCPeriodic,
	"reflect":    BCReflect,
	"reflecting": BCReflect,
	"wall":       BCReflect,
	"slip":       BCReflect,
	"symmetry":   BCReflect,
}

// ParseBCName converts a boundary condition name string to BCType
// The matching is case-insensitive and trims whitespace
func ParseBCName(name string) (bc BCType, err error) {
	var ok bool
	lowerName := strings.ToLower(strings.TrimSpace(name))
	if bc, ok = BCNameMap[lowerName]; !ok {
		err = fmt.Errorf("%w: %q", types.ErrUnknownBC, name)
	}
	return
}
