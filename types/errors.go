package types

import "errors"

var (
	ErrInvalidAxis        = errors.New("axis must be one of 0, 1, 2")
	ErrInvalidDimension   = errors.New("dimension must be 1, 2 or 3")
	ErrInvalidGrid        = errors.New("invalid grid")
	ErrUnknownCoordinates = errors.New("unknown coordinate system")
	ErrUnknownFlux        = errors.New("unknown flux type")
	ErrUnknownBC          = errors.New("unknown boundary condition")
	ErrInvalidBC          = errors.New("invalid boundary condition")
	ErrUnknownRecon       = errors.New("unknown reconstruction method")
	ErrSpeciesMismatch    = errors.New("species count mismatch")
	ErrInvalidTimestep    = errors.New("timestep must be positive and finite")
	ErrInvalidEOS         = errors.New("invalid equation of state")
)
