package sim

import "errors"

var (
	ErrInvalidRounds = errors.New("round count must be positive")
	ErrMissingSeeds  = errors.New("seeded mode requires server and client seeds")
	ErrUnknownMode   = errors.New("unknown simulation mode")
)
