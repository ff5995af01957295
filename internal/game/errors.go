package game

import "errors"

var (
	ErrInvalidLayout   = errors.New("layout must contain exactly one car")
	ErrInvalidDoor     = errors.New("door must be between 1 and 3")
	ErrSameDoor        = errors.New("revealed door equals the contestant's pick")
	ErrUnknownStrategy = errors.New("unknown strategy")
)
