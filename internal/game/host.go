package game

import (
	"fmt"
	"math"
)

// RevealGoat picks the door the host opens after the contestant's first
// pick. Candidates are the goat doors the contestant did not pick: when the
// pick hides the car there are two and f breaks the tie uniformly, otherwise
// there is exactly one and no randomness is consumed.
//
// The returned door always hides a goat and never equals pick.
func RevealGoat(l Layout, pick Door, f float64) (Door, error) {
	if err := l.Validate(); err != nil {
		return 0, err
	}
	if !pick.Valid() {
		return 0, fmt.Errorf("%w: pick %d", ErrInvalidDoor, pick)
	}

	pool := make([]Door, 0, DoorCount-1)
	for d := Door(1); d <= DoorCount; d++ {
		if d != pick && l.At(d) == Goat {
			pool = append(pool, d)
		}
	}

	if len(pool) == 1 {
		return pool[0], nil
	}

	index := int(math.Floor(f * float64(len(pool))))
	if index >= len(pool) {
		index = len(pool) - 1
	}
	return pool[index], nil
}
