package game

import (
	"fmt"
	"math"
)

// Prize is what hides behind a door.
type Prize int

const (
	Goat Prize = iota
	Car
)

func (p Prize) String() string {
	switch p {
	case Goat:
		return "goat"
	case Car:
		return "car"
	default:
		return fmt.Sprintf("prize(%d)", int(p))
	}
}

// MarshalText renders the prize name, so layouts serialize as
// ["goat","goat","car"] rather than opaque integers.
func (p Prize) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Layout is the arrangement of prizes behind the doors for one round,
// indexed by door number. A valid layout holds exactly one Car. Layouts are
// values: created once per round and never mutated.
type Layout [DoorCount]Prize

// NewLayout maps one uniform float to a layout. Each of the three car
// positions is hit with probability 1/3.
func NewLayout(f float64) Layout {
	index := int(math.Floor(f * DoorCount))
	if index >= DoorCount {
		index = DoorCount - 1
	}

	var l Layout
	l[index] = Car
	return l
}

// At returns the prize behind door d. d must be a valid door.
func (l Layout) At(d Door) Prize {
	return l[d-1]
}

// CarDoor returns the first door hiding a car, or 0 when no door does.
func (l Layout) CarDoor() Door {
	for d := Door(1); d <= DoorCount; d++ {
		if l.At(d) == Car {
			return d
		}
	}
	return 0
}

// Validate checks that the layout hides exactly one car and nothing but
// goats elsewhere.
func (l Layout) Validate() error {
	cars := 0
	for i, p := range l {
		switch p {
		case Car:
			cars++
		case Goat:
		default:
			return fmt.Errorf("%w: unknown prize %d behind door %d", ErrInvalidLayout, int(p), i+1)
		}
	}

	if cars != 1 {
		return fmt.Errorf("%w: found %d cars", ErrInvalidLayout, cars)
	}
	return nil
}
