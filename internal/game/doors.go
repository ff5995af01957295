// Package game implements the mechanics of a single Monty Hall round: prize
// placement, the contestant's pick, the host's goat reveal, strategy
// resolution and outcome judgment. Every operation is deterministic over the
// floats handed to it; randomness lives in the engine package.
package game

import "math"

// DoorCount is the number of doors in a round.
const DoorCount = 3

// Door labels one of the three doors, numbered 1 to DoorCount.
type Door int

// Valid reports whether d names an actual door.
func (d Door) Valid() bool {
	return d >= 1 && d <= DoorCount
}

// PickDoor maps one uniform float to the contestant's initial pick. The pick
// carries no information about the layout.
func PickDoor(f float64) Door {
	index := int(math.Floor(f * DoorCount))
	if index >= DoorCount {
		index = DoorCount - 1
	}
	return Door(index + 1)
}
