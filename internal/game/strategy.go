package game

import "fmt"

// Strategy is the contestant's response to the host's reveal.
type Strategy int

const (
	// Stay keeps the initial pick.
	Stay Strategy = iota
	// Switch moves to the other unopened, unpicked door.
	Switch
)

func (s Strategy) String() string {
	switch s {
	case Stay:
		return "stay"
	case Switch:
		return "switch"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// MarshalText renders the strategy name.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// FinalPick resolves the contestant's final door. Stay returns the original
// pick; Switch returns the one door that is neither opened nor original,
// and exactly one such door exists because opened and original must differ.
//
// FinalPick is pure: it consumes no randomness.
func FinalPick(s Strategy, opened, original Door) (Door, error) {
	if !opened.Valid() {
		return 0, fmt.Errorf("%w: opened door %d", ErrInvalidDoor, opened)
	}
	if !original.Valid() {
		return 0, fmt.Errorf("%w: original pick %d", ErrInvalidDoor, original)
	}
	if opened == original {
		return 0, fmt.Errorf("%w: door %d", ErrSameDoor, opened)
	}

	switch s {
	case Stay:
		return original, nil
	case Switch:
		for d := Door(1); d <= DoorCount; d++ {
			if d != opened && d != original {
				return d, nil
			}
		}
		// Unreachable: two distinct doors always leave a third.
		return 0, fmt.Errorf("%w: no door left to switch to", ErrInvalidDoor)
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
}
