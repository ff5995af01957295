package game

import "fmt"

// Outcome is the result of a round for one strategy.
type Outcome int

const (
	Lose Outcome = iota
	Win
)

func (o Outcome) String() string {
	switch o {
	case Lose:
		return "lose"
	case Win:
		return "win"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// MarshalText renders the outcome name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Evaluate judges a final pick against the layout: Win when the pick hides
// the car, Lose otherwise. The mapping is total since a valid layout holds
// nothing but goats and one car.
func Evaluate(l Layout, final Door) (Outcome, error) {
	if err := l.Validate(); err != nil {
		return Lose, err
	}
	if !final.Valid() {
		return Lose, fmt.Errorf("%w: final pick %d", ErrInvalidDoor, final)
	}

	if l.At(final) == Car {
		return Win, nil
	}
	return Lose, nil
}
