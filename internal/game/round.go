package game

import "fmt"

// FloatCount is the number of floats one round consumes: prize placement,
// first pick and the host's tie-break, in that order.
const FloatCount = 3

// Round records one complete play-through. Both strategies are resolved
// against the same layout, first pick and reveal, so the two outcomes are
// counterfactual pairs for the identical round rather than independent
// samples.
type Round struct {
	Layout     Layout  `json:"layout"`
	FirstPick  Door    `json:"first_pick"`
	Revealed   Door    `json:"revealed"`
	StayPick   Door    `json:"stay_pick"`
	SwitchPick Door    `json:"switch_pick"`
	Stay       Outcome `json:"stay"`
	Switch     Outcome `json:"switch"`
}

// Outcome returns the round's outcome under the given strategy.
func (r Round) Outcome(s Strategy) Outcome {
	if s == Switch {
		return r.Switch
	}
	return r.Stay
}

// PlayRound runs one round from the given floats: layout from floats[0],
// first pick from floats[1], host tie-break from floats[2]. Exactly one of
// the two strategies wins every round, Stay when the first pick hid the
// car and Switch otherwise.
func PlayRound(floats []float64) (Round, error) {
	if len(floats) < FloatCount {
		return Round{}, fmt.Errorf("a round requires at least %d floats, got %d", FloatCount, len(floats))
	}

	layout := NewLayout(floats[0])
	firstPick := PickDoor(floats[1])

	revealed, err := RevealGoat(layout, firstPick, floats[2])
	if err != nil {
		return Round{}, fmt.Errorf("reveal: %w", err)
	}

	stayPick, err := FinalPick(Stay, revealed, firstPick)
	if err != nil {
		return Round{}, fmt.Errorf("resolve stay: %w", err)
	}
	switchPick, err := FinalPick(Switch, revealed, firstPick)
	if err != nil {
		return Round{}, fmt.Errorf("resolve switch: %w", err)
	}

	stay, err := Evaluate(layout, stayPick)
	if err != nil {
		return Round{}, fmt.Errorf("judge stay: %w", err)
	}
	switched, err := Evaluate(layout, switchPick)
	if err != nil {
		return Round{}, fmt.Errorf("judge switch: %w", err)
	}

	return Round{
		Layout:     layout,
		FirstPick:  firstPick,
		Revealed:   revealed,
		StayPick:   stayPick,
		SwitchPick: switchPick,
		Stay:       stay,
		Switch:     switched,
	}, nil
}
