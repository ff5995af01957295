// Package sim plays batches of Monty Hall rounds and aggregates the paired
// stay/switch outcomes into per-strategy win rates.
package sim

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/doorgame/montyhall/internal/engine"
	"github.com/doorgame/montyhall/internal/game"
)

// Version identifies the simulation core carried on every Result.
const Version = "1.0.0"

// Mode selects where a run's randomness comes from.
type Mode string

const (
	// ModeEntropy draws from crypto/rand. Runs are not reproducible.
	ModeEntropy Mode = "entropy"

	// ModeSeeded derives every round from the seed pair. Runs are exactly
	// reproducible, and each round is an independent float stream.
	ModeSeeded Mode = "seeded"
)

// Request describes one batch run.
type Request struct {
	// Rounds is the number of rounds to play. Must be positive.
	Rounds int `json:"rounds"`

	// Mode selects the randomness source. Empty means ModeEntropy.
	Mode Mode `json:"mode,omitempty"`

	// Seeds key the run in seeded mode; ignored in entropy mode.
	Seeds engine.Seeds `json:"seeds"`

	// RoundStart numbers the first round. Zero means 1.
	RoundStart uint64 `json:"round_start,omitempty"`
}

// Record is one played round tagged with its round number.
type Record struct {
	Round uint64     `json:"round"`
	Play  game.Round `json:"play"`
}

// Result is one complete batch run: every round in order plus the aggregate.
// Rounds is the full unaggregated record so callers can recompute any other
// statistic from it.
type Result struct {
	RunID         string        `json:"run_id"`
	Rounds        []Record      `json:"rounds"`
	Summary       Summary       `json:"summary"`
	EngineVersion string        `json:"engine_version"`
	Duration      time.Duration `json:"duration_ns"`
	Echo          Request       `json:"echo"`
}

// Simulator runs batches of rounds, strictly sequentially.
type Simulator struct {
	entropy engine.Source
}

// NewSimulator returns a simulator whose entropy mode draws from crypto/rand.
func NewSimulator() *Simulator {
	return &Simulator{entropy: engine.NewEntropySource()}
}

// Run plays req.Rounds rounds and collects both strategies' outcomes for
// every one of them. Rounds are numbered from req.RoundStart and kept in
// order. A canceled context aborts the run with no partial result.
func (s *Simulator) Run(ctx context.Context, req Request) (*Result, error) {
	if req.Rounds <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRounds, req.Rounds)
	}

	mode := req.Mode
	if mode == "" {
		mode = ModeEntropy
	}
	switch mode {
	case ModeEntropy, ModeSeeded:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, string(mode))
	}

	if mode == ModeSeeded && (req.Seeds.Server == "" || req.Seeds.Client == "") {
		return nil, ErrMissingSeeds
	}

	src := s.entropy
	if src == nil {
		src = engine.NewEntropySource()
	}

	start := req.RoundStart
	if start == 0 {
		start = 1
	}

	began := time.Now()
	records := make([]Record, 0, req.Rounds)
	floats := make([]float64, game.FloatCount)

	for i := 0; i < req.Rounds; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		round := start + uint64(i)

		if mode == ModeSeeded {
			engine.FloatsInto(floats, req.Seeds, round, game.FloatCount)
		} else {
			for j := range floats {
				floats[j] = src.Float64()
			}
		}

		played, err := game.PlayRound(floats)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", round, err)
		}

		records = append(records, Record{Round: round, Play: played})
	}

	return &Result{
		RunID:         uuid.NewString(),
		Rounds:        records,
		Summary:       Summarize(records),
		EngineVersion: Version,
		Duration:      time.Since(began),
		Echo:          req,
	}, nil
}
