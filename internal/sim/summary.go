package sim

import (
	"github.com/shopspring/decimal"

	"github.com/doorgame/montyhall/internal/game"
)

// StrategySummary tallies one strategy's outcomes across a batch. Rates are
// the proportions of wins and losses among the strategy's outcomes, each
// rounded to 2 decimal places.
type StrategySummary struct {
	Wins     uint64          `json:"wins"`
	Losses   uint64          `json:"losses"`
	WinRate  decimal.Decimal `json:"win_rate"`
	LoseRate decimal.Decimal `json:"lose_rate"`
}

// Summary aggregates a batch per strategy.
type Summary struct {
	RoundsPlayed uint64          `json:"rounds_played"`
	Stay         StrategySummary `json:"stay"`
	Switch       StrategySummary `json:"switch"`
}

// Summarize computes the batch summary from played rounds. It is pure; an
// empty batch yields zero counts and zero rates.
func Summarize(records []Record) Summary {
	s := Summary{RoundsPlayed: uint64(len(records))}

	for _, rec := range records {
		tally(&s.Stay, rec.Play.Stay)
		tally(&s.Switch, rec.Play.Switch)
	}

	rate(&s.Stay)
	rate(&s.Switch)
	return s
}

func tally(ss *StrategySummary, o game.Outcome) {
	if o == game.Win {
		ss.Wins++
	} else {
		ss.Losses++
	}
}

func rate(ss *StrategySummary) {
	total := ss.Wins + ss.Losses
	if total == 0 {
		return
	}

	n := decimal.NewFromInt(int64(total))
	ss.WinRate = decimal.NewFromInt(int64(ss.Wins)).Div(n).Round(2)
	ss.LoseRate = decimal.NewFromInt(int64(ss.Losses)).Div(n).Round(2)
}
