package sim

import (
	"context"
	"errors"
	"testing"

	"github.com/doorgame/montyhall/internal/engine"
)

func TestRunBasic(t *testing.T) {
	s := NewSimulator()

	req := Request{Rounds: 100}

	result, err := s.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(result.Rounds) != 100 {
		t.Fatalf("expected 100 round records, got %d", len(result.Rounds))
	}
	if result.Summary.RoundsPlayed != 100 {
		t.Errorf("summary counted %d rounds, want 100", result.Summary.RoundsPlayed)
	}

	// Every round yields one outcome per strategy: 200 outcomes in total.
	if got := result.Summary.Stay.Wins + result.Summary.Stay.Losses; got != 100 {
		t.Errorf("stay outcomes = %d, want 100", got)
	}
	if got := result.Summary.Switch.Wins + result.Summary.Switch.Losses; got != 100 {
		t.Errorf("switch outcomes = %d, want 100", got)
	}

	for i, rec := range result.Rounds {
		if want := uint64(i + 1); rec.Round != want {
			t.Fatalf("record %d numbered %d, want %d", i, rec.Round, want)
		}
		if rec.Play.Stay == rec.Play.Switch {
			t.Fatalf("round %d outcomes not complementary", rec.Round)
		}
	}

	if result.RunID == "" {
		t.Error("missing run ID")
	}
	if result.EngineVersion != Version {
		t.Errorf("engine version %q, want %q", result.EngineVersion, Version)
	}
	if result.Echo.Rounds != req.Rounds {
		t.Errorf("echo rounds %d, want %d", result.Echo.Rounds, req.Rounds)
	}
}

func TestRunInvalidRounds(t *testing.T) {
	s := NewSimulator()

	for _, n := range []int{0, -1, -100} {
		_, err := s.Run(context.Background(), Request{Rounds: n})
		if !errors.Is(err, ErrInvalidRounds) {
			t.Errorf("Run with %d rounds: error %v, want ErrInvalidRounds", n, err)
		}
	}
}

func TestRunUnknownMode(t *testing.T) {
	s := NewSimulator()

	_, err := s.Run(context.Background(), Request{Rounds: 1, Mode: "quantum"})
	if !errors.Is(err, ErrUnknownMode) {
		t.Errorf("error %v, want ErrUnknownMode", err)
	}
}

func TestRunMissingSeeds(t *testing.T) {
	tests := []struct {
		name  string
		seeds engine.Seeds
	}{
		{"no seeds", engine.Seeds{}},
		{"no server", engine.Seeds{Client: "client"}},
		{"no client", engine.Seeds{Server: "server"}},
	}

	s := NewSimulator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Run(context.Background(), Request{Rounds: 1, Mode: ModeSeeded, Seeds: tt.seeds})
			if !errors.Is(err, ErrMissingSeeds) {
				t.Errorf("error %v, want ErrMissingSeeds", err)
			}
		})
	}
}

func TestRunSeededDeterministic(t *testing.T) {
	s := NewSimulator()

	req := Request{
		Rounds: 50,
		Mode:   ModeSeeded,
		Seeds:  engine.Seeds{Server: "server_seed", Client: "client_seed"},
	}

	first, err := s.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := s.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	for i := range first.Rounds {
		if first.Rounds[i] != second.Rounds[i] {
			t.Fatalf("round %d differs between identical seeded runs", first.Rounds[i].Round)
		}
	}

	req.Seeds.Client = "other_client"
	third, err := s.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("third run failed: %v", err)
	}

	same := true
	for i := range first.Rounds {
		if first.Rounds[i] != third.Rounds[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("changing the client seed left every round unchanged")
	}
}

func TestRunSeededRoundsIndependent(t *testing.T) {
	s := NewSimulator()
	seeds := engine.Seeds{Server: "server_seed", Client: "client_seed"}

	full, err := s.Run(context.Background(), Request{Rounds: 10, Mode: ModeSeeded, Seeds: seeds})
	if err != nil {
		t.Fatalf("full run failed: %v", err)
	}

	slice, err := s.Run(context.Background(), Request{Rounds: 3, Mode: ModeSeeded, Seeds: seeds, RoundStart: 5})
	if err != nil {
		t.Fatalf("offset run failed: %v", err)
	}

	// Rounds 5..7 replay identically whether or not rounds 1..4 ran first.
	for i, rec := range slice.Rounds {
		if want := full.Rounds[4+i]; rec != want {
			t.Errorf("round %d = %+v, want %+v", rec.Round, rec, want)
		}
	}
}

func TestRunCanceled(t *testing.T) {
	s := NewSimulator()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := s.Run(ctx, Request{Rounds: 1000})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error %v, want context.Canceled", err)
	}
	if result != nil {
		t.Error("canceled run returned a partial result")
	}
}

func TestRunInjectedSource(t *testing.T) {
	seeds := engine.Seeds{Server: "server_seed", Client: "client_seed"}

	a := &Simulator{entropy: engine.NewStream(seeds, 1)}
	b := &Simulator{entropy: engine.NewStream(seeds, 1)}

	ra, err := a.Run(context.Background(), Request{Rounds: 20})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	rb, err := b.Run(context.Background(), Request{Rounds: 20})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for i := range ra.Rounds {
		if ra.Rounds[i] != rb.Rounds[i] {
			t.Fatalf("round %d differs under identical injected sources", ra.Rounds[i].Round)
		}
	}
}

func TestRunConvergence(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping convergence run in short mode")
	}

	s := NewSimulator()

	const n = 100000
	result, err := s.Run(context.Background(), Request{
		Rounds: n,
		Mode:   ModeSeeded,
		Seeds:  engine.Seeds{Server: "convergence_server", Client: "convergence_client"},
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Exactly one strategy wins each round, so the win counts partition n.
	if got := result.Summary.Stay.Wins + result.Summary.Switch.Wins; got != n {
		t.Fatalf("stay and switch wins sum to %d, want %d", got, n)
	}

	switchRate := float64(result.Summary.Switch.Wins) / n
	if switchRate < 2.0/3-0.02 || switchRate > 2.0/3+0.02 {
		t.Errorf("switch win rate %.4f, want 2/3 +/- 0.02", switchRate)
	}

	stayRate := float64(result.Summary.Stay.Wins) / n
	if stayRate < 1.0/3-0.02 || stayRate > 1.0/3+0.02 {
		t.Errorf("stay win rate %.4f, want 1/3 +/- 0.02", stayRate)
	}
}

func BenchmarkRunSeeded(b *testing.B) {
	s := NewSimulator()
	req := Request{
		Rounds: 1000,
		Mode:   ModeSeeded,
		Seeds:  engine.Seeds{Server: "bench_server", Client: "bench_client"},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Run(context.Background(), req); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRunEntropy(b *testing.B) {
	s := NewSimulator()
	req := Request{Rounds: 1000}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Run(context.Background(), req); err != nil {
			b.Fatal(err)
		}
	}
}
