// Package main runs Monty Hall batches from the command line.
//
// Settings come from flags, which override MONTYHALL_* environment
// variables; the summary table goes to stdout and diagnostics to stderr.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"

	"github.com/doorgame/montyhall/internal/config"
	"github.com/doorgame/montyhall/internal/engine"
	"github.com/doorgame/montyhall/internal/report"
	"github.com/doorgame/montyhall/internal/sim"
)

func main() {
	logger := log.New(os.Stderr, "[montyhall] ", log.LstdFlags)

	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	req := sim.Request{
		Rounds:     cfg.Rounds,
		Mode:       sim.Mode(cfg.Mode),
		Seeds:      engine.Seeds{Server: cfg.ServerSeed, Client: cfg.ClientSeed},
		RoundStart: cfg.RoundStart,
	}

	// Publish the commitment before playing so a seeded run is verifiable.
	if req.Mode == sim.ModeSeeded && req.Seeds.Server != "" {
		logger.Printf("server seed commitment: %s", engine.SeedHash(req.Seeds.Server))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := sim.NewSimulator().Run(ctx, req)
	if err != nil {
		logger.Fatalf("run: %v", err)
	}

	rate := "n/a"
	if secs := result.Duration.Seconds(); secs > 0 {
		rate = humanize.Comma(int64(float64(result.Summary.RoundsPlayed) / secs))
	}
	logger.Printf("run %s: %s rounds in %s (%s rounds/sec)",
		result.RunID,
		humanize.Comma(int64(result.Summary.RoundsPlayed)),
		result.Duration,
		rate,
	)

	switch {
	case cfg.JSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			logger.Fatalf("encode result: %v", err)
		}
	case cfg.Plain:
		if err := report.Fprint(os.Stdout, result.Summary); err != nil {
			logger.Fatalf("print summary: %v", err)
		}
	default:
		fmt.Println(report.Render(result.Summary))
	}
}
