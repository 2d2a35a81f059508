package main

import (
	"context"
	"log"

	"scanreport/internal/config"
	"scanreport/internal/pipeline"
)

// One-shot invocation: run the daily report pipeline exactly once and
// exit. External schedulers (cron, GitHub Actions) use this mode; see
// cmd/worker for the in-process scheduler.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	pipe, err := pipeline.NewFromConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to build report pipeline: %v", err)
	}

	if err := pipe.Run(context.Background()); err != nil {
		log.Fatalf("Error generating/sending report: %v", err)
	}
}
