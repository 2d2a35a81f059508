package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"scanreport/internal/config"
	"scanreport/internal/pipeline"
	"scanreport/internal/pkg/caldate"
	"scanreport/internal/pkg/feed"
)

// TaskProcessor holds dependencies for our task handlers
type TaskProcessor struct {
	config   *config.Config
	pipeline *pipeline.Pipeline
	loc      *time.Location
}

// NewTaskProcessor creates a new TaskProcessor
func NewTaskProcessor(cfg *config.Config) (*TaskProcessor, error) {
	p, err := pipeline.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	return &TaskProcessor{
		config:   cfg,
		pipeline: p,
		loc:      p.Location(),
	}, nil
}

func (p *TaskProcessor) HandleDailyReportTask(ctx context.Context, t *asynq.Task) error {
	var payload DailyReportPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", asynq.SkipRetry)
	}

	day := caldate.Today(p.loc)
	if payload.Date != nil && *payload.Date != "" {
		parsed, err := caldate.ParseDate(*payload.Date, p.loc)
		if err != nil {
			return fmt.Errorf("invalid date override %q: %w", *payload.Date, asynq.SkipRetry)
		}
		day = parsed
	}

	log.Printf("Running daily report for %s", day)

	return p.pipeline.RunDay(ctx, day)
}

func (p *TaskProcessor) GetFeedClient() *feed.Client {
	return p.pipeline.FeedClient()
}
