package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// This file defines the "types" and "payloads" for our async tasks.

// Task type names
const (
	TypeTaskDailyReport = "task:daily_report"
)

// DailyReportPayload is the data a report run needs. Date, when set,
// overrides "today" so an operator can enqueue a re-run for a past day.
// It accepts the same formats as the feed itself.
type DailyReportPayload struct {
	Date *string `json:"date"`
}

// NewDailyReportTask creates a new task for asynq
func NewDailyReportTask(date *string) (*asynq.Task, error) {
	payload := DailyReportPayload{
		Date: date,
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(TypeTaskDailyReport, payloadBytes), nil
}
