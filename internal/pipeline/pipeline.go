package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"scanreport/internal/config"
	"scanreport/internal/pkg/caldate"
	"scanreport/internal/pkg/feed"
	"scanreport/internal/pkg/mailer"
	"scanreport/internal/pkg/report"
)

// Fetcher retrieves the raw record collection.
type Fetcher interface {
	Fetch() ([]feed.ScanRecord, error)
}

// Renderer turns filtered records into a PDF document.
type Renderer interface {
	Render(records []feed.ScanRecord, day caldate.CalendarDate) ([]byte, error)
}

// Dispatcher delivers the rendered document.
type Dispatcher interface {
	Send(ctx context.Context, pdf []byte, day caldate.CalendarDate, count int) (*mailer.DeliveryResult, error)
}

// Pipeline sequences fetch, filter, render and dispatch for one run. It is
// the outermost failure boundary: a fetch failure degrades to an empty
// day, per-record date failures are contained in the filter, and render or
// dispatch failures end the run with an error. Nothing is retried; the
// next scheduled invocation is the retry mechanism.
type Pipeline struct {
	fetcher    Fetcher
	renderer   Renderer
	dispatcher Dispatcher
	loc        *time.Location

	feedClient *feed.Client // set when built from config, for test hooks
}

func New(fetcher Fetcher, renderer Renderer, dispatcher Dispatcher, loc *time.Location) *Pipeline {
	return &Pipeline{
		fetcher:    fetcher,
		renderer:   renderer,
		dispatcher: dispatcher,
		loc:        loc,
	}
}

// NewFromConfig wires the production components.
func NewFromConfig(cfg *config.Config) (*Pipeline, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", cfg.Timezone, err)
	}

	feedClient := feed.New(cfg.FeedURL)
	m := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.MailUser, cfg.MailPass, cfg.ActiveRecipients())

	p := New(feedClient, report.Renderer{}, m, loc)
	p.feedClient = feedClient
	return p, nil
}

// FeedClient returns the underlying feed client when the pipeline was
// built from config, nil otherwise.
func (p *Pipeline) FeedClient() *feed.Client {
	return p.feedClient
}

// Location returns the reference timezone.
func (p *Pipeline) Location() *time.Location {
	return p.loc
}

// Run executes one report run for today in the reference timezone.
func (p *Pipeline) Run(ctx context.Context) error {
	return p.RunDay(ctx, caldate.Today(p.loc))
}

// RunDay executes one report run for the given day. "Today" is fixed up
// front so a run straddling midnight stays consistent.
func (p *Pipeline) RunDay(ctx context.Context, day caldate.CalendarDate) error {
	records, err := p.fetcher.Fetch()
	if err != nil {
		// A fetch failure degrades to "no data today", not a crashed run.
		log.Printf("Failed to fetch feed: %v", err)
		records = nil
	}
	log.Printf("Fetched %d records", len(records))

	matched := report.FilterDay(records, day, p.loc)
	log.Printf("Found %d records for %s", len(matched), day)

	if len(matched) == 0 {
		log.Println("No data for the day. Email will not be sent.")
		return nil
	}

	// Probe the transport before rendering so a dead relay or missing
	// credentials fail here, not deep inside the send call.
	if v, ok := p.dispatcher.(interface{ Verify(context.Context) error }); ok {
		if err := v.Verify(ctx); err != nil {
			return fmt.Errorf("verifying mail transport: %w", err)
		}
	}

	pdf, err := p.renderer.Render(matched, day)
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	result, err := p.dispatcher.Send(ctx, pdf, day, len(matched))
	if err != nil {
		return fmt.Errorf("dispatching report: %w", err)
	}

	log.Printf("Email sent to %s (%s)", strings.Join(result.Recipients, ", "), result.Response)
	return nil
}
