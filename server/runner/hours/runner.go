// Package hours hosts the batch runner that normalizes harvested
// free-text opening-hours strings into structured weekly schedules.
package hours

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hellboyz13/mrtfood/internal/hours"
	"github.com/hellboyz13/mrtfood/store"
)

// maxUnparsedExamples caps the number of raw strings carried in a report
// so operator output stays readable.
const maxUnparsedExamples = 15

// Store is the slice of the place store the runner needs.
// *store.Store satisfies it.
type Store interface {
	ListPlaces(ctx context.Context, find *store.FindPlace) ([]*store.Place, error)
	UpdatePlace(ctx context.Context, update *store.UpdatePlace) error
}

// UnparsedExample is one raw string no recognizer understood, kept for
// operator review. These examples are the feedback loop for growing the
// recognizer cascade.
type UnparsedExample struct {
	UID      string `json:"uid"`
	RawHours string `json:"raw_hours"`
}

// Report summarizes one batch run.
type Report struct {
	Converted        int               `json:"converted"`
	Skipped          int               `json:"skipped"`
	UnparsedExamples []UnparsedExample `json:"unparsed_examples"`
}

type Runner struct {
	store     Store
	interval  time.Duration
	batchSize int
}

// NewRunner creates an opening-hours normalization runner.
func NewRunner(store Store) *Runner {
	return &Runner{
		store:     store,
		interval:  10 * time.Minute,
		batchSize: 50,
	}
}

// Run starts the background task: one pass on startup, then one per
// interval until the context is cancelled.
func (r *Runner) Run(ctx context.Context) {
	if _, err := r.RunOnce(ctx); err != nil {
		slog.Error("hours normalization pass failed", "error", err)
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil {
				slog.Error("hours normalization pass failed", "error", err)
			}
		case <-ctx.Done():
			slog.Info("hours runner stopped")
			return
		}
	}
}

// RunOnce performs a single batch pass over all pending places: every
// place whose raw hours string has not been normalized yet. A failure on
// one place never aborts the pass; unparsed strings stay untouched and
// are picked up again on the next pass.
func (r *Runner) RunOnce(ctx context.Context) (*Report, error) {
	runID := uuid.New().String()
	report := &Report{UnparsedExamples: []UnparsedExample{}}

	// Pending places drop out of the predicate once converted, so the
	// offset only needs to step past the ones this pass left pending.
	for {
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}

		pending := true
		limit := r.batchSize
		offset := report.Skipped
		places, err := r.store.ListPlaces(ctx, &store.FindPlace{
			HoursPending: &pending,
			Limit:        &limit,
			Offset:       &offset,
		})
		if err != nil {
			return report, err
		}
		if len(places) == 0 {
			break
		}

		for _, place := range places {
			r.normalizePlace(ctx, place, report)
		}
	}

	if report.Converted > 0 || report.Skipped > 0 {
		slog.Info("hours normalization pass finished",
			slog.String("run_id", runID),
			slog.Int("converted", report.Converted),
			slog.Int("skipped", report.Skipped))
	}
	return report, nil
}

func (r *Runner) normalizePlace(ctx context.Context, place *store.Place, report *Report) {
	if place.RawHours == nil {
		return
	}

	schedule, ok := hours.Parse(*place.RawHours)
	if !ok {
		report.Skipped++
		if len(report.UnparsedExamples) < maxUnparsedExamples {
			report.UnparsedExamples = append(report.UnparsedExamples, UnparsedExample{
				UID:      place.UID,
				RawHours: *place.RawHours,
			})
		}
		return
	}

	if err := r.store.UpdatePlace(ctx, &store.UpdatePlace{
		ID:    place.ID,
		Hours: schedule,
	}); err != nil {
		slog.Error("failed to store normalized hours",
			slog.String("uid", place.UID),
			slog.String("error", err.Error()))
		report.Skipped++
		return
	}

	report.Converted++
}
