package progress

import (
	"context"
	"sync"
	"time"

	"github.com/2beens/fittrack/internal/clock"
	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/workouts"
)

//go:generate mockgen -source=$GOFILE -destination=progress_mocks_test.go -package=progress_test

type WeightStore interface {
	ListWeights(ctx context.Context, userID string, limit int) ([]WeightRecord, error)
	ListWeightsIn(ctx context.Context, userID string, rng clock.Range) ([]WeightRecord, error)
	AddWeight(ctx context.Context, userID string, weightKg float64, at time.Time) (*WeightRecord, error)
	DeleteWeight(ctx context.Context, userID string, id int64) error
}

type BodyLogStore interface {
	ListBodyLogs(ctx context.Context, userID string, rng clock.Range) ([]BodyLog, error)
	UpsertBodyLog(ctx context.Context, userID string, b BodyLog) error
}

// Fetcher loads the record streams of one user concurrently.
type Fetcher struct {
	weights     WeightStore
	protein     nutrition.TrackingStore
	completions workouts.CompletionStore
	bodyLogs    BodyLogStore
}

func NewFetcher(
	weights WeightStore,
	protein nutrition.TrackingStore,
	completions workouts.CompletionStore,
	bodyLogs BodyLogStore,
) *Fetcher {
	return &Fetcher{
		weights:     weights,
		protein:     protein,
		completions: completions,
		bodyLogs:    bodyLogs,
	}
}

// Window returns the range covering the last n days up to the end of today.
// n <= 0 means the whole history.
func Window(c clock.Clock, days int) clock.Range {
	if days > 0 {
		return clock.LastDays(c, days)
	}
	return clock.Range{To: clock.Today(c).AddDays(1).Start(c.Location())}
}

// Fetch issues all stream reads at once and waits for every one of them.
// A failing stream never affects the others.
func (f *Fetcher) Fetch(ctx context.Context, userID string, rng clock.Range) Sources {
	ctx, span := tracing.GlobalTracer.Start(ctx, "progress.fetch")
	defer span.End()

	var (
		src Sources
		wg  sync.WaitGroup
	)
	wg.Add(4)

	go func() {
		defer wg.Done()
		records, err := f.weights.ListWeightsIn(ctx, userID, rng)
		if err != nil {
			src.Weights = Failed[WeightRecord](err)
			return
		}
		src.Weights = Ok(records)
	}()

	go func() {
		defer wg.Done()
		records, err := f.protein.ListProtein(ctx, userID, rng)
		if err != nil {
			src.Protein = Failed[nutrition.ProteinRecord](err)
			return
		}
		src.Protein = Ok(records)
	}()

	go func() {
		defer wg.Done()
		records, err := f.completions.ListCompletions(ctx, userID, rng)
		if err != nil {
			src.Workouts = Failed[workouts.Completion](err)
			return
		}
		src.Workouts = Ok(records)
	}()

	go func() {
		defer wg.Done()
		records, err := f.bodyLogs.ListBodyLogs(ctx, userID, rng)
		if err != nil {
			src.BodyLogs = Failed[BodyLog](err)
			return
		}
		src.BodyLogs = Ok(records)
	}()

	wg.Wait()
	return src
}
