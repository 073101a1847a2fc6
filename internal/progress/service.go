package progress

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/clock"
	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=progress_test

type sourcesFetcher interface {
	Fetch(ctx context.Context, userID string, rng clock.Range) Sources
}

type profileStore interface {
	Get(ctx context.Context, id string) (*profile.Profile, error)
	Update(ctx context.Context, id string, update profile.Update) (*profile.Profile, error)
}

type proteinUpdater interface {
	TodayRecord(ctx context.Context, userID string) (*nutrition.ProteinRecord, error)
	UpdateProtein(ctx context.Context, userID string, grams int) (nutrition.ProteinGoal, error)
	RestoreProtein(ctx context.Context, userID string, prev *nutrition.ProteinRecord) error
}

type stateUpdater interface {
	ApplyProfile(userID string, p profile.Profile)
}

// LogRequest is a daily progress entry. At least one field must be set.
type LogRequest struct {
	WeightKg     *float64      `json:"weight,omitempty"`
	SleepHours   *float64      `json:"sleepHours,omitempty"`
	ProteinGrams *int          `json:"proteinConsumed,omitempty"`
	Measurements *Measurements `json:"measurements,omitempty"`
}

func (r LogRequest) IsEmpty() bool {
	return r.WeightKg == nil &&
		r.SleepHours == nil &&
		r.ProteinGrams == nil &&
		(r.Measurements == nil || r.Measurements.IsEmpty())
}

func (r LogRequest) Validate() error {
	if r.IsEmpty() {
		return ErrEmptyEntry
	}
	if r.WeightKg != nil {
		if err := profile.ValidateWeight(*r.WeightKg); err != nil {
			return err
		}
	}
	if r.SleepHours != nil && (*r.SleepHours < 0 || *r.SleepHours > MaxSleepHours) {
		return fmt.Errorf("%w: %v", ErrInvalidSleep, *r.SleepHours)
	}
	if r.ProteinGrams != nil && (*r.ProteinGrams < 0 || *r.ProteinGrams > nutrition.MaxProteinGrams) {
		return fmt.Errorf("%w: %d", nutrition.ErrInvalidProtein, *r.ProteinGrams)
	}
	if r.Measurements != nil {
		return r.Measurements.Validate()
	}
	return nil
}

type Service struct {
	fetcher        sourcesFetcher
	weights        WeightStore
	bodyLogs       BodyLogStore
	profiles       profileStore
	protein        proteinUpdater
	clock          clock.Clock
	state          stateUpdater
	metricsManager *metrics.Manager
}

func NewService(
	fetcher sourcesFetcher,
	weights WeightStore,
	bodyLogs BodyLogStore,
	profiles profileStore,
	protein proteinUpdater,
	clk clock.Clock,
	state stateUpdater,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		fetcher:        fetcher,
		weights:        weights,
		bodyLogs:       bodyLogs,
		profiles:       profiles,
		protein:        protein,
		clock:          clk,
		state:          state,
		metricsManager: metricsManager,
	}
}

// Entries aggregates the last n days (0 for all history). It degrades to partial
// entries when a stream fails and never returns an error.
func (s *Service) Entries(ctx context.Context, userID string, days int, opts Options) Aggregation {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.entries")
	defer span.End()

	src := s.fetcher.Fetch(ctx, userID, Window(s.clock, days))
	opts.Location = s.clock.Location()
	agg := BuildEntries(src, opts)

	if agg.Partial() {
		for _, stream := range agg.Failed {
			s.metricsManager.CounterPartialAggregations.WithLabelValues(stream).Inc()
		}
		span.SetAttributes(attribute.StringSlice("failed_streams", agg.Failed))
		log.WithFields(log.Fields{
			"user_id": userID,
			"failed":  agg.Failed,
		}).Warnf("partial progress aggregation: %s", agg.Warnings)
	}

	return agg
}

// Weights lists the weight history, most recent first.
func (s *Service) Weights(ctx context.Context, userID string, limit int) ([]WeightRecord, error) {
	records, err := s.weights.ListWeights(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list weights: %w", err)
	}
	return records, nil
}

// RecordWeight appends the weight to the history and sets it on the profile.
// Nothing stays applied when either write fails.
func (s *Service) RecordWeight(ctx context.Context, userID string, weightKg float64) (_ *profile.Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.weight.record")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := profile.ValidateWeight(weightKg); err != nil {
		return nil, err
	}

	updated, _, err := s.recordWeight(ctx, userID, weightKg)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// undoFunc reverts one applied write of a multi-store operation.
type undoFunc func(ctx context.Context) error

// recordWeight returns an undo that removes the record and restores the previous weight.
func (s *Service) recordWeight(ctx context.Context, userID string, weightKg float64) (*profile.Profile, undoFunc, error) {
	prev, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("get profile: %w", err)
	}

	rec, err := s.weights.AddWeight(ctx, userID, weightKg, s.clock.Now())
	if err != nil {
		return nil, nil, fmt.Errorf("add weight record: %w", err)
	}

	updated, err := s.profiles.Update(ctx, userID, profile.Update{WeightKg: &weightKg})
	if err != nil {
		if delErr := s.weights.DeleteWeight(context.WithoutCancel(ctx), userID, rec.ID); delErr != nil {
			log.Errorf("record weight for %s: remove weight record %d: %s", userID, rec.ID, delErr)
		}
		return nil, nil, fmt.Errorf("update profile weight: %w", err)
	}
	s.state.ApplyProfile(userID, *updated)

	undo := func(ctx context.Context) error {
		var errs []error
		prevWeight := prev.WeightKg
		if restored, err := s.profiles.Update(ctx, userID, profile.Update{WeightKg: &prevWeight}); err != nil {
			errs = append(errs, fmt.Errorf("restore profile weight: %w", err))
		} else {
			s.state.ApplyProfile(userID, *restored)
		}
		if err := s.weights.DeleteWeight(ctx, userID, rec.ID); err != nil {
			errs = append(errs, fmt.Errorf("remove weight record: %w", err))
		}
		return errors.Join(errs...)
	}
	return updated, undo, nil
}

// LogEntry validates the whole entry before storing any part of it, then returns
// today's merged entry as read back from the stores. When a store fails, the
// parts already written are reverted in reverse order.
func (s *Service) LogEntry(ctx context.Context, userID string, req LogRequest) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.log")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	var undos []undoFunc
	defer func() {
		if err == nil {
			return
		}
		undoCtx := context.WithoutCancel(ctx)
		for i := len(undos) - 1; i >= 0; i-- {
			if undoErr := undos[i](undoCtx); undoErr != nil {
				log.WithField("user_id", userID).Errorf("revert progress entry: %s", undoErr)
			}
		}
	}()

	if req.WeightKg != nil {
		_, undo, err := s.recordWeight(ctx, userID, *req.WeightKg)
		if err != nil {
			return nil, err
		}
		undos = append(undos, undo)
	}

	if req.ProteinGrams != nil {
		prev, err := s.protein.TodayRecord(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("update protein: %w", err)
		}
		if _, err := s.protein.UpdateProtein(ctx, userID, *req.ProteinGrams); err != nil {
			return nil, fmt.Errorf("update protein: %w", err)
		}
		undos = append(undos, func(ctx context.Context) error {
			return s.protein.RestoreProtein(ctx, userID, prev)
		})
	}

	if req.SleepHours != nil || (req.Measurements != nil && !req.Measurements.IsEmpty()) {
		now := s.clock.Now()
		if err := s.bodyLogs.UpsertBodyLog(ctx, userID, BodyLog{
			Day:          clock.DayOf(now, s.clock.Location()),
			SleepHours:   req.SleepHours,
			Measurements: req.Measurements,
			RecordedAt:   now,
		}); err != nil {
			return nil, fmt.Errorf("store body log: %w", err)
		}
	}

	s.metricsManager.CounterProgressEntries.Inc()

	today := s.Entries(ctx, userID, 1, Options{})
	if len(today.Entries) == 0 {
		return &Entry{Date: clock.Today(s.clock)}, nil
	}
	return &today.Entries[0], nil
}
