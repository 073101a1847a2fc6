package workouts

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/clock"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type CompletionStore interface {
	ListCompletions(ctx context.Context, userID string, rng clock.Range) ([]Completion, error)
	AddCompletion(ctx context.Context, c Completion) (*Completion, error)
	DeleteCompletion(ctx context.Context, userID string, day clock.Day) error
}

type profileStore interface {
	Get(ctx context.Context, id string) (*profile.Profile, error)
	Update(ctx context.Context, id string, update profile.Update) (*profile.Profile, error)
}

type stateUpdater interface {
	ApplyProfile(userID string, p profile.Profile)
}

type TodayStatus struct {
	Date      clock.Day `json:"date"`
	Workout   Workout   `json:"workout"`
	Completed bool      `json:"completed"`
}

type Service struct {
	profiles       profileStore
	completions    CompletionStore
	plan           Plan
	clock          clock.Clock
	state          stateUpdater
	metricsManager *metrics.Manager
	locks          *userLocks
}

func NewService(
	profiles profileStore,
	completions CompletionStore,
	plan Plan,
	clk clock.Clock,
	state stateUpdater,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		profiles:       profiles,
		completions:    completions,
		plan:           plan,
		clock:          clk,
		state:          state,
		metricsManager: metricsManager,
		locks:          newUserLocks(),
	}
}

func (s *Service) Plan() Plan {
	return s.plan
}

func (s *Service) Today(ctx context.Context, userID string) (_ *TodayStatus, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.today")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	today := clock.Today(s.clock)
	todays, err := s.completions.ListCompletions(ctx, userID, today.Range(s.clock.Location()))
	if err != nil {
		return nil, fmt.Errorf("list today's completions: %w", err)
	}

	return &TodayStatus{
		Date:      today,
		Workout:   s.plan.ForDay(today.Weekday()),
		Completed: len(todays) > 0,
	}, nil
}

// MarkDone records today's workout and updates the streak and completed counters.
// The updated profile is returned only after both writes succeeded.
func (s *Service) MarkDone(ctx context.Context, userID string) (_ *profile.Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.markDone")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	unlock := s.locks.lock(userID)
	defer unlock()

	now := s.clock.Now()
	loc := s.clock.Location()
	today := clock.DayOf(now, loc)
	span.SetAttributes(attribute.String("day", today.String()))

	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	todays, err := s.completions.ListCompletions(ctx, userID, today.Range(loc))
	if err != nil {
		return nil, fmt.Errorf("list today's completions: %w", err)
	}
	if len(todays) > 0 {
		return nil, ErrAlreadyCompleted
	}

	yesterdays, err := s.completions.ListCompletions(ctx, userID, today.AddDays(-1).Range(loc))
	if err != nil {
		return nil, fmt.Errorf("list yesterday's completions: %w", err)
	}

	slot := s.plan.ForDay(today.Weekday())
	if _, err := s.completions.AddCompletion(ctx, Completion{
		UserID:          userID,
		Day:             today,
		Weekday:         slot.Day,
		Title:           slot.Title,
		CompletedAt:     now,
		StreakBefore:    p.WorkoutStreak,
		CompletedBefore: p.CompletedWorkouts,
	}); err != nil {
		if errors.Is(err, ErrAlreadyCompleted) {
			return nil, ErrAlreadyCompleted
		}
		return nil, fmt.Errorf("add completion: %w", err)
	}

	streak := EvaluateStreakOnCompletion(p.WorkoutStreak, len(yesterdays) > 0)
	completed := p.CompletedWorkouts + 1
	updated, err := s.profiles.Update(ctx, userID, profile.Update{
		WorkoutStreak:     &streak,
		CompletedWorkouts: &completed,
	})
	if err != nil {
		if delErr := s.completions.DeleteCompletion(context.WithoutCancel(ctx), userID, today); delErr != nil {
			log.Errorf("mark done: revert completion for %s on %s: %s", userID, today, delErr)
		}
		return nil, fmt.Errorf("update profile counters: %w", err)
	}

	s.metricsManager.CounterWorkoutsMarked.Inc()
	s.state.ApplyProfile(userID, *updated)

	return updated, nil
}

// Unmark removes today's completion and restores the counters saved with it.
func (s *Service) Unmark(ctx context.Context, userID string) (_ *profile.Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.unmark")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	unlock := s.locks.lock(userID)
	defer unlock()

	loc := s.clock.Location()
	today := clock.Today(s.clock)
	span.SetAttributes(attribute.String("day", today.String()))

	todays, err := s.completions.ListCompletions(ctx, userID, today.Range(loc))
	if err != nil {
		return nil, fmt.Errorf("list today's completions: %w", err)
	}
	if len(todays) == 0 {
		return nil, ErrNotCompleted
	}
	completion := todays[0]

	if err := s.completions.DeleteCompletion(ctx, userID, today); err != nil {
		if errors.Is(err, ErrNotCompleted) {
			return nil, ErrNotCompleted
		}
		return nil, fmt.Errorf("delete completion: %w", err)
	}

	streak, completed := EvaluateStreakOnUnmark(completion)
	updated, err := s.profiles.Update(ctx, userID, profile.Update{
		WorkoutStreak:     &streak,
		CompletedWorkouts: &completed,
	})
	if err != nil {
		if _, addErr := s.completions.AddCompletion(context.WithoutCancel(ctx), completion); addErr != nil {
			log.Errorf("unmark: restore completion for %s on %s: %s", userID, today, addErr)
		}
		return nil, fmt.Errorf("restore profile counters: %w", err)
	}

	s.metricsManager.CounterWorkoutsUnmarked.Inc()
	s.state.ApplyProfile(userID, *updated)

	return updated, nil
}

// History lists the completions of the last n days (today included), most recent first.
func (s *Service) History(ctx context.Context, userID string, days int) ([]Completion, error) {
	completions, err := s.completions.ListCompletions(ctx, userID, clock.LastDays(s.clock, days))
	if err != nil {
		return nil, fmt.Errorf("list completions: %w", err)
	}
	return completions, nil
}
