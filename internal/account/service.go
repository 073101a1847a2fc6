// Package account serves the signed-in user's own profile together with the
// protein goal derived from it.
package account

import (
	"context"
	"fmt"

	"github.com/2beens/fittrack/internal/nutrition"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=account_test

type profileStore interface {
	Get(ctx context.Context, id string) (*profile.Profile, error)
	Update(ctx context.Context, id string, update profile.Update) (*profile.Profile, error)
}

type weightRecorder interface {
	RecordWeight(ctx context.Context, userID string, weightKg float64) (*profile.Profile, error)
}

type goalReader interface {
	Goal(ctx context.Context, userID string) (nutrition.ProteinGoal, error)
}

type stateUpdater interface {
	ApplyProfile(userID string, p profile.Profile)
}

type Overview struct {
	Profile   *profile.Profile       `json:"profile"`
	GoalLabel string                 `json:"goalLabel"`
	Protein   nutrition.GoalResponse `json:"protein"`
}

type Service struct {
	profiles profileStore
	weights  weightRecorder
	goals    goalReader
	state    stateUpdater
}

func NewService(profiles profileStore, weights weightRecorder, goals goalReader, state stateUpdater) *Service {
	return &Service{
		profiles: profiles,
		weights:  weights,
		goals:    goals,
		state:    state,
	}
}

func (s *Service) Overview(ctx context.Context, userID string) (_ *Overview, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.account.overview")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return s.overviewOf(ctx, p)
}

// UpdateWeight changes the weight and records it in the weight history.
// The returned goal already follows the new weight.
func (s *Service) UpdateWeight(ctx context.Context, userID string, weightKg float64) (_ *Overview, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.account.weight.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	p, err := s.weights.RecordWeight(ctx, userID, weightKg)
	if err != nil {
		return nil, err
	}
	return s.overviewOf(ctx, p)
}

func (s *Service) UpdateGoal(ctx context.Context, userID string, goal string) (_ *Overview, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.account.goal.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	goalType, err := profile.ParseGoalType(goal)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, userID, profile.Update{GoalType: &goalType})
}

// UpdateDetails changes the name and height. Counters and weight have their own flows.
func (s *Service) UpdateDetails(ctx context.Context, userID string, name *string, heightCm *float64) (_ *Overview, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.account.details.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	return s.update(ctx, userID, profile.Update{Name: name, HeightCm: heightCm})
}

func (s *Service) update(ctx context.Context, userID string, update profile.Update) (*Overview, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	p, err := s.profiles.Update(ctx, userID, update)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	s.state.ApplyProfile(userID, *p)

	return s.overviewOf(ctx, p)
}

func (s *Service) overviewOf(ctx context.Context, p *profile.Profile) (*Overview, error) {
	goal, err := s.goals.Goal(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("get protein goal: %w", err)
	}
	return &Overview{
		Profile:   p,
		GoalLabel: p.GoalType.Label(),
		Protein:   nutrition.NewGoalResponse(goal),
	}, nil
}
