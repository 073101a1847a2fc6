package nutrition

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/clock"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=nutrition_mocks_test.go -package=nutrition_test

const MaxProteinGrams = 1000

var ErrInvalidProtein = errors.New("invalid protein amount")

type TrackingStore interface {
	ListProtein(ctx context.Context, userID string, rng clock.Range) ([]ProteinRecord, error)
	UpsertProtein(ctx context.Context, userID string, day clock.Day, grams int, at time.Time) error
	DeleteProtein(ctx context.Context, userID string, day clock.Day) error
}

type profileGetter interface {
	Get(ctx context.Context, id string) (*profile.Profile, error)
}

type stateUpdater interface {
	ApplyProfile(userID string, p profile.Profile)
	ApplyConsumed(userID string, grams int)
}

type Service struct {
	profiles       profileGetter
	tracking       TrackingStore
	clock          clock.Clock
	state          stateUpdater
	metricsManager *metrics.Manager
}

func NewService(
	profiles profileGetter,
	tracking TrackingStore,
	clk clock.Clock,
	state stateUpdater,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		profiles:       profiles,
		tracking:       tracking,
		clock:          clk,
		state:          state,
		metricsManager: metricsManager,
	}
}

// Goal reloads the profile and today's intake, so the goal always follows the latest weight and goal type.
func (s *Service) Goal(ctx context.Context, userID string) (_ ProteinGoal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.goal")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return ProteinGoal{}, fmt.Errorf("get profile: %w", err)
	}

	consumed, err := s.ConsumedToday(ctx, userID)
	if err != nil {
		return ProteinGoal{}, err
	}

	s.state.ApplyProfile(userID, *p)
	s.state.ApplyConsumed(userID, consumed)

	return GoalFor(*p, consumed), nil
}

// ConsumedToday returns the latest protein value recorded inside today's local window.
func (s *Service) ConsumedToday(ctx context.Context, userID string) (int, error) {
	rec, err := s.TodayRecord(ctx, userID)
	if err != nil {
		return 0, err
	}
	if rec == nil {
		return 0, nil
	}
	return rec.Grams, nil
}

// TodayRecord returns today's protein record, nil when nothing was tracked today.
func (s *Service) TodayRecord(ctx context.Context, userID string) (*ProteinRecord, error) {
	today := clock.Today(s.clock)
	records, err := s.tracking.ListProtein(ctx, userID, today.Range(s.clock.Location()))
	if err != nil {
		return nil, fmt.Errorf("list today's protein: %w", err)
	}
	return latest(records), nil
}

// RestoreProtein puts back today's record as it was before an update.
// A nil prev removes today's record.
func (s *Service) RestoreProtein(ctx context.Context, userID string, prev *ProteinRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.protein.restore")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	grams := 0
	if prev == nil {
		if err := s.tracking.DeleteProtein(ctx, userID, clock.Today(s.clock)); err != nil {
			return fmt.Errorf("restore protein: %w", err)
		}
	} else {
		if err := s.tracking.UpsertProtein(ctx, userID, prev.Day, prev.Grams, prev.RecordedAt); err != nil {
			return fmt.Errorf("restore protein: %w", err)
		}
		grams = prev.Grams
	}

	s.state.ApplyConsumed(userID, grams)
	return nil
}

func (s *Service) UpdateProtein(ctx context.Context, userID string, grams int) (_ ProteinGoal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.protein.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("grams", grams))

	if grams < 0 || grams > MaxProteinGrams {
		return ProteinGoal{}, fmt.Errorf("%w: %d", ErrInvalidProtein, grams)
	}

	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return ProteinGoal{}, fmt.Errorf("get profile: %w", err)
	}

	now := s.clock.Now()
	if err := s.tracking.UpsertProtein(ctx, userID, clock.DayOf(now, s.clock.Location()), grams, now); err != nil {
		return ProteinGoal{}, fmt.Errorf("store protein: %w", err)
	}

	s.metricsManager.CounterProteinUpdates.Inc()
	s.state.ApplyProfile(userID, *p)
	s.state.ApplyConsumed(userID, grams)

	return GoalFor(*p, grams), nil
}

// LatestGrams picks the most recently recorded value, 0 when there are none.
func LatestGrams(records []ProteinRecord) int {
	if rec := latest(records); rec != nil {
		return rec.Grams
	}
	return 0
}

func latest(records []ProteinRecord) *ProteinRecord {
	var rec *ProteinRecord
	for i := range records {
		if rec == nil || records[i].RecordedAt.After(rec.RecordedAt) {
			rec = &records[i]
		}
	}
	return rec
}

// BodyBMI computes the BMI, filling a missing weight or height from the profile.
func (s *Service) BodyBMI(ctx context.Context, userID string, weightKg, heightCm float64) (_ BMI, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.body.bmi")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	weightKg, heightCm, err = s.bodyParams(ctx, userID, weightKg, heightCm)
	if err != nil {
		return BMI{}, err
	}

	bmi, err := CalculateBMI(weightKg, heightCm)
	if err != nil {
		return BMI{}, err
	}
	return BMI{
		Value:    bmi,
		Category: BMICategory(bmi),
	}, nil
}

func (s *Service) BodyCalories(
	ctx context.Context,
	userID string,
	weightKg, heightCm float64,
	age int,
	gender Gender,
	activity ActivityLevel,
) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.nutrition.body.calories")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	weightKg, heightCm, err = s.bodyParams(ctx, userID, weightKg, heightCm)
	if err != nil {
		return 0, err
	}
	return DailyCalories(weightKg, heightCm, age, gender, activity)
}

func (s *Service) bodyParams(ctx context.Context, userID string, weightKg, heightCm float64) (float64, float64, error) {
	if weightKg > 0 && heightCm > 0 {
		return weightKg, heightCm, nil
	}

	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return 0, 0, fmt.Errorf("get profile: %w", err)
	}
	if weightKg <= 0 {
		weightKg = p.WeightKg
	}
	if heightCm <= 0 && p.HeightCm != nil {
		heightCm = *p.HeightCm
	}
	if heightCm <= 0 {
		return 0, 0, fmt.Errorf("%w: height unknown", ErrInvalidBodyParams)
	}
	return weightKg, heightCm, nil
}
