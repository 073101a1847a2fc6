package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

const profileColumns = `id, name, email, weight_kg, goal_type, workout_streak, completed_workouts, height_cm, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("profile.id", id))

	p, err := scanProfile(r.db.QueryRow(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE id = $1
	`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *Repo) Update(ctx context.Context, id string, update Update) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("profile.id", id))

	var goal *string
	if update.GoalType != nil {
		g := string(*update.GoalType)
		goal = &g
	}

	p, err := scanProfile(r.db.QueryRow(ctx, `
		UPDATE profiles SET
			name = COALESCE($2, name),
			weight_kg = COALESCE($3, weight_kg),
			goal_type = COALESCE($4, goal_type),
			height_cm = COALESCE($5, height_cm),
			workout_streak = COALESCE($6, workout_streak),
			completed_workouts = COALESCE($7, completed_workouts)
		WHERE id = $1
		RETURNING `+profileColumns,
		id,
		update.Name,
		update.WeightKg,
		goal,
		update.HeightCm,
		update.WorkoutStreak,
		update.CompletedWorkouts,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return p, nil
}

// Insert stores a new profile within the given transaction.
func Insert(ctx context.Context, tx pgx.Tx, p Profile) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO profiles (`+profileColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		p.ID,
		p.Name,
		p.Email,
		p.WeightKg,
		string(p.GoalType),
		p.WorkoutStreak,
		p.CompletedWorkouts,
		p.HeightCm,
		p.CreatedAt,
	)
	return err
}

func scanProfile(row pgx.Row) (*Profile, error) {
	var (
		p    Profile
		goal string
	)
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&p.WeightKg,
		&goal,
		&p.WorkoutStreak,
		&p.CompletedWorkouts,
		&p.HeightCm,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	p.GoalType = GoalType(goal)
	return &p, nil
}
