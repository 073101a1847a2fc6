package workouts

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/clock"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// ListCompletions returns completions recorded within rng, most recent first.
func (r *Repo) ListCompletions(ctx context.Context, userID string, rng clock.Range) (_ []Completion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.completions.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("from", rng.From.String()),
		attribute.String("to", rng.To.String()),
	)

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, completed_on, weekday, title, completed_at, streak_before, completed_before
		FROM workout_completions
		WHERE user_id = $1
		  AND completed_at >= $2
		  AND completed_at < $3
		ORDER BY completed_at DESC
	`, userID, rng.From, rng.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	completions := make([]Completion, 0)
	for rows.Next() {
		var (
			c           Completion
			completedOn time.Time
			weekday     string
		)
		if err := rows.Scan(
			&c.ID,
			&c.UserID,
			&completedOn,
			&weekday,
			&c.Title,
			&c.CompletedAt,
			&c.StreakBefore,
			&c.CompletedBefore,
		); err != nil {
			return nil, err
		}
		c.Day = clock.DayOf(completedOn, time.UTC)
		if c.Weekday, err = ParseWeekday(weekday); err != nil {
			return nil, err
		}
		completions = append(completions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return completions, nil
}

// AddCompletion fails with ErrAlreadyCompleted when the day already has a completion.
func (r *Repo) AddCompletion(ctx context.Context, c Completion) (_ *Completion, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.completions.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("day", c.Day.String()))

	err = r.db.QueryRow(ctx, `
		INSERT INTO workout_completions (user_id, completed_on, weekday, title, completed_at, streak_before, completed_before)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		c.UserID,
		c.Day.Time(),
		c.Weekday.String(),
		c.Title,
		c.CompletedAt,
		c.StreakBefore,
		c.CompletedBefore,
	).Scan(&c.ID)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrAlreadyCompleted
		}
		return nil, fmt.Errorf("insert completion: %w", err)
	}
	return &c, nil
}

func (r *Repo) DeleteCompletion(ctx context.Context, userID string, day clock.Day) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.completions.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("day", day.String()))

	tag, err := r.db.Exec(ctx, `
		DELETE FROM workout_completions
		WHERE user_id = $1 AND completed_on = $2
	`, userID, day.Time())
	if err != nil {
		return fmt.Errorf("delete completion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotCompleted
	}
	return nil
}
