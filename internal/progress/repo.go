package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/clock"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// ListWeights returns the weight history, most recent first. Limit 0 returns all rows.
func (r *Repo) ListWeights(ctx context.Context, userID string, limit int) (_ []WeightRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.weights.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int("limit", limit))

	query := `
		SELECT id, weight_kg, recorded_at
		FROM weight_history
		WHERE user_id = $1
		ORDER BY recorded_at DESC
	`
	args := []any{userID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (WeightRecord, error) {
		var rec WeightRecord
		err := row.Scan(&rec.ID, &rec.WeightKg, &rec.RecordedAt)
		return rec, err
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// ListWeightsIn returns the weight records recorded within rng, most recent first.
func (r *Repo) ListWeightsIn(ctx context.Context, userID string, rng clock.Range) (_ []WeightRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.weights.listIn")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("from", rng.From.String()),
		attribute.String("to", rng.To.String()),
	)

	rows, err := r.db.Query(ctx, `
		SELECT id, weight_kg, recorded_at
		FROM weight_history
		WHERE user_id = $1
		  AND recorded_at >= $2
		  AND recorded_at < $3
		ORDER BY recorded_at DESC
	`, userID, rng.From, rng.To)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (WeightRecord, error) {
		var rec WeightRecord
		err := row.Scan(&rec.ID, &rec.WeightKg, &rec.RecordedAt)
		return rec, err
	})
}

func (r *Repo) AddWeight(ctx context.Context, userID string, weightKg float64, at time.Time) (_ *WeightRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.weights.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rec := &WeightRecord{
		WeightKg:   weightKg,
		RecordedAt: at,
	}
	if err := r.db.QueryRow(ctx, `
		INSERT INTO weight_history (user_id, weight_kg, recorded_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, userID, weightKg, at).Scan(&rec.ID); err != nil {
		return nil, fmt.Errorf("insert weight record: %w", err)
	}

	return rec, nil
}

func (r *Repo) DeleteWeight(ctx context.Context, userID string, id int64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.weights.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if _, err := r.db.Exec(ctx, `
		DELETE FROM weight_history
		WHERE user_id = $1 AND id = $2
	`, userID, id); err != nil {
		return fmt.Errorf("delete weight record: %w", err)
	}
	return nil
}

// ListBodyLogs returns the sleep and measurement logs within rng, most recent first.
func (r *Repo) ListBodyLogs(ctx context.Context, userID string, rng clock.Range) (_ []BodyLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.bodylogs.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT logged_on, sleep_hours, arms_cm, chest_cm, waist_cm, legs_cm, recorded_at
		FROM progress_log
		WHERE user_id = $1
		  AND recorded_at >= $2
		  AND recorded_at < $3
		ORDER BY logged_on DESC
	`, userID, rng.From, rng.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]BodyLog, 0)
	for rows.Next() {
		var (
			bl       BodyLog
			loggedOn time.Time
			m        Measurements
		)
		if err := rows.Scan(&loggedOn, &bl.SleepHours, &m.Arms, &m.Chest, &m.Waist, &m.Legs, &bl.RecordedAt); err != nil {
			return nil, err
		}
		bl.Day = clock.DayOf(loggedOn, time.UTC)
		if !m.IsEmpty() {
			bl.Measurements = &m
		}
		logs = append(logs, bl)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}

// UpsertBodyLog stores the day's log. Values missing from b keep what was already logged that day.
func (r *Repo) UpsertBodyLog(ctx context.Context, userID string, b BodyLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.bodylogs.upsert")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("day", b.Day.String()))

	var m Measurements
	if b.Measurements != nil {
		m = *b.Measurements
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO progress_log (user_id, logged_on, sleep_hours, arms_cm, chest_cm, waist_cm, legs_cm, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, logged_on)
		DO UPDATE SET
			sleep_hours = COALESCE(EXCLUDED.sleep_hours, progress_log.sleep_hours),
			arms_cm = COALESCE(EXCLUDED.arms_cm, progress_log.arms_cm),
			chest_cm = COALESCE(EXCLUDED.chest_cm, progress_log.chest_cm),
			waist_cm = COALESCE(EXCLUDED.waist_cm, progress_log.waist_cm),
			legs_cm = COALESCE(EXCLUDED.legs_cm, progress_log.legs_cm),
			recorded_at = EXCLUDED.recorded_at
	`, userID, b.Day.Time(), b.SleepHours, m.Arms, m.Chest, m.Waist, m.Legs, b.RecordedAt)
	if err != nil {
		return fmt.Errorf("upsert body log: %w", err)
	}
	return nil
}
