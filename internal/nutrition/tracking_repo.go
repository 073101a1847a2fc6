package nutrition

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/fittrack/internal/clock"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

type ProteinRecord struct {
	Day        clock.Day `json:"date"`
	Grams      int       `json:"grams"`
	RecordedAt time.Time `json:"recordedAt"`
}

type TrackingRepo struct {
	db *pgxpool.Pool
}

func NewTrackingRepo(db *pgxpool.Pool) *TrackingRepo {
	return &TrackingRepo{
		db: db,
	}
}

// ListProtein returns the records within r, most recent first.
func (r *TrackingRepo) ListProtein(ctx context.Context, userID string, rng clock.Range) (_ []ProteinRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.protein.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(
		attribute.String("from", rng.From.String()),
		attribute.String("to", rng.To.String()),
	)

	rows, err := r.db.Query(ctx, `
		SELECT tracked_on, grams, recorded_at
		FROM protein_tracking
		WHERE user_id = $1
		  AND recorded_at >= $2
		  AND recorded_at < $3
		ORDER BY recorded_at DESC
	`, userID, rng.From, rng.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]ProteinRecord, 0)
	for rows.Next() {
		var (
			rec       ProteinRecord
			trackedOn time.Time
		)
		if err := rows.Scan(&trackedOn, &rec.Grams, &rec.RecordedAt); err != nil {
			return nil, err
		}
		rec.Day = clock.DayOf(trackedOn, time.UTC)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// UpsertProtein sets the consumed grams for the given day, replacing any earlier value.
func (r *TrackingRepo) UpsertProtein(ctx context.Context, userID string, day clock.Day, grams int, at time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.protein.upsert")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("day", day.String()))

	_, err = r.db.Exec(ctx, `
		INSERT INTO protein_tracking (user_id, tracked_on, grams, recorded_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, tracked_on)
		DO UPDATE SET grams = EXCLUDED.grams, recorded_at = EXCLUDED.recorded_at
	`, userID, day.Time(), grams, at)
	if err != nil {
		return fmt.Errorf("upsert protein: %w", err)
	}
	return nil
}

func (r *TrackingRepo) DeleteProtein(ctx context.Context, userID string, day clock.Day) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.protein.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("day", day.String()))

	if _, err := r.db.Exec(ctx, `
		DELETE FROM protein_tracking
		WHERE user_id = $1 AND tracked_on = $2
	`, userID, day.Time()); err != nil {
		return fmt.Errorf("delete protein: %w", err)
	}
	return nil
}
