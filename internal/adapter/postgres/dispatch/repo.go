// Package dispatch persists reminder dispatch records, the dedup markers that
// keep each (lesson, threshold) reminder from firing twice.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/lessonbell-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lessonbell-backend/internal/domain"
)

const table = "reminder_dispatches"

// Repo is a PostgreSQL-backed dispatch log.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new dispatch repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// TryMark inserts rec unless a record with the same key and lesson start
// exists. It reports whether this call wrote the record. A record left from an
// earlier start of a rescheduled lesson is overwritten. A lesson deleted
// meanwhile surfaces as domain.ErrNotFound.
func (r *Repo) TryMark(ctx context.Context, rec domain.DispatchRecord) (bool, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("lesson_id", "threshold_minutes", "lesson_starts_at", "dispatched_at").
		Values(rec.LessonID, rec.Threshold.Minutes(), rec.LessonStartsAt, rec.DispatchedAt).
		Suffix(`ON CONFLICT (lesson_id, threshold_minutes) DO UPDATE
			SET lesson_starts_at = EXCLUDED.lesson_starts_at, dispatched_at = EXCLUDED.dispatched_at
			WHERE reminder_dispatches.lesson_starts_at <> EXCLUDED.lesson_starts_at`).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "reminder_dispatch", rec.LessonID)
	}
	return tag.RowsAffected() == 1, nil
}

// IsMarked reports whether a record exists for key.
func (r *Repo) IsMarked(ctx context.Context, key domain.DispatchKey) (bool, error) {
	var exists bool
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM reminder_dispatches WHERE lesson_id = $1 AND threshold_minutes = $2)`,
		key.LessonID, key.Threshold.Minutes(),
	).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, "reminder_dispatch", key.LessonID)
	}
	return exists, nil
}

// PurgeStartedBefore deletes records whose lesson started before cutoff and
// returns how many were removed.
func (r *Repo) PurgeStartedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Lt{"lesson_starts_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "reminder_dispatches", cutoff.Format(time.RFC3339))
	}
	return int(tag.RowsAffected()), nil
}
