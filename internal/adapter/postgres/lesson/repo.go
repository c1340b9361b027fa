// Package lesson implements the Lesson repository using PostgreSQL.
package lesson

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/lessonbell-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lessonbell-backend/internal/domain"
)

const table = "lessons"

var columns = []string{
	"id", "teacher_id", "subject", "description", "classroom",
	"date", "start_time", "end_time", "type", "status",
	"created_at", "updated_at",
}

// Repo provides lesson persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new lesson repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func selectLessons() squirrel.SelectBuilder {
	return postgres.Builder().Select(columns...).From(table)
}

// FindByID returns a lesson by primary key.
func (r *Repo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Lesson, error) {
	sql, args, err := selectLessons().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	l, err := scanLesson(row)
	if err != nil {
		return nil, postgres.MapError(err, "lesson", id)
	}
	return l, nil
}

// FindOverlapping returns the teacher's lessons on date whose [start, end)
// interval intersects [start, end).
func (r *Repo) FindOverlapping(ctx context.Context, teacherID uuid.UUID, date time.Time, start, end domain.TimeOfDay) ([]domain.Lesson, error) {
	q := selectLessons().
		Where(squirrel.Eq{"teacher_id": teacherID, "date": pgDate(date)}).
		Where(squirrel.Lt{"start_time": pgTime(end)}).
		Where(squirrel.Gt{"end_time": pgTime(start)}).
		OrderBy("start_time ASC")

	return r.list(ctx, q, teacherID)
}

// FindByTeacherAndDateRange returns the teacher's lessons dated within
// [from, to] inclusive, ordered by (date, start_time).
func (r *Repo) FindByTeacherAndDateRange(ctx context.Context, teacherID uuid.UUID, from, to time.Time) ([]domain.Lesson, error) {
	q := selectLessons().
		Where(squirrel.Eq{"teacher_id": teacherID}).
		Where(squirrel.GtOrEq{"date": pgDate(from)}).
		Where(squirrel.LtOrEq{"date": pgDate(to)}).
		OrderBy("date ASC", "start_time ASC")

	return r.list(ctx, q, teacherID)
}

// FindStartingBetween returns lessons of every teacher dated date whose
// start_time lies within [from, to] inclusive.
func (r *Repo) FindStartingBetween(ctx context.Context, date time.Time, from, to domain.TimeOfDay) ([]domain.Lesson, error) {
	q := selectLessons().
		Where(squirrel.Eq{"date": pgDate(date)}).
		Where(squirrel.GtOrEq{"start_time": pgTime(from)}).
		Where(squirrel.LtOrEq{"start_time": pgTime(to)}).
		OrderBy("start_time ASC", "id ASC")

	return r.list(ctx, q, date.Format(domain.DateLayout))
}

// FindByTeacher returns the teacher's lessons matching filter, ordered by
// (date, start_time).
func (r *Repo) FindByTeacher(ctx context.Context, teacherID uuid.UUID, filter domain.LessonFilter) ([]domain.Lesson, error) {
	q := selectLessons().Where(squirrel.Eq{"teacher_id": teacherID})
	if filter.From != nil {
		q = q.Where(squirrel.GtOrEq{"date": pgDate(*filter.From)})
	}
	if filter.To != nil {
		q = q.Where(squirrel.LtOrEq{"date": pgDate(*filter.To)})
	}
	if filter.Status != nil {
		q = q.Where(squirrel.Eq{"status": string(*filter.Status)})
	}
	if filter.Type != nil {
		q = q.Where(squirrel.Eq{"type": string(*filter.Type)})
	}
	q = q.OrderBy("date ASC", "start_time ASC")

	return r.list(ctx, q, teacherID)
}

// Save inserts the lesson or overwrites every mutable column of an existing
// row with the same id. The persisted row is returned.
func (r *Repo) Save(ctx context.Context, l *domain.Lesson) (*domain.Lesson, error) {
	q := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			l.ID, l.TeacherID, l.Subject, l.Description, l.Classroom,
			pgDate(l.Date), pgTime(l.StartTime), pgTime(l.EndTime),
			string(l.Type), string(l.Status), l.CreatedAt, l.UpdatedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			subject = EXCLUDED.subject,
			description = EXCLUDED.description,
			classroom = EXCLUDED.classroom,
			date = EXCLUDED.date,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			type = EXCLUDED.type,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at`).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	saved, err := scanLesson(row)
	if err != nil {
		return nil, postgres.MapError(err, "lesson", l.ID)
	}
	return saved, nil
}

// DeleteByID removes a lesson. Dispatch records cascade.
func (r *Repo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "lesson", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("lesson %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) list(ctx context.Context, q squirrel.SelectBuilder, key any) ([]domain.Lesson, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "lessons", key)
	}
	defer rows.Close()

	out := make([]domain.Lesson, 0)
	for rows.Next() {
		l, err := scanLesson(rows)
		if err != nil {
			return nil, postgres.MapError(err, "lessons", key)
		}
		out = append(out, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "lessons", key)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanLesson(row pgx.Row) (*domain.Lesson, error) {
	var (
		l           domain.Lesson
		date        pgtype.Date
		start, end  pgtype.Time
		typ, status string
	)
	err := row.Scan(
		&l.ID, &l.TeacherID, &l.Subject, &l.Description, &l.Classroom,
		&date, &start, &end, &typ, &status,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	l.Date = domain.DateOf(date.Time)
	l.StartTime = fromPgTime(start)
	l.EndTime = fromPgTime(end)
	l.Type = domain.LessonType(typ)
	l.Status = domain.LessonStatus(status)
	return &l, nil
}

func pgDate(t time.Time) pgtype.Date {
	return pgtype.Date{Time: domain.DateOf(t), Valid: true}
}

func pgTime(t domain.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: int64(t.Duration() / time.Microsecond), Valid: true}
}

func fromPgTime(t pgtype.Time) domain.TimeOfDay {
	return domain.TimeOfDay(time.Duration(t.Microseconds) * time.Microsecond)
}
