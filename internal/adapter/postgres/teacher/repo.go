// Package teacher implements read-only teacher lookups using PostgreSQL.
package teacher

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/lessonbell-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lessonbell-backend/internal/domain"
)

const selectTeacher = `SELECT id, username, email, role, created_at FROM teachers`

// Repo provides teacher lookups backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new teacher repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a teacher by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Teacher, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, selectTeacher+` WHERE id = $1`, id)
	t, err := scanTeacher(row)
	if err != nil {
		return nil, postgres.MapError(err, "teacher", id)
	}
	return t, nil
}

// GetByUsername returns a teacher by username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.Teacher, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, selectTeacher+` WHERE username = $1`, username)
	t, err := scanTeacher(row)
	if err != nil {
		return nil, postgres.MapError(err, "teacher", username)
	}
	return t, nil
}

func scanTeacher(row pgx.Row) (*domain.Teacher, error) {
	var (
		t    domain.Teacher
		role string
	)
	if err := row.Scan(&t.ID, &t.Username, &t.Email, &role, &t.CreatedAt); err != nil {
		return nil, err
	}
	t.Role = domain.TeacherRole(role)
	return &t, nil
}
