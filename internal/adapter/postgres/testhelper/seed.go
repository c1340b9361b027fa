package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/lessonbell-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedTeacher inserts a teacher with the TEACHER role.
func SeedTeacher(t *testing.T, pool *pgxpool.Pool) domain.Teacher {
	t.Helper()

	suffix := uniqueSuffix()
	teacher := domain.Teacher{
		ID:        uuid.New(),
		Username:  "teacher-" + suffix,
		Email:     "teacher-" + suffix + "@example.com",
		Role:      domain.TeacherRoleTeacher,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO teachers (id, username, email, role, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		teacher.ID, teacher.Username, teacher.Email, string(teacher.Role), teacher.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTeacher insert: %v", err)
	}

	return teacher
}

// SeedLesson inserts a SCHEDULED lecture for teacherID on date in [start, end).
func SeedLesson(t *testing.T, pool *pgxpool.Pool, teacherID uuid.UUID, date time.Time, start, end domain.TimeOfDay) domain.Lesson {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	lesson := domain.Lesson{
		ID:          uuid.New(),
		TeacherID:   teacherID,
		Subject:     "Subject " + uniqueSuffix(),
		Description: "seeded",
		Classroom:   "R-1",
		Date:        domain.DateOf(date),
		StartTime:   start,
		EndTime:     end,
		Type:        domain.LessonTypeLecture,
		Status:      domain.LessonStatusScheduled,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO lessons (id, teacher_id, subject, description, classroom, date, start_time, end_time, type, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7::time, $8::time, $9, $10, $11, $12)`,
		lesson.ID, lesson.TeacherID, lesson.Subject, lesson.Description, lesson.Classroom,
		lesson.Date, lesson.StartTime.String(), lesson.EndTime.String(),
		string(lesson.Type), string(lesson.Status), lesson.CreatedAt, lesson.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLesson insert: %v", err)
	}

	return lesson
}
