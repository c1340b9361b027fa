package timetable

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/lessonbell-backend/internal/domain"
)

// CreateLessonInput holds the parameters for booking a lesson.
type CreateLessonInput struct {
	TeacherID uuid.UUID
	domain.LessonFields
	// Status defaults to SCHEDULED.
	Status *domain.LessonStatus
}

// Validate checks all fields and collects all errors.
func (i CreateLessonInput) Validate() error {
	var errs []domain.FieldError

	if i.TeacherID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "teacher_id", Message: "required"})
	}
	if err := i.LessonFields.Validate(); err != nil {
		errs = append(errs, err.(*domain.ValidationError).Errors...)
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown lesson status"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
