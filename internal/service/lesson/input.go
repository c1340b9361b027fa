package lesson

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/lessonbell-backend/internal/domain"
)

// UpdateLessonInput replaces every mutable field of a lesson.
type UpdateLessonInput struct {
	LessonID uuid.UUID
	ActorID  uuid.UUID
	domain.LessonFields
}

func (i UpdateLessonInput) Validate() error {
	var errs []domain.FieldError

	if i.LessonID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "lesson_id", Message: "required"})
	}
	if err := i.LessonFields.Validate(); err != nil {
		errs = append(errs, err.(*domain.ValidationError).Errors...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
