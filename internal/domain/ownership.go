package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Decision is the outcome of an ownership check.
type Decision bool

const (
	Allow Decision = true
	Deny  Decision = false
)

// CheckOwnership decides whether actor may act on a resource owned by owner.
func CheckOwnership(ownerID, actorID uuid.UUID) Decision {
	if ownerID == uuid.Nil || actorID == uuid.Nil {
		return Deny
	}
	return Decision(ownerID == actorID)
}

// AuthorizeLesson returns ErrForbidden unless actor owns the lesson.
func AuthorizeLesson(l *Lesson, actorID uuid.UUID) error {
	if CheckOwnership(l.TeacherID, actorID) == Deny {
		return fmt.Errorf("lesson %s: %w", l.ID, ErrForbidden)
	}
	return nil
}
