package domain

import (
	"time"

	"github.com/google/uuid"
)

// Teacher is the owner of a timetable. The service only reads teachers;
// accounts are provisioned elsewhere.
type Teacher struct {
	ID        uuid.UUID
	Username  string
	Email     string
	Role      TeacherRole
	CreatedAt time.Time
}
