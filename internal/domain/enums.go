package domain

import "strings"

// LessonType is the kind of teaching session.
type LessonType string

const (
	LessonTypeLecture   LessonType = "LECTURE"
	LessonTypePractical LessonType = "PRACTICAL"
	LessonTypeLab       LessonType = "LAB"
	LessonTypeSeminar   LessonType = "SEMINAR"
	LessonTypeTutorial  LessonType = "TUTORIAL"
)

func (t LessonType) String() string { return string(t) }

func (t LessonType) IsValid() bool {
	switch t {
	case LessonTypeLecture, LessonTypePractical, LessonTypeLab, LessonTypeSeminar, LessonTypeTutorial:
		return true
	}
	return false
}

// LessonStatus is the lifecycle state of a lesson. Any status may follow any
// other; the owning teacher decides.
type LessonStatus string

const (
	LessonStatusScheduled  LessonStatus = "SCHEDULED"
	LessonStatusInProgress LessonStatus = "IN_PROGRESS"
	LessonStatusCompleted  LessonStatus = "COMPLETED"
	LessonStatusCancelled  LessonStatus = "CANCELLED"
)

func (s LessonStatus) String() string { return string(s) }

func (s LessonStatus) IsValid() bool {
	switch s {
	case LessonStatusScheduled, LessonStatusInProgress, LessonStatusCompleted, LessonStatusCancelled:
		return true
	}
	return false
}

// TeacherRole is the role marker carried in access tokens.
type TeacherRole string

const (
	TeacherRoleTeacher TeacherRole = "TEACHER"
	TeacherRoleAdmin   TeacherRole = "ADMIN"
)

func (r TeacherRole) String() string { return string(r) }

func (r TeacherRole) IsValid() bool {
	switch r {
	case TeacherRoleTeacher, TeacherRoleAdmin:
		return true
	}
	return false
}

// ParseTeacherRole normalizes a role claim. Roles are compared case-insensitively.
func ParseTeacherRole(s string) (TeacherRole, bool) {
	r := TeacherRole(strings.ToUpper(strings.TrimSpace(s)))
	return r, r.IsValid()
}

// CanManageLessons reports whether the role may use the lesson API.
func (r TeacherRole) CanManageLessons() bool {
	return r == TeacherRoleTeacher
}
