package domain

import (
	"cmp"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Lesson is one scheduled teaching session owned by a single teacher.
type Lesson struct {
	ID          uuid.UUID
	TeacherID   uuid.UUID
	Subject     string
	Description string
	Classroom   string
	Date        time.Time // calendar date, midnight UTC
	StartTime   TimeOfDay
	EndTime     TimeOfDay
	Type        LessonType
	Status      LessonStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StartsAt returns the start instant of the lesson on the clock of loc.
func (l *Lesson) StartsAt(loc *time.Location) time.Time {
	return At(l.Date, l.StartTime, loc)
}

// Overlaps reports whether the lesson occupies any part of [start, end) on date.
func (l *Lesson) Overlaps(date time.Time, start, end TimeOfDay) bool {
	if !DateOf(l.Date).Equal(DateOf(date)) {
		return false
	}
	return Intersects(l.StartTime, l.EndTime, start, end)
}

// LessonFields are the caller-editable attributes of a lesson.
type LessonFields struct {
	Subject     string
	Description string
	Classroom   string
	Date        time.Time
	StartTime   TimeOfDay
	EndTime     TimeOfDay
	Type        LessonType
}

// Field length limits.
const (
	MaxSubjectLen     = 200
	MaxDescriptionLen = 2000
	MaxClassroomLen   = 100
)

// Normalized trims free-text fields and truncates Date to a calendar date.
func (f LessonFields) Normalized() LessonFields {
	f.Subject = NormalizeText(f.Subject)
	f.Description = strings.TrimSpace(f.Description)
	f.Classroom = NormalizeText(f.Classroom)
	if !f.Date.IsZero() {
		f.Date = DateOf(f.Date)
	}
	return f
}

// Validate checks every field and collects all errors. Slot conflicts are
// checked separately against the store.
func (f LessonFields) Validate() error {
	var errs []FieldError

	checkText := func(field, v string, limit int) {
		v = strings.TrimSpace(v)
		switch {
		case v == "":
			errs = append(errs, FieldError{Field: field, Message: "required"})
		case utf8.RuneCountInString(v) > limit:
			errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf("max %d characters", limit)})
		}
	}
	checkText("subject", f.Subject, MaxSubjectLen)
	checkText("description", f.Description, MaxDescriptionLen)
	checkText("classroom", f.Classroom, MaxClassroomLen)

	if f.Date.IsZero() {
		errs = append(errs, FieldError{Field: "date", Message: "required"})
	}
	if !f.StartTime.IsValid() {
		errs = append(errs, FieldError{Field: "start_time", Message: "must be within the day"})
	}
	if !f.EndTime.IsValid() {
		errs = append(errs, FieldError{Field: "end_time", Message: "must be within the day"})
	}
	if !f.StartTime.Before(f.EndTime) {
		errs = append(errs, FieldError{Field: "end_time", Message: "must be after start_time"})
	}
	if !f.Type.IsValid() {
		errs = append(errs, FieldError{Field: "type", Message: "unknown lesson type"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// Apply overwrites all mutable fields of l with f.
func (l *Lesson) Apply(f LessonFields) {
	l.Subject = f.Subject
	l.Description = f.Description
	l.Classroom = f.Classroom
	l.Date = DateOf(f.Date)
	l.StartTime = f.StartTime
	l.EndTime = f.EndTime
	l.Type = f.Type
}

// CompareLessons orders lessons by (date, start time); usable with slices.SortFunc.
func CompareLessons(a, b *Lesson) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	return cmp.Compare(a.StartTime, b.StartTime)
}
