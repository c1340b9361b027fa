package domain

import (
	"time"
)

// LessonFilter narrows a teacher's lesson listing. Zero values mean "no bound".
type LessonFilter struct {
	From   *time.Time // inclusive calendar date
	To     *time.Time // inclusive calendar date
	Status *LessonStatus
	Type   *LessonType
}

// Match reports whether l satisfies every bound set on f.
func (f LessonFilter) Match(l *Lesson) bool {
	if f.From != nil && l.Date.Before(DateOf(*f.From)) {
		return false
	}
	if f.To != nil && l.Date.After(DateOf(*f.To)) {
		return false
	}
	if f.Status != nil && l.Status != *f.Status {
		return false
	}
	if f.Type != nil && l.Type != *f.Type {
		return false
	}
	return true
}
