package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Threshold is a lead time before a lesson's start at which a reminder fires.
type Threshold time.Duration

// Minutes returns the threshold in whole minutes.
func (t Threshold) Minutes() int { return int(time.Duration(t) / time.Minute) }

func (t Threshold) Duration() time.Duration { return time.Duration(t) }

func (t Threshold) String() string { return fmt.Sprintf("%dm", t.Minutes()) }

// DispatchState is the reminder state of a (lesson, threshold) pair.
type DispatchState string

const (
	DispatchPending    DispatchState = "pending"
	DispatchDispatched DispatchState = "dispatched"
)

// DispatchKey identifies a reminder that fires at most once.
type DispatchKey struct {
	LessonID  uuid.UUID
	Threshold Threshold
}

// DispatchRecord marks a reminder as sent. It is created once and never mutated.
type DispatchRecord struct {
	DispatchKey
	LessonStartsAt time.Time
	DispatchedAt   time.Time
}

// Expired reports whether the record may be purged at now.
func (r DispatchRecord) Expired(now time.Time, margin time.Duration) bool {
	return r.LessonStartsAt.Add(margin).Before(now)
}
