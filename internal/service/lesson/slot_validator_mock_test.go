package lesson

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/lessonbell-backend/internal/domain"
	"sync"
	"time"
)

var _ slotValidator = &slotValidatorMock{}

type slotValidatorMock struct {
	ValidateSlotFunc func(ctx context.Context, teacherID uuid.UUID, date time.Time, start domain.TimeOfDay, end domain.TimeOfDay, excludeLessonID *uuid.UUID) error

	calls struct {
		ValidateSlot []struct {
			Ctx             context.Context
			TeacherID       uuid.UUID
			Date            time.Time
			Start           domain.TimeOfDay
			End             domain.TimeOfDay
			ExcludeLessonID *uuid.UUID
		}
	}
	lockValidateSlot sync.RWMutex
}

func (mock *slotValidatorMock) ValidateSlot(ctx context.Context, teacherID uuid.UUID, date time.Time, start domain.TimeOfDay, end domain.TimeOfDay, excludeLessonID *uuid.UUID) error {
	if mock.ValidateSlotFunc == nil {
		panic("slotValidatorMock.ValidateSlotFunc: method is nil but slotValidator.ValidateSlot was just called")
	}
	callInfo := struct {
		Ctx             context.Context
		TeacherID       uuid.UUID
		Date            time.Time
		Start           domain.TimeOfDay
		End             domain.TimeOfDay
		ExcludeLessonID *uuid.UUID
	}{
		Ctx:             ctx,
		TeacherID:       teacherID,
		Date:            date,
		Start:           start,
		End:             end,
		ExcludeLessonID: excludeLessonID,
	}
	mock.lockValidateSlot.Lock()
	mock.calls.ValidateSlot = append(mock.calls.ValidateSlot, callInfo)
	mock.lockValidateSlot.Unlock()
	return mock.ValidateSlotFunc(ctx, teacherID, date, start, end, excludeLessonID)
}

func (mock *slotValidatorMock) ValidateSlotCalls() []struct {
	Ctx             context.Context
	TeacherID       uuid.UUID
	Date            time.Time
	Start           domain.TimeOfDay
	End             domain.TimeOfDay
	ExcludeLessonID *uuid.UUID
} {
	var calls []struct {
		Ctx             context.Context
		TeacherID       uuid.UUID
		Date            time.Time
		Start           domain.TimeOfDay
		End             domain.TimeOfDay
		ExcludeLessonID *uuid.UUID
	}
	mock.lockValidateSlot.RLock()
	calls = mock.calls.ValidateSlot
	mock.lockValidateSlot.RUnlock()
	return calls
}
