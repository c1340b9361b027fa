package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/lessonbell-backend/internal/domain"
)

// TeacherRepo is an in-memory teacher directory.
type TeacherRepo struct {
	mu         sync.RWMutex
	byID       map[uuid.UUID]domain.Teacher
	byUsername map[string]uuid.UUID
}

// NewTeacherRepo creates a directory holding teachers.
func NewTeacherRepo(teachers ...domain.Teacher) *TeacherRepo {
	r := &TeacherRepo{
		byID:       make(map[uuid.UUID]domain.Teacher),
		byUsername: make(map[string]uuid.UUID),
	}
	for _, t := range teachers {
		r.Put(t)
	}
	return r
}

// Put adds or replaces a teacher.
func (r *TeacherRepo) Put(t domain.Teacher) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.byID[t.ID]; ok {
		delete(r.byUsername, prev.Username)
	}
	r.byID[t.ID] = t
	r.byUsername[t.Username] = t.ID
}

func (r *TeacherRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Teacher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("teacher %s: %w", id, domain.ErrNotFound)
	}
	return &t, nil
}

func (r *TeacherRepo) GetByUsername(_ context.Context, username string) (*domain.Teacher, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[username]
	if !ok {
		return nil, fmt.Errorf("teacher %s: %w", username, domain.ErrNotFound)
	}
	t := r.byID[id]
	return &t, nil
}
