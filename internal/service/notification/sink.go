package notification

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Sink holds in-app messages per teacher until the teacher clears them.
// Each mailbox has its own lock so producers for different teachers never
// contend. Contents live for the process lifetime.
type Sink struct {
	mu        sync.RWMutex
	mailboxes map[uuid.UUID]*mailbox
}

type mailbox struct {
	mu       sync.Mutex
	messages []string
}

// NewSink creates an empty sink.
func NewSink() *Sink {
	return &Sink{mailboxes: make(map[uuid.UUID]*mailbox)}
}

// Create appends message to the teacher's mailbox, creating it if needed.
func (s *Sink) Create(teacherID uuid.UUID, message string) {
	mb := s.mailbox(teacherID)
	mb.mu.Lock()
	mb.messages = append(mb.messages, message)
	mb.mu.Unlock()
}

// Get returns a snapshot of the teacher's messages in insertion order.
// An unknown teacher yields an empty slice.
func (s *Sink) Get(teacherID uuid.UUID) []string {
	s.mu.RLock()
	mb, ok := s.mailboxes[teacherID]
	s.mu.RUnlock()
	if !ok {
		return []string{}
	}

	mb.mu.Lock()
	defer mb.mu.Unlock()
	if mb.messages == nil {
		return []string{}
	}
	return slices.Clone(mb.messages)
}

// Clear empties the teacher's mailbox. Clearing an unknown or empty mailbox
// is a no-op.
func (s *Sink) Clear(teacherID uuid.UUID) {
	s.mu.RLock()
	mb, ok := s.mailboxes[teacherID]
	s.mu.RUnlock()
	if !ok {
		return
	}

	mb.mu.Lock()
	mb.messages = nil
	mb.mu.Unlock()
}

func (s *Sink) mailbox(teacherID uuid.UUID) *mailbox {
	s.mu.RLock()
	mb, ok := s.mailboxes[teacherID]
	s.mu.RUnlock()
	if ok {
		return mb
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if mb, ok = s.mailboxes[teacherID]; !ok {
		mb = &mailbox{}
		s.mailboxes[teacherID] = mb
	}
	return mb
}
