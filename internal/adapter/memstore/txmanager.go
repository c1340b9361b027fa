package memstore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// ErrNoTx is returned by LockSchedule when called outside RunInTx.
var ErrNoTx = errors.New("schedule lock requires a transaction")

type txCtxKey struct{}

type heldLocks struct {
	ids []uuid.UUID
}

// TxManager provides the transaction and schedule-lock contract over the
// in-memory stores. There is no rollback: callers write last, after every
// check has passed.
type TxManager struct {
	mu    sync.Mutex
	locks map[uuid.UUID]chan struct{}
}

// NewTxManager creates a new TxManager.
func NewTxManager() *TxManager {
	return &TxManager{locks: make(map[uuid.UUID]chan struct{})}
}

// RunInTx runs fn and releases every schedule lock fn acquired.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	held := &heldLocks{}
	defer func() {
		for _, id := range held.ids {
			<-m.sem(id)
		}
	}()

	return fn(context.WithValue(ctx, txCtxKey{}, held))
}

// LockSchedule blocks until no other transaction holds teacherID's schedule,
// or ctx is done. Locking the same teacher twice in one transaction is a no-op.
func (m *TxManager) LockSchedule(ctx context.Context, teacherID uuid.UUID) error {
	held, ok := ctx.Value(txCtxKey{}).(*heldLocks)
	if !ok {
		return ErrNoTx
	}
	for _, id := range held.ids {
		if id == teacherID {
			return nil
		}
	}

	select {
	case m.sem(teacherID) <- struct{}{}:
		held.ids = append(held.ids, teacherID)
		return nil
	case <-ctx.Done():
		return fmt.Errorf("lock schedule %s: %w", teacherID, ctx.Err())
	}
}

func (m *TxManager) sem(teacherID uuid.UUID) chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.locks[teacherID]
	if !ok {
		s = make(chan struct{}, 1)
		m.locks[teacherID] = s
	}
	return s
}
