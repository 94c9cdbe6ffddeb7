package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepo keeps sessions in a map. Nothing survives a restart.
type MemoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]Session
	now      func() time.Time
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

// Create assigns s a fresh ID and creation time and stores a copy.
func (r *MemoryRepo) Create(ctx context.Context, s *Session) error {
	s.ID = uuid.NewString()
	s.CreatedAt = r.now()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = clone(*s)
	return nil
}

func (r *MemoryRepo) Get(ctx context.Context, id string) (Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return clone(s), nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *MemoryRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions), nil
}

func clone(s Session) Session {
	if s.BorrowedBooks != nil {
		s.BorrowedBooks = append(s.BorrowedBooks[:0:0], s.BorrowedBooks...)
	}
	return s
}
