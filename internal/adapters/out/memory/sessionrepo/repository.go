// Package sessionrepo keeps order sessions in process memory.
package sessionrepo

import (
	"context"
	"sync"
	"time"

	"sauna/internal/core/application/orderstore"
	"sauna/internal/core/domain/model/kernel"
	"sauna/internal/pkg/errs"

	"github.com/google/uuid"
)

// InMemorySessionRepository is safe for concurrent use.
type InMemorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*orderstore.Session
}

func NewInMemorySessionRepository() *InMemorySessionRepository {
	return &InMemorySessionRepository{sessions: make(map[uuid.UUID]*orderstore.Session)}
}

func (r *InMemorySessionRepository) Add(_ context.Context, session *orderstore.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := session.ID().Bytes()
	if _, ok := r.sessions[key]; ok {
		return errs.NewObjectIsDuplicateError("session", session.ID().String())
	}
	r.sessions[key] = session
	return nil
}

func (r *InMemorySessionRepository) Get(_ context.Context, id kernel.UUID) (*orderstore.Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id.Bytes()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("session", id.String())
	}
	return session, nil
}

func (r *InMemorySessionRepository) Remove(_ context.Context, id kernel.UUID) error {
	r.mu.Lock()
	session, ok := r.sessions[id.Bytes()]
	delete(r.sessions, id.Bytes())
	r.mu.Unlock()

	if !ok {
		return errs.NewObjectNotFoundError("session", id.String())
	}
	session.Store().Close()
	return nil
}

func (r *InMemorySessionRepository) RemoveIdle(_ context.Context, cutoff time.Time) ([]kernel.UUID, error) {
	r.mu.Lock()
	var idle []*orderstore.Session
	for key, session := range r.sessions {
		if session.IdleSince(cutoff) {
			idle = append(idle, session)
			delete(r.sessions, key)
		}
	}
	r.mu.Unlock()

	ids := make([]kernel.UUID, 0, len(idle))
	for _, session := range idle {
		session.Store().Close()
		ids = append(ids, session.ID())
	}
	return ids, nil
}

// Len returns the number of live sessions.
func (r *InMemorySessionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
