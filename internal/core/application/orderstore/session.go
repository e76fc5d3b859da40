package orderstore

import (
	"errors"
	"time"

	"sauna/internal/core/domain/model/kernel"
)

var ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

// Session binds a Store to the identifier a client uses to reach it.
type Session struct {
	id        kernel.UUID
	store     *Store
	startedAt time.Time
}

func NewSession(id kernel.UUID, store *Store, startedAt time.Time) (*Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if store == nil {
		return nil, ErrSessionIsNotConstructed
	}
	return &Session{id: id, store: store, startedAt: startedAt}, nil
}

func (s *Session) Validate() error {
	if s == nil || s.store == nil {
		return ErrSessionIsNotConstructed
	}
	return nil
}

func (s *Session) ID() kernel.UUID {
	return s.id
}

func (s *Session) Store() *Store {
	return s.store
}

func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// IdleSince reports whether the session saw no activity after cutoff.
func (s *Session) IdleSince(cutoff time.Time) bool {
	return s.store.LastActivity().Before(cutoff)
}
