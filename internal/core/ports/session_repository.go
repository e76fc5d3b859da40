package ports

import (
	"context"
	"time"

	"sauna/internal/core/application/orderstore"
	"sauna/internal/core/domain/model/kernel"
)

// SessionRepository keeps the live order sessions of this process. Sessions are
// ephemeral and are not expected to survive a restart.
type SessionRepository interface {
	// Add registers a new session. Adding an existing ID fails.
	Add(ctx context.Context, session *orderstore.Session) error

	// Get returns the session or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*orderstore.Session, error)

	// Remove closes and forgets the session or returns errs.ObjectNotFoundError.
	Remove(ctx context.Context, id kernel.UUID) error

	// RemoveIdle closes and forgets every session idle since cutoff and returns their IDs.
	RemoveIdle(ctx context.Context, cutoff time.Time) ([]kernel.UUID, error)
}
