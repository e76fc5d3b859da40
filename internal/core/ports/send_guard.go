package ports

import (
	"context"
)

// SendGuard makes sending an order idempotent across retries and double submits.
type SendGuard interface {
	// Acquire claims key. It returns false when the key was already claimed.
	Acquire(ctx context.Context, key string) (bool, error)

	// Release gives key back, e.g. after the send failed.
	Release(ctx context.Context, key string) error
}
