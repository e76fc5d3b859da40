// Package orderstore owns the live order of a session. It serializes every
// mutation, keeps the price consistent with the selections and publishes each
// new snapshot to subscribers.
package orderstore

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"sauna/internal/core/domain/model/catalog"
	"sauna/internal/core/domain/model/order"
	"sauna/internal/core/domain/services"
	"sauna/internal/pkg/clock"
	"sauna/internal/pkg/errs"
)

// DefaultSubscriberBuffer is the number of undelivered records kept per subscriber.
const DefaultSubscriberBuffer = 16

// Store holds exactly one order.Record. Mutations are mutually exclusive and each
// one replaces and republishes the record inside the same critical section, so a
// published record never pairs a new selection with a stale price. Reads only
// take the read lock.
//
// A subscriber that falls behind loses its oldest pending records, never the newest.
type Store struct {
	mu          sync.RWMutex
	clock       clock.Clock
	pricer      order.Pricer
	logger      *slog.Logger
	record      order.Record
	subscribers map[uint64]chan order.Record
	nextSubID   uint64
	bufferSize  int
	closed      bool

	lastActivity atomic.Int64
}

// Option configures a Store.
type Option func(*Store)

// WithSubscriberBuffer overrides DefaultSubscriberBuffer. Values below 1 are ignored.
func WithSubscriberBuffer(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.bufferSize = n
		}
	}
}

// NewStore creates a store and performs the initial reset against clk.
func NewStore(clk clock.Clock, pricer order.Pricer, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		clock:       clk,
		pricer:      pricer,
		logger:      logger.With("component", "order_store"),
		subscribers: make(map[uint64]chan order.Record),
		bufferSize:  DefaultSubscriberBuffer,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.record = s.freshRecord()
	s.touch()
	return s
}

// SetQuantity selects the sauna type by its 1-based quantity.
func (s *Store) SetQuantity(quantity int) (order.Record, error) {
	if quantity < 1 {
		return s.CurrentState(), errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.publishLocked("set_quantity", s.record.WithQuantity(s.pricer, quantity))
	return s.record, nil
}

// SetDuration selects the session length, repricing with the current pickup date.
func (s *Store) SetDuration(duration catalog.Duration) order.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.publishLocked("set_duration", s.record.WithDuration(s.pricer, duration))
	return s.record
}

// SetPickupDate selects the pickup date. Dates outside the offered window are accepted.
func (s *Store) SetPickupDate(date string) order.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.record.PickupOptions().Contains(date) {
		s.logger.Debug("pickup date outside the offered window", "pickup_date", date)
	}
	s.publishLocked("set_pickup_date", s.record.WithPickupDate(s.pricer, date))
	return s.record
}

// Reset regenerates the pickup window from the clock and clears every selection.
func (s *Store) Reset() order.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.publishLocked("reset", s.freshRecord())
	return s.record
}

// CurrentState returns the live record.
func (s *Store) CurrentState() order.Record {
	s.touch()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.record
}

// Subscribe returns a channel receiving every record published from now on, and
// a function that unsubscribes and closes the channel. The channel is also closed
// by Close.
func (s *Store) Subscribe() (<-chan order.Record, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan order.Record, s.bufferSize)
	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() { s.unsubscribe(id) })
	}
}

// Close ends the store: subscriber channels are closed and no new ones are fed.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for id, ch := range s.subscribers {
		close(ch)
		delete(s.subscribers, id)
	}
}

// LastActivity is the last time the store was read or mutated.
func (s *Store) LastActivity() time.Time {
	return time.Unix(0, s.lastActivity.Load())
}

func (s *Store) unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ch, ok := s.subscribers[id]; ok {
		close(ch)
		delete(s.subscribers, id)
	}
}

func (s *Store) freshRecord() order.Record {
	return order.NewRecord(s.pricer, services.GeneratePickupWindow(s.clock.Now()))
}

// publishLocked must be called with mu held for writing.
func (s *Store) publishLocked(op string, next order.Record) {
	s.record = next
	s.touch()

	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "order updated",
		slog.String("op", op),
		slog.Int("quantity", next.Quantity()),
		slog.String("duration", next.Duration().String()),
		slog.String("pickup_date", next.PickupDate()),
		slog.String("price", next.Price()),
	)

	for _, ch := range s.subscribers {
		deliver(ch, next)
	}
}

// deliver never blocks: when ch is full its oldest record is discarded. Only the
// publisher sends, under the write lock, so the retry always finds room.
func deliver(ch chan order.Record, r order.Record) {
	for {
		select {
		case ch <- r:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

func (s *Store) touch() {
	s.lastActivity.Store(s.clock.Now().UnixNano())
}
