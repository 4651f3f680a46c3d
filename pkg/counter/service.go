package counter

import (
	"context"

	"github.com/tallyhq/tally/pkg/storage"
)

// Service exposes the read and increment operations on the stored counter
// value. It is the only permitted mutator of the counter row.
type Service struct {
	broadcaster *Broadcaster
	store       *storage.Store
}

func NewService(store *storage.Store) *Service {
	return &Service{
		broadcaster: NewBroadcaster(),
		store:       store,
	}
}

// Read returns the current stored value. Storage failures propagate unchanged.
func (s *Service) Read(ctx context.Context) (int64, error) {
	return s.store.Value(ctx)
}

// Increment atomically adds 1 to the stored value and returns the new value.
// Subscribers are notified of the new value. Storage failures propagate
// unchanged and are not retried.
func (s *Service) Increment(ctx context.Context) (int64, error) {
	value, err := s.store.IncrementAndGet(ctx)

	if err != nil {
		return 0, err
	}

	s.broadcaster.Publish(value)

	return value, nil
}

// Subscribe returns a channel receiving every value change until the returned
// unsubscribe function is called.
func (s *Service) Subscribe() (<-chan int64, func()) {
	return s.broadcaster.Subscribe()
}
