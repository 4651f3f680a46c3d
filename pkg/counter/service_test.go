package counter_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/tallyhq/tally/pkg/counter"
	"github.com/tallyhq/tally/pkg/storage"
)

func newTestService(t *testing.T) *counter.Service {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "tally.db"))

	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	t.Cleanup(func() {
		store.Close()
	})

	return counter.NewService(store)
}

func TestRead(t *testing.T) {
	service := newTestService(t)

	value, err := service.Read(context.Background())

	if err != nil {
		t.Fatalf("failed to read: %v", err)
	}

	if value != 0 {
		t.Errorf("Expected value 0, got %d", value)
	}
}

func TestIncrement(t *testing.T) {
	service := newTestService(t)

	value, err := service.Increment(context.Background())

	if err != nil {
		t.Fatalf("failed to increment: %v", err)
	}

	if value != 1 {
		t.Errorf("Expected value 1, got %d", value)
	}

	value, err = service.Read(context.Background())

	if err != nil {
		t.Fatalf("failed to read: %v", err)
	}

	if value != 1 {
		t.Errorf("Expected value 1 after increment, got %d", value)
	}
}

func TestIncrementNotifiesSubscribers(t *testing.T) {
	service := newTestService(t)

	values, unsubscribe := service.Subscribe()
	defer unsubscribe()

	if _, err := service.Increment(context.Background()); err != nil {
		t.Fatalf("failed to increment: %v", err)
	}

	select {
	case value := <-values:
		if value != 1 {
			t.Errorf("Expected subscriber to receive 1, got %d", value)
		}
	case <-time.After(time.Second):
		t.Fatal("Expected subscriber to receive a value")
	}
}
