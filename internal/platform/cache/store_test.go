package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_EntryExpiresAfterTTL(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "k", "v")

	if _, ok := store.Get(context.Background(), "k"); !ok {
		t.Fatal("expected entry before expiry")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatal("expected entry to expire after TTL")
	}
}

func TestStore_SetWithTTL_ZeroPinsEntry(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.SetWithTTL(context.Background(), "pinned", "v", 0)

	now = now.Add(24 * time.Hour)
	if _, ok := store.Get(context.Background(), "pinned"); !ok {
		t.Fatal("expected pinned entry to survive")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore(0)
	ctx := context.Background()

	store.Set(ctx, "roster:BOS", 1)
	store.Set(ctx, "roster:CGY", 2)
	store.Set(ctx, "stats:BOS", 3)

	store.DeletePrefix(ctx, "roster:")

	if _, ok := store.Get(ctx, "roster:BOS"); ok {
		t.Fatal("expected roster:BOS to be deleted")
	}
	if _, ok := store.Get(ctx, "stats:BOS"); !ok {
		t.Fatal("expected stats:BOS to survive")
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
