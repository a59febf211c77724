package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_CollapsesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(15 * time.Millisecond)
		return "value", nil
	}

	const workers = 24
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "deadline:current", loader)
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

func TestStore_GetOrLoad_UsesCachedValue(t *testing.T) {
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

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	store.Set(ctx, "player:list:1:50", []string{"a"})
	store.Set(ctx, "player:all", []string{"b"})
	store.Set(ctx, "deadline:current", "c")

	store.DeletePrefix(ctx, "player:")

	if _, ok := store.Get(ctx, "player:list:1:50"); ok {
		t.Fatalf("expected player list entry to be evicted")
	}
	if _, ok := store.Get(ctx, "player:all"); ok {
		t.Fatalf("expected player all entry to be evicted")
	}
	if _, ok := store.Get(ctx, "deadline:current"); !ok {
		t.Fatalf("expected deadline entry to survive")
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")

func TestStore_ExpiredEntryMisses(t *testing.T) {
	t.Parallel()

	store := NewStore(10 * time.Millisecond)
	ctx := context.Background()

	store.Set(ctx, "player:list:1:20", "stale")
	time.Sleep(25 * time.Millisecond)

	if _, ok := store.Get(ctx, "player:list:1:20"); ok {
		t.Fatalf("expected expired entry to miss")
	}
}
