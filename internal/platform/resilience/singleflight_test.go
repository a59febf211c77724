package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_Do(t *testing.T) {
	var g SingleFlight
	var counter int32

	const workers = 16
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			_, err, _ := g.Do("deadline", func() (any, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(10 * time.Millisecond)
				return "ok", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestSingleFlight_DistinctKeysRunIndependently(t *testing.T) {
	var g SingleFlight
	var counter int32

	var wg sync.WaitGroup
	for _, key := range []string{"player:list:1:20", "deadline:current"} {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			if _, err, shared := g.Do(key, func() (any, error) {
				atomic.AddInt32(&counter, 1)
				return key, nil
			}); err != nil || shared {
				t.Errorf("key %q: err=%v shared=%v", key, err, shared)
			}
		}(key)
	}
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 2 {
		t.Fatalf("expected one run per key, got %d", got)
	}
}
