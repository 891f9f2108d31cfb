package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_Do(t *testing.T) {
	var g SingleFlight
	var counter atomic.Int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			_, err, _ := g.Do("pool-key", func() (any, error) {
				counter.Add(1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			if err != nil {
				t.Errorf("singleflight call failed: %v", err)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := counter.Load(); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestSingleFlight_Forget(t *testing.T) {
	var g SingleFlight
	var counter atomic.Int32

	run := func() (any, error) {
		counter.Add(1)
		return nil, nil
	}

	if _, err, _ := g.Do("k", run); err != nil {
		t.Fatalf("first Do failed: %v", err)
	}
	g.Forget("k")
	if _, err, _ := g.Do("k", run); err != nil {
		t.Fatalf("second Do failed: %v", err)
	}

	if got := counter.Load(); got != 2 {
		t.Fatalf("expected fresh execution after Forget, got %d runs", got)
	}
}
