package cache

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestCache_HitSkipsProducer(t *testing.T) {
	c := New(10, time.Minute)

	calls := 0
	produce := func() (any, error) {
		calls++
		return calls, nil
	}

	first, err := c.GetOrCompute("op", "key", produce)
	if err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	second, err := c.GetOrCompute("op", "key", produce)
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}

	if calls != 1 {
		t.Errorf("producer called %d times, want 1", calls)
	}
	if first != second {
		t.Errorf("hit returned different value: %v != %v", first, second)
	}
}

func TestCache_ExpiryRecomputes(t *testing.T) {
	c := New(10, 20*time.Millisecond)

	calls := 0
	produce := func() (any, error) {
		calls++
		return calls, nil
	}

	if _, err := c.GetOrCompute("op", "key", produce); err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	time.Sleep(50 * time.Millisecond)
	v, err := c.GetOrCompute("op", "key", produce)
	if err != nil {
		t.Fatalf("post-expiry call failed: %v", err)
	}

	if calls != 2 {
		t.Errorf("producer called %d times, want 2 after expiry", calls)
	}
	if v != 2 {
		t.Errorf("expected recomputed value 2, got %v", v)
	}
}

func TestCache_ErrorsAreNotCached(t *testing.T) {
	c := New(10, time.Minute)

	boom := errors.New("boom")
	calls := 0
	_, err := c.GetOrCompute("op", "key", func() (any, error) {
		calls++
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	v, err := c.GetOrCompute("op", "key", func() (any, error) {
		calls++
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if v != "ok" {
		t.Errorf("expected ok, got %v", v)
	}
	if calls != 2 {
		t.Errorf("producer called %d times, want 2", calls)
	}
}

func TestCache_CapacityEvictsLRU(t *testing.T) {
	c := New(2, time.Minute)

	mustAdd := func(key string) {
		t.Helper()
		if _, err := c.GetOrCompute("op", key, func() (any, error) { return key, nil }); err != nil {
			t.Fatalf("add %s failed: %v", key, err)
		}
	}

	mustAdd("a")
	mustAdd("b")
	mustAdd("a") // refresh a, making b least recently used
	mustAdd("c") // evicts b

	calls := 0
	if _, err := c.GetOrCompute("op", "b", func() (any, error) {
		calls++
		return "b2", nil
	}); err != nil {
		t.Fatalf("recompute b failed: %v", err)
	}
	if calls != 1 {
		t.Error("expected b to have been evicted and recomputed")
	}

	if got := c.Stats().Size; got > 2 {
		t.Errorf("cache exceeded capacity: %d", got)
	}
}

func TestCache_ConcurrentMissesCoalesce(t *testing.T) {
	c := New(10, time.Minute)

	var calls atomic.Int64
	produce := func() (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "v", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.GetOrCompute("op", "key", produce)
			if err != nil {
				t.Errorf("GetOrCompute failed: %v", err)
			}
			if v != "v" {
				t.Errorf("unexpected value %v", v)
			}
		}()
	}
	wg.Wait()

	if n := calls.Load(); n != 1 {
		t.Errorf("producer ran %d times under concurrent misses, want 1", n)
	}
}

func TestCache_Stats(t *testing.T) {
	c := New(7, 5*time.Minute)

	for i := 0; i < 3; i++ {
		key := fmt.Sprintf("key-%d", i)
		if _, err := c.GetOrCompute("op", key, func() (any, error) { return i, nil }); err != nil {
			t.Fatalf("add failed: %v", err)
		}
	}

	stats := c.Stats()
	if stats.Size != 3 {
		t.Errorf("expected size 3, got %d", stats.Size)
	}
	if stats.Capacity != 7 {
		t.Errorf("expected capacity 7, got %d", stats.Capacity)
	}
	if stats.TTL != 5*time.Minute {
		t.Errorf("expected ttl 5m, got %v", stats.TTL)
	}
}
