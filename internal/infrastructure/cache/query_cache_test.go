package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestQueryCache_ReadThrough(t *testing.T) {
	c := New[int](time.Minute)
	var calls int32
	load := func(context.Context) (int, error) {
		return int(atomic.AddInt32(&calls, 1)), nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.Get(context.Background(), "members", load)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != 1 {
			t.Fatalf("expected cached 1, got %d", v)
		}
	}
	if calls != 1 {
		t.Fatalf("expected 1 load, got %d", calls)
	}
}

func TestQueryCache_Invalidation(t *testing.T) {
	c := New[string](time.Minute)
	n := 0
	load := func(context.Context) (string, error) {
		n++
		return "v" + string(rune('0'+n)), nil
	}

	_, _ = c.Get(context.Background(), "members?status=active", load)
	_, _ = c.Get(context.Background(), "members?status=pending", load)
	_, _ = c.Get(context.Background(), "mandates", load)

	c.InvalidatePrefix("members")
	if c.Len() != 1 {
		t.Fatalf("expected only mandates cached, got %d entries", c.Len())
	}

	v, _ := c.Get(context.Background(), "members?status=active", load)
	if v != "v4" {
		t.Fatalf("expected reload after invalidation, got %s", v)
	}

	c.Invalidate("mandates")
	c.InvalidateAll()
	if c.Len() != 0 {
		t.Fatalf("expected empty cache")
	}
}

func TestQueryCache_Expiry(t *testing.T) {
	c := New[int](time.Second)
	now := time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	n := 0
	load := func(context.Context) (int, error) { n++; return n, nil }

	_, _ = c.Get(context.Background(), "k", load)
	now = now.Add(2 * time.Second)
	v, _ := c.Get(context.Background(), "k", load)
	if v != 2 {
		t.Fatalf("expected expired entry to reload, got %d", v)
	}
}

func TestQueryCache_ErrorsNotCached(t *testing.T) {
	c := New[int](time.Minute)
	boom := errors.New("webhook down")
	_, err := c.Get(context.Background(), "k", func(context.Context) (int, error) { return 0, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("error must not be cached")
	}
}

func TestQueryCache_ConcurrentMissesShareLoad(t *testing.T) {
	c := New[int](time.Minute)
	var calls int32
	release := make(chan struct{})
	load := func(context.Context) (int, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return 7, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if v, _ := c.Get(context.Background(), "k", load); v != 7 {
				t.Errorf("expected 7, got %d", v)
			}
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if calls != 1 {
		t.Fatalf("expected one shared load, got %d", calls)
	}
}
