// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func newTestCache() *MemoryCache {
	return NewMemoryCache(MemoryCacheOptions{
		DefaultTTL:      time.Hour,
		CleanupInterval: 0, // no background sweep in tests
	})
}

func TestMemoryCache_BasicOperations(t *testing.T) {
	cache := newTestCache()
	defer func() { _ = cache.Close() }()
	ctx := context.Background()

	if err := cache.Set(ctx, "key1", []byte("value1"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, err := cache.Get(ctx, "key1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(val) != "value1" {
		t.Errorf("expected value1, got %s", string(val))
	}

	has, err := cache.Has(ctx, "key1")
	if err != nil {
		t.Fatalf("Has failed: %v", err)
	}
	if !has {
		t.Error("expected key1 to exist")
	}

	if err := cache.Delete(ctx, "key1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := cache.Get(ctx, "key1"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("expected ErrCacheMiss, got %v", err)
	}
}

func TestMemoryCache_CacheMiss(t *testing.T) {
	cache := newTestCache()
	defer func() { _ = cache.Close() }()
	ctx := context.Background()

	if _, err := cache.Get(ctx, "nonexistent"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("expected ErrCacheMiss, got %v", err)
	}

	has, err := cache.Has(ctx, "nonexistent")
	if err != nil {
		t.Fatalf("Has failed: %v", err)
	}
	if has {
		t.Error("expected nonexistent key to not exist")
	}
}

func TestMemoryCache_Expiration(t *testing.T) {
	cache := newTestCache()
	defer func() { _ = cache.Close() }()
	ctx := context.Background()

	if err := cache.Set(ctx, "short", []byte("gone soon"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	time.Sleep(25 * time.Millisecond)

	if _, err := cache.Get(ctx, "short"); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("expected ErrCacheMiss after expiry, got %v", err)
	}
	has, _ := cache.Has(ctx, "short")
	if has {
		t.Error("expected expired key to not exist")
	}
}

func TestMemoryCache_Clear(t *testing.T) {
	cache := newTestCache()
	defer func() { _ = cache.Close() }()
	ctx := context.Background()

	for _, key := range []string{"a", "b", "c"} {
		if err := cache.Set(ctx, key, []byte(key), 0); err != nil {
			t.Fatalf("Set %s failed: %v", key, err)
		}
	}

	if err := cache.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	for _, key := range []string{"a", "b", "c"} {
		if _, err := cache.Get(ctx, key); !errors.Is(err, ErrCacheMiss) {
			t.Errorf("expected %s to be cleared, got %v", key, err)
		}
	}
	if got := cache.Stats().Items; got != 0 {
		t.Errorf("expected 0 items after clear, got %d", got)
	}
}

func TestMemoryCache_Closed(t *testing.T) {
	cache := newTestCache()
	ctx := context.Background()

	if err := cache.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if err := cache.Set(ctx, "key", []byte("value"), 0); !errors.Is(err, ErrCacheClosed) {
		t.Errorf("Set on closed cache: expected ErrCacheClosed, got %v", err)
	}
	if _, err := cache.Get(ctx, "key"); !errors.Is(err, ErrCacheClosed) {
		t.Errorf("Get on closed cache: expected ErrCacheClosed, got %v", err)
	}

	// Closing twice is fine.
	if err := cache.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}

func TestMemoryCache_ValueIsolation(t *testing.T) {
	cache := newTestCache()
	defer func() { _ = cache.Close() }()
	ctx := context.Background()

	original := []byte("immutable")
	if err := cache.Set(ctx, "key", original, 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	original[0] = 'X'

	val, err := cache.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(val) != "immutable" {
		t.Errorf("cached value mutated: %s", string(val))
	}

	val[0] = 'Y'
	val2, _ := cache.Get(ctx, "key")
	if string(val2) != "immutable" {
		t.Errorf("returned slice shares cache memory: %s", string(val2))
	}
}

func TestMemoryCache_Stats(t *testing.T) {
	cache := newTestCache()
	defer func() { _ = cache.Close() }()
	ctx := context.Background()

	_ = cache.Set(ctx, "key", []byte("value"), 0)
	_, _ = cache.Get(ctx, "key")
	_, _ = cache.Get(ctx, "key")
	_, _ = cache.Get(ctx, "missing")

	stats := cache.Stats()
	if stats.Hits != 2 {
		t.Errorf("expected 2 hits, got %d", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("expected 1 miss, got %d", stats.Misses)
	}
	if stats.Sets != 1 {
		t.Errorf("expected 1 set, got %d", stats.Sets)
	}
	if stats.Items != 1 {
		t.Errorf("expected 1 item, got %d", stats.Items)
	}

	cache.ResetStats()
	stats = cache.Stats()
	if stats.Hits != 0 || stats.Misses != 0 || stats.Sets != 0 {
		t.Errorf("expected zeroed stats after reset, got %+v", stats)
	}
}

func TestMemoryCache_ConcurrentAccess(t *testing.T) {
	cache := newTestCache()
	defer func() { _ = cache.Close() }()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := string(rune('a' + n))
			for j := 0; j < 100; j++ {
				_ = cache.Set(ctx, key, []byte("value"), 0)
				_, _ = cache.Get(ctx, key)
				_ = cache.Delete(ctx, key)
			}
		}(i)
	}
	wg.Wait()
}
