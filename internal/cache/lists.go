// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// FetchFunc loads the full entity list from the backend.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// ListCache caches one entity's full list under a fixed key.
// Reads go through the cache; after a mutation the list is invalidated
// and the next read refetches from the backend.
type ListCache[T any] struct {
	cache Cacher
	key   string
	ttl   time.Duration
	fetch FetchFunc[T]
}

// NewListCache creates a list cache for a single entity.
// The key should be the entity name, e.g. "categories".
func NewListCache[T any](cache Cacher, key string, ttl time.Duration, fetch FetchFunc[T]) *ListCache[T] {
	return &ListCache[T]{
		cache: cache,
		key:   key,
		ttl:   ttl,
		fetch: fetch,
	}
}

// Key returns the cache key this list is stored under.
func (l *ListCache[T]) Key() string {
	return l.key
}

// Get returns the cached list, fetching from the backend on a miss.
// A corrupt cached entry is treated as a miss.
func (l *ListCache[T]) Get(ctx context.Context) ([]T, error) {
	data, err := l.cache.Get(ctx, l.key)
	if err == nil {
		var items []T
		if err := json.Unmarshal(data, &items); err == nil {
			return items, nil
		}
		_ = l.cache.Delete(ctx, l.key)
	} else if !errors.Is(err, ErrCacheMiss) {
		return nil, err
	}

	return l.Refresh(ctx)
}

// Refresh fetches the list from the backend and stores it,
// bypassing any cached copy.
func (l *ListCache[T]) Refresh(ctx context.Context) ([]T, error) {
	items, err := l.fetch(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(items); err == nil {
		// A failed store only costs the next read a refetch.
		_ = l.cache.Set(ctx, l.key, data, l.ttl)
	}

	return items, nil
}

// Invalidate drops the cached list. The next Get refetches.
func (l *ListCache[T]) Invalidate(ctx context.Context) error {
	return l.cache.Delete(ctx, l.key)
}
