// CineGraph - Movie Recommendation Engine and Graph Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package cache

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestSetAndGet(t *testing.T) {
	c := New(time.Minute)

	c.Set("key", "value")

	v, ok := c.Get("key")
	if !ok {
		t.Fatal("expected hit for stored key")
	}
	if v.(string) != "value" {
		t.Errorf("expected 'value', got %v", v)
	}
}

func TestGetMiss(t *testing.T) {
	c := New(time.Minute)

	if _, ok := c.Get("absent"); ok {
		t.Error("expected miss for absent key")
	}

	stats := c.Stats()
	if stats.Misses != 1 {
		t.Errorf("expected 1 miss, got %d", stats.Misses)
	}
}

func TestExpiration(t *testing.T) {
	c := New(10 * time.Millisecond)

	c.Set("short", 1)
	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get("short"); ok {
		t.Error("expected expired entry to miss")
	}

	stats := c.Stats()
	if stats.Evictions != 1 {
		t.Errorf("expected 1 eviction, got %d", stats.Evictions)
	}
	if c.Len() != 0 {
		t.Errorf("expected expired entry removed, got %d entries", c.Len())
	}
}

func TestSetReplacesAndRestartsClock(t *testing.T) {
	c := New(50 * time.Millisecond)

	c.Set("key", 1)
	time.Sleep(30 * time.Millisecond)
	c.Set("key", 2)
	time.Sleep(30 * time.Millisecond)

	// 60ms after the first Set but only 30ms after the second.
	v, ok := c.Get("key")
	if !ok {
		t.Fatal("expected replaced entry to still be alive")
	}
	if v.(int) != 2 {
		t.Errorf("expected replaced value 2, got %v", v)
	}
}

func TestDelete(t *testing.T) {
	c := New(time.Minute)

	c.Set("key", "value")
	c.Delete("key")

	if _, ok := c.Get("key"); ok {
		t.Error("expected deleted key to miss")
	}
}

func TestClear(t *testing.T) {
	c := New(time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Clear()

	if c.Len() != 0 {
		t.Errorf("expected empty cache after clear, got %d entries", c.Len())
	}
}

func TestStatsCounters(t *testing.T) {
	c := New(time.Minute)

	c.Set("key", "value")
	c.Get("key")
	c.Get("key")
	c.Get("missing")

	stats := c.Stats()
	if stats.Hits != 2 {
		t.Errorf("expected 2 hits, got %d", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("expected 1 miss, got %d", stats.Misses)
	}
	if stats.Entries != 1 {
		t.Errorf("expected 1 entry, got %d", stats.Entries)
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New(time.Minute)
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", n%3)
			c.Set(key, n)
			c.Get(key)
			c.Get("missing")
		}(i)
	}
	wg.Wait()

	if c.Len() != 3 {
		t.Errorf("expected 3 distinct keys, got %d", c.Len())
	}
}
