package utils

import (
	"testing"
	"time"
)

func TestQueryCacheSetGet(t *testing.T) {
	c := NewQueryCache[string](10, time.Minute)

	c.Set("k", "v")
	got, ok := c.Get("k")
	if !ok || got != "v" {
		t.Fatalf("Get(k) = (%q, %v), want (v, true)", got, ok)
	}

	if _, ok := c.Get("missing"); ok {
		t.Fatal("Get(missing) hit, want miss")
	}
}

func TestQueryCacheExpiry(t *testing.T) {
	c := NewQueryCache[int](10, 10*time.Millisecond)

	c.Set("k", 1)
	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Fatal("expired entry still served")
	}
	if c.Len() != 0 {
		t.Fatalf("len = %d, want 0 after expiry read", c.Len())
	}
}

func TestQueryCacheEviction(t *testing.T) {
	c := NewQueryCache[int](2, time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	// 容量 2，最早的条目被淘汰
	if _, ok := c.Get("a"); ok {
		t.Fatal("oldest entry survived eviction")
	}
	if _, ok := c.Get("c"); !ok {
		t.Fatal("newest entry missing")
	}
}

func TestHashIPStableAndDistinct(t *testing.T) {
	a1 := HashIP("10.0.0.1")
	a2 := HashIP("10.0.0.1")
	b := HashIP("10.0.0.2")

	if a1 != a2 {
		t.Fatalf("hash not stable: %s vs %s", a1, a2)
	}
	if a1 == b {
		t.Fatal("different ips collide")
	}
	if len(a1) != 16 {
		t.Fatalf("hash length = %d, want 16 hex chars", len(a1))
	}
}
