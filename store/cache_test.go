package store

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryCache()
	c.Clock = func() time.Time { return now }

	if _, ok := c.Get(ctx, "k"); ok {
		t.Fatal("Get() on an empty cache found a value")
	}
	if err := c.Set(ctx, "k", "v", time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := c.Set(ctx, "forever", "v", 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got, ok := c.Get(ctx, "k"); !ok || got != "v" {
		t.Errorf("Get() = %q, %v, want %q, true", got, ok, "v")
	}

	now = now.Add(time.Minute)
	if _, ok := c.Get(ctx, "k"); ok {
		t.Error("Get() returned an expired value")
	}
	if _, ok := c.Get(ctx, "forever"); !ok {
		t.Error("Get() lost a value without ttl")
	}
}

// TestRedisCache runs against the server named by FINPREDICTOR_TEST_REDIS_URL.
func TestRedisCache(t *testing.T) {
	url := os.Getenv("FINPREDICTOR_TEST_REDIS_URL")
	if url == "" {
		t.Skip("FINPREDICTOR_TEST_REDIS_URL is not set")
	}
	ctx := context.Background()
	c, err := NewRedisCache(url)
	if err != nil {
		t.Fatalf("NewRedisCache() error = %v", err)
	}
	defer c.Close()
	if err := c.Ping(ctx); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}

	key := "test:" + newID()
	if _, ok := c.Get(ctx, key); ok {
		t.Fatal("Get() found a value for a new key")
	}
	if err := c.Set(ctx, key, "v", time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got, ok := c.Get(ctx, key); !ok || got != "v" {
		t.Errorf("Get() = %q, %v, want %q, true", got, ok, "v")
	}
}

func TestNewRedisCache_BadURL(t *testing.T) {
	if _, err := NewRedisCache("http://nope"); err == nil {
		t.Error("NewRedisCache(http://nope) did not fail")
	}
}
