// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"helpdoc/internal/models"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "preview:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestConnectValkey(t *testing.T) {
	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")

	client, err := ConnectValkey(host, port, "")
	if err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	pong, err := client.Ping(ctx).Result()
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if pong != "PONG" {
		t.Errorf("expected PONG, got %q", pong)
	}
}

func TestPreviewCacheSetAndGet(t *testing.T) {
	client := testValkeyClient(t)
	pc := NewPreviewCache(client, 1*time.Minute)

	ctx := context.Background()
	key := Key("item-1", "", models.LanguageFI)

	// Miss.
	if _, ok := pc.Get(ctx, key); ok {
		t.Error("expected cache miss")
	}

	// Set, then hit.
	preview := "Hei Matti Meikäläinen, summa on 123,45 €."
	pc.Set(ctx, key, preview)

	got, ok := pc.Get(ctx, key)
	if !ok {
		t.Error("expected cache hit")
	}
	if got != preview {
		t.Errorf("preview mismatch: got %q, want %q", got, preview)
	}
}

func TestPreviewCacheInvalidate(t *testing.T) {
	client := testValkeyClient(t)
	pc := NewPreviewCache(client, 1*time.Minute)

	ctx := context.Background()
	key := Key("item-2", "kirje", models.LanguageSV)

	pc.Set(ctx, key, "cached")
	if _, ok := pc.Get(ctx, key); !ok {
		t.Fatal("expected cache hit before invalidation")
	}

	pc.Invalidate(ctx, key)

	if _, ok := pc.Get(ctx, key); ok {
		t.Error("expected cache miss after invalidation")
	}
}

func TestPreviewCacheInvalidateItem(t *testing.T) {
	client := testValkeyClient(t)
	pc := NewPreviewCache(client, 1*time.Minute)

	ctx := context.Background()

	// Every variant of one item, plus a second item that must survive.
	keys := []string{
		Key("item-3", "kirje", models.LanguageFI),
		Key("item-3", "kirje", models.LanguageSV),
		Key("item-3", "verkko", models.LanguageFI),
	}
	for _, key := range keys {
		pc.Set(ctx, key, "cached")
	}
	other := Key("item-4", "", models.LanguageFI)
	pc.Set(ctx, other, "untouched")

	pc.InvalidateItem(ctx, "item-3")

	for _, key := range keys {
		if _, ok := pc.Get(ctx, key); ok {
			t.Errorf("expected miss for %q after InvalidateItem", key)
		}
	}
	if _, ok := pc.Get(ctx, other); !ok {
		t.Error("InvalidateItem removed another item's preview")
	}
}

func TestKey(t *testing.T) {
	if got := Key("item-1", "kirje", models.LanguageFI); got != "item-1:kirje:fi" {
		t.Errorf("Key = %q", got)
	}
	if got := Key("item-1", "", models.LanguageSV); got != "item-1::sv" {
		t.Errorf("Key for language shape = %q", got)
	}
}

func TestNewPreviewCacheDefaultTTL(t *testing.T) {
	client := testValkeyClient(t)

	// TTL = 0 should use default.
	pc := NewPreviewCache(client, 0)
	if pc.ttl != DefaultPreviewTTL {
		t.Errorf("expected DefaultPreviewTTL (%v), got %v", DefaultPreviewTTL, pc.ttl)
	}
}
