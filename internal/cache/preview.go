// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// preview.go provides a Valkey-backed cache for rendered content previews.
// A preview is the variant's text with every known placeholder replaced by
// its example value; rendering is cheap but the texts are read far more
// often than they change, so the rendered form is kept per variant.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"helpdoc/internal/models"
)

const (
	// previewKeyPrefix is the Valkey key prefix for cached previews.
	previewKeyPrefix = "preview:"

	// DefaultPreviewTTL is how long a rendered preview stays cached.
	DefaultPreviewTTL = 10 * time.Minute
)

// PreviewCache manages rendered preview caching in Valkey. All operations
// fail soft: a cache error is logged and treated as a miss, never
// propagated.
type PreviewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPreviewCache creates a new preview cache backed by the given Valkey
// client.
func NewPreviewCache(client *redis.Client, ttl time.Duration) *PreviewCache {
	if ttl == 0 {
		ttl = DefaultPreviewTTL
	}
	return &PreviewCache{client: client, ttl: ttl}
}

// Key returns the cache key of one variant's preview. Channel and language
// are empty for simple-shape items.
func Key(itemID, channel string, lang models.Language) string {
	return itemID + ":" + channel + ":" + string(lang)
}

// Get retrieves a cached preview. Returns false on miss.
func (pc *PreviewCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := pc.client.Get(ctx, previewKeyPrefix+key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		slog.Warn("preview cache get error", "key", key, "error", err)
		return "", false
	}
	slog.Debug("preview cache hit", "key", key)
	return val, true
}

// Set stores a rendered preview with the configured TTL.
func (pc *PreviewCache) Set(ctx context.Context, key, preview string) {
	if err := pc.client.Set(ctx, previewKeyPrefix+key, preview, pc.ttl).Err(); err != nil {
		slog.Warn("preview cache set error", "key", key, "error", err)
	}
}

// Invalidate removes one variant's preview.
func (pc *PreviewCache) Invalidate(ctx context.Context, key string) {
	if err := pc.client.Del(ctx, previewKeyPrefix+key).Err(); err != nil {
		slog.Warn("preview cache invalidate error", "key", key, "error", err)
	}
	slog.Debug("preview cache invalidated", "key", key)
}

// InvalidateAll removes every cached preview. Used when the underlying
// content is reloaded wholesale, e.g. after seeding a database.
func (pc *PreviewCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := pc.client.Scan(ctx, cursor, previewKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("preview cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := pc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("preview cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("preview cache fully cleared", "deleted", deleted)
	}
}

// InvalidateItem removes every cached preview of an item by scanning for
// its prefix. Used after lifecycle transitions and content edits, since a
// single operation can touch the aggregate view of every variant.
func (pc *PreviewCache) InvalidateItem(ctx context.Context, itemID string) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := pc.client.Scan(ctx, cursor, previewKeyPrefix+itemID+":*", 100).Result()
		if err != nil {
			slog.Warn("preview cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := pc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("preview cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Debug("preview cache cleared for item", "item", itemID, "deleted", deleted)
	}
}
