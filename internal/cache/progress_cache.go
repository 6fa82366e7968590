package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Alireza01sjd/project-god-mode/internal/api/models"

	"github.com/redis/go-redis/v9"
)

// ProgressCache keeps hot reading-progress rows in redis hashes so the
// frequent "where was I in this book" lookup does not hit postgres.
// The database stays the source of truth; entries expire on their own
// and every write path refreshes them.
type ProgressCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProgressCache connects to redis and verifies the connection.
func NewProgressCache(addr, password string, ttl time.Duration) (*ProgressCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &ProgressCache{client: rdb, ttl: ttl}, nil
}

// NewNoopProgressCache returns a cache whose operations are no-ops.
// Used in tests and when redis is not configured.
func NewNoopProgressCache() *ProgressCache {
	return &ProgressCache{}
}

func progressKey(userID string, bookID int64) string {
	return fmt.Sprintf("progress:user:%s:book:%d", userID, bookID)
}

// progressFields flattens a row into the hash stored under progressKey.
// Every column the table persists goes in, so a cache hit is
// indistinguishable from a database read.
func progressFields(p *models.ReadingProgress) map[string]any {
	return map[string]any{
		"id":           p.ID,
		"user_id":      p.UserID,
		"book_id":      p.BookID,
		"current_page": p.CurrentPage,
		"total_pages":  p.TotalPages,
		"progress":     p.Progress,
		"last_read_at": p.LastReadAt.Format(time.RFC3339Nano),
		"created_at":   p.CreatedAt.Format(time.RFC3339Nano),
		"updated_at":   p.UpdatedAt.Format(time.RFC3339Nano),
	}
}

// progressFromFields is the inverse of progressFields.
func progressFromFields(userID string, bookID int64, fields map[string]string) *models.ReadingProgress {
	p := &models.ReadingProgress{
		ID:     fields["id"],
		UserID: userID,
		BookID: bookID,
	}
	if v, ok := fields["current_page"]; ok {
		p.CurrentPage, _ = strconv.Atoi(v)
	}
	if v, ok := fields["total_pages"]; ok {
		p.TotalPages, _ = strconv.Atoi(v)
	}
	if v, ok := fields["progress"]; ok {
		p.Progress, _ = strconv.ParseFloat(v, 64)
	}
	if v, ok := fields["last_read_at"]; ok {
		p.LastReadAt, _ = time.Parse(time.RFC3339Nano, v)
	}
	if v, ok := fields["created_at"]; ok {
		p.CreatedAt, _ = time.Parse(time.RFC3339Nano, v)
	}
	if v, ok := fields["updated_at"]; ok {
		p.UpdatedAt, _ = time.Parse(time.RFC3339Nano, v)
	}
	return p
}

// Set stores a progress row (upsert semantics, mirrors the table row).
func (c *ProgressCache) Set(ctx context.Context, p *models.ReadingProgress) error {
	if c == nil || c.client == nil {
		return nil
	}
	key := progressKey(p.UserID, p.BookID)

	if err := c.client.HSet(ctx, key, progressFields(p)).Err(); err != nil {
		return err
	}
	return c.client.Expire(ctx, key, c.ttl).Err()
}

// Get returns the cached row or (nil, nil) on a miss.
func (c *ProgressCache) Get(ctx context.Context, userID string, bookID int64) (*models.ReadingProgress, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	key := progressKey(userID, bookID)

	fields, err := c.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}
	return progressFromFields(userID, bookID, fields), nil
}

// Invalidate drops the cached row, e.g. when the owning user is deleted.
func (c *ProgressCache) Invalidate(ctx context.Context, userID string, bookID int64) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, progressKey(userID, bookID)).Err()
}

// Close releases the underlying redis connection.
func (c *ProgressCache) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
