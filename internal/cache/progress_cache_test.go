package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Alireza01sjd/project-god-mode/internal/api/models"

	"github.com/stretchr/testify/assert"
)

func TestProgressKey(t *testing.T) {
	key := progressKey("11111111-1111-1111-1111-111111111111", 42)
	assert.Equal(t, "progress:user:11111111-1111-1111-1111-111111111111:book:42", key)
}

// Every field the table persists must survive the hash round trip, or a
// cache hit would serve a row that disagrees with the database.
func TestProgressFieldsRoundTrip(t *testing.T) {
	p := &models.ReadingProgress{
		ID:          "44444444-4444-4444-4444-444444444444",
		UserID:      "11111111-1111-1111-1111-111111111111",
		BookID:      42,
		CurrentPage: 120,
		TotalPages:  200,
		Progress:    60.00,
		LastReadAt:  time.Date(2026, 3, 4, 5, 6, 7, 891000000, time.UTC),
		CreatedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt:   time.Date(2026, 3, 4, 5, 6, 7, 891000000, time.UTC),
	}

	// redis hands HGETALL results back as strings
	stored := make(map[string]string)
	for k, v := range progressFields(p) {
		stored[k] = fmt.Sprint(v)
	}

	got := progressFromFields(p.UserID, p.BookID, stored)

	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, p.UserID, got.UserID)
	assert.Equal(t, p.BookID, got.BookID)
	assert.Equal(t, p.CurrentPage, got.CurrentPage)
	assert.Equal(t, p.TotalPages, got.TotalPages)
	assert.Equal(t, p.Progress, got.Progress)
	assert.True(t, got.LastReadAt.Equal(p.LastReadAt))
	assert.True(t, got.CreatedAt.Equal(p.CreatedAt))
	assert.True(t, got.UpdatedAt.Equal(p.UpdatedAt))
}

func TestNoopCache(t *testing.T) {
	c := NewNoopProgressCache()
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, &models.ReadingProgress{UserID: "u", BookID: 1}))

	got, err := c.Get(ctx, "u", 1)
	assert.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, c.Invalidate(ctx, "u", 1))
	assert.NoError(t, c.Close())
}

func TestNilCache(t *testing.T) {
	var c *ProgressCache
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, &models.ReadingProgress{}))
	got, err := c.Get(ctx, "u", 1)
	assert.NoError(t, err)
	assert.Nil(t, got)
}
