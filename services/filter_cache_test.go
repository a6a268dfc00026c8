package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"notesvc/model"
)

func setupTestRedis(t *testing.T, ttl time.Duration) *FilterCache {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis integration test in short mode")
	}
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	cache, err := NewFilterCache(ctx, fmt.Sprintf("redis://%s/0", endpoint), ttl)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func TestFilterCache(t *testing.T) {
	cache := setupTestRedis(t, time.Minute)
	ctx := context.Background()

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sf := &model.SavedFilter{
		ID:        7,
		Name:      "work",
		QueryMode: "trgm",
		TagsAll:   []string{"work"},
		TagsMatch: "exact",
		From:      &from,
	}

	got, err := cache.GetFilter(ctx, sf.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "miss before set")

	require.NoError(t, cache.SetFilter(ctx, sf))

	got, err = cache.GetFilter(ctx, sf.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "work", got.Name)
	assert.Equal(t, []string{"work"}, got.TagsAll)
	assert.True(t, from.Equal(*got.From))

	require.NoError(t, cache.InvalidateFilter(ctx, sf.ID))
	got, err = cache.GetFilter(ctx, sf.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.Error(t, cache.SetFilter(ctx, &model.SavedFilter{Name: "no id"}))
}

func TestNewFilterCacheRejectsBadURL(t *testing.T) {
	_, err := NewFilterCache(context.Background(), "not a url", time.Minute)
	assert.Error(t, err)
}
