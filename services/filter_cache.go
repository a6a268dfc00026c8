package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"notesvc/model"
)

const filterKeyPrefix = "saved_filter:"

// FilterCache keeps saved filters in redis so list requests that reference
// a filter skip the lookup query.
type FilterCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFilterCache connects to redisURL and checks the connection.
func NewFilterCache(ctx context.Context, redisURL string, ttl time.Duration) (*FilterCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &FilterCache{client: client, ttl: ttl}, nil
}

func filterKey(id int64) string {
	return filterKeyPrefix + strconv.FormatInt(id, 10)
}

// GetFilter returns the cached filter, or nil on a miss.
func (fc *FilterCache) GetFilter(ctx context.Context, id int64) (*model.SavedFilter, error) {
	data, err := fc.client.Get(ctx, filterKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get saved filter from cache: %w", err)
	}

	var sf model.SavedFilter
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("failed to unmarshal saved filter: %w", err)
	}
	return &sf, nil
}

func (fc *FilterCache) SetFilter(ctx context.Context, sf *model.SavedFilter) error {
	if sf == nil || sf.ID == 0 {
		return errors.New("cannot cache a saved filter without id")
	}
	data, err := json.Marshal(sf)
	if err != nil {
		return fmt.Errorf("failed to marshal saved filter: %w", err)
	}
	if err := fc.client.Set(ctx, filterKey(sf.ID), data, fc.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache saved filter: %w", err)
	}
	return nil
}

func (fc *FilterCache) InvalidateFilter(ctx context.Context, id int64) error {
	if err := fc.client.Del(ctx, filterKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete saved filter from cache: %w", err)
	}
	return nil
}

func (fc *FilterCache) Close() error {
	return fc.client.Close()
}
