package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stpnv0/EventHub/internal/domain"
)

const overviewKey = "eventhub:reports:overview"

// ReportCache keeps the reporting overview in redis for a short TTL.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{client: client, ttl: ttl}
}

// NewClient connects to redis. An empty addr disables caching and returns nil.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	if addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

func (c *ReportCache) GetOverview(ctx context.Context) (*domain.Overview, bool, error) {
	data, err := c.client.Get(ctx, overviewKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get overview: %w", err)
	}

	var o domain.Overview
	if err = json.Unmarshal(data, &o); err != nil {
		return nil, false, fmt.Errorf("decode overview: %w", err)
	}

	return &o, true, nil
}

func (c *ReportCache) SetOverview(ctx context.Context, o *domain.Overview) error {
	data, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("encode overview: %w", err)
	}
	if err = c.client.Set(ctx, overviewKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set overview: %w", err)
	}
	return nil
}

func (c *ReportCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, overviewKey).Err(); err != nil {
		return fmt.Errorf("invalidate overview: %w", err)
	}
	return nil
}
