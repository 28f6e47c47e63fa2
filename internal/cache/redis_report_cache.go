package cache

import (
	"context"
	"time"

	"github.com/redis/rueidis"
)

type RedisReportCache struct {
	client rueidis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisReportCache(client rueidis.Client, prefix string, ttl time.Duration) *RedisReportCache {
	return &RedisReportCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (r *RedisReportCache) Get(ctx context.Context, ownerID string) ([]byte, error) {
	cmd := r.client.B().Get().Key(r.key(ownerID)).Build()
	result := r.client.Do(ctx, cmd)

	if err := result.Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	return result.AsBytes()
}

func (r *RedisReportCache) Set(ctx context.Context, ownerID string, payload []byte) error {
	cmd := r.client.B().Set().Key(r.key(ownerID)).Value(string(payload)).Ex(r.ttl).Build()
	return r.client.Do(ctx, cmd).Error()
}

func (r *RedisReportCache) Invalidate(ctx context.Context, ownerID string) error {
	cmd := r.client.B().Del().Key(r.key(ownerID)).Build()
	return r.client.Do(ctx, cmd).Error()
}

func (r *RedisReportCache) key(ownerID string) string {
	return r.prefix + ":" + ownerID
}
