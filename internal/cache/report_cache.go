package cache

import (
	"context"
	"errors"
)

// ReportCache holds serialized billing reports per owner so repeated
// forecast reads skip recomputation. Any mutation to an owner's records
// invalidates their entry.
type ReportCache interface {
	Get(ctx context.Context, ownerID string) ([]byte, error)

	Set(ctx context.Context, ownerID string, payload []byte) error

	Invalidate(ctx context.Context, ownerID string) error
}

var ErrCacheMiss = errors.New("report not cached")

// NoopCache disables caching; every read is a miss.
type NoopCache struct{}

func (NoopCache) Get(ctx context.Context, ownerID string) ([]byte, error) {
	return nil, ErrCacheMiss
}

func (NoopCache) Set(ctx context.Context, ownerID string, payload []byte) error {
	return nil
}

func (NoopCache) Invalidate(ctx context.Context, ownerID string) error {
	return nil
}
