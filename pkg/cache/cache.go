package cache

import (
	"context"
	"time"
)

// Service is the cache used by the catalog read path. Implementations are
// best-effort: a miss and a backend failure look the same to callers.
type Service interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Invalidate(ctx context.Context, key string)
}
