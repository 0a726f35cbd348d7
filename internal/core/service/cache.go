package service

import (
	"context"
	"time"
)

// Cache abstracts the read-through cache (Redis). Lookups report a miss with
// found=false; infrastructure errors are returned separately so services can
// degrade to the store instead of failing the request.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (found bool, err error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

const cacheTTL = 5 * time.Minute
