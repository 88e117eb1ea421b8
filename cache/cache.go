// Package cache holds the process-local read cache for list views. Mutating
// handlers must invalidate the affected keys before responding so a
// subsequent read reflects the server's state.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Cache keys per entity type.
const (
	CausesKey    = "causes"
	DonationsKey = "donations"
)

// UserDonationsKey returns the cache key for one account's donation list.
func UserDonationsKey(userID uint) string {
	return fmt.Sprintf("donations:user:%d", userID)
}

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Cache is the invalidation interface handlers call. Get unmarshals the
// cached value into target.
type Cache interface {
	Get(ctx context.Context, key string, target interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
