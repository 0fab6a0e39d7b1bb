package security

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

// Denylist records logged-out access tokens in Redis until they would have
// expired anyway. The identity middleware consults it so that a token
// surrendered via logout stops resolving to an identity immediately. When
// no Redis client is available the denylist degrades to a no-op: logout
// then relies on the client discarding the token.
type Denylist struct {
	rdb *redis.Client
}

// NewDenylist wraps the given Redis client. A nil client is allowed.
func NewDenylist(rdb *redis.Client) *Denylist {
	return &Denylist{rdb: rdb}
}

// Revoke marks a raw token as logged out for the given remaining lifetime.
// Non-positive lifetimes are ignored since the token is already expired.
func (d *Denylist) Revoke(ctx context.Context, rawToken string, ttl time.Duration) error {
	if d.rdb == nil || ttl <= 0 {
		return nil
	}
	return d.rdb.SetEx(ctx, denyKey(rawToken), "1", ttl).Err()
}

// Revoked reports whether the raw token has been logged out. Redis errors
// are treated as "not revoked" so an outage cannot lock everyone out.
func (d *Denylist) Revoked(ctx context.Context, rawToken string) bool {
	if d.rdb == nil {
		return false
	}
	n, err := d.rdb.Exists(ctx, denyKey(rawToken)).Result()
	return err == nil && n > 0
}

// denyKey hashes the token so the denylist never stores usable credentials.
func denyKey(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))
	return "deny:" + hex.EncodeToString(sum[:])
}
