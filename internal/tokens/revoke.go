package tokens

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedPrefix = "landing:preview:revoked:"

// Revocations is a Redis-backed list of revoked preview token ids. A nil
// *Revocations (or one without a client) revokes nothing.
type Revocations struct {
	client *redis.Client
}

func NewRevocations(c *redis.Client) *Revocations {
	return &Revocations{client: c}
}

func (r *Revocations) enabled() bool { return r != nil && r.client != nil }

// Revoke marks token id as revoked for ttl, which should cover the token's
// remaining lifetime. Without Redis it is a no-op and returns nil.
func (r *Revocations) Revoke(ctx context.Context, id string, ttl time.Duration) error {
	if !r.enabled() {
		return nil
	}
	if ttl <= 0 {
		// already expired, nothing to revoke
		return nil
	}
	return r.client.Set(ctx, revokedPrefix+id, "1", ttl).Err()
}

// IsRevoked reports whether token id was revoked. Without Redis it returns
// (false, nil).
func (r *Revocations) IsRevoked(ctx context.Context, id string) (bool, error) {
	if !r.enabled() || id == "" {
		return false, nil
	}
	n, err := r.client.Exists(ctx, revokedPrefix+id).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// RevokeToken verifies raw and revokes it until it expires.
func (r *Revocations) RevokeToken(ctx context.Context, secret, raw string) (*PreviewClaims, error) {
	claims, err := ParsePreviewToken(secret, raw)
	if err != nil {
		return nil, err
	}
	return claims, r.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
}
