package tokens

import (
	"context"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestRevocations_RevokeAndExpire(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	rev := NewRevocations(redis.NewClient(&redis.Options{Addr: m.Addr()}))
	ctx := context.Background()

	require.NoError(t, rev.Revoke(ctx, "token-1", 2*time.Second))
	ok, err := rev.IsRevoked(ctx, "token-1")
	require.NoError(t, err)
	require.True(t, ok)

	// advance past TTL
	m.FastForward(3 * time.Second)
	ok, err = rev.IsRevoked(ctx, "token-1")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRevocations_RevokeToken(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	rev := NewRevocations(redis.NewClient(&redis.Options{Addr: m.Addr()}))
	tok, err := GeneratePreviewToken(secret, "editor", 10*time.Minute)
	require.NoError(t, err)

	claims, err := rev.RevokeToken(context.Background(), secret, tok)
	require.NoError(t, err)
	require.NotEmpty(t, claims.ID)

	ok, err := rev.IsRevoked(context.Background(), claims.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.InDelta(t, (10 * time.Minute).Seconds(), m.TTL(revokedPrefix+claims.ID).Seconds(), 5)

	_, err = rev.RevokeToken(context.Background(), secret, "garbage")
	require.Error(t, err)
}

// Without Redis revocation is a no-op
func TestRevocations_NoClient_Noop(t *testing.T) {
	ctx := context.Background()
	for _, rev := range []*Revocations{nil, NewRevocations(nil)} {
		require.NoError(t, rev.Revoke(ctx, "no-client-token", time.Second))
		ok, err := rev.IsRevoked(ctx, "no-client-token")
		require.NoError(t, err)
		require.False(t, ok)
	}
}
