package sessions

import (
	"context"
	"testing"
	"time"

	mr "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestRedisRepository_CreateGetDelete(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	repo := NewRedisRepository(client, "session:")
	ctx := context.Background()

	s := &Session{
		RefreshToken: "refresh-abc",
		OperatorID:   "op-1",
		ExpiresAt:    time.Now().UTC().Add(time.Hour),
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, s))

	got, err := repo.GetByRefresh(ctx, "refresh-abc")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "op-1", got.OperatorID)

	// unknown token -> nil, nil
	missing, err := repo.GetByRefresh(ctx, "nope")
	require.NoError(t, err)
	require.Nil(t, missing)

	require.NoError(t, repo.DeleteByRefresh(ctx, "refresh-abc"))
	gone, err := repo.GetByRefresh(ctx, "refresh-abc")
	require.NoError(t, err)
	require.Nil(t, gone)
}

func TestRedisRepository_TTLExpiry(t *testing.T) {
	m, err := mr.Run()
	require.NoError(t, err)
	defer m.Close()

	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	repo := NewRedisRepository(client, "")
	ctx := context.Background()

	s := &Session{
		RefreshToken: "short-lived",
		OperatorID:   "op-2",
		ExpiresAt:    time.Now().UTC().Add(2 * time.Second),
	}
	require.NoError(t, repo.Create(ctx, s))

	m.FastForward(3 * time.Second)

	got, err := repo.GetByRefresh(ctx, "short-lived")
	require.NoError(t, err)
	require.Nil(t, got)
}
