package sessions

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dmitrijs2005/gophgram/internal/common"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
		mr.Close()
	})
	return NewRedisStore(rdb), mr
}

func session(ttl time.Duration) Session {
	now := time.Now().UTC().Truncate(time.Second)
	return Session{ID: "s-1", AccountID: "a-1", CreatedAt: now, ExpiresAt: now.Add(ttl)}
}

func TestStores_Contract(t *testing.T) {
	redisStore, _ := newRedisStore(t)
	stores := map[string]Store{
		"memory": NewMemoryStore(),
		"redis":  redisStore,
	}
	for name, st := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			want := session(time.Hour)

			_, err := st.Get(ctx, want.ID)
			require.ErrorIs(t, err, common.ErrorNotFound)

			require.NoError(t, st.Save(ctx, want))

			got, err := st.Get(ctx, want.ID)
			require.NoError(t, err)
			assert.Equal(t, want.AccountID, got.AccountID)
			assert.True(t, want.ExpiresAt.Equal(got.ExpiresAt))

			require.NoError(t, st.Delete(ctx, want.ID))
			require.NoError(t, st.Delete(ctx, want.ID), "second delete is a no-op")

			_, err = st.Get(ctx, want.ID)
			require.ErrorIs(t, err, common.ErrorNotFound)
		})
	}
}

func TestRedisStore_KeyAndTTL(t *testing.T) {
	st, mr := newRedisStore(t)
	require.NoError(t, st.Save(context.Background(), session(time.Minute)))

	require.True(t, mr.Exists(KeyPrefix+"s-1"))
	ttl := mr.TTL(KeyPrefix + "s-1")
	assert.Greater(t, ttl, 50*time.Second)
	assert.LessOrEqual(t, ttl, time.Minute)

	mr.FastForward(2 * time.Minute)
	_, err := st.Get(context.Background(), "s-1")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestRedisStore_RejectsExpired(t *testing.T) {
	st, mr := newRedisStore(t)
	require.Error(t, st.Save(context.Background(), session(-time.Second)))
	assert.False(t, mr.Exists(KeyPrefix+"s-1"))
}

func TestRedisStore_Unavailable(t *testing.T) {
	st, mr := newRedisStore(t)
	mr.Close()

	_, err := st.Get(context.Background(), "s-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorNotFound)
}

func TestMemoryStore_Expiry(t *testing.T) {
	st := NewMemoryStore()
	now := time.Now()
	st.now = func() time.Time { return now }

	sess := session(time.Minute)
	sess.ExpiresAt = now.Add(time.Minute)
	require.NoError(t, st.Save(context.Background(), sess))

	_, err := st.Get(context.Background(), sess.ID)
	require.NoError(t, err)

	now = now.Add(time.Minute)
	_, err = st.Get(context.Background(), sess.ID)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}
