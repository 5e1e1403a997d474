package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/dmitrijs2005/gophgram/internal/logging"
	"github.com/dmitrijs2005/gophgram/internal/server/accounts"
	"github.com/dmitrijs2005/gophgram/internal/server/migrations"
	"github.com/dmitrijs2005/gophgram/internal/server/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_Memory(t *testing.T) {
	s, err := Open(context.Background(), "", "", logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	assert.IsType(t, &accounts.MemoryRepository{}, s.Accounts)
	assert.IsType(t, &sessions.MemoryStore{}, s.Sessions)
}

func TestOpen_Redis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	s, err := Open(context.Background(), "", "redis://"+mr.Addr()+"/0", logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	assert.IsType(t, &sessions.RedisStore{}, s.Sessions)
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open(context.Background(), "", "not a url", logging.Discard())
	assert.Error(t, err)

	_, err = Open(context.Background(), "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1", "", logging.Discard())
	assert.Error(t, err)
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrations.Migrations.ReadDir(".")
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "00001_create_accounts.sql", entries[0].Name())
}
