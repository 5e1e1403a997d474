package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophgram/internal/client/client"
	"github.com/dmitrijs2005/gophgram/internal/client/repositories/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionGate_CheckSession(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		token     string
		expiresAt string
		fc        *fakeClient
		want      bool
		wantErr   error
		wantCalls int
	}{
		{
			name:      "no token",
			fc:        &fakeClient{},
			want:      false,
			wantCalls: 0,
		},
		{
			name:      "locally expired",
			token:     "tok",
			expiresAt: now.Add(-time.Minute).Format(time.RFC3339Nano),
			fc:        &fakeClient{},
			want:      false,
			wantCalls: 0,
		},
		{
			name:      "unparsable expiry",
			token:     "tok",
			expiresAt: "yesterday",
			fc:        &fakeClient{},
			want:      false,
			wantCalls: 0,
		},
		{
			name:      "server confirms",
			token:     "tok",
			expiresAt: now.Add(time.Hour).Format(time.RFC3339Nano),
			fc:        &fakeClient{CheckRet: client.SessionInfo{Valid: true, AccountID: "acc-1"}},
			want:      true,
			wantCalls: 1,
		},
		{
			name:      "server rejects",
			token:     "tok",
			expiresAt: now.Add(time.Hour).Format(time.RFC3339Nano),
			fc:        &fakeClient{CheckRet: client.SessionInfo{Valid: false}},
			want:      false,
			wantCalls: 1,
		},
		{
			name:      "server unreachable",
			token:     "tok",
			fc:        &fakeClient{CheckErr: client.ErrUnavailable},
			want:      false,
			wantErr:   client.ErrUnavailable,
			wantCalls: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupDB(t)
			if tt.token != "" {
				insertMeta(t, db, metadata.KeyAccessToken, []byte(tt.token))
			}
			if tt.expiresAt != "" {
				insertMeta(t, db, metadata.KeyExpiresAt, []byte(tt.expiresAt))
			}

			g := NewSessionGate(tt.fc, db)
			g.now = func() time.Time { return now }

			ok, err := g.CheckSession(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, ok)
			assert.Equal(t, tt.wantCalls, tt.fc.CheckCalls)
			if tt.wantCalls > 0 {
				assert.Equal(t, tt.token, tt.fc.LastCheckToken)
			}
		})
	}
}

func TestSessionGate_AsksEveryTime(t *testing.T) {
	db := setupDB(t)
	insertMeta(t, db, metadata.KeyAccessToken, []byte("tok"))
	fc := &fakeClient{CheckRet: client.SessionInfo{Valid: true}}
	g := NewSessionGate(fc, db)

	for range 3 {
		ok, err := g.CheckSession(context.Background())
		require.NoError(t, err)
		assert.True(t, ok)
	}
	assert.Equal(t, 3, fc.CheckCalls)

	fc.CheckRet = client.SessionInfo{Valid: false}
	ok, err := g.CheckSession(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionGate_Whoami(t *testing.T) {
	db := setupDB(t)
	fc := &fakeClient{CheckRet: client.SessionInfo{Valid: true, AccountID: "acc-1", Username: "ann"}}
	g := NewSessionGate(fc, db)

	_, err := g.Whoami(context.Background())
	require.ErrorIs(t, err, ErrNoSession)

	insertMeta(t, db, metadata.KeyAccessToken, []byte("tok"))
	info, err := g.Whoami(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ann", info.Username)
}
