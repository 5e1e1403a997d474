// Package metadata persists small key/value facts on the client, such as the
// current access token and the signed-in account.
package metadata

import (
	"context"
)

// Well-known keys.
const (
	KeyAccessToken = "access_token"
	KeyAccountID   = "account_id"
	KeyEmail       = "email"
	KeyExpiresAt   = "expires_at"
)

// SessionKeys lists every key that belongs to the signed-in session.
var SessionKeys = []string{KeyAccessToken, KeyAccountID, KeyEmail, KeyExpiresAt}

type Repository interface {
	// Get returns common.ErrorNotFound for an absent key.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
}
