// Package sessions stores the server side of established sessions. A session
// lives until it expires or is revoked; the access token only names it.
package sessions

import (
	"context"
	"time"
)

type Session struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store persists sessions. Get returns common.ErrorNotFound for sessions that
// never existed, expired or were deleted. Delete of a missing session is not
// an error.
type Store interface {
	Save(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
}
