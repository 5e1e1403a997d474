package client

import (
	"context"
	"time"
)

// Session is what the backend hands out when a user signs in.
type Session struct {
	AccountID   string
	AccessToken string
	ExpiresAt   time.Time
}

// SessionInfo is the backend's answer about an access token.
type SessionInfo struct {
	Valid     bool
	AccountID string
	Username  string
}

type Client interface {
	Close() error
	CreateAccount(ctx context.Context, name, username, email string, salt, verifier []byte) (string, error)
	GetSalt(ctx context.Context, email string) ([]byte, error)
	EstablishSession(ctx context.Context, email string, verifier []byte) (Session, error)
	CheckSession(ctx context.Context, accessToken string) (SessionInfo, error)
	RevokeSession(ctx context.Context, accessToken string) error
	Ping(ctx context.Context) error
}
