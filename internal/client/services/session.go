package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophgram/internal/auth/workflow"
	"github.com/dmitrijs2005/gophgram/internal/client/client"
	"github.com/dmitrijs2005/gophgram/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophgram/internal/common"
)

// ErrNoSession is returned by Whoami when nobody is signed in.
var ErrNoSession = errors.New("no session")

// SessionGate answers whether the locally stored session is still accepted
// by the server. It never caches the answer.
type SessionGate struct {
	client client.Client
	db     *sql.DB
	now    func() time.Time
}

var _ workflow.SessionGate = (*SessionGate)(nil)

func NewSessionGate(c client.Client, db *sql.DB) *SessionGate {
	return &SessionGate{client: c, db: db, now: time.Now}
}

// CheckSession reports false without a network call when no token is stored
// or the stored one has already expired.
func (g *SessionGate) CheckSession(ctx context.Context) (bool, error) {
	info, err := g.Whoami(ctx)
	if errors.Is(err, ErrNoSession) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.Valid, nil
}

// Whoami asks the server about the stored session.
func (g *SessionGate) Whoami(ctx context.Context) (client.SessionInfo, error) {
	token, ok, err := g.storedToken(ctx)
	if err != nil {
		return client.SessionInfo{}, err
	}
	if !ok {
		return client.SessionInfo{}, ErrNoSession
	}

	info, err := g.client.CheckSession(ctx, token)
	if err != nil {
		return client.SessionInfo{}, fmt.Errorf("check session error: %w", err)
	}
	if !info.Valid {
		return client.SessionInfo{}, ErrNoSession
	}
	return info, nil
}

func (g *SessionGate) storedToken(ctx context.Context) (string, bool, error) {
	repo := metadata.NewSQLiteRepository(g.db)

	token, err := repo.Get(ctx, metadata.KeyAccessToken)
	if errors.Is(err, common.ErrorNotFound) || (err == nil && len(token) == 0) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	raw, err := repo.Get(ctx, metadata.KeyExpiresAt)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return "", false, err
	}
	if err == nil {
		exp, perr := time.Parse(time.RFC3339Nano, string(raw))
		if perr != nil || !g.now().Before(exp) {
			return "", false, nil
		}
	}

	return string(token), true, nil
}
