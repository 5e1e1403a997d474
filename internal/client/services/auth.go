// Package services contains application services for the GophGram client.
// They sit between the workflow engine and the remote Client, and keep the
// local session metadata in step with what the server handed out.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophgram/internal/auth/validate"
	"github.com/dmitrijs2005/gophgram/internal/auth/workflow"
	"github.com/dmitrijs2005/gophgram/internal/client/client"
	"github.com/dmitrijs2005/gophgram/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/gophgram/internal/common"
	"github.com/dmitrijs2005/gophgram/internal/cryptox"
	"github.com/dmitrijs2005/gophgram/internal/dbx"
	"github.com/dmitrijs2005/gophgram/internal/logging"
)

// AuthService creates accounts and signs users in and out. It satisfies
// workflow.AccountCreator and workflow.SessionEstablisher.
type AuthService struct {
	client client.Client
	db     *sql.DB
	logger logging.Logger
}

var (
	_ workflow.AccountCreator     = (*AuthService)(nil)
	_ workflow.SessionEstablisher = (*AuthService)(nil)
)

func NewAuthService(c client.Client, db *sql.DB, l logging.Logger) *AuthService {
	return &AuthService{client: c, db: db, logger: l.With("module", "auth")}
}

func (a *AuthService) getMetadataRepo() metadata.Repository {
	return metadata.NewSQLiteRepository(a.db)
}

// CreateAccount generates a fresh salt, derives the verifier from the
// password and registers the account. The password itself is never sent.
func (a *AuthService) CreateAccount(ctx context.Context, c validate.Credentials) (workflow.AccountHandle, error) {
	salt := common.GenerateRandByteArray(common.SaltSize)
	verifier := cryptox.VerifierFor(c.Password, salt)

	id, err := a.client.CreateAccount(ctx, c.Name, c.Username, c.Email, salt, verifier)
	if err != nil {
		return workflow.AccountHandle{}, fmt.Errorf("create account error: %w", err)
	}

	return workflow.AccountHandle{ID: id}, nil
}

// EstablishSession fetches the salt for email, proves knowledge of the
// password and stores the granted session locally.
func (a *AuthService) EstablishSession(ctx context.Context, email, password string) (workflow.SessionHandle, error) {
	salt, err := a.client.GetSalt(ctx, email)
	if err != nil {
		return workflow.SessionHandle{}, fmt.Errorf("get salt error: %w", err)
	}

	s, err := a.client.EstablishSession(ctx, email, cryptox.VerifierFor(password, salt))
	if err != nil {
		return workflow.SessionHandle{}, fmt.Errorf("establish session error: %w", err)
	}

	if err := a.saveSession(ctx, email, s); err != nil {
		return workflow.SessionHandle{}, fmt.Errorf("session saving error: %w", err)
	}

	a.logger.Debug(ctx, "session stored", "account_id", s.AccountID, "expires_at", s.ExpiresAt)
	return workflow.SessionHandle{AccountID: s.AccountID, ExpiresAt: s.ExpiresAt}, nil
}

// saveSession replaces the stored session in a single transaction, so a
// half-written session is never observed.
func (a *AuthService) saveSession(ctx context.Context, email string, s client.Session) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		values := map[string][]byte{
			metadata.KeyAccessToken: []byte(s.AccessToken),
			metadata.KeyAccountID:   []byte(s.AccountID),
			metadata.KeyEmail:       []byte(email),
			metadata.KeyExpiresAt:   []byte(s.ExpiresAt.UTC().Format(time.RFC3339Nano)),
		}
		for _, k := range metadata.SessionKeys {
			if err := repo.Set(ctx, k, values[k]); err != nil {
				return err
			}
		}
		return nil
	})
}

// SignOut revokes the stored session on the server and forgets it locally.
// The local copy is dropped even when the server cannot be reached or
// already considers the session gone.
func (a *AuthService) SignOut(ctx context.Context) error {
	repo := a.getMetadataRepo()

	token, err := repo.Get(ctx, metadata.KeyAccessToken)
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return nil
	case err != nil:
		return err
	}

	var revokeErr error
	if err := a.client.RevokeSession(ctx, string(token)); err != nil && !errors.Is(err, client.ErrUnauthorized) {
		a.logger.Warn(ctx, "revoke session failed", "error", err)
		revokeErr = fmt.Errorf("revoke session error: %w", err)
	}

	if err := repo.Delete(ctx, metadata.SessionKeys...); err != nil {
		return errors.Join(revokeErr, err)
	}
	return revokeErr
}

// Ping proxies a liveness check to the underlying client.
func (a *AuthService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *AuthService) Close() error {
	return a.client.Close()
}
