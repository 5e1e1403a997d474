package accounts

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophgram/internal/auth/validate"
	"github.com/dmitrijs2005/gophgram/internal/common"
	"github.com/dmitrijs2005/gophgram/internal/cryptox"
	"github.com/dmitrijs2005/gophgram/internal/logging"
	"github.com/dmitrijs2005/gophgram/internal/server/auth"
	"github.com/dmitrijs2005/gophgram/internal/server/sessions"
	"github.com/google/uuid"
)

// NewAccount is the signup payload as it arrives from the client.
type NewAccount struct {
	Name     string
	Username string
	Email    string
	Salt     []byte
	Verifier []byte
}

// Grant is an established session as returned to the client.
type Grant struct {
	AccountID   string
	AccessToken string
	ExpiresAt   time.Time
}

type Service struct {
	repo      Repository
	sessions  sessions.Store
	secret    []byte
	validity  time.Duration
	validator validate.Validator
	logger    logging.Logger
	now       func() time.Time
}

func NewService(repo Repository, store sessions.Store, secret string, validity time.Duration, l logging.Logger) *Service {
	return &Service{
		repo:      repo,
		sessions:  store,
		secret:    []byte(secret),
		validity:  validity,
		validator: validate.Account(),
		logger:    l.With("module", "accounts"),
		now:       time.Now,
	}
}

// CreateAccount validates the profile fields with the same rules the client
// applies and stores the account.
func (s *Service) CreateAccount(ctx context.Context, in NewAccount) (*Account, error) {
	res := s.validator.Validate(validate.Credentials{Name: in.Name, Username: in.Username, Email: in.Email})
	if !res.OK() {
		for _, f := range s.validator.Fields() {
			if msg := res.Error(f); msg != "" {
				return nil, fmt.Errorf("%w: %s", common.ErrorValidation, msg)
			}
		}
	}
	if len(in.Salt) == 0 || len(in.Verifier) != sha256.Size {
		return nil, fmt.Errorf("%w: malformed key material", common.ErrorValidation)
	}

	a, err := s.repo.Create(ctx, &Account{
		Name:     in.Name,
		Username: in.Username,
		Email:    in.Email,
		Salt:     in.Salt,
		Verifier: in.Verifier,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.logger.Info(ctx, "account created", "account_id", a.ID)
	return a, nil
}

// GetSalt returns the salt of the account registered under email. Unknown
// emails get a stable decoy salt so the answer does not reveal whether the
// account exists.
func (s *Service) GetSalt(ctx context.Context, email string) ([]byte, error) {
	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return s.decoySalt(email), nil
		}
		return nil, fmt.Errorf("get salt: %w", err)
	}
	return a.Salt, nil
}

func (s *Service) decoySalt(email string) []byte {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte("salt:" + email))
	return mac.Sum(nil)[:common.SaltSize]
}

// EstablishSession checks the verifier and opens a session. Unknown accounts
// and wrong verifiers both return common.ErrorUnauthorized.
func (s *Service) EstablishSession(ctx context.Context, email string, verifier []byte) (*Grant, error) {
	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("establish session: %w", err)
	}

	if !cryptox.Equal(a.Verifier, verifier) {
		return nil, common.ErrorUnauthorized
	}

	now := s.now()
	sess := sessions.Session{
		ID:        uuid.NewString(),
		AccountID: a.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.validity),
	}

	token, expiresAt, err := auth.IssueToken(a.ID, sess.ID, s.secret, s.validity, now)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.logger.Info(ctx, "session established", "account_id", a.ID)
	return &Grant{AccountID: a.ID, AccessToken: token, ExpiresAt: expiresAt}, nil
}

// CheckSession resolves token to its account. Tokens that fail verification,
// name a revoked session or belong to someone else return an error wrapping
// common.ErrorUnauthorized.
func (s *Service) CheckSession(ctx context.Context, token string) (*Account, error) {
	sess, err := s.session(ctx, token)
	if err != nil {
		return nil, err
	}

	a, err := s.repo.GetByID(ctx, sess.AccountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("check session: %w", err)
	}
	return a, nil
}

// RevokeSession ends the session named by token.
func (s *Service) RevokeSession(ctx context.Context, token string) error {
	sess, err := s.session(ctx, token)
	if err != nil {
		return err
	}
	if err := s.sessions.Delete(ctx, sess.ID); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	s.logger.Info(ctx, "session revoked", "account_id", sess.AccountID)
	return nil
}

func (s *Service) session(ctx context.Context, token string) (sessions.Session, error) {
	claims, err := auth.ParseToken(token, s.secret)
	if err != nil {
		return sessions.Session{}, fmt.Errorf("%w: %w", common.ErrorUnauthorized, err)
	}

	sess, err := s.sessions.Get(ctx, claims.SessionID())
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return sessions.Session{}, fmt.Errorf("%w: %w", common.ErrorUnauthorized, common.ErrSessionRevoked)
		}
		return sessions.Session{}, fmt.Errorf("load session: %w", err)
	}
	if sess.AccountID != claims.AccountID() {
		return sessions.Session{}, common.ErrorUnauthorized
	}
	return sess, nil
}
