// Package auth issues and parses the signed access tokens handed out by
// EstablishSession.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophgram/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the account as subject and the server-side session as the
// token id, so a token can be revoked by deleting its session.
type Claims struct {
	jwt.RegisteredClaims
}

func (c Claims) AccountID() string { return c.Subject }
func (c Claims) SessionID() string { return c.ID }

// IssueToken signs an HS256 token valid until now+validity.
func IssueToken(accountID, sessionID string, secret []byte, validity time.Duration, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(validity)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID,
			ID:        sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ParseToken verifies the signature and expiry of token. It returns
// common.ErrTokenExpired for expired tokens and common.ErrInvalidToken for
// anything else that fails verification.
func ParseToken(token string, secret []byte) (Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, common.ErrTokenExpired
		}
		return Claims{}, fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" || claims.ID == "" {
		return Claims{}, common.ErrInvalidToken
	}
	return claims, nil
}
