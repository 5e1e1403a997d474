package auth

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/gophgram/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	now := time.Now()

	tok, exp, err := IssueToken("acc-1", "sess-1", secret, time.Hour, now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), exp)

	claims, err := ParseToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", claims.AccountID())
	assert.Equal(t, "sess-1", claims.SessionID())
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	tok, _, err := IssueToken("acc-1", "sess-1", []byte("s"), time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = ParseToken(tok, []byte("s"))
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestParseToken_Invalid(t *testing.T) {
	t.Parallel()

	good, _, err := IssueToken("acc-1", "sess-1", []byte("right"), time.Hour, time.Now())
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "acc-1", ID: "sess-1"}})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noSession, _, err := IssueToken("acc-1", "", []byte("right"), time.Hour, time.Now())
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"wrong secret", good, "wrong"},
		{"garbage", "not-a-jwt", "right"},
		{"alg none", unsigned, "right"},
		{"missing session id", noSession, "right"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.token, []byte(tt.secret))
			assert.ErrorIs(t, err, common.ErrInvalidToken)
		})
	}
}
