// Package cryptox holds the key derivation used by the zero-knowledge
// signin scheme. The client derives a master key from the password and a
// per-account salt; the server only ever sees the verifier derived from it.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"github.com/dmitrijs2005/gophgram/internal/common"
	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. Changing them invalidates every stored verifier.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	KeySize      = 32
)

// DeriveMasterKey stretches password with salt using Argon2id.
func DeriveMasterKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argonTime, argonMemory, argonThreads, KeySize)
}

// MakeVerifier returns the value the server stores and compares against.
func MakeVerifier(masterKey []byte) []byte {
	sum := sha256.Sum256(masterKey)
	return sum[:]
}

// VerifierFor is DeriveMasterKey followed by MakeVerifier. The intermediate
// password bytes and master key are wiped before it returns.
func VerifierFor(password string, salt []byte) []byte {
	pw := []byte(password)
	defer common.WipeByteArray(pw)

	key := DeriveMasterKey(pw, salt)
	defer common.WipeByteArray(key)

	return MakeVerifier(key)
}

// Equal compares two verifiers in constant time.
func Equal(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
