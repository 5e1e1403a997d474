package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/gophgram/internal/client/client"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	repos, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "gophgram.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	return repos.DB
}

func insertMeta(t *testing.T, db *sql.DB, k string, v []byte) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO metadata(key, value) VALUES(?, ?)`, k, v)
	require.NoError(t, err)
}

func getMeta(t *testing.T, db *sql.DB, k string) ([]byte, bool) {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM metadata WHERE key = ?`, k).Scan(&v)
	if err == sql.ErrNoRows {
		return nil, false
	}
	require.NoError(t, err)
	return v, true
}

// fakeClient implements client.Client for unit tests.
type fakeClient struct {
	CreateRet string
	CreateErr error

	GetSaltRet []byte
	GetSaltErr error

	EstablishRet client.Session
	EstablishErr error

	CheckRet client.SessionInfo
	CheckErr error

	RevokeErr error
	PingErr   error
	CloseErr  error

	LastCreate         []string
	LastCreateSalt     []byte
	LastCreateVerifier []byte
	LastGetSaltEmail   string
	LastEstablishEmail string
	LastVerifier       []byte
	LastCheckToken     string
	LastRevokeToken    string

	CheckCalls  int
	RevokeCalls int
}

func (f *fakeClient) Close() error { return f.CloseErr }

func (f *fakeClient) CreateAccount(_ context.Context, name, username, email string, salt, verifier []byte) (string, error) {
	f.LastCreate = []string{name, username, email}
	f.LastCreateSalt = append([]byte(nil), salt...)
	f.LastCreateVerifier = append([]byte(nil), verifier...)
	return f.CreateRet, f.CreateErr
}

func (f *fakeClient) GetSalt(_ context.Context, email string) ([]byte, error) {
	f.LastGetSaltEmail = email
	return append([]byte(nil), f.GetSaltRet...), f.GetSaltErr
}

func (f *fakeClient) EstablishSession(_ context.Context, email string, verifier []byte) (client.Session, error) {
	f.LastEstablishEmail = email
	f.LastVerifier = append([]byte(nil), verifier...)
	return f.EstablishRet, f.EstablishErr
}

func (f *fakeClient) CheckSession(_ context.Context, token string) (client.SessionInfo, error) {
	f.CheckCalls++
	f.LastCheckToken = token
	return f.CheckRet, f.CheckErr
}

func (f *fakeClient) RevokeSession(_ context.Context, token string) error {
	f.RevokeCalls++
	f.LastRevokeToken = token
	return f.RevokeErr
}

func (f *fakeClient) Ping(context.Context) error { return f.PingErr }
