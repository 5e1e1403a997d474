package accounts

import "time"

// Account is a registered user. Salt and Verifier come from the client's
// key derivation; the server never sees the password.
type Account struct {
	ID        string
	Name      string
	Username  string
	Email     string
	Salt      []byte
	Verifier  []byte
	CreatedAt time.Time
}
