package accounts

import "context"

// Repository persists accounts. Lookups of a missing account return
// common.ErrorNotFound; Create returns common.ErrorAlreadyExists when the
// email or username is taken.
type Repository interface {
	Create(ctx context.Context, a *Account) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
}
