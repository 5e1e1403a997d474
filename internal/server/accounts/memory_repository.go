package accounts

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophgram/internal/common"
	"github.com/google/uuid"
)

// MemoryRepository keeps accounts in process memory. It backs the server when
// no database DSN is configured.
type MemoryRepository struct {
	mu   sync.RWMutex
	byID map[string]Account
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]Account)}
}

func (r *MemoryRepository) Create(_ context.Context, a *Account) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if existing.Email == a.Email || existing.Username == a.Username {
			return nil, common.ErrorAlreadyExists
		}
	}

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.CreatedAt = time.Now().UTC()
	r.byID[a.ID] = *a

	return a, nil
}

func (r *MemoryRepository) GetByEmail(_ context.Context, email string) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.byID {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &a, nil
}
