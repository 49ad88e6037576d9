package memory

import (
	"sync"

	"rentalhub/internal/domain/auth"
	"rentalhub/internal/infra/storage/local"
)

// CredentialsRepository holds the single admin pair. Updates persist
// immediately to the auth bucket.
type CredentialsRepository struct {
	mu    sync.RWMutex
	store *local.Store
	creds auth.Credentials
}

func NewCredentialsRepository(store *local.Store) *CredentialsRepository {
	repo := &CredentialsRepository{
		store: store,
		creds: auth.DefaultCredentials(),
	}
	if store != nil {
		if saved, ok := store.LoadCredentials(); ok {
			repo.creds = saved
		}
	}
	return repo
}

func (r *CredentialsRepository) Current() auth.Credentials {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.creds
}

// Update persists the new pair and adopts it only on success.
func (r *CredentialsRepository) Update(creds auth.Credentials) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.store != nil {
		if err := r.store.SaveCredentials(creds); err != nil {
			return err
		}
	}
	r.creds = creds
	return nil
}
