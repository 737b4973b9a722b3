// Package persistence selects the storage backend at process start:
// the hosted Supabase collaborator when its configuration is present
// and real, otherwise the embedded local store. The choice is static
// for the process lifetime; there is no runtime fallback.
package persistence

import (
	"context"
	"errors"
	"log"

	"serviceos/internal/adapter/persistence/localstore"
	"serviceos/internal/adapter/persistence/supabase"
	"serviceos/internal/domain/entities"
	"serviceos/internal/infrastructure/config"
	"serviceos/internal/usecase/interfaces"
)

// ErrNotConfigured is returned by auth operations when no remote
// collaborator is wired in (local mode has no accounts).
var ErrNotConfigured = errors.New("auth backend not configured")

// Backend bundles the selected adapter pair. Constructed once in the
// composition root and passed down; no package-level instance exists.
type Backend struct {
	Orders interfaces.IOrderStore
	Auth   interfaces.IAuthProvider

	// Remote reports which adapter was selected.
	Remote bool

	local *localstore.Store
}

func NewBackend(cfg *config.Config) (*Backend, error) {
	if cfg.RemoteConfigured() {
		client := supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
		log.Printf("[persistence] using supabase backend")
		return &Backend{
			Orders: supabase.NewOrderStore(client),
			Auth:   supabase.NewAuthClient(client),
			Remote: true,
		}, nil
	}

	store, err := localstore.New(cfg.LocalDBPath)
	if err != nil {
		return nil, err
	}
	log.Printf("[persistence] using local backend path=%s", cfg.LocalDBPath)
	return &Backend{
		Orders: store,
		Auth:   noAuth{},
		Remote: false,
		local:  store,
	}, nil
}

// Close releases backend resources (the local store's database handle).
func (b *Backend) Close() error {
	if b.local != nil {
		return b.local.Close()
	}
	return nil
}

// noAuth mirrors the original client's behavior without a collaborator:
// session reads answer "nobody", credential operations fail loudly.
type noAuth struct{}

var _ interfaces.IAuthProvider = noAuth{}

func (noAuth) SignUp(context.Context, string, string, string) (entities.Session, error) {
	return entities.Session{}, ErrNotConfigured
}

func (noAuth) SignIn(context.Context, string, string) (entities.Session, error) {
	return entities.Session{}, ErrNotConfigured
}

func (noAuth) SignOut(context.Context, string) error {
	return nil
}

func (noAuth) ResetPassword(context.Context, string) error {
	return ErrNotConfigured
}

func (noAuth) GetSession(context.Context, string) (entities.Session, error) {
	return entities.Session{}, nil
}

func (noAuth) GetUser(context.Context, string) (entities.AuthUser, error) {
	return entities.AuthUser{}, nil
}

func (noAuth) GetProfile(context.Context, string, string) (entities.UserProfile, error) {
	return entities.UserProfile{}, nil
}

func (noAuth) IsConfigured() bool {
	return false
}
