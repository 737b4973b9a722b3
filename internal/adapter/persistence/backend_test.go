package persistence

import (
	"context"
	"path/filepath"
	"testing"

	"serviceos/internal/adapter/persistence/localstore"
	"serviceos/internal/adapter/persistence/supabase"
	"serviceos/internal/infrastructure/config"
)

func TestNewBackend_Selection(t *testing.T) {
	cases := []struct {
		name       string
		url        string
		key        string
		wantRemote bool
	}{
		{name: "full remote config", url: "https://abc.supabase.co", key: "sb_publishable_xyz", wantRemote: true},
		{name: "missing url", url: "", key: "sb_publishable_xyz", wantRemote: false},
		{name: "missing key", url: "https://abc.supabase.co", key: "", wantRemote: false},
		{name: "nothing configured", url: "", key: "", wantRemote: false},
		{name: "placeholder url", url: "https://COLE_SUA_URL.supabase.co", key: "sb_publishable_xyz", wantRemote: false},
		{name: "placeholder key", url: "https://abc.supabase.co", key: "COLE_SUA_CHAVE_AQUI", wantRemote: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &config.Config{
				SupabaseURL:     tc.url,
				SupabaseAnonKey: tc.key,
				LocalDBPath:     filepath.Join(t.TempDir(), "orders.db"),
			}

			b, err := NewBackend(cfg)
			if err != nil {
				t.Fatalf("NewBackend failed: %v", err)
			}
			defer b.Close()

			if b.Remote != tc.wantRemote {
				t.Fatalf("Remote = %v, expected %v", b.Remote, tc.wantRemote)
			}
			if tc.wantRemote {
				if _, ok := b.Orders.(*supabase.OrderStore); !ok {
					t.Fatalf("expected supabase order store, got %T", b.Orders)
				}
				if !b.Auth.IsConfigured() {
					t.Fatalf("remote auth should report configured")
				}
			} else {
				if _, ok := b.Orders.(*localstore.Store); !ok {
					t.Fatalf("expected local store, got %T", b.Orders)
				}
				if b.Auth.IsConfigured() {
					t.Fatalf("local auth stub should report not configured")
				}
			}
		})
	}
}

func TestNoAuth_CredentialOpsFail(t *testing.T) {
	b, err := NewBackend(&config.Config{LocalDBPath: filepath.Join(t.TempDir(), "orders.db")})
	if err != nil {
		t.Fatalf("NewBackend failed: %v", err)
	}
	defer b.Close()

	ctx := context.Background()

	if _, err := b.Auth.SignIn(ctx, "a@b.c", "secret"); err != ErrNotConfigured {
		t.Fatalf("SignIn err = %v, expected ErrNotConfigured", err)
	}
	if _, err := b.Auth.SignUp(ctx, "a@b.c", "secret", ""); err != ErrNotConfigured {
		t.Fatalf("SignUp err = %v, expected ErrNotConfigured", err)
	}
	if err := b.Auth.ResetPassword(ctx, "a@b.c"); err != ErrNotConfigured {
		t.Fatalf("ResetPassword err = %v, expected ErrNotConfigured", err)
	}

	user, err := b.Auth.GetUser(ctx, "whatever")
	if err != nil || user.ID != "" {
		t.Fatalf("GetUser = (%+v, %v), expected no principal and no error", user, err)
	}
	if err := b.Auth.SignOut(ctx, "whatever"); err != nil {
		t.Fatalf("SignOut should be a no-op, got %v", err)
	}
}
