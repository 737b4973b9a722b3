package interfaces

import (
	"context"

	"serviceos/internal/domain/entities"
)

// IAuthProvider abstracts the auth/profile collaborator (GoTrue +
// profiles table on the remote backend; a not-configured stub locally).
//
// Conventions:
//   - GetUser/GetSession with an invalid or empty token return zero
//     values, not errors, when the collaborator simply has no session.
//   - GetProfile returns a zero-ID profile when no row exists; profile
//     provisioning happens out-of-band on signup and may lag.
//   - IsConfigured reports whether a real collaborator is wired in.

type IAuthProvider interface {
	SignUp(ctx context.Context, email, password, companyName string) (entities.Session, error)
	SignIn(ctx context.Context, email, password string) (entities.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	ResetPassword(ctx context.Context, email string) error
	GetSession(ctx context.Context, accessToken string) (entities.Session, error)
	GetUser(ctx context.Context, accessToken string) (entities.AuthUser, error)
	GetProfile(ctx context.Context, accessToken, userID string) (entities.UserProfile, error)
	IsConfigured() bool
}
