package usecase

import (
	"context"
	"errors"
	"strings"

	"serviceos/internal/domain/entities"
	"serviceos/internal/usecase/interfaces"
)

var (
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidPassword = errors.New("invalid password")
)

// IAuthUseCase fronts the auth collaborator with input hygiene. The
// collaborator owns credential policy; only trivially-broken input is
// rejected before the round trip.

type IAuthUseCase interface {
	SignUp(ctx context.Context, email, password, companyName string) (entities.Session, error)
	SignIn(ctx context.Context, email, password string) (entities.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	ResetPassword(ctx context.Context, email string) error
	GetSession(ctx context.Context, accessToken string) (entities.Session, error)
	GetUser(ctx context.Context, accessToken string) (entities.AuthUser, error)
	GetProfile(ctx context.Context, accessToken, userID string) (entities.UserProfile, error)
	IsConfigured() bool
}

type AuthUseCase struct {
	provider interfaces.IAuthProvider
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(provider interfaces.IAuthProvider) *AuthUseCase {
	return &AuthUseCase{provider: provider}
}

func (u *AuthUseCase) SignUp(ctx context.Context, email, password, companyName string) (entities.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return entities.Session{}, ErrInvalidEmail
	}
	if password == "" {
		return entities.Session{}, ErrInvalidPassword
	}
	return u.provider.SignUp(ctx, email, password, strings.TrimSpace(companyName))
}

func (u *AuthUseCase) SignIn(ctx context.Context, email, password string) (entities.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return entities.Session{}, ErrInvalidEmail
	}
	if password == "" {
		return entities.Session{}, ErrInvalidPassword
	}
	return u.provider.SignIn(ctx, email, password)
}

func (u *AuthUseCase) SignOut(ctx context.Context, accessToken string) error {
	return u.provider.SignOut(ctx, accessToken)
}

func (u *AuthUseCase) ResetPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrInvalidEmail
	}
	return u.provider.ResetPassword(ctx, email)
}

func (u *AuthUseCase) GetSession(ctx context.Context, accessToken string) (entities.Session, error) {
	return u.provider.GetSession(ctx, accessToken)
}

func (u *AuthUseCase) GetUser(ctx context.Context, accessToken string) (entities.AuthUser, error) {
	return u.provider.GetUser(ctx, accessToken)
}

func (u *AuthUseCase) GetProfile(ctx context.Context, accessToken, userID string) (entities.UserProfile, error) {
	return u.provider.GetProfile(ctx, accessToken, userID)
}

func (u *AuthUseCase) IsConfigured() bool {
	return u.provider.IsConfigured()
}
