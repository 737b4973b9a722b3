package usecase

import (
	"context"
	"errors"
	"testing"

	"serviceos/internal/domain/entities"
	mock_interfaces "serviceos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuthUseCase_SignIn(t *testing.T) {
	t.Run("empty email", func(t *testing.T) {
		uc := NewAuthUseCase(nil)
		_, err := uc.SignIn(context.Background(), "   ", "secret")
		if !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("empty password", func(t *testing.T) {
		uc := NewAuthUseCase(nil)
		_, err := uc.SignIn(context.Background(), "a@b.com", "")
		if !errors.Is(err, ErrInvalidPassword) {
			t.Fatalf("expected ErrInvalidPassword, got %v", err)
		}
	})

	t.Run("trims email before delegating", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIAuthProvider(ctrl)
		uc := NewAuthUseCase(provider)

		provider.EXPECT().SignIn(gomock.Any(), "a@b.com", "secret").
			Return(entities.Session{AccessToken: "tok"}, nil)

		session, err := uc.SignIn(context.Background(), "  a@b.com  ", "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if session.AccessToken != "tok" {
			t.Fatalf("unexpected session: %+v", session)
		}
	})
}

func TestAuthUseCase_SignUp(t *testing.T) {
	t.Run("email without at sign", func(t *testing.T) {
		uc := NewAuthUseCase(nil)
		_, err := uc.SignUp(context.Background(), "not-an-email", "secret", "Oficina")
		if !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("passes trimmed company name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		provider := mock_interfaces.NewMockIAuthProvider(ctrl)
		uc := NewAuthUseCase(provider)

		provider.EXPECT().SignUp(gomock.Any(), "a@b.com", "secret", "Oficina da Ana").
			Return(entities.Session{}, nil)

		if _, err := uc.SignUp(context.Background(), "a@b.com", "secret", "  Oficina da Ana "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAuthUseCase_ResetPassword(t *testing.T) {
	uc := NewAuthUseCase(nil)
	if err := uc.ResetPassword(context.Background(), ""); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}
