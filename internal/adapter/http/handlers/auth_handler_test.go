package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"serviceos/internal/adapter/http/handlers/mocks"
	"serviceos/internal/adapter/persistence"
	"serviceos/internal/adapter/persistence/supabase"
	"serviceos/internal/domain/entities"
	"serviceos/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_SignIn(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/signin", h.SignIn)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/signin", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("local mode answers 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/signin", h.SignIn)

		uc.EXPECT().SignIn(gomock.Any(), "a@b.com", "secret").Return(entities.Session{}, persistence.ErrNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/signin", bytes.NewBufferString(`{"email":"a@b.com","password":"secret"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "BACKEND_NOT_CONFIGURED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("provider rejection keeps its status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/signin", h.SignIn)

		uc.EXPECT().SignIn(gomock.Any(), "a@b.com", "wrong").Return(entities.Session{}, &supabase.APIError{Method: "POST", Path: "/auth/v1/token", Status: http.StatusBadRequest})

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/signin", bytes.NewBufferString(`{"email":"a@b.com","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/signin", h.SignIn)

		uc.EXPECT().SignIn(gomock.Any(), "a@b.com", "secret").Return(entities.Session{
			AccessToken: "tok",
			TokenType:   "bearer",
			User:        entities.AuthUser{ID: "u-1", Email: "a@b.com"},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/signin", bytes.NewBufferString(`{"email":"a@b.com","password":"secret"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["accessToken"] != "tok" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestAuthHandler_SignUp(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAuthUseCase(ctrl)
	h := NewAuthHandler(uc)

	r := gin.New()
	r.POST("/v1/auth/signup", h.SignUp)

	uc.EXPECT().SignUp(gomock.Any(), "a@b.com", "secret", "Oficina").Return(entities.Session{
		User: entities.AuthUser{ID: "u-1", Email: "a@b.com"},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/signup", bytes.NewBufferString(`{"email":"a@b.com","password":"secret","companyName":"Oficina"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
}

func TestAuthHandler_SignOut(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAuthUseCase(ctrl)
	h := NewAuthHandler(uc)

	r := gin.New()
	r.POST("/v1/auth/signout", h.SignOut)

	uc.EXPECT().SignOut(gomock.Any(), "tok").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/signout", nil)
	req.Header.Set("Authorization", "Bearer tok")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestAuthHandler_GetSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.GET("/v1/auth/session", h.GetSession)

		uc.EXPECT().GetSession(gomock.Any(), "").Return(entities.Session{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/session", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("active session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.GET("/v1/auth/session", h.GetSession)

		uc.EXPECT().GetSession(gomock.Any(), "tok").Return(entities.Session{
			AccessToken: "tok",
			User:        entities.AuthUser{ID: "u-1", Email: "a@b.com"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/session", nil)
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("profile found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.GET("/v1/auth/me", h.Me)

		uc.EXPECT().GetUser(gomock.Any(), "tok").Return(entities.AuthUser{ID: "u-1", Email: "a@b.com"}, nil)
		uc.EXPECT().GetProfile(gomock.Any(), "tok", "u-1").Return(entities.UserProfile{
			ID:                 "u-1",
			Email:              "a@b.com",
			CompanyName:        "Oficina",
			SubscriptionStatus: entities.SubscriptionStatusActive,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["companyName"] != "Oficina" || body["subscriptionStatus"] != "active" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("missing profile echoes principal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.GET("/v1/auth/me", h.Me)

		uc.EXPECT().GetUser(gomock.Any(), "tok").Return(entities.AuthUser{ID: "u-1", Email: "a@b.com"}, nil)
		uc.EXPECT().GetProfile(gomock.Any(), "tok", "u-1").Return(entities.UserProfile{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		req.Header.Set("Authorization", "Bearer tok")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "u-1" || body["email"] != "a@b.com" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("no principal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.GET("/v1/auth/me", h.Me)

		uc.EXPECT().GetUser(gomock.Any(), "").Return(entities.AuthUser{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"missing", "", ""},
		{"well formed", "Bearer tok", "tok"},
		{"case insensitive scheme", "bearer tok", "tok"},
		{"wrong scheme", "Basic tok", ""},
		{"no token", "Bearer", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				c.Request.Header.Set("Authorization", tc.header)
			}
			if got := BearerToken(c); got != tc.want {
				t.Fatalf("BearerToken(%q) = %q, want %q", tc.header, got, tc.want)
			}
		})
	}
}

func TestMapAuthError(t *testing.T) {
	if got := mapAuthError(usecase.ErrInvalidEmail); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapAuthError(persistence.ErrNotConfigured); got.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("expected 503")
	}
	if got := mapAuthError(&supabase.APIError{Status: http.StatusUnauthorized}); got.HTTPStatus != http.StatusUnauthorized {
		t.Fatalf("expected 401")
	}
	if got := mapAuthError(&supabase.APIError{Status: http.StatusBadGateway}); got.HTTPStatus != http.StatusBadGateway {
		t.Fatalf("expected 502")
	}
	if got := mapAuthError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
