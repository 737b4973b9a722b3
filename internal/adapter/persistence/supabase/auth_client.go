package supabase

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"serviceos/internal/domain/entities"
	"serviceos/internal/usecase/interfaces"
)

const profilesTable = restPrefix + "/profiles"

// AuthClient implements the auth sub-contract against GoTrue plus the
// read-only profiles table.
type AuthClient struct {
	c *Client
}

var _ interfaces.IAuthProvider = (*AuthClient)(nil)

func NewAuthClient(c *Client) *AuthClient {
	return &AuthClient{c: c}
}

func (a *AuthClient) IsConfigured() bool {
	return a.c.IsConfigured()
}

// signUpResponse covers both GoTrue shapes: a session when email
// confirmation is off, a bare user record when it is on.
type signUpResponse struct {
	entities.Session
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (a *AuthClient) SignUp(ctx context.Context, email, password, companyName string) (entities.Session, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
	}
	if strings.TrimSpace(companyName) != "" {
		body["data"] = map[string]string{"company_name": companyName}
	}

	var resp signUpResponse
	if err := a.c.do(ctx, http.MethodPost, authPrefix+"/signup", nil, body, &resp, nil, a.c.anonKey); err != nil {
		return entities.Session{}, err
	}
	if resp.AccessToken == "" && resp.ID != "" {
		// Confirmation pending: no session yet, only the created user.
		return entities.Session{User: entities.AuthUser{ID: resp.ID, Email: resp.Email}}, nil
	}
	return resp.Session, nil
}

func (a *AuthClient) SignIn(ctx context.Context, email, password string) (entities.Session, error) {
	q := url.Values{}
	q.Set("grant_type", "password")

	body := map[string]string{"email": email, "password": password}

	var session entities.Session
	if err := a.c.do(ctx, http.MethodPost, authPrefix+"/token", q, body, &session, nil, a.c.anonKey); err != nil {
		return entities.Session{}, err
	}
	return session, nil
}

func (a *AuthClient) SignOut(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return nil
	}
	err := a.c.do(ctx, http.MethodPost, authPrefix+"/logout", nil, nil, nil, nil, accessToken)
	if isAuthRejection(err) {
		// Token already dead; signing out is idempotent.
		return nil
	}
	return err
}

func (a *AuthClient) ResetPassword(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return a.c.do(ctx, http.MethodPost, authPrefix+"/recover", nil, body, nil, nil, a.c.anonKey)
}

func (a *AuthClient) GetUser(ctx context.Context, accessToken string) (entities.AuthUser, error) {
	if accessToken == "" {
		return entities.AuthUser{}, nil
	}

	var user entities.AuthUser
	err := a.c.do(ctx, http.MethodGet, authPrefix+"/user", nil, nil, &user, nil, accessToken)
	if isAuthRejection(err) {
		// Expired or invalid token: no principal, not a failure.
		return entities.AuthUser{}, nil
	}
	if err != nil {
		return entities.AuthUser{}, err
	}
	return user, nil
}

func (a *AuthClient) GetSession(ctx context.Context, accessToken string) (entities.Session, error) {
	user, err := a.GetUser(ctx, accessToken)
	if err != nil {
		return entities.Session{}, err
	}
	if user.ID == "" {
		return entities.Session{}, nil
	}
	return entities.Session{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User:        user,
	}, nil
}

func (a *AuthClient) GetProfile(ctx context.Context, accessToken, userID string) (entities.UserProfile, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("id", "eq."+userID)
	q.Set("limit", "1")

	var rows []entities.UserProfile
	if err := a.c.do(ctx, http.MethodGet, profilesTable, q, nil, &rows, nil, accessToken); err != nil {
		return entities.UserProfile{}, err
	}
	if len(rows) == 0 {
		return entities.UserProfile{}, nil
	}
	return rows[0], nil
}

func isAuthRejection(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden)
}
