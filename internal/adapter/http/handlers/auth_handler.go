package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "serviceos/internal/adapter/http/dto/request"
	response "serviceos/internal/adapter/http/dto/response"
	"serviceos/internal/adapter/persistence"
	"serviceos/internal/adapter/persistence/supabase"
	"serviceos/internal/usecase"
	"serviceos/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAuthPayload = pkg.NewDomainErrorSimple("INVALID_AUTH_INPUT", "Invalid auth payload", http.StatusBadRequest)
	errNoSession          = pkg.NewDomainErrorSimple("NO_SESSION", "No active session", http.StatusUnauthorized)
)

// AuthHandler fronts the auth collaborator. In local mode every
// credential operation answers 503: there is no account system without
// the remote backend.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

//	@Summary	Create an account
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		request.SignUpRequest	true	"Account data"
//	@Success	201	{object}	response.SessionResponse
//	@Failure	400	{object}	pkg.HTTPError
//	@Failure	503	{object}	pkg.HTTPError
//	@Router		/auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var payload request.SignUpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.SignUp(c.Request.Context(), payload.Email, payload.Password, payload.CompanyName)
	if err != nil {
		log.Printf("[auth][handler] signup failed email=%s err=%v", payload.Email, err)
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSession(session))
}

//	@Summary	Sign in with email and password
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		request.SignInRequest	true	"Credentials"
//	@Success	200	{object}	response.SessionResponse
//	@Failure	400	{object}	pkg.HTTPError
//	@Failure	503	{object}	pkg.HTTPError
//	@Router		/auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var payload request.SignInRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	session, err := h.usecase.SignIn(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		log.Printf("[auth][handler] signin failed email=%s err=%v", payload.Email, err)
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(session))
}

// SignOut revokes the bearer token. Revoking an already-dead token is
// still a success; the client ends up signed out either way.
//
//	@Summary	Revoke the current session
//	@Tags		auth
//	@Success	204
//	@Security	Bearer
//	@Router		/auth/signout [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	token := BearerToken(c)
	if err := h.usecase.SignOut(c.Request.Context(), token); err != nil {
		log.Printf("[auth][handler] signout failed err=%v", err)
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

//	@Summary	Request a password reset email
//	@Tags		auth
//	@Accept		json
//	@Param		payload	body	request.ResetPasswordRequest	true	"Email"
//	@Success	202
//	@Failure	400	{object}	pkg.HTTPError
//	@Failure	503	{object}	pkg.HTTPError
//	@Router		/auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var payload request.ResetPasswordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAuthPayload.HTTPStatus, errInvalidAuthPayload.ToHTTPError())
		return
	}

	if err := h.usecase.ResetPassword(c.Request.Context(), payload.Email); err != nil {
		log.Printf("[auth][handler] reset failed email=%s err=%v", payload.Email, err)
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusAccepted)
}

//	@Summary	Return the current session
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	response.SessionResponse
//	@Failure	401	{object}	pkg.HTTPError
//	@Security	Bearer
//	@Router		/auth/session [get]
func (h *AuthHandler) GetSession(c *gin.Context) {
	session, err := h.usecase.GetSession(c.Request.Context(), BearerToken(c))
	if err != nil {
		log.Printf("[auth][handler] session failed err=%v", err)
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if session.User.ID == "" {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSession(session))
}

// Me returns the authenticated principal's profile.
//
//	@Summary	Return the authenticated user's profile
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	response.ProfileResponse
//	@Failure	401	{object}	pkg.HTTPError
//	@Security	Bearer
//	@Router		/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	token := BearerToken(c)

	user, err := h.usecase.GetUser(c.Request.Context(), token)
	if err != nil {
		log.Printf("[auth][handler] me failed err=%v", err)
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if user.ID == "" {
		c.JSON(errNoSession.HTTPStatus, errNoSession.ToHTTPError())
		return
	}

	profile, err := h.usecase.GetProfile(c.Request.Context(), token, user.ID)
	if err != nil {
		log.Printf("[auth][handler] profile failed user=%s err=%v", user.ID, err)
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if profile.ID == "" {
		profile.ID = user.ID
		profile.Email = user.Email
	}

	c.JSON(http.StatusOK, response.FromProfile(profile))
}

// BearerToken extracts the token from the Authorization header. Empty
// when absent or malformed.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func mapAuthError(err error) *pkg.AppError {
	var apiErr *supabase.APIError
	switch {
	case errors.Is(err, usecase.ErrInvalidEmail), errors.Is(err, usecase.ErrInvalidPassword):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS_INPUT", "Invalid credentials payload", http.StatusBadRequest)
	case errors.Is(err, persistence.ErrNotConfigured):
		return pkg.NewDomainErrorSimple("BACKEND_NOT_CONFIGURED", "Auth requires the remote backend", http.StatusServiceUnavailable)
	case errors.As(err, &apiErr):
		if apiErr.Status >= 400 && apiErr.Status < 500 {
			return pkg.NewDomainErrorSimple("AUTH_REJECTED", "Authentication rejected by provider", apiErr.Status)
		}
		return pkg.NewDomainError("AUTH_PROVIDER_UNAVAILABLE", "Auth provider unavailable", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
