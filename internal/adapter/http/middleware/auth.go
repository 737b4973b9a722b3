package middleware

import (
	"log"
	"net/http"

	"serviceos/internal/adapter/http/handlers"
	"serviceos/internal/domain/principal"
	"serviceos/internal/usecase"
	"serviceos/pkg"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)

// RequireAuth resolves the bearer token into a principal and stores it
// on the request context for downstream layers (the persistence layer
// forwards it to the remote backend and stamps ownership on writes).
func RequireAuth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := handlers.BearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}

		user, err := auth.GetUser(c.Request.Context(), token)
		if err != nil {
			log.Printf("[middleware][auth] principal lookup failed err=%v", err)
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}
		if user.ID == "" {
			c.AbortWithStatusJSON(errUnauthenticated.HTTPStatus, errUnauthenticated.ToHTTPError())
			return
		}

		ctx := principal.WithAccessToken(c.Request.Context(), token)
		ctx = principal.WithUser(ctx, user)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
