package middleware

import (
	"log"
	"net/http"

	"serviceos/internal/domain/principal"
	"serviceos/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CheckoutLinks is the static payment page pair rendered by the
// paywall response.
type CheckoutLinks struct {
	Monthly string `json:"monthly"`
	Annual  string `json:"annual"`
}

type subscriptionRequiredResponse struct {
	Code          string        `json:"code"`
	Message       string        `json:"message"`
	CheckoutLinks CheckoutLinks `json:"checkoutLinks"`
	SignOutHint   string        `json:"signOutHint"`
}

// RequireSubscription blocks the protected surface when the principal's
// subscription does not allow access. A failed check blocks too; the
// client retries on its next request.
func RequireSubscription(gate *usecase.SubscriptionGate, links CheckoutLinks) gin.HandlerFunc {
	blocked := subscriptionRequiredResponse{
		Code:          "SUBSCRIPTION_REQUIRED",
		Message:       "An active subscription is required",
		CheckoutLinks: links,
		SignOutHint:   "POST /v1/auth/signout to switch accounts",
	}

	return func(c *gin.Context) {
		token := principal.AccessTokenFrom(c.Request.Context())

		decision, err := gate.Check(c.Request.Context(), token)
		if err != nil {
			log.Printf("[middleware][subscription] check failed err=%v", err)
			c.AbortWithStatusJSON(http.StatusPaymentRequired, blocked)
			return
		}
		if !decision.Allowed {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, blocked)
			return
		}
		c.Next()
	}
}
