package usecase

import (
	"context"
	"log"
	"time"

	"serviceos/internal/domain/entities"
	"serviceos/internal/usecase/interfaces"
)

// SubscriptionGate decides whether the protected application surface is
// reachable for a given session. Each Check is one pass through
// Checking -> {Allowed, Blocked}; nothing re-checks automatically, the
// caller decides again on the next request.
type SubscriptionGate struct {
	auth interfaces.IAuthProvider
}

// GateDecision is the outcome of one subscription check.
type GateDecision struct {
	Allowed bool
	// Profile is set whenever a principal was found, including the
	// synthesized fallback profile.
	Profile entities.UserProfile
}

func NewSubscriptionGate(auth interfaces.IAuthProvider) *SubscriptionGate {
	return &SubscriptionGate{auth: auth}
}

// Check resolves the principal for the token and evaluates its
// subscription. Missing principal blocks; a principal whose profile row
// hasn't been provisioned yet is deliberately let through on a
// synthesized active profile, so nobody is locked out by a lagging
// signup trigger. Collaborator failures block and are logged; the next
// request retries naturally.
func (g *SubscriptionGate) Check(ctx context.Context, accessToken string) (GateDecision, error) {
	user, err := g.auth.GetUser(ctx, accessToken)
	if err != nil {
		log.Printf("[gate] principal lookup failed err=%v", err)
		return GateDecision{}, err
	}
	if user.ID == "" {
		return GateDecision{}, nil
	}

	profile, err := g.auth.GetProfile(ctx, accessToken, user.ID)
	if err != nil {
		log.Printf("[gate] profile lookup failed user=%s err=%v", user.ID, err)
		return GateDecision{}, err
	}

	if profile.ID == "" {
		log.Printf("[gate] no profile for user=%s, allowing with fallback", user.ID)
		profile = entities.UserProfile{
			ID:                  user.ID,
			Email:               user.Email,
			SubscriptionStatus:  entities.SubscriptionStatusActive,
			SubscriptionEndDate: time.Now().Format(time.RFC3339),
		}
	}

	return GateDecision{
		Allowed: profile.SubscriptionStatus.Allowed(),
		Profile: profile,
	}, nil
}
