package entities

// SubscriptionStatus mirrors the billing collaborator's subscription
// lifecycle for a tenant.

type SubscriptionStatus string

const (
	SubscriptionStatusTrial    SubscriptionStatus = "trial"
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusPastDue  SubscriptionStatus = "past_due"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
	SubscriptionStatusUnpaid   SubscriptionStatus = "unpaid"
)

// Allowed reports whether the status grants access to the application.
func (s SubscriptionStatus) Allowed() bool {
	return s == SubscriptionStatusActive || s == SubscriptionStatusTrial
}

// UserProfile is the tenant profile provisioned out-of-band by the auth
// collaborator on signup. Read-only from this service's perspective.
type UserProfile struct {
	ID                  string             `json:"id"`
	Email               string             `json:"email"`
	CompanyName         string             `json:"company_name"`
	SubscriptionStatus  SubscriptionStatus `json:"subscription_status"`
	SubscriptionEndDate string             `json:"subscription_end_date"`
}

// AuthUser is the authenticated principal as reported by the auth
// collaborator. A zero ID means no principal.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is the credential bundle issued by the auth collaborator.
type Session struct {
	AccessToken  string   `json:"access_token"`
	TokenType    string   `json:"token_type"`
	ExpiresIn    int      `json:"expires_in"`
	RefreshToken string   `json:"refresh_token"`
	User         AuthUser `json:"user"`
}
