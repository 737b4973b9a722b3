package response

import (
	"serviceos/internal/domain/entities"
)

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type SessionResponse struct {
	AccessToken  string       `json:"accessToken"`
	TokenType    string       `json:"tokenType"`
	ExpiresIn    int          `json:"expiresIn"`
	RefreshToken string       `json:"refreshToken"`
	User         UserResponse `json:"user"`
}

type ProfileResponse struct {
	ID                  string `json:"id"`
	Email               string `json:"email"`
	CompanyName         string `json:"companyName"`
	SubscriptionStatus  string `json:"subscriptionStatus"`
	SubscriptionEndDate string `json:"subscriptionEndDate"`
}

func FromSession(s entities.Session) SessionResponse {
	return SessionResponse{
		AccessToken:  s.AccessToken,
		TokenType:    s.TokenType,
		ExpiresIn:    s.ExpiresIn,
		RefreshToken: s.RefreshToken,
		User:         UserResponse{ID: s.User.ID, Email: s.User.Email},
	}
}

func FromProfile(p entities.UserProfile) ProfileResponse {
	return ProfileResponse{
		ID:                  p.ID,
		Email:               p.Email,
		CompanyName:         p.CompanyName,
		SubscriptionStatus:  string(p.SubscriptionStatus),
		SubscriptionEndDate: p.SubscriptionEndDate,
	}
}
