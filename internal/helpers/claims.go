package helpers

import "github.com/golang-jwt/jwt/v5"

type AuthClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Helper methods for role checking
func (ac *AuthClaims) IsAdmin() bool {
	return ac.Role == "admin"
}

func (ac *AuthClaims) HasRole(role string) bool {
	return ac.Role == role
}

func (ac *AuthClaims) IsOwner(userID string) bool {
	return ac.UserID == userID
}
