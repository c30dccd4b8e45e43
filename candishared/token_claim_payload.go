package candishared

import "github.com/golang-jwt/jwt"

// TokenClaim for token claim data, Subject holds the user id
type TokenClaim struct {
	jwt.StandardClaims
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}
