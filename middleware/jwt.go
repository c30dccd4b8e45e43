package middleware

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt"

	"github.com/golangid/wedding-collab/candishared"
	"github.com/golangid/wedding-collab/tracer"
)

// JWTValidator validate HS256 signed token issued by the auth service
type JWTValidator struct {
	secret []byte
}

// NewJWTValidator constructor
func NewJWTValidator(secret string) *JWTValidator {
	return &JWTValidator{secret: []byte(secret)}
}

// ValidateToken parse and validate token, subject claim (user id) is required
func (v *JWTValidator) ValidateToken(ctx context.Context, tokenString string) (claim *candishared.TokenClaim, err error) {
	trace := tracer.StartTrace(ctx, "JWTValidator:ValidateToken")
	defer func() { trace.SetError(err); trace.Finish() }()

	claim = new(candishared.TokenClaim)
	token, err := jwt.ParseWithClaims(tokenString, claim, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("Unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, errors.New("Token is expired")
		}
		return nil, errors.New("Invalid token")
	}
	if !token.Valid || claim.Subject == "" {
		return nil, errors.New("Invalid token")
	}

	trace.SetTag("user_id", claim.Subject)
	return claim, nil
}
