package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangid/wedding-collab/candishared"
)

const testSecret = "wedding-secret"

func signToken(t *testing.T, method jwt.SigningMethod, claim candishared.TokenClaim, secret string) string {
	token, err := jwt.NewWithClaims(method, claim).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestJWTValidator_ValidateToken(t *testing.T) {
	validator := NewJWTValidator(testSecret)
	ctx := context.Background()

	t.Run("Testcase #1: Positive", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, candishared.TokenClaim{
			StandardClaims: jwt.StandardClaims{Subject: "u-alice", ExpiresAt: time.Now().Add(time.Hour).Unix()},
			Email:          "alice@x.com",
		}, testSecret)

		claim, err := validator.ValidateToken(ctx, token)
		assert.NoError(t, err)
		assert.Equal(t, "u-alice", claim.Subject)
		assert.Equal(t, "alice@x.com", claim.Email)
	})

	t.Run("Testcase #2: Negative, expired token", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, candishared.TokenClaim{
			StandardClaims: jwt.StandardClaims{Subject: "u-alice", ExpiresAt: time.Now().Add(-time.Hour).Unix()},
		}, testSecret)

		_, err := validator.ValidateToken(ctx, token)
		assert.EqualError(t, err, "Token is expired")
	})

	t.Run("Testcase #3: Negative, wrong secret", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, candishared.TokenClaim{
			StandardClaims: jwt.StandardClaims{Subject: "u-alice"},
		}, "other-secret")

		_, err := validator.ValidateToken(ctx, token)
		assert.EqualError(t, err, "Invalid token")
	})

	t.Run("Testcase #4: Negative, missing subject", func(t *testing.T) {
		token := signToken(t, jwt.SigningMethodHS256, candishared.TokenClaim{Email: "alice@x.com"}, testSecret)

		_, err := validator.ValidateToken(ctx, token)
		assert.EqualError(t, err, "Invalid token")
	})
}

func TestMiddleware_HTTPBearerAuth(t *testing.T) {
	mw := NewMiddleware(SetTokenValidator(NewJWTValidator(testSecret)))
	validToken := signToken(t, jwt.SigningMethodHS256, candishared.TokenClaim{
		StandardClaims: jwt.StandardClaims{Subject: "u-owner"},
	}, testSecret)

	tests := []struct {
		name             string
		authorization    string
		wantResponseCode int
		wantUserID       string
	}{
		{
			name:             "Testcase #1: Positive",
			authorization:    "Bearer " + validToken,
			wantResponseCode: http.StatusOK,
			wantUserID:       "u-owner",
		},
		{
			name:             "Testcase #2: Negative, empty authorization",
			wantResponseCode: http.StatusUnauthorized,
		},
		{
			name:             "Testcase #3: Negative, basic instead of bearer",
			authorization:    "Basic " + validBasicAuth,
			wantResponseCode: http.StatusUnauthorized,
		},
		{
			name:             "Testcase #4: Negative, invalid token",
			authorization:    "Bearer xxx.yyy.zzz",
			wantResponseCode: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Add("Authorization", tt.authorization)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var gotUserID string
			handler := mw.HTTPBearerAuth(func(c echo.Context) error {
				if claim := candishared.ParseTokenClaimFromContext(c.Request().Context()); claim != nil {
					gotUserID = claim.Subject
				}
				return c.NoContent(http.StatusOK)
			})
			assert.NoError(t, handler(c))
			assert.Equal(t, tt.wantResponseCode, rec.Code)
			assert.Equal(t, tt.wantUserID, gotUserID)
		})
	}
}

func TestExtractAuthType(t *testing.T) {
	token, err := extractAuthType(Bearer, "bearer abc")
	assert.NoError(t, err)
	assert.Equal(t, "abc", token)

	_, err = extractAuthType(Bearer, "abc")
	assert.Error(t, err)
}
