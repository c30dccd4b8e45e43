package interfaces

import (
	"context"

	"github.com/labstack/echo"

	"github.com/golangid/wedding-collab/candishared"
)

// Middleware abstraction
type Middleware interface {
	Basic(ctx context.Context, authKey string) error
	Bearer(ctx context.Context, token string) (*candishared.TokenClaim, error)

	HTTPBasicAuth(next echo.HandlerFunc) echo.HandlerFunc
	HTTPBearerAuth(next echo.HandlerFunc) echo.HandlerFunc
}

// TokenValidator abstract interface for jwt validator
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*candishared.TokenClaim, error)
}

// BasicAuthValidator abstract interface for basic auth validator
type BasicAuthValidator interface {
	ValidateBasic(ctx context.Context, username, password string) error
}
