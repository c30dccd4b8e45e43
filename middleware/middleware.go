package middleware

import (
	"context"
	"errors"

	"github.com/golangid/wedding-collab/codebase/interfaces"
	"github.com/golangid/wedding-collab/config/env"
)

// Middleware impl
type Middleware struct {
	tokenValidator     interfaces.TokenValidator
	basicAuthValidator interfaces.BasicAuthValidator
}

// NewMiddleware create new middleware instance with option,
// default token validator is HS256 jwt with JWT_SECRET and default basic auth from BASIC_AUTH_USERNAME & BASIC_AUTH_PASS
func NewMiddleware(opts ...OptionFunc) *Middleware {
	mw := &Middleware{
		tokenValidator: NewJWTValidator(env.BaseEnv().JWTSecret),
		basicAuthValidator: &defaultBasicAuth{
			username: env.BaseEnv().BasicAuthUsername, password: env.BaseEnv().BasicAuthPassword,
		},
	}
	for _, opt := range opts {
		opt(mw)
	}
	return mw
}

// OptionFunc type
type OptionFunc func(*Middleware)

// SetTokenValidator option func
func SetTokenValidator(tokenValidator interfaces.TokenValidator) OptionFunc {
	return func(mw *Middleware) {
		mw.tokenValidator = tokenValidator
	}
}

// SetBasicAuthValidator option func
func SetBasicAuthValidator(basicAuth interfaces.BasicAuthValidator) OptionFunc {
	return func(mw *Middleware) {
		mw.basicAuthValidator = basicAuth
	}
}

type defaultBasicAuth struct {
	username, password string
}

func (d *defaultBasicAuth) ValidateBasic(ctx context.Context, username, password string) error {
	if username != d.username || password != d.password {
		return errors.New("Invalid credentials")
	}
	return nil
}
