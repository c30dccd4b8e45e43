package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo"

	"github.com/golangid/wedding-collab/candihelper"
	"github.com/golangid/wedding-collab/candishared"
	"github.com/golangid/wedding-collab/tracer"
	"github.com/golangid/wedding-collab/wrapper"
)

const (
	// Bearer constanta
	Bearer = "BEARER"
)

// Bearer token validator
func (m *Middleware) Bearer(ctx context.Context, tokenString string) (*candishared.TokenClaim, error) {
	return m.tokenValidator.ValidateToken(ctx, tokenString)
}

// HTTPBearerAuth echo jwt token middleware, token claim is set to request context
func (m *Middleware) HTTPBearerAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		ctx := req.Context()
		if err := func() error {
			trace := tracer.StartTrace(ctx, "Middleware:HTTPBearerAuth")
			defer trace.Finish()

			authorization := req.Header.Get(candihelper.HeaderAuthorization)
			tokenValue, err := extractAuthType(Bearer, authorization)
			if err != nil {
				trace.SetError(err)
				return err
			}

			tokenClaim, err := m.Bearer(trace.Context(), tokenValue)
			if err != nil {
				trace.SetError(err)
				return err
			}
			trace.SetTag("user_id", tokenClaim.Subject)
			ctx = candishared.SetToContext(ctx, candishared.ContextKeyTokenClaim, tokenClaim)
			return nil
		}(); err != nil {
			return wrapper.NewHTTPResponse(http.StatusUnauthorized, err.Error()).JSON(c.Response())
		}

		c.SetRequest(req.WithContext(ctx))
		return next(c)
	}
}
