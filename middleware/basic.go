package middleware

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo"

	"github.com/golangid/wedding-collab/candihelper"
	"github.com/golangid/wedding-collab/wrapper"
)

const (
	// Basic constanta
	Basic = "BASIC"
)

// Basic function basic auth
func (m *Middleware) Basic(ctx context.Context, key string) error {
	data, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		return errors.New("Invalid authorization")
	}

	username, password, ok := strings.Cut(string(data), ":")
	if !ok {
		return errors.New("Invalid authorization")
	}

	return m.basicAuthValidator.ValidateBasic(ctx, username, password)
}

// HTTPBasicAuth echo basic auth middleware
func (m *Middleware) HTTPBasicAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm=""`)

		authorization := c.Request().Header.Get(candihelper.HeaderAuthorization)
		key, err := extractAuthType(Basic, authorization)
		if err != nil {
			return wrapper.NewHTTPResponse(http.StatusUnauthorized, err.Error()).JSON(c.Response())
		}

		if err := m.Basic(c.Request().Context(), key); err != nil {
			return wrapper.NewHTTPResponse(http.StatusUnauthorized, err.Error()).JSON(c.Response())
		}

		return next(c)
	}
}
