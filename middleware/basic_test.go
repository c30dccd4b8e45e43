package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo"
	"github.com/stretchr/testify/assert"
)

const (
	basicUsername  = "user"
	basicPass      = "da1c25d8-37c8-41b1-afe2-42dd4825bfea"
	validBasicAuth = "dXNlcjpkYTFjMjVkOC0zN2M4LTQxYjEtYWZlMi00MmRkNDgyNWJmZWE="
)

func TestBasicAuth(t *testing.T) {
	midd := NewMiddleware(SetBasicAuthValidator(&defaultBasicAuth{
		username: basicUsername, password: basicPass,
	}))

	t.Run("Testcase #1: Positive", func(t *testing.T) {
		err := midd.Basic(context.Background(), validBasicAuth)
		assert.NoError(t, err)
	})

	t.Run("Testcase #2: Negative, wrong credentials", func(t *testing.T) {
		err := midd.Basic(context.Background(), "MjIyMjphc2RzZA==")
		assert.Error(t, err)
	})

	t.Run("Testcase #3: Negative, not base64", func(t *testing.T) {
		err := midd.Basic(context.Background(), "zzzzzzz")
		assert.Error(t, err)
	})

	t.Run("Testcase #4: Negative, missing separator", func(t *testing.T) {
		err := midd.Basic(context.Background(), "dGVzdGluZw==")
		assert.Error(t, err)
	})
}

func TestMiddleware_HTTPBasicAuth(t *testing.T) {
	mw := NewMiddleware(SetBasicAuthValidator(&defaultBasicAuth{
		username: basicUsername, password: basicPass,
	}))

	tests := []struct {
		name             string
		authorization    string
		wantResponseCode int
	}{
		{
			name:             "Testcase #1: Positive",
			authorization:    "Basic " + validBasicAuth,
			wantResponseCode: http.StatusOK,
		},
		{
			name:             "Testcase #2: Negative, empty authorization",
			authorization:    "",
			wantResponseCode: http.StatusUnauthorized,
		},
		{
			name:             "Testcase #3: Negative, invalid authorization",
			authorization:    "Basic xxxxx",
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

			handler := mw.HTTPBasicAuth(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})
			assert.NoError(t, handler(c))
			assert.Equal(t, tt.wantResponseCode, rec.Code)
		})
	}
}
