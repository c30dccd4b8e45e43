package candiutils

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewHTTPRequest(t *testing.T) {
	request := NewHTTPRequest(
		HTTPRequestSetRetries(1),
		HTTPRequestSetSleepBetweenRetry(10*time.Millisecond),
		HTTPRequestSetHTTPErrorCodeThreshold(http.StatusBadRequest),
		HTTPRequestSetTimeout(time.Second),
	)
	assert.NotNil(t, request)
}

func TestHTTPRequestDo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"success":true}`))
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"message":"user not found"}`))
		}
	}))
	defer server.Close()

	request := NewHTTPRequest(HTTPRequestSetRetries(0))
	headers := map[string]string{"Content-Type": "application/json"}

	t.Run("Testcase #1: Positive", func(t *testing.T) {
		body, code, err := request.Do(context.Background(), http.MethodGet, server.URL+"/ok", nil, headers)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, code)
		assert.JSONEq(t, `{"success":true}`, string(body))
	})

	t.Run("Testcase #2: Negative, error status code", func(t *testing.T) {
		_, code, err := request.Do(context.Background(), http.MethodGet, server.URL+"/missing", nil, headers)
		assert.Equal(t, http.StatusNotFound, code)

		var httpErr *HTTPError
		assert.True(t, errors.As(err, &httpErr))
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
		assert.Equal(t, "user not found", httpErr.Message)
	})

	t.Run("Testcase #3: Negative, invalid url", func(t *testing.T) {
		_, _, err := request.Do(context.Background(), http.MethodGet, "://invalid", nil, nil)
		assert.Error(t, err)
	})
}
