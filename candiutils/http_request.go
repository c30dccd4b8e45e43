package candiutils

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gojektech/heimdall/v6"
	"github.com/gojektech/heimdall/v6/httpclient"

	"github.com/golangid/wedding-collab/tracer"
)

// HTTPRequest interface
type HTTPRequest interface {
	Do(ctx context.Context, method, url string, reqBody []byte, headers map[string]string) (respBody []byte, respCode int, err error)
}

// HTTPError returned when response status code reach error code threshold
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// httpRequestImpl struct
type httpRequestImpl struct {
	retries                int
	sleepBetweenRetry      time.Duration
	httpErrorCodeThreshold int
	timeout                time.Duration
	client                 *httpclient.Client
}

// HTTPRequestOption func type
type HTTPRequestOption func(*httpRequestImpl)

// HTTPRequestSetRetries option func
func HTTPRequestSetRetries(retries int) HTTPRequestOption {
	return func(h *httpRequestImpl) {
		h.retries = retries
	}
}

// HTTPRequestSetSleepBetweenRetry option func
func HTTPRequestSetSleepBetweenRetry(sleepBetweenRetry time.Duration) HTTPRequestOption {
	return func(h *httpRequestImpl) {
		h.sleepBetweenRetry = sleepBetweenRetry
	}
}

// HTTPRequestSetHTTPErrorCodeThreshold option func
func HTTPRequestSetHTTPErrorCodeThreshold(httpErrorCodeThreshold int) HTTPRequestOption {
	return func(h *httpRequestImpl) {
		h.httpErrorCodeThreshold = httpErrorCodeThreshold
	}
}

// HTTPRequestSetTimeout option func
func HTTPRequestSetTimeout(timeout time.Duration) HTTPRequestOption {
	return func(h *httpRequestImpl) {
		h.timeout = timeout
	}
}

// NewHTTPRequest init new http request with heimdall retrier
func NewHTTPRequest(opts ...HTTPRequestOption) HTTPRequest {
	httpReq := &httpRequestImpl{
		retries:                5,
		sleepBetweenRetry:      500 * time.Millisecond,
		httpErrorCodeThreshold: http.StatusBadRequest,
		timeout:                10 * time.Second,
	}
	for _, opt := range opts {
		opt(httpReq)
	}

	// define a maximum jitter interval
	maximumJitterInterval := 5 * time.Millisecond
	backoff := heimdall.NewConstantBackoff(httpReq.sleepBetweenRetry, maximumJitterInterval)
	retrier := heimdall.NewRetrier(backoff)

	httpReq.client = httpclient.NewClient(
		httpclient.WithHTTPTimeout(httpReq.timeout),
		httpclient.WithRetrier(retrier),
		httpclient.WithRetryCount(httpReq.retries),
	)
	return httpReq
}

// Do function, for http client call
func (request *httpRequestImpl) Do(ctx context.Context, method, url string, requestBody []byte, headers map[string]string) (respBody []byte, respCode int, err error) {
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, respCode, err
	}

	trace := tracer.StartTrace(ctx, fmt.Sprintf("HTTP Request: %s %s%s", method, req.URL.Host, req.URL.Path))
	defer func() {
		trace.SetError(err)
		trace.Finish()
	}()

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	trace.InjectHTTPHeader(req)
	trace.SetTag("http.method", req.Method)
	trace.SetTag("http.url", req.URL.String())
	if requestBody != nil {
		trace.Log("request.body", requestBody)
	}

	resp, err := request.client.Do(req)
	if err != nil {
		return nil, respCode, err
	}
	defer resp.Body.Close()

	respBody, err = io.ReadAll(resp.Body)
	respCode = resp.StatusCode

	trace.Log("response.body", respBody)
	trace.SetTag("response.code", resp.StatusCode)

	if resp.StatusCode >= request.httpErrorCodeThreshold {
		httpErr := &HTTPError{Code: resp.StatusCode, Message: resp.Status}
		var body struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(respBody, &body) == nil && body.Message != "" {
			httpErr.Message = body.Message
		}
		return respBody, respCode, httpErr
	}

	return respBody, respCode, err
}
