package tracer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo"
	opentracing "github.com/opentracing/opentracing-go"
	ext "github.com/opentracing/opentracing-go/ext"

	"github.com/golangid/wedding-collab/candihelper"
)

type httpResponseWriter struct {
	io.Writer
	http.ResponseWriter
}

func (w *httpResponseWriter) WriteHeader(code int) {
	w.ResponseWriter.WriteHeader(code)
}

func (w *httpResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

// EchoRestTracerMiddleware for wrap from http inbound (request from client)
func EchoRestTracerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		if isDisableTrace, _ := strconv.ParseBool(req.Header.Get(candihelper.HeaderDisableTrace)); isDisableTrace {
			c.SetRequest(req.WithContext(SkipTraceContext(req.Context())))
			return next(c)
		}

		globalTracer := opentracing.GlobalTracer()
		operationName := fmt.Sprintf("%s %s", req.Method, c.Path())

		var span opentracing.Span
		var ctx context.Context
		if spanCtx, err := globalTracer.Extract(opentracing.HTTPHeaders, opentracing.HTTPHeadersCarrier(req.Header)); err != nil {
			span, ctx = opentracing.StartSpanFromContext(req.Context(), operationName)
		} else {
			span = globalTracer.StartSpan(operationName, ext.RPCServerOption(spanCtx))
			ctx = opentracing.ContextWithSpan(req.Context(), span)
		}
		ext.SpanKindRPCServer.Set(span)

		body, _ := io.ReadAll(req.Body)
		if len(body) < maxPacketSize {
			span.SetTag("request.body", string(body))
		} else {
			span.SetTag("request.body.size", len(body))
		}
		req.Body = io.NopCloser(bytes.NewBuffer(body))

		ext.HTTPUrl.Set(span, req.Host+req.RequestURI)
		ext.HTTPMethod.Set(span, req.Method)

		defer func() {
			span.Finish()
			if traceURL := GetTraceURL(ctx); traceURL != "" {
				c.Response().Header().Set("X-Trace-URL", traceURL)
			}
		}()

		resBody := new(bytes.Buffer)
		c.Response().Writer = &httpResponseWriter{
			Writer: io.MultiWriter(c.Response().Writer, resBody), ResponseWriter: c.Response().Writer,
		}
		c.SetRequest(req.WithContext(ctx))

		err := next(c)
		statusCode := c.Response().Status
		ext.HTTPStatusCode.Set(span, uint16(statusCode))
		if statusCode >= http.StatusBadRequest {
			ext.Error.Set(span, true)
		}

		if resBody.Len() < maxPacketSize {
			span.SetTag("response.body", resBody.String())
		} else {
			span.SetTag("response.body.size", resBody.Len())
		}
		return err
	}
}
