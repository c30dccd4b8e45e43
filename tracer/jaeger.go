package tracer

import (
	"fmt"
	"log"
	"math"
	"net/url"
	"runtime"
	"strings"
	"time"

	opentracing "github.com/opentracing/opentracing-go"
	config "github.com/uber/jaeger-client-go/config"
)

const defaultMaxPacketSize = 65000

var (
	maxPacketSize  = defaultMaxPacketSize
	traceDashboard string
)

// InitOpenTracing init jaeger tracing as global opentracing tracer
func InitOpenTracing(serviceName string, opts ...OptionFunc) error {
	option := Option{MaxPacketSize: defaultMaxPacketSize}
	for _, opt := range opts {
		opt(&option)
	}

	if option.Level != "" {
		serviceName = fmt.Sprintf("%s-%s", serviceName, strings.ToLower(option.Level))
	}
	defaultTags := []opentracing.Tag{
		{Key: "num_cpu", Value: runtime.NumCPU()},
		{Key: "go_version", Value: runtime.Version()},
	}
	if option.MaxGoroutineTag != 0 {
		defaultTags = append(defaultTags, opentracing.Tag{Key: "max_goroutines", Value: option.MaxGoroutineTag})
	}
	if option.BuildNumberTag != "" {
		defaultTags = append(defaultTags, opentracing.Tag{Key: "build_number", Value: option.BuildNumberTag})
	}

	cfg := &config.Configuration{
		Sampler: &config.SamplerConfig{
			Type:  "const",
			Param: 1,
		},
		Reporter: &config.ReporterConfig{
			LogSpans:            true,
			BufferFlushInterval: 1 * time.Second,
			LocalAgentHostPort:  option.AgentHost,
		},
		ServiceName: serviceName,
		Tags:        defaultTags,
	}
	tracer, _, err := cfg.NewTracer(config.MaxTagValueLength(math.MaxInt32))
	if err != nil {
		log.Printf("ERROR: cannot init opentracing connection: %v\n", err)
		return err
	}
	opentracing.SetGlobalTracer(tracer)

	if option.MaxPacketSize > 0 {
		maxPacketSize = option.MaxPacketSize
	}
	if urlAgent, err := url.Parse("//" + option.AgentHost); err == nil && urlAgent.Hostname() != "" {
		traceDashboard = fmt.Sprintf("http://%s:16686/trace", urlAgent.Hostname())
	}
	return nil
}
