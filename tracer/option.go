package tracer

type (
	// Option for init tracer option
	Option struct {
		AgentHost       string
		Level           string
		BuildNumberTag  string
		MaxGoroutineTag int
		MaxPacketSize   int
	}

	// OptionFunc func
	OptionFunc func(*Option)
)

// OptionSetAgentHost option func
func OptionSetAgentHost(agent string) OptionFunc {
	return func(o *Option) {
		o.AgentHost = agent
	}
}

// OptionSetLevel option func, appended to service name
func OptionSetLevel(level string) OptionFunc {
	return func(o *Option) {
		o.Level = level
	}
}

// OptionSetBuildNumberTag option func
func OptionSetBuildNumberTag(number string) OptionFunc {
	return func(o *Option) {
		o.BuildNumberTag = number
	}
}

// OptionSetMaxGoroutineTag option func
func OptionSetMaxGoroutineTag(max int) OptionFunc {
	return func(o *Option) {
		o.MaxGoroutineTag = max
	}
}

// OptionSetMaxPacketSize option func, tag value larger than this size will not be sent
func OptionSetMaxPacketSize(size int) OptionFunc {
	return func(o *Option) {
		o.MaxPacketSize = size
	}
}
