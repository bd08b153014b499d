package agent

import "context"

// AIClient completes a system + user prompt pair in JSON response mode.
type AIClient interface {
	CompleteJSONWithSystem(ctx context.Context, systemPrompt, userPrompt string, opts ...CallOption) (string, error)
}

// CallOptions tune a single request.
type CallOptions struct {
	Temperature *float32
	// Operation labels the request in logs.
	Operation string
}

type CallOption func(*CallOptions)

func WithTemperature(t float32) CallOption {
	return func(o *CallOptions) {
		o.Temperature = &t
	}
}

func WithOperation(name string) CallOption {
	return func(o *CallOptions) {
		o.Operation = name
	}
}

func collectOptions(opts []CallOption) CallOptions {
	var o CallOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.Operation == "" {
		o.Operation = "unknown"
	}
	return o
}
