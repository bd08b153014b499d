package config

type Limits struct {
	// MaxPromptSize bounds the rendered user prompt in bytes; larger requests
	// are refused. The default sits well above any realistic archive.
	MaxPromptSize int             `yaml:"max_prompt_size" validate:"required,min=100,max=4000000"`
	RateLimit     RateLimitConfig `yaml:"rate_limit" validate:"required"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute" validate:"required,min=1,max=1000"`
	BurstSize         int `yaml:"burst_size" validate:"required,min=1,max=100"`
}

func DefaultLimits() Limits {
	return Limits{
		MaxPromptSize: 1000000,
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 30,
			BurstSize:         3,
		},
	}
}
