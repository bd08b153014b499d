package agent

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	quillerrors "github.com/Evrosil/The-Aetherial-Quill/pkg/quill/errors"
)

const (
	DefaultModel   = "gemini-2.5-flash"
	jsonMIMEType   = "application/json"
	defaultTimeout = 120 * time.Second
)

// Client talks to the Gemini API. It never retries.
type Client struct {
	apiKey        string
	baseURL       string
	model         string
	httpClient    *http.Client
	limiter       *rate.Limiter
	maxPromptSize int
	logger        *slog.Logger

	models *genai.Models
}

type Option func(*Client)

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		transport := c.httpClient.Transport
		c.httpClient = &http.Client{
			Timeout:   timeout,
			Transport: transport,
		}
	}
}

func WithRateLimit(requestsPerMinute int, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), burst)
	}
}

// WithAPIConfig overrides the endpoint and model. Empty values keep the defaults.
func WithAPIConfig(baseURL, model string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
		if model != "" {
			c.model = model
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithMaxPromptSize(n int) Option {
	return func(c *Client) {
		c.maxPromptSize = n
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger.With("component", "ai_client")
	}
}

// NewClient builds a Gemini client. An empty key yields ErrMissingCredential.
func NewClient(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, quillerrors.ErrMissingCredential
	}

	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	c := &Client{
		apiKey: apiKey,
		model:  DefaultModel,
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: transport,
		},
		limiter: rate.NewLimiter(rate.Limit(0.5), 3), // 30 req/min
		logger:  slog.Default().With("component", "ai_client"),
	}

	for _, opt := range opts {
		opt(c)
	}

	cfg := &genai.ClientConfig{
		APIKey:     c.apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: c.httpClient,
	}
	if c.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: c.baseURL}
	}

	gc, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	c.models = gc.Models

	c.logger.Debug("AI client initialized",
		"base_url", c.baseURL,
		"model", c.model,
		"timeout", c.httpClient.Timeout,
		"rate_limit", fmt.Sprintf("%v req/s", c.limiter.Limit()))

	return c, nil
}

// Model is the model name requests are sent to.
func (c *Client) Model() string {
	return c.model
}

// CompleteJSONWithSystem makes a JSON-mode request with separate system and user prompts.
func (c *Client) CompleteJSONWithSystem(ctx context.Context, systemPrompt, userPrompt string, opts ...CallOption) (string, error) {
	o := collectOptions(opts)
	requestID := fmt.Sprintf("gemini_%d", time.Now().UnixNano())
	startTime := time.Now()

	if c.maxPromptSize > 0 && len(userPrompt) > c.maxPromptSize {
		return "", fmt.Errorf("prompt is %d bytes, limit is %d", len(userPrompt), c.maxPromptSize)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		c.logger.Error("rate limit wait failed",
			"request_id", requestID,
			"error", err)
		return "", fmt.Errorf("rate limit wait failed: %w", err)
	}

	c.logger.Debug("sending generation request",
		"request_id", requestID,
		"operation", o.Operation,
		"model", c.model,
		"system_length", len(systemPrompt),
		"prompt_length", len(userPrompt),
		"wait_duration_ms", time.Since(startTime).Milliseconds())

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: jsonMIMEType,
		Temperature:      o.Temperature,
	}
	if systemPrompt != "" {
		config.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(userPrompt), config)
	duration := time.Since(startTime)
	if err != nil {
		c.logger.Error("generation request failed",
			"request_id", requestID,
			"operation", o.Operation,
			"duration_ms", duration.Milliseconds(),
			"error", err)
		return "", fmt.Errorf("generating content: %w", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		c.logger.Warn("empty generation response",
			"request_id", requestID,
			"operation", o.Operation,
			"duration_ms", duration.Milliseconds())
		return "", quillerrors.ErrEmptyResponse
	}

	attrs := []any{
		"request_id", requestID,
		"operation", o.Operation,
		"duration_ms", duration.Milliseconds(),
		"response_length", len(text),
	}
	if u := resp.UsageMetadata; u != nil {
		attrs = append(attrs,
			"prompt_tokens", u.PromptTokenCount,
			"completion_tokens", u.CandidatesTokenCount,
			"total_tokens", u.TotalTokenCount)
	}
	c.logger.Info("generation request completed", attrs...)

	return text, nil
}
