// Package agent renders role prompts and sends them to the model.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	quillerrors "github.com/Evrosil/The-Aetherial-Quill/pkg/quill/errors"
)

var (
	globalPromptCache *PromptCache
	cacheOnce         sync.Once
)

// GetPromptCache returns the shared cache over the built-in prompts
func GetPromptCache() *PromptCache {
	cacheOnce.Do(func() {
		globalPromptCache = NewPromptCache()
	})
	return globalPromptCache
}

// Role selects a pair of prompt templates.
type Role string

const (
	RoleStoryteller Role = "storyteller"
	RoleAnalyst     Role = "analyst"
	RoleArchivist   Role = "archivist"
)

func (r Role) systemPath() string { return string(r) + "_system.tmpl" }
func (r Role) userPath() string   { return string(r) + "_user.tmpl" }

// Agent is one role bound to a client and a sampling temperature.
type Agent struct {
	client      AIClient
	role        Role
	temperature float32
	promptCache *PromptCache
	logger      *slog.Logger
}

// New binds role to client. A nil client makes every call fail with
// ErrMissingCredential.
func New(client AIClient, role Role, temperature float32) *Agent {
	return &Agent{
		client:      client,
		role:        role,
		temperature: temperature,
		promptCache: GetPromptCache(),
		logger:      slog.Default().With("component", "agent", "role", string(role)),
	}
}

// WithLogger sets a custom logger for the agent
func (a *Agent) WithLogger(logger *slog.Logger) *Agent {
	a.logger = logger.With("component", "agent", "role", string(a.role))
	return a
}

// WithPromptCache swaps the template source, mainly for tests.
func (a *Agent) WithPromptCache(pc *PromptCache) *Agent {
	a.promptCache = pc
	return a
}

func (a *Agent) Role() Role { return a.role }

func (a *Agent) Temperature() float32 { return a.temperature }

// Prompts renders the system and user prompts for data.
func (a *Agent) Prompts(data any) (system, user string, err error) {
	system, err = a.promptCache.Render(a.role.systemPath(), data)
	if err != nil {
		return "", "", fmt.Errorf("%s system prompt: %w", a.role, err)
	}
	user, err = a.promptCache.Render(a.role.userPath(), data)
	if err != nil {
		return "", "", fmt.Errorf("%s user prompt: %w", a.role, err)
	}
	return system, user, nil
}

// ExecuteJSON renders the role's prompts with data and returns the raw reply.
func (a *Agent) ExecuteJSON(ctx context.Context, data any) (string, error) {
	if a.client == nil {
		return "", quillerrors.ErrMissingCredential
	}

	startTime := time.Now()
	system, user, err := a.Prompts(data)
	if err != nil {
		return "", err
	}

	a.logger.Debug("executing AI request",
		"system_length", len(system),
		"prompt_length", len(user),
		"temperature", a.temperature)

	response, err := a.client.CompleteJSONWithSystem(ctx, system, user,
		WithTemperature(a.temperature),
		WithOperation(string(a.role)))
	duration := time.Since(startTime)

	if err != nil {
		a.logger.Error("AI request failed",
			"duration_ms", duration.Milliseconds(),
			"error", err)
		return "", err
	}

	a.logger.Info("AI request completed",
		"duration_ms", duration.Milliseconds(),
		"response_length", len(response))

	return response, nil
}
