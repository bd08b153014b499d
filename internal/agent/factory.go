package agent

import "log/slog"

// Sampling temperatures per role.
const (
	StorytellerTemperature float32 = 0.8
	AnalystTemperature     float32 = 0.2
	ArchivistTemperature   float32 = 0.7
)

// AgentFactory creates the three roles over one shared client.
type AgentFactory struct {
	client AIClient
	logger *slog.Logger
}

// NewAgentFactory creates a new agent factory. client may be nil when no
// credential is configured.
func NewAgentFactory(client AIClient, logger *slog.Logger) *AgentFactory {
	if logger == nil {
		logger = slog.Default()
	}
	return &AgentFactory{
		client: client,
		logger: logger,
	}
}

// Storyteller writes stories.
func (f *AgentFactory) Storyteller() *Agent {
	return New(f.client, RoleStoryteller, StorytellerTemperature).WithLogger(f.logger)
}

// Analyst produces vocabulary and grammar notes.
func (f *AgentFactory) Analyst() *Agent {
	return New(f.client, RoleAnalyst, AnalystTemperature).WithLogger(f.logger)
}

// Archivist polishes archive entry drafts.
func (f *AgentFactory) Archivist() *Agent {
	return New(f.client, RoleArchivist, ArchivistTemperature).WithLogger(f.logger)
}
