// Package muse turns archive entries and user requests into model calls and
// parses the replies back into domain values.
package muse

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Evrosil/The-Aetherial-Quill/internal/agent"
	"github.com/Evrosil/The-Aetherial-Quill/internal/domain"
	"github.com/Evrosil/The-Aetherial-Quill/internal/i18n"
	quillerrors "github.com/Evrosil/The-Aetherial-Quill/pkg/quill/errors"
	"github.com/Evrosil/The-Aetherial-Quill/pkg/quill/utils"
)

const (
	UntitledChronicle = "Untitled Chronicle"
	emptyArchives     = "The archives are currently empty."
)

// Story is the parsed reply of GenerateStory.
type Story struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// EntryDraft is an archive entry before it is filed. Only the category is required.
type EntryDraft struct {
	Category    domain.MemoryCategory `json:"category" validate:"required,oneof='Character' 'World Setting' 'Storyline' 'Narrative Style'"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
}

// Muse owns the three generation operations.
type Muse struct {
	storyteller *agent.Agent
	analyst     *agent.Agent
	archivist   *agent.Agent
	validate    *validator.Validate
	newID       func() string
	logger      *slog.Logger
}

type Option func(*Muse)

func WithLogger(logger *slog.Logger) Option {
	return func(m *Muse) {
		m.logger = logger.With("component", "muse")
	}
}

// WithIDGenerator replaces the UUID source used for vocabulary ids.
func WithIDGenerator(f func() string) Option {
	return func(m *Muse) {
		m.newID = f
	}
}

func New(factory *agent.AgentFactory, opts ...Option) *Muse {
	m := &Muse{
		storyteller: factory.Storyteller(),
		analyst:     factory.Analyst(),
		archivist:   factory.Archivist(),
		validate:    validator.New(),
		newID:       uuid.NewString,
		logger:      slog.Default().With("component", "muse"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

type storyData struct {
	Language string
	Context  string
	Request  string
}

// GenerateStory writes a story for request in lang, conditioned on memories.
func (m *Muse) GenerateStory(ctx context.Context, request string, memories []domain.MemoryItem, lang domain.AppLanguage) (Story, error) {
	raw, err := m.storyteller.ExecuteJSON(ctx, storyData{
		Language: i18n.PromptName(lang),
		Context:  MemoryContext(memories),
		Request:  request,
	})
	if err != nil {
		return Story{}, quillerrors.NewOperationError("generate story", err)
	}

	var story Story
	if err := utils.DecodeReply(raw, &story); err != nil {
		m.logger.Debug("unparsable story reply", "response_length", len(raw), "error", err)
		return Story{}, quillerrors.NewOperationError("generate story", err)
	}

	story.Title = utils.OrDefault(story.Title, UntitledChronicle)
	story.Content = utils.OrDefault(story.Content, raw)
	return story, nil
}

type analysisData struct {
	Language            string
	ExplanationLanguage string
	Content             string
}

// ExplanationLanguage is the language tutoring notes are written in for a
// story in lang: English for Chinese stories, Simplified Chinese otherwise.
func ExplanationLanguage(lang domain.AppLanguage) string {
	if lang == domain.LangChinese {
		return i18n.PromptName(domain.LangEnglish)
	}
	return i18n.PromptName(domain.LangChinese)
}

// AnalyzeStory extracts vocabulary and grammar notes from content. It never
// fails: any error is logged and yields an empty analysis.
func (m *Muse) AnalyzeStory(ctx context.Context, content string, lang domain.AppLanguage) domain.LearningAnalysis {
	empty := domain.LearningAnalysis{Vocabulary: []domain.VocabItem{}, Grammar: []domain.GrammarPoint{}}

	raw, err := m.analyst.ExecuteJSON(ctx, analysisData{
		Language:            i18n.PromptName(lang),
		ExplanationLanguage: ExplanationLanguage(lang),
		Content:             content,
	})
	if err != nil {
		m.logger.Warn("analysis failed, continuing without annotations", "error", err)
		return empty
	}

	var analysis domain.LearningAnalysis
	if err := utils.DecodeReply(raw, &analysis); err != nil {
		m.logger.Warn("analysis reply unparsable, continuing without annotations",
			"response_length", len(raw), "error", err)
		return empty
	}

	if analysis.Vocabulary == nil {
		analysis.Vocabulary = []domain.VocabItem{}
	}
	if analysis.Grammar == nil {
		analysis.Grammar = []domain.GrammarPoint{}
	}
	for i := range analysis.Vocabulary {
		if analysis.Vocabulary[i].ID == "" {
			analysis.Vocabulary[i].ID = m.newID()
		}
	}

	m.logger.Debug("analysis parsed",
		"vocabulary", len(analysis.Vocabulary),
		"grammar", len(analysis.Grammar))
	return analysis
}

type enhanceData struct {
	Language    string
	Category    domain.MemoryCategory
	Name        string
	Description string
}

// EnhanceEntry asks the model to polish a draft. Fields the reply omits keep
// their draft values; the category is never changed.
func (m *Muse) EnhanceEntry(ctx context.Context, draft EntryDraft, lang domain.AppLanguage) (EntryDraft, error) {
	if err := m.validate.Struct(draft); err != nil {
		return EntryDraft{}, fmt.Errorf("invalid draft: %w", err)
	}

	raw, err := m.archivist.ExecuteJSON(ctx, enhanceData{
		Language:    i18n.PromptName(lang),
		Category:    draft.Category,
		Name:        draft.Name,
		Description: draft.Description,
	})
	if err != nil {
		return EntryDraft{}, quillerrors.NewOperationError("enhance entry", err)
	}

	var reply struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := utils.DecodeReply(raw, &reply); err != nil {
		return EntryDraft{}, quillerrors.NewOperationError("enhance entry", err)
	}

	out := draft
	out.Name = utils.OrDefault(strings.TrimSpace(reply.Name), draft.Name)
	out.Description = utils.OrDefault(strings.TrimSpace(reply.Description), draft.Description)
	return out, nil
}
