// Package scriptorium holds one story-writing session: the request, the
// generated story with its analysis, the current selection and export.
package scriptorium

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Evrosil/The-Aetherial-Quill/internal/annotate"
	"github.com/Evrosil/The-Aetherial-Quill/internal/domain"
	"github.com/Evrosil/The-Aetherial-Quill/internal/muse"
	"github.com/Evrosil/The-Aetherial-Quill/internal/storage"
	quillerrors "github.com/Evrosil/The-Aetherial-Quill/pkg/quill/errors"
)

// UnknownMalaise is shown when a failure carries no message of its own.
const UnknownMalaise = "An unknown malaise has afflicted the generator."

const dateLayout = "January 2, 2006"

var (
	ErrNoResult  = errors.New("no story has been inscribed yet")
	whitespaceRE = regexp.MustCompile(`[\s\p{Z}]+`)
	pathSepRepl  = strings.NewReplacer("/", "_", `\`, "_")
)

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Generator is the slice of the muse a workspace needs.
type Generator interface {
	GenerateStory(ctx context.Context, request string, memories []domain.MemoryItem, lang domain.AppLanguage) (muse.Story, error)
	AnalyzeStory(ctx context.Context, content string, lang domain.AppLanguage) domain.LearningAnalysis
}

// Archive supplies story context and receives promoted vocabulary.
type Archive interface {
	Memories() []domain.MemoryItem
	AddToTextbook(ctx context.Context, item domain.TextbookItem) (bool, error)
}

// Snapshot is a consistent copy of the workspace for rendering.
type Snapshot struct {
	Prompt          string
	Language        domain.AppLanguage
	LearningMode    bool
	Status          Status
	Result          *domain.GeneratedFiction
	Error           string
	SelectedVocab   *domain.VocabItem
	SelectedGrammar *domain.GrammarPoint
}

type Workspace struct {
	mu              sync.Mutex
	prompt          string
	language        domain.AppLanguage
	learning        bool
	status          Status
	result          *domain.GeneratedFiction
	errMsg          string
	selectedVocab   *domain.VocabItem
	selectedGrammar *domain.GrammarPoint

	gen     Generator
	archive Archive
	exports *storage.FileSystem
	flight  singleflight.Group
	now     func() time.Time
	logger  *slog.Logger
}

type Option func(*Workspace)

func WithLogger(logger *slog.Logger) Option {
	return func(w *Workspace) {
		w.logger = logger.With("component", "scriptorium")
	}
}

func WithClock(now func() time.Time) Option {
	return func(w *Workspace) {
		w.now = now
	}
}

// New opens a workspace whose story language starts at lang. exports may be
// nil when saving is not needed.
func New(gen Generator, archive Archive, exports *storage.FileSystem, lang domain.AppLanguage, opts ...Option) *Workspace {
	w := &Workspace{
		language: lang,
		gen:      gen,
		archive:  archive,
		exports:  exports,
		now:      time.Now,
		logger:   slog.Default().With("component", "scriptorium"),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Workspace) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Snapshot{
		Prompt:          w.prompt,
		Language:        w.language,
		LearningMode:    w.learning,
		Status:          w.status,
		Result:          w.result,
		Error:           w.errMsg,
		SelectedVocab:   w.selectedVocab,
		SelectedGrammar: w.selectedGrammar,
	}
}

// editable fails with ErrBusy while a generation is outstanding. Callers hold mu.
func (w *Workspace) editable() error {
	if w.status == StatusLoading {
		return quillerrors.ErrBusy
	}
	return nil
}

func (w *Workspace) SetPrompt(p string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.editable(); err != nil {
		return err
	}
	w.prompt = p
	return nil
}

func (w *Workspace) SetLanguage(lang domain.AppLanguage) error {
	if !lang.Valid() {
		return fmt.Errorf("unsupported language %q", lang)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.editable(); err != nil {
		return err
	}
	w.language = lang
	return nil
}

func (w *Workspace) SetLearningMode(on bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.editable(); err != nil {
		return err
	}
	w.learning = on
	return nil
}

// Generate writes a story for the current prompt and, in learning mode,
// analyses it afterwards. A blank prompt is a no-op returning (nil, nil).
// Calls made while one is outstanding share its outcome.
func (w *Workspace) Generate(ctx context.Context) (*domain.GeneratedFiction, error) {
	w.mu.Lock()
	if strings.TrimSpace(w.prompt) == "" && w.status != StatusLoading {
		w.mu.Unlock()
		return nil, nil
	}
	w.mu.Unlock()

	v, err, shared := w.flight.Do("generate", func() (any, error) {
		return w.generate(ctx)
	})
	if shared {
		w.logger.Debug("joined in-flight generation")
	}
	if err != nil {
		return nil, err
	}
	return v.(*domain.GeneratedFiction), nil
}

func (w *Workspace) generate(ctx context.Context) (*domain.GeneratedFiction, error) {
	w.mu.Lock()
	prompt, lang, learning := w.prompt, w.language, w.learning
	w.status = StatusLoading
	w.result = nil
	w.errMsg = ""
	w.selectedVocab, w.selectedGrammar = nil, nil
	w.mu.Unlock()

	start := w.now()
	w.logger.Info("generation started",
		"language", string(lang),
		"learning_mode", learning,
		"prompt_length", len(prompt))

	story, err := w.gen.GenerateStory(ctx, prompt, w.archive.Memories(), lang)
	if err != nil {
		w.mu.Lock()
		w.status = StatusError
		w.errMsg = Message(err)
		w.mu.Unlock()
		w.logger.Error("generation failed", "error", err)
		return nil, err
	}

	fiction := &domain.GeneratedFiction{
		Title:    story.Title,
		Content:  story.Content,
		Date:     w.now().Format(dateLayout),
		Language: lang,
	}
	if learning {
		analysis := w.gen.AnalyzeStory(ctx, story.Content, lang)
		fiction.Learning = &analysis
	}

	w.mu.Lock()
	w.status = StatusSuccess
	w.result = fiction
	w.mu.Unlock()

	w.logger.Info("generation completed",
		"title", fiction.Title,
		"content_length", len(fiction.Content),
		"duration_ms", w.now().Sub(start).Milliseconds())
	return fiction, nil
}

// Message is the user-facing text for a generation failure.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var opErr *quillerrors.OperationError
	if errors.As(err, &opErr) && opErr.Err != nil {
		err = opErr.Err
	}
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return UnknownMalaise
}

// Annotated returns the current story split into annotated paragraphs.
func (w *Workspace) Annotated() [][]annotate.Segment {
	w.mu.Lock()
	result := w.result
	w.mu.Unlock()

	if result == nil {
		return nil
	}
	var analysis domain.LearningAnalysis
	if result.Learning != nil {
		analysis = *result.Learning
	}
	return annotate.Annotate(result.Content, analysis)
}

// SelectVocab shows a vocabulary note. Selecting one clears any grammar note.
func (w *Workspace) SelectVocab(v *domain.VocabItem) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.selectedVocab, w.selectedGrammar = v, nil
}

// SelectGrammar shows a grammar note. Selecting one clears any vocabulary note.
func (w *Workspace) SelectGrammar(g *domain.GrammarPoint) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.selectedGrammar, w.selectedVocab = g, nil
}

func (w *Workspace) ClearSelection() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.selectedVocab, w.selectedGrammar = nil, nil
}

// Promote files a vocabulary item in the lexicon, stamped with the current
// time. It reports whether the word was new.
func (w *Workspace) Promote(ctx context.Context, v domain.VocabItem) (bool, error) {
	added, err := w.archive.AddToTextbook(ctx, domain.NewTextbookItem(v, w.now()))
	if err != nil {
		return false, fmt.Errorf("adding %q to lexicon: %w", v.Word, err)
	}
	return added, nil
}

// ExportText is "<title>\n\n<content>".
func (w *Workspace) ExportText() (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.result == nil {
		return "", ErrNoResult
	}
	return ExportText(*w.result), nil
}

// ExportFileName is the story title with whitespace runs turned into "_",
// plus ".txt".
func (w *Workspace) ExportFileName() (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.result == nil {
		return "", ErrNoResult
	}
	return ExportFileName(w.result.Title), nil
}

// SaveExport writes the export text into the exports directory and returns
// the path written, relative to it.
func (w *Workspace) SaveExport(ctx context.Context) (string, error) {
	if w.exports == nil {
		return "", errors.New("no export directory configured")
	}
	text, err := w.ExportText()
	if err != nil {
		return "", err
	}
	name, _ := w.ExportFileName()
	name = pathSepRepl.Replace(name)

	if err := w.exports.Save(ctx, name, []byte(text)); err != nil {
		return "", fmt.Errorf("saving manuscript: %w", err)
	}
	w.logger.Info("manuscript saved", "file", name, "dir", w.exports.BaseDir())
	return name, nil
}

func ExportText(f domain.GeneratedFiction) string {
	return f.Title + "\n\n" + f.Content
}

func ExportFileName(title string) string {
	return whitespaceRE.ReplaceAllString(title, "_") + ".txt"
}
