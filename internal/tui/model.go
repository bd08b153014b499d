// Package tui is the interactive three-tab terminal front end.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Evrosil/The-Aetherial-Quill/internal/domain"
	"github.com/Evrosil/The-Aetherial-Quill/internal/i18n"
	"github.com/Evrosil/The-Aetherial-Quill/internal/muse"
	"github.com/Evrosil/The-Aetherial-Quill/internal/scriptorium"
	"github.com/Evrosil/The-Aetherial-Quill/internal/state"
)

// Tab is one of the three top-level views.
type Tab int

const (
	TabArchives Tab = iota
	TabScriptorium
	TabLexicon
)

var tabs = []Tab{TabArchives, TabScriptorium, TabLexicon}

func (t Tab) label(lang domain.AppLanguage) string {
	switch t {
	case TabScriptorium:
		return i18n.T(lang, i18n.TabScriptorium)
	case TabLexicon:
		return i18n.T(lang, i18n.TabLexicon)
	default:
		return i18n.T(lang, i18n.TabArchives)
	}
}

// Enhancer polishes an archive draft.
type Enhancer interface {
	EnhanceEntry(ctx context.Context, draft muse.EntryDraft, lang domain.AppLanguage) (muse.EntryDraft, error)
}

type storyMsg struct {
	fiction *domain.GeneratedFiction
	err     error
}

type enhancedMsg struct {
	draft muse.EntryDraft
	err   error
}

// Model is the bubbletea model for the whole application.
type Model struct {
	ctx      context.Context
	store    *state.Store
	enhancer Enhancer
	ws       *scriptorium.Workspace
	logger   *slog.Logger

	styles  Styles
	keys    keyMap
	help    help.Model
	spinner spinner.Model
	width   int
	height  int
	tab     Tab
	flash   string
	errMsg  string

	// archives
	formOpen      bool
	formField     int
	category      domain.MemoryCategory
	nameInput     textinput.Model
	descInput     textarea.Model
	enhancing     bool
	listCursor    int
	confirmDelete string

	// scriptorium
	promptInput   textarea.Model
	editingPrompt bool
	generating    bool
	hitCursor     int
	story         viewport.Model

	// lexicon
	cardCursor int
	flipped    map[string]bool
}

type Option func(*Model)

func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		m.logger = logger.With("component", "tui")
	}
}

// WithStyles overrides the default palette.
func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.styles = s
	}
}

// New builds the model. store must already be loaded.
func New(ctx context.Context, store *state.Store, enhancer Enhancer, ws *scriptorium.Workspace, opts ...Option) Model {
	name := textinput.New()
	name.Placeholder = "Dr. Johnathan Ashbourne"
	name.CharLimit = 120
	name.Width = 50

	desc := textarea.New()
	desc.Placeholder = "A clockmaker haunted by the ticking of his late wife's heart..."
	desc.ShowLineNumbers = false
	desc.SetWidth(60)
	desc.SetHeight(4)

	prompt := textarea.New()
	prompt.Placeholder = "The widow opens the locked workshop at midnight..."
	prompt.ShowLineNumbers = false
	prompt.SetWidth(70)
	prompt.SetHeight(3)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = DefaultStyles().Cursor

	m := Model{
		ctx:         ctx,
		store:       store,
		enhancer:    enhancer,
		ws:          ws,
		logger:      slog.Default().With("component", "tui"),
		styles:      DefaultStyles(),
		keys:        defaultKeyMap(),
		help:        help.New(),
		spinner:     sp,
		tab:         TabArchives,
		category:    domain.CategoryCharacter,
		nameInput:   name,
		descInput:   desc,
		promptInput: prompt,
		story:       viewport.New(80, 16),
		flipped:     make(map[string]bool),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Run starts the program in the alternate screen and blocks until it exits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) lang() domain.AppLanguage {
	return m.store.Language()
}

func (m Model) t(k i18n.Key) string {
	return i18n.T(m.lang(), k)
}

// ActiveTab reports the tab in view.
func (m Model) ActiveTab() Tab {
	return m.tab
}

func (m Model) busy() bool {
	return m.generating || m.enhancing
}

// editing is true while a text field owns the keyboard.
func (m Model) editing() bool {
	return (m.tab == TabArchives && m.formOpen) || (m.tab == TabScriptorium && m.editingPrompt)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case storyMsg:
		m.generating = false
		m.hitCursor = 0
		if msg.err != nil {
			m.logger.Warn("generation failed", "error", msg.err)
		}
		m.refreshStory()
		return m, nil

	case enhancedMsg:
		m.enhancing = false
		if msg.err != nil {
			m.logger.Warn("enhance failed", "error", msg.err)
			m.errMsg = scriptorium.Message(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.category = msg.draft.Category
		m.nameInput.SetValue(msg.draft.Name)
		m.descInput.SetValue(msg.draft.Description)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}
	if m.confirmDelete != "" {
		return m.updateConfirm(msg)
	}
	if m.editing() {
		switch m.tab {
		case TabArchives:
			return m.updateForm(msg)
		case TabScriptorium:
			return m.updatePrompt(msg)
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Archives):
		m.switchTab(TabArchives)
		return m, nil
	case key.Matches(msg, m.keys.Scriptorium):
		m.switchTab(TabScriptorium)
		return m, nil
	case key.Matches(msg, m.keys.Lexicon):
		m.switchTab(TabLexicon)
		return m, nil
	case key.Matches(msg, m.keys.NextTab):
		m.switchTab(tabs[(int(m.tab)+1)%len(tabs)])
		return m, nil
	case key.Matches(msg, m.keys.UILanguage):
		m.cycleUILanguage()
		return m, nil
	}

	switch m.tab {
	case TabScriptorium:
		return m.updateScriptorium(msg)
	case TabLexicon:
		return m.updateLexicon(msg)
	default:
		return m.updateArchives(msg)
	}
}

func (m *Model) switchTab(t Tab) {
	m.tab = t
	m.flash = ""
	m.errMsg = ""
	if t == TabScriptorium {
		m.refreshStory()
	}
}

func (m *Model) cycleUILanguage() {
	next := m.lang().Next()
	if err := m.store.SetLanguage(m.ctx, next); err != nil {
		m.logger.Error("persisting language", "error", err)
		m.errMsg = err.Error()
		return
	}
	m.logger.Debug("ui language changed", "language", next)
	m.refreshStory()
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w
	inner := max(w-6, 20)
	m.nameInput.Width = min(inner, 60)
	m.descInput.SetWidth(min(inner, 80))
	m.promptInput.SetWidth(min(inner, 90))
	m.story.Width = inner
	m.story.Height = max(h-18, 5)
	m.refreshStory()
}
