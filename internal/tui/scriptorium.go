package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Evrosil/The-Aetherial-Quill/internal/annotate"
	"github.com/Evrosil/The-Aetherial-Quill/internal/i18n"
	"github.com/Evrosil/The-Aetherial-Quill/internal/scriptorium"
)

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.editingPrompt = false
		m.promptInput.Blur()
		if err := m.ws.SetPrompt(m.promptInput.Value()); err != nil {
			m.errMsg = err.Error()
		}
		return m, nil
	case msg.String() == "ctrl+g":
		m.editingPrompt = false
		m.promptInput.Blur()
		cmd := m.startGeneration()
		return m, cmd
	}
	var cmd tea.Cmd
	m.promptInput, cmd = m.promptInput.Update(msg)
	return m, cmd
}

func (m Model) updateScriptorium(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.generating {
		return m, nil
	}
	snap := m.ws.Snapshot()
	hits := annotate.Hits(m.ws.Annotated())

	switch {
	case key.Matches(msg, m.keys.EditPrompt):
		m.editingPrompt = true
		cmd := m.promptInput.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Generate):
		cmd := m.startGeneration()
		return m, cmd
	case key.Matches(msg, m.keys.StoryLang):
		if err := m.ws.SetLanguage(snap.Language.Next()); err != nil {
			m.errMsg = err.Error()
		}
	case key.Matches(msg, m.keys.LearningMode):
		if err := m.ws.SetLearningMode(!snap.LearningMode); err != nil {
			m.errMsg = err.Error()
		}
	case key.Matches(msg, m.keys.Left):
		if m.hitCursor > 0 {
			m.hitCursor--
		}
		m.refreshStory()
	case key.Matches(msg, m.keys.Right):
		if m.hitCursor < len(hits)-1 {
			m.hitCursor++
		}
		m.refreshStory()
	case key.Matches(msg, m.keys.Select):
		if m.hitCursor < len(hits) {
			h := hits[m.hitCursor]
			if h.Kind == annotate.Vocabulary {
				m.ws.SelectVocab(h.Vocab)
			} else {
				m.ws.SelectGrammar(h.Grammar)
			}
		}
	case key.Matches(msg, m.keys.Back):
		m.ws.ClearSelection()
	case key.Matches(msg, m.keys.AddToLexicon):
		if snap.SelectedVocab == nil {
			return m, nil
		}
		added, err := m.ws.Promote(m.ctx, *snap.SelectedVocab)
		switch {
		case err != nil:
			m.logger.Error("promoting word", "word", snap.SelectedVocab.Word, "error", err)
			m.errMsg = err.Error()
		case added:
			m.flash = m.t(i18n.AddedToLexicon)
		}
	case key.Matches(msg, m.keys.Save):
		name, err := m.ws.SaveExport(m.ctx)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.flash = m.t(i18n.SaveSuccess) + " " + name
	default:
		var cmd tea.Cmd
		m.story, cmd = m.story.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) startGeneration() tea.Cmd {
	prompt := m.promptInput.Value()
	if err := m.ws.SetPrompt(prompt); err != nil {
		m.errMsg = err.Error()
		return nil
	}
	if strings.TrimSpace(prompt) == "" {
		return nil
	}
	m.generating = true
	m.flash, m.errMsg = "", ""
	ctx, ws := m.ctx, m.ws
	m.logger.Debug("generation requested", "prompt_length", len(prompt))
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		f, err := ws.Generate(ctx)
		return storyMsg{fiction: f, err: err}
	})
}

// refreshStory re-renders the story into the viewport.
func (m *Model) refreshStory() {
	if m.ws == nil {
		return
	}
	snap := m.ws.Snapshot()
	if snap.Result == nil {
		m.story.SetContent("")
		return
	}
	width := max(m.story.Width, 20)
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(snap.Result.Title) + "\n")
	b.WriteString(m.styles.Muted.Render(snap.Result.Date) + "\n\n")
	b.WriteString(renderStory(m.ws.Annotated(), m.styles, m.hitCursor, width))
	b.WriteString("\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, m.styles.Finis.Render(m.t(i18n.Finis))))
	m.story.SetContent(b.String())
}

// renderStory styles every annotated paragraph and wraps it to width. The
// hit at index cursor, counted across paragraphs, is drawn as selected.
func renderStory(paras [][]annotate.Segment, s Styles, cursor, width int) string {
	wrap := lipgloss.NewStyle().Width(width)
	out := make([]string, 0, len(paras))
	hit := 0
	for _, p := range paras {
		var line strings.Builder
		for _, seg := range p {
			switch seg.Kind {
			case annotate.Plain:
				line.WriteString(seg.Text)
				continue
			case annotate.Vocabulary:
				st := s.Vocab
				if hit == cursor {
					st = st.Inherit(s.Selected)
				}
				line.WriteString(st.Render(seg.Text))
			case annotate.Grammar:
				st := s.Grammar
				if hit == cursor {
					st = st.Inherit(s.Selected)
				}
				line.WriteString(st.Render(seg.Text))
			}
			hit++
		}
		out = append(out, wrap.Render(line.String()))
	}
	return strings.Join(out, "\n")
}

func (m Model) viewScriptorium() string {
	s := m.styles
	snap := m.ws.Snapshot()
	var b strings.Builder

	b.WriteString(s.Heading.Render(m.t(i18n.ScriptoriumTitle)) + "\n")
	b.WriteString(s.Subtitle.Render(m.t(i18n.ScriptoriumSubtitle)) + "\n\n")

	learning := "○"
	if snap.LearningMode {
		learning = "●"
	}
	b.WriteString(fmt.Sprintf("%s %s   %s %s\n",
		s.Label.Render(m.t(i18n.TargetLang)+":"), i18n.NativeName(snap.Language),
		s.Label.Render(m.t(i18n.LearningMode)+":"), learning))
	b.WriteString(s.Label.Render(m.t(i18n.PromptLabel)) + "\n" + m.promptInput.View() + "\n")

	switch {
	case m.generating:
		b.WriteString(m.spinner.View() + " " + m.t(i18n.GeneratingBtn) + "\n")
	case snap.Status == scriptorium.StatusError:
		b.WriteString(s.Error.Render(m.t(i18n.ErrorPrefix)+" "+snap.Error) + "\n")
	default:
		b.WriteString(s.Muted.Render("[g] "+m.t(i18n.GenerateBtn)) + "\n")
	}

	if snap.Result == nil {
		return b.String()
	}
	b.WriteString("\n" + m.story.View() + "\n")

	if snap.Result.Learning != nil {
		legend := s.Vocab.Render(m.t(i18n.LegendVocabulary)) + "  " + s.Grammar.Render(m.t(i18n.LegendGrammar))
		b.WriteString(s.Label.Render(m.t(i18n.AnalysisTools)) + "  " + legend + "\n")
		switch {
		case snap.SelectedVocab != nil:
			v := snap.SelectedVocab
			note := []string{
				s.Title.Render(v.Word) + " " + s.Muted.Render(v.PartOfSpeech),
				s.Label.Render(m.t(i18n.Translation)+": ") + v.Translation,
				s.Label.Render(m.t(i18n.Meaning)+": ") + v.Definition,
			}
			if m.store.HasWord(v.Word) {
				note = append(note, s.Flash.Render(m.t(i18n.AddedToLexicon)))
			} else {
				note = append(note, s.Muted.Render("[a] "+m.t(i18n.AddToTextbook)))
			}
			b.WriteString(s.Card.Render(strings.Join(note, "\n")) + "\n")
		case snap.SelectedGrammar != nil:
			g := snap.SelectedGrammar
			note := s.Label.Render(m.t(i18n.GrammarNote)) + "\n" + s.Title.Render(g.Rule) + "\n" + g.Explanation
			b.WriteString(s.Card.Render(note) + "\n")
		default:
			b.WriteString(s.Muted.Render(m.t(i18n.AnalysisHint)) + "\n")
		}
	}
	b.WriteString(s.Muted.Render("[s] "+m.t(i18n.SaveBtn)) + "\n")
	return b.String()
}
