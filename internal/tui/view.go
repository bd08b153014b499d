package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/Evrosil/The-Aetherial-Quill/internal/i18n"
)

func (m Model) View() string {
	s := m.styles
	lang := m.lang()

	header := s.Title.Render(m.t(i18n.AppTitle)) + "  " + s.Subtitle.Render(m.t(i18n.AppSubtitle))

	labels := make([]string, 0, len(tabs))
	for _, t := range tabs {
		style := s.Tab
		if t == m.tab {
			style = s.ActiveTab
		}
		labels = append(labels, style.Render(t.label(lang)))
	}
	labels = append(labels, s.Muted.Render("  "+i18n.NativeName(lang)))
	tabRow := lipgloss.JoinHorizontal(lipgloss.Top, labels...)

	var body string
	switch m.tab {
	case TabScriptorium:
		body = m.viewScriptorium()
	case TabLexicon:
		body = m.viewLexicon()
	default:
		body = m.viewArchives()
	}

	var footer strings.Builder
	if m.errMsg != "" {
		footer.WriteString(s.Error.Render(m.t(i18n.ErrorPrefix)+" "+m.errMsg) + "\n")
	}
	if m.flash != "" {
		footer.WriteString(s.Flash.Render(m.flash) + "\n")
	}
	footer.WriteString(m.help.ShortHelpView(m.helpBindings()) + "\n")
	footer.WriteString(s.Muted.Render(m.t(i18n.Footer)))

	return lipgloss.JoinVertical(lipgloss.Left, header, tabRow, "", body, footer.String())
}

func (m Model) helpBindings() []key.Binding {
	k := m.keys
	switch {
	case m.confirmDelete != "":
		return []key.Binding{k.Confirm, k.Cancel}
	case m.tab == TabArchives && m.formOpen:
		return []key.Binding{k.SwitchField, k.CycleCategory, k.ConsultMuse, k.FileEntry, k.Back}
	case m.tab == TabScriptorium && m.editingPrompt:
		return []key.Binding{key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "inscribe")), k.Back}
	case m.tab == TabArchives:
		return []key.Binding{k.NewEntry, k.Up, k.Down, k.Delete, k.NextTab, k.UILanguage, k.Quit}
	case m.tab == TabScriptorium:
		return []key.Binding{k.EditPrompt, k.Generate, k.StoryLang, k.LearningMode, k.Left, k.Right, k.Select, k.AddToLexicon, k.Save, k.Quit}
	default:
		return []key.Binding{k.Left, k.Right, k.Flip, k.NextTab, k.UILanguage, k.Quit}
	}
}
