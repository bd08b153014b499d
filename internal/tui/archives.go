package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Evrosil/The-Aetherial-Quill/internal/domain"
	"github.com/Evrosil/The-Aetherial-Quill/internal/i18n"
	"github.com/Evrosil/The-Aetherial-Quill/internal/muse"
)

const (
	fieldName = iota
	fieldDescription
)

func (m Model) updateArchives(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.store.Memories()
	switch {
	case key.Matches(msg, m.keys.NewEntry):
		m.formOpen = true
		m.formField = fieldName
		m.descInput.Blur()
		cmd := m.nameInput.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Up):
		if m.listCursor > 0 {
			m.listCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.listCursor < len(items)-1 {
			m.listCursor++
		}
	case key.Matches(msg, m.keys.Delete):
		if m.listCursor < len(items) {
			m.confirmDelete = items[m.listCursor].ID
		}
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		id := m.confirmDelete
		m.confirmDelete = ""
		if _, err := m.store.DeleteMemory(m.ctx, id); err != nil {
			m.logger.Error("deleting memory", "id", id, "error", err)
			m.errMsg = err.Error()
			return m, nil
		}
		if n := len(m.store.Memories()); m.listCursor >= n {
			m.listCursor = max(n-1, 0)
		}
	case key.Matches(msg, m.keys.Cancel):
		m.confirmDelete = ""
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.formOpen = false
		m.nameInput.Blur()
		m.descInput.Blur()
		return m, nil
	case key.Matches(msg, m.keys.SwitchField):
		if m.formField == fieldName {
			m.formField = fieldDescription
			m.nameInput.Blur()
			cmd := m.descInput.Focus()
			return m, cmd
		}
		m.formField = fieldName
		m.descInput.Blur()
		cmd := m.nameInput.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.CycleCategory):
		m.category = m.category.Next()
		return m, nil
	case key.Matches(msg, m.keys.ConsultMuse):
		cmd := m.consultMuse()
		return m, cmd
	case key.Matches(msg, m.keys.FileEntry):
		m.fileEntry()
		return m, nil
	}

	var cmd tea.Cmd
	if m.formField == fieldName {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.descInput, cmd = m.descInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) draft() muse.EntryDraft {
	return muse.EntryDraft{
		Category:    m.category,
		Name:        m.nameInput.Value(),
		Description: m.descInput.Value(),
	}
}

func (m *Model) consultMuse() tea.Cmd {
	if m.enhancing || m.enhancer == nil {
		return nil
	}
	m.enhancing = true
	m.errMsg = ""
	ctx, enhancer, draft, lang := m.ctx, m.enhancer, m.draft(), m.lang()
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		out, err := enhancer.EnhanceEntry(ctx, draft, lang)
		return enhancedMsg{draft: out, err: err}
	})
}

// fileEntry archives the form when both name and description are filled.
func (m *Model) fileEntry() {
	d := m.draft()
	if strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.Description) == "" {
		return
	}
	if _, err := m.store.AddMemory(m.ctx, domain.MemoryItem{Category: d.Category, Name: d.Name, Description: d.Description}); err != nil {
		m.logger.Error("archiving memory", "error", err)
		m.errMsg = err.Error()
		return
	}
	m.nameInput.Reset()
	m.descInput.Reset()
	m.formOpen = false
	m.nameInput.Blur()
	m.descInput.Blur()
	m.listCursor = 0
	m.errMsg = ""
}

func (m Model) viewArchives() string {
	lang := m.lang()
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Heading.Render(m.t(i18n.ArchivesTitle)) + "\n")
	b.WriteString(s.Subtitle.Render(m.t(i18n.ArchivesSubtitle)) + "\n\n")

	var form strings.Builder
	form.WriteString(s.Label.Render(m.t(i18n.NewEntry)) + "\n")
	form.WriteString(s.Label.Render(m.t(i18n.Category)+": ") + i18n.CategoryName(lang, m.category) + "\n")
	form.WriteString(s.Label.Render(m.t(i18n.NameTitle)) + "\n" + m.nameInput.View() + "\n")
	form.WriteString(s.Label.Render(m.t(i18n.Description)) + "\n" + m.descInput.View() + "\n")
	if m.enhancing {
		form.WriteString(m.spinner.View() + " " + s.Muted.Render(m.t(i18n.ConsultMuse)+"..."))
	} else if m.formOpen {
		form.WriteString(s.Muted.Render(fmt.Sprintf("ctrl+e %s · ctrl+s %s", m.t(i18n.ConsultMuse), m.t(i18n.ArchiveEntry))))
	}
	b.WriteString(s.Card.Render(form.String()) + "\n")

	items := m.store.Memories()
	if len(items) == 0 {
		b.WriteString(s.Muted.Render(m.t(i18n.EmptyArchives)) + "\n")
	}
	for i, item := range items {
		marker := "  "
		if i == m.listCursor && !m.formOpen {
			marker = s.Cursor.Render("▸ ")
		}
		b.WriteString(marker + s.Label.Render("["+i18n.CategoryName(lang, item.Category)+"] ") + item.Name + "\n")
		b.WriteString("    " + s.Muted.Render(truncate(item.Description, max(m.width-8, 40))) + "\n")
	}

	if m.confirmDelete != "" {
		dialog := lipgloss.JoinVertical(lipgloss.Left,
			s.Error.Render(m.t(i18n.DeleteConfirmTitle)),
			m.t(i18n.DeleteConfirmMsg),
			"",
			fmt.Sprintf("[y] %s   [n] %s", m.t(i18n.Confirm), m.t(i18n.Cancel)),
		)
		b.WriteString("\n" + s.Dialog.Render(dialog) + "\n")
	}
	return b.String()
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
