package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Evrosil/The-Aetherial-Quill/internal/domain"
	"github.com/Evrosil/The-Aetherial-Quill/internal/i18n"
)

const cardsPerRow = 3

func (m Model) updateLexicon(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.store.Textbook())
	if n == 0 {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Left):
		m.cardCursor = max(m.cardCursor-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.cardCursor = min(m.cardCursor+1, n-1)
	case key.Matches(msg, m.keys.Up):
		m.cardCursor = max(m.cardCursor-cardsPerRow, 0)
	case key.Matches(msg, m.keys.Down):
		m.cardCursor = min(m.cardCursor+cardsPerRow, n-1)
	case key.Matches(msg, m.keys.Flip):
		if m.cardCursor >= n {
			m.cardCursor = n - 1
		}
		id := cardKey(m.store.Textbook()[m.cardCursor])
		m.flipped[id] = !m.flipped[id]
	}
	return m, nil
}

func cardKey(item domain.TextbookItem) string {
	if item.ID != "" {
		return item.ID
	}
	return item.Word
}

// Flipped reports whether the card for item shows its back.
func (m Model) Flipped(item domain.TextbookItem) bool {
	return m.flipped[cardKey(item)]
}

func (m Model) viewLexicon() string {
	s := m.styles
	items := m.store.Textbook()
	var b strings.Builder

	b.WriteString(s.Heading.Render(m.t(i18n.FlashcardsTitle)) + "\n")
	b.WriteString(s.Subtitle.Render(m.t(i18n.FlashcardsSubtitle)) + "\n\n")
	if len(items) == 0 {
		b.WriteString(s.Muted.Render(m.t(i18n.EmptyTextbook)) + "\n")
		return b.String()
	}

	var row []string
	for i, item := range items {
		row = append(row, m.renderCard(item, i == m.cardCursor))
		if len(row) == cardsPerRow || i == len(items)-1 {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...) + "\n")
			row = row[:0]
		}
	}
	b.WriteString(s.Muted.Render("[space] "+m.t(i18n.FlipCard)) + "\n")
	return b.String()
}

func (m Model) renderCard(item domain.TextbookItem, selected bool) string {
	s := m.styles
	var body string
	style := s.Flashcard
	if m.Flipped(item) {
		style = s.Flipped
		body = fmt.Sprintf("%s\n\n%s", s.Title.Render(item.Translation), item.Definition)
	} else {
		body = fmt.Sprintf("%s\n%s", s.Title.Render(item.Word), s.Muted.Render(item.PartOfSpeech))
	}
	if selected {
		style = style.BorderForeground(Oxblood).Bold(true)
	}
	return style.Render(body)
}
