package muse

import (
	"fmt"
	"strings"

	"github.com/Evrosil/The-Aetherial-Quill/internal/domain"
)

// CategoryContextLabel is the heading a category's entries carry in the prompt.
func CategoryContextLabel(c domain.MemoryCategory) string {
	switch c {
	case domain.CategoryCharacter:
		return "DRAMATIS PERSONAE (Characters & Traits)"
	case domain.CategorySetting:
		return "SETTING & ATMOSPHERE (World Building Rules)"
	case domain.CategoryPlot:
		return "PLOT OUTLINE (Required Events)"
	case domain.CategoryStyle:
		return "STYLISTIC INSTRUCTIONS (Tone, Voice, & Constraints)"
	default:
		return "ADDITIONAL CONTEXT"
	}
}

// MemoryContext renders the archive for the story prompt, in archive order.
func MemoryContext(items []domain.MemoryItem) string {
	if len(items) == 0 {
		return emptyArchives
	}

	blocks := make([]string, 0, len(items))
	for _, item := range items {
		blocks = append(blocks, fmt.Sprintf("[%s]:\n Name: %s\n Details: %s",
			CategoryContextLabel(item.Category), item.Name, item.Description))
	}
	return strings.Join(blocks, "\n\n")
}
