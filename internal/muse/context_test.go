package muse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Evrosil/The-Aetherial-Quill/internal/domain"
)

func TestMemoryContext(t *testing.T) {
	assert.Equal(t, "The archives are currently empty.", MemoryContext(nil))

	got := MemoryContext([]domain.MemoryItem{
		{Category: domain.CategorySetting, Name: "London", Description: "fog"},
		{Category: domain.MemoryCategory("Other"), Name: "X", Description: "Y"},
	})
	want := "[SETTING & ATMOSPHERE (World Building Rules)]:\n Name: London\n Details: fog" +
		"\n\n" +
		"[ADDITIONAL CONTEXT]:\n Name: X\n Details: Y"
	assert.Equal(t, want, got)
}

func TestCategoryContextLabel(t *testing.T) {
	tests := map[domain.MemoryCategory]string{
		domain.CategoryCharacter: "DRAMATIS PERSONAE (Characters & Traits)",
		domain.CategorySetting:   "SETTING & ATMOSPHERE (World Building Rules)",
		domain.CategoryPlot:      "PLOT OUTLINE (Required Events)",
		domain.CategoryStyle:     "STYLISTIC INSTRUCTIONS (Tone, Voice, & Constraints)",
	}
	for cat, want := range tests {
		assert.Equal(t, want, CategoryContextLabel(cat))
	}
}
