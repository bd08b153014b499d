// Package domain holds the archive, story and lexicon types shared by every layer.
package domain

import (
	"fmt"
	"strings"
	"time"
)

// MemoryCategory classifies an archive entry. The values are the persisted strings.
type MemoryCategory string

const (
	CategoryCharacter MemoryCategory = "Character"
	CategorySetting   MemoryCategory = "World Setting"
	CategoryPlot      MemoryCategory = "Storyline"
	CategoryStyle     MemoryCategory = "Narrative Style"
)

// Categories lists every category in display order.
var Categories = []MemoryCategory{CategoryCharacter, CategorySetting, CategoryPlot, CategoryStyle}

// ParseCategory accepts either the persisted value or a short alias.
func ParseCategory(s string) (MemoryCategory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "character", "characters":
		return CategoryCharacter, nil
	case "setting", "world setting", "world":
		return CategorySetting, nil
	case "plot", "storyline":
		return CategoryPlot, nil
	case "style", "narrative style":
		return CategoryStyle, nil
	}
	return "", fmt.Errorf("unknown category %q (want character, setting, plot or style)", s)
}

// Next cycles to the following category, wrapping around.
func (c MemoryCategory) Next() MemoryCategory {
	for i, cat := range Categories {
		if cat == c {
			return Categories[(i+1)%len(Categories)]
		}
	}
	return CategoryCharacter
}

// MemoryItem is one archive entry used as story context.
type MemoryItem struct {
	ID          string         `json:"id"`
	Category    MemoryCategory `json:"category" validate:"required,oneof='Character' 'World Setting' 'Storyline' 'Narrative Style'"`
	Name        string         `json:"name" validate:"required"`
	Description string         `json:"description" validate:"required"`
}

// VocabItem is a vocabulary hit produced by the learning analysis.
type VocabItem struct {
	ID           string `json:"id"`
	Word         string `json:"word"`
	Translation  string `json:"translation"`
	Definition   string `json:"definition"`
	PartOfSpeech string `json:"partOfSpeech"`
}

// GrammarPoint anchors a grammar note to an exact sentence of the story.
type GrammarPoint struct {
	Sentence    string `json:"sentence"`
	Rule        string `json:"rule"`
	Explanation string `json:"explanation"`
}

// LearningAnalysis is the reply of the analysis call.
type LearningAnalysis struct {
	Vocabulary []VocabItem    `json:"vocabulary"`
	Grammar    []GrammarPoint `json:"grammar"`
}

// Empty reports whether the analysis carries nothing to highlight.
func (a LearningAnalysis) Empty() bool {
	return len(a.Vocabulary) == 0 && len(a.Grammar) == 0
}

// TextbookItem is a vocabulary item promoted into the lexicon.
type TextbookItem struct {
	VocabItem
	AddedAt int64 `json:"addedAt"` // unix milliseconds
}

// NewTextbookItem stamps a vocabulary item with the time it was collected.
func NewTextbookItem(v VocabItem, at time.Time) TextbookItem {
	return TextbookItem{VocabItem: v, AddedAt: at.UnixMilli()}
}

// GeneratedFiction is a story produced in the scriptorium. It is never persisted.
type GeneratedFiction struct {
	Title    string            `json:"title"`
	Content  string            `json:"content"`
	Date     string            `json:"date"`
	Language AppLanguage       `json:"language"`
	Learning *LearningAnalysis `json:"learningData,omitempty"`
}
