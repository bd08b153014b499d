package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in      string
		want    MemoryCategory
		wantErr bool
	}{
		{"character", CategoryCharacter, false},
		{"World Setting", CategorySetting, false},
		{" plot ", CategoryPlot, false},
		{"Narrative Style", CategoryStyle, false},
		{"weather", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCategory(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseCategory(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCyclingWraps(t *testing.T) {
	if got := CategoryStyle.Next(); got != CategoryCharacter {
		t.Errorf("CategoryStyle.Next() = %q", got)
	}
	if got := LangSpanish.Next(); got != LangEnglish {
		t.Errorf("LangSpanish.Next() = %q", got)
	}
	if got := AppLanguage("fr").Next(); got != LangEnglish {
		t.Errorf("unknown language should cycle back to English, got %q", got)
	}
}

func TestTextbookItemFlattensJSON(t *testing.T) {
	at := time.UnixMilli(1700000000000)
	item := NewTextbookItem(VocabItem{ID: "v1", Word: "fog", PartOfSpeech: "noun"}, at)

	data, err := json.Marshal(item)
	if err != nil {
		t.Fatal(err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	if raw["word"] != "fog" || raw["partOfSpeech"] != "noun" {
		t.Errorf("embedded vocab fields should be flattened, got %s", data)
	}
	if raw["addedAt"] != float64(1700000000000) {
		t.Errorf("addedAt = %v", raw["addedAt"])
	}
}
