package domain

import "fmt"

// AppLanguage drives both the UI strings and the language a story is written in.
type AppLanguage string

const (
	LangEnglish AppLanguage = "en"
	LangChinese AppLanguage = "zh"
	LangGerman  AppLanguage = "de"
	LangSpanish AppLanguage = "es"
)

// Languages lists the supported languages in selector order.
var Languages = []AppLanguage{LangEnglish, LangChinese, LangGerman, LangSpanish}

// Valid reports whether l is one of the supported languages.
func (l AppLanguage) Valid() bool {
	for _, lang := range Languages {
		if lang == l {
			return true
		}
	}
	return false
}

// Next cycles to the following language, wrapping around.
func (l AppLanguage) Next() AppLanguage {
	for i, lang := range Languages {
		if lang == l {
			return Languages[(i+1)%len(Languages)]
		}
	}
	return LangEnglish
}

// ParseLanguage validates a language code.
func ParseLanguage(s string) (AppLanguage, error) {
	l := AppLanguage(s)
	if !l.Valid() {
		return "", fmt.Errorf("unsupported language %q (want one of %v)", s, Languages)
	}
	return l, nil
}
