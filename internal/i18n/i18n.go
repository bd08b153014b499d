package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/Evrosil/The-Aetherial-Quill/internal/domain"
)

var tags = map[domain.AppLanguage]language.Tag{
	domain.LangEnglish: language.English,
	domain.LangChinese: language.SimplifiedChinese,
	domain.LangGerman:  language.German,
	domain.LangSpanish: language.Spanish,
}

// promptNames are the English names handed to the model. They stay fixed
// regardless of what the CLDR tables call the language.
var promptNames = map[domain.AppLanguage]string{
	domain.LangEnglish: "English",
	domain.LangChinese: "Simplified Chinese",
	domain.LangGerman:  "German",
	domain.LangSpanish: "Spanish",
}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.SimplifiedChinese,
	language.German,
	language.Spanish,
})

// T returns the string for key in lang, falling back to English and then to
// the key itself.
func T(lang domain.AppLanguage, key Key) string {
	if s, ok := table[lang][key]; ok {
		return s
	}
	if s, ok := table[domain.LangEnglish][key]; ok {
		return s
	}
	return string(key)
}

// CategoryName is the localized label of a memory category.
func CategoryName(lang domain.AppLanguage, cat domain.MemoryCategory) string {
	switch cat {
	case domain.CategoryCharacter:
		return T(lang, CatCharacter)
	case domain.CategorySetting:
		return T(lang, CatSetting)
	case domain.CategoryPlot:
		return T(lang, CatPlot)
	case domain.CategoryStyle:
		return T(lang, CatStyle)
	}
	return string(cat)
}

// Tag maps a supported language to its BCP 47 tag.
func Tag(lang domain.AppLanguage) language.Tag {
	if t, ok := tags[lang]; ok {
		return t
	}
	return language.English
}

// PromptName is the English name of lang used inside model instructions.
// Unknown codes resolve to English.
func PromptName(lang domain.AppLanguage) string {
	if n, ok := promptNames[lang]; ok {
		return n
	}
	return promptNames[domain.LangEnglish]
}

// NativeName is the language's name written in itself, for the selector.
func NativeName(lang domain.AppLanguage) string {
	if n := display.Self.Name(Tag(lang)); n != "" {
		return n
	}
	return PromptName(lang)
}

// Match picks the closest supported language for a locale string such as
// "de_DE.UTF-8" or "es-MX". Anything unrecognised yields English.
func Match(locale string) domain.AppLanguage {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.ReplaceAll(locale, "_", "-")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return domain.LangEnglish
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return domain.LangEnglish
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return domain.LangEnglish
	}
	return domain.Languages[idx]
}
