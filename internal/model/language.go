package model

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported document language (ISO 639-1 base code)
type Language string

const (
	LanguageFrench  Language = "fr"
	LanguageEnglish Language = "en"
	LanguageSpanish Language = "es"

	// FallbackLanguage is used whenever a requested language is unsupported
	FallbackLanguage = LanguageFrench
)

// SupportedLanguages returns the supported languages, fallback first
func SupportedLanguages() []Language {
	return []Language{LanguageFrench, LanguageEnglish, LanguageSpanish}
}

var languageMatcher = language.NewMatcher([]language.Tag{
	language.French, // first entry is the matcher's default
	language.English,
	language.Spanish,
})

// ParseLanguage resolves free-form input ("en", "en-GB", "es_ES", "FR") to a
// supported language. Anything unrecognized resolves to FallbackLanguage.
func ParseLanguage(s string) Language {
	s = strings.TrimSpace(strings.ReplaceAll(s, "_", "-"))
	if s == "" {
		return FallbackLanguage
	}

	tag, err := language.Parse(s)
	if err != nil {
		return FallbackLanguage
	}

	_, idx, conf := languageMatcher.Match(tag)
	if conf == language.No {
		return FallbackLanguage
	}
	return SupportedLanguages()[idx]
}

// IsSupported reports whether l is one of the supported languages
func (l Language) IsSupported() bool {
	for _, s := range SupportedLanguages() {
		if l == s {
			return true
		}
	}
	return false
}
