// Package status maps language-specific status labels to canonical keys.
package status

import (
	"errors"
	"fmt"

	"github.com/ppiankov/cartofolio/internal/model"
)

// ErrInvalidVocabulary is returned when a vocabulary breaks the label layout
var ErrInvalidVocabulary = errors.New("invalid status vocabulary")

// Registry resolves raw status labels per language
type Registry struct {
	labels   map[model.Language][]model.StatusLabel
	index    map[model.Language]map[string]model.StatusKey
	colors   map[model.StatusKey]string
	fallback model.Language
}

// NewRegistry creates a registry from a vocabulary configuration.
// A nil config uses the default vocabulary.
func NewRegistry(config *model.VocabularyConfig) (*Registry, error) {
	if config == nil {
		config = &model.DefaultConfig().Vocabulary
	}

	if err := Validate(config); err != nil {
		return nil, err
	}

	r := &Registry{
		labels:   make(map[model.Language][]model.StatusLabel, len(config.Labels)),
		index:    make(map[model.Language]map[string]model.StatusKey, len(config.Labels)),
		colors:   model.DefaultStatusColors(),
		fallback: model.FallbackLanguage,
	}

	for lang, labels := range config.Labels {
		r.labels[lang] = append([]model.StatusLabel(nil), labels...)
		idx := make(map[string]model.StatusKey, len(labels))
		for _, l := range labels {
			idx[l.Raw] = l.Key
		}
		r.index[lang] = idx
	}

	for key, color := range config.Colors {
		if color != "" {
			r.colors[key] = color
		}
	}

	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on an invalid vocabulary
func MustNewRegistry(config *model.VocabularyConfig) *Registry {
	r, err := NewRegistry(config)
	if err != nil {
		panic(err)
	}
	return r
}

// CanonicalKey maps a raw label in the given language to its canonical key.
// Languages without a vocabulary use the fallback language, like LabelsFor.
// Unknown labels yield StatusDefault.
func (r *Registry) CanonicalKey(raw string, lang model.Language) model.StatusKey {
	idx, ok := r.index[lang]
	if !ok {
		idx = r.index[r.fallback]
	}
	if key, ok := idx[raw]; ok {
		return key
	}
	return model.StatusDefault
}

// ColorOf returns the palette color of a key; unknown keys get the default color
func (r *Registry) ColorOf(key model.StatusKey) string {
	if color, ok := r.colors[key]; ok {
		return color
	}
	return r.colors[model.StatusDefault]
}

// LabelsFor returns the labels of a language in declaration order.
// Languages without a vocabulary use the fallback language.
func (r *Registry) LabelsFor(lang model.Language) []model.StatusLabel {
	labels, ok := r.labels[lang]
	if !ok {
		labels = r.labels[r.fallback]
	}
	return append([]model.StatusLabel(nil), labels...)
}

// Languages returns the languages that carry a vocabulary, in supported order
func (r *Registry) Languages() []model.Language {
	var out []model.Language
	for _, lang := range model.SupportedLanguages() {
		if _, ok := r.labels[lang]; ok {
			out = append(out, lang)
		}
	}
	return out
}

// CSSClass returns the marker/badge class name of a key
func CSSClass(key model.StatusKey) string {
	if key == "" {
		key = model.StatusDefault
	}
	return "statut-" + string(key)
}

// CSSClass returns the class name of a key; see the package-level CSSClass
func (r *Registry) CSSClass(key model.StatusKey) string {
	return CSSClass(key)
}

// Validate checks that every language lists each canonical key exactly once,
// at the same position as CanonicalStatuses, with unique non-empty labels.
// The fallback language must be present.
func Validate(config *model.VocabularyConfig) error {
	if _, ok := config.Labels[model.FallbackLanguage]; !ok {
		return fmt.Errorf("%w: missing fallback language %q", ErrInvalidVocabulary, model.FallbackLanguage)
	}

	canonical := model.CanonicalStatuses()
	for lang, labels := range config.Labels {
		if !lang.IsSupported() {
			return fmt.Errorf("%w: unsupported language %q", ErrInvalidVocabulary, lang)
		}
		if len(labels) != len(canonical) {
			return fmt.Errorf("%w: %s lists %d labels, want %d", ErrInvalidVocabulary, lang, len(labels), len(canonical))
		}

		seen := make(map[string]bool, len(labels))
		for i, l := range labels {
			if l.Key != canonical[i] {
				return fmt.Errorf("%w: %s label %d is %q, want key %q", ErrInvalidVocabulary, lang, i, l.Key, canonical[i])
			}
			if l.Raw == "" {
				return fmt.Errorf("%w: %s has an empty label for %q", ErrInvalidVocabulary, lang, l.Key)
			}
			if seen[l.Raw] {
				return fmt.Errorf("%w: %s repeats label %q", ErrInvalidVocabulary, lang, l.Raw)
			}
			seen[l.Raw] = true
		}
	}

	return nil
}
