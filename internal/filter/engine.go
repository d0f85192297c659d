// Package filter narrows a mission collection by the active selection.
package filter

import (
	"github.com/ppiankov/cartofolio/internal/model"
)

// Categorizer maps hardware names to the set of their categories
type Categorizer interface {
	CategorySet(names []string) map[string]struct{}
}

// Engine applies selections to missions.
// Every selected value on every axis must be present for a mission to match.
type Engine struct {
	categorizer Categorizer
}

// NewEngine creates an engine that compares hardware by category
func NewEngine(categorizer Categorizer) *Engine {
	return &Engine{categorizer: categorizer}
}

// Apply returns the missions matching the selection, in input order.
// The result is never nil; an empty selection returns every mission.
func (e *Engine) Apply(missions []model.Mission, sel model.Selection) []model.Mission {
	out := make([]model.Mission, 0, len(missions))

	if sel.IsEmpty() {
		return append(out, missions...)
	}

	for i := range missions {
		if e.Matches(&missions[i], sel) {
			out = append(out, missions[i])
		}
	}
	return out
}

// Matches reports whether a single mission satisfies the selection
func (e *Engine) Matches(m *model.Mission, sel model.Selection) bool {
	if len(sel.Statuses) > 0 {
		if _, ok := sel.Statuses[m.Status]; !ok {
			return false
		}
	}

	if !containsAll(toSet(m.Skills), sel.Skills) {
		return false
	}
	if len(sel.HardwareCategories) > 0 && !containsAll(e.categorizer.CategorySet(m.Hardware), sel.HardwareCategories) {
		return false
	}
	return containsAll(toSet(m.Software), sel.Software)
}

// containsAll reports whether every wanted value is in have
func containsAll(have, wanted map[string]struct{}) bool {
	for w := range wanted {
		if _, ok := have[w]; !ok {
			return false
		}
	}
	return true
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
