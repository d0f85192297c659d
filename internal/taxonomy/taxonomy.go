// Package taxonomy derives the filter vocabularies of a mission collection.
package taxonomy

import (
	"sort"
	"strings"

	"github.com/ppiankov/cartofolio/internal/model"
)

// Categorizer maps a hardware name to its category
type Categorizer interface {
	Categorize(name string) string
}

// Build scans the missions once and returns the distinct skills, hardware
// categories and software values, each sorted in ordinal order.
// Every call returns fresh slices; nothing is retained between calls.
func Build(missions []model.Mission, categorizer Categorizer) model.Taxonomy {
	acc := newAccumulator()
	for i := range missions {
		acc.add(&missions[i], categorizer)
	}
	return acc.taxonomy()
}

type accumulator struct {
	skills   map[string]struct{}
	hardware map[string]struct{}
	software map[string]struct{}
}

func newAccumulator() *accumulator {
	return &accumulator{
		skills:   make(map[string]struct{}),
		hardware: make(map[string]struct{}),
		software: make(map[string]struct{}),
	}
}

func (a *accumulator) add(m *model.Mission, categorizer Categorizer) {
	for _, s := range m.Skills {
		if s != "" {
			a.skills[s] = struct{}{}
		}
	}
	for _, h := range m.Hardware {
		if h != "" {
			a.hardware[categorizer.Categorize(h)] = struct{}{}
		}
	}
	for _, s := range m.Software {
		if s != "" {
			a.software[s] = struct{}{}
		}
	}
}

func (a *accumulator) merge(other *accumulator) {
	for k := range other.skills {
		a.skills[k] = struct{}{}
	}
	for k := range other.hardware {
		a.hardware[k] = struct{}{}
	}
	for k := range other.software {
		a.software[k] = struct{}{}
	}
}

func (a *accumulator) taxonomy() model.Taxonomy {
	return model.Taxonomy{
		Skills:             sortedKeys(a.skills),
		HardwareCategories: sortedKeys(a.hardware),
		Software:           sortedKeys(a.software),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Search returns the values containing term, case-insensitively, in their
// original order. An empty term returns every value.
func Search(values []string, term string) []string {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return append([]string(nil), values...)
	}

	var out []string
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), term) {
			out = append(out, v)
		}
	}
	return out
}

// Count is the number of missions carrying a vocabulary value
type Count struct {
	Value    string `json:"value"`
	Missions int    `json:"missions"`
}

// Counts holds per-value mission counts for each axis, sorted like the taxonomy
type Counts struct {
	Skills             []Count `json:"skills"`
	HardwareCategories []Count `json:"hardware_categories"`
	Software           []Count `json:"software"`
}

// CountMissions counts, for each vocabulary value, how many missions carry it.
// A mission listing the same value twice counts once.
func CountMissions(missions []model.Mission, categorizer Categorizer) Counts {
	skills := make(map[string]int)
	hardware := make(map[string]int)
	software := make(map[string]int)

	for i := range missions {
		m := &missions[i]
		countOnce(skills, m.Skills, nil)
		countOnce(hardware, m.Hardware, categorizer)
		countOnce(software, m.Software, nil)
	}

	return Counts{
		Skills:             sortedCounts(skills),
		HardwareCategories: sortedCounts(hardware),
		Software:           sortedCounts(software),
	}
}

func countOnce(counts map[string]int, values []string, categorizer Categorizer) {
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if categorizer != nil {
			v = categorizer.Categorize(v)
		}
		if !seen[v] {
			seen[v] = true
			counts[v]++
		}
	}
}

func sortedCounts(counts map[string]int) []Count {
	out := make([]Count, 0, len(counts))
	for v, n := range counts {
		out = append(out, Count{Value: v, Missions: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}
