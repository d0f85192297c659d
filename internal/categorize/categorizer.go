// Package categorize maps free-text tool names to coarse categories.
package categorize

import (
	"strings"

	"github.com/ppiankov/cartofolio/internal/model"
)

// Categorizer resolves tool names against an ordered rule list
type Categorizer struct {
	rules []compiledRule
}

type compiledRule struct {
	substrings []string
	category   string
}

// NewCategorizer creates a categorizer from the given rules.
// A nil config uses the default rules.
func NewCategorizer(config *model.CategoryConfig) *Categorizer {
	if config == nil {
		config = &model.DefaultConfig().Categories
	}

	c := &Categorizer{
		rules: make([]compiledRule, 0, len(config.Rules)),
	}

	for _, rule := range config.Rules {
		if rule.Category == "" {
			continue
		}
		compiled := compiledRule{category: rule.Category}
		for _, sub := range rule.Substrings {
			sub = strings.ToLower(sub)
			if sub != "" {
				compiled.substrings = append(compiled.substrings, sub)
			}
		}
		if len(compiled.substrings) > 0 {
			c.rules = append(c.rules, compiled)
		}
	}

	return c
}

// Categorize returns the category of the first rule matching the lowercased
// name, or the name unchanged when no rule matches.
func (c *Categorizer) Categorize(name string) string {
	if category, ok := c.Match(name); ok {
		return category
	}
	return name
}

// Match returns the category of the first matching rule and whether any
// rule matched.
func (c *Categorizer) Match(name string) (string, bool) {
	lower := strings.ToLower(name)

	for _, rule := range c.rules {
		for _, sub := range rule.substrings {
			if strings.Contains(lower, sub) {
				return rule.category, true
			}
		}
	}

	return "", false
}

// CategorizeAll categorizes every name, dropping duplicate categories.
// Output follows first occurrence order.
func (c *Categorizer) CategorizeAll(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))

	for _, name := range names {
		category := c.Categorize(name)
		if !seen[category] {
			seen[category] = true
			out = append(out, category)
		}
	}

	return out
}

// CategorySet returns the set of categories of the given names
func (c *Categorizer) CategorySet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[c.Categorize(name)] = struct{}{}
	}
	return set
}

// Rules returns a copy of the active rules in evaluation order
func (c *Categorizer) Rules() []model.CategoryRule {
	out := make([]model.CategoryRule, len(c.rules))
	for i, r := range c.rules {
		out[i] = model.CategoryRule{
			Substrings: append([]string(nil), r.substrings...),
			Category:   r.category,
		}
	}
	return out
}
