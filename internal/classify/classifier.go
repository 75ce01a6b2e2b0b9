// Package classify maps free-text service names to categories using
// substring-matching rules.
package classify

import "strings"

// Uncategorized is returned when the name is empty or matches no rule.
const Uncategorized = "Uncategorized"

// Rule associates one category with its ordered list of lower-case needles.
type Rule struct {
	Category string
	Needles  []string
}

// Classifier checks service names against an ordered rule table. The table
// is fixed at construction; rule order is the tie-break when a name could
// match more than one category.
type Classifier struct {
	rules []Rule
}

// New builds a Classifier from rules. Needles are lower-cased once here so
// Classify only has to fold the input.
func New(rules []Rule) *Classifier {
	owned := make([]Rule, len(rules))
	for i, r := range rules {
		needles := make([]string, len(r.Needles))
		for j, n := range r.Needles {
			needles[j] = strings.ToLower(strings.TrimSpace(n))
		}
		owned[i] = Rule{Category: r.Category, Needles: needles}
	}
	return &Classifier{rules: owned}
}

// Classify returns the first category whose any needle is a substring of the
// lower-cased, trimmed name, or Uncategorized on no match.
func (c *Classifier) Classify(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Uncategorized
	}
	for _, r := range c.rules {
		for _, needle := range r.Needles {
			if needle != "" && strings.Contains(name, needle) {
				return r.Category
			}
		}
	}
	return Uncategorized
}

// Rules returns a copy of the rule table, mainly for the rules endpoint.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}
