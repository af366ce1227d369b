package config

import "github.com/viant/auditor/inspector/issue"

// Rule overrides descriptor severity, optionally only for a calling method
type Rule struct {
	ID       int            `yaml:"id" toml:"id"`
	Filter   string         `yaml:"filter,omitempty" toml:"filter"`
	Severity issue.Severity `yaml:"severity" toml:"severity"`
}

// Rules represents rule overrides
type Rules []*Rule

// Get returns rule for descriptor id and filter, falling back to the rule without filter
func (r Rules) Get(id int, filter string) *Rule {
	var fallback *Rule
	for _, rule := range r {
		if rule.ID != id {
			continue
		}
		if rule.Filter == filter {
			return rule
		}
		if rule.Filter == "" && fallback == nil {
			fallback = rule
		}
	}
	return fallback
}

// IsMuted returns true if a rule sets severity None for the issue
func (r Rules) IsMuted(anIssue *issue.Issue) bool {
	if anIssue == nil || anIssue.Descriptor == nil {
		return false
	}
	rule := r.Get(anIssue.Descriptor.ID, anIssue.CallingMethod())
	return rule != nil && rule.Severity == issue.SeverityNone
}

// Add adds or replaces a rule
func (r *Rules) Add(rule *Rule) {
	for i, candidate := range *r {
		if candidate.ID == rule.ID && candidate.Filter == rule.Filter {
			(*r)[i] = rule
			return
		}
	}
	*r = append(*r, rule)
}
