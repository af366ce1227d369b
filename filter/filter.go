package filter

import (
	"strings"

	"github.com/viant/auditor/config"
	"github.com/viant/auditor/inspector/issue"
	"golang.org/x/text/cases"
)

// Filter matches issues for a single display refresh
type Filter struct {
	Search       string
	Areas        []string
	ShowMuted    bool
	CriticalOnly bool
	Rules        config.Rules

	caser  *cases.Caser
	folded string
}

// New creates a filter
func New(search string, rules config.Rules) *Filter {
	ret := &Filter{Rules: rules}
	ret.SetSearch(search)
	return ret
}

// SetSearch sets free text search
func (f *Filter) SetSearch(search string) {
	f.Search = search
	f.folded = f.fold(strings.TrimSpace(search))
}

// HasSearch returns true if free text search is active
func (f *Filter) HasSearch() bool {
	return f.folded != ""
}

// Match returns true if the issue passes all criteria
func (f *Filter) Match(anIssue *issue.Issue) bool {
	if anIssue == nil {
		return false
	}
	if len(f.Areas) > 0 && !f.matchArea(anIssue.Descriptor.Area) {
		return false
	}
	if f.CriticalOnly && !anIssue.IsPerfCriticalContext() {
		return false
	}
	if !f.ShowMuted && f.Rules.IsMuted(anIssue) {
		return false
	}
	if f.folded == "" {
		return true
	}
	for _, candidate := range []string{anIssue.Description, anIssue.Name(), anIssue.RelativePath(), anIssue.Descriptor.Description} {
		if strings.Contains(f.fold(candidate), f.folded) {
			return true
		}
	}
	return false
}

func (f *Filter) matchArea(area string) bool {
	for _, candidate := range f.Areas {
		if strings.EqualFold(candidate, area) {
			return true
		}
	}
	return false
}

func (f *Filter) fold(text string) string {
	if f.caser == nil {
		caser := cases.Fold()
		f.caser = &caser
	}
	return f.caser.String(text)
}
