package report

import (
	"strconv"

	"github.com/viant/auditor/inspector/issue"
)

// Record is a serializable issue
type Record struct {
	Fingerprint   string   `yaml:"fingerprint" json:"fingerprint" msgpack:"fingerprint"`
	ID            int      `yaml:"id" json:"id" msgpack:"id"`
	Descriptor    string   `yaml:"descriptor" json:"descriptor" msgpack:"descriptor"`
	Area          string   `yaml:"area,omitempty" json:"area,omitempty" msgpack:"area,omitempty"`
	Category      string   `yaml:"category" json:"category" msgpack:"category"`
	Severity      string   `yaml:"severity" json:"severity" msgpack:"severity"`
	Critical      bool     `yaml:"critical,omitempty" json:"critical,omitempty" msgpack:"critical,omitempty"`
	Description   string   `yaml:"description,omitempty" json:"description,omitempty" msgpack:"description,omitempty"`
	Name          string   `yaml:"name,omitempty" json:"name,omitempty" msgpack:"name,omitempty"`
	Path          string   `yaml:"path,omitempty" json:"path,omitempty" msgpack:"path,omitempty"`
	Line          int      `yaml:"line,omitempty" json:"line,omitempty" msgpack:"line,omitempty"`
	CallingMethod string   `yaml:"callingMethod,omitempty" json:"callingMethod,omitempty" msgpack:"callingMethod,omitempty"`
	Properties    []string `yaml:"properties,omitempty" json:"properties,omitempty" msgpack:"properties,omitempty"`
}

// NewRecord creates a record from an issue
func NewRecord(anIssue *issue.Issue) *Record {
	return &Record{
		Fingerprint:   strconv.FormatUint(anIssue.Fingerprint(), 16),
		ID:            anIssue.Descriptor.ID,
		Descriptor:    anIssue.Descriptor.Description,
		Area:          anIssue.Descriptor.Area,
		Category:      anIssue.Category.String(),
		Severity:      anIssue.Severity().String(),
		Critical:      anIssue.IsPerfCriticalContext(),
		Description:   anIssue.Description,
		Name:          anIssue.Name(),
		Path:          anIssue.RelativePath(),
		Line:          anIssue.Line(),
		CallingMethod: anIssue.CallingMethod(),
		Properties:    anIssue.CustomProperties(),
	}
}

// NewRecords creates records from issues
func NewRecords(issues []*issue.Issue) []*Record {
	ret := make([]*Record, 0, len(issues))
	for _, anIssue := range issues {
		ret = append(ret, NewRecord(anIssue))
	}
	return ret
}
