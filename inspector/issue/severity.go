package issue

import (
	"fmt"
	"strings"
)

// Severity defines the importance of an issue
type Severity int

const (
	// SeverityDefault defers to the descriptor
	SeverityDefault Severity = iota
	SeverityError
	SeverityWarning
	SeverityInfo
	// SeverityNone mutes an issue
	SeverityNone
	SeverityHidden
)

var severityNames = []string{"Default", "Error", "Warning", "Info", "None", "Hidden"}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "Unknown"
	}
	return severityNames[s]
}

// MarshalText encodes severity name
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes severity name, case-insensitive
func (s *Severity) UnmarshalText(text []byte) error {
	name := strings.TrimSpace(string(text))
	for i, candidate := range severityNames {
		if strings.EqualFold(candidate, name) {
			*s = Severity(i)
			return nil
		}
	}
	return fmt.Errorf("unknown severity: %s", name)
}
