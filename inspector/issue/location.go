package issue

import (
	"path"
	"strconv"
	"strings"
)

// Location represents where a finding occurs
type Location struct {
	path string
	line int
}

// NewLocation creates a location, line 0 means no line association
func NewLocation(aPath string, line int) *Location {
	return &Location{path: aPath, line: line}
}

// Path returns location path
func (l *Location) Path() string {
	return l.path
}

// Line returns location line
func (l *Location) Line() int {
	return l.line
}

// Filename returns the base name of the path
func (l *Location) Filename() string {
	if l.path == "" {
		return ""
	}
	return path.Base(l.path)
}

// Extension returns file extension including the dot
func (l *Location) Extension() string {
	return path.Ext(l.path)
}

// IsValid returns true if location is associated with a file
func (l *Location) IsValid() bool {
	return l.path != ""
}

func (l *Location) String() string {
	if l.line == 0 {
		return l.path
	}
	builder := strings.Builder{}
	builder.WriteString(l.path)
	builder.WriteString(":")
	builder.WriteString(strconv.Itoa(l.line))
	return builder.String()
}
