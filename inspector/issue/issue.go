package issue

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/viant/auditor/inspector/graph"
)

var (
	// ErrPropertiesAlreadySet is returned when custom properties are set twice with a different width
	ErrPropertiesAlreadySet = errors.New("custom properties already set")
	// ErrPropertyIndex is returned when a custom property index is out of range
	ErrPropertyIndex = errors.New("custom property index out of range")
)

// Issue represents a finding of a descriptor in a specific context
type Issue struct {
	Descriptor  *Descriptor
	Description string
	Category    Category
	Location    *Location
	Node        *graph.Node // dependency or call chain, may be nil

	customProperties []string
}

// New creates an issue
func New(descriptor *Descriptor, description string, category Category, location *Location) *Issue {
	return &Issue{
		Descriptor:  descriptor,
		Description: description,
		Category:    category,
		Location:    location,
	}
}

// WithNode attaches a dependency or call node
func (i *Issue) WithNode(node *graph.Node) *Issue {
	i.Node = node
	return i
}

// Filename returns location file name
func (i *Issue) Filename() string {
	if i.Location == nil {
		return ""
	}
	return i.Location.Filename()
}

// RelativePath returns location path
func (i *Issue) RelativePath() string {
	if i.Location == nil {
		return ""
	}
	return i.Location.Path()
}

// Extension returns location file extension
func (i *Issue) Extension() string {
	if i.Location == nil {
		return ""
	}
	return i.Location.Extension()
}

// Line returns location line
func (i *Issue) Line() int {
	if i.Location == nil {
		return 0
	}
	return i.Location.Line()
}

// CallingMethod returns identity of the node caller
func (i *Issue) CallingMethod() string {
	if i.Node == nil {
		return ""
	}
	if caller := i.Node.Caller(); caller != nil {
		return caller.ID()
	}
	return ""
}

// IsPerfCriticalContext returns true if the descriptor is critical or any consumer is
func (i *Issue) IsPerfCriticalContext() bool {
	return i.Descriptor.Critical || (i.Node != nil && i.Node.IsPerfCritical())
}

// Severity returns escalated severity
func (i *Issue) Severity() Severity {
	if i.IsPerfCriticalContext() {
		return SeverityWarning
	}
	return i.Descriptor.Severity
}

// Name returns node display name; when it repeats the descriptor description the caller name is used
func (i *Issue) Name() string {
	if i.Node == nil {
		return ""
	}
	prettyName := i.Node.PrettyName()
	if prettyName == i.Descriptor.Description {
		if caller := i.Node.Caller(); caller != nil {
			return caller.PrettyName()
		}
		return ""
	}
	return prettyName
}

// NumCustomProperties returns custom property count
func (i *Issue) NumCustomProperties() int {
	return len(i.customProperties)
}

// CustomProperty returns a custom property or empty string
func (i *Issue) CustomProperty(index int) string {
	if index < 0 || index >= len(i.customProperties) {
		return ""
	}
	return i.customProperties[index]
}

// CustomPropertyAsBool returns a custom property as bool, false when malformed
func (i *Issue) CustomPropertyAsBool(index int) bool {
	value, err := strconv.ParseBool(i.CustomProperty(index))
	if err != nil {
		return false
	}
	return value
}

// CustomPropertyAsInt returns a custom property as int, 0 when malformed
func (i *Issue) CustomPropertyAsInt(index int) int {
	value, err := strconv.Atoi(i.CustomProperty(index))
	if err != nil {
		return 0
	}
	return value
}

// SetCustomProperties sets custom properties; the width is fixed by the first call
func (i *Issue) SetCustomProperties(properties ...string) error {
	if i.customProperties != nil && len(properties) != len(i.customProperties) {
		return fmt.Errorf("%w: width %d, got %d", ErrPropertiesAlreadySet, len(i.customProperties), len(properties))
	}
	i.customProperties = append(make([]string, 0, len(properties)), properties...)
	return nil
}

// SetCustomProperty sets a custom property at index
func (i *Issue) SetCustomProperty(index int, value string) error {
	if index < 0 || index >= len(i.customProperties) {
		return fmt.Errorf("%w: %d", ErrPropertyIndex, index)
	}
	i.customProperties[index] = value
	return nil
}

// CustomProperties returns a copy of custom properties
func (i *Issue) CustomProperties() []string {
	if i.customProperties == nil {
		return nil
	}
	return append([]string{}, i.customProperties...)
}
