package issue

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Descriptor defines a diagnostic rule, descriptors are never mutated by the engine
type Descriptor struct {
	ID          int      `yaml:"id" json:"id"`
	Description string   `yaml:"description" json:"description"`
	Area        string   `yaml:"area" json:"area"`
	Problem     string   `yaml:"problem,omitempty" json:"problem,omitempty"`
	Solution    string   `yaml:"solution,omitempty" json:"solution,omitempty"`
	Severity    Severity `yaml:"severity,omitempty" json:"severity,omitempty"`
	Critical    bool     `yaml:"critical,omitempty" json:"critical,omitempty"`
	Call        string   `yaml:"call,omitempty" json:"call,omitempty"` // Go call pattern, code rules only
}

//go:embed descriptors.yaml
var defaultDescriptors []byte

// Registry holds descriptors in registration order
type Registry struct {
	descriptors []*Descriptor
	index       map[int]int //position
}

// NewRegistry creates a registry with the given descriptors
func NewRegistry(descriptors ...*Descriptor) *Registry {
	ret := &Registry{index: make(map[int]int)}
	for _, descriptor := range descriptors {
		ret.Register(descriptor)
	}
	return ret
}

// DefaultRegistry returns a registry with built-in descriptors
func DefaultRegistry() (*Registry, error) {
	ret := NewRegistry()
	if err := ret.Load(defaultDescriptors); err != nil {
		return nil, fmt.Errorf("failed to load built-in descriptors: %w", err)
	}
	return ret, nil
}

// Register adds or replaces a descriptor
func (r *Registry) Register(descriptor *Descriptor) {
	if idx, ok := r.index[descriptor.ID]; ok {
		r.descriptors[idx] = descriptor
		return
	}
	r.descriptors = append(r.descriptors, descriptor)
	r.index[descriptor.ID] = len(r.descriptors) - 1
}

// Load registers YAML encoded descriptors
func (r *Registry) Load(data []byte) error {
	var descriptors []*Descriptor
	if err := yaml.Unmarshal(data, &descriptors); err != nil {
		return fmt.Errorf("failed to decode descriptors: %w", err)
	}
	for _, descriptor := range descriptors {
		if descriptor.Severity == SeverityDefault {
			descriptor.Severity = SeverityInfo
		}
		r.Register(descriptor)
	}
	return nil
}

// Lookup returns a descriptor by id or nil
func (r *Registry) Lookup(id int) *Descriptor {
	if r == nil {
		return nil
	}
	if idx, ok := r.index[id]; ok && idx < len(r.descriptors) {
		return r.descriptors[idx]
	}
	return nil
}

// Descriptors returns all descriptors
func (r *Registry) Descriptors() []*Descriptor {
	return r.descriptors
}

// CallDescriptors returns descriptors with a call pattern
func (r *Registry) CallDescriptors() []*Descriptor {
	var ret []*Descriptor
	for _, descriptor := range r.descriptors {
		if descriptor.Call != "" {
			ret = append(ret, descriptor)
		}
	}
	return ret
}
