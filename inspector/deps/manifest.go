package deps

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Manifest lists dependencies declared in a YAML document mapping an asset path to the paths it uses
type Manifest struct {
	dependencies map[string][]string
}

// NewManifest creates a manifest from direct dependencies
func NewManifest(dependencies map[string][]string) *Manifest {
	if dependencies == nil {
		dependencies = map[string][]string{}
	}
	return &Manifest{dependencies: dependencies}
}

// LoadManifest loads a manifest with afs
func LoadManifest(ctx context.Context, URL string) (*Manifest, error) {
	data, err := afs.New().DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download manifest %s: %w", URL, err)
	}
	return ParseManifest(data)
}

// ParseManifest decodes a YAML manifest
func ParseManifest(data []byte) (*Manifest, error) {
	dependencies := map[string][]string{}
	if err := yaml.Unmarshal(data, &dependencies); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	return NewManifest(dependencies), nil
}

// Dependencies returns declared dependencies, breadth first when recursive
func (m *Manifest) Dependencies(ctx context.Context, aPath string, recursive bool) ([]string, error) {
	direct := m.dependencies[aPath]
	if !recursive {
		return direct, nil
	}
	visited := map[string]bool{aPath: true}
	var result []string
	queue := append([]string{}, direct...)
	for len(queue) > 0 {
		candidate := queue[0]
		queue = queue[1:]
		if visited[candidate] {
			continue
		}
		visited[candidate] = true
		result = append(result, candidate)
		queue = append(queue, m.dependencies[candidate]...)
	}
	return result, nil
}
