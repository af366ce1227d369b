package deps

import (
	"context"
	"fmt"

	"github.com/viant/auditor/inspector/graph"
)

// Composite returns the ordered union of its listers
type Composite struct {
	listers []graph.DependencyLister
}

// NewComposite creates a composite lister, nil listers are ignored
func NewComposite(listers ...graph.DependencyLister) *Composite {
	ret := &Composite{}
	for _, lister := range listers {
		if lister != nil {
			ret.listers = append(ret.listers, lister)
		}
	}
	return ret
}

// Len returns number of listers
func (c *Composite) Len() int {
	return len(c.listers)
}

// Dependencies returns deduplicated dependencies of all listers, a recursive walk follows chains across listers
func (c *Composite) Dependencies(ctx context.Context, aPath string, recursive bool) ([]string, error) {
	direct, err := c.direct(ctx, aPath)
	if err != nil || !recursive {
		return direct, err
	}
	visited := map[string]bool{aPath: true}
	var result []string
	queue := direct
	for len(queue) > 0 {
		candidate := queue[0]
		queue = queue[1:]
		if visited[candidate] {
			continue
		}
		visited[candidate] = true
		result = append(result, candidate)
		next, err := c.direct(ctx, candidate)
		if err != nil {
			return nil, err
		}
		queue = append(queue, next...)
	}
	return result, nil
}

func (c *Composite) direct(ctx context.Context, aPath string) ([]string, error) {
	var result []string
	seen := map[string]bool{}
	for _, lister := range c.listers {
		dependencies, err := lister.Dependencies(ctx, aPath, false)
		if err != nil {
			return nil, fmt.Errorf("failed to list %T dependencies: %w", lister, err)
		}
		for _, dependency := range dependencies {
			if seen[dependency] {
				continue
			}
			seen[dependency] = true
			result = append(result, dependency)
		}
	}
	return result, nil
}
