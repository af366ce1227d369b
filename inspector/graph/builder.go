package graph

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const defaultProgressStep = 100

// Builder builds a deduplicated asset graph with consumer edges
type Builder struct {
	isDir     func(path string) bool
	sourceExt map[string]bool
	critical  []string
	progress  Progress
	step      int
	logger    *zap.Logger
}

// NewBuilder creates a builder, ".go" files are treated as source code by default
func NewBuilder(options ...Option) *Builder {
	ret := &Builder{
		isDir:  func(string) bool { return false },
		step:   defaultProgressStep,
		logger: zap.NewNop(),
	}
	WithSourceExtensions(".go")(ret)
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Build walks paths once, resolving each path and its dependencies into a single node.
// A dependency discovered from a root gets the root as a child. onFlagged is called for
// every newly allocated node when classify holds for the root of the batch.
func (b *Builder) Build(ctx context.Context, paths []string, lister DependencyLister, classify Classifier, onFlagged func(node *Node)) (*Graph, error) {
	result := New(KindAsset)
	if classify == nil {
		classify = func(string) bool { return false }
	}
	total := len(paths)
	for i, assetPath := range paths {
		if b.progress != nil && i > 0 && i%b.step == 0 {
			b.progress(i, total)
		}
		if b.isDir(assetPath) || b.isSource(assetPath) {
			continue
		}
		flagged := classify(assetPath)
		root := b.resolve(result, assetPath, nil, flagged, onFlagged)
		if lister == nil {
			continue
		}
		dependencies, err := lister.Dependencies(ctx, assetPath, true)
		if err != nil {
			return nil, fmt.Errorf("failed to list dependencies of %s: %w", assetPath, err)
		}
		for _, dependency := range dependencies {
			if dependency == assetPath {
				continue
			}
			b.resolve(result, dependency, root, flagged, onFlagged)
		}
	}
	if b.progress != nil {
		b.progress(total, total)
	}
	b.logger.Debug("asset graph built",
		zap.Int("paths", total),
		zap.Int("nodes", result.Len()),
		zap.Int("edges", result.Edges()))
	return result, nil
}

func (b *Builder) resolve(aGraph *Graph, assetPath string, consumer *Node, flagged bool, onFlagged func(node *Node)) *Node {
	if b.isSource(assetPath) {
		return nil
	}
	if node := aGraph.Lookup(assetPath); node != nil {
		node.AddChild(consumer)
		return node
	}
	node := NewAssetNode(assetPath)
	node.Critical = b.isCritical(assetPath)
	node.AddChild(consumer)
	if flagged && onFlagged != nil {
		onFlagged(node)
	}
	return aGraph.Put(node)
}
