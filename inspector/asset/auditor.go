package asset

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/viant/auditor/config"
	"github.com/viant/auditor/inspector/graph"
	"github.com/viant/auditor/inspector/issue"
	"go.uber.org/zap"
)

// ResourcesDescriptorID identifies "Resources folder asset & dependencies"
const ResourcesDescriptorID = 302000

// Source enumerates audited paths
type Source interface {
	Paths(ctx context.Context) ([]string, error)
	IsDir(path string) bool
}

// Auditor builds the asset dependency graph and reports assets pulled in by a resources folder
type Auditor struct {
	config   *config.Config
	registry *issue.Registry
	source   Source
	lister   graph.DependencyLister
	logger   *zap.Logger
	progress graph.Progress
}

// Option configures an Auditor
type Option func(*Auditor)

// WithLogger sets auditor logger
func WithLogger(logger *zap.Logger) Option {
	return func(a *Auditor) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithProgress sets progress callback
func WithProgress(progress graph.Progress) Option {
	return func(a *Auditor) {
		a.progress = progress
	}
}

// New creates an asset auditor
func New(cfg *config.Config, registry *issue.Registry, source Source, lister graph.DependencyLister, options ...Option) *Auditor {
	ret := &Auditor{config: cfg, registry: registry, source: source, lister: lister, logger: zap.NewNop()}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Category returns Assets
func (a *Auditor) Category() issue.Category {
	return issue.Assets
}

// Audit builds the graph and returns an issue for every node reached from a resources folder root
func (a *Auditor) Audit(ctx context.Context) ([]*issue.Issue, *graph.Graph, error) {
	descriptor := a.registry.Lookup(ResourcesDescriptorID)
	if descriptor == nil {
		return nil, nil, fmt.Errorf("failed to audit assets: descriptor %d not registered", ResourcesDescriptorID)
	}
	paths, err := a.source.Paths(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to enumerate assets: %w", err)
	}
	options := []graph.Option{
		graph.WithDirectoryCheck(a.source.IsDir),
		graph.WithSourceExtensions(a.config.SourceExtensions...),
		graph.WithCriticalPaths(a.config.CriticalAssets...),
		graph.WithLogger(a.logger),
	}
	if a.progress != nil {
		options = append(options, graph.WithProgress(a.progress))
	}
	var issues []*issue.Issue
	classify := IsResource(a.config.ResourceFolder, a.config.EditorFolder)
	assets, err := graph.NewBuilder(options...).Build(ctx, paths, a.lister, classify, func(node *graph.Node) {
		issues = append(issues, NewResourceIssue(descriptor, node))
	})
	if err != nil {
		return nil, nil, err
	}
	a.logger.Info("assets audited",
		zap.Int("paths", len(paths)),
		zap.Int("nodes", assets.Len()),
		zap.Int("issues", len(issues)))
	return issues, assets, nil
}

// NewResourceIssue creates an issue named after the asset file
func NewResourceIssue(descriptor *issue.Descriptor, node *graph.Node) *issue.Issue {
	name := path.Base(node.ID())
	name = strings.TrimSuffix(name, path.Ext(name))
	return issue.New(descriptor, name, issue.Assets, issue.NewLocation(node.ID(), 0)).WithNode(node)
}

// IsResource returns a classifier matching paths under a resources folder but not under an editor folder
func IsResource(resourceFolder, editorFolder string) graph.Classifier {
	resources := "/" + strings.ToLower(strings.Trim(resourceFolder, "/")) + "/"
	editor := "/" + strings.ToLower(strings.Trim(editorFolder, "/")) + "/"
	return func(aPath string) bool {
		candidate := "/" + strings.ToLower(aPath)
		if !strings.Contains(candidate, resources) {
			return false
		}
		return editor == "//" || !strings.Contains(candidate, editor)
	}
}
