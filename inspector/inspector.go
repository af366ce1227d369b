package inspector

import (
	"context"
	"fmt"

	"github.com/viant/auditor/config"
	"github.com/viant/auditor/inspector/asset"
	"github.com/viant/auditor/inspector/code"
	"github.com/viant/auditor/inspector/deps"
	"github.com/viant/auditor/inspector/graph"
	"github.com/viant/auditor/inspector/issue"
	"github.com/viant/auditor/inspector/repository"
	"go.uber.org/zap"
)

// Inspector produces issues of one category for an analysis pass
type Inspector interface {
	// Category returns category of produced issues
	Category() issue.Category

	// Audit returns issues and the graph their nodes belong to
	Audit(ctx context.Context) ([]*issue.Issue, *graph.Graph, error)
}

// Factory creates inspectors enabled by configuration
type Factory struct {
	config   *config.Config
	registry *issue.Registry
	logger   *zap.Logger
	progress graph.Progress
}

// NewFactory creates a new inspector factory
func NewFactory(cfg *config.Config, registry *issue.Registry, logger *zap.Logger, progress graph.Progress) *Factory {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Factory{config: cfg, registry: registry, logger: logger, progress: progress}
}

// Inspectors returns asset and code inspectors unless skipped
func (f *Factory) Inspectors(ctx context.Context) ([]Inspector, error) {
	var result []Inspector
	if !f.config.SkipAssets {
		source := repository.NewSource(f.config.Root, f.config.Exclude...)
		lister, err := f.Lister(ctx, source)
		if err != nil {
			return nil, err
		}
		result = append(result, asset.New(f.config, f.registry, source, lister,
			asset.WithLogger(f.logger.Named("asset")),
			asset.WithProgress(f.progress)))
	}
	if !f.config.SkipCode {
		result = append(result, code.New(f.config, f.registry, code.WithLogger(f.logger.Named("code"))))
	}
	return result, nil
}

// Lister returns dependency listers enabled by configuration
func (f *Factory) Lister(ctx context.Context, source *repository.Source) (graph.DependencyLister, error) {
	var listers []graph.DependencyLister
	if f.config.Manifest != "" {
		manifest, err := deps.LoadManifest(ctx, f.config.Manifest)
		if err != nil {
			return nil, fmt.Errorf("failed to load dependency manifest: %w", err)
		}
		listers = append(listers, manifest)
	}
	if f.config.Javascript {
		listers = append(listers, deps.NewJavascript(source, f.logger.Named("javascript")))
	}
	return deps.NewComposite(listers...), nil
}
