package auditor

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/auditor/config"
	"github.com/viant/auditor/filter"
	"github.com/viant/auditor/inspector"
	"github.com/viant/auditor/inspector/graph"
	"github.com/viant/auditor/inspector/issue"
	"github.com/viant/auditor/inspector/repository"
	"github.com/viant/auditor/table"
	"go.uber.org/zap"
)

// Session owns graphs and issues of one analysis pass
type Session struct {
	config   *config.Config
	registry *issue.Registry
	logger   *zap.Logger
	progress graph.Progress

	project *repository.Project
	graphs  map[issue.Category]*graph.Graph
	issues  []*issue.Issue
}

// New creates a session, extra descriptors are loaded from config
func New(ctx context.Context, cfg *config.Config, options ...Option) (*Session, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	ret := &Session{config: cfg, logger: zap.NewNop(), graphs: map[issue.Category]*graph.Graph{}}
	for _, opt := range options {
		opt(ret)
	}
	if ret.registry == nil {
		registry, err := issue.DefaultRegistry()
		if err != nil {
			return nil, err
		}
		ret.registry = registry
	}
	if cfg.Descriptors != "" {
		data, err := afs.New().DownloadWithURL(ctx, cfg.Descriptors)
		if err != nil {
			return nil, fmt.Errorf("failed to download descriptors %s: %w", cfg.Descriptors, err)
		}
		if err = ret.registry.Load(data); err != nil {
			return nil, err
		}
	}
	return ret, nil
}

// Run audits the configured root, results of a previous run are discarded
func (s *Session) Run(ctx context.Context) error {
	s.issues = nil
	s.graphs = map[issue.Category]*graph.Graph{}
	project, err := repository.NewDetector().DetectProject(ctx, s.config.Root)
	if err != nil {
		return fmt.Errorf("failed to detect project: %w", err)
	}
	s.project = project
	s.logger.Info("audit started", zap.String("root", project.RootPath), zap.String("type", project.Type), zap.String("name", project.Name))

	inspectors, err := inspector.NewFactory(s.config, s.registry, s.logger, s.progress).Inspectors(ctx)
	if err != nil {
		return err
	}
	for _, candidate := range inspectors {
		issues, aGraph, err := candidate.Audit(ctx)
		if err != nil {
			return fmt.Errorf("failed to audit %v: %w", candidate.Category(), err)
		}
		s.graphs[candidate.Category()] = aGraph
		s.issues = append(s.issues, issues...)
	}
	return nil
}

// Project returns the detected project of the last run
func (s *Session) Project() *repository.Project {
	return s.project
}

// Registry returns descriptor registry
func (s *Session) Registry() *issue.Registry {
	return s.registry
}

// Graph returns graph of a category or nil
func (s *Session) Graph(category issue.Category) *graph.Graph {
	return s.graphs[category]
}

// AssetNode returns a node of the asset graph or nil
func (s *Session) AssetNode(aPath string) *graph.Node {
	return s.graphs[issue.Assets].Lookup(aPath)
}

// Issues returns issues of the given categories, all issues when none is given
func (s *Session) Issues(categories ...issue.Category) []*issue.Issue {
	if len(categories) == 0 {
		return s.issues
	}
	wanted := map[issue.Category]bool{}
	for _, category := range categories {
		wanted[category] = true
	}
	var result []*issue.Issue
	for _, anIssue := range s.issues {
		if wanted[anIssue.Category] {
			result = append(result, anIssue)
		}
	}
	return result
}

// Filter creates a filter using configured rules
func (s *Session) Filter(search string) *filter.Filter {
	return filter.New(search, s.config.Rules)
}

// Table creates a table of a category with its configured view columns
func (s *Session) Table(category issue.Category, options ...table.Option) (*table.Table, []table.Column, error) {
	view := s.config.View(category)
	if view == nil {
		view = &config.View{Category: category, Group: true, Columns: []string{"description", "severity", "area", "path"}}
	}
	columns, err := table.ViewColumns(view)
	if err != nil {
		return nil, nil, err
	}
	options = append([]table.Option{table.WithGrouping(view.Group), table.WithLogger(s.logger.Named("table"))}, options...)
	ret := table.New(options...)
	ret.AddIssues(s.Issues(category)...)
	return ret, columns, nil
}
