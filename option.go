package auditor

import (
	"github.com/viant/auditor/inspector/graph"
	"github.com/viant/auditor/inspector/issue"
	"go.uber.org/zap"
)

// Option configures a Session
type Option func(*Session)

// WithLogger sets session logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithProgress sets asset graph progress callback
func WithProgress(progress graph.Progress) Option {
	return func(s *Session) {
		s.progress = progress
	}
}

// WithRegistry replaces the built-in descriptor registry
func WithRegistry(registry *issue.Registry) Option {
	return func(s *Session) {
		s.registry = registry
	}
}
