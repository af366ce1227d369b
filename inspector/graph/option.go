package graph

import (
	"path"
	"strings"

	"go.uber.org/zap"
)

// Option configures a Builder
type Option func(*Builder)

// Progress is invoked at coarse milestones with processed and total roots
type Progress func(done, total int)

// WithDirectoryCheck sets the directory predicate, directories are never graphed
func WithDirectoryCheck(isDir func(path string) bool) Option {
	return func(b *Builder) {
		b.isDir = isDir
	}
}

// WithSourceExtensions sets extensions of code files handled by another producer
func WithSourceExtensions(extensions ...string) Option {
	return func(b *Builder) {
		b.sourceExt = make(map[string]bool, len(extensions))
		for _, ext := range extensions {
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			b.sourceExt[strings.ToLower(ext)] = true
		}
	}
}

// WithCriticalPaths marks nodes matching any path.Match pattern as intrinsically critical
func WithCriticalPaths(patterns ...string) Option {
	return func(b *Builder) {
		b.critical = patterns
	}
}

// WithProgress registers an advisory progress callback
func WithProgress(progress Progress) Option {
	return func(b *Builder) {
		b.progress = progress
	}
}

// WithProgressStep sets how many roots are processed between progress calls
func WithProgressStep(step int) Option {
	return func(b *Builder) {
		if step > 0 {
			b.step = step
		}
	}
}

// WithLogger sets builder logger
func WithLogger(logger *zap.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

func (b *Builder) isSource(aPath string) bool {
	return b.sourceExt[strings.ToLower(path.Ext(aPath))]
}

func (b *Builder) isCritical(aPath string) bool {
	for _, pattern := range b.critical {
		if ok, _ := path.Match(pattern, aPath); ok {
			return true
		}
	}
	return false
}
