package table

import "go.uber.org/zap"

// Option configures a Table
type Option func(*Table)

// WithGrouping enables grouping by descriptor
func WithGrouping(grouped bool) Option {
	return func(t *Table) {
		t.grouped = grouped
	}
}

// WithSortKeys sets initial sort keys
func WithSortKeys(keys ...SortKey) Option {
	return func(t *Table) {
		t.sortKeys = keys
	}
}

// WithExpanded expands every group
func WithExpanded(expanded bool) Option {
	return func(t *Table) {
		t.expandAll = expanded
	}
}

// WithLogger sets table logger
func WithLogger(logger *zap.Logger) Option {
	return func(t *Table) {
		if logger != nil {
			t.logger = logger
		}
	}
}
