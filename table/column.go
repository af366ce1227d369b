package table

import (
	"fmt"
	"strconv"
	"strings"
)

// ColumnKind identifies a column variant
type ColumnKind int

const (
	Description ColumnKind = iota
	Severity
	Area
	Path
	Filename
	FileType
	Custom
)

var columnNames = []string{"description", "severity", "area", "path", "filename", "filetype", "custom"}

func (k ColumnKind) String() string {
	if k < 0 || int(k) >= len(columnNames) {
		return "unknown"
	}
	return columnNames[k]
}

// PropertyFormat defines how a custom property is compared and rendered
type PropertyFormat int

const (
	FormatString PropertyFormat = iota
	FormatBool
	FormatInteger
)

// ParsePropertyFormat parses string, bool or integer; empty means string
func ParsePropertyFormat(name string) (PropertyFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "string":
		return FormatString, nil
	case "bool":
		return FormatBool, nil
	case "integer", "int":
		return FormatInteger, nil
	}
	return FormatString, fmt.Errorf("unknown property format: %s", name)
}

// Column is a fixed column or a custom property column carrying its index and format
type Column struct {
	Kind   ColumnKind
	Index  int            // custom columns only
	Format PropertyFormat // custom columns only
	Title  string
}

// FixedColumn creates a fixed column
func FixedColumn(kind ColumnKind) Column {
	return Column{Kind: kind, Title: strings.ToUpper(kind.String()[:1]) + kind.String()[1:]}
}

// CustomColumn creates a custom property column
func CustomColumn(index int, format PropertyFormat, title string) Column {
	return Column{Kind: Custom, Index: index, Format: format, Title: title}
}

// ParseColumn parses a column name; custom columns use "custom:<index>"
func ParseColumn(name string) (Column, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if rest, ok := strings.CutPrefix(name, "custom:"); ok {
		index, err := strconv.Atoi(rest)
		if err != nil || index < 0 {
			return Column{}, fmt.Errorf("invalid custom column: %s", name)
		}
		return CustomColumn(index, FormatString, "Custom "+rest), nil
	}
	for i, candidate := range columnNames {
		if candidate == name && ColumnKind(i) != Custom {
			return FixedColumn(ColumnKind(i)), nil
		}
	}
	return Column{}, fmt.Errorf("unknown column: %s", name)
}

// SortKey represents a column with sort direction
type SortKey struct {
	Column    Column
	Ascending bool
}

// ParseSortKey parses "column[:asc|:desc]", custom columns use "custom:<index>[:asc|:desc]"
func ParseSortKey(expr string) (SortKey, error) {
	expr = strings.TrimSpace(expr)
	ascending := true
	if idx := strings.LastIndex(expr, ":"); idx != -1 {
		switch strings.ToLower(expr[idx+1:]) {
		case "asc":
			expr = expr[:idx]
		case "desc":
			ascending = false
			expr = expr[:idx]
		}
	}
	column, err := ParseColumn(expr)
	if err != nil {
		return SortKey{}, err
	}
	return SortKey{Column: column, Ascending: ascending}, nil
}
