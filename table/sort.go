package table

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// unparsable integer properties sort before any valid value
const integerSentinel = math.MinInt

// frame is an arena entry of the row tree, children are arena indexes
type frame struct {
	item     *Item
	depth    int
	children []int
}

// SetSortKeys replaces sort keys, first key has the highest priority
func (t *Table) SetSortKeys(keys ...SortKey) {
	t.sortKeys = keys
}

// SortKeys returns active sort keys
func (t *Table) SortKeys() []SortKey {
	return t.sortKeys
}

// Sort re-sorts current rows with active sort keys
func (t *Table) Sort() []*Item {
	t.sortIfNeeded()
	return t.rows
}

func (t *Table) sortIfNeeded() {
	if len(t.sortKeys) == 0 || len(t.rows) < 2 {
		return
	}
	t.rows = sortRows(t.rows, t.sortKeys)
}

// sortRows rebuilds the tree of a depth-tagged row sequence, sorts each level and flattens it in pre-order
func sortRows(rows []*Item, keys []SortKey) []*Item {
	arena := make([]frame, 1, len(rows)+1)
	arena[0] = frame{depth: -1}
	stack := []int{0}
	for _, row := range rows {
		for len(stack) > 1 && row.Depth <= arena[stack[len(stack)-1]].depth {
			stack = stack[:len(stack)-1]
		}
		idx := len(arena)
		arena = append(arena, frame{item: row, depth: row.Depth})
		parent := stack[len(stack)-1]
		arena[parent].children = append(arena[parent].children, idx)
		stack = append(stack, idx)
	}

	for i := range arena {
		children := arena[i].children
		sort.SliceStable(children, func(a, b int) bool {
			return compareItems(arena[children[a]].item, arena[children[b]].item, keys) < 0
		})
	}

	result := make([]*Item, 0, len(rows))
	var flatten func(idx int)
	flatten = func(idx int) {
		for _, child := range arena[idx].children {
			result = append(result, arena[child].item)
			flatten(child)
		}
	}
	flatten(0)
	return result
}

func compareItems(a, b *Item, keys []SortKey) int {
	for _, key := range keys {
		x, y := a, b
		if !key.Ascending {
			x, y = b, a
		}
		if ret := compareColumn(x, y, key.Column); ret != 0 {
			return ret
		}
	}
	return 0
}

func compareColumn(a, b *Item, column Column) int {
	if column.Kind == Custom && column.Format == FormatInteger {
		x, y := integerProperty(a, column.Index), integerProperty(b, column.Index)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	}
	return strings.Compare(sortText(a, column), sortText(b, column))
}

func integerProperty(item *Item, index int) int {
	if item.Issue == nil {
		return integerSentinel
	}
	value, err := strconv.Atoi(item.Issue.CustomProperty(index))
	if err != nil {
		return integerSentinel
	}
	return value
}

func sortText(item *Item, column Column) string {
	switch column.Kind {
	case Description:
		return item.DisplayName()
	case Area:
		if item.Descriptor == nil {
			return ""
		}
		return item.Descriptor.Area
	}
	if item.Issue == nil {
		return ""
	}
	switch column.Kind {
	case Severity:
		return item.Issue.Severity().String()
	case Path:
		return item.Issue.RelativePath()
	case Filename:
		return item.Issue.Filename()
	case FileType:
		return item.Issue.Extension()
	case Custom:
		return item.Issue.CustomProperty(column.Index)
	}
	return ""
}
