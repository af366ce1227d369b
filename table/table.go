package table

import (
	"fmt"

	"github.com/viant/auditor/inspector/issue"
	"go.uber.org/zap"
)

const firstID = 1

// Matcher decides whether an issue is displayed in the current refresh
type Matcher func(anIssue *issue.Issue) bool

// Table groups issues by descriptor and materializes sorted rows.
// Groups and leaves keep their identity across refreshes; only membership and rows are rebuilt.
type Table struct {
	grouped  bool
	flat     bool
	search   string
	sortKeys []SortKey
	logger   *zap.Logger

	nextID      int
	groups      []*Item
	groupIndex  map[int]int // descriptor id -> group position
	leaves      []*Item
	expanded    map[int]bool
	expandAll   bool
	rows        []*Item
	numMatching int
}

// New creates a table
func New(options ...Option) *Table {
	ret := &Table{
		grouped:    true,
		logger:     zap.NewNop(),
		nextID:     firstID,
		groupIndex: make(map[int]int),
		expanded:   make(map[int]bool),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// AddIssues appends leaves and, when grouping, one group per new descriptor
func (t *Table) AddIssues(issues ...*issue.Issue) {
	if t.grouped {
		for _, anIssue := range issues {
			id := anIssue.Descriptor.ID
			if _, ok := t.groupIndex[id]; ok {
				continue
			}
			t.groups = append(t.groups, newGroup(t.nextID, anIssue.Descriptor))
			t.groupIndex[id] = len(t.groups) - 1
			t.nextID++
		}
	}
	depth := 0
	if t.grouped {
		depth = 1
	}
	for _, anIssue := range issues {
		t.leaves = append(t.leaves, newLeaf(t.nextID, depth, anIssue))
		t.nextID++
	}
}

// Clear resets identities, drops all items and collapses all groups
func (t *Table) Clear() {
	t.nextID = firstID
	t.groups = nil
	t.groupIndex = make(map[int]int)
	t.leaves = nil
	t.expanded = make(map[int]bool)
	t.expandAll = false
	t.rows = nil
	t.numMatching = 0
}

// SetFlatView toggles flat presentation of a grouped table
func (t *Table) SetFlatView(flat bool) {
	t.flat = flat
}

// SetSearch sets the active search text; an active search presents rows flat
func (t *Table) SetSearch(search string) {
	t.search = search
}

// HasSearch returns true when a search is active
func (t *Table) HasSearch() bool {
	return t.search != ""
}

// IsGrouped returns true when the table creates descriptor groups
func (t *Table) IsGrouped() bool {
	return t.grouped
}

// SetExpanded expands or collapses a group
func (t *Table) SetExpanded(id int, expanded bool) {
	if expanded {
		t.expanded[id] = true
		return
	}
	delete(t.expanded, id)
}

// ExpandAll expands all current and future groups
func (t *Table) ExpandAll() {
	t.expandAll = true
}

// IsExpanded returns true if a group is expanded
func (t *Table) IsExpanded(id int) bool {
	return t.expandAll || t.expanded[id]
}

// Groups returns descriptor groups
func (t *Table) Groups() []*Item {
	return t.groups
}

// Leaves returns issue leaves in insertion order
func (t *Table) Leaves() []*Item {
	return t.leaves
}

// Rows returns rows of the last refresh
func (t *Table) Rows() []*Item {
	return t.rows
}

// NumMatchingIssues returns number of issues matched by the last refresh
func (t *Table) NumMatchingIssues() int {
	return t.numMatching
}

// BuildRows filters leaves, groups them by descriptor and sorts the result
func (t *Table) BuildRows(match Matcher) []*Item {
	var filtered []*Item
	for _, leaf := range t.leaves {
		if match == nil || match(leaf.Issue) {
			filtered = append(filtered, leaf)
		}
	}
	for _, group := range t.groups {
		group.clearChildren()
	}
	t.numMatching = len(filtered)
	if t.numMatching == 0 {
		t.rows = []*Item{newPlaceholder()}
		return t.rows
	}

	rows := make([]*Item, 0, len(filtered)+len(t.groups))
	if t.grouped && !t.HasSearch() && !t.flat {
		var order []*Item
		for _, leaf := range filtered {
			group := t.group(leaf.Descriptor)
			if !group.HasChildren() {
				order = append(order, group)
			}
			group.addChild(leaf)
		}
		for _, group := range order {
			group.displayName = fmt.Sprintf("%s (%d)", group.Descriptor.Description, len(group.children))
			rows = append(rows, group)
			if t.IsExpanded(group.ID) {
				rows = append(rows, group.children...)
			}
		}
	} else {
		rows = append(rows, filtered...)
	}
	t.rows = rows
	t.sortIfNeeded()
	t.logger.Debug("rows built", zap.Int("matching", t.numMatching), zap.Int("rows", len(t.rows)))
	return t.rows
}

func (t *Table) group(descriptor *issue.Descriptor) *Item {
	idx, ok := t.groupIndex[descriptor.ID]
	if !ok {
		panic(fmt.Sprintf("table: no group for descriptor %d", descriptor.ID))
	}
	return t.groups[idx]
}

// Find returns items with the given ids
func (t *Table) Find(ids ...int) []*Item {
	wanted := make(map[int]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var ret []*Item
	for _, candidates := range [][]*Item{t.groups, t.leaves} {
		for _, item := range candidates {
			if wanted[item.ID] {
				ret = append(ret, item)
			}
		}
	}
	return ret
}

// RevealSelection expands groups containing the selected leaves
func (t *Table) RevealSelection(ids ...int) {
	for _, item := range t.Find(ids...) {
		if item.parent != nil && !t.IsExpanded(item.parent.ID) {
			t.expanded[item.parent.ID] = true
		}
	}
}
