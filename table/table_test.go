package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/auditor/inspector/issue"
	"github.com/viant/auditor/table"
)

var (
	memory = &issue.Descriptor{ID: 1, Description: "Texture too large", Area: "Memory", Severity: issue.SeverityInfo}
	cpu    = &issue.Descriptor{ID: 2, Description: "Boxing allocation", Area: "CPU", Severity: issue.SeverityInfo}
	size   = &issue.Descriptor{ID: 3, Description: "Resources folder asset", Area: "BuildSize", Severity: issue.SeverityInfo}
)

func newIssue(descriptor *issue.Descriptor, description, aPath string) *issue.Issue {
	return issue.New(descriptor, description, issue.Assets, issue.NewLocation(aPath, 0))
}

func describe(rows []*table.Item) []string {
	var ret []string
	for _, row := range rows {
		ret = append(ret, table.Cell(row, table.FixedColumn(table.Description)))
	}
	return ret
}

func TestTable_BuildRows(t *testing.T) {
	tests := []struct {
		description string
		options     []table.Option
		match       table.Matcher
		search      string
		flat        bool
		expect      []string
		expectDepth []int
		expectMatch int
	}{
		{
			description: "grouped and expanded",
			options:     []table.Option{table.WithExpanded(true)},
			expect:      []string{"Texture too large (2)", "a.png", "b.png", "Boxing allocation (1)", "c.go"},
			expectDepth: []int{0, 1, 1, 0, 1},
			expectMatch: 3,
		},
		{
			description: "collapsed groups withhold children",
			expect:      []string{"Texture too large (2)", "Boxing allocation (1)"},
			expectDepth: []int{0, 0},
			expectMatch: 3,
		},
		{
			description: "flat table",
			options:     []table.Option{table.WithGrouping(false)},
			expect:      []string{"a.png", "b.png", "c.go"},
			expectDepth: []int{0, 0, 0},
			expectMatch: 3,
		},
		{
			description: "flat view of grouped table",
			options:     []table.Option{table.WithExpanded(true)},
			flat:        true,
			expect:      []string{"a.png", "b.png", "c.go"},
			expectDepth: []int{1, 1, 1},
			expectMatch: 3,
		},
		{
			description: "search presents leaves",
			options:     []table.Option{table.WithExpanded(true)},
			search:      "png",
			match:       func(anIssue *issue.Issue) bool { return anIssue.Extension() == ".png" },
			expect:      []string{"a.png", "b.png"},
			expectDepth: []int{1, 1},
			expectMatch: 2,
		},
		{
			description: "group count follows filter",
			options:     []table.Option{table.WithExpanded(true)},
			match:       func(anIssue *issue.Issue) bool { return anIssue.Description != "a.png" },
			expect:      []string{"Texture too large (1)", "b.png", "Boxing allocation (1)", "c.go"},
			expectDepth: []int{0, 1, 0, 1},
			expectMatch: 2,
		},
		{
			description: "nothing matches",
			match:       func(anIssue *issue.Issue) bool { return false },
			expect:      []string{"No items"},
			expectDepth: []int{0},
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			aTable := table.New(tc.options...)
			aTable.AddIssues(
				newIssue(memory, "a.png", "Assets/a.png"),
				newIssue(memory, "b.png", "Assets/b.png"),
				newIssue(cpu, "c.go", "src/c.go"),
			)
			aTable.SetSearch(tc.search)
			aTable.SetFlatView(tc.flat)
			rows := aTable.BuildRows(tc.match)
			assert.EqualValues(t, tc.expect, describe(rows))
			var depths []int
			for _, row := range rows {
				depths = append(depths, row.Depth)
			}
			assert.EqualValues(t, tc.expectDepth, depths)
			assert.Equal(t, tc.expectMatch, aTable.NumMatchingIssues())
		})
	}
}

func TestTable_BuildRows_GroupCount(t *testing.T) {
	aTable := table.New()
	aTable.AddIssues(newIssue(memory, "a", "Assets/a.png"), newIssue(memory, "b", "Assets/b.png"), newIssue(cpu, "c", "src/c.go"))
	aTable.ExpandAll()
	rows := aTable.BuildRows(nil)

	groups, leaves := 0, 0
	for _, row := range rows {
		if row.IsGroup() {
			groups++
			continue
		}
		leaves++
		require.NotNil(t, row.Parent())
		assert.Equal(t, row.Descriptor.ID, row.Parent().Descriptor.ID)
	}
	assert.Equal(t, 2, groups)
	assert.Equal(t, 3, leaves)
	require.Len(t, aTable.Groups(), 2)
	assert.Len(t, aTable.Groups()[0].Children(), 2)
	assert.Len(t, aTable.Groups()[1].Children(), 1)
}

func TestTable_BuildRows_Placeholder(t *testing.T) {
	aTable := table.New()
	rows := aTable.BuildRows(nil)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsPlaceholder())
	assert.False(t, rows[0].IsGroup())
	assert.Equal(t, 0, aTable.NumMatchingIssues())
}

func TestTable_AddIssues_Identity(t *testing.T) {
	aTable := table.New()
	aTable.AddIssues(newIssue(memory, "a", "Assets/a.png"), newIssue(memory, "b", "Assets/b.png"), newIssue(cpu, "c", "src/c.go"))
	aTable.AddIssues(newIssue(memory, "d", "Assets/d.png"), newIssue(size, "e", "Assets/Resources/e.png"))

	require.Len(t, aTable.Groups(), 3, "known descriptors reuse their group")
	var ids []int
	for _, group := range aTable.Groups() {
		ids = append(ids, group.ID)
	}
	for _, leaf := range aTable.Leaves() {
		ids = append(ids, leaf.ID)
	}
	assert.EqualValues(t, []int{1, 2, 6, 3, 4, 5, 7, 8}, ids)

	seen := map[int]bool{}
	for _, id := range ids {
		assert.False(t, seen[id], "id %v reused", id)
		seen[id] = true
	}

	aTable.Clear()
	assert.Empty(t, aTable.Groups())
	assert.Empty(t, aTable.Leaves())
	aTable.AddIssues(newIssue(cpu, "f", "src/f.go"))
	assert.Equal(t, 1, aTable.Groups()[0].ID)
	assert.Equal(t, 2, aTable.Leaves()[0].ID)
}

func TestTable_Groups_KeepIdentity(t *testing.T) {
	aTable := table.New(table.WithExpanded(true))
	aTable.AddIssues(newIssue(memory, "a", "Assets/a.png"), newIssue(cpu, "c", "src/c.go"))
	first := aTable.BuildRows(nil)
	second := aTable.BuildRows(func(anIssue *issue.Issue) bool { return true })
	require.Len(t, second, len(first))
	for i := range first {
		assert.Same(t, first[i], second[i])
	}
}

func TestTable_RevealSelection(t *testing.T) {
	aTable := table.New()
	aTable.AddIssues(newIssue(memory, "a", "Assets/a.png"), newIssue(cpu, "c", "src/c.go"))
	assert.Len(t, aTable.BuildRows(nil), 2)

	leaf := aTable.Leaves()[1]
	aTable.RevealSelection(leaf.ID)
	require.NotNil(t, leaf.Parent())
	assert.True(t, aTable.IsExpanded(leaf.Parent().ID))
	assert.EqualValues(t, []string{"Texture too large (1)", "Boxing allocation (1)", "c"}, describe(aTable.BuildRows(nil)))

	aTable.SetExpanded(leaf.Parent().ID, false)
	assert.Len(t, aTable.BuildRows(nil), 2)
}

func TestTable_Find(t *testing.T) {
	aTable := table.New()
	aTable.AddIssues(newIssue(memory, "a", "Assets/a.png"))
	found := aTable.Find(1, 2, 99)
	require.Len(t, found, 2)
	assert.True(t, found[0].IsGroup())
	assert.Equal(t, "a", found[1].DisplayName())
}

func TestTable_BuildRows_Membership(t *testing.T) {
	aTable := table.New(table.WithExpanded(true))
	a, b := newIssue(memory, "a", "Assets/a.png"), newIssue(memory, "b", "Assets/b.png")
	aTable.AddIssues(a, b, newIssue(cpu, "c", "src/c.go"))
	aTable.BuildRows(nil)

	group := aTable.Groups()[0]
	kept := group.Children()
	require.Len(t, kept, 2)
	aTable.BuildRows(func(anIssue *issue.Issue) bool { return anIssue != a })
	assert.EqualValues(t, []string{"a", "b"}, describe(kept), "earlier children stay intact")
	assert.EqualValues(t, []string{"b"}, describe(group.Children()))

	aTable.SetSearch("b")
	rows := aTable.BuildRows(func(anIssue *issue.Issue) bool { return anIssue == b })
	assert.EqualValues(t, []string{"b"}, describe(rows))
	for _, group := range aTable.Groups() {
		assert.False(t, group.HasChildren(), "search presents leaves without groups")
	}
	for _, leaf := range aTable.Leaves() {
		assert.Nil(t, leaf.Parent())
	}
}

func TestTable_RevealSelection_FlatView(t *testing.T) {
	aTable := table.New()
	aTable.AddIssues(newIssue(memory, "a", "Assets/a.png"), newIssue(cpu, "c", "src/c.go"))
	assert.Len(t, aTable.BuildRows(nil), 2)

	aTable.SetFlatView(true)
	assert.Len(t, aTable.BuildRows(nil), 2)
	aTable.RevealSelection(aTable.Leaves()[0].ID)
	assert.False(t, aTable.IsExpanded(aTable.Groups()[0].ID), "flat rows have no parent to reveal")

	aTable.SetFlatView(false)
	assert.EqualValues(t, []string{"Texture too large (1)", "Boxing allocation (1)"}, describe(aTable.BuildRows(nil)))
}

func TestTable_Clear_Collapses(t *testing.T) {
	aTable := table.New(table.WithExpanded(true))
	aTable.AddIssues(newIssue(memory, "a", "Assets/a.png"))
	assert.True(t, aTable.IsExpanded(1))

	aTable.Clear()
	assert.False(t, aTable.IsExpanded(1))
	aTable.AddIssues(newIssue(memory, "a", "Assets/a.png"))
	assert.Len(t, aTable.BuildRows(nil), 1)
}
