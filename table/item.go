package table

import "github.com/viant/auditor/inspector/issue"

const placeholderName = "No items"

// Item is a table row: a descriptor group, an issue leaf or the empty placeholder
type Item struct {
	ID         int
	Depth      int
	Descriptor *issue.Descriptor
	Issue      *issue.Issue

	displayName string
	placeholder bool
	parent      *Item
	children    []*Item
}

func newGroup(id int, descriptor *issue.Descriptor) *Item {
	return &Item{ID: id, Depth: 0, Descriptor: descriptor, displayName: descriptor.Description}
}

func newLeaf(id, depth int, anIssue *issue.Issue) *Item {
	return &Item{ID: id, Depth: depth, Descriptor: anIssue.Descriptor, Issue: anIssue, displayName: anIssue.Name()}
}

func newPlaceholder() *Item {
	return &Item{displayName: placeholderName, placeholder: true}
}

// IsGroup returns true for descriptor groups
func (i *Item) IsGroup() bool {
	return i.Issue == nil && !i.placeholder
}

// IsPlaceholder returns true for the "No items" row
func (i *Item) IsPlaceholder() bool {
	return i.placeholder
}

// DisplayName returns group label or issue description
func (i *Item) DisplayName() string {
	if i.Issue != nil && i.Issue.Description != "" {
		return i.Issue.Description
	}
	return i.displayName
}

// Name returns the name captured when the item was created
func (i *Item) Name() string {
	return i.displayName
}

// Parent returns the group of a leaf or nil
func (i *Item) Parent() *Item {
	return i.parent
}

// Children returns current leaves of a group
func (i *Item) Children() []*Item {
	return i.children
}

// HasChildren returns true if a group has leaves
func (i *Item) HasChildren() bool {
	return len(i.children) > 0
}

func (i *Item) clearChildren() {
	for _, child := range i.children {
		child.parent = nil
	}
	i.children = nil
}

func (i *Item) addChild(child *Item) {
	child.parent = i
	i.children = append(i.children, child)
}
