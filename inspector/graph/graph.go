package graph

import "context"

// DependencyLister lists dependencies of an asset
type DependencyLister interface {
	// Dependencies returns paths the asset depends on, transitively when recursive is set
	Dependencies(ctx context.Context, path string, recursive bool) ([]string, error)
}

// Classifier reports whether a path matches a flagged pattern
type Classifier func(path string) bool

// Graph owns nodes keyed by identity
type Graph struct {
	Kind  Kind
	nodes []*Node
	index map[string]int //position
}

// New creates an empty graph
func New(kind Kind) *Graph {
	return &Graph{Kind: kind, index: make(map[string]int)}
}

// Lookup returns a node by identity or nil
func (g *Graph) Lookup(id string) *Node {
	if g == nil || g.nodes == nil {
		return nil
	}
	if idx, ok := g.index[id]; ok && idx < len(g.nodes) {
		return g.nodes[idx]
	}
	return nil
}

// Put adds a node, an existing node with the same identity wins
func (g *Graph) Put(node *Node) *Node {
	if prev := g.Lookup(node.id); prev != nil {
		return prev
	}
	g.nodes = append(g.nodes, node)
	g.index[node.id] = len(g.nodes) - 1
	return node
}

// Ensure returns an existing node or the one created by create
func (g *Graph) Ensure(id string, create func() *Node) *Node {
	if node := g.Lookup(id); node != nil {
		return node
	}
	return g.Put(create())
}

// Nodes returns nodes in insertion order
func (g *Graph) Nodes() []*Node {
	if g == nil {
		return nil
	}
	return g.nodes
}

// Len returns number of nodes
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}
	return len(g.nodes)
}

// Edges returns the number of child links
func (g *Graph) Edges() int {
	count := 0
	for _, node := range g.Nodes() {
		count += len(node.children)
	}
	return count
}
