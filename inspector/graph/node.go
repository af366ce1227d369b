package graph

// Kind identifies what a node stands for
type Kind int

const (
	// KindAsset is a project asset keyed by its path
	KindAsset Kind = iota
	// KindCall is a function keyed by its full name
	KindCall
)

func (k Kind) String() string {
	switch k {
	case KindAsset:
		return "asset"
	case KindCall:
		return "call"
	}
	return "unknown"
}

// Node represents a vertex of a reverse dependency graph.
//
// Children hold consumers: for an asset, the assets that depend on it; for a call,
// the functions calling it. Criticality therefore flows from children to the node.
type Node struct {
	Kind       Kind
	TypeName   string // declaring type or package, call nodes only
	MethodName string // function name, call nodes only
	Critical   bool   // intrinsically performance critical

	id         string
	children   []*Node
	childIndex map[string]int
}

// NewAssetNode creates an asset node keyed by path
func NewAssetNode(path string) *Node {
	return &Node{Kind: KindAsset, id: path}
}

// NewCallNode creates a call node; caller, when set, becomes its first child
func NewCallNode(name, typeName, methodName string, caller *Node) *Node {
	ret := &Node{Kind: KindCall, id: name, TypeName: typeName, MethodName: methodName}
	if caller != nil {
		ret.AddChild(caller)
	}
	return ret
}

// ID returns node identity
func (n *Node) ID() string {
	return n.id
}

// PrettyName returns a display name
func (n *Node) PrettyName() string {
	if n.Kind == KindCall && n.TypeName != "" {
		return n.TypeName + "." + n.MethodName
	}
	return n.id
}

// Children returns consumers (dependents or callers)
func (n *Node) Children() []*Node {
	return n.children
}

// Caller returns the first child or nil
func (n *Node) Caller() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// HasChild returns true if a child with the given id is linked
func (n *Node) HasChild(id string) bool {
	_, ok := n.childIndex[id]
	return ok
}

// AddChild links a consumer, ignoring self edges and duplicates
func (n *Node) AddChild(child *Node) bool {
	if child == nil || child == n || child.id == n.id {
		return false
	}
	if n.childIndex == nil {
		n.childIndex = make(map[string]int)
	}
	if _, ok := n.childIndex[child.id]; ok {
		return false
	}
	n.children = append(n.children, child)
	n.childIndex[child.id] = len(n.children) - 1
	return true
}

// IsPerfCritical returns true if the node or any transitive consumer is critical.
// Each query walks the current graph shape; nothing is cached between calls.
func (n *Node) IsPerfCritical() bool {
	visited := map[*Node]bool{n: true}
	pending := []*Node{n}
	for len(pending) > 0 {
		last := len(pending) - 1
		node := pending[last]
		pending = pending[:last]
		if node.Critical {
			return true
		}
		for _, child := range node.children {
			if visited[child] {
				continue
			}
			visited[child] = true
			pending = append(pending, child)
		}
	}
	return false
}
