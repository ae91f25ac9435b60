package grove

// NodeFilter is a selection of nodes, as returned by Node.Children and
// Node.ChildrenRecursive. Filtering methods return new NodeFilters, so they
// can be chained.
type NodeFilter []*Node

// ByID returns a new NodeFilter containing only nodes with the given
// identifier.
func (filter NodeFilter) ByID(id string) NodeFilter {
	return filter.ByFunc(func(node *Node) bool { return node.id == id })
}

// ByType returns a new NodeFilter containing only nodes of the given type.
func (filter NodeFilter) ByType(nodeType NodeType) NodeFilter {
	return filter.ByFunc(func(node *Node) bool { return node.typ == nodeType })
}

// ByFunc returns a new NodeFilter containing only nodes for which the filter
// function returns true.
func (filter NodeFilter) ByFunc(fn func(node *Node) bool) NodeFilter {
	out := make(NodeFilter, 0, len(filter))
	for _, node := range filter {
		if fn(node) {
			out = append(out, node)
		}
	}
	return out
}

// WithModels returns a new NodeFilter containing only nodes that have a model
// attached.
func (filter NodeFilter) WithModels() NodeFilter {
	return filter.ByFunc(func(node *Node) bool { return node.model != nil })
}

// WithLights returns a new NodeFilter containing only nodes that have a light
// attached.
func (filter NodeFilter) WithLights() NodeFilter {
	return filter.ByFunc(func(node *Node) bool { return node.light != nil })
}

// First returns the first node in the filter, or nil if it is empty.
func (filter NodeFilter) First() *Node {
	if len(filter) == 0 {
		return nil
	}
	return filter[0]
}

// Contains returns true if the filter contains the given node.
func (filter NodeFilter) Contains(node *Node) bool {
	return filter.IndexOf(node) >= 0
}

// IndexOf returns the index of the given node in the filter, or -1 if it is
// not present.
func (filter NodeFilter) IndexOf(node *Node) int {
	for i, n := range filter {
		if n == node {
			return i
		}
	}
	return -1
}
