package grove

// This file is the hierarchy container: the intrusive parent/child links a
// Node is built on, plus the structural-change notifications (childAdded,
// childRemoved, parentChanged, hierarchyChanged) the Node core hooks into.
// Invalidation here is eager and always a full recursive walk of the affected
// subtree; matrix recomputation stays lazy (see node.go).

// AddChild parents the provided children to this node. Children already
// parented elsewhere are removed from their old parent first. The child's
// scene membership is propagated before its caches are invalidated, so a
// listener querying matrices mid-callback sees the child already in-scene.
func (node *Node) AddChild(children ...*Node) {
	for _, child := range children {
		if child == nil || child == node {
			continue
		}
		oldParent := child.parent
		if oldParent != nil {
			oldParent.removeChild(child)
		}
		child.parent = node
		node.children = append(node.children, child)
		node.childAdded(child)
		child.parentChanged(oldParent)
	}
	node.hierarchyChanged()
}

// RemoveChild removes the provided children from this node. Children that are
// not actually children of this node are ignored.
func (node *Node) RemoveChild(children ...*Node) {
	removed := false
	for _, child := range children {
		if node.removeChild(child) {
			removed = true
		}
	}
	if removed {
		node.hierarchyChanged()
	}
}

func (node *Node) removeChild(child *Node) bool {
	for i, c := range node.children {
		if c == child {
			node.children = append(node.children[:i], node.children[i+1:]...)
			child.parent = nil
			node.childRemoved(child)
			child.parentChanged(node)
			return true
		}
	}
	return false
}

// RemoveAllChildren detaches every child of this node. Per-child coarse
// hierarchy notifications are suppressed; a single one fires at the end.
func (node *Node) RemoveAllChildren() {
	node.notifyHierarchy = false
	for len(node.children) > 0 {
		node.removeChild(node.children[len(node.children)-1])
	}
	node.notifyHierarchy = true
	node.hierarchyChanged()
}

// Parent returns the node's parent, or nil for a root node.
func (node *Node) Parent() *Node {
	return node.parent
}

// Root returns the top level node in this node's parent hierarchy. A node
// with no parent is its own root.
func (node *Node) Root() *Node {
	root := node
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// ChildCount returns the number of direct children.
func (node *Node) ChildCount() int {
	return len(node.children)
}

// ChildAt returns the direct child at the given index, or nil if the index is
// out of range.
func (node *Node) ChildAt(index int) *Node {
	if index < 0 || index >= len(node.children) {
		return nil
	}
	return node.children[index]
}

// Children returns a copy of the node's direct children as a NodeFilter.
func (node *Node) Children() NodeFilter {
	return append(make(NodeFilter, 0, len(node.children)), node.children...)
}

// ChildrenRecursive returns the node's children, grandchildren, and so on, in
// pre-order, as a NodeFilter.
func (node *Node) ChildrenRecursive() NodeFilter {
	out := make(NodeFilter, 0, len(node.children))
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, child := range n.children {
			out = append(out, child)
			walk(child)
		}
	}
	walk(node)
	return out
}

// Index returns the index of this node in its parent's child list, or -1 for
// a root node.
func (node *Node) Index() int {
	if node.parent == nil {
		return -1
	}
	for i, c := range node.parent.children {
		if c == node {
			return i
		}
	}
	return -1
}
