package grove

import (
	"testing"
)

func TestAddChildReparents(t *testing.T) {

	a := NewNode("a")
	b := NewNode("b")
	child := NewNode("child")

	a.AddChild(child)

	if child.Parent() != a || a.ChildCount() != 1 || a.ChildAt(0) != child {
		t.Fatal("child was not linked under its parent")
	}

	b.AddChild(child)

	if a.ChildCount() != 0 || b.ChildCount() != 1 || child.Parent() != b {
		t.Fatal("adding a child must remove it from its previous parent first")
	}

}

func TestRemoveChild(t *testing.T) {

	parent := NewNode("parent")
	a := NewNode("a")
	b := NewNode("b")
	parent.AddChild(a, b)

	parent.RemoveChild(a)

	if parent.ChildCount() != 1 || a.Parent() != nil || parent.ChildAt(0) != b {
		t.Fatal("RemoveChild left the tree in a bad state")
	}

	// Removing a node that is not a child is a no-op.
	parent.RemoveChild(a)

	if parent.ChildCount() != 1 {
		t.Fatal("removing a non-child must not change the tree")
	}

}

func TestRemoveAllChildren(t *testing.T) {

	parent := NewNode("parent")
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")
	parent.AddChild(a, b, c)

	parent.RemoveAllChildren()

	if parent.ChildCount() != 0 {
		t.Fatal("children remain after RemoveAllChildren")
	}

	for _, node := range []*Node{a, b, c} {
		if node.Parent() != nil {
			t.Fatal("removed child still points at the old parent")
		}
	}

}

func TestRootAndIndex(t *testing.T) {

	root := NewNode("root")
	mid := NewNode("mid")
	leaf := NewNode("leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)

	if leaf.Root() != root || root.Root() != root {
		t.Fatal("Root did not walk up to the topmost node")
	}

	sibling := NewNode("sibling")
	mid.AddChild(sibling)

	if leaf.Index() != 0 || sibling.Index() != 1 || root.Index() != -1 {
		t.Fatal("Index returned the wrong positions")
	}

}

func TestChildrenRecursiveOrder(t *testing.T) {

	root := NewNode("root")
	a := NewNode("a")
	b := NewNode("b")
	a1 := NewNode("a1")
	root.AddChild(a, b)
	a.AddChild(a1)

	all := root.ChildrenRecursive()

	if len(all) != 3 || all[0] != a || all[1] != a1 || all[2] != b {
		t.Fatal("recursive children are not in depth-first order")
	}

	if !all.Contains(a1) || all.Contains(root) {
		t.Fatal("Contains gave the wrong answers")
	}

}

func TestNodeFilterChaining(t *testing.T) {

	root := NewNode("root")
	joint := NewJoint("bone")
	lit := NewNode("lamp")
	light := NewPointLight(1, 1, 1, 10)
	lit.SetLight(light)
	light.Release()
	root.AddChild(joint, lit)

	if root.ChildrenRecursive().ByType(NodeTypeJoint).First() != joint {
		t.Fatal("filtering by type failed")
	}

	if root.ChildrenRecursive().WithLights().First() != lit {
		t.Fatal("filtering by attached light failed")
	}

	if len(root.ChildrenRecursive().ByID("lamp")) != 1 {
		t.Fatal("filtering by id failed")
	}

}
