package grove

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSceneMembershipPropagates(t *testing.T) {

	scene := NewScene("level")

	if scene.Root().Scene() != scene {
		t.Fatal("the root node must belong to its scene")
	}

	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)

	scene.Root().AddChild(parent)

	if parent.Scene() != scene || child.Scene() != scene {
		t.Fatal("scene membership did not propagate down the attached subtree")
	}

	scene.Root().RemoveChild(parent)

	if parent.Scene() != nil || child.Scene() != nil {
		t.Fatal("scene membership was not cleared on removal")
	}

}

func TestSceneAddAndFind(t *testing.T) {

	scene := NewScene("level")
	scene.AddNode("player")
	enemy := scene.AddNode("enemy.1")
	scene.Root().FindNode("enemy.1", true, true).AddChild(NewNode("enemy.1.weapon"))

	if scene.FindNode("player") == nil {
		t.Fatal("FindNode missed a direct child of the root")
	}

	var enemies []*Node
	if scene.FindNodes("enemy", &enemies, false) != 2 {
		t.Fatal("prefix FindNodes missed nodes, got", len(enemies))
	}

	if enemies[0] != enemy {
		t.Fatal("matches are not in traversal order")
	}

}

func TestSceneActiveCamera(t *testing.T) {

	scene := NewScene("level")
	node := scene.AddNode("camera")
	camera := NewPerspectiveCamera(60, 4.0/3.0, 0.1, 100)
	node.SetCamera(camera)
	camera.Release()

	scene.SetActiveCamera(camera)

	if scene.ActiveCamera() != camera || camera.RefCount() != 2 {
		t.Fatal("setting the active camera must acquire a share")
	}

	scene.SetActiveCamera(nil)

	if scene.ActiveCamera() != nil || camera.RefCount() != 1 {
		t.Fatal("clearing the active camera must release the share")
	}

}

func TestSceneVisitNodes(t *testing.T) {

	scene := NewScene("level")
	a := scene.AddNode("a")
	a.AddChild(NewNode("a1"), NewNode("a2"))
	scene.AddNode("b")

	var visited []string
	scene.VisitNodes(func(node *Node) bool {
		visited = append(visited, node.ID())
		return true
	})

	want := []string{"Root", "a", "a1", "a2", "b"}
	if len(visited) != len(want) {
		t.Fatal("visited the wrong number of nodes:", visited)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatal("visit order is wrong:", visited)
		}
	}

	// Returning false prunes the subtree under that node.
	visited = visited[:0]
	scene.VisitNodes(func(node *Node) bool {
		visited = append(visited, node.ID())
		return node.ID() != "a"
	})

	if len(visited) != 3 {
		t.Fatal("returning false must skip the node's children:", visited)
	}

}

func TestNodeProperties(t *testing.T) {

	node := NewNode("door")
	node.Properties().Get("locked").Set(true)
	node.Properties().Get("key").Set("rusty")

	if !node.Properties().Has("locked", "key") {
		t.Fatal("properties were not stored")
	}

	if !node.Properties().Get("locked").AsBool() || node.Properties().Get("key").AsString() != "rusty" {
		t.Fatal("property values are wrong")
	}

	node.Properties().Get("offset").Set(mgl32.Vec3{1, 2, 3})

	if !node.Properties().Get("offset").IsVec3() || !approxVec3(node.Properties().Get("offset").AsVec3(), mgl32.Vec3{1, 2, 3}) {
		t.Fatal("vector property round trip failed")
	}

	clone := node.Properties().Clone()
	clone.Get("locked").Set(false)

	if !node.Properties().Get("locked").AsBool() {
		t.Fatal("mutating a clone must not touch the original")
	}

}
