package grove

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
)

// Three positions spanning (-1,-1,-1) to (1,1,1), base64-encoded float32
// little-endian, embedded as a data URI buffer.
const testGLTF = `{
	"asset": {"version": "2.0"},
	"buffers": [{"byteLength": 36, "uri": "data:application/octet-stream;base64,AACAvwAAgL8AAIC/AACAPwAAgD8AAIA/AAAAAAAAgD8AAAAA"}],
	"bufferViews": [{"buffer": 0, "byteOffset": 0, "byteLength": 36}],
	"accessors": [{"bufferView": 0, "componentType": 5126, "count": 3, "type": "VEC3", "min": [-1, -1, -1], "max": [1, 1, 1]}],
	"meshes": [{"name": "tri", "primitives": [{"attributes": {"POSITION": 0}}]}],
	"cameras": [{"type": "perspective", "perspective": {"yfov": 1.0471975, "znear": 0.1, "zfar": 150}}],
	"nodes": [
		{"name": "root", "translation": [0, 5, 0], "children": [1, 2]},
		{"name": "crate", "translation": [1, 0, 0], "mesh": 0},
		{"name": "cam", "translation": [0, 0, 10], "camera": 0}
	],
	"scenes": [{"name": "main", "nodes": [0]}],
	"scene": 0
}`

func TestLoadGLTFData(t *testing.T) {

	scene, err := LoadGLTFData(strings.NewReader(testGLTF))
	if err != nil {
		t.Fatal(err)
	}

	if scene.Name() != "main" {
		t.Fatal("scene name was not imported:", scene.Name())
	}

	root := scene.FindNode("root")
	if root == nil || root.Parent() != scene.Root() {
		t.Fatal("scene roots were not attached")
	}

	crate := scene.FindNode("crate")
	if crate == nil || crate.Parent() != root {
		t.Fatal("hierarchy was not imported")
	}

	if !approxVec3(crate.WorldTranslation(), mgl32.Vec3{1, 5, 0}) {
		t.Fatal("imported transforms compose wrong:", crate.WorldTranslation())
	}

	if crate.Model() == nil || crate.Model().Mesh().VertexCount() != 3 {
		t.Fatal("mesh was not imported")
	}

	if crate.BoundsType() != BoundsBox {
		t.Fatal("modeled nodes must default to box bounds")
	}

	box := crate.BoundingBox()
	if !approxVec3(box.Center(), mgl32.Vec3{1, 5, 0}) || !approxVec3(box.Size(), mgl32.Vec3{2, 2, 2}) {
		t.Fatal("imported mesh bounds are wrong:", box)
	}

	cam := scene.FindNode("cam")
	if cam == nil || cam.Camera() == nil {
		t.Fatal("camera was not imported")
	}

	if scene.ActiveCamera() != cam.Camera() {
		t.Fatal("the first imported camera must become active")
	}

	if !approx(cam.Camera().FieldOfView(), 60) || !approx(cam.Camera().FarPlane(), 150) {
		t.Fatal("camera parameters are wrong:", cam.Camera().FieldOfView(), cam.Camera().FarPlane())
	}

	// Nodes without rotation or scale entries get identity defaults.
	if !approxMat4(cam.Matrix(), mgl32.Translate3D(0, 0, 10)) {
		t.Fatal("default rotation and scale are not identity")
	}

}

func TestLoadGLTFDocumentWithoutScenes(t *testing.T) {

	doc := &gltf.Document{}
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: "a"}, &gltf.Node{Name: "b"})
	doc.Nodes[0].Children = append(doc.Nodes[0].Children, 1)
	doc.Nodes[0].Translation[1] = 2

	scene, err := LoadGLTFDocument(doc)
	if err != nil {
		t.Fatal(err)
	}

	// Without a scene entry, parentless nodes hang off the root.
	if scene.Root().ChildCount() != 1 || scene.FindNode("a") == nil {
		t.Fatal("parentless nodes were not attached to the root")
	}

	b := scene.FindNode("b")
	if b == nil || b.Parent() != scene.FindNode("a") {
		t.Fatal("hierarchy was not linked")
	}

	// A zero scale entry in a hand-built document reads as unset.
	if !approxVec3(scene.FindNode("a").Scale(), mgl32.Vec3{1, 1, 1}) {
		t.Fatal("unset scale must default to 1")
	}

	if !approxVec3(b.WorldTranslation(), mgl32.Vec3{0, 2, 0}) {
		t.Fatal("world translation is wrong:", b.WorldTranslation())
	}

}

func TestLoadGLTFDataRejectsGarbage(t *testing.T) {

	if _, err := LoadGLTFData(strings.NewReader("not gltf")); err == nil {
		t.Fatal("malformed input must fail")
	}

}
