package grove

import (
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"
)

// LoadGLTFFile loads a glTF or glb file from disk and builds a Scene from it.
func LoadGLTFFile(path string) (*Scene, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open gltf %q", path)
	}
	return LoadGLTFDocument(doc)
}

// LoadGLTFData builds a Scene from glTF data read from r.
func LoadGLTFData(r io.Reader) (*Scene, error) {
	doc := gltf.NewDocument()
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, errors.Wrap(err, "decode gltf")
	}
	return LoadGLTFDocument(doc)
}

// LoadGLTFDocument builds a Scene from an already-decoded glTF document. Node
// names, transforms, and hierarchy are imported; meshes are imported as
// bounding volume data; the first camera found becomes the scene's active
// camera. Animations, skins, and materials are not imported.
func LoadGLTFDocument(doc *gltf.Document) (*Scene, error) {
	if len(doc.Animations) > 0 {
		log.Warn("gltf animations are not imported", zap.Int("count", len(doc.Animations)))
	}
	if len(doc.Skins) > 0 {
		log.Warn("gltf skins are not imported", zap.Int("count", len(doc.Skins)))
	}

	meshes := make([]*Mesh, len(doc.Meshes))
	for i, gltfMesh := range doc.Meshes {
		var vertices []mgl32.Vec3
		for _, primitive := range gltfMesh.Primitives {
			posIndex, ok := primitive.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIndex], nil)
			if err != nil {
				return nil, errors.Wrapf(err, "read positions for mesh %q", gltfMesh.Name)
			}
			for _, p := range positions {
				vertices = append(vertices, mgl32.Vec3{p[0], p[1], p[2]})
			}
		}
		meshes[i] = NewMesh(gltfMesh.Name, vertices...)
	}

	nodes := make([]*Node, len(doc.Nodes))
	var firstCamera *Camera
	for i, gltfNode := range doc.Nodes {
		node := NewNode(gltfNode.Name)

		t := gltfNode.Translation
		node.SetTranslation(float32(t[0]), float32(t[1]), float32(t[2]))

		r := gltfNode.Rotation
		rotation := mgl32.Quat{W: float32(r[3]), V: mgl32.Vec3{float32(r[0]), float32(r[1]), float32(r[2])}}
		if rotation.Len() == 0 {
			rotation = mgl32.QuatIdent()
		}
		node.SetRotation(rotation.Normalize())

		s := gltfNode.Scale
		if s[0] == 0 && s[1] == 0 && s[2] == 0 {
			node.SetScale(1, 1, 1)
		} else {
			node.SetScale(float32(s[0]), float32(s[1]), float32(s[2]))
		}

		if gltfNode.Mesh != nil {
			model := NewModel(meshes[*gltfNode.Mesh])
			node.SetModel(model)
			model.Release() // The node holds the only share now.
			node.SetBoundsType(BoundsBox)
		}

		if gltfNode.Camera != nil {
			camera := cameraFromGLTF(doc.Cameras[*gltfNode.Camera])
			node.SetCamera(camera)
			camera.Release()
			if firstCamera == nil {
				firstCamera = camera
			}
		}

		nodes[i] = node
	}

	for i, gltfNode := range doc.Nodes {
		for _, childIndex := range gltfNode.Children {
			nodes[i].AddChild(nodes[childIndex])
		}
	}

	scene := NewScene("")
	if len(doc.Scenes) > 0 {
		sceneIndex := 0
		if doc.Scene != nil {
			sceneIndex = int(*doc.Scene)
		}
		def := doc.Scenes[sceneIndex]
		scene.SetName(def.Name)
		for _, rootIndex := range def.Nodes {
			scene.Root().AddChild(nodes[rootIndex])
		}
	} else {
		for _, node := range nodes {
			if node.Parent() == nil {
				scene.Root().AddChild(node)
			}
		}
	}

	if firstCamera != nil && firstCamera.Node() != nil && firstCamera.Node().Scene() == scene {
		scene.SetActiveCamera(firstCamera)
	}

	return scene, nil
}

func cameraFromGLTF(gltfCamera *gltf.Camera) *Camera {
	if gltfCamera.Perspective != nil {
		p := gltfCamera.Perspective
		aspect := float32(4.0 / 3.0)
		if p.AspectRatio != nil {
			aspect = float32(*p.AspectRatio)
		}
		far := float32(100)
		if p.Zfar != nil {
			far = float32(*p.Zfar)
		}
		return NewPerspectiveCamera(mgl32.RadToDeg(float32(p.Yfov)), aspect, float32(p.Znear), far)
	}
	if gltfCamera.Orthographic != nil {
		o := gltfCamera.Orthographic
		return NewOrthographicCamera(float32(o.Xmag)*2, float32(o.Ymag)*2, float32(o.Znear), float32(o.Zfar))
	}
	log.Warn("gltf camera has no projection; defaulting to perspective", zap.String("name", gltfCamera.Name))
	return NewPerspectiveCamera(60, 4.0/3.0, 0.1, 100)
}
