package grove

// Scene owns the root of a node hierarchy and tracks the active camera. It is
// the anchor nodes consult when they are asked for camera-relative matrices,
// so a Scene must outlive every node that queries them.
type Scene struct {
	name         string
	root         *Node
	activeCamera *Camera
}

// NewScene creates a new Scene with an identity root node named "Root".
func NewScene(name string) *Scene {
	scene := &Scene{name: name}
	scene.root = NewNode("Root")
	scene.root.scene = scene
	return scene
}

// Name returns the scene's name.
func (scene *Scene) Name() string {
	return scene.name
}

// SetName sets the scene's name.
func (scene *Scene) SetName(name string) {
	scene.name = name
}

// Root returns the scene's root node.
func (scene *Scene) Root() *Node {
	return scene.root
}

// AddNode creates a new node with the given identifier and parents it to the
// scene's root.
func (scene *Scene) AddNode(id string) *Node {
	node := NewNode(id)
	scene.root.AddChild(node)
	return node
}

// FindNode returns the first node in the scene exactly matching the given
// identifier, searching the whole tree in pre-order, or nil.
func (scene *Scene) FindNode(id string) *Node {
	return scene.root.FindNode(id, true, true)
}

// FindNodes appends every node in the scene matching the given identifier to
// nodes and returns the number of matches.
func (scene *Scene) FindNodes(id string, nodes *[]*Node, exactMatch bool) int {
	return scene.root.FindNodes(id, nodes, true, exactMatch)
}

// ActiveCamera returns the scene's active camera, or nil if none is set.
// Nodes asked for camera-relative matrices while this is nil return identity
// matrices.
func (scene *Scene) ActiveCamera() *Camera {
	return scene.activeCamera
}

// SetActiveCamera sets the scene's active camera, releasing the scene's share
// of the previous one and acquiring a share of the new one. Passing nil
// clears it.
func (scene *Scene) SetActiveCamera(camera *Camera) {
	if scene.activeCamera == camera {
		return
	}
	if scene.activeCamera != nil {
		scene.activeCamera.Release()
	}
	scene.activeCamera = camera
	if camera != nil {
		camera.AddRef()
	}
}

// VisitNodes walks the scene's tree in pre-order, calling visit for each
// node. If visit returns false, that node's children are skipped.
func (scene *Scene) VisitNodes(visit func(node *Node) bool) {
	var walk func(node *Node)
	walk = func(node *Node) {
		if !visit(node) {
			return
		}
		for _, child := range node.children {
			walk(child)
		}
	}
	walk(scene.root)
}
