package grove

// Model is a reference-counted instance of a Mesh. The scene-graph core uses
// it as the supplier of local-space bounding volume data for the node it is
// attached to.
type Model struct {
	Ref

	mesh *Mesh
	node *Node // Non-owning; the node the model is attached to.
}

// NewModel creates a model over the given mesh. The mesh may be nil, in which
// case the model supplies no volume data.
func NewModel(mesh *Mesh) *Model {
	return &Model{
		Ref:  newRef(nil),
		mesh: mesh,
	}
}

// Mesh returns the model's mesh, or nil.
func (model *Model) Mesh() *Mesh {
	return model.mesh
}

// SetMesh replaces the model's mesh. The owning node's bounds cache, if any,
// is invalidated.
func (model *Model) SetMesh(mesh *Mesh) {
	model.mesh = mesh
	if model.node != nil {
		model.node.dirtyBits |= dirtyBounds
	}
}

// Node returns the node this model is attached to, or nil.
func (model *Model) Node() *Node {
	return model.node
}

func (model *Model) setNode(node *Node) {
	model.node = node
}
