package grove

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// NodeType distinguishes plain transform nodes from joints (nodes that are
// part of an armature).
type NodeType int

const (
	NodeTypeNode NodeType = iota + 1
	NodeTypeJoint
)

// Dirty bits for a Node's cached derived state. Setting a bit is cheap and
// always happens eagerly on mutation; the matching cache is rebuilt lazily on
// the next query, which clears the bit again.
const (
	dirtyWorldMatrix = 1 << iota
	dirtyInvTransWorldView
	dirtyBounds

	dirtyAll = dirtyWorldMatrix | dirtyInvTransWorldView | dirtyBounds
)

// BoundsType selects which bounding volume variant a Node caches.
type BoundsType int

const (
	BoundsNone BoundsType = iota
	BoundsBox
	BoundsSphere
)

// boundsCache is a tagged variant over {none, box, sphere}; only the field
// matching kind is ever meaningful.
type boundsCache struct {
	kind   BoundsType
	box    BoundingBox
	sphere BoundingSphere
}

// Node is a hierarchy element carrying a local Transform and up to one each
// of the attachable resources. It owns a cached world matrix and a cached
// inverse-transpose world-view matrix, both guarded by dirty bits: any local
// transform edit or hierarchy change marks this node's and every descendant's
// caches dirty immediately, and the caches are rebuilt on first access.
type Node struct {
	Transform

	id  string
	typ NodeType

	scene *Scene // Non-owning; set while the node is in a scene's tree.

	parent          *Node
	children        []*Node
	notifyHierarchy bool

	camera          *Camera
	light           *Light
	model           *Model
	audioSource     *AudioSource
	particleEmitter *ParticleEmitter

	world             mgl32.Mat4
	invTransWorldView mgl32.Mat4
	dirtyBits         uint8

	bounds boundsCache
	props  *Properties

	// Number of world matrix rebuilds; exercised by the laziness tests.
	worldComputations int
}

// NewNode creates a new Node with the given identifier. Identifiers are not
// required to be unique; an empty identifier is valid.
func NewNode(id string) *Node {
	node := &Node{
		Transform:       NewTransform(),
		id:              id,
		typ:             NodeTypeNode,
		notifyHierarchy: true,
		world:           mgl32.Ident4(),
		dirtyBits:       dirtyAll,
		props:           NewProperties(),
	}
	// The node itself is always the first transform listener, so any listener
	// registered afterwards (an AudioSource, say) observes already-invalidated
	// caches when notified.
	node.Transform.AddListener(node)
	return node
}

// NewJoint creates a new Node of type NodeTypeJoint.
func NewJoint(id string) *Node {
	node := NewNode(id)
	node.typ = NodeTypeJoint
	return node
}

// ID returns the node's identifier.
func (node *Node) ID() string {
	return node.id
}

// SetID sets the node's identifier.
func (node *Node) SetID(id string) {
	node.id = id
}

// Type returns the node's type.
func (node *Node) Type() NodeType {
	return node.typ
}

// Scene returns the scene this node belongs to, or nil if it is not part of
// any scene's tree.
func (node *Node) Scene() *Scene {
	return node.scene
}

// Properties returns the node's game properties bag.
func (node *Node) Properties() *Properties {
	return node.props
}

// TransformChanged implements TransformListener for the node's own Transform:
// a local edit invalidates this node's world-derived caches and, because a
// child's world matrix depends on its parent's, every descendant's as well.
func (node *Node) TransformChanged(*Transform) {
	node.dirtyTransform()
}

// dirtyTransform eagerly marks this node's and all descendants' world-derived
// caches dirty. Local transforms are untouched.
func (node *Node) dirtyTransform() {
	node.dirtyBits |= dirtyAll
	for _, child := range node.children {
		child.dirtyTransform()
	}
}

// childAdded propagates scene membership down the attached subtree, then
// invalidates the child's world-derived caches, since its ancestor chain
// changed. Scene propagation deliberately runs first; see AddChild.
func (node *Node) childAdded(child *Node) {
	child.setScene(node.scene)
	child.dirtyTransform()
}

// childRemoved clears scene membership on the detached subtree.
func (node *Node) childRemoved(child *Node) {
	child.setScene(nil)
}

// parentChanged re-marks this node's and its descendants' world-matrix caches
// dirty; the local transform did not change, but the ancestor chain did.
func (node *Node) parentChanged(oldParent *Node) {
	node.dirtyTransform()
}

// hierarchyChanged is the coarse notification fired when tree structure
// changed somewhere that may affect this node's cached bounds. It marks
// BOUNDS dirty and propagates the same call to children.
func (node *Node) hierarchyChanged() {
	if !node.notifyHierarchy {
		return
	}
	node.dirtyBits |= dirtyBounds
	for _, child := range node.children {
		child.hierarchyChanged()
	}
}

func (node *Node) setScene(scene *Scene) {
	node.scene = scene
	for _, child := range node.children {
		child.setScene(scene)
	}
}

// WorldMatrix returns the node's local-to-world matrix: the parent's world
// matrix times this node's local matrix (root nodes: the local matrix alone).
// If the cache is dirty it is rebuilt here, transitively resolving any dirty
// ancestor first. The returned value is valid until the next invalidation.
func (node *Node) WorldMatrix() mgl32.Mat4 {
	if node.dirtyBits&dirtyWorldMatrix != 0 {
		node.dirtyBits &^= dirtyWorldMatrix
		if node.parent != nil {
			node.world = node.parent.WorldMatrix().Mul4(node.Matrix())
		} else {
			node.world = node.Matrix()
		}
		node.worldComputations++
	}
	return node.world
}

// WorldTranslation returns the node's position in world space.
func (node *Node) WorldTranslation() mgl32.Vec3 {
	world := node.WorldMatrix()
	return world.Col(3).Vec3()
}

func (node *Node) activeCamera() *Camera {
	if node.scene == nil {
		return nil
	}
	return node.scene.ActiveCamera()
}

// ViewMatrix returns the view matrix of the owning scene's active camera, or
// identity if the node is not in a scene or the scene has no active camera.
func (node *Node) ViewMatrix() mgl32.Mat4 {
	if camera := node.activeCamera(); camera != nil {
		return camera.ViewMatrix()
	}
	return mgl32.Ident4()
}

// InverseViewMatrix returns the inverse view matrix of the scene's active
// camera, or identity if there is none.
func (node *Node) InverseViewMatrix() mgl32.Mat4 {
	if camera := node.activeCamera(); camera != nil {
		return camera.InverseViewMatrix()
	}
	return mgl32.Ident4()
}

// ProjectionMatrix returns the projection matrix of the scene's active
// camera, or identity if there is none.
func (node *Node) ProjectionMatrix() mgl32.Mat4 {
	if camera := node.activeCamera(); camera != nil {
		return camera.ProjectionMatrix()
	}
	return mgl32.Ident4()
}

// ViewProjectionMatrix returns projection * view for the scene's active
// camera, or identity if there is none.
func (node *Node) ViewProjectionMatrix() mgl32.Mat4 {
	if camera := node.activeCamera(); camera != nil {
		return camera.ViewProjectionMatrix()
	}
	return mgl32.Ident4()
}

// InverseViewProjectionMatrix returns the inverse of the active camera's
// view-projection matrix, or identity if there is none.
func (node *Node) InverseViewProjectionMatrix() mgl32.Mat4 {
	if camera := node.activeCamera(); camera != nil {
		return camera.InverseViewProjectionMatrix()
	}
	return mgl32.Ident4()
}

// WorldViewMatrix returns view * world for this node.
func (node *Node) WorldViewMatrix() mgl32.Mat4 {
	return node.ViewMatrix().Mul4(node.WorldMatrix())
}

// WorldViewProjectionMatrix returns projection * view * world for this node.
func (node *Node) WorldViewProjectionMatrix() mgl32.Mat4 {
	return node.ViewProjectionMatrix().Mul4(node.WorldMatrix())
}

// InverseTransposeWorldViewMatrix returns the inverse transpose of this
// node's world-view matrix, typically used to transform normal vectors. The
// result is cached under its own dirty bit.
func (node *Node) InverseTransposeWorldViewMatrix() mgl32.Mat4 {
	if node.dirtyBits&dirtyInvTransWorldView != 0 {
		node.dirtyBits &^= dirtyInvTransWorldView
		node.invTransWorldView = node.WorldViewMatrix().Inv().Transpose()
	}
	return node.invTransWorldView
}

// Camera returns the camera attached to this node, or nil.
func (node *Node) Camera() *Camera {
	return node.camera
}

// SetCamera attaches a camera to this node, releasing the node's share of any
// previously attached camera and acquiring a share of the new one. Passing
// nil detaches. Re-attaching the already-attached camera is a no-op.
func (node *Node) SetCamera(camera *Camera) {
	if node.camera == camera {
		return
	}
	if node.camera != nil {
		node.camera.setNode(nil)
		node.camera.Release()
	}
	node.camera = camera
	if camera != nil {
		camera.AddRef()
		camera.setNode(node)
	}
}

// Light returns the light attached to this node, or nil.
func (node *Node) Light() *Light {
	return node.light
}

// SetLight attaches a light to this node; nil detaches.
func (node *Node) SetLight(light *Light) {
	if node.light == light {
		return
	}
	if node.light != nil {
		node.light.setNode(nil)
		node.light.Release()
	}
	node.light = light
	if light != nil {
		light.AddRef()
		light.setNode(node)
	}
}

// Model returns the model attached to this node, or nil.
func (node *Node) Model() *Model {
	return node.model
}

// SetModel attaches a model to this node; nil detaches. Attaching or
// detaching a model invalidates the node's cached bounding volume, since the
// model supplies the local-space volume data.
func (node *Node) SetModel(model *Model) {
	if node.model == model {
		return
	}
	if node.model != nil {
		node.model.setNode(nil)
		node.model.Release()
	}
	node.model = model
	if model != nil {
		model.AddRef()
		model.setNode(node)
	}
	node.dirtyBits |= dirtyBounds
}

// AudioSource returns the audio source attached to this node, or nil.
func (node *Node) AudioSource() *AudioSource {
	return node.audioSource
}

// SetAudioSource attaches an audio source to this node; nil detaches. The
// audio source registers itself as a transform listener so it can track the
// node's world position.
func (node *Node) SetAudioSource(audio *AudioSource) {
	if node.audioSource == audio {
		return
	}
	if node.audioSource != nil {
		node.audioSource.setNode(nil)
		node.audioSource.Release()
	}
	node.audioSource = audio
	if audio != nil {
		audio.AddRef()
		audio.setNode(node)
	}
}

// ParticleEmitter returns the particle emitter attached to this node, or nil.
func (node *Node) ParticleEmitter() *ParticleEmitter {
	return node.particleEmitter
}

// SetParticleEmitter attaches a particle emitter to this node; nil detaches.
func (node *Node) SetParticleEmitter(emitter *ParticleEmitter) {
	if node.particleEmitter == emitter {
		return
	}
	if node.particleEmitter != nil {
		node.particleEmitter.setNode(nil)
		node.particleEmitter.Release()
	}
	node.particleEmitter = emitter
	if emitter != nil {
		emitter.AddRef()
		emitter.setNode(node)
	}
}

// BoundsType returns the node's current bounding volume type.
func (node *Node) BoundsType() BoundsType {
	return node.bounds.kind
}

// SetBoundsType sets the bounding volume type. Switching type discards the
// previous cache; exactly one of the box and sphere caches is live at a time.
func (node *Node) SetBoundsType(boundsType BoundsType) {
	if node.bounds.kind == boundsType {
		return
	}
	node.bounds = boundsCache{kind: boundsType}
	node.dirtyBits |= dirtyBounds
}

// BoundingBox returns the node's bounding box in world space. The result is
// only meaningful when the bounds type is BoundsBox and an attached model
// supplies volume data; otherwise an empty box is returned.
func (node *Node) BoundingBox() BoundingBox {
	if node.bounds.kind != BoundsBox {
		return BoundingBox{}
	}
	node.updateBounds()
	return node.bounds.box
}

// BoundingSphere returns the node's bounding sphere in world space. The
// result is only meaningful when the bounds type is BoundsSphere and an
// attached model supplies volume data; otherwise an empty sphere is returned.
func (node *Node) BoundingSphere() BoundingSphere {
	if node.bounds.kind != BoundsSphere {
		return BoundingSphere{}
	}
	node.updateBounds()
	return node.bounds.sphere
}

func (node *Node) updateBounds() {
	if node.dirtyBits&dirtyBounds == 0 {
		return
	}
	node.dirtyBits &^= dirtyBounds
	world := node.WorldMatrix()
	switch node.bounds.kind {
	case BoundsBox:
		node.bounds.box = BoundingBox{}
		if node.model != nil && node.model.Mesh() != nil {
			node.bounds.box = node.model.Mesh().BoundingBox().Transformed(world)
		}
	case BoundsSphere:
		node.bounds.sphere = BoundingSphere{}
		if node.model != nil && node.model.Mesh() != nil {
			node.bounds.sphere = node.model.Mesh().BoundingSphere().Transformed(world)
		}
	}
}

func (node *Node) matchesID(id string, exactMatch bool) bool {
	if exactMatch {
		return node.id == id
	}
	return strings.HasPrefix(node.id, id)
}

// FindNode returns the first node matching the given identifier, searching in
// pre-order: this node's own identifier is checked first, then each child
// followed by (if recursive) its subtree, in child-list order. With
// exactMatch false, nodes whose identifier starts with id match.
func (node *Node) FindNode(id string, recursive, exactMatch bool) *Node {
	if node.matchesID(id, exactMatch) {
		return node
	}
	for _, child := range node.children {
		if recursive {
			if found := child.FindNode(id, recursive, exactMatch); found != nil {
				return found
			}
		} else if child.matchesID(id, exactMatch) {
			return child
		}
	}
	return nil
}

// FindNodes appends every node matching the given identifier to nodes, in
// pre-order visitation order, and returns the number of matches found. Search
// semantics are those of FindNode.
func (node *Node) FindNodes(id string, nodes *[]*Node, recursive, exactMatch bool) int {
	count := 0
	if node.matchesID(id, exactMatch) {
		if nodes != nil {
			*nodes = append(*nodes, node)
		}
		count++
	}
	for _, child := range node.children {
		if recursive {
			count += child.FindNodes(id, nodes, recursive, exactMatch)
		} else if child.matchesID(id, exactMatch) {
			if nodes != nil {
				*nodes = append(*nodes, child)
			}
			count++
		}
	}
	return count
}

// Detach releases the node's shares of all attached resources and removes it
// from its parent. Children stay attached to the node itself.
func (node *Node) Detach() {
	node.SetCamera(nil)
	node.SetLight(nil)
	node.SetModel(nil)
	node.SetAudioSource(nil)
	node.SetParticleEmitter(nil)
	if node.parent != nil {
		node.parent.RemoveChild(node)
	}
}
