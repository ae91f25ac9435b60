package grove

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera supplies view and projection matrices for the node it is attached
// to. The view matrix is the inverse of the owning node's world matrix and is
// derived from the node's (already cached) world transform on demand; only
// the projection matrix, which depends solely on the camera's own settings,
// is cached here, under its own dirty flag.
type Camera struct {
	Ref

	perspective bool
	fieldOfView float32 // Vertical field of view in degrees, perspective only.
	aspectRatio float32
	zoomX       float32 // Horizontal extent of the view volume, orthographic only.
	zoomY       float32
	near, far   float32

	node *Node // Non-owning; the node the camera is attached to.

	projection      mgl32.Mat4
	projectionDirty bool
}

// NewPerspectiveCamera creates a camera with a perspective projection.
// fieldOfView is the vertical field of view in degrees.
func NewPerspectiveCamera(fieldOfView, aspectRatio, near, far float32) *Camera {
	return &Camera{
		Ref:             newRef(nil),
		perspective:     true,
		fieldOfView:     fieldOfView,
		aspectRatio:     aspectRatio,
		near:            near,
		far:             far,
		projectionDirty: true,
	}
}

// NewOrthographicCamera creates a camera with an orthographic projection.
// zoomX and zoomY are the horizontal and vertical extents of the view volume.
func NewOrthographicCamera(zoomX, zoomY, near, far float32) *Camera {
	return &Camera{
		Ref:             newRef(nil),
		zoomX:           zoomX,
		zoomY:           zoomY,
		near:            near,
		far:             far,
		projectionDirty: true,
	}
}

// Node returns the node this camera is attached to, or nil.
func (camera *Camera) Node() *Node {
	return camera.node
}

func (camera *Camera) setNode(node *Node) {
	camera.node = node
}

// IsPerspective returns true for a perspective camera, false for an
// orthographic one.
func (camera *Camera) IsPerspective() bool {
	return camera.perspective
}

// FieldOfView returns the vertical field of view in degrees.
func (camera *Camera) FieldOfView() float32 {
	return camera.fieldOfView
}

// SetFieldOfView sets the vertical field of view in degrees.
func (camera *Camera) SetFieldOfView(fieldOfView float32) {
	camera.fieldOfView = fieldOfView
	camera.projectionDirty = true
}

// AspectRatio returns the camera's aspect ratio.
func (camera *Camera) AspectRatio() float32 {
	return camera.aspectRatio
}

// SetAspectRatio sets the camera's aspect ratio.
func (camera *Camera) SetAspectRatio(aspectRatio float32) {
	camera.aspectRatio = aspectRatio
	camera.projectionDirty = true
}

// NearPlane returns the near clipping plane distance.
func (camera *Camera) NearPlane() float32 {
	return camera.near
}

// FarPlane returns the far clipping plane distance.
func (camera *Camera) FarPlane() float32 {
	return camera.far
}

// SetClippingPlanes sets the near and far clipping plane distances.
func (camera *Camera) SetClippingPlanes(near, far float32) {
	camera.near = near
	camera.far = far
	camera.projectionDirty = true
}

// ViewMatrix returns the world-to-camera matrix: the inverse of the attached
// node's world matrix, or identity if the camera is unattached.
func (camera *Camera) ViewMatrix() mgl32.Mat4 {
	if camera.node == nil {
		return mgl32.Ident4()
	}
	return camera.node.WorldMatrix().Inv()
}

// InverseViewMatrix returns the camera-to-world matrix, which is the attached
// node's world matrix, or identity if the camera is unattached.
func (camera *Camera) InverseViewMatrix() mgl32.Mat4 {
	if camera.node == nil {
		return mgl32.Ident4()
	}
	return camera.node.WorldMatrix()
}

// ProjectionMatrix returns the camera's projection matrix, rebuilding it only
// if a projection setting changed since the last call.
func (camera *Camera) ProjectionMatrix() mgl32.Mat4 {
	if camera.projectionDirty {
		if camera.perspective {
			camera.projection = mgl32.Perspective(mgl32.DegToRad(camera.fieldOfView), camera.aspectRatio, camera.near, camera.far)
		} else {
			camera.projection = mgl32.Ortho(-camera.zoomX/2, camera.zoomX/2, -camera.zoomY/2, camera.zoomY/2, camera.near, camera.far)
		}
		camera.projectionDirty = false
	}
	return camera.projection
}

// ViewProjectionMatrix returns projection * view.
func (camera *Camera) ViewProjectionMatrix() mgl32.Mat4 {
	return camera.ProjectionMatrix().Mul4(camera.ViewMatrix())
}

// InverseViewProjectionMatrix returns the inverse of the view-projection
// matrix.
func (camera *Camera) InverseViewProjectionMatrix() mgl32.Mat4 {
	return camera.ViewProjectionMatrix().Inv()
}
