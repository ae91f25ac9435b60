package grove

import (
	"github.com/go-gl/mathgl/mgl32"
)

// TransformListener is notified whenever a Transform's local translation,
// rotation, or scale changes. Notification is synchronous and happens inline
// within the setter call, before it returns; there is no batching or deferral.
type TransformListener interface {
	TransformChanged(transform *Transform)
}

// Transform owns a local translation, rotation, and scale, and derives a 4x4
// local matrix from them on demand. The local matrix is cached and only
// rebuilt when a component changed since the last computation. Transform is
// the sole authority over the local matrix; nothing else may set it directly.
type Transform struct {
	translation mgl32.Vec3
	rotation    mgl32.Quat
	scale       mgl32.Vec3

	local      mgl32.Mat4
	localDirty bool

	listeners []TransformListener
}

// NewTransform returns an identity Transform.
func NewTransform() Transform {
	return Transform{
		rotation:   mgl32.QuatIdent(),
		scale:      mgl32.Vec3{1, 1, 1},
		local:      mgl32.Ident4(),
		localDirty: false,
	}
}

// Matrix returns the local transform matrix (translation * rotation * scale),
// recomputing it only if a component changed since the last call.
func (transform *Transform) Matrix() mgl32.Mat4 {
	if transform.localDirty {
		t := mgl32.Translate3D(transform.translation.X(), transform.translation.Y(), transform.translation.Z())
		r := transform.rotation.Mat4()
		s := mgl32.Scale3D(transform.scale.X(), transform.scale.Y(), transform.scale.Z())
		transform.local = t.Mul4(r).Mul4(s)
		transform.localDirty = false
	}
	return transform.local
}

// Translation returns the local translation.
func (transform *Transform) Translation() mgl32.Vec3 {
	return transform.translation
}

// SetTranslation sets the local translation.
func (transform *Transform) SetTranslation(x, y, z float32) {
	transform.SetTranslationVec(mgl32.Vec3{x, y, z})
}

// SetTranslationVec sets the local translation from a vector.
func (transform *Transform) SetTranslationVec(translation mgl32.Vec3) {
	transform.translation = translation
	transform.changed()
}

// Translate adds the given offsets to the local translation.
func (transform *Transform) Translate(x, y, z float32) {
	transform.SetTranslationVec(transform.translation.Add(mgl32.Vec3{x, y, z}))
}

// Rotation returns the local rotation.
func (transform *Transform) Rotation() mgl32.Quat {
	return transform.rotation
}

// SetRotation sets the local rotation.
func (transform *Transform) SetRotation(rotation mgl32.Quat) {
	transform.rotation = rotation
	transform.changed()
}

// RotateAxis rotates the transform around the given axis by angle radians,
// applied on top of the current local rotation.
func (transform *Transform) RotateAxis(axis mgl32.Vec3, angle float32) {
	transform.SetRotation(transform.rotation.Mul(mgl32.QuatRotate(angle, axis)).Normalize())
}

// Scale returns the local scale.
func (transform *Transform) Scale() mgl32.Vec3 {
	return transform.scale
}

// SetScale sets the local scale.
func (transform *Transform) SetScale(x, y, z float32) {
	transform.SetScaleVec(mgl32.Vec3{x, y, z})
}

// SetScaleVec sets the local scale from a vector.
func (transform *Transform) SetScaleVec(scale mgl32.Vec3) {
	transform.scale = scale
	transform.changed()
}

// ScaleBy multiplies the local scale componentwise.
func (transform *Transform) ScaleBy(x, y, z float32) {
	s := transform.scale
	transform.SetScale(s.X()*x, s.Y()*y, s.Z()*z)
}

// Set replaces all three components in one step, firing a single change
// notification.
func (transform *Transform) Set(translation mgl32.Vec3, rotation mgl32.Quat, scale mgl32.Vec3) {
	transform.translation = translation
	transform.rotation = rotation
	transform.scale = scale
	transform.changed()
}

// SetIdentity resets the transform to identity.
func (transform *Transform) SetIdentity() {
	transform.Set(mgl32.Vec3{}, mgl32.QuatIdent(), mgl32.Vec3{1, 1, 1})
}

// AddListener registers a listener to be notified on every local mutation.
// Registration is O(1). Adding the same listener twice notifies it twice.
func (transform *Transform) AddListener(listener TransformListener) {
	transform.listeners = append(transform.listeners, listener)
}

// RemoveListener removes a previously registered listener, compared by
// identity. Removing a listener that was never added is a no-op.
func (transform *Transform) RemoveListener(listener TransformListener) {
	for i, l := range transform.listeners {
		if l == listener {
			transform.listeners = append(transform.listeners[:i], transform.listeners[i+1:]...)
			return
		}
	}
}

func (transform *Transform) changed() {
	transform.localDirty = true
	for _, listener := range transform.listeners {
		listener.TransformChanged(transform)
	}
}
