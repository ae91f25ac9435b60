package grove

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPerspectiveProjection(t *testing.T) {

	camera := NewPerspectiveCamera(45, 16.0/9.0, 0.1, 100)

	want := mgl32.Perspective(mgl32.DegToRad(45), 16.0/9.0, 0.1, 100)

	if !approxMat4(camera.ProjectionMatrix(), want) {
		t.Fatal("perspective projection matrix is wrong")
	}

	if !camera.IsPerspective() {
		t.Fatal("camera must report itself as perspective")
	}

}

func TestOrthographicProjection(t *testing.T) {

	camera := NewOrthographicCamera(4, 2, 0.1, 10)

	want := mgl32.Ortho(-2, 2, -1, 1, 0.1, 10)

	if !approxMat4(camera.ProjectionMatrix(), want) {
		t.Fatal("orthographic projection matrix is wrong")
	}

	if camera.IsPerspective() {
		t.Fatal("camera must report itself as orthographic")
	}

}

func TestProjectionRefreshesOnSetterChange(t *testing.T) {

	camera := NewPerspectiveCamera(45, 1, 0.1, 100)
	before := camera.ProjectionMatrix()

	camera.SetFieldOfView(90)

	if approxMat4(camera.ProjectionMatrix(), before) {
		t.Fatal("projection did not refresh after the field of view changed")
	}

	if !approxMat4(camera.ProjectionMatrix(), mgl32.Perspective(mgl32.DegToRad(90), 1, 0.1, 100)) {
		t.Fatal("refreshed projection is wrong")
	}

	camera.SetClippingPlanes(1, 50)

	if camera.NearPlane() != 1 || camera.FarPlane() != 50 {
		t.Fatal("clipping planes were not stored")
	}

}

func TestViewMatrixIsInverseOfNodeWorld(t *testing.T) {

	node := NewNode("camera")
	node.SetTranslation(0, 3, 10)
	node.RotateAxis(mgl32.Vec3{0, 1, 0}, mgl32.DegToRad(30))

	camera := NewPerspectiveCamera(60, 4.0/3.0, 0.1, 100)
	node.SetCamera(camera)
	camera.Release()

	if !approxMat4(camera.ViewMatrix(), node.WorldMatrix().Inv()) {
		t.Fatal("view matrix must be the inverse of the owning node's world matrix")
	}

	if !approxMat4(camera.InverseViewMatrix(), node.WorldMatrix()) {
		t.Fatal("inverse view matrix must be the owning node's world matrix")
	}

	// The view tracks the node as it moves.
	node.SetTranslation(5, 0, 0)

	if !approxMat4(camera.ViewMatrix(), node.WorldMatrix().Inv()) {
		t.Fatal("view matrix went stale after the node moved")
	}

}

func TestViewMatrixWithoutNodeIsIdentity(t *testing.T) {

	camera := NewPerspectiveCamera(60, 1, 0.1, 100)

	if !approxMat4(camera.ViewMatrix(), mgl32.Ident4()) {
		t.Fatal("an unattached camera's view must be identity")
	}

	if !approxMat4(camera.ViewProjectionMatrix(), camera.ProjectionMatrix()) {
		t.Fatal("an unattached camera's view-projection must reduce to the projection")
	}

}

func TestViewProjectionRoundTrip(t *testing.T) {

	node := NewNode("camera")
	node.SetTranslation(1, 2, 3)

	camera := NewPerspectiveCamera(60, 4.0/3.0, 0.1, 100)
	node.SetCamera(camera)
	camera.Release()

	round := camera.ViewProjectionMatrix().Mul4(camera.InverseViewProjectionMatrix())

	if !approxMat4(round, mgl32.Ident4()) {
		t.Fatal("view-projection times its inverse is not identity")
	}

}
