package grove

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBoundingBoxFromPoints(t *testing.T) {

	box := BoundingBoxFromPoints(
		mgl32.Vec3{1, -2, 0},
		mgl32.Vec3{-3, 4, 2},
		mgl32.Vec3{0, 0, -1},
	)

	if !approxVec3(box.Min, mgl32.Vec3{-3, -2, -1}) || !approxVec3(box.Max, mgl32.Vec3{1, 4, 2}) {
		t.Fatal("box does not cover its points:", box)
	}

	if BoundingBoxFromPoints().IsEmpty() == false {
		t.Fatal("a box built from no points must be empty")
	}

}

func TestBoundingBoxContains(t *testing.T) {

	box := NewBoundingBox(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1})

	if !box.Contains(mgl32.Vec3{0, 0, 0}) || !box.Contains(mgl32.Vec3{1, 1, 1}) {
		t.Fatal("box must contain interior and boundary points")
	}

	if box.Contains(mgl32.Vec3{0, 1.5, 0}) {
		t.Fatal("box must not contain an outside point")
	}

}

func TestBoundingBoxMerged(t *testing.T) {

	a := NewBoundingBox(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{0, 0, 0})
	b := NewBoundingBox(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{2, 3, 1})

	merged := a.Merged(b)

	if !approxVec3(merged.Min, mgl32.Vec3{-1, -1, -1}) || !approxVec3(merged.Max, mgl32.Vec3{2, 3, 1}) {
		t.Fatal("merged box is wrong:", merged)
	}

	if !approxVec3(a.Merged(BoundingBox{}).Min, a.Min) {
		t.Fatal("merging with an empty box must be a no-op")
	}

}

func TestBoundingBoxTransformed(t *testing.T) {

	box := NewBoundingBox(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1})

	moved := box.Transformed(mgl32.Translate3D(5, 0, 0))

	if !approxVec3(moved.Center(), mgl32.Vec3{5, 0, 0}) || !approxVec3(moved.Size(), mgl32.Vec3{2, 2, 2}) {
		t.Fatal("translated box is wrong:", moved)
	}

	// Rotating 45 degrees about Y widens the axis-aligned fit.
	rotated := box.Transformed(mgl32.HomogRotate3DY(mgl32.DegToRad(45)))
	size := rotated.Size()

	if !approx(size.Y(), 2) || size.X() < 2.5 || size.Z() < 2.5 {
		t.Fatal("rotated box does not enclose the rotated corners:", size)
	}

}

func TestBoundingSphereTransformed(t *testing.T) {

	sphere := NewBoundingSphere(mgl32.Vec3{1, 0, 0}, 1)

	matrix := mgl32.Translate3D(0, 2, 0).Mul4(mgl32.Scale3D(2, 1, 1))
	moved := sphere.Transformed(matrix)

	if !approxVec3(moved.Center, mgl32.Vec3{2, 2, 0}) {
		t.Fatal("transformed sphere center is wrong:", moved.Center)
	}

	// Non-uniform scale grows the radius by the largest axis factor so the
	// sphere stays conservative.
	if !approx(moved.Radius, 2) {
		t.Fatal("transformed sphere radius is wrong:", moved.Radius)
	}

}

func TestBoundingSphereContains(t *testing.T) {

	sphere := NewBoundingSphere(mgl32.Vec3{0, 0, 0}, 2)

	if !sphere.Contains(mgl32.Vec3{1, 1, 0}) || sphere.Contains(mgl32.Vec3{2, 2, 0}) {
		t.Fatal("sphere containment is wrong")
	}

	if !NewBoundingSphere(mgl32.Vec3{}, 0).IsEmpty() {
		t.Fatal("a zero-radius sphere must be empty")
	}

}

func TestMeshBounds(t *testing.T) {

	cube := NewCubeMesh("cube", 4, 2, 6)
	box := cube.BoundingBox()

	if !approxVec3(box.Min, mgl32.Vec3{-2, -1, -3}) || !approxVec3(box.Max, mgl32.Vec3{2, 1, 3}) {
		t.Fatal("cube mesh bounds are wrong:", box)
	}

	sphere := NewSphereMesh("ball", 2, 8, 16)

	if !approxVec3(sphere.BoundingSphere().Center, mgl32.Vec3{}) {
		t.Fatal("sphere mesh is not centered")
	}

	if r := sphere.BoundingSphere().Radius; r < 1.9 || r > 2.01 {
		t.Fatal("sphere mesh radius is wrong:", r)
	}

	if NewMesh("empty").VertexCount() != 0 || !NewMesh("empty").BoundingBox().IsEmpty() {
		t.Fatal("an empty mesh must have empty bounds")
	}

}
