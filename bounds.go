package grove

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// BoundingBox is an axis-aligned box. The zero value is the empty box.
type BoundingBox struct {
	Min, Max mgl32.Vec3
}

// NewBoundingBox returns a bounding box spanning the given corners.
func NewBoundingBox(min, max mgl32.Vec3) BoundingBox {
	return BoundingBox{Min: min, Max: max}
}

// BoundingBoxFromPoints returns the smallest box containing all the given
// points. With no points, the empty box is returned.
func BoundingBoxFromPoints(points ...mgl32.Vec3) BoundingBox {
	if len(points) == 0 {
		return BoundingBox{}
	}
	box := BoundingBox{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box = box.ExpandedToInclude(p)
	}
	return box
}

// IsEmpty returns true for a degenerate box enclosing no volume.
func (box BoundingBox) IsEmpty() bool {
	return box.Min == box.Max
}

// Center returns the center point of the box.
func (box BoundingBox) Center() mgl32.Vec3 {
	return box.Min.Add(box.Max).Mul(0.5)
}

// Size returns the box's extents along each axis.
func (box BoundingBox) Size() mgl32.Vec3 {
	return box.Max.Sub(box.Min)
}

// ExpandedToInclude returns a copy of the box grown to contain the point.
func (box BoundingBox) ExpandedToInclude(point mgl32.Vec3) BoundingBox {
	for i := 0; i < 3; i++ {
		if point[i] < box.Min[i] {
			box.Min[i] = point[i]
		}
		if point[i] > box.Max[i] {
			box.Max[i] = point[i]
		}
	}
	return box
}

// Merged returns the smallest box containing both boxes. Merging with an
// empty box returns the other box unchanged.
func (box BoundingBox) Merged(other BoundingBox) BoundingBox {
	if box.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return box
	}
	return box.ExpandedToInclude(other.Min).ExpandedToInclude(other.Max)
}

// Contains returns true if the point lies inside the box.
func (box BoundingBox) Contains(point mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if point[i] < box.Min[i] || point[i] > box.Max[i] {
			return false
		}
	}
	return true
}

// Transformed returns the axis-aligned box containing this box after
// transforming its eight corners by the given matrix. Transforming the empty
// box yields the empty box.
func (box BoundingBox) Transformed(matrix mgl32.Mat4) BoundingBox {
	if box.IsEmpty() {
		return BoundingBox{}
	}
	corners := [8]mgl32.Vec3{
		{box.Min[0], box.Min[1], box.Min[2]},
		{box.Max[0], box.Min[1], box.Min[2]},
		{box.Min[0], box.Max[1], box.Min[2]},
		{box.Max[0], box.Max[1], box.Min[2]},
		{box.Min[0], box.Min[1], box.Max[2]},
		{box.Max[0], box.Min[1], box.Max[2]},
		{box.Min[0], box.Max[1], box.Max[2]},
		{box.Max[0], box.Max[1], box.Max[2]},
	}
	first := matrix.Mul4x1(corners[0].Vec4(1)).Vec3()
	out := BoundingBox{Min: first, Max: first}
	for _, corner := range corners[1:] {
		out = out.ExpandedToInclude(matrix.Mul4x1(corner.Vec4(1)).Vec3())
	}
	return out
}

// BoundingSphere is a sphere volume. The zero value is the empty sphere.
type BoundingSphere struct {
	Center mgl32.Vec3
	Radius float32
}

// NewBoundingSphere returns a bounding sphere with the given center and
// radius.
func NewBoundingSphere(center mgl32.Vec3, radius float32) BoundingSphere {
	return BoundingSphere{Center: center, Radius: radius}
}

// IsEmpty returns true for a degenerate sphere enclosing no volume.
func (sphere BoundingSphere) IsEmpty() bool {
	return sphere.Radius <= 0
}

// Contains returns true if the point lies inside the sphere.
func (sphere BoundingSphere) Contains(point mgl32.Vec3) bool {
	return point.Sub(sphere.Center).Len() <= sphere.Radius
}

// Transformed returns the sphere after transforming its center by the matrix
// and scaling its radius by the matrix's largest axis scale, so the result
// still encloses the transformed volume under non-uniform scaling.
func (sphere BoundingSphere) Transformed(matrix mgl32.Mat4) BoundingSphere {
	if sphere.IsEmpty() {
		return BoundingSphere{}
	}
	return BoundingSphere{
		Center: matrix.Mul4x1(sphere.Center.Vec4(1)).Vec3(),
		Radius: sphere.Radius * maxAxisScale(matrix),
	}
}

func maxAxisScale(matrix mgl32.Mat4) float32 {
	sx := matrix.Col(0).Vec3().Len()
	sy := matrix.Col(1).Vec3().Len()
	sz := matrix.Col(2).Vec3().Len()
	return math32.Max(sx, math32.Max(sy, sz))
}
