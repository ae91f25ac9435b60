package grove

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh holds geometry in local space. The scene-graph core only consumes the
// derived bounding volumes; vertex data is kept so renderers layered on top
// can read it back.
type Mesh struct {
	name     string
	vertices []mgl32.Vec3

	box    BoundingBox
	sphere BoundingSphere
}

// NewMesh creates a mesh from the given local-space vertex positions and
// computes its bounding volumes once, up front.
func NewMesh(name string, vertices ...mgl32.Vec3) *Mesh {
	mesh := &Mesh{
		name:     name,
		vertices: vertices,
	}
	mesh.updateBounds()
	return mesh
}

func (mesh *Mesh) updateBounds() {
	mesh.box = BoundingBoxFromPoints(mesh.vertices...)
	center := mesh.box.Center()
	radius := float32(0)
	for _, v := range mesh.vertices {
		if d := v.Sub(center).Len(); d > radius {
			radius = d
		}
	}
	mesh.sphere = BoundingSphere{Center: center, Radius: radius}
}

// Name returns the mesh's name.
func (mesh *Mesh) Name() string {
	return mesh.name
}

// VertexCount returns the number of vertices in the mesh.
func (mesh *Mesh) VertexCount() int {
	return len(mesh.vertices)
}

// Vertices returns a copy of the mesh's local-space vertex positions.
func (mesh *Mesh) Vertices() []mgl32.Vec3 {
	return append([]mgl32.Vec3{}, mesh.vertices...)
}

// BoundingBox returns the mesh's local-space bounding box.
func (mesh *Mesh) BoundingBox() BoundingBox {
	return mesh.box
}

// BoundingSphere returns the mesh's local-space bounding sphere.
func (mesh *Mesh) BoundingSphere() BoundingSphere {
	return mesh.sphere
}

// NewCubeMesh creates a box-shaped mesh centered on the origin with the given
// extents.
func NewCubeMesh(name string, width, height, depth float32) *Mesh {
	w, h, d := width/2, height/2, depth/2
	return NewMesh(name,
		mgl32.Vec3{-w, -h, -d},
		mgl32.Vec3{w, -h, -d},
		mgl32.Vec3{-w, h, -d},
		mgl32.Vec3{w, h, -d},
		mgl32.Vec3{-w, -h, d},
		mgl32.Vec3{w, -h, d},
		mgl32.Vec3{-w, h, d},
		mgl32.Vec3{w, h, d},
	)
}

// NewSphereMesh creates a sphere-shaped mesh centered on the origin, sampled
// over rings latitude bands and segments longitude steps.
func NewSphereMesh(name string, radius float32, rings, segments int) *Mesh {
	if rings < 2 {
		rings = 2
	}
	if segments < 3 {
		segments = 3
	}
	vertices := make([]mgl32.Vec3, 0, (rings+1)*segments)
	for ring := 0; ring <= rings; ring++ {
		phi := math32.Pi * float32(ring) / float32(rings)
		y := radius * math32.Cos(phi)
		r := radius * math32.Sin(phi)
		for seg := 0; seg < segments; seg++ {
			theta := 2 * math32.Pi * float32(seg) / float32(segments)
			vertices = append(vertices, mgl32.Vec3{
				r * math32.Cos(theta),
				y,
				r * math32.Sin(theta),
			})
		}
	}
	return NewMesh(name, vertices...)
}
