package grove

import (
	"github.com/go-gl/mathgl/mgl32"
)

// LightType distinguishes the supported light variants.
type LightType int

const (
	LightDirectional LightType = iota
	LightPoint
	LightSpot
)

// Light is a reference-counted light resource. The scene-graph core treats it
// as an opaque handle beyond attach and detach; renderers read its settings
// through the accessors.
type Light struct {
	Ref

	typ    LightType
	color  mgl32.Vec3
	energy float32

	lightRange float32 // Attenuation range; point and spot only.
	innerAngle float32 // Cone angles in radians; spot only.
	outerAngle float32

	node *Node // Non-owning; the node the light is attached to.
}

// NewDirectionalLight creates a directional light with the given color.
func NewDirectionalLight(r, g, b float32) *Light {
	return &Light{
		Ref:    newRef(nil),
		typ:    LightDirectional,
		color:  mgl32.Vec3{r, g, b},
		energy: 1,
	}
}

// NewPointLight creates a point light with the given color and attenuation
// range.
func NewPointLight(r, g, b, lightRange float32) *Light {
	return &Light{
		Ref:        newRef(nil),
		typ:        LightPoint,
		color:      mgl32.Vec3{r, g, b},
		energy:     1,
		lightRange: lightRange,
	}
}

// NewSpotLight creates a spot light with the given color, attenuation range,
// and cone angles in radians.
func NewSpotLight(r, g, b, lightRange, innerAngle, outerAngle float32) *Light {
	return &Light{
		Ref:        newRef(nil),
		typ:        LightSpot,
		color:      mgl32.Vec3{r, g, b},
		energy:     1,
		lightRange: lightRange,
		innerAngle: innerAngle,
		outerAngle: outerAngle,
	}
}

// Type returns the light's variant.
func (light *Light) Type() LightType {
	return light.typ
}

// Color returns the light's color.
func (light *Light) Color() mgl32.Vec3 {
	return light.color
}

// SetColor sets the light's color.
func (light *Light) SetColor(r, g, b float32) {
	light.color = mgl32.Vec3{r, g, b}
}

// Energy returns the light's overall energy multiplier.
func (light *Light) Energy() float32 {
	return light.energy
}

// SetEnergy sets the light's overall energy multiplier.
func (light *Light) SetEnergy(energy float32) {
	light.energy = energy
}

// Range returns the attenuation range. Meaningful for point and spot lights.
func (light *Light) Range() float32 {
	return light.lightRange
}

// SetRange sets the attenuation range.
func (light *Light) SetRange(lightRange float32) {
	light.lightRange = lightRange
}

// ConeAngles returns the inner and outer cone angles in radians. Meaningful
// for spot lights.
func (light *Light) ConeAngles() (inner, outer float32) {
	return light.innerAngle, light.outerAngle
}

// Node returns the node this light is attached to, or nil.
func (light *Light) Node() *Node {
	return light.node
}

func (light *Light) setNode(node *Node) {
	light.node = node
}
