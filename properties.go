package grove

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Properties is an unordered set of property names to values, a means of
// identifying nodes or carrying game data on them.
type Properties struct {
	props map[string]*Property
}

// NewProperties returns a new, empty Properties object.
func NewProperties() *Properties {
	return &Properties{props: map[string]*Property{}}
}

// Clone returns a copy of the Properties object.
func (props *Properties) Clone() *Properties {
	out := NewProperties()
	for k, v := range props.props {
		out.Get(k).Set(v.Value)
	}
	return out
}

// Clear removes all properties.
func (props *Properties) Clear() {
	props.props = map[string]*Property{}
}

// Remove removes the named property.
func (props *Properties) Remove(name string) {
	delete(props.props, name)
}

// Has returns true if properties exist by all of the names given.
func (props *Properties) Has(names ...string) bool {
	for _, name := range names {
		if _, exists := props.props[name]; !exists {
			return false
		}
	}
	return true
}

// Get returns the property by the given name, creating an empty one if it
// does not exist yet.
func (props *Properties) Get(name string) *Property {
	if _, ok := props.props[name]; !ok {
		props.props[name] = &Property{}
	}
	return props.props[name]
}

// Count returns the number of properties.
func (props *Properties) Count() int {
	return len(props.props)
}

// Property is a single named value on a Properties object.
type Property struct {
	Value interface{}
}

// Set sets the property's value.
func (prop *Property) Set(value interface{}) {
	prop.Value = value
}

// IsBool returns true if the property holds a bool.
func (prop *Property) IsBool() bool {
	_, ok := prop.Value.(bool)
	return ok
}

// AsBool returns the property's value as a bool. It does not check that the
// property holds a bool first.
func (prop *Property) AsBool() bool {
	return prop.Value.(bool)
}

// IsString returns true if the property holds a string.
func (prop *Property) IsString() bool {
	_, ok := prop.Value.(string)
	return ok
}

// AsString returns the property's value as a string. It does not check that
// the property holds a string first.
func (prop *Property) AsString() string {
	return prop.Value.(string)
}

// IsFloat64 returns true if the property holds a float64.
func (prop *Property) IsFloat64() bool {
	_, ok := prop.Value.(float64)
	return ok
}

// AsFloat64 returns the property's value as a float64. It does not check that
// the property holds a float64 first.
func (prop *Property) AsFloat64() float64 {
	return prop.Value.(float64)
}

// IsVec3 returns true if the property holds an mgl32.Vec3 or a three-element
// numeric slice, the shape YAML decoding produces.
func (prop *Property) IsVec3() bool {
	if _, ok := prop.Value.(mgl32.Vec3); ok {
		return true
	}
	slice, ok := prop.Value.([]interface{})
	if !ok || len(slice) != 3 {
		return false
	}
	for _, v := range slice {
		switch v.(type) {
		case float64, int:
		default:
			return false
		}
	}
	return true
}

// AsVec3 returns the property's value as an mgl32.Vec3, converting a numeric
// slice if necessary. It does not check the shape first.
func (prop *Property) AsVec3() mgl32.Vec3 {
	if vec, ok := prop.Value.(mgl32.Vec3); ok {
		return vec
	}
	slice := prop.Value.([]interface{})
	var vec mgl32.Vec3
	for i, v := range slice {
		switch n := v.(type) {
		case float64:
			vec[i] = float32(n)
		case int:
			vec[i] = float32(n)
		}
	}
	return vec
}
