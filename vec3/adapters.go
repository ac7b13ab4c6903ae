package vec3

import "github.com/go-gl/mathgl/mgl64"

// The adapter surface below is what external spatial-indexing and
// triangulation libraries bind against: a fixed dimensionality, indexed
// component access, and a splat constructor. Serialization goes through the
// JSON struct tags on Vec3 itself.

// Dimensions returns the number of components, always 3.
func (Vec3) Dimensions() int {
	return 3
}

// Component returns the component at index 0, 1 or 2. Any other index is a
// caller bug and panics.
func (v Vec3) Component(index int) float64 {
	switch index {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic("vec3: component index out of range")
}

// SetComponent writes the component at index 0, 1 or 2. Any other index is a
// caller bug and panics.
func (v *Vec3) SetComponent(index int, value float64) {
	switch index {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		panic("vec3: component index out of range")
	}
}

// Splat builds a vector with all three components set to value.
func Splat(value float64) Vec3 {
	return Vec3{X: value, Y: value, Z: value}
}

// Mgl converts to the mathgl vector type for interop with mgl64-based
// engines and tooling.
func (v Vec3) Mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// FromMgl converts from the mathgl vector type.
func FromMgl(m mgl64.Vec3) Vec3 {
	return Vec3{X: m.X(), Y: m.Y(), Z: m.Z()}
}
