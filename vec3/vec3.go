// Package vec3 provides the 3D vector value type shared by all navmesh
// geometry code, together with the single zero threshold that governs every
// degeneracy decision in the library.
//
// A Vec3 is used both as a point in space and as a free direction or offset;
// the two meanings share the type and callers track which one applies.
// All arithmetic is plain IEEE floating point: NaN and Inf propagate
// silently, nothing is detected or rejected.
package vec3

import "math"

// ZeroThreshold is the tolerance below which squared magnitudes, dot
// products and projection parameters count as zero. Exactly one value is
// shared by every predicate in the library; changing it changes the outcome
// of all degeneracy checks in a mesh-processing run at once.
const ZeroThreshold = 1e-6

// Vec3 is a 3-component vector. Plain == is exact-bitwise; geometric code
// compares through SameAs or the approx helpers instead.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func New(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// New2D lifts a 2D point onto the z=0 plane.
func New2D(x, y float64) Vec3 {
	return Vec3{X: x, Y: y}
}

func FromArray(a [3]float64) Vec3 {
	return Vec3{X: a[0], Y: a[1], Z: a[2]}
}

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vec3) AddScalar(s float64) Vec3 {
	return Vec3{v.X + s, v.Y + s, v.Z + s}
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

func (v Vec3) SubScalar(s float64) Vec3 {
	return Vec3{v.X - s, v.Y - s, v.Z - s}
}

// Mul multiplies componentwise.
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

func (v Vec3) MulScalar(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Div divides componentwise.
func (v Vec3) Div(other Vec3) Vec3 {
	return Vec3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

func (v Vec3) DivScalar(s float64) Vec3 {
	return Vec3{v.X / s, v.Y / s, v.Z / s}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func (v Vec3) SqrMagnitude() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3) Magnitude() float64 {
	return math.Sqrt(v.SqrMagnitude())
}

// Normalize returns the unit vector pointing in v's direction, or the zero
// vector when v's magnitude is below ZeroThreshold. Degenerate directions
// therefore contribute nothing downstream instead of exploding into NaN.
func (v Vec3) Normalize() Vec3 {
	length := v.Magnitude()
	if length < ZeroThreshold {
		return Vec3{}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

func (v Vec3) Abs() Vec3 {
	return Vec3{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)}
}

func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{
		math.Min(v.X, other.X),
		math.Min(v.Y, other.Y),
		math.Min(v.Z, other.Z),
	}
}

func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{
		math.Max(v.X, other.X),
		math.Max(v.Y, other.Y),
		math.Max(v.Z, other.Z),
	}
}

// SameAs reports whether the squared distance between the two points falls
// under ZeroThreshold. This is the deduplication convention used by the
// intersection routines.
func (v Vec3) SameAs(other Vec3) bool {
	return other.Sub(v).SqrMagnitude() < ZeroThreshold
}

// Project returns the interpolation parameter t such that from + t*(to-from)
// is the closest point to v on the infinite line through from and to. The
// result is not clamped to [0,1]; callers clamp where a segment is meant.
func (v Vec3) Project(from, to Vec3) float64 {
	diff := to.Sub(from)
	return v.Sub(from).Dot(diff) / diff.SqrMagnitude()
}

// Unproject evaluates from + t*(to-from) at an arbitrary, unclamped t.
func Unproject(from, to Vec3, t float64) Vec3 {
	diff := to.Sub(from)
	return from.Add(Vec3{diff.X * t, diff.Y * t, diff.Z * t})
}
