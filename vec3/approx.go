package vec3

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Approximate-equality tooling for tests. Production geometry never calls
// into this file; it relies solely on the ZeroThreshold convention.

const (
	// DefaultEpsilon is the machine epsilon for float64.
	DefaultEpsilon = 0x1p-52
	// DefaultMaxRelative is the default relative tolerance.
	DefaultMaxRelative = 0x1p-52
	// DefaultMaxUlps is the default units-in-last-place tolerance.
	DefaultMaxUlps = 4
)

// ApproxEq reports componentwise equality under the mgl64 default
// comparison convention.
func ApproxEq(a, b Vec3) bool {
	return mgl64.FloatEqual(a.X, b.X) &&
		mgl64.FloatEqual(a.Y, b.Y) &&
		mgl64.FloatEqual(a.Z, b.Z)
}

// AbsDiffEq reports componentwise equality within an absolute difference of
// epsilon.
func AbsDiffEq(a, b Vec3, epsilon float64) bool {
	return absDiffEq(a.X, b.X, epsilon) &&
		absDiffEq(a.Y, b.Y, epsilon) &&
		absDiffEq(a.Z, b.Z, epsilon)
}

// RelativeEq reports componentwise equality within epsilon absolutely or
// maxRelative relative to the larger magnitude.
func RelativeEq(a, b Vec3, epsilon, maxRelative float64) bool {
	return relativeEq(a.X, b.X, epsilon, maxRelative) &&
		relativeEq(a.Y, b.Y, epsilon, maxRelative) &&
		relativeEq(a.Z, b.Z, epsilon, maxRelative)
}

// UlpsEq reports componentwise equality within epsilon absolutely or
// maxUlps representable float64 values apart.
func UlpsEq(a, b Vec3, epsilon float64, maxUlps uint64) bool {
	return ulpsEq(a.X, b.X, epsilon, maxUlps) &&
		ulpsEq(a.Y, b.Y, epsilon, maxUlps) &&
		ulpsEq(a.Z, b.Z, epsilon, maxUlps)
}

func absDiffEq(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

func relativeEq(a, b, epsilon, maxRelative float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	diff := math.Abs(a - b)
	if diff <= epsilon {
		return true
	}
	largest := math.Max(math.Abs(a), math.Abs(b))
	return diff <= largest*maxRelative
}

func ulpsEq(a, b, epsilon float64, maxUlps uint64) bool {
	if absDiffEq(a, b, epsilon) {
		return true
	}
	if math.Signbit(a) != math.Signbit(b) {
		return false
	}
	ua := math.Float64bits(a)
	ub := math.Float64bits(b)
	if ua > ub {
		return ua-ub <= maxUlps
	}
	return ub-ua <= maxUlps
}
