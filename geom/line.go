package geom

import (
	"math"

	"github.com/akmonengine/navmesh/vec3"
)

// RaycastLine intersects the plane implied by (from, to, normal) with the
// segment (a, b), clamping the hit onto the segment. Whenever the plane cast
// hits, a point is returned, possibly at one of the segment's endpoints.
func RaycastLine(from, to, a, b, normal vec3.Vec3) (vec3.Vec3, bool) {
	p, ok := RaycastPlane(from, to, a, normal)
	if !ok {
		return vec3.Vec3{}, false
	}
	t := math.Min(math.Max(p.Project(a, b), 0), 1)
	return vec3.Unproject(a, b, t), true
}

// RaycastLineExact is RaycastLine without clamping: it misses when the true
// intersection parameter falls outside the segment (a, b).
func RaycastLineExact(from, to, a, b, normal vec3.Vec3) (vec3.Vec3, bool) {
	p, ok := RaycastPlane(from, to, a, normal)
	if !ok {
		return vec3.Vec3{}, false
	}
	t := p.Project(a, b)
	if t < 0 || t > 1 {
		return vec3.Vec3{}, false
	}
	return vec3.Unproject(a, b, t), true
}

// IsLineBetweenPoints reports whether a and b lie on strictly opposite sides
// of the line through (from, to) within the plane of the given normal.
// A point within ZeroThreshold of the dividing line counts as on neither
// side, so the check fails when either point sits exactly on the line.
func IsLineBetweenPoints(from, to, a, b, normal vec3.Vec3) bool {
	n := to.Sub(from).Cross(normal)
	sideA := side(n.Dot(a.Sub(from)))
	sideB := side(n.Dot(b.Sub(from)))
	return sideA != 0 && sideB != 0 && sideA != sideB
}

func side(v float64) int {
	if math.Abs(v) < vec3.ZeroThreshold {
		return 0
	}
	if v > 0 {
		return 1
	}
	return -1
}
