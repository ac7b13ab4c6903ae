// Package geom provides the plane, line and triangle predicates used to cut
// and stitch navmesh cells. Planes are passed implicitly as an (origin,
// normal) pair of vectors; distance predicates expect the normal to be unit
// length. Every predicate that can fail to produce a meaningful answer
// (parallel ray, degenerate triangle, out-of-segment hit) reports the miss
// through its ok result instead of returning an error: absence of an
// intersection is an ordinary outcome, not a failure.
package geom

import (
	"math"

	"github.com/akmonengine/navmesh/vec3"
)

// DistanceToPlane returns the signed distance from p to the plane
// (origin, normal). normal must be unit length for the result to be metric.
func DistanceToPlane(p, origin, normal vec3.Vec3) float64 {
	return normal.Dot(p.Sub(origin))
}

// IsAbovePlane reports whether p lies on the normal side of the plane.
// Points within ZeroThreshold of the plane count as above, so boundary
// points on triangle edges are not classified as outside during containment
// tests.
func IsAbovePlane(p, origin, normal vec3.Vec3) bool {
	return DistanceToPlane(p, origin, normal) > -vec3.ZeroThreshold
}

// ProjectOnPlane returns the orthogonal projection of p onto the plane.
// The supplied normal is normalized internally.
func ProjectOnPlane(p, origin, normal vec3.Vec3) vec3.Vec3 {
	v := p.Sub(origin)
	n := normal.Normalize()
	dot := v.Dot(n)
	return p.Sub(normal.MulScalar(dot))
}

// RaycastPlane intersects the segment [from,to] with the infinite plane
// (origin, normal). It misses when the segment direction is near-parallel to
// the plane or when the intersection falls outside the segment.
func RaycastPlane(from, to, origin, normal vec3.Vec3) (vec3.Vec3, bool) {
	dir := to.Sub(from).Normalize()
	denom := normal.Dot(dir)
	if math.Abs(denom) > vec3.ZeroThreshold {
		t := origin.Sub(from).Dot(normal) / denom
		if t >= 0 && t <= to.Sub(from).Magnitude() {
			return from.Add(dir.MulScalar(t)), true
		}
	}
	return vec3.Vec3{}, false
}

// PlanesIntersection computes the line where the planes (p1,n1) and (p2,n2)
// meet, as a point on the line and the line's unit direction n1 x n2.
// Near-parallel planes miss. The point is solved in the coordinate plane
// matching the dominant component of the cross product, so the division
// never picks a near-zero coefficient.
func PlanesIntersection(p1, n1, p2, n2 vec3.Vec3) (vec3.Vec3, vec3.Vec3, bool) {
	u := n1.Cross(n2)
	if u.SqrMagnitude() < vec3.ZeroThreshold {
		return vec3.Vec3{}, vec3.Vec3{}, false
	}
	a := u.Abs()
	d1 := -n1.Dot(p1)
	d2 := -n2.Dot(p2)
	var point vec3.Vec3
	if a.X > a.Y {
		if a.X > a.Z {
			point = vec3.New(0, (d2*n1.Z-d1*n2.Z)/u.X, (d1*n2.Y-d2*n1.Y)/u.X)
		} else {
			point = vec3.New((d2*n1.Y-d1*n2.Y)/u.Z, (d1*n2.X-d2*n1.X)/u.Z, 0)
		}
	} else if a.Y > a.Z {
		point = vec3.New((d1*n2.Z-d2*n1.Z)/u.Y, 0, (d2*n1.X-d1*n2.X)/u.Y)
	} else {
		point = vec3.New((d2*n1.Y-d1*n2.Y)/u.Z, (d1*n2.X-d2*n1.X)/u.Z, 0)
	}
	return point, u.Normalize(), true
}
