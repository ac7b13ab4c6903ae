package geom

import "github.com/akmonengine/navmesh/vec3"

// edgePlanes carries a triangle's three inward half-plane normals: each edge
// tangent crossed with the triangle normal, negated, gives the half-plane a
// contained point must be above.
type edgePlanes struct {
	nab, nbc, nca vec3.Vec3
}

func triangleEdgePlanes(a, b, c vec3.Vec3) (vec3.Vec3, edgePlanes) {
	tab := b.Sub(a).Normalize()
	tbc := c.Sub(b).Normalize()
	tca := a.Sub(c).Normalize()
	n := tab.Cross(tbc).Normalize()
	return n, edgePlanes{
		nab: tab.Cross(n),
		nbc: tbc.Cross(n),
		nca: tca.Cross(n),
	}
}

func (e edgePlanes) contains(p, a, b, c vec3.Vec3) bool {
	return IsAbovePlane(p, a, e.nab.Neg()) &&
		IsAbovePlane(p, b, e.nbc.Neg()) &&
		IsAbovePlane(p, c, e.nca.Neg())
}

// RaycastTriangle intersects the segment [from,to] with the triangle (a,b,c).
// The segment is first cast against the triangle's plane, then the contact
// is kept only when it lies inside all three inward edge half-planes.
func RaycastTriangle(from, to, a, b, c vec3.Vec3) (vec3.Vec3, bool) {
	n, planes := triangleEdgePlanes(a, b, c)
	contact, ok := RaycastPlane(from, to, a, n)
	if !ok {
		return vec3.Vec3{}, false
	}
	if !planes.contains(contact, a, b, c) {
		return vec3.Vec3{}, false
	}
	return contact, true
}

// LineCrossesTriangle reports whether either endpoint of the segment lies
// inside the triangle's three inward half-planes. This is deliberately a
// heuristic gate, not a rigorous segment-vs-perimeter test: a segment whose
// endpoints are both outside is rejected even when it crosses the triangle.
// Mesh-stitching behavior is tuned to this gate; keep it as is.
func LineCrossesTriangle(from, to, a, b, c vec3.Vec3) bool {
	_, planes := triangleEdgePlanes(a, b, c)
	return planes.contains(from, a, b, c) || planes.contains(to, a, b, c)
}
