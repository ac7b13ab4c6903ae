// Package navmesh resolves how triangles of a navigation mesh intersect,
// producing the clipped intersection segment together with the identity of
// the triangle edges the segment endpoints lie on. Mesh builders use that
// edge identity to split boundaries and connect neighboring cells.
//
// The geometric primitives live in the geom and vec3 subpackages; this
// package orchestrates them.
package navmesh

import (
	"github.com/akmonengine/navmesh/geom"
	"github.com/akmonengine/navmesh/vec3"
)

// Connection identifies one edge of a triangle by its two vertex indices in
// winding order: {0,1}, {1,2} or {2,0}.
type Connection struct {
	A, B uint32
}

// IntersectionPoint is one endpoint of a triangle-triangle intersection
// segment. Edge names the first triangle's edge the point lies on, or is nil
// when the endpoint sits in the triangle's interior.
type IntersectionPoint struct {
	Point vec3.Vec3
	Edge  *Connection
}

// segment is a directed edge used by the per-edge plane casts.
type segment struct {
	from, to vec3.Vec3
}

// planeHit is the outcome of casting one edge against a plane.
type planeHit struct {
	point vec3.Vec3
	ok    bool
}

// TrianglesIntersection computes how the boundary of triangle (a2,b2,c2)
// cuts across the interior of triangle (a1,b1,c1).
//
// The result is the clipped intersection segment (begin, end), each endpoint
// annotated with the edge of triangle 1 it lies on (nil for interior
// points), plus the in-plane clip direction used for the cut. The pair is
// oriented so that dir x (end-begin) has a non-negative Z component, giving
// mesh-stitching code a canonical winding to decide which side is inside.
//
// ok is false whenever there is no clean crossing: triangle 2's boundary
// meets triangle 1's plane in anything but two distinct points, the
// candidate segment misses triangle 1's footprint, or the clipping step
// degenerates to a single point.
func TrianglesIntersection(a1, b1, c1, a2, b2, c2 vec3.Vec3) (begin, end IntersectionPoint, dir vec3.Vec3, ok bool) {
	return trianglesIntersection(a1, b1, c1, a2, b2, c2, castEdges)
}

// TrianglesIntersectionParallel is TrianglesIntersection with the three
// per-edge plane casts forked across goroutines. The casts are independent
// and their results are merged in edge order, so the output is bit-identical
// to the sequential variant.
func TrianglesIntersectionParallel(a1, b1, c1, a2, b2, c2 vec3.Vec3) (begin, end IntersectionPoint, dir vec3.Vec3, ok bool) {
	return trianglesIntersection(a1, b1, c1, a2, b2, c2, castEdgesParallel)
}

func trianglesIntersection(
	a1, b1, c1, a2, b2, c2 vec3.Vec3,
	cast func(edges [3]segment, origin, normal vec3.Vec3) []vec3.Vec3,
) (IntersectionPoint, IntersectionPoint, vec3.Vec3, bool) {
	none := IntersectionPoint{}

	tab1 := b1.Sub(a1).Normalize()
	tbc1 := c1.Sub(b1).Normalize()
	n1 := tab1.Cross(tbc1).Normalize()
	tab2 := b2.Sub(a2).Normalize()
	tbc2 := c2.Sub(b2).Normalize()
	n2 := tab2.Cross(tbc2).Normalize()

	// Step 1: cast each edge of triangle 2 against triangle 1's plane.
	edges := [3]segment{{a2, b2}, {b2, c2}, {c2, a2}}
	contacts := cast(edges, a1, n1)

	// Step 2: deduplicate contacts closer than the zero threshold. A closed
	// triangle boundary crosses a plane transversally in exactly 2 points;
	// any other count (0 misses, 1 tangential touch, 3 near-coplanar noise)
	// means there is no clean crossing.
	deduplicated := make([]vec3.Vec3, 0, len(contacts))
root:
	for i := 0; i < len(contacts); i++ {
		for j := i + 1; j < len(contacts); j++ {
			if contacts[i].Sub(contacts[j]).SqrMagnitude() < vec3.ZeroThreshold {
				continue root
			}
		}
		deduplicated = append(deduplicated, contacts[i])
	}
	if len(deduplicated) != 2 {
		return none, none, vec3.Vec3{}, false
	}
	sb := deduplicated[0]
	se := deduplicated[1]

	// Step 3: reject crossings that touch triangle 1's plane outside its
	// footprint.
	if !geom.LineCrossesTriangle(sb, se, a1, b1, c1) {
		return none, none, vec3.Vec3{}, false
	}

	// Step 4: the clip direction is triangle 2's normal flattened onto
	// triangle 1's plane. Scaling before projecting keeps the projection
	// well above the zero threshold for steep normals.
	no := geom.ProjectOnPlane(n2.MulScalar(100), a1, n1).Normalize()

	// Step 5: cut the candidate segment against triangle 1's own edges,
	// tagging each hit with the edge it came from.
	type clipPoint struct {
		point vec3.Vec3
		conn  Connection
	}
	triangleEdges := [3]struct {
		from, to vec3.Vec3
		conn     Connection
	}{
		{a1, b1, Connection{0, 1}},
		{b1, c1, Connection{1, 2}},
		{c1, a1, Connection{2, 0}},
	}
	clipped := make([]clipPoint, 0, 3)
	for _, edge := range triangleEdges {
		if p, hit := geom.RaycastLineExact(edge.from, edge.to, sb, se, no); hit {
			clipped = append(clipped, clipPoint{point: p, conn: edge.conn})
		}
	}

	// Step 6: resolve the clip points into the final segment.
	var begin, end IntersectionPoint
	switch len(clipped) {
	case 2:
		// Both endpoints are attached to edges of triangle 1.
		if clipped[1].point.Sub(clipped[0].point).SqrMagnitude() < vec3.ZeroThreshold {
			return none, none, vec3.Vec3{}, false
		}
		connBegin := clipped[0].conn
		connEnd := clipped[1].conn
		begin = IntersectionPoint{Point: clipped[0].point, Edge: &connBegin}
		end = IntersectionPoint{Point: clipped[1].point, Edge: &connEnd}
	case 1:
		// One endpoint is edge-attached; the other is whichever original
		// candidate lies farther on the interior side of the clipped edge.
		p := clipped[0].point
		conn := clipped[0].conn
		points := [3]vec3.Vec3{a1, b1, c1}
		pb := points[conn.A]
		pe := points[conn.B]
		n := pe.Sub(pb).Cross(n1).Normalize()
		db := geom.DistanceToPlane(sb, pb, n)
		de := geom.DistanceToPlane(se, pb, n)
		if db > de {
			if p.Sub(se).SqrMagnitude() < vec3.ZeroThreshold {
				return none, none, vec3.Vec3{}, false
			}
			begin = IntersectionPoint{Point: p, Edge: &conn}
			end = IntersectionPoint{Point: se}
		} else {
			if p.Sub(sb).SqrMagnitude() < vec3.ZeroThreshold {
				return none, none, vec3.Vec3{}, false
			}
			begin = IntersectionPoint{Point: sb}
			end = IntersectionPoint{Point: p, Edge: &conn}
		}
	default:
		// The candidate segment lies inside triangle 1: both endpoints stay
		// interior.
		begin = IntersectionPoint{Point: sb}
		end = IntersectionPoint{Point: se}
	}

	// Step 7: canonical winding.
	if no.Cross(end.Point.Sub(begin.Point)).Z >= 0 {
		return begin, end, no, true
	}
	return end, begin, no, true
}

// castEdges casts the three edges sequentially, collecting hits in edge
// order.
func castEdges(edges [3]segment, origin, normal vec3.Vec3) []vec3.Vec3 {
	contacts := make([]vec3.Vec3, 0, 3)
	for _, edge := range edges {
		if p, ok := geom.RaycastPlane(edge.from, edge.to, origin, normal); ok {
			contacts = append(contacts, p)
		}
	}
	return contacts
}

// castEdgesParallel forks the three casts and merges hits back in edge
// order, so scheduling never changes the result.
func castEdgesParallel(edges [3]segment, origin, normal vec3.Vec3) []vec3.Vec3 {
	hits := taskIndexed(len(edges), edges[:], func(edge segment) planeHit {
		p, ok := geom.RaycastPlane(edge.from, edge.to, origin, normal)
		return planeHit{point: p, ok: ok}
	})

	contacts := make([]vec3.Vec3, 0, 3)
	for _, hit := range hits {
		if hit.ok {
			contacts = append(contacts, hit.point)
		}
	}
	return contacts
}
