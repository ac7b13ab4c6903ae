package navmesh

import (
	"github.com/dhconnelly/rtreego"
	"github.com/pkg/errors"

	"github.com/akmonengine/navmesh/vec3"
)

// pointEntry adapts a Vec3 to rtreego's Spatial interface. A point's bounds
// are a cube of ZeroThreshold half-extent around it, so two points the
// geometry would deduplicate also collide in the index.
type pointEntry struct {
	location vec3.Vec3
	rect     *rtreego.Rect
}

func (e *pointEntry) Bounds() *rtreego.Rect {
	return e.rect
}

// PointIndex stores mesh vertices for nearest-point queries during mesh
// construction: merging duplicate vertices and attaching intersection points
// to existing geometry.
type PointIndex struct {
	tree *rtreego.Rtree
}

func NewPointIndex() *PointIndex {
	return &PointIndex{tree: rtreego.NewTree(3, 25, 50)}
}

// toPoint builds the index coordinate through the vector's component
// adapter.
func toPoint(v vec3.Vec3) rtreego.Point {
	p := make(rtreego.Point, v.Dimensions())
	for i := range p {
		p[i] = v.Component(i)
	}
	return p
}

func pointRect(v vec3.Vec3) (*rtreego.Rect, error) {
	corner := toPoint(v.SubScalar(vec3.ZeroThreshold))
	lengths := []float64{2 * vec3.ZeroThreshold, 2 * vec3.ZeroThreshold, 2 * vec3.ZeroThreshold}
	rect, err := rtreego.NewRect(corner, lengths)
	if err != nil {
		return nil, errors.Wrapf(err, "building bounds for point %+v", v)
	}
	return rect, nil
}

// Insert adds a point to the index.
func (pi *PointIndex) Insert(v vec3.Vec3) error {
	rect, err := pointRect(v)
	if err != nil {
		return err
	}
	pi.tree.Insert(&pointEntry{location: v, rect: rect})
	return nil
}

// Nearest returns the indexed point closest to v, or false on an empty
// index.
func (pi *PointIndex) Nearest(v vec3.Vec3) (vec3.Vec3, bool) {
	obj := pi.tree.NearestNeighbor(toPoint(v))
	if obj == nil {
		return vec3.Vec3{}, false
	}
	return obj.(*pointEntry).location, true
}

// NearestK returns up to k indexed points closest to v, nearest first.
func (pi *PointIndex) NearestK(v vec3.Vec3, k int) []vec3.Vec3 {
	objs := pi.tree.NearestNeighbors(k, toPoint(v))
	out := make([]vec3.Vec3, 0, len(objs))
	for _, obj := range objs {
		if obj == nil {
			continue
		}
		out = append(out, obj.(*pointEntry).location)
	}
	return out
}

// Delete removes the indexed point matching v under the SameAs convention.
// It reports whether a point was removed.
func (pi *PointIndex) Delete(v vec3.Vec3) bool {
	rect, err := pointRect(v)
	if err != nil {
		return false
	}
	for _, obj := range pi.tree.SearchIntersect(rect) {
		entry := obj.(*pointEntry)
		if entry.location.SameAs(v) {
			return pi.tree.Delete(entry)
		}
	}
	return false
}

// Size returns the number of indexed points.
func (pi *PointIndex) Size() int {
	return pi.tree.Size()
}
