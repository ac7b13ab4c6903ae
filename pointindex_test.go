package navmesh

import (
	"testing"

	"github.com/akmonengine/navmesh/vec3"
)

func TestPointIndexNearest(t *testing.T) {
	index := NewPointIndex()

	points := []vec3.Vec3{
		vec3.New(0, 0, 0),
		vec3.New(1, 0, 0),
		vec3.New(0, 1, 0),
		vec3.New(5, 5, 5),
	}
	for _, p := range points {
		if err := index.Insert(p); err != nil {
			t.Fatalf("insert %+v: %v", p, err)
		}
	}

	if index.Size() != len(points) {
		t.Fatalf("Size = %d, expected %d", index.Size(), len(points))
	}

	tests := []struct {
		name     string
		query    vec3.Vec3
		expected vec3.Vec3
	}{
		{"near_origin", vec3.New(0.1, 0.1, 0), vec3.New(0, 0, 0)},
		{"near_unit_x", vec3.New(1.2, 0.1, 0), vec3.New(1, 0, 0)},
		{"near_far_corner", vec3.New(4, 4, 4), vec3.New(5, 5, 5)},
		{"exact_match", vec3.New(0, 1, 0), vec3.New(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := index.Nearest(tt.query)
			if !ok {
				t.Fatal("expected a nearest point")
			}
			if got != tt.expected {
				t.Errorf("Nearest = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestPointIndexNearestK(t *testing.T) {
	index := NewPointIndex()
	for _, p := range []vec3.Vec3{
		vec3.New(0, 0, 0),
		vec3.New(1, 0, 0),
		vec3.New(10, 0, 0),
	} {
		if err := index.Insert(p); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	got := index.NearestK(vec3.New(0.2, 0, 0), 2)
	if len(got) != 2 {
		t.Fatalf("NearestK returned %d points, expected 2", len(got))
	}
	if got[0] != vec3.New(0, 0, 0) || got[1] != vec3.New(1, 0, 0) {
		t.Errorf("NearestK = %+v, expected the two close points nearest first", got)
	}
}

func TestPointIndexEmpty(t *testing.T) {
	index := NewPointIndex()
	if _, ok := index.Nearest(vec3.New(1, 2, 3)); ok {
		t.Error("empty index should report no nearest point")
	}
	if index.Size() != 0 {
		t.Errorf("Size = %d, expected 0", index.Size())
	}
}

func TestPointIndexDelete(t *testing.T) {
	index := NewPointIndex()
	p := vec3.New(1, 2, 3)
	if err := index.Insert(p); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := index.Insert(vec3.New(4, 5, 6)); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if !index.Delete(p) {
		t.Fatal("expected Delete to remove the stored point")
	}
	if index.Size() != 1 {
		t.Errorf("Size after delete = %d, expected 1", index.Size())
	}
	if index.Delete(p) {
		t.Error("second Delete of the same point should report false")
	}
	if index.Delete(vec3.New(9, 9, 9)) {
		t.Error("Delete of an unknown point should report false")
	}
}
