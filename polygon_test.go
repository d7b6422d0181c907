package stage

import (
	"slices"
	"testing"
)

func TestPolygon3DSquareClosure(t *testing.T) {
	square := []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}

	var got []Voxel
	hit := Polygon3D(square, func(x, y, z int32) bool {
		got = append(got, Voxel{x, y, z})
		return false
	})
	if hit {
		t.Error("Polygon3D() = true, want false")
	}

	want := []Voxel{
		{0, 0, 0}, {1, 0, 0}, // (0,0) -> (2,0)
		{2, 0, 0}, {2, 1, 0}, // (2,0) -> (2,2)
		{2, 2, 0}, {1, 2, 0}, // (2,2) -> (0,2)
		{0, 2, 0}, {0, 1, 0}, // (0,2) -> (0,0), the closing edge
	}
	if !slices.Equal(got, want) {
		t.Errorf("Polygon3D() visited %v, want %v", got, want)
	}
}

func TestPolygon3DTruncatesVertices(t *testing.T) {
	var got []Voxel
	Polygon3D([]Point{{0.9, 0.2}, {3.7, -0.6}}, func(x, y, z int32) bool {
		got = append(got, Voxel{x, y, z})
		return false
	})

	// Both edges run between (0,0) and (3,0).
	want := []Voxel{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0}, {2, 0, 0}, {1, 0, 0}}
	if !slices.Equal(got, want) {
		t.Errorf("Polygon3D() visited %v, want %v", got, want)
	}
}

func TestPolygon3DStopsOnHit(t *testing.T) {
	calls := 0
	hit := Polygon3D(UnitSquarePoints(), func(x, y, z int32) bool {
		calls++
		return x == 1 && y == 1
	})
	if !hit {
		t.Error("Polygon3D() = false, want true")
	}
	// One voxel per unit edge: (0,0), (1,0), then (1,1) starts the third edge.
	if calls != 3 {
		t.Errorf("visitor called %d times, want 3", calls)
	}
}

func TestPolygon3DDegenerate(t *testing.T) {
	calls := 0
	visit := func(x, y, z int32) bool {
		calls++
		return false
	}

	if Polygon3D(nil, visit) {
		t.Error("Polygon3D(nil) = true, want false")
	}
	// A single vertex is a zero-length edge back to itself.
	if Polygon3D([]Point{{5, 5}}, visit) {
		t.Error("Polygon3D(single point) = true, want false")
	}
	if calls != 0 {
		t.Errorf("degenerate polygons made %d visits, want 0", calls)
	}
}
