package stage

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p, q := Pt(3, 4), Pt(1, 1)
	if got := p.Add(q); got != Pt(4, 5) {
		t.Errorf("Add() = %v, want {4 5}", got)
	}
	if got := p.Sub(q); got != Pt(2, 3) {
		t.Errorf("Sub() = %v, want {2 3}", got)
	}
	if got := p.Distance(Point{}); got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
}

func TestPointRotate(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  Point
	}{
		{"zero", 0, Pt(1, 0)},
		{"quarter turn", math.Pi / 2, Pt(0, 1)},
		{"half turn", math.Pi, Pt(-1, 0)},
		{"negative quarter", -math.Pi / 2, Pt(0, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pt(1, 0).Rotate(tt.angle)
			if math.Abs(got.X-tt.want.X) > 1e-12 || math.Abs(got.Y-tt.want.Y) > 1e-12 {
				t.Errorf("Rotate(%v) = %v, want %v", tt.angle, got, tt.want)
			}
		})
	}
}

func TestUnitSquarePoints(t *testing.T) {
	pts := UnitSquarePoints()
	if len(pts) != 4 {
		t.Fatalf("len = %d, want 4", len(pts))
	}
	pts[0] = Pt(9, 9)
	if UnitSquarePoints()[0] != (Point{}) {
		t.Error("UnitSquarePoints() shares its backing array between calls")
	}
}
