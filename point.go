package stage

import "math"

// Point is a 2D vertex or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rotate returns the point rotated by angle radians around the origin.
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// TransformPoint maps pt from the frame of p into the frame p lives in.
func (p Pose) TransformPoint(pt Point) Point {
	return pt.Rotate(p.A).Add(Point{X: p.X, Y: p.Y})
}

// UnitSquarePoints returns the corners of the unit square, counter-clockwise
// from the origin.
func UnitSquarePoints() []Point {
	return []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}
