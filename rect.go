package stage

import (
	"errors"
	"math"
)

// Errors returned by NormalizeRects.
var (
	// ErrNoRects is returned when normalizing an empty rectangle set.
	ErrNoRects = errors.New("stage: empty rectangle set")

	// ErrDegenerateBounds is returned when the bounding box of a rectangle
	// set has zero or non-finite width or height.
	ErrDegenerateBounds = errors.New("stage: degenerate rectangle bounds")
)

// RotRect is a rectangle that is axis-aligned in its own frame, placed at
// Pose. Only Pose.X, Pose.Y, Pose.A, Size.X and Size.Y are used; sizes are
// never negative.
type RotRect struct {
	Pose Pose
	Size Size
}

// Corners returns the four corners of r in the parent frame, starting at
// the pose origin and turning counter-clockwise.
func (r RotRect) Corners() [4]Point {
	var c [4]Point
	for i, p := range UnitSquarePoints() {
		c[i] = r.Pose.TransformPoint(Pt(p.X*r.Size.X, p.Y*r.Size.Y))
	}
	return c
}

// RectBounds returns the bounding box over the origin (Pose) and far corner
// (Pose + Size) of every rectangle. Headings are ignored. ok is false for
// an empty set.
func RectBounds(rects []RotRect) (minPt, maxPt Point, ok bool) {
	if len(rects) == 0 {
		return Point{}, Point{}, false
	}

	minPt = Pt(math.Inf(1), math.Inf(1))
	maxPt = Pt(math.Inf(-1), math.Inf(-1))
	for _, r := range rects {
		for _, p := range [2]Point{
			{r.Pose.X, r.Pose.Y},
			{r.Pose.X + r.Size.X, r.Pose.Y + r.Size.Y},
		} {
			minPt.X = math.Min(minPt.X, p.X)
			minPt.Y = math.Min(minPt.Y, p.Y)
			maxPt.X = math.Max(maxPt.X, p.X)
			maxPt.Y = math.Max(maxPt.Y, p.Y)
		}
	}
	return minPt, maxPt, true
}

// NormalizeRects rescales and translates rects in place so that their
// bounding box becomes the unit square [0,1]x[0,1]. X and Y are scaled
// independently, so the aspect ratio is not preserved.
//
// The input is left untouched when an error is returned: ErrNoRects for an
// empty set and ErrDegenerateBounds when the bounding box has no area.
func NormalizeRects(rects []RotRect) error {
	minPt, maxPt, ok := RectBounds(rects)
	if !ok {
		return ErrNoRects
	}

	scaleX := maxPt.X - minPt.X
	scaleY := maxPt.Y - minPt.Y
	if !(scaleX > 0) || !(scaleY > 0) || math.IsInf(scaleX, 0) || math.IsInf(scaleY, 0) {
		return ErrDegenerateBounds
	}

	for i := range rects {
		r := &rects[i]
		r.Pose.X = (r.Pose.X - minPt.X) / scaleX
		r.Pose.Y = (r.Pose.Y - minPt.Y) / scaleY
		r.Size.X /= scaleX
		r.Size.Y /= scaleY
	}
	return nil
}
