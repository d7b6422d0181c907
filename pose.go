package stage

import (
	"fmt"
	"math"
)

// Pose is a rigid placement in a parent frame: a position and a heading A
// in radians. Poses are composed with Compose or PoseSum, never summed
// field by field.
type Pose struct {
	X, Y, Z float64
	A       float64
}

// Size is the extent of an object along each axis.
type Size struct {
	X, Y, Z float64
}

// Geom pairs the pose of an object's body in its own frame with its size.
type Geom struct {
	Pose Pose
	Size Size
}

// Velocity is a rate of change of a Pose: linear X, Y, Z and angular A
// (radians per second).
type Velocity struct {
	X, Y, Z float64
	A       float64
}

// NormalizeAngle maps a into (-π, π]. Angles already in range are returned
// unchanged.
func NormalizeAngle(a float64) float64 {
	if a > -math.Pi && a <= math.Pi {
		return a
	}
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// PoseSum sets result to the pose of child expressed in the frame that
// parent lives in. result may alias parent or child.
func PoseSum(result, parent, child *Pose) {
	*result = parent.Compose(*child)
}

// Compose returns the pose of child, given relative to p, expressed in the
// frame p lives in: child's offset is rotated by p.A and translated by p.
// Z adds directly and the heading is normalized.
func (p Pose) Compose(child Pose) Pose {
	sin, cos := math.Sincos(p.A)
	return Pose{
		X: p.X + child.X*cos - child.Y*sin,
		Y: p.Y + child.X*sin + child.Y*cos,
		Z: p.Z + child.Z,
		A: NormalizeAngle(p.A + child.A),
	}
}

// String implements fmt.Stringer.
func (p Pose) String() string {
	return fmt.Sprintf("pose [x:%.3f y:%.3f a:%.3f]", p.X, p.Y, p.A)
}

// String implements fmt.Stringer.
func (g Geom) String() string {
	return fmt.Sprintf("geom pose: (%.2f,%.2f,%.2f) size: [%.2f,%.2f]",
		g.Pose.X, g.Pose.Y, g.Pose.A, g.Size.X, g.Size.Y)
}

// String implements fmt.Stringer.
func (v Velocity) String() string {
	return fmt.Sprintf("velocity [x:%.3f y:%.3f a:%.3f]", v.X, v.Y, v.A)
}

// Constrain limits val to [minval, maxval].
func Constrain(val, minval, maxval float64) float64 {
	if val < minval {
		return minval
	}
	if val > maxval {
		return maxval
	}
	return val
}
