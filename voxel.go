package stage

import "iter"

// VoxelVisitor is called for each voxel on a traversal. Returning true
// reports a hit and stops the traversal. Visitors carry their own state in
// the closure and must not assume a fixed number of calls.
type VoxelVisitor func(x, y, z int32) bool

// Voxel is an integer grid cell.
type Voxel struct {
	X, Y, Z int32
}

// Line3D visits the voxels on the discrete line from (x, y, z) along the
// displacement (dx, dy, dz), calling visit once per voxel in order and
// stopping at the first voxel for which visit returns true.
//
// Exactly one axis advances by one unit per step, so the walk makes
// |dx|+|dy|+|dz| visits: the start voxel and every intermediate voxel, but
// not the final voxel at (x+dx, y+dy, z+dz). A zero displacement makes no
// visits at all, not even the start voxel.
//
// Line3D returns true if visit reported a hit and false if the whole line
// was walked. The walk is the integer 3D DDA of Cohen and Kaufman
// (Graphics Gems IV).
func Line3D(x, y, z, dx, dy, dz int32, visit VoxelVisitor) bool {
	sx, sy, sz := sign32(dx), sign32(dy), sign32(dz)
	ax, ay, az := abs32(dx), abs32(dy), abs32(dz)
	bx, by, bz := 2*ax, 2*ay, 2*az
	exy, exz, ezy := ay-ax, az-ax, ay-az

	for n := ax + ay + az; n > 0; n-- {
		if visit(x, y, z) {
			return true
		}

		if exy < 0 {
			if exz < 0 {
				x += sx
				exy += by
				exz += bz
			} else {
				z += sz
				exz -= bx
				ezy += by
			}
		} else {
			if ezy < 0 {
				z += sz
				exz -= bx
				ezy += by
			} else {
				y += sy
				exy -= bx
				ezy -= bz
			}
		}
	}

	return false
}

// Voxels returns an iterator over the voxels Line3D would visit.
// Breaking out of the range loop ends the walk.
func Voxels(x, y, z, dx, dy, dz int32) iter.Seq[Voxel] {
	return func(yield func(Voxel) bool) {
		Line3D(x, y, z, dx, dy, dz, func(x, y, z int32) bool {
			return !yield(Voxel{X: x, Y: y, Z: z})
		})
	}
}

func sign32(v int32) int32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
