// Package stage provides the spatial-geometry kernel of a 2D/3D robot
// simulator.
//
// # Overview
//
// The kernel converts between raster images of occupied space and compact
// rectangle sets, walks integer voxel grids along arbitrary vectors for ray
// casting and rasterization, composes rigid-body poses, and encodes colors.
// World builders, sensor models and renderers are built on top of it.
//
// # Quick Start
//
//	import "github.com/gogpu/stage"
//
//	// Turn an occupancy map into obstacle rectangles in the unit square.
//	set, err := stage.RectsFromImageFile("cave.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := stage.NormalizeRects(set.Rects); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Cast a ray through a voxel grid.
//	hit := stage.Line3D(0, 0, 0, 10, 4, 0, func(x, y, z int32) bool {
//	    return grid.Occupied(x, y, z)
//	})
//
// # Coordinate System
//
// Rectangles produced from images use conventional axes: the origin is the
// bottom-left corner of the image and Y increases upward. Headings are in
// radians, counter-clockwise, normalized into (-π, π].
//
// # Concurrency
//
// Traversal, pose and color functions are pure. The color name table is
// loaded once under a sync.Once and is read-only afterwards. Rectangulation
// consumes its PixelSource and must not share it with other goroutines.
package stage
