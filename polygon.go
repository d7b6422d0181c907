package stage

// Polygon3D walks the edges of the closed polygon pts in the z = 0 plane,
// calling visit for every voxel on every edge. Edge i runs from pts[i] to
// pts[(i+1)%len(pts)], so the closing edge back to pts[0] is included.
// Vertex coordinates are truncated toward zero.
//
// Each edge is walked with Line3D, so shared vertices are visited once per
// edge that starts there. Polygon3D returns true as soon as any edge
// reports a hit and false once every edge has been walked. An empty
// polygon visits nothing.
func Polygon3D(pts []Point, visit VoxelVisitor) bool {
	n := len(pts)
	for i := 0; i < n; i++ {
		x, y := int32(pts[i].X), int32(pts[i].Y)
		next := pts[(i+1)%n]

		if Line3D(x, y, 0, int32(next.X)-x, int32(next.Y)-y, 0, visit) {
			return true
		}
	}
	return false
}
