package meshing

// Direction is one of the 6 axis-aligned directions a cube face can point.
type Direction int

const (
	DirEast  Direction = iota // +X
	DirWest                   // -X
	DirUp                     // +Y
	DirDown                   // -Y
	DirNorth                  // +Z
	DirSouth                  // -Z

	DirectionCount
)

// faceInfo describes how one face direction maps between the 2D slice plane
// and 3D grid coordinates. uAxis/vAxis span the slice, dAxis is swept.
// Having all six in one table keeps the mask build, the quad emission and
// the winding in a single place.
type faceInfo struct {
	normal [3]int
	uAxis  int
	vAxis  int
	dAxis  int
	// Positive faces sweep depth forward from 0; their opposites index the
	// depth as extent-1-d so both share the same loop while sweeping
	// outward.
	positive bool
	// order permutes the quad corners (0,0)(w,0)(w,h)(0,h) so the two
	// triangles wind counter-clockwise seen from outside. Wrong order here
	// silently inverts backface culling for the direction.
	order [4]int
}

var faces = [DirectionCount]faceInfo{
	DirEast:  {normal: [3]int{1, 0, 0}, uAxis: 1, vAxis: 2, dAxis: 0, positive: true, order: [4]int{0, 1, 2, 3}},
	DirWest:  {normal: [3]int{-1, 0, 0}, uAxis: 1, vAxis: 2, dAxis: 0, order: [4]int{0, 3, 2, 1}},
	DirUp:    {normal: [3]int{0, 1, 0}, uAxis: 0, vAxis: 2, dAxis: 1, positive: true, order: [4]int{0, 3, 2, 1}},
	DirDown:  {normal: [3]int{0, -1, 0}, uAxis: 0, vAxis: 2, dAxis: 1, order: [4]int{0, 1, 2, 3}},
	DirNorth: {normal: [3]int{0, 0, 1}, uAxis: 0, vAxis: 1, dAxis: 2, positive: true, order: [4]int{0, 1, 2, 3}},
	DirSouth: {normal: [3]int{0, 0, -1}, uAxis: 0, vAxis: 1, dAxis: 2, order: [4]int{0, 3, 2, 1}},
}
