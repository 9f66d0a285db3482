package physics

import (
	"math"

	"github.com/WholesomeTech/AGICraft/internal/profiling"
	"github.com/WholesomeTech/AGICraft/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinReachDistance = 0.1
	MaxReachDistance = 5.0
)

// RaycastResult stores the result of a raycast operation. AdjacentPosition
// is only meaningful when HasAdjacent is true: a ray that starts inside a
// solid block hits it without ever passing through an empty cell.
type RaycastResult struct {
	HitPosition      [3]int
	AdjacentPosition [3]int
	Distance         float32
	Hit              bool
	HasAdjacent      bool
}

// floorBlock maps a world-space position to the cell containing it. A block
// at (x,y,z) occupies [x,x+1) on every axis.
func floorBlock(pos mgl32.Vec3) [3]int {
	return [3]int{
		int(math.Floor(float64(pos.X()))),
		int(math.Floor(float64(pos.Y()))),
		int(math.Floor(float64(pos.Z()))),
	}
}

// Raycast marches a ray from start along direction and returns the first
// solid block hit, along with the last empty cell before it (where a placed
// block would go).
func Raycast(start mgl32.Vec3, direction mgl32.Vec3, minDist, maxDist float32, w *world.World) RaycastResult {
	defer profiling.Track("physics.Raycast")()
	stepSize := float32(0.02)
	steps := int(maxDist / stepSize)

	var lastEmptyPos [3]int
	seenEmpty := false
	result := RaycastResult{Hit: false}

	for i := 0; i <= steps; i++ {
		dist := float32(i) * stepSize
		if dist < minDist {
			continue
		}

		blockPos := floorBlock(start.Add(direction.Mul(dist)))
		if !w.IsAir(blockPos[0], blockPos[1], blockPos[2]) {
			result.HitPosition = blockPos
			result.AdjacentPosition = lastEmptyPos
			result.HasAdjacent = seenEmpty
			result.Distance = dist
			result.Hit = true
			return result
		}
		lastEmptyPos = blockPos
		seenEmpty = true
	}

	return result
}
