package physics

import (
	"math"

	"github.com/WholesomeTech/AGICraft/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const playerHalfWidth = 0.3

// Collides checks if a player AABB at pos (feet position) overlaps any solid
// block. Blocks occupy [x,x+1) per axis.
func Collides(pos mgl32.Vec3, playerHeight float32, w *world.World) bool {
	minX := int(math.Floor(float64(pos.X() - playerHalfWidth)))
	maxX := int(math.Floor(float64(pos.X() + playerHalfWidth)))
	minY := int(math.Floor(float64(pos.Y())))
	maxY := int(math.Floor(float64(pos.Y() + playerHeight)))
	minZ := int(math.Floor(float64(pos.Z() - playerHalfWidth)))
	maxZ := int(math.Floor(float64(pos.Z() + playerHalfWidth)))

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				if !w.IsAir(x, y, z) {
					return true
				}
			}
		}
	}
	return false
}

// FindGroundLevel finds the Y of the highest block top under the player
// footprint at (x, z), searching down from the player's feet.
func FindGroundLevel(x, z float32, playerPos mgl32.Vec3, w *world.World) float32 {
	minX := int(math.Floor(float64(x - playerHalfWidth)))
	maxX := int(math.Floor(float64(x + playerHalfWidth)))
	minZ := int(math.Floor(float64(z - playerHalfWidth)))
	maxZ := int(math.Floor(float64(z + playerHalfWidth)))

	maxGroundY := float32(-1)
	for bx := minX; bx <= maxX; bx++ {
		for bz := minZ; bz <= maxZ; bz++ {
			for by := int(math.Floor(float64(playerPos.Y()))); by >= 0; by-- {
				if !w.IsAir(bx, by, bz) {
					if top := float32(by) + 1; top > maxGroundY {
						maxGroundY = top
					}
					break
				}
			}
		}
	}
	if maxGroundY < 0 {
		return 1.0 // safe default over the void
	}
	return maxGroundY
}
