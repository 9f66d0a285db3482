package physics_test

import (
	"testing"

	"github.com/WholesomeTech/AGICraft/internal/physics"
	"github.com/WholesomeTech/AGICraft/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func TestRaycastHitsBlock(t *testing.T) {
	w := world.NewEmpty()
	w.Set(5, 0, 0, world.BlockTypeStone)

	start := mgl32.Vec3{0.5, 0.5, 0.5}
	dir := mgl32.Vec3{1, 0, 0}

	result := physics.Raycast(start, dir, 0.1, 10.0, w)
	if !result.Hit {
		t.Fatalf("expected hit, got miss")
	}
	if result.HitPosition != [3]int{5, 0, 0} {
		t.Errorf("hit at %v, want {5,0,0}", result.HitPosition)
	}
	if !result.HasAdjacent {
		t.Fatalf("expected a valid adjacent cell")
	}
	if result.AdjacentPosition != [3]int{4, 0, 0} {
		t.Errorf("adjacent at %v, want {4,0,0}", result.AdjacentPosition)
	}
	// Ray starts at x=0.5 and the block face is at x=5.0.
	if result.Distance < 4.49 || result.Distance > 4.53 {
		t.Errorf("distance %f, want ~4.5", result.Distance)
	}
}

func TestRaycastStartInsideBlockHasNoAdjacent(t *testing.T) {
	w := world.NewEmpty()
	w.Set(0, 0, 0, world.BlockTypeStone)

	// Camera clipped into terrain: the first sample past minDist is
	// already solid, so there is no empty cell to place into.
	result := physics.Raycast(mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{1, 0, 0}, 0.1, 5.0, w)
	if !result.Hit {
		t.Fatalf("expected hit on the containing block, got miss")
	}
	if result.HitPosition != [3]int{0, 0, 0} {
		t.Errorf("hit at %v, want {0,0,0}", result.HitPosition)
	}
	if result.HasAdjacent {
		t.Fatalf("reported adjacent cell %v for a ray starting inside a block", result.AdjacentPosition)
	}
}

func TestRaycastRespectsMaxDistance(t *testing.T) {
	w := world.NewEmpty()
	w.Set(5, 0, 0, world.BlockTypeStone)
	result := physics.Raycast(mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{1, 0, 0}, 0.1, 4.0, w)
	if result.Hit {
		t.Errorf("expected miss beyond maxDist, got hit at %v", result.HitPosition)
	}
}

func TestRaycastMissesWrongDirection(t *testing.T) {
	w := world.NewEmpty()
	w.Set(5, 0, 0, world.BlockTypeStone)
	result := physics.Raycast(mgl32.Vec3{0.5, 0.5, 0.5}, mgl32.Vec3{0, 1, 0}, 0.1, 10.0, w)
	if result.Hit {
		t.Errorf("expected miss, got hit at %v", result.HitPosition)
	}
}

func TestRaycastDiagonal(t *testing.T) {
	w := world.NewEmpty()
	w.Set(2, 2, 2, world.BlockTypeStone)
	dir := mgl32.Vec3{1, 1, 1}.Normalize()
	result := physics.Raycast(mgl32.Vec3{0.5, 0.5, 0.5}, dir, 0.1, 10.0, w)
	if !result.Hit {
		t.Fatalf("expected hit at {2,2,2}, got miss")
	}
	if result.HitPosition != [3]int{2, 2, 2} {
		t.Errorf("hit at %v, want {2,2,2}", result.HitPosition)
	}
}

func TestCollides(t *testing.T) {
	w := world.NewEmpty()
	w.Set(0, 0, 0, world.BlockTypeStone)

	if !physics.Collides(mgl32.Vec3{0.5, 0.5, 0.5}, 1.8, w) {
		t.Errorf("player inside a block does not collide")
	}
	if physics.Collides(mgl32.Vec3{0.5, 1.2, 0.5}, 1.8, w) {
		t.Errorf("player standing above the block collides")
	}
	if physics.Collides(mgl32.Vec3{5.5, 0.5, 5.5}, 1.8, w) {
		t.Errorf("player in empty space collides")
	}
}

func TestFindGroundLevel(t *testing.T) {
	w := world.NewEmpty()
	for x := -1; x <= 1; x++ {
		for z := -1; z <= 1; z++ {
			w.Set(x, 3, z, world.BlockTypeStone)
		}
	}
	got := physics.FindGroundLevel(0.5, 0.5, mgl32.Vec3{0.5, 10, 0.5}, w)
	if got != 4 {
		t.Errorf("ground level %f, want 4 (top of block at y=3)", got)
	}
}
