package world

import "testing"

func TestSetGetRoundTrip(t *testing.T) {
	c := NewChunk(0, 0)
	c.SetClean()
	coords := [][3]int{
		{0, 0, 0},
		{ChunkSizeX - 1, ChunkSizeY - 1, ChunkSizeZ - 1},
		{3, 17, 9},
		{15, 0, 15},
	}
	for i, p := range coords {
		want := BlockType(i + 1)
		c.SetBlock(p[0], p[1], p[2], want)
		if got := c.GetBlock(p[0], p[1], p[2]); got != want {
			t.Fatalf("GetBlock%v = %d, want %d", p, got, want)
		}
	}
	if !c.IsDirty() {
		t.Fatalf("SetBlock did not mark the chunk dirty")
	}
}

func TestOutOfRangeReadsAsAir(t *testing.T) {
	c := NewChunk(0, 0)
	c.SetBlock(0, 0, 0, BlockTypeStone)
	outside := [][3]int{
		{-1, 0, 0}, {ChunkSizeX, 0, 0},
		{0, -1, 0}, {0, ChunkSizeY, 0},
		{0, 0, -1}, {0, 0, ChunkSizeZ},
	}
	for _, p := range outside {
		if got := c.GetBlock(p[0], p[1], p[2]); got != BlockTypeAir {
			t.Errorf("GetBlock%v = %d, want air", p, got)
		}
	}
}

func TestOutOfRangeSetIsNoOp(t *testing.T) {
	c := NewChunk(0, 0)
	c.SetBlock(4, 4, 4, BlockTypeGrass)
	c.SetClean()

	c.SetBlock(-1, 0, 0, BlockTypeStone)
	c.SetBlock(0, ChunkSizeY, 0, BlockTypeStone)
	c.SetBlock(ChunkSizeX, 0, ChunkSizeZ, BlockTypeStone)

	if c.IsDirty() {
		t.Fatalf("out-of-range SetBlock marked the chunk dirty")
	}
	for x := 0; x < ChunkSizeX; x++ {
		for y := 0; y < ChunkSizeY; y++ {
			for z := 0; z < ChunkSizeZ; z++ {
				want := BlockTypeAir
				if x == 4 && y == 4 && z == 4 {
					want = BlockTypeGrass
				}
				if got := c.GetBlock(x, y, z); got != want {
					t.Fatalf("GetBlock(%d,%d,%d) = %d after out-of-range set, want %d", x, y, z, got, want)
				}
			}
		}
	}
}

func TestSetSameValueKeepsClean(t *testing.T) {
	c := NewChunk(0, 0)
	c.SetBlock(1, 2, 3, BlockTypeDirt)
	c.SetClean()
	c.SetBlock(1, 2, 3, BlockTypeDirt)
	if c.IsDirty() {
		t.Fatalf("rewriting the same value marked the chunk dirty")
	}
}

func TestRevisionTracksBlockChanges(t *testing.T) {
	c := NewChunk(0, 0)
	r0 := c.Revision()
	c.SetBlock(1, 2, 3, BlockTypeStone)
	if c.Revision() == r0 {
		t.Fatalf("block change did not advance the revision")
	}
	r1 := c.Revision()
	c.SetBlock(1, 2, 3, BlockTypeStone)
	if c.Revision() != r1 {
		t.Errorf("rewriting the same value advanced the revision")
	}
	c.MarkDirty()
	if c.Revision() != r1 {
		t.Errorf("MarkDirty advanced the revision without a block change")
	}
}

func TestSnapshotUnaffectedByLaterEdits(t *testing.T) {
	c := NewChunk(2, -1)
	c.SetBlock(1, 1, 1, BlockTypeStone)
	snap := c.Snapshot()

	c.SetBlock(2, 2, 2, BlockTypeDirt)
	c.SetBlock(1, 1, 1, BlockTypeAir)

	if got := snap.GetBlock(1, 1, 1); got != BlockTypeStone {
		t.Errorf("snapshot(1,1,1) = %d, want stone", got)
	}
	if got := snap.GetBlock(2, 2, 2); got != BlockTypeAir {
		t.Errorf("snapshot(2,2,2) = %d, want air", got)
	}
	if snap.X != 2 || snap.Z != -1 {
		t.Errorf("snapshot coordinate (%d,%d), want (2,-1)", snap.X, snap.Z)
	}
}

func TestWorldOrigin(t *testing.T) {
	c := NewChunk(-2, 3)
	x, y, z := c.WorldOrigin()
	if x != -2*ChunkSizeX || y != 0 || z != 3*ChunkSizeZ {
		t.Fatalf("WorldOrigin() = (%d,%d,%d), want (%d,0,%d)", x, y, z, -2*ChunkSizeX, 3*ChunkSizeZ)
	}
}
