package world

const (
	// Chunk dimensions
	ChunkSizeX = 16
	ChunkSizeY = 64
	ChunkSizeZ = 16

	ChunkVolume = ChunkSizeX * ChunkSizeY * ChunkSizeZ
)

// Chunk represents a 16x64x16 column of the world, addressed by its (X, Z)
// chunk-grid coordinate. Block storage is a single flat array.
type Chunk struct {
	X, Z   int
	blocks [ChunkVolume]BlockType
	dirty  bool
	rev    uint64
}

// NewChunk creates an all-air chunk at the specified chunk coordinates.
func NewChunk(x, z int) *Chunk {
	return &Chunk{
		X:     x,
		Z:     z,
		dirty: true,
	}
}

// blockIndex converts local coordinates to a flat index. Layout is X fastest,
// then Z, then Y; every accessor in this package goes through it.
func blockIndex(x, y, z int) int {
	return x + z*ChunkSizeX + y*ChunkSizeX*ChunkSizeZ
}

// GetBlock returns the block type at the specified local coordinates.
// Out-of-range coordinates read as air, so the chunk behaves as if padded
// with infinite air at its own boundaries.
func (c *Chunk) GetBlock(x, y, z int) BlockType {
	if x < 0 || x >= ChunkSizeX || y < 0 || y >= ChunkSizeY || z < 0 || z >= ChunkSizeZ {
		return BlockTypeAir
	}
	return c.blocks[blockIndex(x, y, z)]
}

// SetBlock sets the block type at the specified local coordinates and marks
// the chunk dirty. Out-of-range coordinates are silently ignored.
func (c *Chunk) SetBlock(x, y, z int, blockType BlockType) {
	if x < 0 || x >= ChunkSizeX || y < 0 || y >= ChunkSizeY || z < 0 || z >= ChunkSizeZ {
		return
	}
	idx := blockIndex(x, y, z)
	if c.blocks[idx] != blockType {
		c.blocks[idx] = blockType
		c.dirty = true
		c.rev++
	}
}

// Revision returns a counter that increases on every block change. A mesh
// built from a snapshot taken at revision R is stale iff the live chunk's
// revision has moved past R.
func (c *Chunk) Revision() uint64 {
	return c.rev
}

// Snapshot returns an independent copy of the chunk. Mesh workers read the
// copy, so the live chunk keeps a single owner and can be edited while a
// build is in flight.
func (c *Chunk) Snapshot() *Chunk {
	dup := *c
	return &dup
}

// IsAir checks if the block at the specified local coordinates is air.
func (c *Chunk) IsAir(x, y, z int) bool {
	return c.GetBlock(x, y, z) == BlockTypeAir
}

// IsDirty returns whether the chunk has been modified since its mesh was
// last rebuilt.
func (c *Chunk) IsDirty() bool {
	return c.dirty
}

// MarkDirty forces a mesh rebuild on the next frame.
func (c *Chunk) MarkDirty() {
	c.dirty = true
}

// SetClean marks the chunk as clean. Callers must only do this after the
// rebuilt mesh has been handed off, so a stale mesh is never observed as
// current.
func (c *Chunk) SetClean() {
	c.dirty = false
}

// WorldOrigin returns the world-space block coordinate of the chunk's
// (0,0,0) corner.
func (c *Chunk) WorldOrigin() (int, int, int) {
	return c.X * ChunkSizeX, 0, c.Z * ChunkSizeZ
}
