package world

import (
	"github.com/WholesomeTech/AGICraft/internal/profiling"
)

// World couples a chunk store with a terrain generator. Block access uses
// world coordinates; chunk-local translation happens in the store.
type World struct {
	Store *ChunkStore
	gen   *Generator
}

// New creates a world with a seeded generator.
func New(seed int64) *World {
	return &World{
		Store: NewChunkStore(),
		gen:   NewGenerator(seed),
	}
}

// NewEmpty creates a world whose chunks start as all air. Used by tests and
// tools that place blocks by hand.
func NewEmpty() *World {
	return &World{Store: NewChunkStore()}
}

// Generator returns the world's terrain generator, nil for empty worlds.
func (w *World) Generator() *Generator {
	return w.gen
}

// Get returns the block type at the specified world coordinates.
func (w *World) Get(x, y, z int) BlockType {
	return w.Store.Get(x, y, z)
}

// Set sets the block type at the specified world coordinates.
func (w *World) Set(x, y, z int, val BlockType) {
	w.Store.Set(x, y, z, val)
}

// IsAir checks if the block at the specified world coordinates is air.
func (w *World) IsAir(x, y, z int) bool {
	return w.Store.IsAir(x, y, z)
}

// GetChunk returns the chunk at the specified chunk coordinates.
func (w *World) GetChunk(chunkX, chunkZ int, create bool) *Chunk {
	return w.Store.GetChunk(chunkX, chunkZ, create)
}

// GetChunkFromBlockCoords returns the chunk containing the given world
// coordinate.
func (w *World) GetChunkFromBlockCoords(x, z int, create bool) *Chunk {
	return w.Store.GetChunkFromBlockCoords(x, z, create)
}

// NewStreamer starts background generation workers feeding this world's
// chunk store.
func (w *World) NewStreamer() *ChunkStreamer {
	return NewChunkStreamer(w.Store, w.gen)
}

// GenerateAround synchronously generates any missing chunks within radius
// (in chunks) of the chunk containing world coordinate (x, z).
func (w *World) GenerateAround(x, z, radius int) {
	defer profiling.Track("world.GenerateAround")()
	cx := floorDiv(x, ChunkSizeX)
	cz := floorDiv(z, ChunkSizeZ)
	for dx := -radius; dx <= radius; dx++ {
		for dz := -radius; dz <= radius; dz++ {
			coord := ChunkCoord{X: cx + dx, Z: cz + dz}
			if w.Store.HasChunk(coord) {
				continue
			}
			chunk := NewChunk(coord.X, coord.Z)
			if w.gen != nil {
				w.gen.PopulateChunk(chunk)
			}
			w.Store.AddChunk(coord, chunk)
		}
	}
}
