package world

import (
	"sync"

	"github.com/WholesomeTech/AGICraft/internal/profiling"
)

// ChunkCoord identifies a chunk column by its (X, Z) chunk-grid coordinate.
type ChunkCoord struct {
	X, Z int
}

// ChunkCoordAt returns the coordinate of the chunk containing world block
// column (x, z).
func ChunkCoordAt(x, z int) ChunkCoord {
	return ChunkCoord{X: floorDiv(x, ChunkSizeX), Z: floorDiv(z, ChunkSizeZ)}
}

// ChunkWithCoord pairs a chunk with its coordinate for bulk queries.
type ChunkWithCoord struct {
	Chunk *Chunk
	Coord ChunkCoord
}

// ChunkStore manages the storage and retrieval of chunks.
type ChunkStore struct {
	chunks   map[ChunkCoord]*Chunk
	mu       sync.RWMutex
	modCount uint64 // increases on any chunk add/remove
}

// NewChunkStore creates a new chunk store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{
		chunks: make(map[ChunkCoord]*Chunk),
	}
}

// floorDiv divides rounding toward negative infinity, so negative world
// coordinates map to the correct chunk.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// mod returns a mod b in [0, b). The double mod keeps the result positive
// for negative world coordinates.
func mod(a, b int) int {
	return ((a % b) + b) % b
}

// GetChunk returns the chunk at the specified chunk coordinates.
// If the chunk doesn't exist and create is true, it will be created
// (but NOT populated).
func (cs *ChunkStore) GetChunk(chunkX, chunkZ int, create bool) *Chunk {
	coord := ChunkCoord{X: chunkX, Z: chunkZ}
	cs.mu.RLock()
	chunk, exists := cs.chunks[coord]
	cs.mu.RUnlock()
	if !exists && create {
		cs.mu.Lock()
		// Double-check: another goroutine might have created it while we
		// were waiting for the lock
		if existing, ok := cs.chunks[coord]; ok {
			cs.mu.Unlock()
			return existing
		}
		chunk = NewChunk(chunkX, chunkZ)
		cs.chunks[coord] = chunk
		cs.modCount++
		cs.mu.Unlock()
	}
	return chunk
}

// GetChunkFromBlockCoords returns the chunk containing the block at the
// specified world coordinates.
func (cs *ChunkStore) GetChunkFromBlockCoords(x, z int, create bool) *Chunk {
	return cs.GetChunk(floorDiv(x, ChunkSizeX), floorDiv(z, ChunkSizeZ), create)
}

// Get returns the block type at the specified world coordinates. Unloaded
// chunks and out-of-range heights read as air.
func (cs *ChunkStore) Get(x, y, z int) BlockType {
	chunk := cs.GetChunkFromBlockCoords(x, z, false)
	if chunk == nil {
		return BlockTypeAir
	}
	return chunk.GetBlock(mod(x, ChunkSizeX), y, mod(z, ChunkSizeZ))
}

// IsAir checks if the block at the specified world coordinates is air.
func (cs *ChunkStore) IsAir(x, y, z int) bool {
	return cs.Get(x, y, z) == BlockTypeAir
}

// Set sets the block type at the specified world coordinates, creating the
// owning chunk if needed. The owning chunk is marked dirty by SetBlock.
func (cs *ChunkStore) Set(x, y, z int, val BlockType) {
	chunk := cs.GetChunkFromBlockCoords(x, z, true)

	localX := mod(x, ChunkSizeX)
	localZ := mod(z, ChunkSizeZ)
	chunk.SetBlock(localX, y, localZ, val)

	// Border edits change which faces a neighbor chunk exposes, so remesh
	// the neighbor too
	if localX == 0 {
		if nb := cs.GetChunkFromBlockCoords(x-1, z, false); nb != nil {
			nb.MarkDirty()
		}
	} else if localX == ChunkSizeX-1 {
		if nb := cs.GetChunkFromBlockCoords(x+1, z, false); nb != nil {
			nb.MarkDirty()
		}
	}
	if localZ == 0 {
		if nb := cs.GetChunkFromBlockCoords(x, z-1, false); nb != nil {
			nb.MarkDirty()
		}
	} else if localZ == ChunkSizeZ-1 {
		if nb := cs.GetChunkFromBlockCoords(x, z+1, false); nb != nil {
			nb.MarkDirty()
		}
	}
}

// GetAllChunks returns a slice of all chunks in the store with their
// coordinates.
func (cs *ChunkStore) GetAllChunks() []ChunkWithCoord {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	chunks := make([]ChunkWithCoord, 0, len(cs.chunks))
	for coord, chunk := range cs.chunks {
		chunks = append(chunks, ChunkWithCoord{Chunk: chunk, Coord: coord})
	}
	return chunks
}

// HasChunk checks if a chunk exists without creating it.
func (cs *ChunkStore) HasChunk(coord ChunkCoord) bool {
	cs.mu.RLock()
	_, exists := cs.chunks[coord]
	cs.mu.RUnlock()
	return exists
}

// AddChunk adds a pre-generated chunk to the store. Existing chunks are kept.
func (cs *ChunkStore) AddChunk(coord ChunkCoord, chunk *Chunk) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if _, ok := cs.chunks[coord]; !ok {
		cs.chunks[coord] = chunk
		cs.modCount++
	}
}

// GetModCount returns the current modification count of the chunk map.
func (cs *ChunkStore) GetModCount() uint64 {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.modCount
}

// EvictFarChunks removes chunks outside the given radius (in chunks) around
// a center chunk coordinate. Returns the number of removed chunks; their
// meshes should be freed by the render layer.
func (cs *ChunkStore) EvictFarChunks(cx, cz, radius int) int {
	defer profiling.Track("world.EvictFarChunks")()
	removed := 0
	cs.mu.Lock()
	for coord := range cs.chunks {
		dx := coord.X - cx
		dz := coord.Z - cz
		if dx*dx+dz*dz > radius*radius {
			delete(cs.chunks, coord)
			cs.modCount++
			removed++
		}
	}
	cs.mu.Unlock()
	return removed
}
