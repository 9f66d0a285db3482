package world

import (
	"runtime"
	"sync"

	"github.com/WholesomeTech/AGICraft/internal/profiling"
)

// ChunkStreamer generates missing chunks on background workers so the
// render thread never blocks on terrain noise. Generated chunks enter the
// store dirty and get meshed by the regular dirty-driven path.
type ChunkStreamer struct {
	jobs       chan ChunkCoord
	pending    map[ChunkCoord]struct{}
	pendingMu  sync.Mutex
	maxPending int

	store *ChunkStore
	gen   *Generator
	wg    sync.WaitGroup
}

// NewChunkStreamer creates a streamer and starts its generation workers.
func NewChunkStreamer(store *ChunkStore, gen *Generator) *ChunkStreamer {
	cs := &ChunkStreamer{
		jobs:       make(chan ChunkCoord, 1024),
		pending:    make(map[ChunkCoord]struct{}),
		maxPending: 4096,
		store:      store,
		gen:        gen,
	}
	workers := max(runtime.NumCPU()/2, 1)
	for i := 0; i < workers; i++ {
		cs.wg.Add(1)
		go cs.worker()
	}
	return cs
}

// Close stops the background generation workers.
func (cs *ChunkStreamer) Close() {
	close(cs.jobs)
	cs.wg.Wait()
}

func (cs *ChunkStreamer) worker() {
	defer cs.wg.Done()
	for coord := range cs.jobs {
		cs.generate(coord)
		cs.pendingMu.Lock()
		delete(cs.pending, coord)
		cs.pendingMu.Unlock()
	}
}

func (cs *ChunkStreamer) generate(coord ChunkCoord) {
	if cs.store.HasChunk(coord) {
		return
	}
	chunk := NewChunk(coord.X, coord.Z)
	if cs.gen != nil {
		cs.gen.PopulateChunk(chunk)
	}
	cs.store.AddChunk(coord, chunk)
}

// StreamAround queues generation for missing chunks within radius (in
// chunks) of world coordinate (x, z), walking outward ring by ring so the
// chunks nearest the viewer generate first.
func (cs *ChunkStreamer) StreamAround(x, z, radius int) {
	defer profiling.Track("world.StreamAround")()
	cx := floorDiv(x, ChunkSizeX)
	cz := floorDiv(z, ChunkSizeZ)

	for r := 0; r <= radius; r++ {
		if r == 0 {
			cs.request(ChunkCoord{X: cx, Z: cz})
			continue
		}
		x0, x1 := cx-r, cx+r
		z0, z1 := cz-r, cz+r
		for xk := x0; xk <= x1; xk++ {
			cs.request(ChunkCoord{X: xk, Z: z0})
			cs.request(ChunkCoord{X: xk, Z: z1})
		}
		for zk := z0 + 1; zk <= z1-1; zk++ {
			cs.request(ChunkCoord{X: x0, Z: zk})
			cs.request(ChunkCoord{X: x1, Z: zk})
		}
	}
}

// Pending returns the number of queued or in-progress generation jobs.
func (cs *ChunkStreamer) Pending() int {
	cs.pendingMu.Lock()
	defer cs.pendingMu.Unlock()
	return len(cs.pending)
}

// request enqueues one chunk, respecting the pending cap. Returns true if
// the job was queued.
func (cs *ChunkStreamer) request(coord ChunkCoord) bool {
	if cs.store.HasChunk(coord) {
		return false
	}

	cs.pendingMu.Lock()
	if _, ok := cs.pending[coord]; ok {
		cs.pendingMu.Unlock()
		return false
	}
	if cs.maxPending > 0 && len(cs.pending) >= cs.maxPending {
		cs.pendingMu.Unlock()
		return false
	}
	cs.pending[coord] = struct{}{}
	cs.pendingMu.Unlock()

	select {
	case cs.jobs <- coord:
		return true
	default:
		// queue full: rollback
		cs.pendingMu.Lock()
		delete(cs.pending, coord)
		cs.pendingMu.Unlock()
		return false
	}
}
