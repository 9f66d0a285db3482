package meshing

import (
	"context"
	"sync"

	"github.com/WholesomeTech/AGICraft/internal/world"
)

// MeshJob requests a mesh rebuild for one chunk. Chunk must be a snapshot
// (Chunk.Snapshot) when the live chunk can be edited while the job is in
// flight; Revision is the live chunk's revision at snapshot time and is
// echoed back on the result so the consumer can detect a stale build.
type MeshJob struct {
	Chunk    *world.Chunk
	Coord    world.ChunkCoord
	Layout   VertexLayout
	Revision uint64
}

// MeshResult carries a completed mesh back to the submitting side.
type MeshResult struct {
	Coord    world.ChunkCoord
	Mesh     Mesh
	Revision uint64
}

// WorkerPool rebuilds chunk meshes on background goroutines. A single
// chunk's build stays sequential; the pool only parallelizes across chunks,
// and at most one job per chunk coordinate is in flight at a time.
type WorkerPool struct {
	jobQueue chan MeshJob
	results  chan MeshResult
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup

	pendingMu sync.Mutex
	pending   map[world.ChunkCoord]struct{}
}

// NewWorkerPool creates and starts a mesh worker pool.
func NewWorkerPool(workers, queueSize int) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())
	pool := &WorkerPool{
		jobQueue: make(chan MeshJob, queueSize),
		results:  make(chan MeshResult, queueSize),
		ctx:      ctx,
		cancel:   cancel,
		pending:  make(map[world.ChunkCoord]struct{}),
	}
	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker()
	}
	return pool
}

// Submit queues a mesh job. It returns false when the queue is full or when
// a job for the same chunk is already in flight.
func (p *WorkerPool) Submit(job MeshJob) bool {
	p.pendingMu.Lock()
	if _, busy := p.pending[job.Coord]; busy {
		p.pendingMu.Unlock()
		return false
	}
	p.pending[job.Coord] = struct{}{}
	p.pendingMu.Unlock()

	select {
	case p.jobQueue <- job:
		return true
	default:
		p.pendingMu.Lock()
		delete(p.pending, job.Coord)
		p.pendingMu.Unlock()
		return false
	}
}

// Results returns the channel completed meshes arrive on. The receiver is
// responsible for uploading the buffer and clearing the chunk's dirty flag,
// in that order.
func (p *WorkerPool) Results() <-chan MeshResult {
	return p.results
}

// Pending returns the number of chunks with an in-flight job.
func (p *WorkerPool) Pending() int {
	p.pendingMu.Lock()
	defer p.pendingMu.Unlock()
	return len(p.pending)
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			mesh := BuildChunkMesh(job.Chunk, job.Layout)

			p.pendingMu.Lock()
			delete(p.pending, job.Coord)
			p.pendingMu.Unlock()

			select {
			case p.results <- MeshResult{Coord: job.Coord, Mesh: mesh, Revision: job.Revision}:
			case <-p.ctx.Done():
				return
			}
		case <-p.ctx.Done():
			return
		}
	}
}

// Shutdown stops the workers and waits for them to exit.
func (p *WorkerPool) Shutdown() {
	p.cancel()
	p.wg.Wait()
}
