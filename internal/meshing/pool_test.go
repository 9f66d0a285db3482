package meshing

import (
	"testing"
	"time"

	"github.com/WholesomeTech/AGICraft/internal/world"
)

func TestWorkerPoolBuildsMatchSynchronous(t *testing.T) {
	c := world.NewChunk(0, 0)
	world.NewGenerator(7).PopulateChunk(c)
	want := BuildChunkMesh(c, LayoutPosNormalColor)

	pool := NewWorkerPool(2, 4)
	defer pool.Shutdown()

	if !pool.Submit(MeshJob{Chunk: c, Coord: world.ChunkCoord{X: 0, Z: 0}, Layout: LayoutPosNormalColor}) {
		t.Fatalf("Submit refused an idle pool")
	}

	select {
	case res := <-pool.Results():
		if len(res.Mesh.Vertices) != len(want.Vertices) {
			t.Fatalf("pool mesh has %d floats, sync build has %d", len(res.Mesh.Vertices), len(want.Vertices))
		}
		for i := range want.Vertices {
			if res.Mesh.Vertices[i] != want.Vertices[i] {
				t.Fatalf("pool mesh differs from sync build at float %d", i)
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for mesh result")
	}
}

func TestMidBuildEditKeepsChunkDirty(t *testing.T) {
	c := world.NewChunk(0, 0)
	c.SetBlock(1, 1, 1, world.BlockTypeStone)

	pool := NewWorkerPool(1, 4)
	defer pool.Shutdown()

	job := MeshJob{
		Chunk:    c.Snapshot(),
		Coord:    world.ChunkCoord{X: 0, Z: 0},
		Layout:   LayoutPosNormalColor,
		Revision: c.Revision(),
	}
	if !pool.Submit(job) {
		t.Fatalf("submit refused")
	}

	// Edit the live chunk while the job is in flight. The worker reads the
	// snapshot, so the result must reflect the pre-edit state, and the
	// echoed revision must no longer match the live chunk.
	c.SetBlock(5, 5, 5, world.BlockTypeDirt)

	select {
	case res := <-pool.Results():
		if got, want := res.Mesh.QuadCount(), 6; got != want {
			t.Fatalf("mesh has %d quads, want %d from the pre-edit snapshot", got, want)
		}
		if res.Revision != job.Revision {
			t.Fatalf("result revision %d, want the submitted %d", res.Revision, job.Revision)
		}
		if res.Revision == c.Revision() {
			t.Fatalf("stale result matches the live revision; mid-build edit undetectable")
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for mesh result")
	}

	// The edit re-dirtied the chunk; a consumer honoring the revision
	// check leaves it dirty and rebuilds next frame.
	if !c.IsDirty() {
		t.Fatalf("chunk clean after an edit during the build")
	}
}

func TestWorkerPoolPerChunkExclusion(t *testing.T) {
	// No workers: the first job stays pending, so a second submit for the
	// same chunk must be refused.
	pool := NewWorkerPool(0, 4)
	defer pool.Shutdown()

	c := world.NewChunk(3, 4)
	job := MeshJob{Chunk: c, Coord: world.ChunkCoord{X: 3, Z: 4}, Layout: LayoutPosNormalColor}
	if !pool.Submit(job) {
		t.Fatalf("first submit refused")
	}
	if pool.Submit(job) {
		t.Fatalf("second submit for the same chunk accepted while pending")
	}
	if got := pool.Pending(); got != 1 {
		t.Fatalf("pending count %d, want 1", got)
	}

	// A different chunk is still accepted.
	other := MeshJob{Chunk: world.NewChunk(9, 9), Coord: world.ChunkCoord{X: 9, Z: 9}, Layout: LayoutPosNormalColor}
	if !pool.Submit(other) {
		t.Fatalf("submit for a different chunk refused")
	}
}
