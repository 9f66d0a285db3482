package world

import (
	"testing"
	"time"
)

func waitForStreamer(t *testing.T, cs *ChunkStreamer) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for cs.Pending() > 0 {
		if time.Now().After(deadline) {
			t.Fatalf("streamer still has %d pending jobs after 5s", cs.Pending())
		}
		time.Sleep(time.Millisecond)
	}
}

func TestStreamAroundGeneratesSquare(t *testing.T) {
	w := New(7)
	cs := w.NewStreamer()
	defer cs.Close()

	radius := 2
	cs.StreamAround(0, 0, radius)
	waitForStreamer(t, cs)

	for dx := -radius; dx <= radius; dx++ {
		for dz := -radius; dz <= radius; dz++ {
			coord := ChunkCoord{X: dx, Z: dz}
			if !w.Store.HasChunk(coord) {
				t.Errorf("chunk %v missing after streaming", coord)
			}
		}
	}
}

func TestStreamAroundMatchesSynchronousGeneration(t *testing.T) {
	const seed = 42
	streamed := New(seed)
	cs := streamed.NewStreamer()
	defer cs.Close()
	cs.StreamAround(0, 0, 1)
	waitForStreamer(t, cs)

	direct := New(seed)
	direct.GenerateAround(0, 0, 1)

	for _, coord := range []ChunkCoord{{0, 0}, {-1, -1}, {1, 0}} {
		a := streamed.Store.GetChunk(coord.X, coord.Z, false)
		b := direct.Store.GetChunk(coord.X, coord.Z, false)
		if a == nil || b == nil {
			t.Fatalf("chunk %v missing (streamed=%v direct=%v)", coord, a != nil, b != nil)
		}
		for y := 0; y < ChunkSizeY; y++ {
			for x := 0; x < ChunkSizeX; x++ {
				for z := 0; z < ChunkSizeZ; z++ {
					if a.GetBlock(x, y, z) != b.GetBlock(x, y, z) {
						t.Fatalf("chunk %v block (%d,%d,%d): streamed %d, direct %d",
							coord, x, y, z, a.GetBlock(x, y, z), b.GetBlock(x, y, z))
					}
				}
			}
		}
	}
}

func TestStreamAroundSkipsExistingChunks(t *testing.T) {
	w := New(3)
	w.GenerateAround(0, 0, 1)

	cs := w.NewStreamer()
	defer cs.Close()
	mods := w.Store.GetModCount()

	cs.StreamAround(0, 0, 1)
	if got := cs.Pending(); got != 0 {
		t.Fatalf("expected no jobs for already generated area, got %d pending", got)
	}
	if w.Store.GetModCount() != mods {
		t.Errorf("streaming over generated area touched the store")
	}
}
