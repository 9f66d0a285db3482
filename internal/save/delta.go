package save

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/WholesomeTech/AGICraft/internal/world"

	"github.com/google/uuid"
)

// BlockDelta is one block modification in world coordinates.
type BlockDelta struct {
	X    int             `json:"x"`
	Y    int             `json:"y"`
	Z    int             `json:"z"`
	Type world.BlockType `json:"t"`
}

// DeltaLog accumulates block modifications against generated terrain. A
// world is reproduced by regenerating from the seed and replaying the log in
// order; later entries for the same cell win.
type DeltaLog struct {
	WorldID uuid.UUID
	Seed    int64

	mu  sync.Mutex
	ops []BlockDelta
}

// snapshot is the serialized form of a delta log.
type snapshot struct {
	WorldID uuid.UUID    `json:"world_id"`
	Seed    int64        `json:"seed"`
	Deltas  []BlockDelta `json:"deltas"`
}

// NewDeltaLog creates an empty log for a freshly generated world.
func NewDeltaLog(seed int64) *DeltaLog {
	return &DeltaLog{
		WorldID: uuid.New(),
		Seed:    seed,
	}
}

// Record appends one block modification.
func (l *DeltaLog) Record(x, y, z int, t world.BlockType) {
	l.mu.Lock()
	l.ops = append(l.ops, BlockDelta{X: x, Y: y, Z: z, Type: t})
	l.mu.Unlock()
}

// Len returns the number of recorded deltas.
func (l *DeltaLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.ops)
}

// Encode writes the log as JSON.
func (l *DeltaLog) Encode(w io.Writer) error {
	l.mu.Lock()
	snap := snapshot{WorldID: l.WorldID, Seed: l.Seed, Deltas: append([]BlockDelta(nil), l.ops...)}
	l.mu.Unlock()

	enc := json.NewEncoder(w)
	if err := enc.Encode(&snap); err != nil {
		return fmt.Errorf("encode delta log: %w", err)
	}
	return nil
}

// Decode reads a log previously written by Encode.
func Decode(r io.Reader) (*DeltaLog, error) {
	var snap snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode delta log: %w", err)
	}
	if snap.WorldID == uuid.Nil {
		return nil, fmt.Errorf("decode delta log: missing world id")
	}
	return &DeltaLog{
		WorldID: snap.WorldID,
		Seed:    snap.Seed,
		ops:     snap.Deltas,
	}, nil
}

// Apply replays the recorded modifications onto a world in order. Affected
// chunks come out dirty, so their meshes rebuild on the next frame.
func (l *DeltaLog) Apply(w *world.World) {
	l.mu.Lock()
	ops := append([]BlockDelta(nil), l.ops...)
	l.mu.Unlock()
	for _, d := range ops {
		w.Set(d.X, d.Y, d.Z, d.Type)
	}
}
