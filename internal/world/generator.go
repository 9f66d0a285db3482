package world

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Generator handles terrain generation. All noise state is owned by the
// generator and derived from its seed, so two generators with the same seed
// produce identical terrain.
type Generator struct {
	seed    int64
	surface opensimplex.Noise32
	caveVol opensimplex.Noise32

	scale       float32
	baseHeight  int
	amp         float32
	octaves     int
	persistence float32
	lacunarity  float32

	caves         bool
	caveScale     float32
	caveThreshold float32

	seaLevel  int
	snowLine  int
	beachLine int
}

// NewGenerator creates a generator with default settings for the given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		seed:    seed,
		surface: opensimplex.New32(seed),
		caveVol: opensimplex.New32(seed + 1),

		scale:       1.0 / 64.0,
		baseHeight:  24,
		amp:         20,
		octaves:     4,
		persistence: 0.5,
		lacunarity:  2.0,

		caves:         true,
		caveScale:     1.0 / 16.0,
		caveThreshold: 0.55,

		seaLevel:  14,
		snowLine:  38,
		beachLine: 16,
	}
}

// Seed returns the seed the generator was constructed with.
func (g *Generator) Seed() int64 {
	return g.seed
}

// SetCaves toggles cave carving.
func (g *Generator) SetCaves(enabled bool) {
	g.caves = enabled
}

func (g *Generator) octaveNoise2(x, z float32) float32 {
	amplitude := float32(1)
	frequency := float32(1)
	sum := float32(0)
	norm := float32(0)
	for i := 0; i < g.octaves; i++ {
		// Eval2 is in [-1,1]; remap to [0,1] before weighting
		v := (g.surface.Eval2(x*frequency, z*frequency) + 1) * 0.5
		sum += v * amplitude
		norm += amplitude
		amplitude *= g.persistence
		frequency *= g.lacunarity
	}
	return sum / norm
}

// HeightAt computes the surface height (block Y) at world X,Z.
func (g *Generator) HeightAt(worldX, worldZ int) int {
	x := float32(worldX) * g.scale
	z := float32(worldZ) * g.scale
	n := g.octaveNoise2(x, z)
	height := float64(float32(g.baseHeight) + n*g.amp)
	if height < 1 {
		height = 1
	}
	if height > ChunkSizeY-1 {
		height = ChunkSizeY - 1
	}
	return int(math.Floor(height))
}

// carved reports whether cave noise removes the block at a world coordinate.
func (g *Generator) carved(worldX, worldY, worldZ int) bool {
	if !g.caves {
		return false
	}
	x := float32(worldX) * g.caveScale
	y := float32(worldY) * g.caveScale
	z := float32(worldZ) * g.caveScale
	return g.caveVol.Eval3(x, y, z) > g.caveThreshold
}

// PopulateChunk fills a chunk from the noise heightmap, carves caves and
// floods columns below sea level. Bedrock at y=0 is never carved.
func (g *Generator) PopulateChunk(c *Chunk) {
	for lx := 0; lx < ChunkSizeX; lx++ {
		for lz := 0; lz < ChunkSizeZ; lz++ {
			worldX := c.X*ChunkSizeX + lx
			worldZ := c.Z*ChunkSizeZ + lz
			height := g.HeightAt(worldX, worldZ)

			c.SetBlock(lx, 0, lz, BlockTypeBedrock)
			for ly := 1; ly <= height; ly++ {
				if g.carved(worldX, ly, worldZ) {
					continue
				}
				c.SetBlock(lx, ly, lz, g.blockFor(ly, height))
			}
			for ly := height + 1; ly <= g.seaLevel; ly++ {
				c.SetBlock(lx, ly, lz, BlockTypeWater)
			}
		}
	}
	c.MarkDirty()
}

// blockFor picks the material for depth y in a column of the given surface
// height.
func (g *Generator) blockFor(y, height int) BlockType {
	if y < height-3 {
		return BlockTypeStone
	}
	if y < height {
		return BlockTypeDirt
	}
	// surface block
	switch {
	case height >= g.snowLine:
		return BlockTypeSnow
	case height <= g.beachLine:
		return BlockTypeSand
	default:
		return BlockTypeGrass
	}
}
