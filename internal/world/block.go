package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

type BlockType uint16

const (
	BlockTypeAir BlockType = iota
	BlockTypeGrass
	BlockTypeDirt
	BlockTypeStone
	BlockTypeSand
	BlockTypeSnow
	BlockTypeWater
	BlockTypeBedrock
)

// Block data
const (
	BlockSize = 1.0
)

var blockColors = [...]mgl32.Vec3{
	BlockTypeAir:     {0, 0, 0},
	BlockTypeGrass:   {0.30, 0.62, 0.25},
	BlockTypeDirt:    {0.48, 0.33, 0.20},
	BlockTypeStone:   {0.52, 0.52, 0.54},
	BlockTypeSand:    {0.86, 0.80, 0.58},
	BlockTypeSnow:    {0.93, 0.95, 0.97},
	BlockTypeWater:   {0.20, 0.35, 0.75},
	BlockTypeBedrock: {0.18, 0.18, 0.18},
}

// BlockColor returns the base color for a block type, before any per-face
// shading is applied.
func BlockColor(t BlockType) mgl32.Vec3 {
	if int(t) < len(blockColors) {
		return blockColors[t]
	}
	return mgl32.Vec3{0.5, 0.5, 0.5} // unknown types render gray
}
