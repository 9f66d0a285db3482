package meshing

import (
	"github.com/WholesomeTech/AGICraft/internal/profiling"
	"github.com/WholesomeTech/AGICraft/internal/world"
)

// Per-face flat shading: brightness = shadeBase + normalY*shadeScale, so top
// faces are lit, bottoms dark and sides mid-level.
const (
	shadeBase  = 0.8
	shadeScale = 0.2
)

// BuildChunkMesh builds a greedy-meshed triangle list for the chunk in the
// given vertex layout. Each chunk meshes in isolation: neighbors outside the
// chunk read as air, so faces on chunk borders always render. The build is a
// single synchronous pass; positions are world-space (offset by the chunk
// origin).
func BuildChunkMesh(c *world.Chunk, layout VertexLayout) Mesh {
	defer profiling.Track("meshing.BuildChunkMesh")()

	m := Mesh{Layout: layout}
	if c == nil {
		return m
	}
	m.Vertices = make([]float32, 0, 1024)
	for dir := Direction(0); dir < DirectionCount; dir++ {
		buildDirection(c, dir, &m)
	}
	return m
}

// RebuildChunkMesh builds a fresh mesh and then clears the chunk's dirty
// flag. The flag flips only after the buffer is fully constructed, so a
// caller polling IsDirty can never pick up a half-built mesh.
func RebuildChunkMesh(c *world.Chunk, layout VertexLayout) Mesh {
	m := BuildChunkMesh(c, layout)
	c.SetClean()
	return m
}

// buildDirection performs the per-slice mask build and greedy merge for one
// face direction, appending quads to m.
func buildDirection(c *world.Chunk, dir Direction, m *Mesh) {
	f := &faces[dir]
	dims := [3]int{world.ChunkSizeX, world.ChunkSizeY, world.ChunkSizeZ}
	uSize := dims[f.uAxis]
	vSize := dims[f.vAxis]
	dSize := dims[f.dAxis]

	baseX, baseY, baseZ := c.WorldOrigin()
	origin := [3]float32{float32(baseX), float32(baseY), float32(baseZ)}

	// One mask per slice, reused across slices. A cell holds the block type
	// whose face is exposed there, or air for no face.
	mask := make([]world.BlockType, uSize*vSize)

	for d := 0; d < dSize; d++ {
		depth := d
		if !f.positive {
			depth = dSize - 1 - d
		}

		// Mask build: a face is exposed iff the cell is solid and its
		// neighbor one step along the normal is air.
		for v := 0; v < vSize; v++ {
			for u := 0; u < uSize; u++ {
				var pos [3]int
				pos[f.uAxis] = u
				pos[f.vAxis] = v
				pos[f.dAxis] = depth

				cell := world.BlockTypeAir
				bt := c.GetBlock(pos[0], pos[1], pos[2])
				if bt != world.BlockTypeAir &&
					c.IsAir(pos[0]+f.normal[0], pos[1]+f.normal[1], pos[2]+f.normal[2]) {
					cell = bt
				}
				mask[v*uSize+u] = cell
			}
		}

		// Greedy merge: extend width along u over equal types, then grow
		// height along v while the full-width strip still matches. Emitted
		// rectangles are zeroed so no cell is covered twice.
		for i := 0; i < len(mask); {
			bt := mask[i]
			if bt == world.BlockTypeAir {
				i++
				continue
			}
			u0 := i % uSize
			v0 := i / uSize

			width := 1
			for u1 := u0 + 1; u1 < uSize && mask[v0*uSize+u1] == bt; u1++ {
				width++
			}
			height := 1
		grow:
			for v1 := v0 + 1; v1 < vSize; v1++ {
				for u1 := u0; u1 < u0+width; u1++ {
					if mask[v1*uSize+u1] != bt {
						break grow
					}
				}
				height++
			}

			emitQuad(m, f, origin, depth, u0, v0, width, height, bt)

			for v1 := v0; v1 < v0+height; v1++ {
				for u1 := u0; u1 < u0+width; u1++ {
					mask[v1*uSize+u1] = world.BlockTypeAir
				}
			}
			i += width
		}
	}
}

// emitQuad appends the two triangles of one merged rectangle. Corner order
// comes from the face table; triangles fan as 0,1,2 and 0,2,3.
func emitQuad(m *Mesh, f *faceInfo, origin [3]float32, depth, u0, v0, w, h int, bt world.BlockType) {
	fd := float32(depth)
	if f.normal[f.dAxis] > 0 {
		fd++ // face sits on the far side of the cell
	}
	us := [2]float32{float32(u0), float32(u0 + w)}
	vs := [2]float32{float32(v0), float32(v0 + h)}

	// Corners (0,0) (w,0) (w,h) (0,h) in plane coordinates, mapped back to
	// 3D by the same axis assignment the mask build used.
	sel := [4][2]int{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	var corners [4][3]float32
	for i, s := range sel {
		var p [3]float32
		p[f.dAxis] = fd
		p[f.uAxis] = us[s[0]]
		p[f.vAxis] = vs[s[1]]
		corners[i] = [3]float32{p[0] + origin[0], p[1] + origin[1], p[2] + origin[2]}
	}

	var quad [4][3]float32
	for i, idx := range f.order {
		quad[i] = corners[idx]
	}

	brightness := float32(shadeBase) + float32(f.normal[1])*shadeScale
	col := world.BlockColor(bt).Mul(brightness)
	normal := [3]float32{float32(f.normal[0]), float32(f.normal[1]), float32(f.normal[2])}

	for _, vi := range [6]int{0, 1, 2, 0, 2, 3} {
		p := quad[vi]
		m.Vertices = append(m.Vertices, p[0], p[1], p[2])
		if m.Layout == LayoutPosNormalColor {
			m.Vertices = append(m.Vertices, normal[0], normal[1], normal[2])
		}
		m.Vertices = append(m.Vertices, col.X(), col.Y(), col.Z())
	}
}
