package graphics

import (
	"github.com/WholesomeTech/AGICraft/internal/meshing"
	"github.com/WholesomeTech/AGICraft/internal/profiling"
	"github.com/WholesomeTech/AGICraft/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const vertexShaderLit = `#version 410
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec3 aColor;

uniform mat4 view;
uniform mat4 projection;

out vec3 vNormal;
out vec3 vColor;

void main() {
	gl_Position = projection * view * vec4(aPos, 1.0);
	vNormal = aNormal;
	vColor = aColor;
}
`

const fragmentShaderLit = `#version 410
in vec3 vNormal;
in vec3 vColor;

uniform vec3 sunDir;

out vec4 FragColor;

void main() {
	float d = max(dot(normalize(vNormal), -sunDir), 0.0);
	FragColor = vec4(vColor * (0.85 + 0.15 * d), 1.0);
}
`

const vertexShaderFlat = `#version 410
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

uniform mat4 view;
uniform mat4 projection;

out vec3 vColor;

void main() {
	gl_Position = projection * view * vec4(aPos, 1.0);
	vColor = aColor;
}
`

const fragmentShaderFlat = `#version 410
in vec3 vColor;

out vec4 FragColor;

void main() {
	FragColor = vec4(vColor, 1.0);
}
`

// chunkMesh is the GPU side of one chunk's vertex buffer.
type chunkMesh struct {
	vao         uint32
	vbo         uint32
	vertexCount int32
}

// ChunkRenderer owns the per-chunk GPU buffers and the mesh worker pool.
// Rebuilds are dirty-driven: each frame it submits jobs for dirty chunks,
// applies finished results and draws whatever is uploaded.
type ChunkRenderer struct {
	shader *Shader
	layout meshing.VertexLayout
	pool   *meshing.WorkerPool
	meshes map[world.ChunkCoord]*chunkMesh
}

// NewChunkRenderer compiles the shader matching the vertex layout and starts
// the mesh worker pool.
func NewChunkRenderer(layout meshing.VertexLayout, workers int) (*ChunkRenderer, error) {
	var shader *Shader
	var err error
	if layout == meshing.LayoutPosNormalColor {
		shader, err = NewShader(vertexShaderLit, fragmentShaderLit)
	} else {
		shader, err = NewShader(vertexShaderFlat, fragmentShaderFlat)
	}
	if err != nil {
		return nil, err
	}
	return &ChunkRenderer{
		shader: shader,
		layout: layout,
		pool:   meshing.NewWorkerPool(workers, 256),
		meshes: make(map[world.ChunkCoord]*chunkMesh),
	}, nil
}

// Update submits rebuild jobs for dirty chunks and uploads finished meshes.
// Must run on the GL thread.
func (r *ChunkRenderer) Update(w *world.World) {
	defer profiling.Track("graphics.ChunkRenderer.Update")()

	for _, cw := range w.Store.GetAllChunks() {
		if cw.Chunk.IsDirty() {
			// Workers read a snapshot, never the live chunk, so edits on
			// this thread stay race-free while the build runs.
			r.pool.Submit(meshing.MeshJob{
				Chunk:    cw.Chunk.Snapshot(),
				Coord:    cw.Coord,
				Layout:   r.layout,
				Revision: cw.Chunk.Revision(),
			})
		}
	}

	for {
		select {
		case res := <-r.pool.Results():
			r.upload(res)
			// The dirty flag flips only now, with the new buffer fully
			// built and uploaded, and only if the chunk was not edited
			// while the build was in flight. On a revision mismatch the
			// chunk stays dirty and resubmits next frame.
			if ch := w.Store.GetChunk(res.Coord.X, res.Coord.Z, false); ch != nil && ch.Revision() == res.Revision {
				ch.SetClean()
			}
		default:
			return
		}
	}
}

// upload replaces the chunk's GPU buffer with the new mesh, creating the
// VAO/VBO on first use.
func (r *ChunkRenderer) upload(res meshing.MeshResult) {
	cm := r.meshes[res.Coord]
	if cm == nil {
		cm = &chunkMesh{}
		gl.GenVertexArrays(1, &cm.vao)
		gl.GenBuffers(1, &cm.vbo)

		gl.BindVertexArray(cm.vao)
		gl.BindBuffer(gl.ARRAY_BUFFER, cm.vbo)
		stride := int32(r.layout.Stride() * 4)
		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
		if r.layout == meshing.LayoutPosNormalColor {
			gl.EnableVertexAttribArray(1)
			gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
			gl.EnableVertexAttribArray(2)
			gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, gl.PtrOffset(6*4))
		} else {
			gl.EnableVertexAttribArray(1)
			gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
		}
		gl.BindVertexArray(0)
		r.meshes[res.Coord] = cm
	}

	cm.vertexCount = int32(res.Mesh.VertexCount())
	if cm.vertexCount == 0 {
		// Nothing to draw for this chunk; keep the buffer empty.
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, cm.vbo)
	// Full replacement, never an append: the mesh is regenerated whole.
	gl.BufferData(gl.ARRAY_BUFFER, len(res.Mesh.Vertices)*4, gl.Ptr(res.Mesh.Vertices), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Draw renders every uploaded chunk mesh.
func (r *ChunkRenderer) Draw(view, projection mgl32.Mat4) {
	defer profiling.Track("graphics.ChunkRenderer.Draw")()

	r.shader.Use()
	r.shader.SetMatrix4("view", &view[0])
	r.shader.SetMatrix4("projection", &projection[0])
	if r.layout == meshing.LayoutPosNormalColor {
		r.shader.SetVector3("sunDir", -0.4, -0.8, -0.45)
	}

	for _, cm := range r.meshes {
		if cm.vertexCount == 0 {
			continue
		}
		gl.BindVertexArray(cm.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, cm.vertexCount)
	}
	gl.BindVertexArray(0)
}

// Prune frees GPU buffers for chunks no longer present in the world.
func (r *ChunkRenderer) Prune(w *world.World) int {
	live := make(map[world.ChunkCoord]struct{})
	for _, cw := range w.Store.GetAllChunks() {
		live[cw.Coord] = struct{}{}
	}
	freed := 0
	for coord, cm := range r.meshes {
		if _, ok := live[coord]; ok {
			continue
		}
		gl.DeleteBuffers(1, &cm.vbo)
		gl.DeleteVertexArrays(1, &cm.vao)
		delete(r.meshes, coord)
		freed++
	}
	return freed
}

// Shutdown stops the worker pool and frees all GPU buffers.
func (r *ChunkRenderer) Shutdown() {
	r.pool.Shutdown()
	for coord, cm := range r.meshes {
		gl.DeleteBuffers(1, &cm.vbo)
		gl.DeleteVertexArrays(1, &cm.vao)
		delete(r.meshes, coord)
	}
	r.shader.Delete()
}
