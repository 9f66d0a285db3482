package main

import (
	"math"

	"github.com/WholesomeTech/AGICraft/internal/config"
	"github.com/WholesomeTech/AGICraft/internal/graphics"
	"github.com/WholesomeTech/AGICraft/internal/physics"
	"github.com/WholesomeTech/AGICraft/internal/profiling"
	"github.com/WholesomeTech/AGICraft/internal/save"
	"github.com/WholesomeTech/AGICraft/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	moveSpeed        = 20.0 // blocks per second
	mouseSensitivity = 0.1
)

// viewer is the interactive loop: fly camera, terrain streaming around the
// camera, dirty-driven remeshing and simple block editing.
type viewer struct {
	window   *glfw.Window
	world    *world.World
	streamer *world.ChunkStreamer
	renderer *graphics.ChunkRenderer
	camera   *graphics.Camera
	deltas   *save.DeltaLog

	lastMouseX, lastMouseY float64
	mouseSeen              bool
	lastFrame              float64
	stats                  statsTitle
	limiter                fpsLimiter
}

func newViewer(window *glfw.Window, w *world.World, s *world.ChunkStreamer, r *graphics.ChunkRenderer, c *graphics.Camera, d *save.DeltaLog) *viewer {
	return &viewer{
		window:   window,
		world:    w,
		streamer: s,
		renderer: r,
		camera:   c,
		deltas:   d,
	}
}

func (v *viewer) bindCallbacks() {
	v.window.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		if !v.mouseSeen {
			v.lastMouseX, v.lastMouseY = xpos, ypos
			v.mouseSeen = true
			return
		}
		dx := float32(xpos-v.lastMouseX) * mouseSensitivity
		dy := float32(v.lastMouseY-ypos) * mouseSensitivity
		v.lastMouseX, v.lastMouseY = xpos, ypos
		v.camera.Rotate(dx, dy)
	})

	v.window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch button {
		case glfw.MouseButtonLeft:
			v.editBlock(true)
		case glfw.MouseButtonRight:
			v.editBlock(false)
		}
	})

	v.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	v.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		if height > 0 {
			v.camera.AspectRatio = float32(width) / float32(height)
		}
	})
}

// editBlock breaks (or places) the block under the crosshair and records the
// change in the delta log.
func (v *viewer) editBlock(breakBlock bool) {
	hit := physics.Raycast(v.camera.Position, v.camera.Front(),
		physics.MinReachDistance, physics.MaxReachDistance, v.world)
	if !hit.Hit {
		return
	}
	if breakBlock {
		p := hit.HitPosition
		v.world.Set(p[0], p[1], p[2], world.BlockTypeAir)
		v.deltas.Record(p[0], p[1], p[2], world.BlockTypeAir)
	} else {
		if !hit.HasAdjacent {
			return
		}
		p := hit.AdjacentPosition
		v.world.Set(p[0], p[1], p[2], world.BlockTypeStone)
		v.deltas.Record(p[0], p[1], p[2], world.BlockTypeStone)
	}
}

func (v *viewer) handleMovement(dt float32) {
	front := v.camera.Front()
	flat := mgl32.Vec3{front.X(), 0, front.Z()}
	if flat.Len() > 0 {
		flat = flat.Normalize()
	}
	right := flat.Cross(mgl32.Vec3{0, 1, 0})

	velocity := moveSpeed * dt
	pos := v.camera.Position
	if v.window.GetKey(glfw.KeyW) == glfw.Press {
		pos = pos.Add(flat.Mul(velocity))
	}
	if v.window.GetKey(glfw.KeyS) == glfw.Press {
		pos = pos.Sub(flat.Mul(velocity))
	}
	if v.window.GetKey(glfw.KeyA) == glfw.Press {
		pos = pos.Sub(right.Mul(velocity))
	}
	if v.window.GetKey(glfw.KeyD) == glfw.Press {
		pos = pos.Add(right.Mul(velocity))
	}
	if v.window.GetKey(glfw.KeySpace) == glfw.Press {
		pos = pos.Add(mgl32.Vec3{0, velocity, 0})
	}
	if v.window.GetKey(glfw.KeyLeftShift) == glfw.Press {
		pos = pos.Sub(mgl32.Vec3{0, velocity, 0})
	}
	v.camera.Position = pos
}

func (v *viewer) loop() {
	for !v.window.ShouldClose() {
		profiling.ResetFrame()

		now := glfw.GetTime()
		dt := float32(now - v.lastFrame)
		v.lastFrame = now
		if dt > 0.25 {
			dt = 0.25 // long stall, don't teleport
		}

		glfw.PollEvents()
		v.handleMovement(dt)

		camX := int(math.Floor(float64(v.camera.Position.X())))
		camZ := int(math.Floor(float64(v.camera.Position.Z())))
		v.streamer.StreamAround(camX, camZ, config.GetRenderDistance())
		center := world.ChunkCoordAt(camX, camZ)
		if v.world.Store.EvictFarChunks(center.X, center.Z, config.GetChunkEvictRadius()) > 0 {
			v.renderer.Prune(v.world)
		}

		v.renderer.Update(v.world)

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		v.renderer.Draw(v.camera.GetViewMatrix(), v.camera.GetProjectionMatrix())

		v.window.SwapBuffers()
		v.stats.tick(v.window)
		v.limiter.Wait()
	}
}
