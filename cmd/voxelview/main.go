package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/WholesomeTech/AGICraft/internal/config"
	"github.com/WholesomeTech/AGICraft/internal/graphics"
	"github.com/WholesomeTech/AGICraft/internal/meshing"
	"github.com/WholesomeTech/AGICraft/internal/profiling"
	"github.com/WholesomeTech/AGICraft/internal/save"
	"github.com/WholesomeTech/AGICraft/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

const (
	windowWidth  = 1280
	windowHeight = 720
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

func main() {
	seed := flag.Int64("seed", 1, "world seed")
	radius := flag.Int("radius", 8, "render distance in chunks")
	flat := flag.Bool("flat", false, "use the position+color vertex layout (no normals)")
	noCaves := flag.Bool("no-caves", false, "disable cave carving")
	savePath := flag.String("save", "", "write block edits to this delta file on exit")
	fps := flag.Int("fps", 0, "frame rate cap, 0 uses vsync")
	flag.Parse()

	config.SetSeed(*seed)
	config.SetRenderDistance(*radius)
	config.SetCaves(!*noCaves)
	config.SetMeshNormals(!*flat)
	config.SetFPSLimit(*fps)

	if err := run(*savePath); err != nil {
		log.Fatalf("voxelview: %v", err)
	}
}

func run(savePath string) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	layout := meshing.LayoutPosNormalColor
	if !config.GetMeshNormals() {
		layout = meshing.LayoutPosColor
	}

	w := world.New(config.GetSeed())
	if !config.GetCaves() {
		w.Generator().SetCaves(false)
	}
	streamer := w.NewStreamer()

	renderer, err := graphics.NewChunkRenderer(layout, max(runtime.NumCPU()/2, 1))
	if err != nil {
		return fmt.Errorf("create chunk renderer: %w", err)
	}

	deltas := save.NewDeltaLog(config.GetSeed())
	closer.Bind(func() {
		if savePath != "" && deltas.Len() > 0 {
			if err := writeDeltas(savePath, deltas); err != nil {
				log.Printf("save deltas: %v", err)
			}
		}
		streamer.Close()
		renderer.Shutdown()
	})

	camera := graphics.NewCamera(windowWidth, windowHeight)
	v := newViewer(window, w, streamer, renderer, camera, deltas)
	v.bindCallbacks()

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.ClearColor(0.55, 0.75, 0.95, 1.0)

	v.loop()
	closer.Close()
	return nil
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "voxelview", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return nil, err
	}

	if config.GetFPSLimit() > 0 {
		glfw.SwapInterval(0)
	} else {
		glfw.SwapInterval(1)
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	return window, nil
}

func writeDeltas(path string, deltas *save.DeltaLog) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return deltas.Encode(f)
}

// statsTitle refreshes the window title with frame stats about once a
// second.
type statsTitle struct {
	frames int
	last   time.Time
}

func (s *statsTitle) tick(window *glfw.Window) {
	s.frames++
	if time.Since(s.last) < time.Second {
		return
	}
	mesh := float64(profiling.SumWithPrefix("meshing.").Microseconds()) / 1000.0
	window.SetTitle(fmt.Sprintf("voxelview | %d fps | mesh %.1fms | %s", s.frames, mesh, profiling.TopN(3)))
	s.frames = 0
	s.last = time.Now()
}
