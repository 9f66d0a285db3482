package config

import "sync"

// RenderSettings holds render configuration
type RenderSettings struct {
	mu             sync.RWMutex
	renderDistance int // in chunks
	meshNormals    bool
	fpsLimit       int // 0 = uncapped
}

var globalRenderSettings = &RenderSettings{
	renderDistance: 8,
	meshNormals:    true,
}

// GetRenderDistance returns the current render distance in chunks
func GetRenderDistance() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.renderDistance
}

// SetRenderDistance sets the render distance in chunks
func SetRenderDistance(distance int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Clamp to reasonable values
	if distance < 2 {
		distance = 2
	}
	if distance > 32 {
		distance = 32
	}
	globalRenderSettings.renderDistance = distance
}

// GetChunkEvictRadius returns radius for chunk eviction (larger than render
// distance so edge chunks are not churned)
func GetChunkEvictRadius() int {
	return GetRenderDistance() * 2
}

// GetMeshNormals returns whether built meshes carry per-vertex normals
// (directional lighting) or only shaded colors
func GetMeshNormals() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.meshNormals
}

// SetMeshNormals selects the vertex layout for future mesh rebuilds
func SetMeshNormals(enabled bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.meshNormals = enabled
}

// GetFPSLimit returns the frame rate cap, 0 meaning uncapped
func GetFPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame rate cap, 0 or negative means uncapped
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	if limit < 0 {
		limit = 0
	}
	globalRenderSettings.fpsLimit = limit
}
