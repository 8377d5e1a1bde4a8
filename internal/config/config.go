package config

import "sync"

// ActivationSettings holds the streaming configuration shared by the
// observer loop and the terrain grid.
type ActivationSettings struct {
	mu         sync.RWMutex
	halfExtent int // in chunks
	shapeSize  int // in chunks
}

var globalActivationSettings = &ActivationSettings{
	halfExtent: 5,
	shapeSize:  10,
}

// GetActivationHalfExtent returns how many chunks around the observer are
// realized on each tick, per direction.
func GetActivationHalfExtent() int {
	globalActivationSettings.mu.RLock()
	defer globalActivationSettings.mu.RUnlock()
	return globalActivationSettings.halfExtent
}

// SetActivationHalfExtent sets the activation half extent in chunks.
func SetActivationHalfExtent(chunks int) {
	globalActivationSettings.mu.Lock()
	defer globalActivationSettings.mu.Unlock()

	// Clamp to reasonable values
	if chunks < 1 {
		chunks = 1
	}
	if chunks > 32 {
		chunks = 32
	}

	globalActivationSettings.halfExtent = chunks
}

// GetShapeSize returns the edge length of terrain type regions in chunks.
func GetShapeSize() int {
	globalActivationSettings.mu.RLock()
	defer globalActivationSettings.mu.RUnlock()
	return globalActivationSettings.shapeSize
}

// SetShapeSize sets the terrain type region edge length. Values below 2 are raised to 2.
func SetShapeSize(chunks int) {
	globalActivationSettings.mu.Lock()
	defer globalActivationSettings.mu.Unlock()
	globalActivationSettings.shapeSize = max(chunks, 2)
}
