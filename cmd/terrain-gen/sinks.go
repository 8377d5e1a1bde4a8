package main

import (
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"terrain-gen/internal/meshing"
	"terrain-gen/internal/world"
)

// sinks stands in for the renderer, water and structure builders of a real
// engine and only counts what it receives. Meshes arrive from pool workers.
type sinks struct {
	mu         sync.Mutex
	chunks     int
	vertices   int
	triangles  int
	treeless   int
	water      int
	structures int
	types      map[world.TerrainType]int
}

func newSinks() *sinks {
	return &sinks{types: make(map[world.TerrainType]int)}
}

func (s *sinks) addMesh(m meshing.Mesh) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks++
	s.vertices += m.VertexCount()
	s.triangles += m.TriangleCount()
	if !m.AllowTrees {
		s.treeless++
	}
	s.types[m.TerrainType]++
}

func (s *sinks) BuildWater(_ mgl32.Vec3, _ float32) {
	s.mu.Lock()
	s.water++
	s.mu.Unlock()
}

func (s *sinks) PlaceStructure(_ world.StructureAnchor) {
	s.mu.Lock()
	s.structures++
	s.mu.Unlock()
}

func (s *sinks) summary() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("%d chunks (%d vertices, %d triangles, %d treeless), %d water, %d structures, types %v",
		s.chunks, s.vertices, s.triangles, s.treeless, s.water, s.structures, s.types)
}
