package world

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// ChunkGeometry is what the geometry builder receives for an activated
// chunk. HeightField is shared with the chunk and must not be modified.
type ChunkGeometry struct {
	X, Y        int
	Origin      mgl32.Vec3
	HeightField [][]mgl32.Vec3
	AllowTrees  bool
	TerrainType TerrainType
}

// GeometryBuilder turns an activated chunk into renderable geometry.
type GeometryBuilder interface {
	BuildChunk(c ChunkGeometry)
}

// GeometryBuilderFunc adapts a function to GeometryBuilder.
type GeometryBuilderFunc func(c ChunkGeometry)

func (f GeometryBuilderFunc) BuildChunk(c ChunkGeometry) { f(c) }

// WaterBuilder places a square water surface of sizeCm edge length with its
// corner at position.
type WaterBuilder interface {
	BuildWater(position mgl32.Vec3, sizeCm float32)
}

// WaterBuilderFunc adapts a function to WaterBuilder.
type WaterBuilderFunc func(position mgl32.Vec3, sizeCm float32)

func (f WaterBuilderFunc) BuildWater(position mgl32.Vec3, sizeCm float32) { f(position, sizeCm) }

// StructureAnchor is a flat-area chunk offered to the structure placer.
type StructureAnchor struct {
	Chunk      *Chunk
	Position   mgl32.Vec3 // chunk corner raised to the chunk's highest vertex
	SizeMeters int        // usable footprint edge
}

// StructurePlacer builds something on a flat-area chunk.
type StructurePlacer interface {
	PlaceStructure(a StructureAnchor)
}

// StructurePlacerFunc adapts a function to StructurePlacer.
type StructurePlacerFunc func(a StructureAnchor)

func (f StructurePlacerFunc) PlaceStructure(a StructureAnchor) { f(a) }

// Visualizer draws debug lines. Implementations may drop requests.
type Visualizer interface {
	DrawLine(a, b mgl32.Vec3, col color.RGBA)
}
