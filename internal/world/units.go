package world

import (
	"math"

	"terrain-gen/internal/config"
)

// Units holds the distance constants every conversion is derived from.
// World positions are in centimetres.
type Units struct {
	OneMeter  int     // world units per meter
	ChunkSize int     // meters per chunk edge
	MaxHeight float32 // height ceiling
}

// DefaultUnits matches the terrain defaults: 100 units per meter, 20 meter
// chunks, heights capped at 10000.
func DefaultUnits() Units {
	return Units{OneMeter: 100, ChunkSize: 20, MaxHeight: 10000}
}

// UnitsFrom extracts the unit constants of a terrain config.
func UnitsFrom(t config.Terrain) Units {
	return Units{OneMeter: t.OneMeter, ChunkSize: t.ChunkSize, MaxHeight: t.MaxHeight}
}

// ChunkCm is the edge length of one chunk in world units.
func (u Units) ChunkCm() int {
	return u.OneMeter * u.ChunkSize
}

// CmToMeter rounds a world distance to whole meters, halves away from zero.
func (u Units) CmToMeter(cm int) int {
	return int(math.Round(float64(cm) / float64(u.OneMeter)))
}

// MeterToCm converts meters to world units.
func (u Units) MeterToCm(m int) int {
	return m * u.OneMeter
}

// CmToChunkIndex maps a world distance to the chunk index along one axis.
// The result is not clamped to any grid.
func (u Units) CmToChunkIndex(cm int) int {
	return u.CmToMeter(cm) / u.ChunkSize
}

// CmToInnerChunkIndex maps a world distance to the vertex index inside its
// chunk.
func (u Units) CmToInnerChunkIndex(cm int) int {
	return u.CmToMeter(cm) % u.ChunkSize
}

// MeterToInnerChunkIndex maps a meter offset to the vertex index inside its
// chunk.
func (u Units) MeterToInnerChunkIndex(m int) int {
	return m % u.ChunkSize
}
