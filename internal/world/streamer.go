package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"terrain-gen/internal/config"
	"terrain-gen/internal/profiling"
)

// waterDepthFactor places the water surface relative to OceanMaxHeight.
const waterDepthFactor = 0.8

// Tick activates the square window of chunks around observer, nearest ring
// first. It returns how many chunks were activated.
func (g *Grid) Tick(observer mgl32.Vec3) int {
	defer profiling.Track("world.Tick")()
	cx := g.units.CmToChunkIndex(int(observer.X()))
	cy := g.units.CmToChunkIndex(int(observer.Y()))
	radius := g.halfExtent
	if radius == 0 {
		radius = config.GetActivationHalfExtent()
	}

	activated := 0
	for r := 0; r <= radius; r++ {
		if r == 0 {
			if g.ActivateIfNeeded(cx, cy) {
				activated++
			}
			continue
		}
		x0, x1 := cx-r, cx+r
		y0, y1 := cy-r, cy+r
		for x := x0; x <= x1; x++ {
			activated += g.activateCount(x, y0) + g.activateCount(x, y1)
		}
		for y := y0 + 1; y <= y1-1; y++ {
			activated += g.activateCount(x0, y) + g.activateCount(x1, y)
		}
	}
	return activated
}

// ActivateRange activates every chunk in the inclusive index rectangle.
func (g *Grid) ActivateRange(minX, maxX, minY, maxY int) int {
	activated := 0
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			activated += g.activateCount(x, y)
		}
	}
	return activated
}

// ActivateAll activates every chunk of the grid.
func (g *Grid) ActivateAll() int {
	defer profiling.Track("world.ActivateAll")()
	return g.ActivateRange(0, len(g.chunks)-1, 0, len(g.chunks)-1)
}

func (g *Grid) activateCount(x, y int) int {
	if g.ActivateIfNeeded(x, y) {
		return 1
	}
	return 0
}

// ActivateIfNeeded merges chunk (x, y) with its +X, +Y and +X+Y neighbours,
// marks it created and hands it to the geometry builder. Ocean chunks are
// also sent to the water builder. Invalid or already created chunks are
// skipped and false is returned.
func (g *Grid) ActivateIfNeeded(x, y int) bool {
	c := g.ChunkAt(x, y)
	if c == nil || c.Created() {
		return false
	}

	field := c.ReadAndMerge(g.ChunkAt(x, y+1), g.ChunkAt(x+1, y), g.ChunkAt(x+1, y+1))
	c.MarkCreated()

	if g.geometry != nil {
		g.geometry.BuildChunk(ChunkGeometry{
			X:           x,
			Y:           y,
			Origin:      c.Position(),
			HeightField: field,
			AllowTrees:  c.AllowsTrees(),
			TerrainType: c.TerrainType(),
		})
	}
	if c.TerrainType() == Ocean && g.water != nil {
		pos := c.Position()
		pos[2] = g.oceanMaxHeight * waterDepthFactor
		g.water.BuildWater(pos, float32(g.units.ChunkCm()))
	}
	return true
}
