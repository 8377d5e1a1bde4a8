package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"terrain-gen/internal/profiling"
)

// maxFlatAreaAttempts bounds the rejection sampling of one flat area.
const maxFlatAreaAttempts = 1000

// CreateFlatAreas samples count non-overlapping rectangles of minSize to
// maxSize chunks inside a chunkRange wide grid. A rectangle that still
// overlaps after maxFlatAreaAttempts samples is accepted anyway; the second
// result counts those.
func (g *Grid) CreateFlatAreas(count, minSize, maxSize, chunkRange int) ([]HillSetup, int) {
	defer profiling.Track("world.CreateFlatAreas")()
	out := make([]HillSetup, 0, max(count, 0))
	fallbacks := 0
	for i := 0; i < count; i++ {
		h, ok := g.sampleFlatArea(out, minSize, maxSize, chunkRange)
		if !ok {
			fallbacks++
			g.logger.Printf("terrain: flat area %d still overlaps after %d attempts, keeping it", i, maxFlatAreaAttempts)
		}
		out = append(out, h)
	}
	return out, fallbacks
}

func (g *Grid) sampleFlatArea(accepted []HillSetup, minSize, maxSize, chunkRange int) (HillSetup, bool) {
	var h HillSetup
	for _i := 0; _i < maxFlatAreaAttempts; _i++ {
		scaleX := abs(g.src.IntRange(minSize, maxSize))
		scaleY := abs(g.src.IntRange(minSize, maxSize))
		x := abs(g.src.IntRange(3, chunkRange-scaleX))
		y := abs(g.src.IntRange(3, chunkRange-scaleY))

		h = NewHillSetup(x, y, scaleX, scaleY, 0, 0)
		h.ForceHeight(g.flatAreaHeight)
		if !overlapsAny(accepted, h) {
			return h, true
		}
	}
	return h, false
}

func overlapsAny(hs []HillSetup, h HillSetup) bool {
	for _, other := range hs {
		if other.Overlaps(h) {
			return true
		}
	}
	return false
}

// FlattenFlatAreas clamps every chunk of every area to its own average
// height and blocks trees on it.
func (g *Grid) FlattenFlatAreas(hs []HillSetup) {
	defer profiling.Track("world.FlattenFlatAreas")()
	for _, h := range hs {
		g.eachInHill(h, func(c *Chunk) {
			c.ClampUpperLimitToOwnAverage()
			c.SetTreesBlocked(true)
		})
	}
}

// SetFlatArea forces the chunks around location to location.Z, blocks trees
// on them and smooths the surrounding terrain twice. Sizes are in meters.
func (g *Grid) SetFlatArea(location mgl32.Vec3, sizeMetersX, sizeMetersY int) {
	defer profiling.Track("world.SetFlatArea")()
	if len(g.chunks) == 0 {
		return
	}
	sizeX := g.units.MeterToCm(abs(sizeMetersX))
	sizeY := g.units.MeterToCm(abs(sizeMetersY))

	fromX := g.ClampIndex(g.units.CmToChunkIndex(int(location.X())) - 1)
	fromY := g.ClampIndex(g.units.CmToChunkIndex(int(location.Y())) - 1)
	toX := g.ClampIndex(fromX + g.units.CmToChunkIndex(sizeX) + 1)
	toY := g.ClampIndex(fromY + g.units.CmToChunkIndex(sizeY) + 1)

	for x := fromX; x <= toX; x++ {
		for y := fromY; y <= toY; y++ {
			c := g.chunks[x][y]
			c.SetHeight(location.Z())
			c.SetTreesBlocked(true)
		}
	}

	buffer := float32(g.units.ChunkCm())
	a := location.Sub(mgl32.Vec3{buffer, buffer, 0})
	b := a.Add(mgl32.Vec3{float32(sizeX) + 2*buffer, float32(sizeY) + 2*buffer, 0})
	g.Smooth(a, b, 2)
}
