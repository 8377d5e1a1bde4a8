package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"terrain-gen/internal/profiling"
)

// SmoothAll runs three smoothing iterations over the whole grid.
func (g *Grid) SmoothAll() {
	g.smoothAll(3)
}

func (g *Grid) smoothAll(iterations int) {
	if len(g.chunks) == 0 {
		return
	}
	far := float32(len(g.chunks) * g.units.ChunkCm())
	g.Smooth(mgl32.Vec3{}, mgl32.Vec3{far, far, 0}, iterations)
}

// Smooth fits curves through the chunks between the world positions a and b
// and writes the samples back into the height field. Each iteration smooths
// every inner column first, overwriting heights, then every inner row,
// averaging into them.
func (g *Grid) Smooth(a, b mgl32.Vec3, iterations int) {
	defer profiling.Track("world.Smooth")()
	if len(g.chunks) == 0 || iterations <= 0 {
		return
	}
	fromX := g.clampedChunkIndex(min(a.X(), b.X()))
	toX := g.clampedChunkIndex(max(a.X(), b.X()))
	fromY := g.clampedChunkIndex(min(a.Y(), b.Y()))
	toY := g.clampedChunkIndex(max(a.Y(), b.Y()))

	size := g.units.ChunkSize
	step := float32(g.units.OneMeter)
	anchors := make([]mgl32.Vec2, 0, max(toX-fromX, toY-fromY)+1)

	for _i := 0; _i < iterations; _i++ {
		for x := fromX; x <= toX; x++ {
			for inner := 0; inner < size; inner++ {
				anchors = anchors[:0]
				for y := fromY; y <= toY; y++ {
					anchors = append(anchors, g.chunks[x][y].ColumnAnchor(inner))
				}
				g.applyCurve(x*size+inner, g.smoother.Compute(anchors, step), true)
			}
		}
		for y := fromY; y <= toY; y++ {
			for inner := 0; inner < size; inner++ {
				anchors = anchors[:0]
				for x := fromX; x <= toX; x++ {
					anchors = append(anchors, g.chunks[x][y].RowAnchor(inner))
				}
				g.applyCurve(y*size+inner, g.smoother.Compute(anchors, step), false)
			}
		}
	}
}

// applyCurve writes curve samples into the grid line at meter index. For a
// column the sample X is the world Y of the vertex and the write overwrites;
// for a row it is the world X and the write averages.
func (g *Grid) applyCurve(index int, samples []mgl32.Vec2, column bool) {
	lineCm := g.units.MeterToCm(index)
	lineChunk := g.units.CmToChunkIndex(lineCm)
	if !g.ValidIndex(lineChunk) {
		return
	}
	lineInner := g.units.CmToInnerChunkIndex(lineCm)

	for _, p := range samples {
		otherCm := int(math.Floor(float64(p.X())))
		otherChunk := g.units.CmToChunkIndex(otherCm)
		if !g.ValidIndex(otherChunk) {
			continue
		}
		otherInner := g.units.CmToInnerChunkIndex(otherCm)
		if column {
			g.chunks[lineChunk][otherChunk].ApplyVertex(lineInner, otherInner, p.Y(), true)
		} else {
			g.chunks[otherChunk][lineChunk].ApplyVertex(otherInner, lineInner, p.Y(), false)
		}
	}
}
