package world

import (
	"terrain-gen/internal/profiling"
)

// GenerateOptions tunes a generation run.
type GenerateOptions struct {
	Layers           int // random hills
	SmoothIterations int
}

// DefaultGenerateOptions returns 20 hills and 3 smoothing iterations.
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{Layers: 20, SmoothIterations: 3}
}

// Generate builds the terrain with DefaultGenerateOptions.
func (g *Grid) Generate(worldSizeMeters int, flatAreas []HillSetup) {
	g.GenerateWith(worldSizeMeters, flatAreas, DefaultGenerateOptions())
}

// GenerateWith allocates the chunk array, raises random hills, smooths the
// whole grid and flattens the given flat areas. Any previous terrain is
// discarded.
func (g *Grid) GenerateWith(worldSizeMeters int, flatAreas []HillSetup, opts GenerateOptions) {
	defer profiling.Track("world.Generate")()

	g.allocate(worldSizeMeters)
	if len(g.chunks) == 0 {
		g.logger.Printf("terrain: world of %dm is smaller than one chunk, nothing generated", worldSizeMeters)
		return
	}

	g.ApplyRandomHills(opts.Layers)
	g.smoothAll(opts.SmoothIterations)
	g.FlattenFlatAreas(flatAreas)

	g.logger.Printf("terrain: generated %dx%d chunks, %d hills, %d smoothing passes, %d flat areas",
		len(g.chunks), len(g.chunks), abs(opts.Layers), max(opts.SmoothIterations, 0), len(flatAreas))
}

// ApplyRandomHills raises |layers| random hills.
func (g *Grid) ApplyRandomHills(layers int) {
	defer profiling.Track("world.ApplyRandomHills")()
	for _i := 0; _i < abs(layers); _i++ {
		g.ApplyHill(g.RandomHill())
	}
}

// RandomHill picks a hill with random extent between the minimum hill size
// and the grid size.
func (g *Grid) RandomHill() HillSetup {
	n := len(g.chunks)
	return g.RandomHillSized(g.src.IntRange(g.hillSizeMin, n), g.src.IntRange(g.hillSizeMin, n))
}

// RandomHillSized picks a random position for a hill of the given extent.
// Its delta range is [OneMeter/2, 3*OneMeter/2].
func (g *Grid) RandomHillSized(scaleX, scaleY int) HillSetup {
	scaleX = positiveScale(scaleX)
	scaleY = positiveScale(scaleY)
	n := len(g.chunks)
	x := g.ClampIndex(g.src.IntRange(1, n-scaleX))
	y := g.ClampIndex(g.src.IntRange(1, n-scaleY))
	lo := g.units.OneMeter / 2
	return NewHillSetup(x, y, scaleX, scaleY, lo, 3*lo)
}

// ApplyHill adds one delta, or the forced height, to every chunk of h.
func (g *Grid) ApplyHill(h HillSetup) {
	if len(g.chunks) == 0 {
		return
	}
	delta := h.HeightIfSetOrRandom(g.src)
	g.eachInHill(h, func(c *Chunk) { c.AddHeight(delta) })
}

// ApplyHills applies every hill in order.
func (g *Grid) ApplyHills(hs []HillSetup) {
	for _, h := range hs {
		g.ApplyHill(h)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
