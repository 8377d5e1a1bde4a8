package world

import (
	"log"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"terrain-gen/internal/config"
	"terrain-gen/internal/curve"
	"terrain-gen/internal/rng"
)

// Grid owns a square array of chunks and every operation that spans more
// than one of them. Chunks are addressed by index only.
type Grid struct {
	units  Units
	chunks [][]*Chunk // [x][y]

	src    rng.Source
	logger *log.Logger

	geometry GeometryBuilder
	water    WaterBuilder

	snowHillLowerBound float32
	oceanMaxHeight     float32
	flatAreaHeight     float32

	hillSizeMin int
	halfExtent  int // zero reads config.GetActivationHalfExtent
	shapeSize   int // zero reads config.GetShapeSize

	smoother curve.Smoother
}

// Option configures a Grid.
type Option func(*Grid)

// WithSource sets the random source. The default is a SplitMix seeded with 0.
func WithSource(src rng.Source) Option {
	return func(g *Grid) { g.src = src }
}

// WithLogger sets the logger for generation summaries.
func WithLogger(l *log.Logger) Option {
	return func(g *Grid) { g.logger = l }
}

// WithGeometryBuilder sets the consumer of activated chunks.
func WithGeometryBuilder(b GeometryBuilder) Option {
	return func(g *Grid) { g.geometry = b }
}

// WithWaterBuilder sets the consumer of ocean chunk footprints.
func WithWaterBuilder(b WaterBuilder) Option {
	return func(g *Grid) { g.water = b }
}

// WithThresholds sets the average heights above which a chunk is snow and
// below which it is ocean.
func WithThresholds(snowHillLowerBound, oceanMaxHeight float32) Option {
	return func(g *Grid) {
		g.snowHillLowerBound = snowHillLowerBound
		g.oceanMaxHeight = oceanMaxHeight
	}
}

// WithActivationHalfExtent fixes the tick window instead of reading it from
// config on every tick.
func WithActivationHalfExtent(chunks int) Option {
	return func(g *Grid) { g.halfExtent = max(chunks, 0) }
}

// WithHillSizeMin sets the smallest random hill edge in chunks.
func WithHillSizeMin(chunks int) Option {
	return func(g *Grid) { g.hillSizeMin = max(chunks, 1) }
}

// WithShapeSize fixes the region painter's shape size in chunks.
func WithShapeSize(chunks int) Option {
	return func(g *Grid) { g.shapeSize = max(chunks, 0) }
}

// WithFlatAreaHeight sets the forced height carried by new flat areas.
func WithFlatAreaHeight(h float32) Option {
	return func(g *Grid) { g.flatAreaHeight = h }
}

// NewGrid creates an empty grid. Call Generate to allocate chunks.
func NewGrid(u Units, opts ...Option) *Grid {
	g := &Grid{
		units:              u,
		logger:             log.Default(),
		snowHillLowerBound: 1000,
		oceanMaxHeight:     150,
		flatAreaHeight:     100,
		hillSizeMin:        2,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		g.src = rng.NewSplitMix(0)
	}
	return g
}

// NewGridFromConfig creates a grid configured from t. Extra options are
// applied afterwards. The activation half extent and the region size are
// read from the process-wide settings in package config on every use.
func NewGridFromConfig(t config.Terrain, opts ...Option) *Grid {
	base := []Option{
		WithSource(rng.NewSplitMix(t.Seed)),
		WithThresholds(t.SnowHillLowerBound, t.OceanMaxHeight),
		WithHillSizeMin(t.HillSizeMin),
		WithFlatAreaHeight(t.FlatAreas.ForcedHeight),
	}
	return NewGrid(UnitsFrom(t), append(base, opts...)...)
}

// Units returns the grid's unit constants.
func (g *Grid) Units() Units { return g.units }

// Size returns the number of chunks along each axis.
func (g *Grid) Size() int { return len(g.chunks) }

// ChunkCount returns the total number of chunks.
func (g *Grid) ChunkCount() int { return len(g.chunks) * len(g.chunks) }

// allocate replaces the chunk array with flat chunks for a square world of
// worldSizeMeters edge length.
func (g *Grid) allocate(worldSizeMeters int) {
	n := 0
	if g.units.ChunkSize > 0 && worldSizeMeters > 0 {
		n = worldSizeMeters / g.units.ChunkSize
	}
	g.chunks = make([][]*Chunk, n)
	for x := 0; x < n; x++ {
		g.chunks[x] = make([]*Chunk, n)
		for y := 0; y < n; y++ {
			g.chunks[x][y] = NewChunk(x, y, g.units)
		}
	}
}

// ValidIndex reports whether i addresses a chunk along either axis.
func (g *Grid) ValidIndex(i int) bool {
	return i >= 0 && i < len(g.chunks)
}

// ClampIndex limits i to [0, Size-1].
func (g *Grid) ClampIndex(i int) int {
	if i >= len(g.chunks) {
		i = len(g.chunks) - 1
	}
	return max(i, 0)
}

// ChunkAt returns chunk (x, y) or nil when either index is out of range.
func (g *Grid) ChunkAt(x, y int) *Chunk {
	if !g.ValidIndex(x) || !g.ValidIndex(y) {
		return nil
	}
	return g.chunks[x][y]
}

func (g *Grid) CmToMeter(cm int) int             { return g.units.CmToMeter(cm) }
func (g *Grid) MeterToCm(m int) int              { return g.units.MeterToCm(m) }
func (g *Grid) CmToChunkIndex(cm int) int        { return g.units.CmToChunkIndex(cm) }
func (g *Grid) CmToInnerChunkIndex(cm int) int   { return g.units.CmToInnerChunkIndex(cm) }
func (g *Grid) MeterToInnerChunkIndex(m int) int { return g.units.MeterToInnerChunkIndex(m) }

// clampedChunkIndex converts a world coordinate to a chunk index inside the
// grid.
func (g *Grid) clampedChunkIndex(cm float32) int {
	return g.ClampIndex(g.units.CmToChunkIndex(int(cm)))
}

// HeightAt returns the terrain height at pos. Positions outside the grid
// return pos.Z unchanged.
func (g *Grid) HeightAt(pos mgl32.Vec3) float32 {
	c := g.ChunkAt(g.units.CmToChunkIndex(int(pos.X())), g.units.CmToChunkIndex(int(pos.Y())))
	if c == nil || !c.IsInBounds(pos) {
		// rounding to meters can pick the next chunk in the last half meter
		c = g.containingChunk(pos)
	}
	if c == nil {
		return pos.Z()
	}
	return c.HeightAt(pos)
}

func (g *Grid) containingChunk(pos mgl32.Vec3) *Chunk {
	cm := float64(g.units.ChunkCm())
	if cm <= 0 {
		return nil
	}
	x := int(math.Floor(float64(pos.X()) / cm))
	y := int(math.Floor(float64(pos.Y()) / cm))
	return g.ChunkAt(x, y)
}

// ScaleHeightForAll multiplies every height in the grid by f.
func (g *Grid) ScaleHeightForAll(f float32) {
	g.eachChunk(func(c *Chunk) { c.ScaleHeight(f) })
}

func (g *Grid) eachChunk(fn func(c *Chunk)) {
	for x := range g.chunks {
		for y := range g.chunks[x] {
			fn(g.chunks[x][y])
		}
	}
}

// eachInHill visits the chunks of h's rectangle, clamped to the grid. The
// upper bounds are clamped before the exclusive comparison, so a hill that
// reaches past the grid edge stops one short of the last chunk.
func (g *Grid) eachInHill(h HillSetup, fn func(c *Chunk)) {
	if len(g.chunks) == 0 {
		return
	}
	x1, y1 := g.ClampIndex(h.XTarget()), g.ClampIndex(h.YTarget())
	for x := g.ClampIndex(h.XPos()); x < x1; x++ {
		for y := g.ClampIndex(h.YPos()); y < y1; y++ {
			fn(g.chunks[x][y])
		}
	}
}
