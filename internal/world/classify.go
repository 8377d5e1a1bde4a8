package world

import (
	"terrain-gen/internal/config"
	"terrain-gen/internal/profiling"
	"terrain-gen/internal/shape"
)

// ApplySpecialTerrainTypesByHeight classifies every chunk by its average
// height. Snow is checked first and ocean second, so a chunk matching both
// ends up Ocean.
func (g *Grid) ApplySpecialTerrainTypesByHeight() {
	defer profiling.Track("world.ApplySpecialTerrainTypesByHeight")()
	g.eachChunk(func(c *Chunk) {
		c.ClassifyByHeight(g.snowHillLowerBound, g.oceanMaxHeight)
	})
}

// RandomizeTerrainTypes paints Size/3 random blobs of terrain type onto the
// grid. Each blob takes a type different from the one under its lowest-X
// vertex and is filled by vertical sweeps between vertices that share an X.
// Columns with a single vertex stay unpainted.
func (g *Grid) RandomizeTerrainTypes() {
	defer profiling.Track("world.RandomizeTerrainTypes")()
	n := len(g.chunks)
	if n == 0 {
		return
	}
	size := g.shapeSize
	if size == 0 {
		size = config.GetShapeSize()
	}

	for _i := 0; _i < n/3; _i++ {
		s := shape.RandomSmoothed(g.src, size, 1)
		s.Floor()
		s.Translate(float32(g.src.IntRange(0, n-size)), float32(g.src.IntRange(0, n-size)))
		s.SortByX()

		verts := s.Vertices()
		if len(verts) == 0 {
			continue
		}
		first := g.chunks[g.ClampIndex(int(verts[0].X()))][g.ClampIndex(int(verts[0].Y()))]
		t := g.SelectTerrainTypeExcluding(first.TerrainType())

		for i := 1; i < len(verts); i++ {
			a, b := verts[i-1], verts[i]
			if a.X() != b.X() {
				continue
			}
			x := g.ClampIndex(int(a.X()))
			lo, hi := int(min(a.Y(), b.Y())), int(max(a.Y(), b.Y()))
			for y := lo; y < hi; y++ {
				g.chunks[x][g.ClampIndex(y)].SetTerrainType(t)
			}
		}
	}
}

// SelectTerrainTypeExcluding picks a random paintable type other than
// exclude.
func (g *Grid) SelectTerrainTypeExcluding(exclude TerrainType) TerrainType {
	n := len(PaintableTerrainTypes)
	idx := g.src.IntRange(0, n) % n
	if PaintableTerrainTypes[idx] == exclude {
		idx = (idx + 1) % n
	}
	return PaintableTerrainTypes[idx]
}
