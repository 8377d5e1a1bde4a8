package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Chunk is one tile of the height field. Its field has ChunkSize+1
// vertices per edge; the extra row and column are copies of the +X and +Y
// neighbours once merged.
type Chunk struct {
	x, y  int
	units Units

	field [][]mgl32.Vec3 // [i][j], i along X

	terrainType  TerrainType
	created      bool
	treesBlocked bool
}

// NewChunk creates a flat chunk at grid coordinates (x, y).
func NewChunk(x, y int, u Units) *Chunk {
	c := &Chunk{x: x, y: y, units: u}
	n := u.ChunkSize + 1
	origin := c.Position()
	step := float32(u.OneMeter)
	c.field = make([][]mgl32.Vec3, n)
	for i := 0; i < n; i++ {
		c.field[i] = make([]mgl32.Vec3, n)
		for j := 0; j < n; j++ {
			c.field[i][j] = mgl32.Vec3{
				origin.X() + float32(i)*step,
				origin.Y() + float32(j)*step,
				0,
			}
		}
	}
	return c
}

func (c *Chunk) X() int { return c.x }
func (c *Chunk) Y() int { return c.y }

func (c *Chunk) TerrainType() TerrainType     { return c.terrainType }
func (c *Chunk) SetTerrainType(t TerrainType) { c.terrainType = t }

// Created reports whether geometry was already requested for this chunk.
func (c *Chunk) Created() bool { return c.created }
func (c *Chunk) MarkCreated()  { c.created = true }

func (c *Chunk) TreesBlocked() bool     { return c.treesBlocked }
func (c *Chunk) SetTreesBlocked(b bool) { c.treesBlocked = b }
func (c *Chunk) AllowsTrees() bool      { return !c.treesBlocked }

// Position returns the world-space corner of vertex (0,0) at height zero.
func (c *Chunk) Position() mgl32.Vec3 {
	cm := float32(c.units.ChunkCm())
	return mgl32.Vec3{float32(c.x) * cm, float32(c.y) * cm, 0}
}

// HeightField returns the vertex grid. The slices are shared with the chunk.
func (c *Chunk) HeightField() [][]mgl32.Vec3 {
	return c.field
}

// IsInBounds reports whether pos lies inside the chunk footprint, edges
// included.
func (c *Chunk) IsInBounds(pos mgl32.Vec3) bool {
	o := c.Position()
	cm := float32(c.units.ChunkCm())
	return pos.X() >= o.X() && pos.X() <= o.X()+cm &&
		pos.Y() >= o.Y() && pos.Y() <= o.Y()+cm
}

// HeightAt returns the height of the vertex under pos. Positions outside the
// chunk return pos.Z unchanged.
func (c *Chunk) HeightAt(pos mgl32.Vec3) float32 {
	if !c.IsInBounds(pos) || len(c.field) == 0 {
		return pos.Z()
	}
	o := c.Position()
	step := float32(c.units.OneMeter)
	last := len(c.field) - 1
	i := clampInt(int((pos.X()-o.X())/step), 0, last)
	j := clampInt(int((pos.Y()-o.Y())/step), 0, last)
	return c.field[i][j].Z()
}

// AddHeight raises every vertex by delta, capped at MaxHeight.
func (c *Chunk) AddHeight(delta float32) {
	c.each(func(v *mgl32.Vec3) {
		v[2] = min(v.Z()+delta, c.units.MaxHeight)
	})
}

// ScaleHeight multiplies every height by f, capped at MaxHeight.
func (c *Chunk) ScaleHeight(f float32) {
	c.each(func(v *mgl32.Vec3) {
		v[2] = min(v.Z()*f, c.units.MaxHeight)
	})
}

// SetHeight sets every vertex to h, capped at MaxHeight. Negative heights
// are kept.
func (c *Chunk) SetHeight(h float32) {
	h = min(h, c.units.MaxHeight)
	c.each(func(v *mgl32.Vec3) {
		v[2] = h
	})
}

// ClampUpperLimit lowers every vertex above limit to limit.
func (c *Chunk) ClampUpperLimit(limit float32) {
	c.each(func(v *mgl32.Vec3) {
		v[2] = min(v.Z(), limit)
	})
}

// ClampUpperLimitToOwnAverage flattens peaks down to the current average.
func (c *Chunk) ClampUpperLimitToOwnAverage() {
	c.ClampUpperLimit(c.AverageHeight())
}

// AverageHeight returns the mean vertex height, zero for an empty field.
func (c *Chunk) AverageHeight() float32 {
	var sum float64
	n := 0
	c.each(func(v *mgl32.Vec3) {
		sum += float64(v.Z())
		n++
	})
	if n == 0 {
		return 0
	}
	return float32(sum / float64(n))
}

// MaxHeight returns the highest vertex, zero for an empty field.
func (c *Chunk) MaxHeight() float32 {
	if len(c.field) == 0 || len(c.field[0]) == 0 {
		return 0
	}
	out := c.field[0][0].Z()
	c.each(func(v *mgl32.Vec3) {
		out = max(out, v.Z())
	})
	return out
}

// ReadAndMerge copies the first column of right into the last column, the
// first row of top into the last row and the first vertex of topRight into
// the last corner. Nil neighbours leave their edge as it is.
func (c *Chunk) ReadAndMerge(top, right, topRight *Chunk) [][]mgl32.Vec3 {
	last := len(c.field) - 1
	if last < 0 {
		return c.field
	}
	if right != nil {
		col := right.field[0]
		for j := 0; j < len(col) && j <= last; j++ {
			c.field[last][j][2] = col[j].Z()
		}
	}
	if top != nil {
		for i := 0; i < len(top.field) && i <= last; i++ {
			c.field[i][last][2] = top.field[i][0].Z()
		}
	}
	if topRight != nil {
		c.field[last][last][2] = topRight.field[0][0].Z()
	}
	return c.field
}

// FirstColumn returns a copy of the vertices at i = 0.
func (c *Chunk) FirstColumn() []mgl32.Vec3 {
	if len(c.field) == 0 {
		return nil
	}
	return append([]mgl32.Vec3(nil), c.field[0]...)
}

// FirstRow returns a copy of the vertices at j = 0.
func (c *Chunk) FirstRow() []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(c.field))
	for i := range c.field {
		out[i] = c.field[i][0]
	}
	return out
}

// BottomLeftCorner returns vertex (0,0).
func (c *Chunk) BottomLeftCorner() mgl32.Vec3 {
	return c.field[0][0]
}

// ColumnAnchor returns the smoothing anchor of inner column innerX: the
// chunk's world Y paired with the height of its first vertex in that column.
func (c *Chunk) ColumnAnchor(innerX int) mgl32.Vec2 {
	innerX = clampInt(innerX, 0, len(c.field)-1)
	return mgl32.Vec2{c.Position().Y(), c.field[innerX][0].Z()}
}

// RowAnchor is the row counterpart of ColumnAnchor.
func (c *Chunk) RowAnchor(innerY int) mgl32.Vec2 {
	innerY = clampInt(innerY, 0, len(c.field[0])-1)
	return mgl32.Vec2{c.Position().X(), c.field[0][innerY].Z()}
}

// ApplyVertex writes h into vertex (i, j). With overwrite the height is
// replaced; otherwise it is averaged with the current one and capped at
// MaxHeight. Out of range indices are ignored.
func (c *Chunk) ApplyVertex(i, j int, h float32, overwrite bool) {
	if i < 0 || i >= len(c.field) || j < 0 || j >= len(c.field[i]) {
		return
	}
	v := &c.field[i][j]
	if overwrite {
		v[2] = h
		return
	}
	v[2] = min((v.Z()+h)/2, c.units.MaxHeight)
}

// ClassifyByHeight marks the chunk SnowHill when its average exceeds snow
// and Ocean when it is below ocean. Both checks run in that order.
func (c *Chunk) ClassifyByHeight(snow, ocean float32) {
	avg := c.AverageHeight()
	if avg > snow {
		c.terrainType = SnowHill
	}
	if avg < ocean {
		c.terrainType = Ocean
	}
}

func (c *Chunk) each(fn func(v *mgl32.Vec3)) {
	for i := range c.field {
		for j := range c.field[i] {
			fn(&c.field[i][j])
		}
	}
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
