// Package shape builds random closed outlines in chunk-index space.
package shape

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"terrain-gen/internal/curve"
	"terrain-gen/internal/rng"
)

// Shape is a closed polygon. The last vertex connects back to the first.
type Shape struct {
	vertices []mgl32.Vec2
}

// New wraps vertices in a Shape. The slice is copied.
func New(vertices []mgl32.Vec2) *Shape {
	return &Shape{vertices: append([]mgl32.Vec2(nil), vertices...)}
}

// RandomSmoothed creates a blob inside [0,size]x[0,size]. An upper and a lower
// boundary are sampled from random anchors and smoothed with the continuity
// curve, then the blob is turned by a random quarter turn about its centre.
// Vertices are clamped to the square.
func RandomSmoothed(src rng.Source, size int, step float32) *Shape {
	if size < 2 {
		return &Shape{}
	}
	fs := float32(size)
	mid := fs / 2
	anchorCount := max(3, size/3+1)

	upper := make([]mgl32.Vec2, anchorCount)
	lower := make([]mgl32.Vec2, anchorCount)
	for i := 0; i < anchorCount; i++ {
		x := fs * float32(i) / float32(anchorCount-1)
		y0, y1 := mid, mid
		if i != 0 && i != anchorCount-1 {
			y1 = src.FloatRange(mid, fs)
			y0 = src.FloatRange(0, mid)
		}
		upper[i] = mgl32.Vec2{x, y1}
		lower[i] = mgl32.Vec2{x, y0}
	}

	top := curve.Compute(curve.SmoothAnchors(upper), step)
	bottom := curve.Compute(curve.SmoothAnchors(lower), step)

	verts := make([]mgl32.Vec2, 0, len(top)+len(bottom))
	verts = append(verts, top...)
	for i := len(bottom) - 1; i >= 0; i-- {
		verts = append(verts, bottom[i])
	}

	s := &Shape{vertices: verts}
	if turns := src.IntRange(0, 3); turns > 0 {
		s.Rotate(mgl32.Vec2{mid, mid}, float32(turns)*math.Pi/2)
	}
	s.Clamp(0, fs)
	return s
}

// Vertices returns a copy of the outline.
func (s *Shape) Vertices() []mgl32.Vec2 {
	return append([]mgl32.Vec2(nil), s.vertices...)
}

// Len returns the vertex count.
func (s *Shape) Len() int {
	return len(s.vertices)
}

// Rotate turns every vertex by rad radians about pivot.
func (s *Shape) Rotate(pivot mgl32.Vec2, rad float32) {
	rot := mgl32.Rotate2D(rad)
	for i, v := range s.vertices {
		s.vertices[i] = pivot.Add(rot.Mul2x1(v.Sub(pivot)))
	}
}

// Translate moves every vertex by (dx, dy).
func (s *Shape) Translate(dx, dy float32) {
	m := mgl32.Translate2D(dx, dy)
	for i, v := range s.vertices {
		s.vertices[i] = m.Mul3x1(v.Vec3(1)).Vec2()
	}
}

// Clamp limits both coordinates of every vertex to [lo, hi].
func (s *Shape) Clamp(lo, hi float32) {
	for i, v := range s.vertices {
		s.vertices[i] = mgl32.Vec2{mgl32.Clamp(v.X(), lo, hi), mgl32.Clamp(v.Y(), lo, hi)}
	}
}

// Floor rounds every coordinate down to a whole number.
func (s *Shape) Floor() {
	for i, v := range s.vertices {
		s.vertices[i] = mgl32.Vec2{
			float32(math.Floor(float64(v.X()))),
			float32(math.Floor(float64(v.Y()))),
		}
	}
}

// SortByX orders vertices by X, keeping the outline order for equal X.
func (s *Shape) SortByX() {
	sort.SliceStable(s.vertices, func(i, j int) bool {
		return s.vertices[i].X() < s.vertices[j].X()
	})
}
