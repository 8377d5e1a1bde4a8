package preview

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/vector"
)

// lineWidth is the stroke width of DrawLine in pixels.
const lineWidth float32 = 1

// Canvas is a top-down world.Visualizer. Lines are projected onto the XY
// plane, snapped to pixel centres and filled as thin quads.
type Canvas struct {
	img        *image.RGBA
	cmPerPixel float32
	r          *vector.Rasterizer
}

// NewCanvas creates a black canvas covering worldCm by worldCm world units.
func NewCanvas(worldCm, cmPerPixel float32) *Canvas {
	cmPerPixel = max(cmPerPixel, 1)
	n := int(worldCm/cmPerPixel) + 1
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return &Canvas{img: img, cmPerPixel: cmPerPixel, r: vector.NewRasterizer(n, n)}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// DrawLine implements world.Visualizer. Height is ignored and the parts of
// the line outside the canvas are clipped.
func (c *Canvas) DrawLine(a, b mgl32.Vec3, col color.RGBA) {
	w, h := c.img.Rect.Dx(), c.img.Rect.Dy()
	p0, p1, ok := clipSegment(c.pixel(a), c.pixel(b), float32(w)-0.5, float32(h)-0.5)
	if !ok {
		return
	}

	dir := p1.Sub(p0)
	if dir.Len() == 0 {
		dir = mgl32.Vec2{1, 0}
	} else {
		dir = dir.Normalize()
	}
	along := dir.Mul(lineWidth / 2)
	across := mgl32.Vec2{-dir.Y(), dir.X()}.Mul(lineWidth / 2)
	p0, p1 = p0.Sub(along), p1.Add(along)

	quad := [4]mgl32.Vec2{p0.Add(across), p1.Add(across), p1.Sub(across), p0.Sub(across)}
	c.r.Reset(w, h)
	for i, p := range quad {
		x := mgl32.Clamp(p.X(), 0, float32(w))
		y := mgl32.Clamp(p.Y(), 0, float32(h))
		if i == 0 {
			c.r.MoveTo(x, y)
		} else {
			c.r.LineTo(x, y)
		}
	}
	c.r.ClosePath()
	c.r.Draw(c.img, c.img.Rect, image.NewUniform(col), image.Point{})
}

// pixel maps a world position to the centre of its pixel, Y up.
func (c *Canvas) pixel(p mgl32.Vec3) mgl32.Vec2 {
	h := c.img.Rect.Dy()
	px := int(p.X() / c.cmPerPixel)
	py := h - 1 - int(p.Y()/c.cmPerPixel)
	return mgl32.Vec2{float32(px) + 0.5, float32(py) + 0.5}
}

// clipSegment clips a-b to the pixel centres [0.5, maxX]x[0.5, maxY]
// (Liang-Barsky).
func clipSegment(a, b mgl32.Vec2, maxX, maxY float32) (mgl32.Vec2, mgl32.Vec2, bool) {
	d := b.Sub(a)
	t0, t1 := float32(0), float32(1)
	edges := [4][2]float32{
		{-d.X(), a.X() - 0.5},
		{d.X(), maxX - a.X()},
		{-d.Y(), a.Y() - 0.5},
		{d.Y(), maxY - a.Y()},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			t0 = max(t0, t)
		} else {
			t1 = min(t1, t)
		}
		if t0 > t1 {
			return a, b, false
		}
	}
	return a.Add(d.Mul(t0)), a.Add(d.Mul(t1)), true
}
