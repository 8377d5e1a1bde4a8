package world

import (
	"image/color"
)

var (
	plotYellow = color.RGBA{R: 255, G: 255, A: 255}
	plotGreen  = color.RGBA{G: 255, A: 255}
	plotRed    = color.RGBA{R: 255, A: 255}
	plotBlue   = color.RGBA{B: 255, A: 255}
)

// plotColor alternates colours by chunk parity so chunk borders stand out.
func plotColor(x, y int) color.RGBA {
	switch {
	case x%2 == 0 && y%2 == 0:
		return plotYellow
	case x%2 == 0:
		return plotGreen
	case y%2 == 0:
		return plotRed
	default:
		return plotBlue
	}
}

// Plot draws the wireframe of every chunk. A nil visualizer is ignored.
func (g *Grid) Plot(v Visualizer) {
	if v == nil {
		return
	}
	g.eachChunk(func(c *Chunk) {
		col := plotColor(c.X(), c.Y())
		f := c.HeightField()
		for i := range f {
			for j := range f[i] {
				if i > 0 {
					v.DrawLine(f[i-1][j], f[i][j], col)
				}
				if j > 0 {
					v.DrawLine(f[i][j-1], f[i][j], col)
				}
			}
		}
	})
}
