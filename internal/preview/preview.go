// Package preview rasterizes a terrain grid into top-down images for
// inspection: a grayscale height map, a terrain type map and a wireframe
// canvas fed by Grid.Plot.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"terrain-gen/internal/world"
)

// TerrainColors maps terrain types to map colours.
var TerrainColors = map[world.TerrainType]color.RGBA{
	world.Tropical: {R: 46, G: 139, B: 87, A: 255},
	world.Desert:   {R: 237, G: 201, B: 175, A: 255},
	world.SnowHill: {R: 245, G: 245, B: 250, A: 255},
	world.Ocean:    {R: 28, G: 84, B: 160, A: 255},
}

// HeightMap renders one pixel per meter, normalized between the lowest and
// highest vertex of the grid. Shared chunk borders are drawn once.
func HeightMap(g *world.Grid) *image.Gray {
	size := g.Units().ChunkSize
	n := g.Size() * size
	img := image.NewGray(image.Rect(0, 0, n, n))
	if n == 0 {
		return img
	}

	lo, hi := float32(math.MaxFloat32), float32(-math.MaxFloat32)
	eachVertex(g, func(_, _ int, z float32) {
		lo = min(lo, z)
		hi = max(hi, z)
	})
	span := hi - lo
	eachVertex(g, func(px, py int, z float32) {
		var v uint8
		if span > 0 {
			v = uint8(mgl32.Clamp((z-lo)/span*255, 0, 255))
		}
		// image Y grows downwards, world Y upwards
		img.SetGray(px, n-1-py, color.Gray{Y: v})
	})
	return img
}

func eachVertex(g *world.Grid, fn func(px, py int, z float32)) {
	size := g.Units().ChunkSize
	for x := 0; x < g.Size(); x++ {
		for y := 0; y < g.Size(); y++ {
			f := g.ChunkAt(x, y).HeightField()
			for i := 0; i < size && i < len(f); i++ {
				for j := 0; j < size && j < len(f[i]); j++ {
					fn(x*size+i, y*size+j, f[i][j].Z())
				}
			}
		}
	}
}

// TerrainMap renders one pixel per chunk coloured by terrain type.
func TerrainMap(g *world.Grid) *image.RGBA {
	n := g.Size()
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			img.SetRGBA(x, n-1-y, TerrainColors[g.ChunkAt(x, y).TerrainType()])
		}
	}
	return img
}

// Scale enlarges src by factor. Smooth selects bilinear filtering instead of
// nearest neighbour.
func Scale(src image.Image, factor int, smooth bool) *image.RGBA {
	factor = max(factor, 1)
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	var s xdraw.Scaler = xdraw.NearestNeighbor
	if smooth {
		s = xdraw.BiLinear
	}
	s.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// Label draws text with its baseline at (x, y).
func Label(dst draw.Image, x, y int, text string, col color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// LabelWidth returns the pixel width of text in the label face.
func LabelWidth(text string) int {
	return font.MeasureString(basicfont.Face7x13, text).Ceil()
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
