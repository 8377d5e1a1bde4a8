package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"terrain-gen/internal/preview"
	"terrain-gen/internal/world"
)

func writePreviews(dir string, g *world.Grid, seed int64, scale int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("preview dir: %w", err)
	}

	height := preview.Scale(preview.HeightMap(g), scale, true)
	types := preview.Scale(preview.TerrainMap(g), scale*g.Units().ChunkSize, false)
	canvas := preview.NewCanvas(float32(g.Size()*g.Units().ChunkCm()), float32(g.Units().OneMeter)/float32(max(scale, 1)))
	g.Plot(canvas)

	images := map[string]*image.RGBA{
		"height.png":    height,
		"types.png":     types,
		"wireframe.png": canvas.Image(),
	}
	caption := fmt.Sprintf("seed %d", seed)
	for name, img := range images {
		preview.Label(img, 4, 14, caption, color.RGBA{R: 255, G: 64, B: 64, A: 255})
		path := filepath.Join(dir, name)
		if err := preview.WritePNG(path, img); err != nil {
			return err
		}
		log.Printf("wrote %s", path)
	}
	return nil
}
