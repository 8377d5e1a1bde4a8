package world

import (
	"terrain-gen/internal/profiling"
)

// structureMarginMeters is kept free around a structure inside its chunk.
const structureMarginMeters = 3

// FindChunksEnclosedBy returns every chunk inside any of the hills, each
// once, in the order first seen.
func (g *Grid) FindChunksEnclosedBy(hills []HillSetup) []*Chunk {
	seen := make(map[*Chunk]struct{})
	var out []*Chunk
	for _, h := range hills {
		g.eachInHill(h, func(c *Chunk) {
			if _, ok := seen[c]; ok {
				return
			}
			seen[c] = struct{}{}
			out = append(out, c)
		})
	}
	return out
}

// StructureAnchors describes a structure site for every chunk enclosed by
// hills, raised to the chunk's highest vertex.
func (g *Grid) StructureAnchors(hills []HillSetup) []StructureAnchor {
	chunks := g.FindChunksEnclosedBy(hills)
	out := make([]StructureAnchor, 0, len(chunks))
	for _, c := range chunks {
		pos := c.Position()
		pos[2] = c.MaxHeight()
		out = append(out, StructureAnchor{
			Chunk:      c,
			Position:   pos,
			SizeMeters: max(g.units.ChunkSize-structureMarginMeters, 1),
		})
	}
	return out
}

// PlaceStructures hands every structure anchor of hills to placer and
// returns how many were placed.
func (g *Grid) PlaceStructures(hills []HillSetup, placer StructurePlacer) int {
	defer profiling.Track("world.PlaceStructures")()
	if placer == nil {
		return 0
	}
	anchors := g.StructureAnchors(hills)
	for _, a := range anchors {
		placer.PlaceStructure(a)
	}
	return len(anchors)
}
